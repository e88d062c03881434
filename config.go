package endesga

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// WindowConfig holds window and context attributes.
type WindowConfig struct {
	Title         string
	Width, Height int
	Resizable     bool
	Centered      bool
	Visible       bool

	// Context
	GLMajor, GLMinor int
	Debug            bool // Request a debug context and install the message callback
	SRGB             bool
	StencilBits      int
	DepthBits        int
	SwapInterval     int

	// CullFaces enables back-face culling. Front faces are counter-clockwise.
	CullFaces bool

	// DebugOutput receives driver diagnostics. Nil means os.Stderr.
	DebugOutput io.Writer
}

// DefaultWindowConfig returns the demo window configuration.
func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Title:        "endesga-time",
		Width:        1366,
		Height:       768,
		Resizable:    true,
		Centered:     true,
		Visible:      true,
		GLMajor:      4,
		GLMinor:      5,
		Debug:        true,
		SRGB:         true,
		StencilBits:  8,
		DepthBits:    24,
		SwapInterval: 1,
		DebugOutput:  os.Stderr,
	}
}

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid window config")

// Validate reports the first problem with the configuration.
func (c WindowConfig) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.GLMajor < 4 || (c.GLMajor == 4 && c.GLMinor < 5):
		return fmt.Errorf("%w: OpenGL %d.%d, need 4.5 or later", ErrInvalidConfig, c.GLMajor, c.GLMinor)
	case c.StencilBits < 0 || c.DepthBits < 0:
		return fmt.Errorf("%w: negative buffer bits", ErrInvalidConfig)
	}
	return nil
}

// Output returns the diagnostics writer.
func (c WindowConfig) Output() io.Writer {
	if c.DebugOutput == nil {
		return os.Stderr
	}
	return c.DebugOutput
}
