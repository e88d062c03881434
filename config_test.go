package endesga

import (
	"errors"
	"os"
	"testing"
)

func TestDefaultWindowConfig(t *testing.T) {
	cfg := DefaultWindowConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.GLMajor != 4 || cfg.GLMinor != 5 {
		t.Errorf("expected OpenGL 4.5, got %d.%d", cfg.GLMajor, cfg.GLMinor)
	}
	if !cfg.Debug || !cfg.SRGB || cfg.StencilBits != 8 || !cfg.Resizable {
		t.Errorf("unexpected context attributes: %+v", cfg)
	}
}

func TestWindowConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*WindowConfig)
	}{
		{"zero width", func(c *WindowConfig) { c.Width = 0 }},
		{"negative height", func(c *WindowConfig) { c.Height = -1 }},
		{"old context", func(c *WindowConfig) { c.GLMinor = 1 }},
		{"gl3", func(c *WindowConfig) { c.GLMajor, c.GLMinor = 3, 3 }},
		{"negative stencil", func(c *WindowConfig) { c.StencilBits = -8 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultWindowConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestWindowConfigOutput(t *testing.T) {
	var cfg WindowConfig
	if cfg.Output() != os.Stderr {
		t.Error("expected nil DebugOutput to fall back to stderr")
	}
}
