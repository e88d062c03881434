package opengl

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
	"unsafe"

	"github.com/go-gl/gl/v4.5-core/gl"
)

// ErrUnknownDebugEnum is returned when the driver reports a debug source,
// type, or severity outside the GL 4.5 set.
var ErrUnknownDebugEnum = errors.New("unknown debug message enum")

// ErrInvalidDebugMessage is returned when a reported message is not valid UTF-8.
var ErrInvalidDebugMessage = errors.New("debug message invalid utf-8")

// DebugMessage is a driver diagnostic translated to readable labels.
type DebugMessage struct {
	Source   string
	Type     string
	Severity string
	ID       uint32
	Message  string

	severity uint32
}

// Fatal reports whether the message should stop the frame loop.
func (m DebugMessage) Fatal() bool {
	return m.severity == gl.DEBUG_SEVERITY_HIGH || m.severity == gl.DEBUG_SEVERITY_MEDIUM
}

// Ignored reports whether the message is a notification.
func (m DebugMessage) Ignored() bool {
	return m.severity == gl.DEBUG_SEVERITY_NOTIFICATION
}

func (m DebugMessage) String() string {
	return fmt.Sprintf("GL ERROR!\nSource:   %s\nSeverity: %s\nType:     %s\nMessage: %s\n",
		m.Source, m.Severity, m.Type, m.Message)
}

// DebugError wraps a fatal DebugMessage.
type DebugError struct {
	Msg DebugMessage
}

func (e *DebugError) Error() string {
	return fmt.Sprintf("gl %s (%s severity, source %s): %s", e.Msg.Type, e.Msg.Severity, e.Msg.Source, e.Msg.Message)
}

var debugSources = map[uint32]string{
	gl.DEBUG_SOURCE_API:             "api",
	gl.DEBUG_SOURCE_WINDOW_SYSTEM:   "window system",
	gl.DEBUG_SOURCE_SHADER_COMPILER: "shader compiler",
	gl.DEBUG_SOURCE_THIRD_PARTY:     "third party",
	gl.DEBUG_SOURCE_APPLICATION:     "application",
	gl.DEBUG_SOURCE_OTHER:           "other",
}

var debugTypes = map[uint32]string{
	gl.DEBUG_TYPE_ERROR:               "error",
	gl.DEBUG_TYPE_DEPRECATED_BEHAVIOR: "deprecated behaviour",
	gl.DEBUG_TYPE_UNDEFINED_BEHAVIOR:  "undefined behaviour",
	gl.DEBUG_TYPE_PORTABILITY:         "portability",
	gl.DEBUG_TYPE_PERFORMANCE:         "performance",
	gl.DEBUG_TYPE_MARKER:              "marker",
	gl.DEBUG_TYPE_PUSH_GROUP:          "push group",
	gl.DEBUG_TYPE_POP_GROUP:           "pop group",
	gl.DEBUG_TYPE_OTHER:               "other",
}

var debugSeverities = map[uint32]string{
	gl.DEBUG_SEVERITY_HIGH:         "high",
	gl.DEBUG_SEVERITY_MEDIUM:       "medium",
	gl.DEBUG_SEVERITY_LOW:          "low",
	gl.DEBUG_SEVERITY_NOTIFICATION: "notification",
}

// TranslateDebugMessage maps the raw callback arguments to a DebugMessage.
func TranslateDebugMessage(source, gltype, id, severity uint32, message string) (DebugMessage, error) {
	sev, ok := debugSeverities[severity]
	if !ok {
		return DebugMessage{}, fmt.Errorf("%w: severity %#x", ErrUnknownDebugEnum, severity)
	}
	typ, ok := debugTypes[gltype]
	if !ok {
		return DebugMessage{}, fmt.Errorf("%w: type %#x", ErrUnknownDebugEnum, gltype)
	}
	src, ok := debugSources[source]
	if !ok {
		return DebugMessage{}, fmt.Errorf("%w: source %#x", ErrUnknownDebugEnum, source)
	}
	if severity != gl.DEBUG_SEVERITY_NOTIFICATION && !utf8.ValidString(message) {
		return DebugMessage{}, fmt.Errorf("%w: %s %s from %s", ErrInvalidDebugMessage, sev, typ, src)
	}

	return DebugMessage{
		Source:   src,
		Type:     typ,
		Severity: sev,
		ID:       id,
		Message:  message,
		severity: severity,
	}, nil
}

// debugHandler reports driver messages and keeps the first fatal one.
type debugHandler struct {
	out io.Writer
	err error
}

func (h *debugHandler) handle(source, gltype, id, severity uint32, message string) {
	msg, err := TranslateDebugMessage(source, gltype, id, severity, message)
	if err != nil {
		fmt.Fprintln(h.out, err)
		h.record(err)
		return
	}
	if msg.Ignored() {
		return
	}

	fmt.Fprint(h.out, msg)
	if msg.Fatal() {
		h.record(&DebugError{Msg: msg})
	}
}

func (h *debugHandler) record(err error) {
	if h.err == nil {
		h.err = err
	}
}

// install registers the handler as the context's debug callback and
// silences performance and notification messages.
func (h *debugHandler) install() {
	gl.DebugMessageCallback(func(source, gltype, id, severity uint32, _ int32, message string, _ unsafe.Pointer) {
		h.handle(source, gltype, id, severity, message)
	}, nil)
	gl.Enable(gl.DEBUG_OUTPUT)
	gl.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)

	gl.DebugMessageControl(gl.DONT_CARE, gl.DEBUG_TYPE_PERFORMANCE, gl.DONT_CARE, 0, nil, false)
	gl.DebugMessageControl(gl.DONT_CARE, gl.DONT_CARE, gl.DEBUG_SEVERITY_NOTIFICATION, 0, nil, false)
}
