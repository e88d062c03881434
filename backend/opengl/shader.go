package opengl

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-gl/gl/v4.5-core/gl"
)

// Stage labels carried by CompilationError.
const (
	StageVertex   = "vertex shader compilation"
	StageFragment = "fragment shader compilation"
	StageCompute  = "compute shader compilation"
	StageLink     = "shader linking"
)

const invalidLogMessage = "error message invalid utf-8"

// CompilationError reports a shader compile or link failure.
type CompilationError struct {
	Stage string // One of the Stage* labels
	Log   string // Driver info log
}

func (e *CompilationError) Error() string {
	return fmt.Sprintf("%s failed\n%s", e.Stage, e.Log)
}

// Program owns a linked GL program object.
type Program struct {
	id uint32
}

type shaderStage struct {
	kind  uint32
	label string
	src   string
}

// NewSimpleProgram compiles and links a program from vertex and fragment
// shader source.
func NewSimpleProgram(vertexSource, fragmentSource string) (*Program, error) {
	return compileProgram([]shaderStage{
		{gl.VERTEX_SHADER, StageVertex, vertexSource},
		{gl.FRAGMENT_SHADER, StageFragment, fragmentSource},
	})
}

// NewComputeProgram compiles and links a program from compute shader source.
func NewComputeProgram(source string) (*Program, error) {
	return compileProgram([]shaderStage{
		{gl.COMPUTE_SHADER, StageCompute, source},
	})
}

// ID returns the GL name of the program.
func (p *Program) ID() uint32 { return p.id }

// Bind makes this the active program.
func (p *Program) Bind() {
	gl.UseProgram(p.id)
}

// Delete releases the program object.
func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

func compileProgram(stages []shaderStage) (*Program, error) {
	program := gl.CreateProgram()

	for _, s := range stages {
		shader, err := compileShader(s)
		if err != nil {
			gl.DeleteProgram(program)
			return nil, err
		}
		gl.AttachShader(program, shader)
		// Flagged for deletion; freed once the program is.
		gl.DeleteShader(shader)
	}

	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := infoLog(logLength, func(size int32, buf *uint8) {
			gl.GetProgramInfoLog(program, size, nil, buf)
		})
		gl.DeleteProgram(program)
		return nil, &CompilationError{Stage: StageLink, Log: log}
	}

	return &Program{id: program}, nil
}

func compileShader(s shaderStage) (uint32, error) {
	shader := gl.CreateShader(s.kind)

	src := s.src
	if !strings.HasSuffix(src, "\x00") {
		src += "\x00"
	}
	csource, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := infoLog(logLength, func(size int32, buf *uint8) {
			gl.GetShaderInfoLog(shader, size, nil, buf)
		})
		gl.DeleteShader(shader)
		return 0, &CompilationError{Stage: s.label, Log: log}
	}

	return shader, nil
}

// infoLog reads a NUL-terminated driver log of the given length.
func infoLog(length int32, read func(size int32, buf *uint8)) string {
	if length <= 0 {
		return ""
	}
	buf := make([]byte, length+1)
	read(length, &buf[0])
	return decodeLog(buf)
}

func decodeLog(buf []byte) string {
	if i := strings.IndexByte(string(buf), 0); i >= 0 {
		buf = buf[:i]
	}
	if !utf8.Valid(buf) {
		return invalidLogMessage
	}
	return strings.TrimRight(string(buf), "\n")
}
