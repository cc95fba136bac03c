package shader

import (
	"fmt"
	"io/fs"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/learn-gl/internal/logger"
)

// Uniforms is the uniform-setting subset of Program.
// Code that only uploads values depends on this instead of a live GL program.
type Uniforms interface {
	SetBool(name string, v bool)
	SetInt(name string, v int32)
	SetFloat(name string, v float32)
	SetVec2(name string, v mgl32.Vec2)
	SetVec3(name string, v mgl32.Vec3)
	SetVec4(name string, v mgl32.Vec4)
	SetMat3(name string, m mgl32.Mat3)
	SetMat4(name string, m mgl32.Mat4)
}

var _ Uniforms = (*Program)(nil)

// Program is a linked shader program with a uniform location cache.
type Program struct {
	id       uint32
	vertPath string
	fragPath string

	locations map[string]int32
	missing   map[string]struct{}
	locate    func(program uint32, name string) int32

	log *zap.Logger
}

func newProgram(id uint32, vertPath, fragPath string) *Program {
	return &Program{
		id:        id,
		vertPath:  vertPath,
		fragPath:  fragPath,
		locations: make(map[string]int32),
		missing:   make(map[string]struct{}),
		locate:    glUniformLocation,
		log:       logger.Named("shader"),
	}
}

func glUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

// New builds a program from inline sources.
func New(vertexSrc, fragmentSrc string) (*Program, error) {
	id, err := CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	return newProgram(id, "", ""), nil
}

// Load reads both stages from fsys, compiles and links them.
func Load(fsys fs.FS, vertPath, fragPath string) (*Program, error) {
	id, err := loadProgram(fsys, vertPath, fragPath)
	if err != nil {
		return nil, err
	}

	p := newProgram(id, vertPath, fragPath)
	p.log.Debug("program loaded",
		zap.Uint32("id", id),
		zap.String("vertex", vertPath),
		zap.String("fragment", fragPath),
	)
	return p, nil
}

func loadProgram(fsys fs.FS, vertPath, fragPath string) (uint32, error) {
	vert, err := fs.ReadFile(fsys, vertPath)
	if err != nil {
		return 0, fmt.Errorf("reading vertex shader: %w", err)
	}
	frag, err := fs.ReadFile(fsys, fragPath)
	if err != nil {
		return 0, fmt.Errorf("reading fragment shader: %w", err)
	}
	return compileProgram(string(vert), string(frag), vertPath, fragPath)
}

// Reload recompiles the program from its source files.
// On failure the current program stays in use and the error is returned.
func (p *Program) Reload(fsys fs.FS) error {
	if p.vertPath == "" || p.fragPath == "" {
		return fmt.Errorf("program %d was built from inline sources", p.id)
	}

	id, err := loadProgram(fsys, p.vertPath, p.fragPath)
	if err != nil {
		return err
	}

	if p.id != 0 {
		gl.DeleteProgram(p.id)
	}
	p.id = id
	clear(p.locations)
	clear(p.missing)

	p.log.Info("program reloaded",
		zap.Uint32("id", id),
		zap.String("vertex", p.vertPath),
		zap.String("fragment", p.fragPath),
	)
	return nil
}

// ID returns the GL program name.
func (p *Program) ID() uint32 {
	return p.id
}

// Paths returns the source paths, empty for inline programs.
func (p *Program) Paths() (vert, frag string) {
	return p.vertPath, p.fragPath
}

// Uses reports whether path is one of the program's source files.
func (p *Program) Uses(path string) bool {
	return path != "" && (path == p.vertPath || path == p.fragPath)
}

// Bind makes the program current.
func (p *Program) Bind() {
	gl.UseProgram(p.id)
}

// Unbind clears the current program.
func (p *Program) Unbind() {
	gl.UseProgram(0)
}

// Delete releases the GL program.
func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

// Location returns the cached uniform location, or -1 if the uniform is
// not active. Each missing name is logged once.
func (p *Program) Location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}

	loc := p.locate(p.id, name)
	p.locations[name] = loc
	if loc < 0 {
		if _, seen := p.missing[name]; !seen {
			p.missing[name] = struct{}{}
			p.log.Debug("uniform not active",
				zap.Uint32("program", p.id),
				zap.String("name", name),
			)
		}
	}
	return loc
}

// SetBool sets a bool uniform.
func (p *Program) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	gl.Uniform1i(p.Location(name), i)
}

// SetInt sets an int or sampler uniform.
func (p *Program) SetInt(name string, v int32) {
	gl.Uniform1i(p.Location(name), v)
}

// SetFloat sets a float uniform.
func (p *Program) SetFloat(name string, v float32) {
	gl.Uniform1f(p.Location(name), v)
}

// SetVec2 sets a vec2 uniform.
func (p *Program) SetVec2(name string, v mgl32.Vec2) {
	gl.Uniform2f(p.Location(name), v[0], v[1])
}

// SetVec3 sets a vec3 uniform.
func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3f(p.Location(name), v[0], v[1], v[2])
}

// SetVec3f sets a vec3 uniform from components.
func (p *Program) SetVec3f(name string, x, y, z float32) {
	gl.Uniform3f(p.Location(name), x, y, z)
}

// SetVec4 sets a vec4 uniform.
func (p *Program) SetVec4(name string, v mgl32.Vec4) {
	gl.Uniform4f(p.Location(name), v[0], v[1], v[2], v[3])
}

// SetMat3 sets a mat3 uniform.
func (p *Program) SetMat3(name string, m mgl32.Mat3) {
	gl.UniformMatrix3fv(p.Location(name), 1, false, &m[0])
}

// SetMat4 sets a mat4 uniform.
func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.Location(name), 1, false, &m[0])
}
