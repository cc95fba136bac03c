package shader

import (
	"fmt"
	"strings"
)

// Stage identifies a shader stage.
type Stage string

// Shader stages.
const (
	StageVertex   Stage = "vertex"
	StageFragment Stage = "fragment"
)

// CompileError is returned when a shader stage fails to compile.
type CompileError struct {
	Stage Stage
	Path  string // empty for inline sources
	Log   string
}

func (e *CompileError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("compile %s shader: %s", e.Stage, e.Log)
	}
	return fmt.Sprintf("compile %s shader %s: %s", e.Stage, e.Path, e.Log)
}

// LinkError is returned when a program fails to link.
type LinkError struct {
	VertPath string
	FragPath string
	Log      string
}

func (e *LinkError) Error() string {
	var b strings.Builder
	b.WriteString("link program")
	if e.VertPath != "" || e.FragPath != "" {
		fmt.Fprintf(&b, " (%s, %s)", e.VertPath, e.FragPath)
	}
	b.WriteString(": ")
	b.WriteString(e.Log)
	return b.String()
}
