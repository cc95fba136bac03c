package shader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "inline",
			err:  &CompileError{Stage: StageVertex, Log: "0:3: syntax error"},
			want: "compile vertex shader: 0:3: syntax error",
		},
		{
			name: "file",
			err:  &CompileError{Stage: StageFragment, Path: "shaders/phong.frag", Log: "0:12: 'x' undeclared"},
			want: "compile fragment shader shaders/phong.frag: 0:12: 'x' undeclared",
		},
		{
			name: "link",
			err:  &LinkError{VertPath: "a.vert", FragPath: "a.frag", Log: "varying mismatch"},
			want: "link program (a.vert, a.frag): varying mismatch",
		},
		{
			name: "inline link",
			err:  &LinkError{Log: "no main"},
			want: "link program: no main",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestCompileErrorAs(t *testing.T) {
	var err error = &CompileError{Stage: StageFragment, Log: "bad"}
	wrapped := errors.Join(errors.New("loading example"), err)

	var ce *CompileError
	require.True(t, errors.As(wrapped, &ce))
	assert.Equal(t, StageFragment, ce.Stage)
}

func TestLocationCache(t *testing.T) {
	calls := map[string]int{}
	p := newProgram(7, "a.vert", "a.frag")
	p.locate = func(program uint32, name string) int32 {
		calls[name]++
		if name == "model" {
			return 3
		}
		return -1
	}

	assert.Equal(t, int32(3), p.Location("model"))
	assert.Equal(t, int32(3), p.Location("model"))
	assert.Equal(t, int32(-1), p.Location("unused"))
	assert.Equal(t, int32(-1), p.Location("unused"))

	assert.Equal(t, 1, calls["model"], "location looked up once")
	assert.Equal(t, 1, calls["unused"], "missing uniforms are cached too")
	assert.Len(t, p.missing, 1)
}

func TestProgramPaths(t *testing.T) {
	p := newProgram(1, "shaders/mvp.vert", "shaders/textured.frag")

	assert.True(t, p.Uses("shaders/mvp.vert"))
	assert.True(t, p.Uses("shaders/textured.frag"))
	assert.False(t, p.Uses("shaders/other.frag"))
	assert.False(t, p.Uses(""))

	inline := newProgram(2, "", "")
	assert.False(t, inline.Uses(""))
	assert.Error(t, inline.Reload(nil), "inline programs cannot reload")
}

func TestWatcherReportsChanges(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "lit.frag")
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(watched, []byte("v1"), 0644))

	w, err := NewWatcher(watched)
	require.NoError(t, err)
	w.debounce = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0644))
	require.NoError(t, os.WriteFile(watched, []byte("v2"), 0644))

	want, err := filepath.Abs(watched)
	require.NoError(t, err)

	select {
	case got := <-w.Changes():
		assert.Equal(t, want, got)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop")
	}
	require.NoError(t, w.Close())
}

func TestWatcherAddTwice(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.vert")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.Add(file))
	require.NoError(t, w.Add(file))
	assert.Len(t, w.files, 1)
	assert.Len(t, w.dirs, 1)

	assert.Error(t, w.Add(filepath.Join(dir, "missing-dir", "b.vert")))
}
