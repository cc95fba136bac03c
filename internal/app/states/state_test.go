package states

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/learn-gl/internal/assets"
	"github.com/Faultbox/learn-gl/internal/config"
	"github.com/Faultbox/learn-gl/internal/engine/input"
)

type fakeState struct {
	name     string
	enterErr error
	exitErr  error

	ctx     *Context
	calls   []string
	events  []input.Event
	updates int
}

func (s *fakeState) Enter(ctx *Context) error {
	s.ctx = ctx
	s.calls = append(s.calls, "enter")
	return s.enterErr
}

func (s *fakeState) Exit() error {
	s.calls = append(s.calls, "exit")
	return s.exitErr
}

func (s *fakeState) Update(dt float64) error {
	s.updates++
	return nil
}

func (s *fakeState) Render() error {
	s.calls = append(s.calls, "render")
	return nil
}

func (s *fakeState) HandleInput(event input.Event) error {
	s.events = append(s.events, event)
	return nil
}

func TestChangeAppliesOnUpdate(t *testing.T) {
	ctx := &Context{}
	m := NewManager(ctx)
	first := &fakeState{name: "first"}

	m.Change(first)
	assert.True(t, m.Pending())
	assert.Nil(t, m.Current())
	assert.Empty(t, first.calls)

	require.NoError(t, m.Update(0.016))
	assert.False(t, m.Pending())
	assert.Same(t, first, m.Current())
	assert.Same(t, ctx, first.ctx)
	assert.Equal(t, []string{"enter"}, first.calls)
	assert.Equal(t, 1, first.updates)
}

func TestChangeExitsPrevious(t *testing.T) {
	m := NewManager(&Context{})
	first := &fakeState{name: "first"}
	second := &fakeState{name: "second"}

	m.Change(first)
	require.NoError(t, m.Update(0))
	m.Change(second)
	require.NoError(t, m.Update(0))

	assert.Equal(t, []string{"enter", "exit"}, first.calls)
	assert.Equal(t, []string{"enter"}, second.calls)
	assert.Same(t, second, m.Current())
}

func TestEnterFailure(t *testing.T) {
	m := NewManager(&Context{})
	broken := &fakeState{enterErr: errors.New("no texture")}

	m.Change(broken)
	err := m.Update(0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no texture")
	assert.Nil(t, m.Current())
	assert.Equal(t, []string{"enter", "exit"}, broken.calls)
	assert.Zero(t, broken.updates)

	// A later change still works
	ok := &fakeState{}
	m.Change(ok)
	require.NoError(t, m.Update(0))
	assert.Same(t, ok, m.Current())
}

func TestEnterFailureKeepsExitError(t *testing.T) {
	m := NewManager(&Context{})
	enterErr := errors.New("no texture")
	exitErr := errors.New("mesh leak")
	m.Change(&fakeState{enterErr: enterErr, exitErr: exitErr})

	err := m.Update(0)
	assert.ErrorIs(t, err, enterErr)
	assert.ErrorIs(t, err, exitErr)
	assert.Nil(t, m.Current())
}

func TestExitErrorIsReturned(t *testing.T) {
	m := NewManager(&Context{})
	first := &fakeState{exitErr: errors.New("boom")}
	m.Change(first)
	require.NoError(t, m.Update(0))

	m.Change(&fakeState{})
	assert.EqualError(t, m.Update(0), "boom")
	assert.Nil(t, m.Current())
	assert.True(t, m.Pending())
}

func TestRenderAndInputWithoutState(t *testing.T) {
	m := NewManager(&Context{})
	assert.NoError(t, m.Render())
	assert.NoError(t, m.HandleInput(input.Event{Type: input.EventKeyDown}))
	assert.NoError(t, m.Update(1))
	assert.NoError(t, m.Close())
}

func TestHandleInputForwards(t *testing.T) {
	m := NewManager(&Context{})
	s := &fakeState{}
	m.Change(s)
	require.NoError(t, m.Update(0))

	ev := input.Event{Type: input.EventKeyDown, Key: input.KeySpace}
	require.NoError(t, m.HandleInput(ev))
	require.NoError(t, m.Render())

	assert.Equal(t, []input.Event{ev}, s.events)
	assert.Equal(t, []string{"enter", "render"}, s.calls)
}

func TestClose(t *testing.T) {
	m := NewManager(&Context{})
	s := &fakeState{}
	m.Change(s)
	require.NoError(t, m.Update(0))

	pending := &fakeState{}
	m.Change(pending)
	require.NoError(t, m.Close())

	assert.Equal(t, []string{"enter", "exit"}, s.calls)
	assert.Empty(t, pending.calls)
	assert.Nil(t, m.Current())
	assert.False(t, m.Pending())
}

func TestContextDefaults(t *testing.T) {
	ctx := &Context{}
	assert.Equal(t, float32(1), ctx.Aspect())
	assert.Zero(t, ctx.Time())
	assert.Empty(t, ctx.Programs())
}

func TestContextNewCamera(t *testing.T) {
	ctx := &Context{Camera: config.CameraConfig{Speed: 5, Sensitivity: 0.2, FOV: 30}}
	cam := ctx.NewCamera(mgl32.Vec3{0, 0, 3})

	assert.Equal(t, mgl32.Vec3{0, 0, 3}, cam.Position)
	assert.Equal(t, float32(5), cam.Speed)
	assert.Equal(t, float32(0.2), cam.Sensitivity)
	assert.Equal(t, float32(30), cam.Zoom)

	// Zero values keep the camera defaults
	cam = (&Context{}).NewCamera(mgl32.Vec3{})
	assert.Equal(t, float32(2.5), cam.Speed)
	assert.Equal(t, float32(45), cam.Zoom)
}

func TestContextProjection(t *testing.T) {
	ctx := &Context{Camera: config.Default().Camera}
	want := mgl32.Perspective(mgl32.DegToRad(45), 1, 0.1, 100)
	assert.True(t, ctx.Projection(45).ApproxEqual(want))
}

func TestReloadShadersWithoutPrograms(t *testing.T) {
	ctx := &Context{Assets: assets.NewManager()}
	n, err := ctx.ReloadShaders([]string{"shaders/basic.frag"})
	assert.NoError(t, err)
	assert.Zero(t, n)
}
