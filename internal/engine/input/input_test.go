package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPressedOnlyOnTransition(t *testing.T) {
	in := New()

	in.BeginFrame()
	in.Push(Event{Type: EventKeyDown, Key: KeyW})
	assert.True(t, in.Pressed(KeyW))
	assert.True(t, in.IsDown(KeyW))

	// Held across frames, but not pressed again
	in.BeginFrame()
	assert.False(t, in.Pressed(KeyW))
	assert.True(t, in.IsDown(KeyW))

	// Auto-repeat does not count as a press
	in.Push(Event{Type: EventKeyDown, Key: KeyW, Repeat: true})
	assert.False(t, in.Pressed(KeyW))

	in.Push(Event{Type: EventKeyUp, Key: KeyW})
	assert.False(t, in.IsDown(KeyW))
}

func TestSimultaneousKeys(t *testing.T) {
	in := New()
	in.BeginFrame()
	in.Push(Event{Type: EventKeyDown, Key: KeyW})
	in.Push(Event{Type: EventKeyDown, Key: KeyD})

	assert.True(t, in.IsDown(KeyW))
	assert.True(t, in.IsDown(KeyD))
	assert.Len(t, in.Events(), 2)
}

func TestMouseAndScrollAccumulate(t *testing.T) {
	in := New()
	in.BeginFrame()
	in.Push(Event{Type: EventMouseMove, X: 10, Y: 20, DX: 3, DY: -1})
	in.Push(Event{Type: EventMouseMove, X: 12, Y: 18, DX: 2, DY: 2})
	in.Push(Event{Type: EventScroll, ScrollY: 1})
	in.Push(Event{Type: EventScroll, ScrollY: 0.5})

	dx, dy := in.MouseDelta()
	assert.Equal(t, float32(5), dx)
	assert.Equal(t, float32(1), dy)

	x, y := in.MousePosition()
	assert.Equal(t, float32(12), x)
	assert.Equal(t, float32(18), y)

	_, sy := in.Scroll()
	assert.Equal(t, float32(1.5), sy)

	in.BeginFrame()
	dx, dy = in.MouseDelta()
	assert.Zero(t, dx)
	assert.Zero(t, dy)
	_, sy = in.Scroll()
	assert.Zero(t, sy)
	assert.Empty(t, in.Events())
}

func TestButtonsAndQuit(t *testing.T) {
	in := New()
	in.Push(Event{Type: EventMouseDown, Button: ButtonLeft})
	assert.True(t, in.ButtonDown(ButtonLeft))
	in.Push(Event{Type: EventMouseUp, Button: ButtonLeft})
	assert.False(t, in.ButtonDown(ButtonLeft))

	assert.False(t, in.QuitRequested())
	in.Push(Event{Type: EventQuit})
	assert.True(t, in.QuitRequested())
}

func TestReleaseAll(t *testing.T) {
	in := New()
	in.Push(Event{Type: EventKeyDown, Key: KeyLeftShift})
	in.Push(Event{Type: EventMouseDown, Button: ButtonRight})
	in.ReleaseAll()
	assert.False(t, in.IsDown(KeyLeftShift))
	assert.False(t, in.ButtonDown(ButtonRight))
}

func TestMouseTracker(t *testing.T) {
	var m MouseTracker

	dx, dy := m.Offset(400, 300)
	assert.Zero(t, dx, "first sample must not jump")
	assert.Zero(t, dy)

	dx, dy = m.Offset(410, 290)
	assert.Equal(t, float32(10), dx)
	assert.Equal(t, float32(10), dy, "moving up yields a positive offset")

	m.Reset()
	dx, dy = m.Offset(0, 0)
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}

func TestKeyString(t *testing.T) {
	tests := map[Key]string{
		KeyA:       "A",
		KeyZ:       "Z",
		Key0:       "0",
		Key9:       "9",
		KeyEscape:  "Escape",
		KeyF12:     "F12",
		KeyUnknown: "Unknown",
	}
	for k, want := range tests {
		assert.Equal(t, want, k.String())
	}
}
