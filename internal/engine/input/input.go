// Package input holds backend-neutral keyboard and mouse state.
package input

// EventType identifies an input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventScroll
)

// Event represents a processed input event.
type Event struct {
	Type    EventType
	Key     Key
	Repeat  bool
	Width   int
	Height  int
	X, Y    float32 // cursor position in window pixels
	DX, DY  float32 // offsets since last sample, DY positive when moving up
	ScrollX float32
	ScrollY float32
	Button  uint8
}

// Input accumulates the events of one frame and tracks held keys across frames.
type Input struct {
	events  []Event
	down    map[Key]bool
	pressed map[Key]bool

	mouseDX, mouseDY float32
	scrollX, scrollY float32
	mouseX, mouseY   float32
	buttons          map[uint8]bool
	quit             bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events:  make([]Event, 0, 16),
		down:    make(map[Key]bool),
		pressed: make(map[Key]bool),
		buttons: make(map[uint8]bool),
	}
}

// BeginFrame clears per-frame state. Held keys survive.
func (i *Input) BeginFrame() {
	i.events = i.events[:0]
	for k := range i.pressed {
		delete(i.pressed, k)
	}
	i.mouseDX, i.mouseDY = 0, 0
	i.scrollX, i.scrollY = 0, 0
}

// Push records one event from a window backend.
func (i *Input) Push(e Event) {
	i.events = append(i.events, e)

	switch e.Type {
	case EventQuit:
		i.quit = true
	case EventKeyDown:
		if !i.down[e.Key] && !e.Repeat {
			i.pressed[e.Key] = true
		}
		i.down[e.Key] = true
	case EventKeyUp:
		delete(i.down, e.Key)
	case EventMouseMove:
		i.mouseX, i.mouseY = e.X, e.Y
		i.mouseDX += e.DX
		i.mouseDY += e.DY
	case EventMouseDown:
		i.buttons[e.Button] = true
	case EventMouseUp:
		delete(i.buttons, e.Button)
	case EventScroll:
		i.scrollX += e.ScrollX
		i.scrollY += e.ScrollY
	}
}

// Events returns the events pushed since the last BeginFrame.
func (i *Input) Events() []Event {
	return i.events
}

// IsDown reports whether the key is currently held.
func (i *Input) IsDown(k Key) bool {
	return i.down[k]
}

// Pressed reports whether the key went down this frame. Auto-repeat is ignored.
func (i *Input) Pressed(k Key) bool {
	return i.pressed[k]
}

// ButtonDown reports whether a mouse button is held.
func (i *Input) ButtonDown(button uint8) bool {
	return i.buttons[button]
}

// MouseDelta returns the cursor offset accumulated this frame.
func (i *Input) MouseDelta() (dx, dy float32) {
	return i.mouseDX, i.mouseDY
}

// MousePosition returns the last known cursor position.
func (i *Input) MousePosition() (x, y float32) {
	return i.mouseX, i.mouseY
}

// Scroll returns the wheel offset accumulated this frame.
func (i *Input) Scroll() (x, y float32) {
	return i.scrollX, i.scrollY
}

// QuitRequested reports whether the window asked to close.
func (i *Input) QuitRequested() bool {
	return i.quit
}

// ReleaseAll forgets held keys and buttons, e.g. after focus loss or an example switch.
func (i *Input) ReleaseAll() {
	for k := range i.down {
		delete(i.down, k)
	}
	for b := range i.buttons {
		delete(i.buttons, b)
	}
}
