package input

// MouseTracker turns absolute cursor positions into offsets.
// The first sample only primes the tracker so the camera does not jump
// when the cursor enters the window.
type MouseTracker struct {
	lastX, lastY float32
	primed       bool
}

// Offset returns the movement since the previous sample. Y is inverted so that
// moving the mouse up yields a positive offset.
func (m *MouseTracker) Offset(x, y float32) (dx, dy float32) {
	if !m.primed {
		m.lastX, m.lastY = x, y
		m.primed = true
	}
	dx = x - m.lastX
	dy = m.lastY - y
	m.lastX, m.lastY = x, y
	return dx, dy
}

// Reset makes the next sample prime the tracker again.
func (m *MouseTracker) Reset() {
	m.primed = false
}
