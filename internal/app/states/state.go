// Package states runs one example at a time and switches between them.
package states

import (
	"errors"

	"github.com/Faultbox/learn-gl/internal/engine/input"
)

// State is one runnable example.
type State interface {
	// Enter is called when the state becomes current. GL resources are created here.
	Enter(ctx *Context) error

	// Exit is called when leaving this state. Everything Enter created is released.
	Exit() error

	// Update is called every frame with the frame time in seconds.
	Update(dt float64) error

	// Render is called every frame to draw the state.
	Render() error

	// HandleInput receives each input event of the frame before Update.
	HandleInput(event input.Event) error
}

// Manager manages state transitions.
type Manager struct {
	ctx     *Context
	current State
	next    State
}

// NewManager creates a new state manager.
func NewManager(ctx *Context) *Manager {
	return &Manager{ctx: ctx}
}

// Current returns the current state.
func (m *Manager) Current() State {
	return m.current
}

// Change schedules a state change. It takes effect at the next Update.
func (m *Manager) Change(next State) {
	m.next = next
}

// Pending reports whether a change is scheduled.
func (m *Manager) Pending() bool {
	return m.next != nil
}

// Update processes state changes and updates the current state.
func (m *Manager) Update(dt float64) error {
	if m.next != nil {
		if err := m.exitCurrent(); err != nil {
			return err
		}
		m.current = m.next
		m.next = nil
		if err := m.current.Enter(m.ctx); err != nil {
			// A half-entered state may hold resources
			failed := m.current
			m.current = nil
			exitErr := failed.Exit()
			m.ctx.releasePrograms()
			return errors.Join(err, exitErr)
		}
	}

	if m.current != nil {
		return m.current.Update(dt)
	}
	return nil
}

// Render renders the current state.
func (m *Manager) Render() error {
	if m.current != nil {
		return m.current.Render()
	}
	return nil
}

// HandleInput forwards an event to the current state.
func (m *Manager) HandleInput(event input.Event) error {
	if m.current != nil {
		return m.current.HandleInput(event)
	}
	return nil
}

// Close exits the current state and drops any scheduled one.
func (m *Manager) Close() error {
	m.next = nil
	return m.exitCurrent()
}

func (m *Manager) exitCurrent() error {
	if m.current == nil {
		return nil
	}
	err := m.current.Exit()
	m.current = nil
	m.ctx.releasePrograms()
	return err
}
