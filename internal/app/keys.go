package app

import "github.com/Faultbox/learn-gl/internal/engine/input"

type action int

const (
	actionNone action = iota
	actionQuit
	actionNext
	actionPrev
	actionWireframe
	actionScreenshot
	actionCapture
)

var globalKeys = map[input.Key]action{
	input.KeyEscape: actionQuit,
	input.KeyN:      actionNext,
	input.KeyP:      actionPrev,
	input.KeyF1:     actionWireframe,
	input.KeyF12:    actionScreenshot,
	input.KeyTab:    actionCapture,
}

// globalAction returns the runner shortcut bound to k, if any.
func globalAction(k input.Key) action {
	return globalKeys[k]
}
