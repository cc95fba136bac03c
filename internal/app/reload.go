package app

import (
	"go.uber.org/zap"

	"github.com/Faultbox/learn-gl/internal/assets"
)

// watch starts watching the on-disk copy of a shader source. Embedded
// sources have no disk path and are skipped.
func (a *App) watch(assetPath string) {
	if a.watcher == nil {
		return
	}
	disk, ok := a.assets.Resolve(assetPath)
	if !ok {
		a.log.Debug("shader not on disk, not watched", zap.String("path", assetPath))
		return
	}
	if err := a.watcher.Add(disk); err != nil {
		a.log.Warn("cannot watch shader", zap.String("path", disk), zap.Error(err))
		return
	}
	a.watched[disk] = assets.Clean(assetPath)
}

// reloadShaders recompiles programs whose sources changed since the last frame.
func (a *App) reloadShaders() {
	if a.changes == nil {
		return
	}
	paths, open := drain(a.changes, a.watched)
	if !open {
		a.changes = nil
	}
	if len(paths) == 0 {
		return
	}

	n, err := a.context.ReloadShaders(paths)
	if err != nil {
		a.log.Error("shader reload failed, keeping previous program", zap.Error(err))
	}
	if n > 0 {
		a.log.Info("shaders reloaded", zap.Int("programs", n), zap.Strings("files", paths))
	}
}

// drain takes every queued change without blocking and maps disk paths to
// asset paths. Unknown paths are dropped. open is false once the channel
// is closed.
func drain(changes <-chan string, watched map[string]string) (paths []string, open bool) {
	seen := make(map[string]bool)
	for {
		select {
		case disk, ok := <-changes:
			if !ok {
				return paths, false
			}
			p, known := watched[disk]
			if !known || seen[p] {
				continue
			}
			seen[p] = true
			paths = append(paths, p)
		default:
			return paths, true
		}
	}
}
