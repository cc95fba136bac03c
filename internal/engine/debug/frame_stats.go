package debug

import "time"

// FrameStats measures frame rate over a reporting window.
type FrameStats struct {
	window  time.Duration
	frames  int
	elapsed time.Duration
	worst   time.Duration

	fps      float64
	avgFrame time.Duration
	maxFrame time.Duration
}

// NewFrameStats creates a counter that reports once per window.
func NewFrameStats(window time.Duration) *FrameStats {
	if window <= 0 {
		window = time.Second
	}
	return &FrameStats{window: window}
}

// Tick records one frame. It returns true when a window completed and
// FPS, AvgFrame and MaxFrame were updated.
func (s *FrameStats) Tick(dt time.Duration) bool {
	s.frames++
	s.elapsed += dt
	if dt > s.worst {
		s.worst = dt
	}
	if s.elapsed < s.window {
		return false
	}

	s.fps = float64(s.frames) / s.elapsed.Seconds()
	s.avgFrame = s.elapsed / time.Duration(s.frames)
	s.maxFrame = s.worst

	s.frames = 0
	s.elapsed = 0
	s.worst = 0
	return true
}

// FPS returns frames per second over the last completed window.
func (s *FrameStats) FPS() float64 { return s.fps }

// AvgFrame returns the mean frame time over the last completed window.
func (s *FrameStats) AvgFrame() time.Duration { return s.avgFrame }

// MaxFrame returns the slowest frame of the last completed window.
func (s *FrameStats) MaxFrame() time.Duration { return s.maxFrame }
