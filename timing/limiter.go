package timing

import (
	"log/slog"
	"time"
)

// spinThreshold is the window before a deadline where time.Sleep is too
// coarse and the limiter spins instead.
const spinThreshold = 2 * time.Millisecond

// AdaptiveLimiter paces frames against an absolute schedule rather than
// sleeping a fixed interval, so oversleeping one frame does not slow
// down the frames after it. Most of each wait is slept; the final
// stretch is spun for accuracy.
type AdaptiveLimiter struct {
	deadline time.Time
	started  time.Time
	frames   int64
}

// NewAdaptiveLimiter creates a limiter whose schedule starts now.
func NewAdaptiveLimiter() *AdaptiveLimiter {
	now := time.Now()
	return &AdaptiveLimiter{deadline: now, started: now}
}

// WaitForNextFrame blocks until the current frame's deadline, then
// advances the schedule by one frame. A caller that has fallen more
// than a few frames behind gets a fresh schedule instead of a burst of
// catch-up frames.
func (l *AdaptiveLimiter) WaitForNextFrame() {
	now := time.Now()
	wait := l.deadline.Sub(now)

	switch {
	case wait > spinThreshold:
		time.Sleep(wait - time.Millisecond)
		l.spin()
	case wait > 0:
		l.spin()
	case wait < -5*time.Millisecond:
		l.deadline = now
	}

	l.deadline = l.deadline.Add(FrameDuration)

	l.frames++
	if l.frames%600 == 0 {
		slog.Debug("frame pacing",
			"fps", float64(l.frames)/time.Since(l.started).Seconds())
	}
}

func (l *AdaptiveLimiter) spin() {
	for time.Now().Before(l.deadline) {
	}
}

// Reset restarts the schedule, for use after a pause.
func (l *AdaptiveLimiter) Reset() {
	now := time.Now()
	l.deadline = now
	l.started = now
	l.frames = 0
}
