// Package timing provides clock constants and frame pacing for the
// emulation loop.
package timing

import "time"

const (
	// ClockSpeed is the machine crystal frequency in Hz.
	ClockSpeed = 4194304
	// CyclesPerFrame is the clock cycles between consecutive V-blanks.
	CyclesPerFrame = 70224
	// FrameDuration is the wall-clock length of one frame, about
	// 16.74ms (59.73 frames per second).
	FrameDuration = time.Second * CyclesPerFrame / ClockSpeed
)

// Limiter paces calls to the frame loop.
type Limiter interface {
	// WaitForNextFrame blocks until the next frame is due. Returns
	// immediately when the caller is behind schedule.
	WaitForNextFrame()
	// Reset forgets the accumulated schedule, for use after a pause.
	Reset()
}

// Uncapped returns a limiter that never waits, for fast-forward and
// headless runs.
func Uncapped() Limiter { return uncapped{} }

type uncapped struct{}

func (uncapped) WaitForNextFrame() {}
func (uncapped) Reset()            {}
