// Package serial implements the link port. With no peer attached the
// port behaves like hardware driving an open cable: outgoing bytes
// vanish and 0xFF is clocked in.
package serial

import (
	"log/slog"

	"github.com/dotmatrixgb/dotmatrix/addr"
)

// transferCycles is the cost of shifting one byte at the normal clock.
const transferCycles = 4096

const (
	startBit         = 0x80
	internalClockBit = 0x01
)

// LogSink is the link-port device used when no peer is connected. It
// collects outgoing bytes into lines and logs them, which is how many
// test programs report their results.
type LogSink struct {
	sb byte
	sc byte

	// remaining cycles of an in-flight transfer, 0 when idle
	remaining int
	instant   bool

	onComplete func()
	logger     *slog.Logger
	line       []byte
}

// LogSinkOption configures a LogSink.
type LogSinkOption func(*LogSink)

// WithFixedTiming makes each byte take the hardware's ~4096 cycles
// instead of completing on the SC write.
func WithFixedTiming() LogSinkOption {
	return func(s *LogSink) { s.instant = false }
}

// NewLogSink creates a link-port sink. onComplete runs when a byte
// finishes shifting; wire it to the serial interrupt request.
func NewLogSink(onComplete func(), opts ...LogSinkOption) *LogSink {
	s := &LogSink{
		onComplete: onComplete,
		instant:    true,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Read returns the SB or SC register.
func (s *LogSink) Read(address uint16) byte {
	switch address {
	case addr.SB:
		return s.sb
	case addr.SC:
		return s.sc
	}
	panic("serial: read outside the link port registers")
}

// Write stores SB or SC. Setting SC's start bit with the internal
// clock selected begins a transfer.
func (s *LogSink) Write(address uint16, value byte) {
	switch address {
	case addr.SB:
		s.sb = value
	case addr.SC:
		s.sc = value
		s.startIfRequested()
	default:
		panic("serial: write outside the link port registers")
	}
}

// Tick advances an in-flight transfer.
func (s *LogSink) Tick(cycles int) {
	if s.remaining == 0 {
		return
	}
	s.remaining -= cycles
	if s.remaining <= 0 {
		s.remaining = 0
		s.finish()
	}
}

// Reset returns the port to power-on state and drops any buffered line.
func (s *LogSink) Reset() {
	s.sb = 0
	s.sc = 0
	s.remaining = 0
	s.line = s.line[:0]
}

func (s *LogSink) startIfRequested() {
	if s.remaining > 0 {
		return
	}
	// a master transfer needs both the start bit and the internal clock;
	// with bit 0 clear the port waits on an external clock that never
	// arrives
	if s.sc&(startBit|internalClockBit) != startBit|internalClockBit {
		return
	}

	s.capture(s.sb)

	if s.instant {
		s.finish()
		return
	}
	s.remaining = transferCycles
}

// finish completes the shift: the open cable clocks in 0xFF, the start
// bit drops and the completion hook fires.
func (s *LogSink) finish() {
	s.sb = 0xFF
	s.sc &^= startBit
	if s.onComplete != nil {
		s.onComplete()
	}
}

// capture buffers printable traffic and logs it line by line.
func (s *LogSink) capture(b byte) {
	if b == 0 || b == '\n' || b == '\r' {
		if len(s.line) > 0 {
			s.logger.Info("serial", "line", string(s.line))
			s.line = s.line[:0]
		}
		return
	}
	s.line = append(s.line, b)
}
