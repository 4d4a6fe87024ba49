package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dotmatrixgb/dotmatrix/addr"
)

func TestTimer_div(t *testing.T) {
	var timer Timer

	timer.Tick(255)
	assert.Equal(t, uint8(0), timer.Read(addr.DIV))

	timer.Tick(1)
	assert.Equal(t, uint8(1), timer.Read(addr.DIV))

	timer.Tick(256)
	assert.Equal(t, uint8(2), timer.Read(addr.DIV))

	timer.Write(addr.DIV, 0x42)
	assert.Equal(t, uint8(0), timer.Read(addr.DIV), "any write resets DIV")
}

func TestTimer_timaRates(t *testing.T) {
	testCases := []struct {
		desc   string
		tac    uint8
		period int
	}{
		{desc: "4096 Hz", tac: 0x04, period: 1024},
		{desc: "262144 Hz", tac: 0x05, period: 16},
		{desc: "65536 Hz", tac: 0x06, period: 64},
		{desc: "16384 Hz", tac: 0x07, period: 256},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			var timer Timer
			timer.Write(addr.TAC, tC.tac)

			timer.Tick(tC.period * 10)
			assert.Equal(t, uint8(10), timer.Read(addr.TIMA))
		})
	}
}

func TestTimer_disabled(t *testing.T) {
	var timer Timer
	timer.Write(addr.TAC, 0x01) // select without enable

	timer.Tick(4096)
	assert.Equal(t, uint8(0), timer.Read(addr.TIMA))
}

func TestTimer_overflow(t *testing.T) {
	var timer Timer
	fired := 0
	timer.TimerInterruptHandler = func() { fired++ }

	timer.Write(addr.TAC, 0x05)
	timer.Write(addr.TMA, 0xAB)
	timer.Write(addr.TIMA, 0xFF)

	// the increment overflows TIMA, which reads 0 during the reload window
	timer.Tick(16)
	assert.Equal(t, uint8(0), timer.Read(addr.TIMA))
	assert.Equal(t, 0, fired)

	// after four cycles TIMA holds TMA, the interrupt follows a cycle later
	timer.Tick(4)
	assert.Equal(t, uint8(0xAB), timer.Read(addr.TIMA))
	assert.Equal(t, 0, fired)

	timer.Tick(1)
	assert.Equal(t, 1, fired)
}

func TestTimer_divWriteSpuriousIncrement(t *testing.T) {
	var timer Timer
	timer.Write(addr.TAC, 0x05) // bit 3 selected

	timer.Tick(8) // counter = 8, selected bit high
	timer.Write(addr.DIV, 0)

	assert.Equal(t, uint8(1), timer.Read(addr.TIMA), "the reset produces a falling edge")

	// with the selected bit low, the write has no effect on TIMA
	timer.Tick(4) // counter = 4
	timer.Write(addr.DIV, 0)
	assert.Equal(t, uint8(1), timer.Read(addr.TIMA))
}

func TestTimer_registerMasks(t *testing.T) {
	var timer Timer

	timer.Write(addr.TAC, 0xFF)
	assert.Equal(t, uint8(0xFF), timer.Read(addr.TAC), "unused TAC bits read as 1")

	timer.Write(addr.TAC, 0x00)
	assert.Equal(t, uint8(0xF8), timer.Read(addr.TAC))
}

func TestTimer_stateRoundTrip(t *testing.T) {
	var timer Timer
	timer.Write(addr.TAC, 0x05)
	timer.Write(addr.TMA, 0x10)
	timer.Tick(100)

	state := timer.State()

	var restored Timer
	restored.Restore(state)

	assert.Equal(t, timer.Read(addr.DIV), restored.Read(addr.DIV))
	assert.Equal(t, timer.Read(addr.TIMA), restored.Read(addr.TIMA))
	assert.Equal(t, timer.Read(addr.TMA), restored.Read(addr.TMA))
	assert.Equal(t, timer.Read(addr.TAC), restored.Read(addr.TAC))
}
