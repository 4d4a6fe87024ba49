package memory

import (
	"github.com/dotmatrixgb/dotmatrix/addr"
	"github.com/dotmatrixgb/dotmatrix/bit"
)

// tacLookup maps the TAC clock select (bits 1-0) to the bit position of
// the 16-bit internal divider used as the timer's clock source. TIMA
// increments on falling edges of the selected bit while TAC bit 2 is set.
//
//	00 -> bit 9  (4096 Hz)
//	01 -> bit 3  (262144 Hz)
//	10 -> bit 5  (65536 Hz)
//	11 -> bit 7  (16384 Hz)
var tacLookup = [4]uint16{9, 3, 5, 7}

// Timer implements the DIV/TIMA/TMA/TAC register block.
type Timer struct {
	systemCounter uint16 // internal 16-bit counter, DIV is the upper 8 bits
	lastTimerBit  bool   // previous state of the selected bit, for edge detection
	timaOverflow  int    // cycles remaining in the TIMA overflow window
	timaDelayInt  bool   // interrupt fires one M-cycle after the TMA reload

	tima byte
	tma  byte
	tac  byte

	// TimerInterruptHandler is invoked to request the timer interrupt.
	TimerInterruptHandler func()
}

// SetSeed initializes the internal divider counter, and with it DIV.
func (t *Timer) SetSeed(seed uint16) {
	t.systemCounter = seed
	t.lastTimerBit = false
	t.timaOverflow = 0
	t.timaDelayInt = false
}

func (t *Timer) Tick(cycles int) {
	for i := 0; i < cycles; i++ {
		if t.timaDelayInt {
			if t.TimerInterruptHandler != nil {
				t.TimerInterruptHandler()
			}
			t.timaDelayInt = false
		}

		t.systemCounter++

		if t.timaOverflow > 0 {
			// in the overflow window TIMA reads 0, then reloads from TMA
			t.timaOverflow--
			if t.timaOverflow == 0 {
				t.tima = t.tma
				t.timaDelayInt = true
			}
			continue
		}

		if bit.IsSet(2, t.tac) {
			current := bit.IsSet16(tacLookup[t.tac&0x03], t.systemCounter)

			if t.lastTimerBit && !current {
				t.incrementTIMA()
			}

			t.lastTimerBit = current
		} else {
			t.lastTimerBit = false
		}
	}
}

func (t *Timer) incrementTIMA() {
	if t.tima == 0xFF {
		t.timaOverflow = 4
	}
	t.tima++
}

func (t *Timer) Read(address uint16) byte {
	switch address {
	case addr.DIV:
		return byte(t.systemCounter >> 8)
	case addr.TIMA:
		return t.tima
	case addr.TMA:
		return t.tma
	case addr.TAC:
		return t.tac | 0xF8
	default:
		return 0xFF
	}
}

func (t *Timer) Write(address uint16, value byte) {
	switch address {
	case addr.DIV:
		// resetting the counter while the selected bit is high produces
		// a falling edge, so TIMA takes a spurious increment
		if bit.IsSet(2, t.tac) && bit.IsSet16(tacLookup[t.tac&0x03], t.systemCounter) {
			t.incrementTIMA()
		}
		t.systemCounter = 0
		t.lastTimerBit = false
	case addr.TIMA:
		t.tima = value
	case addr.TMA:
		t.tma = value
	case addr.TAC:
		t.tac = value & 0x07
	}
}

// TimerState is the serializable timer snapshot.
type TimerState struct {
	SystemCounter uint16 `json:"systemCounter"`
	LastTimerBit  bool   `json:"lastTimerBit"`
	TIMAOverflow  int    `json:"timaOverflow"`
	TIMADelayInt  bool   `json:"timaDelayInt"`
	TIMA          byte   `json:"tima"`
	TMA           byte   `json:"tma"`
	TAC           byte   `json:"tac"`
}

func (t *Timer) State() TimerState {
	return TimerState{
		SystemCounter: t.systemCounter,
		LastTimerBit:  t.lastTimerBit,
		TIMAOverflow:  t.timaOverflow,
		TIMADelayInt:  t.timaDelayInt,
		TIMA:          t.tima,
		TMA:           t.tma,
		TAC:           t.tac,
	}
}

func (t *Timer) Restore(s TimerState) {
	t.systemCounter = s.SystemCounter
	t.lastTimerBit = s.LastTimerBit
	t.timaOverflow = s.TIMAOverflow
	t.timaDelayInt = s.TIMADelayInt
	t.tima = s.TIMA
	t.tma = s.TMA
	t.tac = s.TAC
}
