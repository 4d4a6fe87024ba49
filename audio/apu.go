package audio

import (
	"github.com/dotmatrixgb/dotmatrix/addr"
	"github.com/dotmatrixgb/dotmatrix/bit"
)

const (
	// frameSequencerCycles is the CPU cycle period of the 512 Hz frame
	// sequencer that clocks length, envelope and sweep units.
	frameSequencerCycles = 8192

	// accumulatedCyclesBound caps the pending cycle counter so an idle
	// machine cannot grow it without limit.
	accumulatedCyclesBound = 1 << 20

	registerCount = 0x30
)

// APU tracks audio register state and timing. It does not synthesize
// samples; it keeps the register file and frame sequencer coherent so
// timing-sensitive code (and snapshots) observe the right values.
type APU struct {
	enabled   bool
	registers [registerCount]byte

	frameStep         int // current step (0-7) of the frame sequencer
	frameCycles       int // CPU cycles since the last sequencer tick
	accumulatedCycles uint64
}

// New creates an APU with the master enable set.
func New() *APU {
	return &APU{enabled: true}
}

// Tick advances the frame sequencer by the given CPU cycles.
func (a *APU) Tick(cycles int) {
	a.accumulatedCycles += uint64(cycles)
	if a.accumulatedCycles > accumulatedCyclesBound {
		a.accumulatedCycles = accumulatedCyclesBound
	}

	if !a.enabled {
		return
	}

	a.frameCycles += cycles
	for a.frameCycles >= frameSequencerCycles {
		a.frameCycles -= frameSequencerCycles
		a.frameStep = (a.frameStep + 1) % 8
	}
}

// ReadRegister reads an audio register in 0xFF10-0xFF3F.
func (a *APU) ReadRegister(address uint16) byte {
	if address < addr.AudioStart || address > addr.AudioEnd {
		return 0xFF
	}

	value := a.registers[address-addr.AudioStart]
	if address == addr.NR52 {
		value &= 0x7F
		if a.enabled {
			value |= 0x80
		}
		// bits 4-6 are unused
		value |= 0x70
	}
	return value
}

// WriteRegister writes an audio register. While the master enable is off
// only NR52 itself is writable.
func (a *APU) WriteRegister(address uint16, value byte) {
	if address < addr.AudioStart || address > addr.AudioEnd {
		return
	}

	if address == addr.NR52 {
		wasEnabled := a.enabled
		a.enabled = bit.IsSet(7, value)
		if wasEnabled && !a.enabled {
			// powering off clears every register and resets the sequencer
			a.registers = [registerCount]byte{}
			a.frameStep = 0
			a.frameCycles = 0
		}
		return
	}

	if !a.enabled {
		return
	}

	a.registers[address-addr.AudioStart] = value
}

// FrameStep returns the current frame sequencer step.
func (a *APU) FrameStep() int { return a.frameStep }

// State is the serializable APU snapshot.
type State struct {
	Enabled           bool   `json:"enabled"`
	Registers         []byte `json:"registers"`
	FrameStep         int    `json:"frameStep"`
	FrameCycles       int    `json:"frameCycles"`
	AccumulatedCycles uint64 `json:"accumulatedCycles"`
}

func (a *APU) Save() State {
	return State{
		Enabled:           a.enabled,
		Registers:         append([]byte(nil), a.registers[:]...),
		FrameStep:         a.frameStep,
		FrameCycles:       a.frameCycles,
		AccumulatedCycles: a.accumulatedCycles,
	}
}

func (a *APU) Restore(s State) {
	a.enabled = s.Enabled
	copy(a.registers[:], s.Registers)
	a.frameStep = s.FrameStep
	a.frameCycles = s.FrameCycles
	a.accumulatedCycles = s.AccumulatedCycles
}
