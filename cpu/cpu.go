package cpu

import (
	"github.com/dotmatrixgb/dotmatrix/addr"
	"github.com/dotmatrixgb/dotmatrix/bit"
)

// Bus provides the memory interface the CPU executes against.
type Bus interface {
	Read(address uint16) byte
	Write(address uint16, value byte)
}

// interruptDispatchCycles is the fixed cost of pushing PC and jumping to
// an interrupt vector.
const interruptDispatchCycles = 20

// CPU is the Sharp LR35902 execution state.
type CPU struct {
	Regs Registers

	// interruptsEnabled is the IME flag. eiPending implements the EI
	// delay: interrupts enable only after the instruction following EI.
	interruptsEnabled bool
	eiPending         bool
	halted            bool
	stopped           bool

	currentOpcode uint16
	cycles        uint64

	bus Bus
}

// New returns a CPU with post-boot register values attached to the bus.
func New(bus Bus) *CPU {
	return &CPU{
		Regs: NewRegisters(),
		bus:  bus,
	}
}

// Reset restores power-on state. The bus is kept.
func (c *CPU) Reset() {
	c.Regs = NewRegisters()
	c.interruptsEnabled = false
	c.eiPending = false
	c.halted = false
	c.stopped = false
	c.currentOpcode = 0
	c.cycles = 0
}

// Step executes a single instruction and then dispatches at most one
// pending interrupt. Returns the total cycle cost, including the fixed
// dispatch cost when an interrupt was serviced.
func (c *CPU) Step() int {
	if c.eiPending {
		c.eiPending = false
		c.interruptsEnabled = true
	}

	cycles := c.exec()
	cycles += c.serviceInterrupt()
	c.cycles += uint64(cycles)

	return cycles
}

// exec runs one instruction, or idles for 4 cycles while halted.
func (c *CPU) exec() int {
	if c.halted {
		// HALT ends when any interrupt is both enabled and requested,
		// even with IME cleared.
		if c.pendingInterrupts() != 0 {
			c.halted = false
		} else {
			return 4
		}
	}

	instruction := Decode(c)

	c.Regs.PC++
	if bit.High(c.currentOpcode) == 0xCB {
		c.Regs.PC++
	}

	return instruction(c)
}

// serviceInterrupt dispatches the highest-priority enabled and pending
// interrupt, if IME allows it. Returns the extra cycle cost (0 if no
// interrupt was serviced).
func (c *CPU) serviceInterrupt() int {
	if !c.interruptsEnabled {
		return 0
	}

	pending := c.pendingInterrupts()
	if pending == 0 {
		return 0
	}

	for i := uint8(0); i < 5; i++ {
		if !bit.IsSet(i, pending) {
			continue
		}

		c.bus.Write(addr.IF, bit.Clear(i, c.bus.Read(addr.IF)))
		c.interruptsEnabled = false
		c.halted = false

		c.pushStack(c.Regs.PC)
		c.Regs.PC = addr.Interrupt(i).Vector()

		return interruptDispatchCycles
	}

	return 0
}

// pendingInterrupts returns the set of interrupts that are both enabled
// and requested.
func (c *CPU) pendingInterrupts() uint8 {
	return c.bus.Read(addr.IE) & c.bus.Read(addr.IF) & 0x1F
}

// peekImmediate returns the byte at the address pointed to by PC.
func (c *CPU) peekImmediate() uint8 {
	return c.bus.Read(c.Regs.PC)
}

// peekImmediateWord returns the word at PC (little-endian).
func (c *CPU) peekImmediateWord() uint16 {
	low := c.bus.Read(c.Regs.PC)
	high := c.bus.Read(c.Regs.PC + 1)
	return bit.Combine(high, low)
}

// readImmediate returns the immediate byte and advances PC past it.
func (c *CPU) readImmediate() uint8 {
	n := c.peekImmediate()
	c.Regs.PC++
	return n
}

// readImmediateWord returns the immediate word and advances PC past it.
func (c *CPU) readImmediateWord() uint16 {
	nn := c.peekImmediateWord()
	c.Regs.PC += 2
	return nn
}

// readSignedImmediate returns the immediate byte as a signed offset and
// advances PC past it.
func (c *CPU) readSignedImmediate() int8 {
	return int8(c.readImmediate())
}

// IsHalted reports whether the CPU is in the HALT state.
func (c *CPU) IsHalted() bool { return c.halted }

// IsStopped reports whether the CPU executed STOP.
func (c *CPU) IsStopped() bool { return c.stopped }

// InterruptsEnabled reports the IME flag.
func (c *CPU) InterruptsEnabled() bool { return c.interruptsEnabled }

// Cycles returns the total cycle count executed since power-on.
func (c *CPU) Cycles() uint64 { return c.cycles }

// State captures the CPU-internal flags for snapshots.
type State struct {
	Regs              Registers `json:"regs"`
	InterruptsEnabled bool      `json:"ime"`
	EIPending         bool      `json:"eiPending"`
	Halted            bool      `json:"halted"`
	Stopped           bool      `json:"stopped"`
	Cycles            uint64    `json:"cycles"`
}

// Save captures the full CPU state.
func (c *CPU) Save() State {
	return State{
		Regs:              c.Regs,
		InterruptsEnabled: c.interruptsEnabled,
		EIPending:         c.eiPending,
		Halted:            c.halted,
		Stopped:           c.stopped,
		Cycles:            c.cycles,
	}
}

// Restore replaces the full CPU state.
func (c *CPU) Restore(s State) {
	c.Regs = s.Regs
	c.interruptsEnabled = s.InterruptsEnabled
	c.eiPending = s.EIPending
	c.halted = s.Halted
	c.stopped = s.Stopped
	c.cycles = s.Cycles
}
