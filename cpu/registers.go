package cpu

import "github.com/dotmatrixgb/dotmatrix/bit"

// Flag is one of the 4 condition flags held in the high nibble of F.
type Flag uint8

const (
	ZeroFlag      Flag = 0x80
	SubFlag       Flag = 0x40
	HalfCarryFlag Flag = 0x20
	CarryFlag     Flag = 0x10
)

// Registers holds the architectural CPU state: eight 8-bit registers
// pairable into AF/BC/DE/HL, the stack pointer and the program counter.
// All operations wrap on overflow; there are no failure modes.
type Registers struct {
	A, F uint8
	B, C uint8
	D, E uint8
	H, L uint8
	SP   uint16
	PC   uint16
}

// NewRegisters returns registers set to the post-boot-ROM values.
func NewRegisters() Registers {
	return Registers{
		A: 0x01, F: 0xB0,
		B: 0x00, C: 0x13,
		D: 0x00, E: 0xD8,
		H: 0x01, L: 0x4D,
		SP: 0xFFFE,
		PC: 0x0100,
	}
}

func (r *Registers) AF() uint16 { return bit.Combine(r.A, r.F) }
func (r *Registers) BC() uint16 { return bit.Combine(r.B, r.C) }
func (r *Registers) DE() uint16 { return bit.Combine(r.D, r.E) }
func (r *Registers) HL() uint16 { return bit.Combine(r.H, r.L) }

// SetAF writes the AF pair. The low nibble of F always reads as zero.
func (r *Registers) SetAF(value uint16) {
	r.A = bit.High(value)
	r.F = bit.Low(value) & 0xF0
}

func (r *Registers) SetBC(value uint16) {
	r.B = bit.High(value)
	r.C = bit.Low(value)
}

func (r *Registers) SetDE(value uint16) {
	r.D = bit.High(value)
	r.E = bit.Low(value)
}

func (r *Registers) SetHL(value uint16) {
	r.H = bit.High(value)
	r.L = bit.Low(value)
}

// SetFlag sets or clears a condition flag.
func (r *Registers) SetFlag(flag Flag, condition bool) {
	if condition {
		r.F |= uint8(flag)
	} else {
		r.F &= ^uint8(flag)
	}
}

// HasFlag reports whether the given flag is set.
func (r *Registers) HasFlag(flag Flag) bool {
	return r.F&uint8(flag) != 0
}

// FlagBit returns 1 if the passed flag is set, 0 otherwise.
func (r *Registers) FlagBit(flag Flag) uint8 {
	if r.HasFlag(flag) {
		return 1
	}

	return 0
}

// FlagString returns a human-readable view of the flag register ("Z-H-").
func (r *Registers) FlagString() string {
	names := [4]struct {
		flag Flag
		ch   byte
	}{
		{ZeroFlag, 'Z'}, {SubFlag, 'N'}, {HalfCarryFlag, 'H'}, {CarryFlag, 'C'},
	}

	out := make([]byte, 4)
	for i, n := range names {
		if r.HasFlag(n.flag) {
			out[i] = n.ch
		} else {
			out[i] = '-'
		}
	}
	return string(out)
}
