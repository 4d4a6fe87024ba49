package cpu

import "github.com/dotmatrixgb/dotmatrix/bit"

func (c *CPU) pushStack(value uint16) {
	c.Regs.SP--
	c.bus.Write(c.Regs.SP, bit.High(value))
	c.Regs.SP--
	c.bus.Write(c.Regs.SP, bit.Low(value))
}

func (c *CPU) popStack() uint16 {
	low := c.bus.Read(c.Regs.SP)
	c.Regs.SP++
	high := c.bus.Read(c.Regs.SP)
	c.Regs.SP++

	return bit.Combine(high, low)
}

func (c *CPU) inc(value uint8) uint8 {
	result := value + 1

	c.Regs.SetFlag(ZeroFlag, result == 0)
	c.Regs.SetFlag(HalfCarryFlag, value&0xF == 0xF)
	c.Regs.SetFlag(SubFlag, false)

	return result
}

func (c *CPU) dec(value uint8) uint8 {
	result := value - 1

	c.Regs.SetFlag(ZeroFlag, result == 0)
	c.Regs.SetFlag(HalfCarryFlag, value&0xF == 0)
	c.Regs.SetFlag(SubFlag, true)

	return result
}

// rlc rotates left through bit 7 into carry. The CB variant sets the
// zero flag from the result; RLCA always clears it.
func (c *CPU) rlc(value uint8, setZero bool) uint8 {
	carry := value >> 7
	result := (value << 1) | carry

	c.Regs.SetFlag(CarryFlag, carry == 1)
	c.Regs.SetFlag(ZeroFlag, setZero && result == 0)
	c.Regs.SetFlag(SubFlag, false)
	c.Regs.SetFlag(HalfCarryFlag, false)

	return result
}

func (c *CPU) rrc(value uint8, setZero bool) uint8 {
	carry := value & 1
	result := (value >> 1) | (carry << 7)

	c.Regs.SetFlag(CarryFlag, carry == 1)
	c.Regs.SetFlag(ZeroFlag, setZero && result == 0)
	c.Regs.SetFlag(SubFlag, false)
	c.Regs.SetFlag(HalfCarryFlag, false)

	return result
}

func (c *CPU) rl(value uint8, setZero bool) uint8 {
	oldCarry := c.Regs.FlagBit(CarryFlag)
	result := (value << 1) | oldCarry

	c.Regs.SetFlag(CarryFlag, value>>7 == 1)
	c.Regs.SetFlag(ZeroFlag, setZero && result == 0)
	c.Regs.SetFlag(SubFlag, false)
	c.Regs.SetFlag(HalfCarryFlag, false)

	return result
}

func (c *CPU) rr(value uint8, setZero bool) uint8 {
	oldCarry := c.Regs.FlagBit(CarryFlag) << 7
	result := (value >> 1) | oldCarry

	c.Regs.SetFlag(CarryFlag, value&1 == 1)
	c.Regs.SetFlag(ZeroFlag, setZero && result == 0)
	c.Regs.SetFlag(SubFlag, false)
	c.Regs.SetFlag(HalfCarryFlag, false)

	return result
}

func (c *CPU) sla(value uint8) uint8 {
	result := value << 1

	c.Regs.SetFlag(CarryFlag, value>>7 == 1)
	c.Regs.SetFlag(ZeroFlag, result == 0)
	c.Regs.SetFlag(SubFlag, false)
	c.Regs.SetFlag(HalfCarryFlag, false)

	return result
}

// sra shifts right keeping bit 7 (arithmetic shift).
func (c *CPU) sra(value uint8) uint8 {
	result := (value >> 1) | (value & 0x80)

	c.Regs.SetFlag(CarryFlag, value&1 == 1)
	c.Regs.SetFlag(ZeroFlag, result == 0)
	c.Regs.SetFlag(SubFlag, false)
	c.Regs.SetFlag(HalfCarryFlag, false)

	return result
}

func (c *CPU) srl(value uint8) uint8 {
	result := value >> 1

	c.Regs.SetFlag(CarryFlag, value&1 == 1)
	c.Regs.SetFlag(ZeroFlag, result == 0)
	c.Regs.SetFlag(SubFlag, false)
	c.Regs.SetFlag(HalfCarryFlag, false)

	return result
}

func (c *CPU) swap(value uint8) uint8 {
	result := (value >> 4) | (value << 4)

	c.Regs.SetFlag(ZeroFlag, result == 0)
	c.Regs.SetFlag(SubFlag, false)
	c.Regs.SetFlag(HalfCarryFlag, false)
	c.Regs.SetFlag(CarryFlag, false)

	return result
}

// bitTest sets the zero flag from the selected bit. Carry is untouched.
func (c *CPU) bitTest(index, value uint8) {
	c.Regs.SetFlag(ZeroFlag, !bit.IsSet(index, value))
	c.Regs.SetFlag(SubFlag, false)
	c.Regs.SetFlag(HalfCarryFlag, true)
}

func (c *CPU) addToA(value uint8) {
	a := c.Regs.A
	result := a + value

	c.Regs.SetFlag(ZeroFlag, result == 0)
	c.Regs.SetFlag(SubFlag, false)
	c.Regs.SetFlag(HalfCarryFlag, (a&0xF)+(value&0xF) > 0xF)
	c.Regs.SetFlag(CarryFlag, uint16(a)+uint16(value) > 0xFF)

	c.Regs.A = result
}

func (c *CPU) adcToA(value uint8) {
	a := c.Regs.A
	carry := c.Regs.FlagBit(CarryFlag)
	result := a + value + carry

	c.Regs.SetFlag(ZeroFlag, result == 0)
	c.Regs.SetFlag(SubFlag, false)
	c.Regs.SetFlag(HalfCarryFlag, (a&0xF)+(value&0xF)+carry > 0xF)
	c.Regs.SetFlag(CarryFlag, uint16(a)+uint16(value)+uint16(carry) > 0xFF)

	c.Regs.A = result
}

func (c *CPU) subFromA(value uint8) {
	a := c.Regs.A
	result := a - value

	c.Regs.SetFlag(ZeroFlag, result == 0)
	c.Regs.SetFlag(SubFlag, true)
	c.Regs.SetFlag(HalfCarryFlag, a&0xF < value&0xF)
	c.Regs.SetFlag(CarryFlag, a < value)

	c.Regs.A = result
}

func (c *CPU) sbcFromA(value uint8) {
	a := c.Regs.A
	carry := c.Regs.FlagBit(CarryFlag)
	result := a - value - carry

	c.Regs.SetFlag(ZeroFlag, result == 0)
	c.Regs.SetFlag(SubFlag, true)
	c.Regs.SetFlag(HalfCarryFlag, a&0xF < (value&0xF)+carry)
	c.Regs.SetFlag(CarryFlag, uint16(a) < uint16(value)+uint16(carry))

	c.Regs.A = result
}

func (c *CPU) andA(value uint8) {
	c.Regs.A &= value

	c.Regs.SetFlag(ZeroFlag, c.Regs.A == 0)
	c.Regs.SetFlag(SubFlag, false)
	c.Regs.SetFlag(HalfCarryFlag, true)
	c.Regs.SetFlag(CarryFlag, false)
}

func (c *CPU) xorA(value uint8) {
	c.Regs.A ^= value

	c.Regs.SetFlag(ZeroFlag, c.Regs.A == 0)
	c.Regs.SetFlag(SubFlag, false)
	c.Regs.SetFlag(HalfCarryFlag, false)
	c.Regs.SetFlag(CarryFlag, false)
}

func (c *CPU) orA(value uint8) {
	c.Regs.A |= value

	c.Regs.SetFlag(ZeroFlag, c.Regs.A == 0)
	c.Regs.SetFlag(SubFlag, false)
	c.Regs.SetFlag(HalfCarryFlag, false)
	c.Regs.SetFlag(CarryFlag, false)
}

// compareA performs A - value for flags only.
func (c *CPU) compareA(value uint8) {
	a := c.Regs.A

	c.Regs.SetFlag(ZeroFlag, a == value)
	c.Regs.SetFlag(SubFlag, true)
	c.Regs.SetFlag(HalfCarryFlag, a&0xF < value&0xF)
	c.Regs.SetFlag(CarryFlag, a < value)
}

func (c *CPU) addToHL(value uint16) {
	hl := c.Regs.HL()
	result := hl + value

	c.Regs.SetFlag(SubFlag, false)
	c.Regs.SetFlag(HalfCarryFlag, (hl&0xFFF)+(value&0xFFF) > 0xFFF)
	c.Regs.SetFlag(CarryFlag, uint32(hl)+uint32(value) > 0xFFFF)

	c.Regs.SetHL(result)
}

// addSPOffset computes SP plus a signed immediate, setting the half-carry
// and carry flags from the low byte addition as the hardware does.
func (c *CPU) addSPOffset() uint16 {
	offset := uint16(c.readSignedImmediate())
	sp := c.Regs.SP

	c.Regs.SetFlag(ZeroFlag, false)
	c.Regs.SetFlag(SubFlag, false)
	c.Regs.SetFlag(HalfCarryFlag, (sp&0xF)+(offset&0xF) > 0xF)
	c.Regs.SetFlag(CarryFlag, (sp&0xFF)+(offset&0xFF) > 0xFF)

	return sp + offset
}

// daa adjusts A to valid binary-coded decimal after an add or subtract.
func (c *CPU) daa() {
	a := c.Regs.A

	if !c.Regs.HasFlag(SubFlag) {
		if c.Regs.HasFlag(CarryFlag) || a > 0x99 {
			a += 0x60
			c.Regs.SetFlag(CarryFlag, true)
		}
		if c.Regs.HasFlag(HalfCarryFlag) || a&0xF > 0x09 {
			a += 0x06
		}
	} else {
		if c.Regs.HasFlag(CarryFlag) {
			a -= 0x60
		}
		if c.Regs.HasFlag(HalfCarryFlag) {
			a -= 0x06
		}
	}

	c.Regs.A = a
	c.Regs.SetFlag(ZeroFlag, a == 0)
	c.Regs.SetFlag(HalfCarryFlag, false)
}

// jr jumps by the signed immediate offset, relative to the address after
// the operand.
func (c *CPU) jr() {
	offset := c.readSignedImmediate()
	c.Regs.PC += uint16(offset)
}

func (c *CPU) call(target uint16) {
	c.pushStack(c.Regs.PC)
	c.Regs.PC = target
}

func (c *CPU) ret() {
	c.Regs.PC = c.popStack()
}

func (c *CPU) rst(target uint16) {
	c.pushStack(c.Regs.PC)
	c.Regs.PC = target
}
