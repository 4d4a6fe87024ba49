package cpu

import "github.com/dotmatrixgb/dotmatrix/bit"

//NOP
//#0x00:
func opcode0x00(_ *CPU) int {
	return 4
}

//LD BC, nn
//#0x01:
func opcode0x01(cpu *CPU) int {
	cpu.Regs.SetBC(cpu.readImmediateWord())
	return 12
}

//LD DE, nn
//#0x11:
func opcode0x11(cpu *CPU) int {
	cpu.Regs.SetDE(cpu.readImmediateWord())
	return 12
}

//LD HL, nn
//#0x21:
func opcode0x21(cpu *CPU) int {
	cpu.Regs.SetHL(cpu.readImmediateWord())
	return 12
}

//LD SP, nn
//#0x31:
func opcode0x31(cpu *CPU) int {
	cpu.Regs.SP = cpu.readImmediateWord()
	return 12
}

//LD (BC), A
//#0x02:
func opcode0x02(cpu *CPU) int {
	cpu.bus.Write(cpu.Regs.BC(), cpu.Regs.A)
	return 8
}

//LD (DE), A
//#0x12:
func opcode0x12(cpu *CPU) int {
	cpu.bus.Write(cpu.Regs.DE(), cpu.Regs.A)
	return 8
}

//INC BC
//#0x03:
func opcode0x03(cpu *CPU) int {
	cpu.Regs.SetBC(cpu.Regs.BC() + 1)
	return 8
}

//INC DE
//#0x13:
func opcode0x13(cpu *CPU) int {
	cpu.Regs.SetDE(cpu.Regs.DE() + 1)
	return 8
}

//INC HL
//#0x23:
func opcode0x23(cpu *CPU) int {
	cpu.Regs.SetHL(cpu.Regs.HL() + 1)
	return 8
}

//INC SP
//#0x33:
func opcode0x33(cpu *CPU) int {
	cpu.Regs.SP++
	return 8
}

//DEC BC
//#0x0B:
func opcode0x0B(cpu *CPU) int {
	cpu.Regs.SetBC(cpu.Regs.BC() - 1)
	return 8
}

//DEC DE
//#0x1B:
func opcode0x1B(cpu *CPU) int {
	cpu.Regs.SetDE(cpu.Regs.DE() - 1)
	return 8
}

//DEC HL
//#0x2B:
func opcode0x2B(cpu *CPU) int {
	cpu.Regs.SetHL(cpu.Regs.HL() - 1)
	return 8
}

//DEC SP
//#0x3B:
func opcode0x3B(cpu *CPU) int {
	cpu.Regs.SP--
	return 8
}

//INC B
//#0x04:
func opcode0x04(cpu *CPU) int {
	cpu.Regs.B = cpu.inc(cpu.Regs.B)
	return 4
}

//INC C
//#0x0C:
func opcode0x0C(cpu *CPU) int {
	cpu.Regs.C = cpu.inc(cpu.Regs.C)
	return 4
}

//INC D
//#0x14:
func opcode0x14(cpu *CPU) int {
	cpu.Regs.D = cpu.inc(cpu.Regs.D)
	return 4
}

//INC E
//#0x1C:
func opcode0x1C(cpu *CPU) int {
	cpu.Regs.E = cpu.inc(cpu.Regs.E)
	return 4
}

//INC H
//#0x24:
func opcode0x24(cpu *CPU) int {
	cpu.Regs.H = cpu.inc(cpu.Regs.H)
	return 4
}

//INC L
//#0x2C:
func opcode0x2C(cpu *CPU) int {
	cpu.Regs.L = cpu.inc(cpu.Regs.L)
	return 4
}

//INC (HL)
//#0x34:
func opcode0x34(cpu *CPU) int {
	cpu.bus.Write(cpu.Regs.HL(), cpu.inc(cpu.bus.Read(cpu.Regs.HL())))
	return 12
}

//INC A
//#0x3C:
func opcode0x3C(cpu *CPU) int {
	cpu.Regs.A = cpu.inc(cpu.Regs.A)
	return 4
}

//DEC B
//#0x05:
func opcode0x05(cpu *CPU) int {
	cpu.Regs.B = cpu.dec(cpu.Regs.B)
	return 4
}

//DEC C
//#0x0D:
func opcode0x0D(cpu *CPU) int {
	cpu.Regs.C = cpu.dec(cpu.Regs.C)
	return 4
}

//DEC D
//#0x15:
func opcode0x15(cpu *CPU) int {
	cpu.Regs.D = cpu.dec(cpu.Regs.D)
	return 4
}

//DEC E
//#0x1D:
func opcode0x1D(cpu *CPU) int {
	cpu.Regs.E = cpu.dec(cpu.Regs.E)
	return 4
}

//DEC H
//#0x25:
func opcode0x25(cpu *CPU) int {
	cpu.Regs.H = cpu.dec(cpu.Regs.H)
	return 4
}

//DEC L
//#0x2D:
func opcode0x2D(cpu *CPU) int {
	cpu.Regs.L = cpu.dec(cpu.Regs.L)
	return 4
}

//DEC (HL)
//#0x35:
func opcode0x35(cpu *CPU) int {
	cpu.bus.Write(cpu.Regs.HL(), cpu.dec(cpu.bus.Read(cpu.Regs.HL())))
	return 12
}

//DEC A
//#0x3D:
func opcode0x3D(cpu *CPU) int {
	cpu.Regs.A = cpu.dec(cpu.Regs.A)
	return 4
}

//LD B, n
//#0x06:
func opcode0x06(cpu *CPU) int {
	cpu.Regs.B = cpu.readImmediate()
	return 8
}

//LD C, n
//#0x0E:
func opcode0x0E(cpu *CPU) int {
	cpu.Regs.C = cpu.readImmediate()
	return 8
}

//LD D, n
//#0x16:
func opcode0x16(cpu *CPU) int {
	cpu.Regs.D = cpu.readImmediate()
	return 8
}

//LD E, n
//#0x1E:
func opcode0x1E(cpu *CPU) int {
	cpu.Regs.E = cpu.readImmediate()
	return 8
}

//LD H, n
//#0x26:
func opcode0x26(cpu *CPU) int {
	cpu.Regs.H = cpu.readImmediate()
	return 8
}

//LD L, n
//#0x2E:
func opcode0x2E(cpu *CPU) int {
	cpu.Regs.L = cpu.readImmediate()
	return 8
}

//LD (HL), n
//#0x36:
func opcode0x36(cpu *CPU) int {
	cpu.bus.Write(cpu.Regs.HL(), cpu.readImmediate())
	return 12
}

//LD A, n
//#0x3E:
func opcode0x3E(cpu *CPU) int {
	cpu.Regs.A = cpu.readImmediate()
	return 8
}

//RLCA
//#0x07:
func opcode0x07(cpu *CPU) int {
	cpu.Regs.A = cpu.rlc(cpu.Regs.A, false)
	return 4
}

//RRCA
//#0x0F:
func opcode0x0F(cpu *CPU) int {
	cpu.Regs.A = cpu.rrc(cpu.Regs.A, false)
	return 4
}

//RLA
//#0x17:
func opcode0x17(cpu *CPU) int {
	cpu.Regs.A = cpu.rl(cpu.Regs.A, false)
	return 4
}

//RRA
//#0x1F:
func opcode0x1F(cpu *CPU) int {
	cpu.Regs.A = cpu.rr(cpu.Regs.A, false)
	return 4
}

//LD (nn), SP
//#0x08:
func opcode0x08(cpu *CPU) int {
	address := cpu.readImmediateWord()
	cpu.bus.Write(address, bit.Low(cpu.Regs.SP))
	cpu.bus.Write(address+1, bit.High(cpu.Regs.SP))
	return 20
}

//ADD HL, BC
//#0x09:
func opcode0x09(cpu *CPU) int {
	cpu.addToHL(cpu.Regs.BC())
	return 8
}

//ADD HL, DE
//#0x19:
func opcode0x19(cpu *CPU) int {
	cpu.addToHL(cpu.Regs.DE())
	return 8
}

//ADD HL, HL
//#0x29:
func opcode0x29(cpu *CPU) int {
	cpu.addToHL(cpu.Regs.HL())
	return 8
}

//ADD HL, SP
//#0x39:
func opcode0x39(cpu *CPU) int {
	cpu.addToHL(cpu.Regs.SP)
	return 8
}

//LD A, (BC)
//#0x0A:
func opcode0x0A(cpu *CPU) int {
	cpu.Regs.A = cpu.bus.Read(cpu.Regs.BC())
	return 8
}

//LD A, (DE)
//#0x1A:
func opcode0x1A(cpu *CPU) int {
	cpu.Regs.A = cpu.bus.Read(cpu.Regs.DE())
	return 8
}

//STOP
//#0x10:
func opcode0x10(cpu *CPU) int {
	cpu.stopped = true
	return 4
}

//JR n
//#0x18:
func opcode0x18(cpu *CPU) int {
	cpu.jr()
	return 12
}

//JR NZ, n
//#0x20:
func opcode0x20(cpu *CPU) int {
	if !cpu.Regs.HasFlag(ZeroFlag) {
		cpu.jr()
		return 12
	}

	cpu.Regs.PC++
	return 8
}

//JR Z, n
//#0x28:
func opcode0x28(cpu *CPU) int {
	if cpu.Regs.HasFlag(ZeroFlag) {
		cpu.jr()
		return 12
	}

	cpu.Regs.PC++
	return 8
}

//JR NC, n
//#0x30:
func opcode0x30(cpu *CPU) int {
	if !cpu.Regs.HasFlag(CarryFlag) {
		cpu.jr()
		return 12
	}

	cpu.Regs.PC++
	return 8
}

//JR C, n
//#0x38:
func opcode0x38(cpu *CPU) int {
	if cpu.Regs.HasFlag(CarryFlag) {
		cpu.jr()
		return 12
	}

	cpu.Regs.PC++
	return 8
}

//LD (HL+), A
//#0x22:
func opcode0x22(cpu *CPU) int {
	cpu.bus.Write(cpu.Regs.HL(), cpu.Regs.A)
	cpu.Regs.SetHL(cpu.Regs.HL() + 1)
	return 8
}

//LD A, (HL+)
//#0x2A:
func opcode0x2A(cpu *CPU) int {
	cpu.Regs.A = cpu.bus.Read(cpu.Regs.HL())
	cpu.Regs.SetHL(cpu.Regs.HL() + 1)
	return 8
}

//LD (HL-), A
//#0x32:
func opcode0x32(cpu *CPU) int {
	cpu.bus.Write(cpu.Regs.HL(), cpu.Regs.A)
	cpu.Regs.SetHL(cpu.Regs.HL() - 1)
	return 8
}

//LD A, (HL-)
//#0x3A:
func opcode0x3A(cpu *CPU) int {
	cpu.Regs.A = cpu.bus.Read(cpu.Regs.HL())
	cpu.Regs.SetHL(cpu.Regs.HL() - 1)
	return 8
}

//DAA
//#0x27:
func opcode0x27(cpu *CPU) int {
	cpu.daa()
	return 4
}

//CPL
//#0x2F:
func opcode0x2F(cpu *CPU) int {
	cpu.Regs.A = ^cpu.Regs.A
	cpu.Regs.SetFlag(SubFlag, true)
	cpu.Regs.SetFlag(HalfCarryFlag, true)
	return 4
}

//SCF
//#0x37:
func opcode0x37(cpu *CPU) int {
	cpu.Regs.SetFlag(CarryFlag, true)
	cpu.Regs.SetFlag(SubFlag, false)
	cpu.Regs.SetFlag(HalfCarryFlag, false)
	return 4
}

//CCF
//#0x3F:
func opcode0x3F(cpu *CPU) int {
	cpu.Regs.SetFlag(CarryFlag, !cpu.Regs.HasFlag(CarryFlag))
	cpu.Regs.SetFlag(SubFlag, false)
	cpu.Regs.SetFlag(HalfCarryFlag, false)
	return 4
}

//LD B, B
//#0x40:
func opcode0x40(cpu *CPU) int {
	cpu.Regs.B = cpu.Regs.B
	return 4
}

//LD B, C
//#0x41:
func opcode0x41(cpu *CPU) int {
	cpu.Regs.B = cpu.Regs.C
	return 4
}

//LD B, D
//#0x42:
func opcode0x42(cpu *CPU) int {
	cpu.Regs.B = cpu.Regs.D
	return 4
}

//LD B, E
//#0x43:
func opcode0x43(cpu *CPU) int {
	cpu.Regs.B = cpu.Regs.E
	return 4
}

//LD B, H
//#0x44:
func opcode0x44(cpu *CPU) int {
	cpu.Regs.B = cpu.Regs.H
	return 4
}

//LD B, L
//#0x45:
func opcode0x45(cpu *CPU) int {
	cpu.Regs.B = cpu.Regs.L
	return 4
}

//LD B, (HL)
//#0x46:
func opcode0x46(cpu *CPU) int {
	cpu.Regs.B = cpu.bus.Read(cpu.Regs.HL())
	return 8
}

//LD B, A
//#0x47:
func opcode0x47(cpu *CPU) int {
	cpu.Regs.B = cpu.Regs.A
	return 4
}

//LD C, B
//#0x48:
func opcode0x48(cpu *CPU) int {
	cpu.Regs.C = cpu.Regs.B
	return 4
}

//LD C, C
//#0x49:
func opcode0x49(cpu *CPU) int {
	cpu.Regs.C = cpu.Regs.C
	return 4
}

//LD C, D
//#0x4A:
func opcode0x4A(cpu *CPU) int {
	cpu.Regs.C = cpu.Regs.D
	return 4
}

//LD C, E
//#0x4B:
func opcode0x4B(cpu *CPU) int {
	cpu.Regs.C = cpu.Regs.E
	return 4
}

//LD C, H
//#0x4C:
func opcode0x4C(cpu *CPU) int {
	cpu.Regs.C = cpu.Regs.H
	return 4
}

//LD C, L
//#0x4D:
func opcode0x4D(cpu *CPU) int {
	cpu.Regs.C = cpu.Regs.L
	return 4
}

//LD C, (HL)
//#0x4E:
func opcode0x4E(cpu *CPU) int {
	cpu.Regs.C = cpu.bus.Read(cpu.Regs.HL())
	return 8
}

//LD C, A
//#0x4F:
func opcode0x4F(cpu *CPU) int {
	cpu.Regs.C = cpu.Regs.A
	return 4
}

//LD D, B
//#0x50:
func opcode0x50(cpu *CPU) int {
	cpu.Regs.D = cpu.Regs.B
	return 4
}

//LD D, C
//#0x51:
func opcode0x51(cpu *CPU) int {
	cpu.Regs.D = cpu.Regs.C
	return 4
}

//LD D, D
//#0x52:
func opcode0x52(cpu *CPU) int {
	cpu.Regs.D = cpu.Regs.D
	return 4
}

//LD D, E
//#0x53:
func opcode0x53(cpu *CPU) int {
	cpu.Regs.D = cpu.Regs.E
	return 4
}

//LD D, H
//#0x54:
func opcode0x54(cpu *CPU) int {
	cpu.Regs.D = cpu.Regs.H
	return 4
}

//LD D, L
//#0x55:
func opcode0x55(cpu *CPU) int {
	cpu.Regs.D = cpu.Regs.L
	return 4
}

//LD D, (HL)
//#0x56:
func opcode0x56(cpu *CPU) int {
	cpu.Regs.D = cpu.bus.Read(cpu.Regs.HL())
	return 8
}

//LD D, A
//#0x57:
func opcode0x57(cpu *CPU) int {
	cpu.Regs.D = cpu.Regs.A
	return 4
}

//LD E, B
//#0x58:
func opcode0x58(cpu *CPU) int {
	cpu.Regs.E = cpu.Regs.B
	return 4
}

//LD E, C
//#0x59:
func opcode0x59(cpu *CPU) int {
	cpu.Regs.E = cpu.Regs.C
	return 4
}

//LD E, D
//#0x5A:
func opcode0x5A(cpu *CPU) int {
	cpu.Regs.E = cpu.Regs.D
	return 4
}

//LD E, E
//#0x5B:
func opcode0x5B(cpu *CPU) int {
	cpu.Regs.E = cpu.Regs.E
	return 4
}

//LD E, H
//#0x5C:
func opcode0x5C(cpu *CPU) int {
	cpu.Regs.E = cpu.Regs.H
	return 4
}

//LD E, L
//#0x5D:
func opcode0x5D(cpu *CPU) int {
	cpu.Regs.E = cpu.Regs.L
	return 4
}

//LD E, (HL)
//#0x5E:
func opcode0x5E(cpu *CPU) int {
	cpu.Regs.E = cpu.bus.Read(cpu.Regs.HL())
	return 8
}

//LD E, A
//#0x5F:
func opcode0x5F(cpu *CPU) int {
	cpu.Regs.E = cpu.Regs.A
	return 4
}

//LD H, B
//#0x60:
func opcode0x60(cpu *CPU) int {
	cpu.Regs.H = cpu.Regs.B
	return 4
}

//LD H, C
//#0x61:
func opcode0x61(cpu *CPU) int {
	cpu.Regs.H = cpu.Regs.C
	return 4
}

//LD H, D
//#0x62:
func opcode0x62(cpu *CPU) int {
	cpu.Regs.H = cpu.Regs.D
	return 4
}

//LD H, E
//#0x63:
func opcode0x63(cpu *CPU) int {
	cpu.Regs.H = cpu.Regs.E
	return 4
}

//LD H, H
//#0x64:
func opcode0x64(cpu *CPU) int {
	cpu.Regs.H = cpu.Regs.H
	return 4
}

//LD H, L
//#0x65:
func opcode0x65(cpu *CPU) int {
	cpu.Regs.H = cpu.Regs.L
	return 4
}

//LD H, (HL)
//#0x66:
func opcode0x66(cpu *CPU) int {
	cpu.Regs.H = cpu.bus.Read(cpu.Regs.HL())
	return 8
}

//LD H, A
//#0x67:
func opcode0x67(cpu *CPU) int {
	cpu.Regs.H = cpu.Regs.A
	return 4
}

//LD L, B
//#0x68:
func opcode0x68(cpu *CPU) int {
	cpu.Regs.L = cpu.Regs.B
	return 4
}

//LD L, C
//#0x69:
func opcode0x69(cpu *CPU) int {
	cpu.Regs.L = cpu.Regs.C
	return 4
}

//LD L, D
//#0x6A:
func opcode0x6A(cpu *CPU) int {
	cpu.Regs.L = cpu.Regs.D
	return 4
}

//LD L, E
//#0x6B:
func opcode0x6B(cpu *CPU) int {
	cpu.Regs.L = cpu.Regs.E
	return 4
}

//LD L, H
//#0x6C:
func opcode0x6C(cpu *CPU) int {
	cpu.Regs.L = cpu.Regs.H
	return 4
}

//LD L, L
//#0x6D:
func opcode0x6D(cpu *CPU) int {
	cpu.Regs.L = cpu.Regs.L
	return 4
}

//LD L, (HL)
//#0x6E:
func opcode0x6E(cpu *CPU) int {
	cpu.Regs.L = cpu.bus.Read(cpu.Regs.HL())
	return 8
}

//LD L, A
//#0x6F:
func opcode0x6F(cpu *CPU) int {
	cpu.Regs.L = cpu.Regs.A
	return 4
}

//LD (HL), B
//#0x70:
func opcode0x70(cpu *CPU) int {
	cpu.bus.Write(cpu.Regs.HL(), cpu.Regs.B)
	return 8
}

//LD (HL), C
//#0x71:
func opcode0x71(cpu *CPU) int {
	cpu.bus.Write(cpu.Regs.HL(), cpu.Regs.C)
	return 8
}

//LD (HL), D
//#0x72:
func opcode0x72(cpu *CPU) int {
	cpu.bus.Write(cpu.Regs.HL(), cpu.Regs.D)
	return 8
}

//LD (HL), E
//#0x73:
func opcode0x73(cpu *CPU) int {
	cpu.bus.Write(cpu.Regs.HL(), cpu.Regs.E)
	return 8
}

//LD (HL), H
//#0x74:
func opcode0x74(cpu *CPU) int {
	cpu.bus.Write(cpu.Regs.HL(), cpu.Regs.H)
	return 8
}

//LD (HL), L
//#0x75:
func opcode0x75(cpu *CPU) int {
	cpu.bus.Write(cpu.Regs.HL(), cpu.Regs.L)
	return 8
}

//HALT
//#0x76:
func opcode0x76(cpu *CPU) int {
	cpu.halted = true
	return 4
}

//LD (HL), A
//#0x77:
func opcode0x77(cpu *CPU) int {
	cpu.bus.Write(cpu.Regs.HL(), cpu.Regs.A)
	return 8
}

//LD A, B
//#0x78:
func opcode0x78(cpu *CPU) int {
	cpu.Regs.A = cpu.Regs.B
	return 4
}

//LD A, C
//#0x79:
func opcode0x79(cpu *CPU) int {
	cpu.Regs.A = cpu.Regs.C
	return 4
}

//LD A, D
//#0x7A:
func opcode0x7A(cpu *CPU) int {
	cpu.Regs.A = cpu.Regs.D
	return 4
}

//LD A, E
//#0x7B:
func opcode0x7B(cpu *CPU) int {
	cpu.Regs.A = cpu.Regs.E
	return 4
}

//LD A, H
//#0x7C:
func opcode0x7C(cpu *CPU) int {
	cpu.Regs.A = cpu.Regs.H
	return 4
}

//LD A, L
//#0x7D:
func opcode0x7D(cpu *CPU) int {
	cpu.Regs.A = cpu.Regs.L
	return 4
}

//LD A, (HL)
//#0x7E:
func opcode0x7E(cpu *CPU) int {
	cpu.Regs.A = cpu.bus.Read(cpu.Regs.HL())
	return 8
}

//LD A, A
//#0x7F:
func opcode0x7F(cpu *CPU) int {
	cpu.Regs.A = cpu.Regs.A
	return 4
}

//ADD A, B
//#0x80:
func opcode0x80(cpu *CPU) int {
	cpu.addToA(cpu.Regs.B)
	return 4
}

//ADD A, C
//#0x81:
func opcode0x81(cpu *CPU) int {
	cpu.addToA(cpu.Regs.C)
	return 4
}

//ADD A, D
//#0x82:
func opcode0x82(cpu *CPU) int {
	cpu.addToA(cpu.Regs.D)
	return 4
}

//ADD A, E
//#0x83:
func opcode0x83(cpu *CPU) int {
	cpu.addToA(cpu.Regs.E)
	return 4
}

//ADD A, H
//#0x84:
func opcode0x84(cpu *CPU) int {
	cpu.addToA(cpu.Regs.H)
	return 4
}

//ADD A, L
//#0x85:
func opcode0x85(cpu *CPU) int {
	cpu.addToA(cpu.Regs.L)
	return 4
}

//ADD A, (HL)
//#0x86:
func opcode0x86(cpu *CPU) int {
	cpu.addToA(cpu.bus.Read(cpu.Regs.HL()))
	return 8
}

//ADD A, A
//#0x87:
func opcode0x87(cpu *CPU) int {
	cpu.addToA(cpu.Regs.A)
	return 4
}

//ADC A, B
//#0x88:
func opcode0x88(cpu *CPU) int {
	cpu.adcToA(cpu.Regs.B)
	return 4
}

//ADC A, C
//#0x89:
func opcode0x89(cpu *CPU) int {
	cpu.adcToA(cpu.Regs.C)
	return 4
}

//ADC A, D
//#0x8A:
func opcode0x8A(cpu *CPU) int {
	cpu.adcToA(cpu.Regs.D)
	return 4
}

//ADC A, E
//#0x8B:
func opcode0x8B(cpu *CPU) int {
	cpu.adcToA(cpu.Regs.E)
	return 4
}

//ADC A, H
//#0x8C:
func opcode0x8C(cpu *CPU) int {
	cpu.adcToA(cpu.Regs.H)
	return 4
}

//ADC A, L
//#0x8D:
func opcode0x8D(cpu *CPU) int {
	cpu.adcToA(cpu.Regs.L)
	return 4
}

//ADC A, (HL)
//#0x8E:
func opcode0x8E(cpu *CPU) int {
	cpu.adcToA(cpu.bus.Read(cpu.Regs.HL()))
	return 8
}

//ADC A, A
//#0x8F:
func opcode0x8F(cpu *CPU) int {
	cpu.adcToA(cpu.Regs.A)
	return 4
}

//SUB B
//#0x90:
func opcode0x90(cpu *CPU) int {
	cpu.subFromA(cpu.Regs.B)
	return 4
}

//SUB C
//#0x91:
func opcode0x91(cpu *CPU) int {
	cpu.subFromA(cpu.Regs.C)
	return 4
}

//SUB D
//#0x92:
func opcode0x92(cpu *CPU) int {
	cpu.subFromA(cpu.Regs.D)
	return 4
}

//SUB E
//#0x93:
func opcode0x93(cpu *CPU) int {
	cpu.subFromA(cpu.Regs.E)
	return 4
}

//SUB H
//#0x94:
func opcode0x94(cpu *CPU) int {
	cpu.subFromA(cpu.Regs.H)
	return 4
}

//SUB L
//#0x95:
func opcode0x95(cpu *CPU) int {
	cpu.subFromA(cpu.Regs.L)
	return 4
}

//SUB (HL)
//#0x96:
func opcode0x96(cpu *CPU) int {
	cpu.subFromA(cpu.bus.Read(cpu.Regs.HL()))
	return 8
}

//SUB A
//#0x97:
func opcode0x97(cpu *CPU) int {
	cpu.subFromA(cpu.Regs.A)
	return 4
}

//SBC A, B
//#0x98:
func opcode0x98(cpu *CPU) int {
	cpu.sbcFromA(cpu.Regs.B)
	return 4
}

//SBC A, C
//#0x99:
func opcode0x99(cpu *CPU) int {
	cpu.sbcFromA(cpu.Regs.C)
	return 4
}

//SBC A, D
//#0x9A:
func opcode0x9A(cpu *CPU) int {
	cpu.sbcFromA(cpu.Regs.D)
	return 4
}

//SBC A, E
//#0x9B:
func opcode0x9B(cpu *CPU) int {
	cpu.sbcFromA(cpu.Regs.E)
	return 4
}

//SBC A, H
//#0x9C:
func opcode0x9C(cpu *CPU) int {
	cpu.sbcFromA(cpu.Regs.H)
	return 4
}

//SBC A, L
//#0x9D:
func opcode0x9D(cpu *CPU) int {
	cpu.sbcFromA(cpu.Regs.L)
	return 4
}

//SBC A, (HL)
//#0x9E:
func opcode0x9E(cpu *CPU) int {
	cpu.sbcFromA(cpu.bus.Read(cpu.Regs.HL()))
	return 8
}

//SBC A, A
//#0x9F:
func opcode0x9F(cpu *CPU) int {
	cpu.sbcFromA(cpu.Regs.A)
	return 4
}

//AND B
//#0xA0:
func opcode0xA0(cpu *CPU) int {
	cpu.andA(cpu.Regs.B)
	return 4
}

//AND C
//#0xA1:
func opcode0xA1(cpu *CPU) int {
	cpu.andA(cpu.Regs.C)
	return 4
}

//AND D
//#0xA2:
func opcode0xA2(cpu *CPU) int {
	cpu.andA(cpu.Regs.D)
	return 4
}

//AND E
//#0xA3:
func opcode0xA3(cpu *CPU) int {
	cpu.andA(cpu.Regs.E)
	return 4
}

//AND H
//#0xA4:
func opcode0xA4(cpu *CPU) int {
	cpu.andA(cpu.Regs.H)
	return 4
}

//AND L
//#0xA5:
func opcode0xA5(cpu *CPU) int {
	cpu.andA(cpu.Regs.L)
	return 4
}

//AND (HL)
//#0xA6:
func opcode0xA6(cpu *CPU) int {
	cpu.andA(cpu.bus.Read(cpu.Regs.HL()))
	return 8
}

//AND A
//#0xA7:
func opcode0xA7(cpu *CPU) int {
	cpu.andA(cpu.Regs.A)
	return 4
}

//XOR B
//#0xA8:
func opcode0xA8(cpu *CPU) int {
	cpu.xorA(cpu.Regs.B)
	return 4
}

//XOR C
//#0xA9:
func opcode0xA9(cpu *CPU) int {
	cpu.xorA(cpu.Regs.C)
	return 4
}

//XOR D
//#0xAA:
func opcode0xAA(cpu *CPU) int {
	cpu.xorA(cpu.Regs.D)
	return 4
}

//XOR E
//#0xAB:
func opcode0xAB(cpu *CPU) int {
	cpu.xorA(cpu.Regs.E)
	return 4
}

//XOR H
//#0xAC:
func opcode0xAC(cpu *CPU) int {
	cpu.xorA(cpu.Regs.H)
	return 4
}

//XOR L
//#0xAD:
func opcode0xAD(cpu *CPU) int {
	cpu.xorA(cpu.Regs.L)
	return 4
}

//XOR (HL)
//#0xAE:
func opcode0xAE(cpu *CPU) int {
	cpu.xorA(cpu.bus.Read(cpu.Regs.HL()))
	return 8
}

//XOR A
//#0xAF:
func opcode0xAF(cpu *CPU) int {
	cpu.xorA(cpu.Regs.A)
	return 4
}

//OR B
//#0xB0:
func opcode0xB0(cpu *CPU) int {
	cpu.orA(cpu.Regs.B)
	return 4
}

//OR C
//#0xB1:
func opcode0xB1(cpu *CPU) int {
	cpu.orA(cpu.Regs.C)
	return 4
}

//OR D
//#0xB2:
func opcode0xB2(cpu *CPU) int {
	cpu.orA(cpu.Regs.D)
	return 4
}

//OR E
//#0xB3:
func opcode0xB3(cpu *CPU) int {
	cpu.orA(cpu.Regs.E)
	return 4
}

//OR H
//#0xB4:
func opcode0xB4(cpu *CPU) int {
	cpu.orA(cpu.Regs.H)
	return 4
}

//OR L
//#0xB5:
func opcode0xB5(cpu *CPU) int {
	cpu.orA(cpu.Regs.L)
	return 4
}

//OR (HL)
//#0xB6:
func opcode0xB6(cpu *CPU) int {
	cpu.orA(cpu.bus.Read(cpu.Regs.HL()))
	return 8
}

//OR A
//#0xB7:
func opcode0xB7(cpu *CPU) int {
	cpu.orA(cpu.Regs.A)
	return 4
}

//CP B
//#0xB8:
func opcode0xB8(cpu *CPU) int {
	cpu.compareA(cpu.Regs.B)
	return 4
}

//CP C
//#0xB9:
func opcode0xB9(cpu *CPU) int {
	cpu.compareA(cpu.Regs.C)
	return 4
}

//CP D
//#0xBA:
func opcode0xBA(cpu *CPU) int {
	cpu.compareA(cpu.Regs.D)
	return 4
}

//CP E
//#0xBB:
func opcode0xBB(cpu *CPU) int {
	cpu.compareA(cpu.Regs.E)
	return 4
}

//CP H
//#0xBC:
func opcode0xBC(cpu *CPU) int {
	cpu.compareA(cpu.Regs.H)
	return 4
}

//CP L
//#0xBD:
func opcode0xBD(cpu *CPU) int {
	cpu.compareA(cpu.Regs.L)
	return 4
}

//CP (HL)
//#0xBE:
func opcode0xBE(cpu *CPU) int {
	cpu.compareA(cpu.bus.Read(cpu.Regs.HL()))
	return 8
}

//CP A
//#0xBF:
func opcode0xBF(cpu *CPU) int {
	cpu.compareA(cpu.Regs.A)
	return 4
}

//RET NZ
//#0xC0:
func opcode0xC0(cpu *CPU) int {
	if !cpu.Regs.HasFlag(ZeroFlag) {
		cpu.ret()
		return 20
	}

	return 8
}

//RET Z
//#0xC8:
func opcode0xC8(cpu *CPU) int {
	if cpu.Regs.HasFlag(ZeroFlag) {
		cpu.ret()
		return 20
	}

	return 8
}

//RET NC
//#0xD0:
func opcode0xD0(cpu *CPU) int {
	if !cpu.Regs.HasFlag(CarryFlag) {
		cpu.ret()
		return 20
	}

	return 8
}

//RET C
//#0xD8:
func opcode0xD8(cpu *CPU) int {
	if cpu.Regs.HasFlag(CarryFlag) {
		cpu.ret()
		return 20
	}

	return 8
}

//POP BC
//#0xC1:
func opcode0xC1(cpu *CPU) int {
	cpu.Regs.SetBC(cpu.popStack())
	return 12
}

//POP DE
//#0xD1:
func opcode0xD1(cpu *CPU) int {
	cpu.Regs.SetDE(cpu.popStack())
	return 12
}

//POP HL
//#0xE1:
func opcode0xE1(cpu *CPU) int {
	cpu.Regs.SetHL(cpu.popStack())
	return 12
}

//POP AF
//#0xF1:
func opcode0xF1(cpu *CPU) int {
	cpu.Regs.SetAF(cpu.popStack())
	return 12
}

//PUSH BC
//#0xC5:
func opcode0xC5(cpu *CPU) int {
	cpu.pushStack(cpu.Regs.BC())
	return 16
}

//PUSH DE
//#0xD5:
func opcode0xD5(cpu *CPU) int {
	cpu.pushStack(cpu.Regs.DE())
	return 16
}

//PUSH HL
//#0xE5:
func opcode0xE5(cpu *CPU) int {
	cpu.pushStack(cpu.Regs.HL())
	return 16
}

//PUSH AF
//#0xF5:
func opcode0xF5(cpu *CPU) int {
	cpu.pushStack(cpu.Regs.AF())
	return 16
}

//JP NZ, nn
//#0xC2:
func opcode0xC2(cpu *CPU) int {
	if !cpu.Regs.HasFlag(ZeroFlag) {
		cpu.Regs.PC = cpu.readImmediateWord()
		return 16
	}

	cpu.Regs.PC += 2
	return 12
}

//JP Z, nn
//#0xCA:
func opcode0xCA(cpu *CPU) int {
	if cpu.Regs.HasFlag(ZeroFlag) {
		cpu.Regs.PC = cpu.readImmediateWord()
		return 16
	}

	cpu.Regs.PC += 2
	return 12
}

//JP NC, nn
//#0xD2:
func opcode0xD2(cpu *CPU) int {
	if !cpu.Regs.HasFlag(CarryFlag) {
		cpu.Regs.PC = cpu.readImmediateWord()
		return 16
	}

	cpu.Regs.PC += 2
	return 12
}

//JP C, nn
//#0xDA:
func opcode0xDA(cpu *CPU) int {
	if cpu.Regs.HasFlag(CarryFlag) {
		cpu.Regs.PC = cpu.readImmediateWord()
		return 16
	}

	cpu.Regs.PC += 2
	return 12
}

//JP nn
//#0xC3:
func opcode0xC3(cpu *CPU) int {
	cpu.Regs.PC = cpu.readImmediateWord()
	return 16
}

//CALL NZ, nn
//#0xC4:
func opcode0xC4(cpu *CPU) int {
	if !cpu.Regs.HasFlag(ZeroFlag) {
		cpu.call(cpu.readImmediateWord())
		return 24
	}

	cpu.Regs.PC += 2
	return 12
}

//CALL Z, nn
//#0xCC:
func opcode0xCC(cpu *CPU) int {
	if cpu.Regs.HasFlag(ZeroFlag) {
		cpu.call(cpu.readImmediateWord())
		return 24
	}

	cpu.Regs.PC += 2
	return 12
}

//CALL NC, nn
//#0xD4:
func opcode0xD4(cpu *CPU) int {
	if !cpu.Regs.HasFlag(CarryFlag) {
		cpu.call(cpu.readImmediateWord())
		return 24
	}

	cpu.Regs.PC += 2
	return 12
}

//CALL C, nn
//#0xDC:
func opcode0xDC(cpu *CPU) int {
	if cpu.Regs.HasFlag(CarryFlag) {
		cpu.call(cpu.readImmediateWord())
		return 24
	}

	cpu.Regs.PC += 2
	return 12
}

//CALL nn
//#0xCD:
func opcode0xCD(cpu *CPU) int {
	cpu.call(cpu.readImmediateWord())
	return 24
}

//ADD A, n
//#0xC6:
func opcode0xC6(cpu *CPU) int {
	cpu.addToA(cpu.readImmediate())
	return 8
}

//ADC A, n
//#0xCE:
func opcode0xCE(cpu *CPU) int {
	cpu.adcToA(cpu.readImmediate())
	return 8
}

//SUB n
//#0xD6:
func opcode0xD6(cpu *CPU) int {
	cpu.subFromA(cpu.readImmediate())
	return 8
}

//SBC A, n
//#0xDE:
func opcode0xDE(cpu *CPU) int {
	cpu.sbcFromA(cpu.readImmediate())
	return 8
}

//AND n
//#0xE6:
func opcode0xE6(cpu *CPU) int {
	cpu.andA(cpu.readImmediate())
	return 8
}

//XOR n
//#0xEE:
func opcode0xEE(cpu *CPU) int {
	cpu.xorA(cpu.readImmediate())
	return 8
}

//OR n
//#0xF6:
func opcode0xF6(cpu *CPU) int {
	cpu.orA(cpu.readImmediate())
	return 8
}

//CP n
//#0xFE:
func opcode0xFE(cpu *CPU) int {
	cpu.compareA(cpu.readImmediate())
	return 8
}

//RST 0x00
//#0xC7:
func opcode0xC7(cpu *CPU) int {
	cpu.rst(0x00)
	return 16
}

//RST 0x08
//#0xCF:
func opcode0xCF(cpu *CPU) int {
	cpu.rst(0x08)
	return 16
}

//RST 0x10
//#0xD7:
func opcode0xD7(cpu *CPU) int {
	cpu.rst(0x10)
	return 16
}

//RST 0x18
//#0xDF:
func opcode0xDF(cpu *CPU) int {
	cpu.rst(0x18)
	return 16
}

//RST 0x20
//#0xE7:
func opcode0xE7(cpu *CPU) int {
	cpu.rst(0x20)
	return 16
}

//RST 0x28
//#0xEF:
func opcode0xEF(cpu *CPU) int {
	cpu.rst(0x28)
	return 16
}

//RST 0x30
//#0xF7:
func opcode0xF7(cpu *CPU) int {
	cpu.rst(0x30)
	return 16
}

//RST 0x38
//#0xFF:
func opcode0xFF(cpu *CPU) int {
	cpu.rst(0x38)
	return 16
}

//RET
//#0xC9:
func opcode0xC9(cpu *CPU) int {
	cpu.ret()
	return 16
}

//RETI
//#0xD9:
func opcode0xD9(cpu *CPU) int {
	cpu.ret()
	cpu.interruptsEnabled = true
	return 16
}

//LD (0xFF00+n), A
//#0xE0:
func opcode0xE0(cpu *CPU) int {
	cpu.bus.Write(0xFF00+uint16(cpu.readImmediate()), cpu.Regs.A)
	return 12
}

//LD A, (0xFF00+n)
//#0xF0:
func opcode0xF0(cpu *CPU) int {
	cpu.Regs.A = cpu.bus.Read(0xFF00 + uint16(cpu.readImmediate()))
	return 12
}

//LD (0xFF00+C), A
//#0xE2:
func opcode0xE2(cpu *CPU) int {
	cpu.bus.Write(0xFF00+uint16(cpu.Regs.C), cpu.Regs.A)
	return 8
}

//LD A, (0xFF00+C)
//#0xF2:
func opcode0xF2(cpu *CPU) int {
	cpu.Regs.A = cpu.bus.Read(0xFF00 + uint16(cpu.Regs.C))
	return 8
}

//ADD SP, n
//#0xE8:
func opcode0xE8(cpu *CPU) int {
	cpu.Regs.SP = cpu.addSPOffset()
	return 16
}

//LD HL, SP+n
//#0xF8:
func opcode0xF8(cpu *CPU) int {
	cpu.Regs.SetHL(cpu.addSPOffset())
	return 12
}

//JP HL
//#0xE9:
func opcode0xE9(cpu *CPU) int {
	cpu.Regs.PC = cpu.Regs.HL()
	return 4
}

//LD SP, HL
//#0xF9:
func opcode0xF9(cpu *CPU) int {
	cpu.Regs.SP = cpu.Regs.HL()
	return 8
}

//LD (nn), A
//#0xEA:
func opcode0xEA(cpu *CPU) int {
	cpu.bus.Write(cpu.readImmediateWord(), cpu.Regs.A)
	return 16
}

//LD A, (nn)
//#0xFA:
func opcode0xFA(cpu *CPU) int {
	cpu.Regs.A = cpu.bus.Read(cpu.readImmediateWord())
	return 16
}

//DI
//#0xF3:
func opcode0xF3(cpu *CPU) int {
	cpu.interruptsEnabled = false
	cpu.eiPending = false
	return 4
}

//EI
//#0xFB:
func opcode0xFB(cpu *CPU) int {
	cpu.eiPending = true
	return 4
}

//Prefix for the secondary table, never executed directly.
//#0xCB:
func opcode0xCB(_ *CPU) int {
	return 0
}

//0xD3 - undefined
//#0xD3:
func opcode0xD3(_ *CPU) int {
	return 4
}

//0xDB - undefined
//#0xDB:
func opcode0xDB(_ *CPU) int {
	return 4
}

//0xDD - undefined
//#0xDD:
func opcode0xDD(_ *CPU) int {
	return 4
}

//0xE3 - undefined
//#0xE3:
func opcode0xE3(_ *CPU) int {
	return 4
}

//0xE4 - undefined
//#0xE4:
func opcode0xE4(_ *CPU) int {
	return 4
}

//0xEB - undefined
//#0xEB:
func opcode0xEB(_ *CPU) int {
	return 4
}

//0xEC - undefined
//#0xEC:
func opcode0xEC(_ *CPU) int {
	return 4
}

//0xED - undefined
//#0xED:
func opcode0xED(_ *CPU) int {
	return 4
}

//0xF4 - undefined
//#0xF4:
func opcode0xF4(_ *CPU) int {
	return 4
}

//0xFC - undefined
//#0xFC:
func opcode0xFC(_ *CPU) int {
	return 4
}

//0xFD - undefined
//#0xFD:
func opcode0xFD(_ *CPU) int {
	return 4
}
