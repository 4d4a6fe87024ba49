package memory

import "time"

// MBC represents a memory bank controller, mapped over 0x0000-0x7FFF
// (ROM and banking registers) and 0xA000-0xBFFF (external RAM).
type MBC interface {
	Read(addr uint16) uint8
	Write(addr uint16, value uint8)

	// State and Restore capture the banking registers and external RAM
	// for snapshots. ROM contents are not included.
	State() MBCState
	Restore(s MBCState)
}

// MBCState is the serializable part of a controller. Fields that do not
// apply to a given controller family are left at their zero value.
type MBCState struct {
	ROMBank     uint16   `json:"romBank"`
	RAMBank     uint8    `json:"ramBank"`
	RAMEnabled  bool     `json:"ramEnabled"`
	BankingMode uint8    `json:"bankingMode"`
	RAM         []byte   `json:"ram,omitempty"`
	RTC         [5]uint8 `json:"rtc"`
}

// newMBC builds the controller for a parsed cartridge.
func newMBC(cart *Cartridge) MBC {
	switch cart.mbcType {
	case NoMBCType:
		return NewNoMBC(cart.data)
	case MBC1Type:
		return NewMBC1(cart.data, cart.hasBattery, cart.ramBankCount)
	case MBC2Type:
		return NewMBC2(cart.data)
	case MBC3Type:
		return NewMBC3(cart.data, cart.ramBankCount, cart.hasRTC, nil)
	case MBC5Type:
		return NewMBC5(cart.data, cart.hasRumble, cart.ramBankCount)
	default:
		return nil
	}
}

// NoMBC represents cartridges with no banking hardware, typically 32KB
// games mapped directly at 0x0000-0x7FFF with no external RAM.
type NoMBC struct {
	rom []uint8
}

// NewNoMBC creates a new NoMBC controller.
func NewNoMBC(romData []uint8) *NoMBC {
	return &NoMBC{rom: romData}
}

func (m *NoMBC) Read(addr uint16) uint8 {
	if int(addr) < len(m.rom) {
		return m.rom[addr]
	}
	return 0xFF
}

func (m *NoMBC) Write(addr uint16, value uint8) {}

func (m *NoMBC) State() MBCState  { return MBCState{ROMBank: 1} }
func (m *NoMBC) Restore(MBCState) {}

// MBC1 is the first and most common controller:
//   - up to 2MB ROM (125 16KB banks), up to 32KB RAM (4 8KB banks)
//   - bank 0 fixed at 0x0000-0x3FFF, switchable bank at 0x4000-0x7FFF
//   - two banking modes; mode 1 trades upper ROM bits for RAM banking
type MBC1 struct {
	rom          []uint8
	ram          []uint8
	romBank      uint8
	ramBank      uint8
	ramEnabled   bool
	bankingMode  uint8
	hasBattery   bool
	ramBankCount uint8
}

// NewMBC1 creates a new MBC1 controller.
func NewMBC1(romData []uint8, hasBattery bool, ramBankCount uint8) *MBC1 {
	return &MBC1{
		rom:          romData,
		ram:          make([]uint8, uint32(ramBankCount)*0x2000),
		romBank:      1,
		hasBattery:   hasBattery,
		ramBankCount: ramBankCount,
	}
}

func (m *MBC1) Read(addr uint16) uint8 {
	switch {
	case addr <= 0x3FFF:
		return m.rom[addr]
	case addr <= 0x7FFF:
		offset := uint32(m.romBank) * 0x4000
		if offset >= uint32(len(m.rom)) {
			// out of range banks wrap around
			offset = offset % uint32(len(m.rom))
		}
		return m.rom[offset+uint32(addr-0x4000)]
	case addr >= 0xA000 && addr <= 0xBFFF:
		if !m.ramEnabled || len(m.ram) == 0 {
			return 0xFF
		}
		offset := uint32(m.ramBank) * 0x2000
		if offset >= uint32(len(m.ram)) {
			offset = offset % uint32(len(m.ram))
		}
		return m.ram[offset+uint32(addr-0xA000)]
	default:
		return 0xFF
	}
}

func (m *MBC1) Write(addr uint16, value uint8) {
	switch {
	case addr <= 0x1FFF:
		m.ramEnabled = (value & 0x0F) == 0x0A
	case addr <= 0x3FFF:
		// lower 5 bits of the ROM bank, zero maps to one
		bank := value & 0x1F
		if bank == 0 {
			bank = 1
		}
		m.romBank = (m.romBank & 0x60) | bank
	case addr <= 0x5FFF:
		if m.bankingMode == 0 {
			m.romBank = (m.romBank & 0x1F) | ((value & 0x03) << 5)
		} else {
			m.ramBank = value & 0x03
		}
	case addr <= 0x7FFF:
		m.bankingMode = value & 0x01
		if m.bankingMode == 1 {
			m.romBank &= 0x1F
		}
	case addr >= 0xA000 && addr <= 0xBFFF:
		if !m.ramEnabled || len(m.ram) == 0 {
			return
		}
		offset := uint32(m.ramBank) * 0x2000
		if offset >= uint32(len(m.ram)) {
			offset = offset % uint32(len(m.ram))
		}
		m.ram[offset+uint32(addr-0xA000)] = value
	}
}

func (m *MBC1) State() MBCState {
	return MBCState{
		ROMBank:     uint16(m.romBank),
		RAMBank:     m.ramBank,
		RAMEnabled:  m.ramEnabled,
		BankingMode: m.bankingMode,
		RAM:         append([]byte(nil), m.ram...),
	}
}

func (m *MBC1) Restore(s MBCState) {
	m.romBank = uint8(s.ROMBank)
	m.ramBank = s.RAMBank
	m.ramEnabled = s.RAMEnabled
	m.bankingMode = s.BankingMode
	copy(m.ram, s.RAM)
}

// MBC2 has a built-in 512x4 bit RAM and a simpler banking scheme: bit 8
// of the address selects between the RAM enable and ROM bank registers.
type MBC2 struct {
	rom        []uint8
	ram        []uint8
	romBank    uint8
	ramEnabled bool
}

// NewMBC2 creates a new MBC2 controller.
func NewMBC2(romData []uint8) *MBC2 {
	return &MBC2{
		rom:     romData,
		ram:     make([]uint8, 512),
		romBank: 1,
	}
}

func (m *MBC2) Read(addr uint16) uint8 {
	switch {
	case addr <= 0x3FFF:
		return m.rom[addr]
	case addr <= 0x7FFF:
		offset := uint32(m.romBank) * 0x4000
		if offset >= uint32(len(m.rom)) {
			offset = offset % uint32(len(m.rom))
		}
		return m.rom[offset+uint32(addr-0x4000)]
	case addr >= 0xA000 && addr <= 0xA1FF:
		if !m.ramEnabled {
			return 0xFF
		}
		// only the low nibble is wired
		return m.ram[addr-0xA000] | 0xF0
	default:
		return 0xFF
	}
}

func (m *MBC2) Write(addr uint16, value uint8) {
	switch {
	case addr <= 0x3FFF:
		if addr&0x0100 == 0 {
			m.ramEnabled = (value & 0x0F) == 0x0A
		} else {
			m.romBank = value & 0x0F
			if m.romBank == 0 {
				m.romBank = 1
			}
		}
	case addr >= 0xA000 && addr <= 0xA1FF:
		if !m.ramEnabled {
			return
		}
		m.ram[addr-0xA000] = value & 0x0F
	}
}

func (m *MBC2) State() MBCState {
	return MBCState{
		ROMBank:    uint16(m.romBank),
		RAMEnabled: m.ramEnabled,
		RAM:        append([]byte(nil), m.ram...),
	}
}

func (m *MBC2) Restore(s MBCState) {
	m.romBank = uint8(s.ROMBank)
	m.ramEnabled = s.RAMEnabled
	copy(m.ram, s.RAM)
}

// Clock provides the current time to an RTC-equipped controller.
type Clock interface {
	Now() time.Time
}

type systemClockFunc func() time.Time

func (s systemClockFunc) Now() time.Time {
	return s()
}

// MBC3 adds a real-time clock on top of MBC1-style banking:
//   - up to 2MB ROM, up to 32KB RAM
//   - RAM bank values 0x08-0x0C select the five RTC registers instead
//   - a 0x00 write to 0x6000-0x7FFF latches the clock
type MBC3 struct {
	rom        []uint8
	ram        []uint8
	rtc        [5]uint8
	romBank    uint8
	ramBank    uint8
	ramEnabled bool
	hasRTC     bool
	rtcLatch   bool
	clock      Clock
	rtcTime    time.Time
}

// NewMBC3 creates a new MBC3 controller. A nil clock defaults to the
// system clock when the cartridge has an RTC.
func NewMBC3(romData []uint8, ramBankCount uint8, hasRTC bool, clock Clock) *MBC3 {
	m := &MBC3{
		rom:     romData,
		ram:     make([]uint8, uint32(ramBankCount)*0x2000),
		romBank: 1,
		hasRTC:  hasRTC,
	}
	if hasRTC {
		if clock == nil {
			clock = systemClockFunc(time.Now)
		}
		m.clock = clock
		m.rtcTime = clock.Now()
	}
	return m
}

func (m *MBC3) Read(addr uint16) uint8 {
	switch {
	case addr <= 0x3FFF:
		return m.rom[addr]
	case addr <= 0x7FFF:
		offset := uint32(m.romBank) * 0x4000
		if offset >= uint32(len(m.rom)) {
			offset = offset % uint32(len(m.rom))
		}
		return m.rom[offset+uint32(addr-0x4000)]
	case addr >= 0xA000 && addr <= 0xBFFF:
		if !m.ramEnabled {
			return 0xFF
		}
		if m.ramBank <= 0x03 {
			if len(m.ram) == 0 {
				return 0xFF
			}
			offset := uint32(m.ramBank) * 0x2000
			if offset >= uint32(len(m.ram)) {
				offset = offset % uint32(len(m.ram))
			}
			return m.ram[offset+uint32(addr-0xA000)]
		}
		if m.hasRTC && m.ramBank >= 0x08 && m.ramBank <= 0x0C {
			if m.rtcLatch {
				m.updateRTC()
				m.rtcLatch = false
			}
			return m.rtc[m.ramBank-0x08]
		}
		return 0xFF
	default:
		return 0xFF
	}
}

func (m *MBC3) Write(addr uint16, value uint8) {
	switch {
	case addr <= 0x1FFF:
		m.ramEnabled = (value & 0x0F) == 0x0A
	case addr <= 0x3FFF:
		bank := value & 0x7F
		if bank == 0 {
			bank = 1
		}
		m.romBank = bank
	case addr <= 0x5FFF:
		m.ramBank = value
	case addr <= 0x7FFF:
		if value == 0x00 {
			m.rtcLatch = true
		}
	case addr >= 0xA000 && addr <= 0xBFFF:
		if !m.ramEnabled {
			return
		}
		if m.ramBank <= 0x03 && len(m.ram) > 0 {
			offset := uint32(m.ramBank) * 0x2000
			if offset >= uint32(len(m.ram)) {
				offset = offset % uint32(len(m.ram))
			}
			m.ram[offset+uint32(addr-0xA000)] = value
		} else if m.hasRTC && m.ramBank >= 0x08 && m.ramBank <= 0x0C {
			m.rtc[m.ramBank-0x08] = value
		}
	}
}

func (m *MBC3) updateRTC() {
	now := m.clock.Now()
	duration := now.Sub(m.rtcTime)
	m.rtcTime = now

	seconds := m.rtc[0] + uint8(duration.Seconds())
	minutes := m.rtc[1] + uint8(duration.Minutes())
	hours := m.rtc[2] + uint8(duration.Hours())

	m.rtc[0] = seconds % 60
	m.rtc[1] = minutes % 60
	m.rtc[2] = hours % 24

	// days are split across two registers
	daysLow := m.rtc[3] + uint8(duration.Hours()/24)
	daysHigh := m.rtc[4]

	daysHigh += daysLow / 255
	daysLow %= 255

	m.rtc[3] = daysLow
	m.rtc[4] = daysHigh
}

func (m *MBC3) State() MBCState {
	return MBCState{
		ROMBank:    uint16(m.romBank),
		RAMBank:    m.ramBank,
		RAMEnabled: m.ramEnabled,
		RAM:        append([]byte(nil), m.ram...),
		RTC:        m.rtc,
	}
}

func (m *MBC3) Restore(s MBCState) {
	m.romBank = uint8(s.ROMBank)
	m.ramBank = s.RAMBank
	m.ramEnabled = s.RAMEnabled
	copy(m.ram, s.RAM)
	m.rtc = s.RTC
}

// MBC5 is the straightforward large-capacity controller:
//   - up to 8MB ROM via a 9-bit bank number, up to 128KB RAM
//   - no banking quirks, bank 0 is selectable at 0x4000
type MBC5 struct {
	rom        []uint8
	ram        []uint8
	romBank    uint16
	ramBank    uint8
	ramEnabled bool
	hasRumble  bool
}

// NewMBC5 creates a new MBC5 controller.
func NewMBC5(romData []uint8, hasRumble bool, ramBankCount uint8) *MBC5 {
	return &MBC5{
		rom:       romData,
		ram:       make([]uint8, uint32(ramBankCount)*0x2000),
		romBank:   1,
		hasRumble: hasRumble,
	}
}

func (m *MBC5) Read(addr uint16) uint8 {
	switch {
	case addr <= 0x3FFF:
		return m.rom[addr]
	case addr <= 0x7FFF:
		offset := uint32(m.romBank) * 0x4000
		if offset >= uint32(len(m.rom)) {
			offset = offset % uint32(len(m.rom))
		}
		return m.rom[offset+uint32(addr-0x4000)]
	case addr >= 0xA000 && addr <= 0xBFFF:
		if !m.ramEnabled || len(m.ram) == 0 {
			return 0xFF
		}
		offset := uint32(m.ramBank) * 0x2000
		if offset >= uint32(len(m.ram)) {
			offset = offset % uint32(len(m.ram))
		}
		return m.ram[offset+uint32(addr-0xA000)]
	default:
		return 0xFF
	}
}

func (m *MBC5) Write(addr uint16, value uint8) {
	switch {
	case addr <= 0x1FFF:
		m.ramEnabled = (value & 0x0F) == 0x0A
	case addr <= 0x2FFF:
		m.romBank = (m.romBank & 0x100) | uint16(value)
	case addr <= 0x3FFF:
		m.romBank = (m.romBank & 0xFF) | (uint16(value&0x01) << 8)
	case addr <= 0x5FFF:
		m.ramBank = value & 0x0F
	case addr >= 0xA000 && addr <= 0xBFFF:
		if !m.ramEnabled || len(m.ram) == 0 {
			return
		}
		offset := uint32(m.ramBank) * 0x2000
		if offset >= uint32(len(m.ram)) {
			offset = offset % uint32(len(m.ram))
		}
		m.ram[offset+uint32(addr-0xA000)] = value
	}
}

func (m *MBC5) State() MBCState {
	return MBCState{
		ROMBank:    m.romBank,
		RAMBank:    m.ramBank,
		RAMEnabled: m.ramEnabled,
		RAM:        append([]byte(nil), m.ram...),
	}
}

func (m *MBC5) Restore(s MBCState) {
	m.romBank = s.ROMBank
	m.ramBank = s.RAMBank
	m.ramEnabled = s.RAMEnabled
	copy(m.ram, s.RAM)
}
