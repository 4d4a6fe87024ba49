package memory

import (
	"fmt"
	"log/slog"

	"github.com/dotmatrixgb/dotmatrix/addr"
	"github.com/dotmatrixgb/dotmatrix/audio"
	"github.com/dotmatrixgb/dotmatrix/bit"
	"github.com/dotmatrixgb/dotmatrix/serial"
)

type memRegion uint8

const (
	regionROM memRegion = iota
	regionVRAM
	regionExtRAM
	regionWRAM
	regionEcho
	regionOAM
	regionIO
)

const (
	vramBankSize = 0x2000
	wramBankSize = 0x1000
	oamSize      = 0xA0
)

// JoypadKey represents a key on the joypad.
type JoypadKey uint8

const (
	JoypadRight JoypadKey = iota
	JoypadLeft
	JoypadUp
	JoypadDown
	JoypadA
	JoypadB
	JoypadSelect
	JoypadStart
)

// SerialPort is the minimal interface for a device connected to SB/SC.
// Implementations must only accept reads/writes of addr.SB and addr.SC.
type SerialPort interface {
	Write(address uint16, value byte)
	Read(address uint16) byte
	Tick(cycles int)
	Reset()
}

// MMU routes all memory mapped I/O, cartridge banking and RAM access.
// Video RAM is banked two ways and work RAM eight ways; on monochrome
// hardware only bank 0 (and fixed bank 1 for the upper work RAM half)
// are ever selected.
type MMU struct {
	cart *Cartridge
	mbc  MBC
	cgb  bool

	vram     [2][vramBankSize]byte
	vramBank uint8
	wram     [8][wramBankSize]byte
	svbk     uint8
	oam      [oamSize]byte
	io       [0x80]byte
	hram     [0x7F]byte
	ie       byte

	// color palette RAM, 8 palettes of 4 colors, 2 bytes per color
	bgPaletteRAM [64]byte
	obPaletteRAM [64]byte
	bgpi         byte
	obpi         byte

	// VRAM DMA state
	hdmaSrc    uint16
	hdmaDst    uint16
	hdmaLen    uint8
	hdmaActive bool

	APU       *audio.APU
	regionMap [256]memRegion

	joypadButtons uint8 // A/B/Select/Start, active low
	joypadDpad    uint8 // directions, active low

	serial SerialPort
	timer  Timer
}

// New creates a memory unit with nothing loaded, equivalent to powering
// on the console without a cartridge.
func New() *MMU {
	mmu := &MMU{
		cart:          NewCartridge(),
		APU:           audio.New(),
		joypadButtons: 0x0F,
		joypadDpad:    0x0F,
		svbk:          1,
	}
	mmu.serial = serial.NewLogSink(func() { mmu.RequestInterrupt(addr.SerialInterrupt) })
	mmu.timer.TimerInterruptHandler = func() { mmu.RequestInterrupt(addr.TimerInterrupt) }
	initRegionMap(mmu)
	mmu.resetIO()
	return mmu
}

// NewWithCartridge creates a memory unit with the given cartridge
// inserted. Color features activate when the cartridge requests them.
func NewWithCartridge(cart *Cartridge) *MMU {
	mmu := New()
	mmu.cart = cart
	mmu.cgb = cart.cgb
	mmu.mbc = newMBC(cart)
	return mmu
}

func initRegionMap(m *MMU) {
	for i := 0x00; i <= 0x7F; i++ {
		m.regionMap[i] = regionROM
	}
	for i := 0x80; i <= 0x9F; i++ {
		m.regionMap[i] = regionVRAM
	}
	for i := 0xA0; i <= 0xBF; i++ {
		m.regionMap[i] = regionExtRAM
	}
	for i := 0xC0; i <= 0xDF; i++ {
		m.regionMap[i] = regionWRAM
	}
	for i := 0xE0; i <= 0xFD; i++ {
		m.regionMap[i] = regionEcho
	}
	m.regionMap[0xFE] = regionOAM
	m.regionMap[0xFF] = regionIO
}

// resetIO seeds the registers with their post-boot values.
func (m *MMU) resetIO() {
	m.io[addr.P1-0xFF00] = 0xCF
	m.io[addr.LCDC-0xFF00] = 0x91
	m.io[addr.BGP-0xFF00] = 0xFC
	m.io[addr.OBP0-0xFF00] = 0xFF
	m.io[addr.OBP1-0xFF00] = 0xFF
	m.io[addr.IF-0xFF00] = 0xE1
	m.updateJoypadRegister()
}

// Tick advances any I/O that needs it.
func (m *MMU) Tick(cycles int) {
	m.timer.Tick(cycles)
	if m.serial != nil {
		m.serial.Tick(cycles)
	}
	if m.APU != nil {
		m.APU.Tick(cycles)
	}
}

// SetTimerSeed initializes the internal timer divider and with it DIV.
func (m *MMU) SetTimerSeed(seed uint16) {
	m.timer.SetSeed(seed)
}

// CGB reports whether color features are active.
func (m *MMU) CGB() bool { return m.cgb }

// Cartridge returns the inserted cartridge.
func (m *MMU) Cartridge() *Cartridge { return m.cart }

// RequestInterrupt sets the IF bit of the chosen interrupt.
func (m *MMU) RequestInterrupt(interrupt addr.Interrupt) {
	m.io[addr.IF-0xFF00] |= 1 << uint8(interrupt)
}

func (m *MMU) Read(address uint16) byte {
	switch m.regionMap[address>>8] {
	case regionROM, regionExtRAM:
		if m.mbc == nil {
			return 0xFF
		}
		return m.mbc.Read(address)
	case regionVRAM:
		return m.vram[m.vramBank][address-0x8000]
	case regionWRAM:
		return m.readWRAM(address)
	case regionEcho:
		return m.readWRAM(address - 0x2000)
	case regionOAM:
		if address <= addr.OAMEnd {
			return m.oam[address-addr.OAMStart]
		}
		// 0xFEA0-0xFEFF is unusable
		return 0xFF
	case regionIO:
		return m.readIO(address)
	default:
		panic(fmt.Sprintf("read at unmapped address: 0x%X", address))
	}
}

func (m *MMU) Write(address uint16, value byte) {
	switch m.regionMap[address>>8] {
	case regionROM, regionExtRAM:
		if m.mbc == nil {
			slog.Warn("cartridge write with nothing inserted", "addr", fmt.Sprintf("0x%04X", address))
			return
		}
		m.mbc.Write(address, value)
	case regionVRAM:
		m.vram[m.vramBank][address-0x8000] = value
	case regionWRAM:
		m.writeWRAM(address, value)
	case regionEcho:
		m.writeWRAM(address-0x2000, value)
	case regionOAM:
		if address <= addr.OAMEnd {
			m.oam[address-addr.OAMStart] = value
		}
	case regionIO:
		m.writeIO(address, value)
	default:
		panic(fmt.Sprintf("write at unmapped address: 0x%X", address))
	}
}

// wramBankIndex resolves SVBK for the switchable half. Zero selects one.
func (m *MMU) wramBankIndex() uint8 {
	bank := m.svbk & 0x07
	if bank == 0 {
		bank = 1
	}
	return bank
}

func (m *MMU) readWRAM(address uint16) byte {
	if address < 0xD000 {
		return m.wram[0][address-0xC000]
	}
	return m.wram[m.wramBankIndex()][address-0xD000]
}

func (m *MMU) writeWRAM(address uint16, value byte) {
	if address < 0xD000 {
		m.wram[0][address-0xC000] = value
		return
	}
	m.wram[m.wramBankIndex()][address-0xD000] = value
}

func (m *MMU) readIO(address uint16) byte {
	switch {
	case address == addr.SB || address == addr.SC:
		return m.serial.Read(address)
	case address >= addr.DIV && address <= addr.TAC:
		return m.timer.Read(address)
	case address >= addr.AudioStart && address <= addr.AudioEnd:
		return m.APU.ReadRegister(address)
	case address == addr.IF:
		// the upper 3 bits always read as 1
		return m.io[address-0xFF00] | 0xE0
	case address == addr.VBK:
		if !m.cgb {
			return 0xFF
		}
		return 0xFE | m.vramBank
	case address == addr.SVBK:
		if !m.cgb {
			return 0xFF
		}
		return m.svbk
	case address == addr.HDMA5:
		if !m.cgb {
			return 0xFF
		}
		if m.hdmaActive {
			return m.hdmaLen
		}
		return 0xFF
	case address == addr.BGPI:
		return m.bgpi
	case address == addr.BGPD:
		if !m.cgb {
			return 0xFF
		}
		return m.bgPaletteRAM[m.bgpi&0x3F]
	case address == addr.OBPI:
		return m.obpi
	case address == addr.OBPD:
		if !m.cgb {
			return 0xFF
		}
		return m.obPaletteRAM[m.obpi&0x3F]
	case address == addr.IE:
		return m.ie
	case address >= 0xFF80:
		return m.hram[address-0xFF80]
	default:
		return m.io[address-0xFF00]
	}
}

func (m *MMU) writeIO(address uint16, value byte) {
	switch {
	case address == addr.P1:
		// only the selector bits are writable
		m.io[address-0xFF00] = value & 0x30
		m.updateJoypadRegister()
	case address == addr.SB || address == addr.SC:
		m.serial.Write(address, value)
	case address >= addr.DIV && address <= addr.TAC:
		m.timer.Write(address, value)
	case address >= addr.AudioStart && address <= addr.AudioEnd:
		m.APU.WriteRegister(address, value)
	case address == addr.IF:
		m.io[address-0xFF00] = value | 0xE0
	case address == addr.LY:
		// read-only
	case address == addr.STAT:
		// the mode and coincidence bits are read-only
		m.io[address-0xFF00] = (value & 0xF8) | (m.io[address-0xFF00] & 0x07)
	case address == addr.DMA:
		m.runOAMDMA(value)
	case address == addr.VBK:
		if m.cgb {
			m.vramBank = value & 0x01
		}
	case address == addr.SVBK:
		if m.cgb {
			m.svbk = value & 0x07
		}
	case address >= addr.HDMA1 && address <= addr.HDMA4:
		m.writeHDMAAddress(address, value)
	case address == addr.HDMA5:
		m.writeHDMA5(value)
	case address == addr.BGPI:
		m.bgpi = value
	case address == addr.BGPD:
		m.bgPaletteRAM[m.bgpi&0x3F] = value
		if bit.IsSet(7, m.bgpi) {
			m.bgpi = 0x80 | ((m.bgpi + 1) & 0x3F)
		}
	case address == addr.OBPI:
		m.obpi = value
	case address == addr.OBPD:
		m.obPaletteRAM[m.obpi&0x3F] = value
		if bit.IsSet(7, m.obpi) {
			m.obpi = 0x80 | ((m.obpi + 1) & 0x3F)
		}
	case address == addr.IE:
		m.ie = value
	case address >= 0xFF80 && address < addr.IE:
		m.hram[address-0xFF80] = value
	default:
		m.io[address-0xFF00] = value
	}
}

// runOAMDMA copies 160 bytes from (value << 8) into OAM.
func (m *MMU) runOAMDMA(value byte) {
	source := uint16(value) << 8
	for i := uint16(0); i < oamSize; i++ {
		m.oam[i] = m.Read(source + i)
	}
	m.io[addr.DMA-0xFF00] = value
}

func (m *MMU) writeHDMAAddress(address uint16, value byte) {
	switch address {
	case addr.HDMA1:
		m.hdmaSrc = (m.hdmaSrc & 0x00FF) | (uint16(value) << 8)
	case addr.HDMA2:
		// the low 4 source bits are ignored
		m.hdmaSrc = (m.hdmaSrc & 0xFF00) | uint16(value&0xF0)
	case addr.HDMA3:
		// destination is an offset into VRAM
		m.hdmaDst = (m.hdmaDst & 0x00FF) | (uint16(value&0x1F) << 8)
	case addr.HDMA4:
		m.hdmaDst = (m.hdmaDst & 0xFF00) | uint16(value&0xF0)
	}
}

func (m *MMU) writeHDMA5(value byte) {
	if !m.cgb {
		return
	}

	if m.hdmaActive && !bit.IsSet(7, value) {
		// writing with bit 7 clear cancels an H-blank transfer
		m.hdmaActive = false
		m.hdmaLen |= 0x80
		return
	}

	length := value & 0x7F
	if !bit.IsSet(7, value) {
		// general purpose: the whole transfer runs immediately
		for i := 0; i <= int(length); i++ {
			m.hdmaCopyBlock()
		}
		m.hdmaLen = 0xFF
		return
	}

	m.hdmaActive = true
	m.hdmaLen = length
}

// hdmaCopyBlock copies one 0x10-byte block into the active VRAM bank.
func (m *MMU) hdmaCopyBlock() {
	for i := uint16(0); i < 0x10; i++ {
		m.vram[m.vramBank][(m.hdmaDst+i)&0x1FFF] = m.Read(m.hdmaSrc + i)
	}
	m.hdmaSrc += 0x10
	m.hdmaDst += 0x10
}

// HBlankDMAStep runs one block of an active H-blank transfer. The video
// unit calls this when a scanline enters H-blank.
func (m *MMU) HBlankDMAStep() {
	if !m.hdmaActive {
		return
	}
	m.hdmaCopyBlock()
	if m.hdmaLen == 0 {
		m.hdmaActive = false
		m.hdmaLen = 0xFF
		return
	}
	m.hdmaLen--
}

// WriteVideoRegister stores an LCD register value directly, bypassing
// the read-only protection applied to CPU writes. Only the video unit
// should use this, to publish LY and the STAT mode bits.
func (m *MMU) WriteVideoRegister(address uint16, value byte) {
	m.io[address-0xFF00] = value
}

// ReadVRAMBank reads VRAM from an explicit bank regardless of VBK. The
// video unit uses this to fetch tile data for color attributes.
func (m *MMU) ReadVRAMBank(bank uint8, address uint16) byte {
	return m.vram[bank&0x01][address-0x8000]
}

// OAMByte reads a byte of sprite attribute memory by index.
func (m *MMU) OAMByte(index int) byte {
	return m.oam[index]
}

// BGPaletteRAM exposes the color background palette RAM.
func (m *MMU) BGPaletteRAM() []byte { return m.bgPaletteRAM[:] }

// OBPaletteRAM exposes the color object palette RAM.
func (m *MMU) OBPaletteRAM() []byte { return m.obPaletteRAM[:] }

// updateJoypadRegister rebuilds P1 from the selector bits and the held
// buttons. The selector chooses which group drives the low nibble; when
// both are selected the groups are ANDed, when neither the nibble floats
// high. Bits 6-7 always read as 1, pressed buttons read as 0.
func (m *MMU) updateJoypadRegister() {
	p1 := m.io[addr.P1-0xFF00]
	result := uint8(0xC0)
	result |= p1 & 0x30

	selectDpad := !bit.IsSet(4, p1)
	selectButtons := !bit.IsSet(5, p1)

	switch {
	case selectButtons && !selectDpad:
		result |= m.joypadButtons & 0x0F
	case selectDpad && !selectButtons:
		result |= m.joypadDpad & 0x0F
	case selectButtons && selectDpad:
		result |= m.joypadButtons & m.joypadDpad & 0x0F
	default:
		result |= 0x0F
	}

	m.io[addr.P1-0xFF00] = result
}

// HandleKeyPress records a pressed key and raises the joypad interrupt
// on a high-to-low transition.
func (m *MMU) HandleKeyPress(key JoypadKey) {
	oldButtons := m.joypadButtons
	oldDpad := m.joypadDpad

	switch key {
	case JoypadRight:
		m.joypadDpad = bit.Clear(0, m.joypadDpad)
	case JoypadLeft:
		m.joypadDpad = bit.Clear(1, m.joypadDpad)
	case JoypadUp:
		m.joypadDpad = bit.Clear(2, m.joypadDpad)
	case JoypadDown:
		m.joypadDpad = bit.Clear(3, m.joypadDpad)
	case JoypadA:
		m.joypadButtons = bit.Clear(0, m.joypadButtons)
	case JoypadB:
		m.joypadButtons = bit.Clear(1, m.joypadButtons)
	case JoypadSelect:
		m.joypadButtons = bit.Clear(2, m.joypadButtons)
	case JoypadStart:
		m.joypadButtons = bit.Clear(3, m.joypadButtons)
	}

	// the interrupt fires only for high-to-low transitions on a line
	// whose group is currently selected
	p1 := m.io[addr.P1-0xFF00]
	buttonTransitions := oldButtons & ^m.joypadButtons
	dpadTransitions := oldDpad & ^m.joypadDpad
	selected := uint8(0)
	if !bit.IsSet(5, p1) {
		selected |= buttonTransitions
	}
	if !bit.IsSet(4, p1) {
		selected |= dpadTransitions
	}
	if selected != 0 {
		m.RequestInterrupt(addr.JoypadInterrupt)
	}

	m.updateJoypadRegister()
}

// HandleKeyRelease records a released key.
func (m *MMU) HandleKeyRelease(key JoypadKey) {
	switch key {
	case JoypadRight:
		m.joypadDpad = bit.Set(0, m.joypadDpad)
	case JoypadLeft:
		m.joypadDpad = bit.Set(1, m.joypadDpad)
	case JoypadUp:
		m.joypadDpad = bit.Set(2, m.joypadDpad)
	case JoypadDown:
		m.joypadDpad = bit.Set(3, m.joypadDpad)
	case JoypadA:
		m.joypadButtons = bit.Set(0, m.joypadButtons)
	case JoypadB:
		m.joypadButtons = bit.Set(1, m.joypadButtons)
	case JoypadSelect:
		m.joypadButtons = bit.Set(2, m.joypadButtons)
	case JoypadStart:
		m.joypadButtons = bit.Set(3, m.joypadButtons)
	}

	m.updateJoypadRegister()
}
