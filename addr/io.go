package addr

// joypad
const (
	// P1 selects and reads the joypad button groups.
	P1 uint16 = 0xFF00
)

// serial I/O
const (
	// SB holds the byte shifted over the link port.
	SB uint16 = 0xFF01
	// SC controls serial transfers (bit 7 start, bit 0 clock source).
	SC uint16 = 0xFF02
)

// timers
const (
	// DIV is the divider register, the upper 8 bits of the internal counter.
	// Writing any value resets the counter to zero.
	DIV uint16 = 0xFF04
	// TIMA is the timer counter register. Raises an interrupt on overflow.
	TIMA uint16 = 0xFF05
	// TMA is the timer modulo register, loaded into TIMA on overflow.
	TMA uint16 = 0xFF06
	// TAC is the timer control register (bit 2 enable, bits 0-1 clock select).
	TAC uint16 = 0xFF07
)

// video registers
const (
	// LCDC is the LCD control register.
	LCDC uint16 = 0xFF40
	// STAT is the LCD status register (mode bits, LYC flag, interrupt selects).
	STAT uint16 = 0xFF41
	// SCY is the background scroll Y register.
	SCY uint16 = 0xFF42
	// SCX is the background scroll X register.
	SCX uint16 = 0xFF43
	// LY is the current scanline (read-only).
	LY uint16 = 0xFF44
	// LYC is the scanline compare register.
	LYC uint16 = 0xFF45
	// DMA starts a 160-byte OAM transfer from (value << 8).
	DMA uint16 = 0xFF46
	// BGP is the monochrome background palette.
	BGP uint16 = 0xFF47
	// OBP0 is monochrome object palette 0.
	OBP0 uint16 = 0xFF48
	// OBP1 is monochrome object palette 1.
	OBP1 uint16 = 0xFF49
	// WY is the window Y position.
	WY uint16 = 0xFF4A
	// WX is the window X position (offset by 7).
	WX uint16 = 0xFF4B
)

// color-mode registers
const (
	// VBK selects the active video RAM bank (bit 0).
	VBK uint16 = 0xFF4F
	// HDMA1..HDMA4 hold the VRAM DMA source/destination.
	HDMA1 uint16 = 0xFF51
	HDMA2 uint16 = 0xFF52
	HDMA3 uint16 = 0xFF53
	HDMA4 uint16 = 0xFF54
	// HDMA5 starts a VRAM DMA transfer and reports remaining length.
	HDMA5 uint16 = 0xFF55
	// BGPI indexes into background palette RAM (bit 7 auto-increment).
	BGPI uint16 = 0xFF68
	// BGPD reads/writes the indexed background palette byte.
	BGPD uint16 = 0xFF69
	// OBPI indexes into object palette RAM (bit 7 auto-increment).
	OBPI uint16 = 0xFF6A
	// OBPD reads/writes the indexed object palette byte.
	OBPD uint16 = 0xFF6B
	// SVBK selects the active work RAM bank (bits 0-2, zero maps to one).
	SVBK uint16 = 0xFF70
)

// audio registers
const (
	AudioStart uint16 = 0xFF10
	AudioEnd   uint16 = 0xFF3F

	// NR52 is the master audio enable register (bit 7).
	NR52 uint16 = 0xFF26
)

// OAM (sprite attribute table)
const (
	// OAMStart is the first byte of OAM (40 sprites, 4 bytes each).
	OAMStart uint16 = 0xFE00
	// OAMEnd is the last byte of OAM.
	OAMEnd uint16 = 0xFE9F
)

// tile data and tile maps
const (
	// TileData0 is the unsigned tile data region (tiles 0-255).
	TileData0 uint16 = 0x8000
	// TileData1 is the signed tile data region base.
	TileData1 uint16 = 0x8800

	// TileMap0 is background/window tile map 0.
	TileMap0 uint16 = 0x9800
	// TileMap1 is background/window tile map 1.
	TileMap1 uint16 = 0x9C00
)

// interrupts
const (
	// IF is the interrupt request flags register.
	IF uint16 = 0xFF0F
	// IE is the interrupt enable register.
	IE uint16 = 0xFFFF
)

// Interrupt identifies one of the five interrupt sources, in priority
// order (bit 0 is serviced first).
type Interrupt uint8

const (
	// VBlankInterrupt fires when the PPU enters the vertical blank.
	VBlankInterrupt Interrupt = iota
	// STATInterrupt fires on the conditions selected in the STAT register.
	STATInterrupt
	// TimerInterrupt fires when TIMA overflows.
	TimerInterrupt
	// SerialInterrupt fires when a serial transfer completes.
	SerialInterrupt
	// JoypadInterrupt fires when a selected button line goes low.
	JoypadInterrupt
)

// Vector returns the fixed handler address for the interrupt.
func (i Interrupt) Vector() uint16 {
	return 0x40 + uint16(i)*8
}
