package memory

import (
	"github.com/pkg/errors"

	"github.com/dotmatrixgb/dotmatrix/bit"
)

const titleLength = 11

const (
	entryPointAddress     = 0x100
	titleAddress          = 0x134
	cgbFlagAddress        = 0x143
	cartridgeTypeAddress  = 0x147
	romSizeAddress        = 0x148
	ramSizeAddress        = 0x149
	versionNumberAddress  = 0x14C
	headerChecksumAddress = 0x14D
	globalChecksumAddress = 0x14E
	headerEnd             = 0x150
)

// ErrInvalidROM is the cause of any cartridge rejection.
var ErrInvalidROM = errors.New("invalid ROM image")

// romBankSize is the size of one switchable ROM bank.
const romBankSize = 0x4000

// MBCType identifies the memory bank controller family of a cartridge.
type MBCType uint8

const (
	NoMBCType MBCType = iota
	MBC1Type
	MBC2Type
	MBC3Type
	MBC5Type
	MBCUnknownType
)

// ramBankCounts maps the header RAM size code to the number of 8KB banks.
var ramBankCounts = [...]uint8{0, 0, 1, 4, 16, 8}

// Cartridge holds a parsed ROM image and its header metadata.
type Cartridge struct {
	data           []byte
	length         int
	title          string
	mbcType        MBCType
	cgb            bool
	hasBattery     bool
	hasRTC         bool
	hasRumble      bool
	ramBankCount   uint8
	version        uint8
	headerChecksum uint8
	globalChecksum uint16
}

// NewCartridge creates an empty cartridge, equivalent to powering on the
// console with nothing inserted.
func NewCartridge() *Cartridge {
	return &Cartridge{
		data:   make([]byte, 2*romBankSize),
		length: 2 * romBankSize,
	}
}

// NewCartridgeWithData parses a ROM image. The image is rejected when it is
// too small to contain a header or names an unknown controller type.
func NewCartridgeWithData(data []byte) (*Cartridge, error) {
	if len(data) < headerEnd {
		return nil, errors.Wrapf(ErrInvalidROM, "ROM is %d bytes, need at least %d", len(data), headerEnd)
	}

	cart := &Cartridge{
		data:           padROM(data),
		length:         len(data),
		title:          cleanTitle(data[titleAddress : titleAddress+titleLength]),
		cgb:            data[cgbFlagAddress] == 0x80 || data[cgbFlagAddress] == 0xC0,
		version:        data[versionNumberAddress],
		headerChecksum: data[headerChecksumAddress],
		globalChecksum: bit.Combine(data[globalChecksumAddress], data[globalChecksumAddress+1]),
	}

	if err := cart.parseType(data[cartridgeTypeAddress]); err != nil {
		return nil, err
	}

	ramSize := data[ramSizeAddress]
	if int(ramSize) >= len(ramBankCounts) {
		return nil, errors.Wrapf(ErrInvalidROM, "unknown RAM size code 0x%02X", ramSize)
	}
	cart.ramBankCount = ramBankCounts[ramSize]

	return cart, nil
}

func (c *Cartridge) parseType(code uint8) error {
	switch code {
	case 0x00:
		c.mbcType = NoMBCType
	case 0x01:
		c.mbcType = MBC1Type
	case 0x02:
		c.mbcType = MBC1Type
	case 0x03:
		c.mbcType = MBC1Type
		c.hasBattery = true
	case 0x05:
		c.mbcType = MBC2Type
	case 0x06:
		c.mbcType = MBC2Type
		c.hasBattery = true
	case 0x08, 0x09:
		c.mbcType = NoMBCType
	case 0x0F, 0x10:
		c.mbcType = MBC3Type
		c.hasRTC = true
		c.hasBattery = true
	case 0x11, 0x12:
		c.mbcType = MBC3Type
	case 0x13:
		c.mbcType = MBC3Type
		c.hasBattery = true
	case 0x19, 0x1A:
		c.mbcType = MBC5Type
	case 0x1B:
		c.mbcType = MBC5Type
		c.hasBattery = true
	case 0x1C, 0x1D:
		c.mbcType = MBC5Type
		c.hasRumble = true
	case 0x1E:
		c.mbcType = MBC5Type
		c.hasRumble = true
		c.hasBattery = true
	default:
		c.mbcType = MBCUnknownType
		return errors.Wrapf(ErrInvalidROM, "unsupported cartridge type 0x%02X", code)
	}
	return nil
}

// Title returns the cleaned-up header title.
func (c *Cartridge) Title() string { return c.title }

// CGB reports whether the cartridge requests or supports color mode.
func (c *Cartridge) CGB() bool { return c.cgb }

// HeaderChecksum returns the header checksum byte at 0x14D.
func (c *Cartridge) HeaderChecksum() uint8 { return c.headerChecksum }

// GlobalChecksum returns the 16-bit checksum at 0x14E.
func (c *Cartridge) GlobalChecksum() uint16 { return c.globalChecksum }

// Length returns the size of the ROM image in bytes, before bank
// padding.
func (c *Cartridge) Length() int { return c.length }

// padROM copies the image rounded up to a whole number of 16KB banks,
// at least two, so controller bank arithmetic can never run past the
// slice. Pad bytes read as open bus.
func padROM(data []byte) []byte {
	size := (len(data) + romBankSize - 1) / romBankSize * romBankSize
	if size < 2*romBankSize {
		size = 2 * romBankSize
	}
	padded := make([]byte, size)
	for i := copy(padded, data); i < size; i++ {
		padded[i] = 0xFF
	}
	return padded
}
