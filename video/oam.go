package video

import (
	"github.com/dotmatrixgb/dotmatrix/addr"
	"github.com/dotmatrixgb/dotmatrix/bit"
)

// Sprite is one object from OAM. There are 40 of them, 4 bytes each,
// at 0xFE00-0xFE9F.
type Sprite struct {
	Y         int   // screen Y, with the hardware +16 offset removed
	X         int   // screen X, with the hardware +8 offset removed
	TileIndex uint8 // tile/pattern number
	Flags     uint8 // raw attribute byte
	OAMIndex  int   // index in OAM (0-39)
	Height    int   // 8 or 16 pixels, from LCDC bit 2

	// parsed attribute flags
	PaletteOBP1 bool // monochrome: false = OBP0, true = OBP1
	FlipX       bool
	FlipY       bool
	BehindBG    bool // sprite draws behind non-zero background pixels

	// color-mode attributes
	CGBPalette uint8 // palette number (bits 0-2)
	VRAMBank   uint8 // tile data bank (bit 3)

	// per-pixel ownership after sprite-to-sprite priority resolution,
	// bit 7 is the leftmost pixel
	PixelMask uint8
}

func (s *Sprite) parseFlags() {
	s.PaletteOBP1 = bit.IsSet(4, s.Flags)
	s.FlipX = bit.IsSet(5, s.Flags)
	s.FlipY = bit.IsSet(6, s.Flags)
	s.BehindBG = bit.IsSet(7, s.Flags)
	s.CGBPalette = s.Flags & 0x07
	s.VRAMBank = (s.Flags >> 3) & 0x01
}

// HasPriorityForPixel reports whether the sprite owns the pixel at the
// given X offset within its 8-pixel span.
func (s *Sprite) HasPriorityForPixel(pixelX int) bool {
	if pixelX < 0 || pixelX > 7 {
		return false
	}
	return s.PixelMask&(1<<(7-pixelX)) != 0
}

// OAMBus is the memory access the sprite scanner needs.
type OAMBus interface {
	Read(address uint16) byte
}

// OAM scans object attribute memory and resolves scanline sprites.
type OAM struct {
	bus            OAMBus
	priorityBuffer SpritePriorityBuffer
	spriteBuffer   [10]Sprite
}

func NewOAM(bus OAMBus) *OAM {
	return &OAM{bus: bus}
}

// GetSpritesForScanline returns the sprites overlapping a scanline, up
// to the hardware limit of 10, with per-pixel priority already resolved.
// Selection follows OAM order; pixel ownership follows the lower-X-wins
// rule with OAM index as the tie break.
func (o *OAM) GetSpritesForScanline(scanline int) []Sprite {
	sprites := o.spriteBuffer[:0]
	o.priorityBuffer.Clear()

	lcdc := o.bus.Read(addr.LCDC)
	spriteHeight := 8
	if bit.IsSet(2, lcdc) {
		spriteHeight = 16
	}

	for i := 0; i < 40; i++ {
		baseAddr := addr.OAMStart + uint16(i*4)

		rawY := o.bus.Read(baseAddr)
		spriteY := int(rawY) - 16

		if scanline < spriteY || scanline >= spriteY+spriteHeight {
			continue
		}

		rawX := o.bus.Read(baseAddr + 1)
		if rawX == 0 {
			// X=0 means fully offscreen, but the sprite still counts
			// toward the scanline limit
			sprites = append(sprites, Sprite{OAMIndex: i, X: -8, Y: spriteY})
			if len(sprites) >= 10 {
				break
			}
			continue
		}

		sprite := Sprite{
			Y:         spriteY,
			X:         int(rawX) - 8,
			TileIndex: o.bus.Read(baseAddr + 2),
			Flags:     o.bus.Read(baseAddr + 3),
			OAMIndex:  i,
			Height:    spriteHeight,
		}
		sprite.parseFlags()

		sprites = append(sprites, sprite)

		for pixelX := 0; pixelX < 8; pixelX++ {
			o.priorityBuffer.TryClaimPixel(sprite.X+pixelX, sprite.OAMIndex, sprite.X)
		}

		if len(sprites) >= 10 {
			break
		}
	}

	for i := range sprites {
		var mask uint8
		for pixelX := 0; pixelX < 8; pixelX++ {
			if o.priorityBuffer.GetOwner(sprites[i].X+pixelX) == sprites[i].OAMIndex {
				mask |= 1 << (7 - pixelX)
			}
		}
		sprites[i].PixelMask = mask
	}

	return sprites
}
