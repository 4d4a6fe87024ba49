package video

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dotmatrixgb/dotmatrix/addr"
	"github.com/dotmatrixgb/dotmatrix/memory"
)

// writeSprite stores one raw OAM entry. Y and X are the hardware values
// with their +16/+8 offsets.
func writeSprite(mmu *memory.MMU, index int, y, x, tile, flags uint8) {
	base := addr.OAMStart + uint16(index*4)
	mmu.Write(base, y)
	mmu.Write(base+1, x)
	mmu.Write(base+2, tile)
	mmu.Write(base+3, flags)
}

func TestOAM_scanlineSelection(t *testing.T) {
	mmu := memory.New()
	oam := NewOAM(mmu)

	writeSprite(mmu, 0, 16, 8, 0x01, 0)  // rows 0-7
	writeSprite(mmu, 1, 30, 16, 0x02, 0) // rows 14-21
	writeSprite(mmu, 2, 0, 8, 0x03, 0)   // fully offscreen

	sprites := oam.GetSpritesForScanline(0)
	assert.Len(t, sprites, 1)
	assert.Equal(t, 0, sprites[0].OAMIndex)
	assert.Equal(t, 0, sprites[0].Y)
	assert.Equal(t, 0, sprites[0].X)

	sprites = oam.GetSpritesForScanline(7)
	assert.Len(t, sprites, 1)

	sprites = oam.GetSpritesForScanline(8)
	assert.Len(t, sprites, 0, "8x8 sprite ends after row 7")

	sprites = oam.GetSpritesForScanline(14)
	assert.Len(t, sprites, 1)
	assert.Equal(t, 1, sprites[0].OAMIndex)
}

func TestOAM_tallSprites(t *testing.T) {
	mmu := memory.New()
	oam := NewOAM(mmu)

	mmu.Write(addr.LCDC, 0x95) // LCDC bit 2: 8x16 sprites
	writeSprite(mmu, 0, 16, 8, 0x01, 0)

	sprites := oam.GetSpritesForScanline(12)
	assert.Len(t, sprites, 1)
	assert.Equal(t, 16, sprites[0].Height)

	sprites = oam.GetSpritesForScanline(16)
	assert.Len(t, sprites, 0)
}

func TestOAM_scanlineLimit(t *testing.T) {
	mmu := memory.New()
	oam := NewOAM(mmu)

	// 12 sprites on the same line, only the first 10 in OAM order shown
	for i := 0; i < 12; i++ {
		writeSprite(mmu, i, 16, uint8(8+i*8), 0, 0)
	}

	sprites := oam.GetSpritesForScanline(0)
	assert.Len(t, sprites, 10)
	assert.Equal(t, 9, sprites[9].OAMIndex)
}

func TestOAM_offscreenXCountsTowardLimit(t *testing.T) {
	mmu := memory.New()
	oam := NewOAM(mmu)

	// an X=0 sprite is invisible but still occupies a scanline slot
	writeSprite(mmu, 0, 16, 0, 0, 0)
	for i := 1; i < 11; i++ {
		writeSprite(mmu, i, 16, uint8(8+i*8), 0, 0)
	}

	sprites := oam.GetSpritesForScanline(0)
	assert.Len(t, sprites, 10)
	assert.Equal(t, uint8(0), sprites[0].PixelMask, "X=0 sprite owns no pixels")
	assert.Equal(t, 9, sprites[9].OAMIndex, "the last OAM sprite is squeezed out")
}

func TestOAM_attributeParsing(t *testing.T) {
	mmu := memory.New()
	oam := NewOAM(mmu)

	writeSprite(mmu, 0, 16, 8, 0x42, 0xF5) // all flag bits plus palette 5, bank 0
	sprites := oam.GetSpritesForScanline(0)
	assert.Len(t, sprites, 1)

	s := sprites[0]
	assert.Equal(t, uint8(0x42), s.TileIndex)
	assert.True(t, s.BehindBG)
	assert.True(t, s.FlipY)
	assert.True(t, s.FlipX)
	assert.True(t, s.PaletteOBP1)
	assert.Equal(t, uint8(5), s.CGBPalette)
	assert.Equal(t, uint8(0), s.VRAMBank)
}

func TestOAM_pixelOwnership(t *testing.T) {
	mmu := memory.New()
	oam := NewOAM(mmu)

	// two sprites overlap by 4 pixels; the one further left owns them
	writeSprite(mmu, 0, 16, 16, 0, 0) // X=8
	writeSprite(mmu, 1, 16, 12, 0, 0) // X=4, overlaps pixels 8-11

	sprites := oam.GetSpritesForScanline(0)
	assert.Len(t, sprites, 2)

	left, right := sprites[1], sprites[0]
	assert.Equal(t, uint8(0xFF), left.PixelMask, "leftmost sprite owns all its pixels")
	assert.Equal(t, uint8(0x0F), right.PixelMask, "overlapped pixels are lost")
}
