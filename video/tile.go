package video

import "github.com/dotmatrixgb/dotmatrix/bit"

// TileRow is one row of a tile pattern (8 pixels). Tiles are stored in
// a bit-plane format: the low byte provides bit 0 of each pixel's color
// index, the high byte bit 1. Bit 7 is the leftmost pixel.
//
// Example: bytes 0x3C and 0x7E decode as
//
//	Low  (0x3C): 0 0 1 1 1 1 0 0
//	High (0x7E): 0 1 1 1 1 1 1 0
//	Colors:      0 2 3 3 3 3 2 0
//
// The index (0-3) is resolved to a display color by the palette
// registers; for sprites index 0 is always transparent.
type TileRow struct {
	Low  byte
	High byte
}

// GetPixel extracts the color index (0-3) of a pixel. pixelX 0 is the
// leftmost pixel.
func (t TileRow) GetPixel(pixelX int) int {
	bitIndex := uint8(7 - pixelX)

	pixel := 0
	if bit.IsSet(bitIndex, t.Low) {
		pixel |= 1
	}
	if bit.IsSet(bitIndex, t.High) {
		pixel |= 2
	}

	return pixel
}

// GetPixelFlipped extracts a color index with horizontal flip applied.
func (t TileRow) GetPixelFlipped(pixelX int) int {
	bitIndex := uint8(pixelX)

	pixel := 0
	if bit.IsSet(bitIndex, t.Low) {
		pixel |= 1
	}
	if bit.IsSet(bitIndex, t.High) {
		pixel |= 2
	}

	return pixel
}

// VRAMReader reads tile data out of a specific video RAM bank.
type VRAMReader interface {
	ReadVRAMBank(bank uint8, address uint16) byte
}

// fetchTileRow reads one row of a tile pattern from the given bank.
func fetchTileRow(vram VRAMReader, bank uint8, tileAddr uint16, row int) TileRow {
	a := tileAddr + uint16(row*2)
	return TileRow{
		Low:  vram.ReadVRAMBank(bank, a),
		High: vram.ReadVRAMBank(bank, a+1),
	}
}
