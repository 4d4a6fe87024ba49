package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTileRow_GetPixel(t *testing.T) {
	// the classic bit-plane example: 0x3C/0x7E decodes to 0 2 3 3 3 3 2 0
	row := TileRow{Low: 0x3C, High: 0x7E}
	want := []int{0, 2, 3, 3, 3, 3, 2, 0}

	for x, w := range want {
		assert.Equal(t, w, row.GetPixel(x), "pixel %d", x)
	}
}

func TestTileRow_GetPixelFlipped(t *testing.T) {
	row := TileRow{Low: 0x80, High: 0x00} // leftmost pixel is color 1

	assert.Equal(t, 1, row.GetPixel(0))
	assert.Equal(t, 0, row.GetPixel(7))

	assert.Equal(t, 1, row.GetPixelFlipped(7))
	assert.Equal(t, 0, row.GetPixelFlipped(0))
}

type fakeVRAM struct {
	data map[uint16]byte
	bank map[uint16]uint8
}

func (f *fakeVRAM) ReadVRAMBank(bank uint8, address uint16) byte {
	if f.bank[address] != bank {
		return 0
	}
	return f.data[address]
}

func TestFetchTileRow(t *testing.T) {
	vram := &fakeVRAM{
		data: map[uint16]byte{
			0x8004: 0x3C,
			0x8005: 0x7E,
		},
		bank: map[uint16]uint8{},
	}

	row := fetchTileRow(vram, 0, 0x8000, 2)
	assert.Equal(t, TileRow{Low: 0x3C, High: 0x7E}, row)

	// rows are two bytes apart
	row = fetchTileRow(vram, 0, 0x8000, 0)
	assert.Equal(t, TileRow{}, row)

	// the bank is honored
	row = fetchTileRow(vram, 1, 0x8000, 2)
	assert.Equal(t, TileRow{}, row)
}
