package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDMGColor(t *testing.T) {
	// identity palette: each index maps to its own shade
	for i := 0; i < 4; i++ {
		assert.Equal(t, dmgShades[i], resolveDMGColor(i, 0xE4))
	}

	// inverted palette
	for i := 0; i < 4; i++ {
		assert.Equal(t, dmgShades[3-i], resolveDMGColor(i, 0x1B))
	}

	// everything mapped to the darkest shade
	for i := 0; i < 4; i++ {
		assert.Equal(t, dmgShades[3], resolveDMGColor(i, 0xFF))
	}
}

func TestResolveCGBColor(t *testing.T) {
	ram := make([]byte, 64)

	// palette 0, color 0: white (all channels max)
	ram[0] = 0xFF
	ram[1] = 0x7F
	// palette 0, color 1: pure red (low 5 bits)
	ram[2] = 0x1F
	ram[3] = 0x00
	// palette 1, color 0: pure blue (bits 10-14)
	ram[8] = 0x00
	ram[9] = 0x7C

	assert.Equal(t, Color{R: 255, G: 255, B: 255}, resolveCGBColor(ram, 0, 0))
	assert.Equal(t, Color{R: 255, G: 0, B: 0}, resolveCGBColor(ram, 0, 1))
	assert.Equal(t, Color{R: 0, G: 0, B: 255}, resolveCGBColor(ram, 1, 0))
}

func TestExpandChannel(t *testing.T) {
	assert.Equal(t, uint8(0), expandChannel(0))
	assert.Equal(t, uint8(255), expandChannel(31))

	// expansion is monotonic
	prev := uint8(0)
	for v := uint16(0); v <= 31; v++ {
		got := expandChannel(v)
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}
}
