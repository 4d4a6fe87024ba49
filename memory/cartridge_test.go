package memory

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeTestROM builds a minimal 32KB image with the given header fields.
func makeTestROM(title string, cartType, ramSize, cgbFlag byte) []byte {
	rom := make([]byte, 0x8000)
	copy(rom[titleAddress:], title)
	rom[cgbFlagAddress] = cgbFlag
	rom[cartridgeTypeAddress] = cartType
	rom[ramSizeAddress] = ramSize
	rom[headerChecksumAddress] = 0x5A
	rom[globalChecksumAddress] = 0x12
	rom[globalChecksumAddress+1] = 0x34
	return rom
}

func TestNewCartridgeWithData(t *testing.T) {
	cart, err := NewCartridgeWithData(makeTestROM("TESTGAME", 0x03, 0x03, 0x00))
	require.NoError(t, err)

	assert.Equal(t, "TESTGAME", cart.Title())
	assert.Equal(t, MBC1Type, cart.mbcType)
	assert.True(t, cart.hasBattery)
	assert.Equal(t, uint8(4), cart.ramBankCount)
	assert.False(t, cart.CGB())
	assert.Equal(t, uint8(0x5A), cart.HeaderChecksum())
	assert.Equal(t, uint16(0x1234), cart.GlobalChecksum())
	assert.Equal(t, 0x8000, cart.Length())
}

func TestNewCartridgeWithData_cgbFlag(t *testing.T) {
	cart, err := NewCartridgeWithData(makeTestROM("COLOR", 0x19, 0x02, 0x80))
	require.NoError(t, err)
	assert.True(t, cart.CGB())
	assert.Equal(t, MBC5Type, cart.mbcType)

	cart, err = NewCartridgeWithData(makeTestROM("COLORONLY", 0x1B, 0x02, 0xC0))
	require.NoError(t, err)
	assert.True(t, cart.CGB())
}

func TestNewCartridgeWithData_rejections(t *testing.T) {
	t.Run("too small", func(t *testing.T) {
		_, err := NewCartridgeWithData(make([]byte, 0x100))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidROM))
	})

	t.Run("unknown controller type", func(t *testing.T) {
		_, err := NewCartridgeWithData(makeTestROM("BAD", 0xAA, 0x00, 0x00))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidROM))
	})

	t.Run("unknown RAM size code", func(t *testing.T) {
		_, err := NewCartridgeWithData(makeTestROM("BAD", 0x00, 0x09, 0x00))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidROM))
	})
}

func TestCleanTitle(t *testing.T) {
	testCases := []struct {
		desc string
		in   []byte
		want string
	}{
		{desc: "plain ascii", in: []byte("POKEMON"), want: "POKEMON"},
		{desc: "null padded", in: []byte{'A', 'B', 0, 0, 0}, want: "AB"},
		{desc: "unprintable bytes", in: []byte{'A', 0x01, 'B'}, want: "A?B"},
		{desc: "empty", in: []byte{0, 0, 0}, want: "(Untitled)"},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			assert.Equal(t, tC.want, cleanTitle(tC.in))
		})
	}
}
