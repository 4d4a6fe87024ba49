package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotmatrixgb/dotmatrix/addr"
)

// newCGBMMU builds an MMU around a color-capable MBC5 cartridge.
func newCGBMMU(t *testing.T) *MMU {
	t.Helper()
	cart, err := NewCartridgeWithData(makeTestROM("CGBTEST", 0x19, 0x02, 0x80))
	require.NoError(t, err)
	return NewWithCartridge(cart)
}

func TestMMU_ramRegions(t *testing.T) {
	mmu := New()

	t.Run("work RAM", func(t *testing.T) {
		mmu.Write(0xC000, 0x12)
		mmu.Write(0xDFFF, 0x34)
		assert.Equal(t, uint8(0x12), mmu.Read(0xC000))
		assert.Equal(t, uint8(0x34), mmu.Read(0xDFFF))
	})

	t.Run("echo RAM mirrors work RAM", func(t *testing.T) {
		mmu.Write(0xC100, 0xAB)
		assert.Equal(t, uint8(0xAB), mmu.Read(0xE100))

		mmu.Write(0xE200, 0xCD)
		assert.Equal(t, uint8(0xCD), mmu.Read(0xC200))
	})

	t.Run("video RAM", func(t *testing.T) {
		mmu.Write(0x8000, 0x55)
		assert.Equal(t, uint8(0x55), mmu.Read(0x8000))
	})

	t.Run("high RAM", func(t *testing.T) {
		mmu.Write(0xFF80, 0x77)
		mmu.Write(0xFFFE, 0x88)
		assert.Equal(t, uint8(0x77), mmu.Read(0xFF80))
		assert.Equal(t, uint8(0x88), mmu.Read(0xFFFE))
	})

	t.Run("unusable region reads 0xFF", func(t *testing.T) {
		mmu.Write(0xFEA0, 0x42)
		assert.Equal(t, uint8(0xFF), mmu.Read(0xFEA0))
		assert.Equal(t, uint8(0xFF), mmu.Read(0xFEFF))
	})

	t.Run("ROM reads 0xFF with nothing inserted", func(t *testing.T) {
		assert.Equal(t, uint8(0xFF), mmu.Read(0x0100))
	})
}

func TestMMU_interruptRegisters(t *testing.T) {
	mmu := New()

	mmu.Write(addr.IF, 0x00)
	assert.Equal(t, uint8(0xE0), mmu.Read(addr.IF), "upper IF bits stuck high")

	mmu.RequestInterrupt(addr.TimerInterrupt)
	assert.Equal(t, uint8(0xE4), mmu.Read(addr.IF))

	mmu.Write(addr.IE, 0x1F)
	assert.Equal(t, uint8(0x1F), mmu.Read(addr.IE))
}

func TestMMU_lcdRegisterProtection(t *testing.T) {
	mmu := New()

	mmu.WriteVideoRegister(addr.LY, 42)
	mmu.Write(addr.LY, 99)
	assert.Equal(t, uint8(42), mmu.Read(addr.LY), "LY ignores CPU writes")

	mmu.WriteVideoRegister(addr.STAT, 0x03)
	mmu.Write(addr.STAT, 0xFF)
	assert.Equal(t, uint8(0xFB), mmu.Read(addr.STAT), "mode bits survive CPU writes")
}

func TestMMU_oamDMA(t *testing.T) {
	mmu := New()

	for i := uint16(0); i < oamSize; i++ {
		mmu.Write(0xC000+i, uint8(i))
	}

	mmu.Write(addr.DMA, 0xC0)

	for i := 0; i < int(oamSize); i++ {
		assert.Equal(t, uint8(i), mmu.OAMByte(i))
	}
	assert.Equal(t, uint8(0xC0), mmu.Read(addr.DMA))
}

func TestMMU_dmgLocksColorFeatures(t *testing.T) {
	mmu := New()

	assert.Equal(t, uint8(0xFF), mmu.Read(addr.VBK))
	assert.Equal(t, uint8(0xFF), mmu.Read(addr.SVBK))
	assert.Equal(t, uint8(0xFF), mmu.Read(addr.BGPD))

	// bank selects are ignored outside color mode
	mmu.Write(addr.VBK, 0x01)
	mmu.Write(0x8000, 0x11)
	assert.Equal(t, uint8(0x11), mmu.ReadVRAMBank(0, 0x8000))

	mmu.Write(addr.SVBK, 0x03)
	mmu.Write(0xD000, 0x22)
	mmu.Write(addr.SVBK, 0x04)
	assert.Equal(t, uint8(0x22), mmu.Read(0xD000), "DMG work RAM bank is fixed")
}

func TestMMU_cgbVRAMBanking(t *testing.T) {
	mmu := newCGBMMU(t)

	mmu.Write(addr.VBK, 0x00)
	mmu.Write(0x8000, 0x11)
	mmu.Write(addr.VBK, 0x01)
	mmu.Write(0x8000, 0x22)

	assert.Equal(t, uint8(0x22), mmu.Read(0x8000))
	assert.Equal(t, uint8(0xFF), mmu.Read(addr.VBK), "unused VBK bits read high")

	mmu.Write(addr.VBK, 0x00)
	assert.Equal(t, uint8(0x11), mmu.Read(0x8000))
	assert.Equal(t, uint8(0xFE), mmu.Read(addr.VBK))

	assert.Equal(t, uint8(0x22), mmu.ReadVRAMBank(1, 0x8000))
}

func TestMMU_cgbWRAMBanking(t *testing.T) {
	mmu := newCGBMMU(t)

	mmu.Write(addr.SVBK, 0x01)
	mmu.Write(0xD000, 0x11)
	mmu.Write(addr.SVBK, 0x03)
	mmu.Write(0xD000, 0x33)

	mmu.Write(addr.SVBK, 0x01)
	assert.Equal(t, uint8(0x11), mmu.Read(0xD000))
	mmu.Write(addr.SVBK, 0x03)
	assert.Equal(t, uint8(0x33), mmu.Read(0xD000))

	// bank 0 selects bank 1
	mmu.Write(addr.SVBK, 0x00)
	assert.Equal(t, uint8(0x11), mmu.Read(0xD000))

	// the fixed half is unaffected
	mmu.Write(0xC000, 0x55)
	mmu.Write(addr.SVBK, 0x05)
	assert.Equal(t, uint8(0x55), mmu.Read(0xC000))
}

func TestMMU_cgbPaletteRAM(t *testing.T) {
	mmu := newCGBMMU(t)

	t.Run("indexed access", func(t *testing.T) {
		mmu.Write(addr.BGPI, 0x05)
		mmu.Write(addr.BGPD, 0xAA)
		assert.Equal(t, uint8(0xAA), mmu.Read(addr.BGPD))
		assert.Equal(t, uint8(0x05), mmu.Read(addr.BGPI), "no auto-increment without bit 7")
	})

	t.Run("auto increment", func(t *testing.T) {
		mmu.Write(addr.BGPI, 0x80)
		mmu.Write(addr.BGPD, 0x11)
		mmu.Write(addr.BGPD, 0x22)
		assert.Equal(t, uint8(0x82), mmu.Read(addr.BGPI))

		assert.Equal(t, uint8(0x11), mmu.BGPaletteRAM()[0])
		assert.Equal(t, uint8(0x22), mmu.BGPaletteRAM()[1])
	})

	t.Run("auto increment wraps", func(t *testing.T) {
		mmu.Write(addr.BGPI, 0x80|0x3F)
		mmu.Write(addr.BGPD, 0x33)
		assert.Equal(t, uint8(0x80), mmu.Read(addr.BGPI))
	})

	t.Run("object palettes are separate", func(t *testing.T) {
		mmu.Write(addr.OBPI, 0x00)
		mmu.Write(addr.OBPD, 0x44)
		assert.Equal(t, uint8(0x44), mmu.OBPaletteRAM()[0])
		assert.NotEqual(t, uint8(0x44), mmu.BGPaletteRAM()[0])
	})
}

func TestMMU_generalPurposeHDMA(t *testing.T) {
	mmu := newCGBMMU(t)

	for i := uint16(0); i < 0x20; i++ {
		mmu.Write(0xC000+i, uint8(i)+1)
	}

	mmu.Write(addr.HDMA1, 0xC0)
	mmu.Write(addr.HDMA2, 0x00)
	mmu.Write(addr.HDMA3, 0x00)
	mmu.Write(addr.HDMA4, 0x00)
	mmu.Write(addr.HDMA5, 0x01) // 2 blocks, immediate

	for i := uint16(0); i < 0x20; i++ {
		assert.Equal(t, uint8(i)+1, mmu.Read(0x8000+i))
	}
	assert.Equal(t, uint8(0xFF), mmu.Read(addr.HDMA5), "transfer complete")
}

func TestMMU_hblankHDMA(t *testing.T) {
	mmu := newCGBMMU(t)

	for i := uint16(0); i < 0x20; i++ {
		mmu.Write(0xC000+i, uint8(0xA0)+uint8(i))
	}

	mmu.Write(addr.HDMA1, 0xC0)
	mmu.Write(addr.HDMA2, 0x00)
	mmu.Write(addr.HDMA3, 0x00)
	mmu.Write(addr.HDMA4, 0x10)
	mmu.Write(addr.HDMA5, 0x81) // 2 blocks, one per H-blank

	assert.Equal(t, uint8(0x01), mmu.Read(addr.HDMA5), "remaining length while active")
	assert.Equal(t, uint8(0x00), mmu.Read(0x8010), "nothing copied yet")

	mmu.HBlankDMAStep()
	assert.Equal(t, uint8(0xA0), mmu.Read(0x8010))
	assert.Equal(t, uint8(0x00), mmu.Read(addr.HDMA5))

	mmu.HBlankDMAStep()
	assert.Equal(t, uint8(0xB0), mmu.Read(0x8020))
	assert.Equal(t, uint8(0xFF), mmu.Read(addr.HDMA5), "transfer complete")

	// further steps are no-ops
	mmu.HBlankDMAStep()
	assert.Equal(t, uint8(0xFF), mmu.Read(addr.HDMA5))
}

func TestMMU_hblankHDMACancel(t *testing.T) {
	mmu := newCGBMMU(t)

	mmu.Write(addr.HDMA1, 0xC0)
	mmu.Write(addr.HDMA2, 0x00)
	mmu.Write(addr.HDMA3, 0x00)
	mmu.Write(addr.HDMA4, 0x00)
	mmu.Write(addr.HDMA5, 0x85)

	mmu.Write(addr.HDMA5, 0x00) // bit 7 clear cancels

	assert.NotZero(t, mmu.Read(addr.HDMA5)&0x80, "bit 7 set marks the abort")

	mmu.HBlankDMAStep()
	assert.Equal(t, uint8(0x00), mmu.Read(0x8000), "no copy after cancel")
}

func TestMMU_joypad(t *testing.T) {
	t.Run("nothing selected floats high", func(t *testing.T) {
		mmu := New()
		mmu.Write(addr.P1, 0x30)
		assert.Equal(t, uint8(0xFF), mmu.Read(addr.P1))
	})

	t.Run("pressed keys read low", func(t *testing.T) {
		mmu := New()
		mmu.Write(addr.P1, 0x20) // select d-pad
		mmu.HandleKeyPress(JoypadRight)
		assert.Equal(t, uint8(0xEE), mmu.Read(addr.P1))

		mmu.HandleKeyRelease(JoypadRight)
		assert.Equal(t, uint8(0xEF), mmu.Read(addr.P1))
	})

	t.Run("button group", func(t *testing.T) {
		mmu := New()
		mmu.Write(addr.P1, 0x10) // select buttons
		mmu.HandleKeyPress(JoypadStart)
		assert.Equal(t, uint8(0xD7), mmu.Read(addr.P1))
	})

	t.Run("interrupt only for the selected group", func(t *testing.T) {
		mmu := New()
		mmu.Write(addr.IF, 0)

		mmu.Write(addr.P1, 0x20) // d-pad selected
		mmu.HandleKeyPress(JoypadA)
		assert.Equal(t, uint8(0), mmu.Read(addr.IF)&0x10, "button press with d-pad selected")

		mmu.HandleKeyPress(JoypadUp)
		assert.Equal(t, uint8(0x10), mmu.Read(addr.IF)&0x10)
	})

	t.Run("no interrupt on repeat press", func(t *testing.T) {
		mmu := New()
		mmu.Write(addr.P1, 0x10)
		mmu.HandleKeyPress(JoypadA)
		mmu.Write(addr.IF, 0)

		mmu.HandleKeyPress(JoypadA)
		assert.Equal(t, uint8(0), mmu.Read(addr.IF)&0x10, "line already low")
	})
}

func TestMMU_stateRoundTrip(t *testing.T) {
	mmu := newCGBMMU(t)

	mmu.Write(0xC123, 0x11)
	mmu.Write(0x8042, 0x22)
	mmu.Write(addr.SVBK, 0x03)
	mmu.Write(0xD000, 0x33)
	mmu.Write(addr.BGPI, 0x80)
	mmu.Write(addr.BGPD, 0x44)
	mmu.Write(addr.IE, 0x15)
	mmu.Write(0xFF80, 0x55)
	mmu.Write(0x2000, 0x02) // ROM bank

	state := mmu.Save()

	cart, err := NewCartridgeWithData(makeTestROM("CGBTEST", 0x19, 0x02, 0x80))
	require.NoError(t, err)
	restored := NewWithCartridge(cart)
	restored.Restore(state)

	assert.Equal(t, uint8(0x11), restored.Read(0xC123))
	assert.Equal(t, uint8(0x22), restored.Read(0x8042))
	assert.Equal(t, uint8(0x33), restored.Read(0xD000))
	assert.Equal(t, uint8(0x44), restored.BGPaletteRAM()[0])
	assert.Equal(t, uint8(0x15), restored.Read(addr.IE))
	assert.Equal(t, uint8(0x55), restored.Read(0xFF80))
	assert.Equal(t, uint8(0x03), restored.Read(addr.SVBK))
}
