package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotmatrixgb/dotmatrix/addr"
	"github.com/dotmatrixgb/dotmatrix/memory"
)

// newCGBPPU builds a PPU over an MMU with a color-capable cartridge.
func newCGBPPU(t *testing.T) (*PPU, *memory.MMU) {
	t.Helper()
	rom := make([]byte, 0x8000)
	rom[0x143] = 0x80 // CGB flag
	rom[0x147] = 0x00 // no controller
	cart, err := memory.NewCartridgeWithData(rom)
	require.NoError(t, err)
	mmu := memory.NewWithCartridge(cart)
	return New(mmu), mmu
}

func TestPPU_modeProgression(t *testing.T) {
	mmu := memory.New()
	ppu := New(mmu)

	assert.Equal(t, uint8(2), mmu.Read(addr.STAT)&0x03, "starts in OAM scan")

	ppu.Tick(80)
	assert.Equal(t, uint8(3), mmu.Read(addr.STAT)&0x03, "pixel transfer")

	ppu.Tick(172)
	assert.Equal(t, uint8(0), mmu.Read(addr.STAT)&0x03, "H-blank")
	assert.Equal(t, uint8(0), mmu.Read(addr.LY))

	ppu.Tick(204)
	assert.Equal(t, uint8(2), mmu.Read(addr.STAT)&0x03, "next line OAM scan")
	assert.Equal(t, uint8(1), mmu.Read(addr.LY))
}

func TestPPU_frameTiming(t *testing.T) {
	mmu := memory.New()
	ppu := New(mmu)
	mmu.Write(addr.IF, 0)

	// 144 visible lines at 456 cycles each reach V-blank
	for i := 0; i < 144; i++ {
		ppu.Tick(456)
	}

	assert.True(t, ppu.FrameReady())
	assert.Equal(t, uint8(144), mmu.Read(addr.LY))
	assert.Equal(t, uint8(1), mmu.Read(addr.STAT)&0x03, "V-blank")
	assert.NotZero(t, mmu.Read(addr.IF)&0x01, "V-blank interrupt requested")

	ppu.ConsumeFrame()
	assert.False(t, ppu.FrameReady())

	// ten V-blank lines wrap back to line 0
	for i := 0; i < 10; i++ {
		ppu.Tick(456)
	}
	assert.Equal(t, uint8(0), mmu.Read(addr.LY))
	assert.Equal(t, uint8(2), mmu.Read(addr.STAT)&0x03)
}

func TestPPU_lycCoincidence(t *testing.T) {
	mmu := memory.New()
	ppu := New(mmu)
	mmu.Write(addr.IF, 0)

	mmu.Write(addr.LYC, 2)
	mmu.Write(addr.STAT, 0x40) // LYC interrupt select

	ppu.Tick(456)
	assert.Zero(t, mmu.Read(addr.STAT)&0x04, "no coincidence on line 1")
	assert.Zero(t, mmu.Read(addr.IF)&0x02)

	ppu.Tick(456)
	assert.NotZero(t, mmu.Read(addr.STAT)&0x04, "coincidence on line 2")
	assert.NotZero(t, mmu.Read(addr.IF)&0x02, "STAT interrupt requested")

	ppu.Tick(456)
	assert.Zero(t, mmu.Read(addr.STAT)&0x04, "cleared on line 3")
}

func TestPPU_statModeInterrupts(t *testing.T) {
	mmu := memory.New()
	ppu := New(mmu)
	mmu.Write(addr.IF, 0)

	mmu.Write(addr.STAT, 0x08) // H-blank interrupt select
	ppu.Tick(80)
	ppu.Tick(172)
	assert.NotZero(t, mmu.Read(addr.IF)&0x02)
}

func TestPPU_lcdOffHoldsLineZero(t *testing.T) {
	mmu := memory.New()
	ppu := New(mmu)

	ppu.Tick(456 * 3)
	assert.Equal(t, uint8(3), mmu.Read(addr.LY))

	mmu.Write(addr.LCDC, 0x11) // display off
	ppu.Tick(456 * 5)

	assert.Equal(t, uint8(0), mmu.Read(addr.LY))
	assert.Equal(t, uint8(0), mmu.Read(addr.STAT)&0x03)
	assert.False(t, ppu.FrameReady())
}

// renderLine runs the PPU through one full scanline.
func renderLine(ppu *PPU) {
	ppu.Tick(80)
	ppu.Tick(172)
	ppu.Tick(204)
}

func TestPPU_rendersBackground(t *testing.T) {
	mmu := memory.New()
	ppu := New(mmu)

	// tile 1: every pixel color index 1
	for row := uint16(0); row < 8; row++ {
		mmu.Write(0x8010+row*2, 0xFF)
		mmu.Write(0x8011+row*2, 0x00)
	}
	// the first map entry points at tile 1, the rest stay at tile 0
	mmu.Write(addr.TileMap0, 0x01)
	mmu.Write(addr.BGP, 0xE4)

	renderLine(ppu)

	fb := ppu.Framebuffer()
	assert.Equal(t, dmgShades[1], fb.GetPixel(0, 0), "tile 1 pixel")
	assert.Equal(t, dmgShades[1], fb.GetPixel(7, 0))
	assert.Equal(t, dmgShades[0], fb.GetPixel(8, 0), "tile 0 is blank")
}

func TestPPU_rendersScrolledBackground(t *testing.T) {
	mmu := memory.New()
	ppu := New(mmu)

	for row := uint16(0); row < 8; row++ {
		mmu.Write(0x8010+row*2, 0xFF)
	}
	mmu.Write(addr.TileMap0+1, 0x01) // second tile column
	mmu.Write(addr.BGP, 0xE4)
	mmu.Write(addr.SCX, 8)

	renderLine(ppu)

	assert.Equal(t, dmgShades[1], ppu.Framebuffer().GetPixel(0, 0), "scroll shifts tile 1 into view")
}

func TestPPU_rendersWindow(t *testing.T) {
	mmu := memory.New()
	ppu := New(mmu)

	// window over an empty background, using the second tile map
	mmu.Write(addr.LCDC, 0xF1)
	for row := uint16(0); row < 8; row++ {
		mmu.Write(0x8010+row*2, 0xFF)
		mmu.Write(0x8011+row*2, 0xFF) // color index 3
	}
	mmu.Write(addr.TileMap1, 0x01)
	mmu.Write(addr.BGP, 0xE4)
	mmu.Write(addr.WY, 0)
	mmu.Write(addr.WX, 7+80) // right half of the screen

	renderLine(ppu)

	fb := ppu.Framebuffer()
	assert.Equal(t, dmgShades[0], fb.GetPixel(79, 0), "left of the window")
	assert.Equal(t, dmgShades[3], fb.GetPixel(80, 0), "window origin")
}

func TestPPU_rendersSprites(t *testing.T) {
	mmu := memory.New()
	ppu := New(mmu)

	mmu.Write(addr.LCDC, 0x93) // sprites on
	for row := uint16(0); row < 8; row++ {
		mmu.Write(0x8010+row*2, 0xFF) // tile 1, color index 1
	}
	mmu.Write(addr.OBP0, 0xE4)
	mmu.Write(addr.BGP, 0xE4)
	writeSprite(mmu, 0, 16, 8, 0x01, 0) // screen origin

	renderLine(ppu)

	fb := ppu.Framebuffer()
	assert.Equal(t, dmgShades[1], fb.GetPixel(0, 0))
	assert.Equal(t, dmgShades[0], fb.GetPixel(8, 0), "past the sprite")
}

func TestPPU_spriteBehindBackground(t *testing.T) {
	mmu := memory.New()
	ppu := New(mmu)

	mmu.Write(addr.LCDC, 0x93)
	// background tile 1: color index 2. sprite tile 2: color index 1.
	for row := uint16(0); row < 8; row++ {
		mmu.Write(0x8011+row*2, 0xFF)
		mmu.Write(0x8020+row*2, 0xFF)
	}
	mmu.Write(addr.TileMap0, 0x01)
	mmu.Write(addr.BGP, 0xE4)
	mmu.Write(addr.OBP0, 0xE4)
	writeSprite(mmu, 0, 16, 8, 0x02, 0x80) // behind background

	renderLine(ppu)

	assert.Equal(t, dmgShades[2], ppu.Framebuffer().GetPixel(0, 0), "non-zero background wins")
}

func TestPPU_rendersCGBBackground(t *testing.T) {
	ppu, mmu := newCGBPPU(t)

	for row := uint16(0); row < 8; row++ {
		mmu.Write(0x8010+row*2, 0xFF) // tile 1, color index 1
	}
	mmu.Write(addr.TileMap0, 0x01)

	// palette 2, color 1: pure red (byte index 18)
	mmu.Write(addr.BGPI, 0x92)
	mmu.Write(addr.BGPD, 0x1F)
	mmu.Write(addr.BGPD, 0x00)

	// tile map attributes live in VRAM bank 1
	mmu.Write(addr.VBK, 0x01)
	mmu.Write(addr.TileMap0, 0x02) // palette 2
	mmu.Write(addr.VBK, 0x00)

	renderLine(ppu)

	assert.Equal(t, Color{R: 255, G: 0, B: 0}, ppu.Framebuffer().GetPixel(0, 0))
}

func TestPPU_stateRoundTrip(t *testing.T) {
	mmu := memory.New()
	ppu := New(mmu)

	ppu.Tick(456*2 + 100)
	state := ppu.Save()

	restored := New(memory.New())
	restored.Restore(state)

	assert.Equal(t, ppu.mode, restored.mode)
	assert.Equal(t, ppu.line, restored.line)
	assert.Equal(t, ppu.cycles, restored.cycles)
	assert.Equal(t, ppu.windowLine, restored.windowLine)
}
