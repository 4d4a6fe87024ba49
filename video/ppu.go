package video

import (
	"github.com/dotmatrixgb/dotmatrix/addr"
	"github.com/dotmatrixgb/dotmatrix/bit"
	"github.com/dotmatrixgb/dotmatrix/memory"
)

// Mode is the PPU state within a scanline.
type Mode uint8

const (
	oamScan Mode = iota
	pixelTransfer
	hblank
	vblank
)

const (
	oamScanCycles       = 80
	pixelTransferCycles = 172
	hblankCycles        = 204
	scanlineCycles      = oamScanCycles + pixelTransferCycles + hblankCycles

	visibleLines = FramebufferHeight
	totalLines   = 154
)

// LCDC bit positions.
type lcdcFlag uint8

const (
	lcdDisplayEnable       lcdcFlag = 7
	windowTileMapSelect    lcdcFlag = 6
	windowDisplayEnable    lcdcFlag = 5
	bgWindowTileDataSelect lcdcFlag = 4
	bgTileMapSelect        lcdcFlag = 3
	spriteSizeSelect       lcdcFlag = 2
	spriteDisplayEnable    lcdcFlag = 1
	bgDisplay              lcdcFlag = 0
)

// PPU walks scanlines through the four LCD modes and renders each line
// as it enters H-blank. A frame is complete when the PPU enters V-blank.
type PPU struct {
	memory      *memory.MMU
	framebuffer *FrameBuffer
	oam         *OAM

	mode       Mode
	line       int
	cycles     int
	windowLine int
	frameReady bool

	// per-scanline buffers: raw background color indices and the color
	// attribute priority bit, used for sprite priority resolution
	bgIndex    [FramebufferWidth]uint8
	bgPriority [FramebufferWidth]bool
}

// New creates a PPU attached to the given memory unit.
func New(mmu *memory.MMU) *PPU {
	p := &PPU{
		memory:      mmu,
		framebuffer: NewFrameBuffer(),
		oam:         NewOAM(mmu),
		mode:        oamScan,
	}
	p.syncSTAT()
	return p
}

// Framebuffer returns the render target.
func (p *PPU) Framebuffer() *FrameBuffer {
	return p.framebuffer
}

// FrameReady reports whether a full frame has been rendered since the
// last call to ConsumeFrame.
func (p *PPU) FrameReady() bool {
	return p.frameReady
}

// ConsumeFrame clears the frame-ready flag.
func (p *PPU) ConsumeFrame() {
	p.frameReady = false
}

func (p *PPU) readLCDC(flag lcdcFlag) bool {
	return bit.IsSet(uint8(flag), p.memory.Read(addr.LCDC))
}

// Tick advances the PPU by the given CPU cycles.
func (p *PPU) Tick(cycles int) {
	if !p.readLCDC(lcdDisplayEnable) {
		// the LCD is off: hold line 0, mode 0
		p.mode = hblank
		p.line = 0
		p.cycles = 0
		p.windowLine = 0
		p.memory.WriteVideoRegister(addr.LY, 0)
		p.syncSTAT()
		return
	}

	p.cycles += cycles

	for {
		switch p.mode {
		case oamScan:
			if p.cycles < oamScanCycles {
				return
			}
			p.cycles -= oamScanCycles
			p.setMode(pixelTransfer)
		case pixelTransfer:
			if p.cycles < pixelTransferCycles {
				return
			}
			p.cycles -= pixelTransferCycles
			p.renderScanline()
			p.setMode(hblank)
			p.memory.HBlankDMAStep()
		case hblank:
			if p.cycles < hblankCycles {
				return
			}
			p.cycles -= hblankCycles
			p.advanceLine()

			if p.line == visibleLines {
				p.setMode(vblank)
				p.frameReady = true
				p.memory.RequestInterrupt(addr.VBlankInterrupt)
			} else {
				p.setMode(oamScan)
			}
		case vblank:
			if p.cycles < scanlineCycles {
				return
			}
			p.cycles -= scanlineCycles
			p.advanceLine()

			if p.line == 0 {
				p.windowLine = 0
				p.setMode(oamScan)
			}
		}
	}
}

func (p *PPU) advanceLine() {
	p.line = (p.line + 1) % totalLines
	p.memory.WriteVideoRegister(addr.LY, uint8(p.line))
	p.compareLYC()
}

// compareLYC updates the coincidence bit and fires the STAT interrupt
// when selected.
func (p *PPU) compareLYC() {
	stat := p.memory.Read(addr.STAT)
	if uint8(p.line) == p.memory.Read(addr.LYC) {
		stat = bit.Set(2, stat)
		if bit.IsSet(6, stat) {
			p.memory.RequestInterrupt(addr.STATInterrupt)
		}
	} else {
		stat = bit.Clear(2, stat)
	}
	p.memory.WriteVideoRegister(addr.STAT, stat)
}

// setMode publishes the mode bits and fires the matching STAT interrupt.
func (p *PPU) setMode(mode Mode) {
	p.mode = mode
	p.syncSTAT()

	stat := p.memory.Read(addr.STAT)
	switch mode {
	case hblank:
		if bit.IsSet(3, stat) {
			p.memory.RequestInterrupt(addr.STATInterrupt)
		}
	case vblank:
		if bit.IsSet(4, stat) {
			p.memory.RequestInterrupt(addr.STATInterrupt)
		}
	case oamScan:
		if bit.IsSet(5, stat) {
			p.memory.RequestInterrupt(addr.STATInterrupt)
		}
	}
}

// statModeBits maps internal modes to the STAT register encoding
// (0 H-blank, 1 V-blank, 2 OAM scan, 3 transfer).
var statModeBits = [4]uint8{2, 3, 0, 1}

func (p *PPU) syncSTAT() {
	stat := p.memory.Read(addr.STAT)
	stat = (stat & 0xFC) | statModeBits[p.mode]
	p.memory.WriteVideoRegister(addr.STAT, stat)
}

func (p *PPU) renderScanline() {
	cgb := p.memory.CGB()

	for x := range p.bgIndex {
		p.bgIndex[x] = 0
		p.bgPriority[x] = false
	}

	if p.readLCDC(bgDisplay) || cgb {
		p.renderBackground(cgb)
	} else {
		// background disabled: the line is blank
		for x := 0; x < FramebufferWidth; x++ {
			p.framebuffer.SetPixel(x, p.line, dmgShades[0])
		}
	}

	if p.readLCDC(windowDisplayEnable) {
		p.renderWindow(cgb)
	}

	if p.readLCDC(spriteDisplayEnable) {
		p.renderSprites(cgb)
	}
}

// tileDataAddress resolves a tile number to its pattern address using
// the LCDC addressing mode: unsigned from 0x8000 or signed from 0x9000.
func (p *PPU) tileDataAddress(tileNumber uint8) uint16 {
	if p.readLCDC(bgWindowTileDataSelect) {
		return addr.TileData0 + uint16(tileNumber)*16
	}
	return uint16(0x9000 + int(int8(tileNumber))*16)
}

// bgAttributes reads the color attribute byte for a tile map entry.
func (p *PPU) bgAttributes(mapAddr uint16) uint8 {
	return p.memory.ReadVRAMBank(1, mapAddr)
}

func (p *PPU) renderBackground(cgb bool) {
	scy := p.memory.Read(addr.SCY)
	scx := p.memory.Read(addr.SCX)
	bgp := p.memory.Read(addr.BGP)

	mapBase := addr.TileMap0
	if p.readLCDC(bgTileMapSelect) {
		mapBase = addr.TileMap1
	}

	y := uint8(p.line) + scy
	tileRow := uint16(y/8) * 32

	for x := 0; x < FramebufferWidth; x++ {
		bgX := uint8(x) + scx
		mapAddr := mapBase + tileRow + uint16(bgX/8)
		tileNumber := p.memory.ReadVRAMBank(0, mapAddr)

		rowInTile := int(y % 8)
		pixelInTile := int(bgX % 8)
		bank := uint8(0)
		paletteIndex := 0
		flipX := false

		if cgb {
			attrs := p.bgAttributes(mapAddr)
			paletteIndex = int(attrs & 0x07)
			bank = (attrs >> 3) & 0x01
			flipX = bit.IsSet(5, attrs)
			if bit.IsSet(6, attrs) {
				rowInTile = 7 - rowInTile
			}
			p.bgPriority[x] = bit.IsSet(7, attrs)
		}

		row := fetchTileRow(p.memory, bank, p.tileDataAddress(tileNumber), rowInTile)

		var colorIndex int
		if flipX {
			colorIndex = row.GetPixelFlipped(pixelInTile)
		} else {
			colorIndex = row.GetPixel(pixelInTile)
		}
		p.bgIndex[x] = uint8(colorIndex)

		if cgb {
			p.framebuffer.SetPixel(x, p.line, resolveCGBColor(p.memory.BGPaletteRAM(), paletteIndex, colorIndex))
		} else {
			p.framebuffer.SetPixel(x, p.line, resolveDMGColor(colorIndex, bgp))
		}
	}
}

func (p *PPU) renderWindow(cgb bool) {
	wy := int(p.memory.Read(addr.WY))
	if p.line < wy {
		return
	}

	wx := int(p.memory.Read(addr.WX)) - 7
	if wx >= FramebufferWidth {
		return
	}

	bgp := p.memory.Read(addr.BGP)

	mapBase := addr.TileMap0
	if p.readLCDC(windowTileMapSelect) {
		mapBase = addr.TileMap1
	}

	y := p.windowLine
	tileRow := uint16(y/8) * 32

	start := wx
	if start < 0 {
		start = 0
	}

	for x := start; x < FramebufferWidth; x++ {
		windowX := x - wx
		mapAddr := mapBase + tileRow + uint16(windowX/8)
		tileNumber := p.memory.ReadVRAMBank(0, mapAddr)

		rowInTile := y % 8
		pixelInTile := windowX % 8
		bank := uint8(0)
		paletteIndex := 0
		flipX := false

		if cgb {
			attrs := p.bgAttributes(mapAddr)
			paletteIndex = int(attrs & 0x07)
			bank = (attrs >> 3) & 0x01
			flipX = bit.IsSet(5, attrs)
			if bit.IsSet(6, attrs) {
				rowInTile = 7 - rowInTile
			}
			p.bgPriority[x] = bit.IsSet(7, attrs)
		}

		row := fetchTileRow(p.memory, bank, p.tileDataAddress(tileNumber), rowInTile)

		var colorIndex int
		if flipX {
			colorIndex = row.GetPixelFlipped(pixelInTile)
		} else {
			colorIndex = row.GetPixel(pixelInTile)
		}
		p.bgIndex[x] = uint8(colorIndex)

		if cgb {
			p.framebuffer.SetPixel(x, p.line, resolveCGBColor(p.memory.BGPaletteRAM(), paletteIndex, colorIndex))
		} else {
			p.framebuffer.SetPixel(x, p.line, resolveDMGColor(colorIndex, bgp))
		}
	}

	p.windowLine++
}

func (p *PPU) renderSprites(cgb bool) {
	sprites := p.oam.GetSpritesForScanline(p.line)
	obp0 := p.memory.Read(addr.OBP0)
	obp1 := p.memory.Read(addr.OBP1)
	bgEnabled := p.readLCDC(bgDisplay)

	for i := range sprites {
		sprite := &sprites[i]
		if sprite.PixelMask == 0 {
			continue
		}

		rowInSprite := p.line - sprite.Y
		if sprite.FlipY {
			rowInSprite = sprite.Height - 1 - rowInSprite
		}

		tileIndex := sprite.TileIndex
		if sprite.Height == 16 {
			// 8x16 sprites ignore bit 0 of the tile number
			tileIndex &= 0xFE
			if rowInSprite >= 8 {
				tileIndex |= 0x01
				rowInSprite -= 8
			}
		}

		bank := uint8(0)
		if cgb {
			bank = sprite.VRAMBank
		}
		tileAddr := addr.TileData0 + uint16(tileIndex)*16
		row := fetchTileRow(p.memory, bank, tileAddr, rowInSprite)

		for pixelX := 0; pixelX < 8; pixelX++ {
			x := sprite.X + pixelX
			if x < 0 || x >= FramebufferWidth {
				continue
			}
			if !sprite.HasPriorityForPixel(pixelX) {
				continue
			}

			var colorIndex int
			if sprite.FlipX {
				colorIndex = row.GetPixelFlipped(pixelX)
			} else {
				colorIndex = row.GetPixel(pixelX)
			}
			if colorIndex == 0 {
				// color 0 is transparent for sprites
				continue
			}

			if cgb {
				// the attribute priority bit forces the background
				// above sprites unless LCDC bit 0 drops BG priority
				if bgEnabled && (sprite.BehindBG || p.bgPriority[x]) && p.bgIndex[x] != 0 {
					continue
				}
				p.framebuffer.SetPixel(x, p.line, resolveCGBColor(p.memory.OBPaletteRAM(), int(sprite.CGBPalette), colorIndex))
				continue
			}

			if sprite.BehindBG && p.bgIndex[x] != 0 {
				continue
			}

			palette := obp0
			if sprite.PaletteOBP1 {
				palette = obp1
			}
			p.framebuffer.SetPixel(x, p.line, resolveDMGColor(colorIndex, palette))
		}
	}
}

// State is the serializable PPU snapshot. The framebuffer is excluded;
// the next rendered frame rebuilds it.
type State struct {
	Mode       uint8 `json:"mode"`
	Line       int   `json:"line"`
	Cycles     int   `json:"cycles"`
	WindowLine int   `json:"windowLine"`
	FrameReady bool  `json:"frameReady"`
}

// Save captures the PPU timing state.
func (p *PPU) Save() State {
	return State{
		Mode:       uint8(p.mode),
		Line:       p.line,
		Cycles:     p.cycles,
		WindowLine: p.windowLine,
		FrameReady: p.frameReady,
	}
}

// Restore replaces the PPU timing state.
func (p *PPU) Restore(s State) {
	p.mode = Mode(s.Mode)
	p.line = s.Line
	p.cycles = s.Cycles
	p.windowLine = s.WindowLine
	p.frameReady = s.FrameReady
}
