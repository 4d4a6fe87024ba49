package video

// dmgShades are the four monochrome shades, rendered in the classic
// green tint of the original LCD.
var dmgShades = [4]Color{
	{R: 224, G: 248, B: 208},
	{R: 136, G: 192, B: 112},
	{R: 52, G: 104, B: 86},
	{R: 8, G: 24, B: 32},
}

// resolveDMGColor maps a 2-bit color index through a monochrome palette
// register (BGP, OBP0 or OBP1).
func resolveDMGColor(colorIndex int, palette byte) Color {
	shade := (palette >> (uint(colorIndex) * 2)) & 0x03
	return dmgShades[shade]
}

// resolveCGBColor reads a color out of palette RAM. Each palette is 8
// bytes, each color 2 bytes of little-endian 15-bit BGR. The 5-bit
// channels expand to 8 bits preserving the full range.
func resolveCGBColor(paletteRAM []byte, paletteIndex, colorIndex int) Color {
	offset := paletteIndex*8 + colorIndex*2
	raw := uint16(paletteRAM[offset]) | uint16(paletteRAM[offset+1])<<8

	return Color{
		R: expandChannel(raw & 0x1F),
		G: expandChannel((raw >> 5) & 0x1F),
		B: expandChannel((raw >> 10) & 0x1F),
	}
}

// expandChannel widens a 5-bit channel to 8 bits so that 0x1F maps to
// 0xFF exactly.
func expandChannel(v uint16) uint8 {
	return uint8((v*527 + 23) >> 6)
}
