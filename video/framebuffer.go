package video

const (
	// FramebufferWidth is the visible screen width in pixels.
	FramebufferWidth = 160
	// FramebufferHeight is the visible screen height in pixels.
	FramebufferHeight = 144
)

// Color is a single RGB pixel value.
type Color struct {
	R, G, B uint8
}

// FrameBuffer holds the rendered screen as tightly packed RGBA bytes,
// four per pixel, rows top to bottom.
type FrameBuffer struct {
	buffer []byte
}

// NewFrameBuffer creates a framebuffer of the fixed screen size.
func NewFrameBuffer() *FrameBuffer {
	return &FrameBuffer{
		buffer: make([]byte, FramebufferWidth*FramebufferHeight*4),
	}
}

// SetPixel writes one pixel. Alpha is always opaque.
func (fb *FrameBuffer) SetPixel(x, y int, c Color) {
	i := (y*FramebufferWidth + x) * 4
	fb.buffer[i] = c.R
	fb.buffer[i+1] = c.G
	fb.buffer[i+2] = c.B
	fb.buffer[i+3] = 0xFF
}

// GetPixel reads one pixel back.
func (fb *FrameBuffer) GetPixel(x, y int) Color {
	i := (y*FramebufferWidth + x) * 4
	return Color{R: fb.buffer[i], G: fb.buffer[i+1], B: fb.buffer[i+2]}
}

// Bytes exposes the raw RGBA buffer.
func (fb *FrameBuffer) Bytes() []byte {
	return fb.buffer
}

// Clear fills the screen with a single color.
func (fb *FrameBuffer) Clear(c Color) {
	for y := 0; y < FramebufferHeight; y++ {
		for x := 0; x < FramebufferWidth; x++ {
			fb.SetPixel(x, y, c)
		}
	}
}
