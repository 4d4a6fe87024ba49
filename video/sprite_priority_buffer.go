package video

// SpritePriorityBuffer resolves sprite-to-sprite priority per pixel:
// the sprite with the lower X coordinate owns a contested pixel, and
// when X coordinates match the lower OAM index wins.
//
// Instead of sorting the scanline sprites, ownership is precomputed:
// each sprite tries to claim the eight pixels it covers, and during
// rendering a sprite only draws the pixels it still owns.
type SpritePriorityBuffer struct {
	// ownerIndex is the OAM index owning each pixel, -1 when unowned
	ownerIndex [FramebufferWidth]int
	// ownerX is the X coordinate of the owning sprite
	ownerX [FramebufferWidth]int
}

// Clear resets the buffer for a new scanline.
func (s *SpritePriorityBuffer) Clear() {
	for i := range s.ownerIndex {
		s.ownerIndex[i] = -1
		s.ownerX[i] = 0xFF
	}
}

// TryClaimPixel attempts to claim a pixel for a sprite, returning true
// when the sprite wins it.
func (s *SpritePriorityBuffer) TryClaimPixel(pixelX, spriteIndex, spriteX int) bool {
	if pixelX < 0 || pixelX >= FramebufferWidth {
		return false
	}

	currentOwner := s.ownerIndex[pixelX]

	if currentOwner == -1 {
		s.ownerIndex[pixelX] = spriteIndex
		s.ownerX[pixelX] = spriteX
		return true
	}

	currentX := s.ownerX[pixelX]

	if spriteX < currentX || (spriteX == currentX && spriteIndex < currentOwner) {
		s.ownerIndex[pixelX] = spriteIndex
		s.ownerX[pixelX] = spriteX
		return true
	}

	return false
}

// GetOwner returns the OAM index owning a pixel, or -1.
func (s *SpritePriorityBuffer) GetOwner(pixelX int) int {
	if pixelX < 0 || pixelX >= FramebufferWidth {
		return -1
	}
	return s.ownerIndex[pixelX]
}
