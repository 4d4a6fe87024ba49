package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpritePriorityBuffer(t *testing.T) {
	var buf SpritePriorityBuffer
	buf.Clear()

	t.Run("unclaimed pixels are free", func(t *testing.T) {
		assert.Equal(t, -1, buf.GetOwner(0))
		assert.True(t, buf.TryClaimPixel(0, 5, 10))
		assert.Equal(t, 5, buf.GetOwner(0))
	})

	t.Run("lower X wins", func(t *testing.T) {
		buf.Clear()
		assert.True(t, buf.TryClaimPixel(20, 0, 20))
		assert.True(t, buf.TryClaimPixel(20, 1, 16), "lower X takes the pixel")
		assert.Equal(t, 1, buf.GetOwner(20))

		assert.False(t, buf.TryClaimPixel(20, 2, 18), "higher X loses")
		assert.Equal(t, 1, buf.GetOwner(20))
	})

	t.Run("OAM index breaks ties", func(t *testing.T) {
		buf.Clear()
		assert.True(t, buf.TryClaimPixel(40, 7, 40))
		assert.True(t, buf.TryClaimPixel(40, 3, 40), "lower OAM index wins the tie")
		assert.False(t, buf.TryClaimPixel(40, 9, 40))
		assert.Equal(t, 3, buf.GetOwner(40))
	})

	t.Run("out of range pixels", func(t *testing.T) {
		assert.False(t, buf.TryClaimPixel(-1, 0, 0))
		assert.False(t, buf.TryClaimPixel(FramebufferWidth, 0, 0))
		assert.Equal(t, -1, buf.GetOwner(-1))
		assert.Equal(t, -1, buf.GetOwner(FramebufferWidth))
	})

	t.Run("clear releases ownership", func(t *testing.T) {
		buf.Clear()
		assert.Equal(t, -1, buf.GetOwner(40))
	})
}
