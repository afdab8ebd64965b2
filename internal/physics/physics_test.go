package physics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tomz197/invaders/internal/physics"
)

func TestRectEdges(t *testing.T) {
	r := physics.Rect{X: 2, Y: 3, W: 4, H: 6}

	assert.Equal(t, 6.0, r.Right())
	assert.Equal(t, 9.0, r.Bottom())
	assert.Equal(t, 4.0, r.CenterX())
	assert.Equal(t, 6.0, r.CenterY())
}

func TestRectsOverlap(t *testing.T) {
	base := physics.Rect{X: 10, Y: 10, W: 4, H: 4}

	t.Run("overlapping", func(t *testing.T) {
		assert.True(t, physics.RectsOverlap(base, physics.Rect{X: 12, Y: 12, W: 4, H: 4}))
		assert.True(t, physics.RectsOverlap(base, physics.Rect{X: 9, Y: 9, W: 2, H: 2}))
	})

	t.Run("contained", func(t *testing.T) {
		assert.True(t, physics.RectsOverlap(base, physics.Rect{X: 11, Y: 11, W: 1, H: 1}))
	})

	t.Run("disjoint", func(t *testing.T) {
		assert.False(t, physics.RectsOverlap(base, physics.Rect{X: 20, Y: 10, W: 4, H: 4}))
		assert.False(t, physics.RectsOverlap(base, physics.Rect{X: 10, Y: 20, W: 4, H: 4}))
	})

	t.Run("touching edges do not overlap", func(t *testing.T) {
		assert.False(t, physics.RectsOverlap(base, physics.Rect{X: 14, Y: 10, W: 4, H: 4}))
		assert.False(t, physics.RectsOverlap(base, physics.Rect{X: 10, Y: 14, W: 4, H: 4}))
	})

	t.Run("symmetric", func(t *testing.T) {
		other := physics.Rect{X: 12, Y: 12, W: 4, H: 4}
		assert.Equal(t, physics.RectsOverlap(base, other), physics.RectsOverlap(other, base))
	})
}

func TestRectContains(t *testing.T) {
	r := physics.Rect{X: 0, Y: 0, W: 10, H: 10}

	assert.True(t, r.Contains(0, 0))
	assert.True(t, r.Contains(5, 5))
	assert.False(t, r.Contains(10, 5), "right edge is exclusive")
	assert.False(t, r.Contains(5, 10), "bottom edge is exclusive")
	assert.False(t, r.Contains(-1, 5))
}
