package object_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomz197/invaders/internal/object"
)

func TestNewWaveGrid(t *testing.T) {
	w := object.NewWave(testScreen(), 1)

	require.Len(t, w.Invaders, object.InvaderRows*object.InvaderCols)
	assert.Equal(t, object.InvaderRows*object.InvaderCols, w.AliveCount())
	assert.False(t, w.Cleared())

	// No two invaders share a grid position
	seen := make(map[[2]float64]bool)
	for _, inv := range w.Invaders {
		pos := [2]float64{inv.X, inv.Y}
		assert.False(t, seen[pos], "duplicate invader at %v", pos)
		seen[pos] = true
	}

	left, right, bottom, ok := w.Extent()
	require.True(t, ok)
	assert.GreaterOrEqual(t, left, 0.0)
	assert.LessOrEqual(t, right, 120.0)
	assert.Less(t, bottom, 40.0, "wave spawns in the upper playfield")
}

func TestWaveSpeedScalesWithLevel(t *testing.T) {
	w1 := object.NewWave(testScreen(), 1)
	w2 := object.NewWave(testScreen(), 2)
	w3 := object.NewWave(testScreen(), 3)

	assert.InDelta(t, object.InvaderBaseSpeed, w1.Speed, 0.001)
	assert.InDelta(t, w1.Speed*object.LevelSpeedFactor, w2.Speed, 0.001)
	assert.InDelta(t, w1.Speed*object.LevelSpeedFactor*object.LevelSpeedFactor, w3.Speed, 0.001)
}

func TestWaveReversesAndDescendsAtEdges(t *testing.T) {
	w := object.NewWave(testScreen(), 1)
	require.Equal(t, 1.0, w.Dir)

	const dt = 0.05
	reversals := 0
	var prevDir, prevSpeed, prevBottom = w.Dir, w.Speed, 0.0
	if _, _, b, ok := w.Extent(); ok {
		prevBottom = b
	}

	for i := 0; i < 20000 && reversals < 2; i++ {
		_, err := w.Update(updateCtx(dt, object.Input{}, nil, nil))
		require.NoError(t, err)

		left, right, bottom, ok := w.Extent()
		require.True(t, ok)
		assert.GreaterOrEqual(t, left, 0.0, "formation never leaves the left edge")
		assert.LessOrEqual(t, right, 120.0, "formation never leaves the right edge")

		if w.Dir != prevDir {
			reversals++
			assert.InDelta(t, prevBottom+object.InvaderDescentStep, bottom, 0.001,
				"reversal descends one step")
			assert.InDelta(t, prevSpeed*object.DescentSpeedFactor, w.Speed, 0.001,
				"reversal speeds up the wave")
		}
		prevDir, prevSpeed, prevBottom = w.Dir, w.Speed, bottom
	}

	assert.Equal(t, 2, reversals, "wave reversed at both edges")
}

func TestWaveFiresFromBottomRow(t *testing.T) {
	w := object.NewWave(testScreen(), 1)
	rec := &recorder{}

	// The fire interval is at most InvaderFireIntervalMax, so simulating
	// past that guarantees at least one shot.
	const dt = 0.05
	ticks := int(math.Ceil((object.InvaderFireIntervalMax + 1) / dt))
	for i := 0; i < ticks; i++ {
		_, err := w.Update(updateCtx(dt, object.Input{}, rec, nil))
		require.NoError(t, err)
	}

	bullets := rec.bullets()
	require.NotEmpty(t, bullets, "wave fired at least once")

	// All invaders are alive, so every shot originates from the bottom row.
	bottomRowTop := object.InvaderTopPadding + float64(object.InvaderRows-1)*object.InvaderRowSpacing
	for _, b := range bullets {
		assert.Equal(t, object.OwnerInvader, b.Owner)
		assert.Positive(t, b.VY, "invader bullets travel down")
		assert.GreaterOrEqual(t, b.Y, bottomRowTop+object.InvaderHeight-0.001)
	}
}

func TestWaveIgnoresDeadInvaders(t *testing.T) {
	w := object.NewWave(testScreen(), 1)

	// Destroy the entire left half of the grid
	for _, inv := range w.Invaders {
		if inv.Col < object.InvaderCols/2 {
			inv.MarkDestroyed()
		}
	}
	assert.Equal(t, object.InvaderRows*object.InvaderCols/2, w.AliveCount())

	left, _, _, ok := w.Extent()
	require.True(t, ok)
	assert.Greater(t, left, 40.0, "extent tracks live invaders only")

	for _, inv := range w.Invaders {
		if inv.Col < object.InvaderCols/2 {
			assert.True(t, inv.IsDestroyed())
		}
	}
}

func TestClearedWaveUpdateIsNoop(t *testing.T) {
	w := object.NewWave(testScreen(), 1)
	for _, inv := range w.Invaders {
		inv.MarkDestroyed()
	}
	require.True(t, w.Cleared())

	remove, err := w.Update(updateCtx(0.016, object.Input{}, nil, nil))
	require.NoError(t, err)
	assert.False(t, remove, "the loop replaces cleared waves, they never self-remove")

	_, _, _, ok := w.Extent()
	assert.False(t, ok)
}
