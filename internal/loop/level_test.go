package loop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomz197/invaders/internal/object"
)

// TestFullWaveClearAdvancesLevel walks a run from the starting state through
// destroying every invader: level 1, 3 lives, 0 score in; level 2, 3 lives,
// full wave score and a fresh, faster, fully-alive wave out.
func TestFullWaveClearAdvancesLevel(t *testing.T) {
	state := newPlayingState()
	require.Equal(t, 1, state.Level)
	require.Equal(t, InitialLives, state.Lives)
	require.Equal(t, 0, state.Score)

	gridSize := object.InvaderRows * object.InvaderCols
	level1Speed := state.Wave.Speed

	// Shoot down every invader through the collision path
	for _, inv := range state.Wave.Invaders {
		r := inv.Rect()
		state.AddObject(object.NewCannonBullet(r.CenterX(), r.Bottom()))
	}
	checkCollisions(state)

	require.True(t, state.Wave.Cleared())
	assert.Equal(t, gridSize*ScoreInvader, state.Score)

	// The next playing tick notices the cleared wave and advances the level
	state.Delta = time.Millisecond
	state.Input = object.Input{}
	require.NoError(t, updatePlayingState(state))

	assert.Equal(t, 2, state.Level)
	assert.Equal(t, InitialLives, state.Lives, "lives carry over")
	assert.Equal(t, gridSize*ScoreInvader, state.Score, "score carries over")
	assert.Equal(t, gridSize, state.Wave.AliveCount(), "new wave is fully alive")
	assert.Greater(t, state.Wave.Speed, level1Speed, "new wave is faster")
	assert.Equal(t, GameStatePlaying, state.GameState)
}

// TestScoreNeverDecreases runs a few seconds of simulated play and checks
// score monotonicity through collisions and level advances.
func TestScoreNeverDecreases(t *testing.T) {
	state := newPlayingState()
	state.Delta = 16 * time.Millisecond
	state.Input = object.Input{Fire: true, Right: true}

	prevScore := state.Score
	for i := 0; i < 600; i++ {
		require.NoError(t, updatePlayingState(state))
		assert.GreaterOrEqual(t, state.Score, prevScore)
		prevScore = state.Score
		if state.GameState != GameStatePlaying {
			break
		}
	}
}

func TestAdvanceLevelReplacesWaveObject(t *testing.T) {
	state := newPlayingState()
	oldWave := state.Wave

	advanceLevel(state)

	assert.Equal(t, 2, state.Level)
	assert.NotSame(t, oldWave, state.Wave)

	// The old wave is gone from the object list, the new one is present
	found := 0
	for _, obj := range state.Objects {
		if w, ok := obj.(*object.Wave); ok {
			assert.Same(t, state.Wave, w)
			found++
		}
	}
	assert.Equal(t, 1, found, "exactly one wave in the world")
}
