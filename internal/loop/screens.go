package loop

import (
	"fmt"

	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/input"
	"github.com/tomz197/invaders/internal/object"
)

// updateStartState handles the title screen.
func updateStartState(state *State) {
	if state.Input.Fire || state.Input.Enter {
		startGame(state)
	}
}

// updateOverState handles the game-over screen. The playfield is frozen;
// only the remaining explosion particles keep animating.
func updateOverState(state *State) {
	ctx := state.UpdateContext()
	kept := state.Objects[:0]
	for _, obj := range state.Objects {
		if _, isParticle := obj.(*object.Particle); isParticle {
			remove, _ := obj.Update(ctx)
			if remove {
				object.ReleaseObject(obj)
				continue
			}
		}
		kept = append(kept, obj)
	}
	state.Objects = kept
	state.FlushSpawned()

	if state.Input.Escape {
		state.Running = false
		return
	}
	if state.Input.Fire || state.Input.Enter {
		startGame(state)
	}
}

// startGame resets score, lives, and level, and spawns the cannon and the
// first wave. Used from both the title and the game-over screens.
func startGame(state *State) {
	input.ResetKeyInput(state.InputStream)

	for _, obj := range state.Objects {
		object.ReleaseObject(obj)
	}
	state.Objects = state.Objects[:0]
	state.toSpawn = state.toSpawn[:0]

	state.Score = 0
	state.Lives = InitialLives
	state.Level = 1

	cannon := object.NewCannon(state.Screen)
	state.Cannon = cannon
	state.AddObject(cannon)

	wave := object.NewWave(state.Screen, state.Level)
	state.Wave = wave
	state.AddObject(wave)

	state.GameState = GameStatePlaying
}

// drawUI draws the screen overlay for the current game state.
func drawUI(state *State, cw *draw.ChunkWriter, canvas *draw.Canvas) {
	termWidth := canvas.TerminalWidth()
	termHeight := canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	switch state.GameState {
	case GameStateStart:
		drawStartScreen(cw, centerX, centerY)
	case GameStatePlaying:
		drawPlayingHUD(state, cw, termWidth)
	case GameStateOver:
		drawOverScreen(state, cw, centerX, centerY)
	}
}

// drawStartScreen draws the title screen.
func drawStartScreen(cw *draw.ChunkWriter, centerX, centerY int) {
	title := "I N V A D E R S"
	cw.WriteAt(centerX-len(title)/2, centerY-2, title)

	subtitle := "Press SPACE to Start"
	cw.WriteAt(centerX-len(subtitle)/2, centerY+1, subtitle)

	controls := "Controls: A/D or Arrows to move, SPACE to shoot, Q to quit"
	cw.WriteAt(centerX-len(controls)/2, centerY+4, controls)
}

// drawPlayingHUD draws the in-game HUD (score, level, lives).
func drawPlayingHUD(state *State, cw *draw.ChunkWriter, termWidth int) {
	scoreText := fmt.Sprintf("Score: %d", state.Score)
	cw.WriteAt(2, 1, scoreText)

	levelText := fmt.Sprintf("Level: %d", state.Level)
	cw.WriteAt(termWidth/2-len(levelText)/2, 1, levelText)

	livesText := fmt.Sprintf("Lives: %d", state.Lives)
	cw.WriteAt(termWidth-len(livesText)-1, 1, livesText)
}

// drawOverScreen draws the game-over screen.
func drawOverScreen(state *State, cw *draw.ChunkWriter, centerX, centerY int) {
	title := "GAME OVER"
	cw.WriteAt(centerX-len(title)/2, centerY-2, title)

	scoreText := fmt.Sprintf("Final Score: %d  (Level %d)", state.Score, state.Level)
	cw.WriteAt(centerX-len(scoreText)/2, centerY, scoreText)

	prompt := "Press SPACE to Restart, Q or ESC to Quit"
	cw.WriteAt(centerX-len(prompt)/2, centerY+2, prompt)
}
