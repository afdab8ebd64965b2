// Package loop provides the main game loop and state management.
package loop

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/input"
	"github.com/tomz197/invaders/internal/object"
)

const targetFPS = 60
const targetFrameTime = time.Second / targetFPS

// Target resolution - game objects use these logical dimensions.
// Actual rendering scales to fit terminal size.
const (
	targetWidth  = 120 // Logical width
	targetHeight = 80  // Logical height (in sub-pixels, so 40 terminal rows)
)

// Options configures a game loop instance.
type Options struct {
	// TermSizeFunc reports the terminal dimensions each frame.
	// Defaults to the local terminal (os.Stdout).
	TermSizeFunc draw.TermSizeFunc
}

// Run starts the main game loop with the standard Input → Update → Draw cycle.
// It blocks until the player quits or the input source closes.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	sizeFunc := opts.TermSizeFunc
	if sizeFunc == nil {
		sizeFunc = draw.DefaultTermSizeFunc
	}

	state := NewState()
	state.InputStream = input.StartStream(r)

	// Game uses fixed logical resolution
	state.Screen = object.Screen{
		Width:   targetWidth,
		Height:  targetHeight,
		CenterX: targetWidth / 2,
		CenterY: targetHeight / 2,
	}

	termWidth, termHeight, err := sizeFunc()
	if err != nil {
		return fmt.Errorf("read terminal size: %w", err)
	}

	// Create scaled canvas - maps logical coordinates to terminal pixels,
	// centered when the terminal exceeds the max render resolution.
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, targetWidth, targetHeight)
	canvas.SetOffset(offsetCol, offsetRow)
	cw := draw.NewChunkWriter(w, offsetCol, offsetRow)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	lastTime := time.Now()

	for state.Running {
		frameStart := time.Now()
		state.Delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		// ===== INPUT PHASE =====
		processInput(state)

		// ===== UPDATE PHASE =====
		if err := updateScreen(canvas, cw, sizeFunc); err != nil {
			return err
		}

		switch state.GameState {
		case GameStateStart:
			updateStartState(state)
		case GameStatePlaying:
			if err := updatePlayingState(state); err != nil {
				return err
			}
		case GameStateOver:
			updateOverState(state)
		}

		// ===== DRAW PHASE =====
		if err := drawFrame(state, canvas, cw); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}

// processInput reads all pending input and applies the quit signal.
func processInput(state *State) {
	inp := input.ReadInput(state.InputStream)
	state.Input = inp

	if inp.Quit {
		state.Running = false
	}
}

// updateScreen checks for terminal resize and updates canvas scaling.
func updateScreen(canvas *draw.Canvas, cw *draw.ChunkWriter, sizeFunc draw.TermSizeFunc) error {
	termWidth, termHeight, err := sizeFunc()
	if err != nil {
		return fmt.Errorf("read terminal size: %w", err)
	}

	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas.Resize(renderWidth, renderHeight)
	canvas.SetOffset(offsetCol, offsetRow)
	cw.SetOffset(offsetCol, offsetRow)

	return nil
}

// drawFrame clears the screen, draws all objects, and flushes the frame in
// one chunked write.
func drawFrame(state *State, canvas *draw.Canvas, cw *draw.ChunkWriter) error {
	draw.ClearScreen(cw)
	canvas.Clear()

	ctx := object.DrawContext{
		Canvas: canvas,
		Writer: cw,
	}

	for _, obj := range state.Objects {
		if err := obj.Draw(ctx); err != nil {
			return err
		}
	}

	// Render canvas to terminal
	canvas.Render(cw)
	canvas.RenderBorder(cw)

	// Draw UI overlay (after canvas render so it's on top)
	drawUI(state, cw, canvas)

	return cw.Flush()
}

// clampTermSize clamps terminal dimensions to the max render resolution and
// computes the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = termWidth
	renderHeight = termHeight
	if renderWidth > MaxTermWidth {
		renderWidth = MaxTermWidth
	}
	if renderHeight > MaxTermHeight {
		renderHeight = MaxTermHeight
	}
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}
