package loop

import (
	"time"

	"github.com/tomz197/invaders/internal/input"
	"github.com/tomz197/invaders/internal/object"
)

// GameState represents the current game phase.
type GameState int

const (
	GameStateStart   GameState = iota // Title screen
	GameStatePlaying                  // Active gameplay
	GameStateOver                     // Lives exhausted, show restart prompt
)

// State holds all game state for one playthrough. Everything lives in a single
// loop; there is no shared mutable state across goroutines.
type State struct {
	Objects []object.Object
	toSpawn []object.Object // Objects to add after current update cycle

	Screen object.Screen // Logical playfield bounds
	Delta  time.Duration // Frame delta time
	Input  object.Input  // Current frame's input snapshot

	GameState GameState
	Cannon    *object.Cannon // The player's ship (also present in Objects)
	Wave      *object.Wave   // The current invader wave (also present in Objects)

	Score int
	Lives int
	Level int

	Running     bool
	InputStream *input.Stream
}

// NewState creates a new initialized game state.
func NewState() *State {
	return &State{
		Objects:   []object.Object{},
		GameState: GameStateStart,
		Lives:     InitialLives,
		Level:     1,
		Running:   true,
	}
}

// AddObject adds an object to the game world.
func (s *State) AddObject(obj object.Object) {
	s.Objects = append(s.Objects, obj)
}

// Spawn queues an object to be added after the current update cycle.
// Implements object.Spawner interface.
func (s *State) Spawn(obj object.Object) {
	s.toSpawn = append(s.toSpawn, obj)
}

// FlushSpawned adds all queued objects to the game and clears the queue.
func (s *State) FlushSpawned() {
	s.Objects = append(s.Objects, s.toSpawn...)
	s.toSpawn = s.toSpawn[:0]
}

// UpdateContext creates an UpdateContext from the current state.
func (s *State) UpdateContext() object.UpdateContext {
	return object.UpdateContext{
		Delta:   s.Delta,
		Input:   s.Input,
		Screen:  s.Screen,
		Spawner: s,
		Objects: s.Objects,
	}
}
