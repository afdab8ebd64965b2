package loop

import (
	"github.com/tomz197/invaders/internal/object"
)

// updatePlayingState advances one playing tick: object updates, collision
// resolution, then the wave-cleared check.
func updatePlayingState(state *State) error {
	if err := updateObjects(state); err != nil {
		return err
	}

	checkCollisions(state)

	// Level advance: all invaders destroyed spawns a faster wave.
	if state.GameState == GameStatePlaying && state.Wave != nil && state.Wave.Cleared() {
		advanceLevel(state)
	}

	return nil
}

// updateObjects updates all objects and removes any that request removal.
func updateObjects(state *State) error {
	ctx := state.UpdateContext()

	// Update objects and collect ones to keep
	kept := state.Objects[:0] // reuse backing array
	for _, obj := range state.Objects {
		remove, err := obj.Update(ctx)
		if err != nil {
			return err
		}
		if remove {
			object.ReleaseObject(obj)
			continue
		}
		kept = append(kept, obj)
	}
	state.Objects = kept

	// Add any newly spawned objects
	state.FlushSpawned()

	return nil
}

// advanceLevel increments the level and spawns a fresh, faster wave with
// every invader alive. Score and lives carry over.
func advanceLevel(state *State) {
	state.Level++
	removeBullets(state)
	respawnWave(state)
}

// respawnWave replaces the current wave with a new full grid for the
// current level.
func respawnWave(state *State) {
	wave := object.NewWave(state.Screen, state.Level)

	replaced := false
	for i, obj := range state.Objects {
		if obj == object.Object(state.Wave) {
			state.Objects[i] = wave
			replaced = true
			break
		}
	}
	if !replaced {
		state.AddObject(wave)
	}

	state.Wave = wave
}

// removeBullets drops every bullet in flight, including queued spawns.
func removeBullets(state *State) {
	kept := state.Objects[:0]
	for _, obj := range state.Objects {
		if _, isBullet := obj.(*object.Bullet); isBullet {
			continue
		}
		kept = append(kept, obj)
	}
	state.Objects = kept

	keptSpawn := state.toSpawn[:0]
	for _, obj := range state.toSpawn {
		if _, isBullet := obj.(*object.Bullet); isBullet {
			continue
		}
		keptSpawn = append(keptSpawn, obj)
	}
	state.toSpawn = keptSpawn
}
