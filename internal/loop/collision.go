package loop

import (
	"github.com/tomz197/invaders/internal/object"
)

// collectBullets extracts bullets from the object list.
func collectBullets(objects []object.Object) []*object.Bullet {
	var bullets []*object.Bullet
	for _, obj := range objects {
		if b, ok := obj.(*object.Bullet); ok {
			bullets = append(bullets, b)
		}
	}
	return bullets
}

// checkCollisions detects and handles all collisions between objects.
// Bullet↔invader first so a wave-clearing shot counts before any cannon hit.
func checkCollisions(state *State) {
	bullets := collectBullets(state.Objects)

	checkBulletInvaderCollisions(state, bullets)

	if state.Cannon != nil && state.GameState == GameStatePlaying {
		checkCannonCollisions(state, bullets)
	}
}

// checkBulletInvaderCollisions handles cannon bullet hits on invaders.
// A hit destroys both the bullet and the invader and scores points.
func checkBulletInvaderCollisions(state *State, bullets []*object.Bullet) {
	if state.Wave == nil {
		return
	}

	for _, b := range bullets {
		if b.Owner != object.OwnerCannon || b.IsDestroyed() {
			continue
		}
		for _, inv := range state.Wave.Invaders {
			if !inv.Alive {
				continue
			}
			if b.Rect().Overlaps(inv.Rect()) {
				b.MarkDestroyed()
				inv.MarkDestroyed()
				state.Score += ScoreInvader

				r := inv.Rect()
				object.SpawnExplosion(r.CenterX(), r.CenterY(),
					invaderExplosionParticles, invaderExplosionSpeed, invaderExplosionLifetime, state)
				break
			}
		}
	}
}

// checkCannonCollisions checks everything that costs the player a life:
// invader bullets, direct invader contact, and the wave descending into
// the cannon's row.
func checkCannonCollisions(state *State, bullets []*object.Bullet) {
	cannonRect := state.Cannon.Rect()

	for _, b := range bullets {
		if b.Owner != object.OwnerInvader || b.IsDestroyed() {
			continue
		}
		if b.Rect().Overlaps(cannonRect) {
			b.MarkDestroyed()
			loseLife(state)
			return
		}
	}

	if state.Wave == nil {
		return
	}

	for _, inv := range state.Wave.Invaders {
		if inv.Alive && inv.Rect().Overlaps(cannonRect) {
			loseLife(state)
			return
		}
	}

	// Invaders reaching the player's row cost a life even without contact.
	if _, _, bottom, ok := state.Wave.Extent(); ok && bottom >= cannonRect.Y-InvasionGap {
		loseLife(state)
	}
}

// loseLife handles a lost life: either a respawn with a fresh wave or the
// transition to the terminal game-over state.
func loseLife(state *State) {
	state.Lives--

	cannonRect := state.Cannon.Rect()
	object.SpawnExplosion(cannonRect.CenterX(), cannonRect.CenterY(),
		cannonExplosionParticles, cannonExplosionSpeed, cannonExplosionLifetime, state)

	if state.Lives <= 0 {
		state.GameState = GameStateOver
		return
	}

	// Respawn: recentered cannon with a fire penalty, empty sky, fresh wave
	removeBullets(state)
	state.Cannon.Recenter(state.Screen)
	state.Cannon.SetCooldown(RespawnCooldownSeconds)
	respawnWave(state)
}
