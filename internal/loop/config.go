package loop

// Game configuration constants.
// All tunable game parameters are centralized here for easy adjustment.

// Scoring
const (
	ScoreInvader = 10 // Points per destroyed invader
)

// Player
const (
	InitialLives           = 3
	RespawnCooldownSeconds = 0.5 // Fire cooldown after losing a life
)

// InvasionGap is how far above the cannon's top edge the wave may descend
// before it counts as reaching the player's row.
const InvasionGap = 2.0

// Max render resolution in terminal cells. Larger terminals get a centered
// playfield with a border.
const (
	MaxTermWidth  = 120
	MaxTermHeight = 40
)

// Explosion tuning
const (
	invaderExplosionParticles = 8
	invaderExplosionSpeed     = 15.0
	invaderExplosionLifetime  = 0.4

	cannonExplosionParticles = 20
	cannonExplosionSpeed     = 25.0
	cannonExplosionLifetime  = 1.0
)
