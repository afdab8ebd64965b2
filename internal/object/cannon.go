package object

import (
	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/physics"
)

// Cannon dimensions and tuning in logical units.
const (
	CannonWidth    = 6.0
	CannonHeight   = 3.0
	CannonSpeed    = 40.0 // Horizontal movement (units/sec)
	CannonFireRate = 0.25 // Minimum seconds between shots
)

// CannonBlinkFrequency controls the blink rate while the fire cooldown
// from a respawn is still running.
const CannonBlinkFrequency = 10.0 // Hz

// Cannon is the player-controlled ship at the bottom of the playfield.
type Cannon struct {
	X, Y float64 // Position (top-left)

	fireCooldown float64 // Seconds until next shot allowed
}

// NewCannon creates a cannon centered horizontally at the bottom of the screen.
func NewCannon(screen Screen) *Cannon {
	return &Cannon{
		X: float64(screen.CenterX) - CannonWidth/2,
		Y: float64(screen.Height) - CannonHeight - 1,
	}
}

// Rect returns the cannon's bounding box.
func (c *Cannon) Rect() physics.Rect {
	return physics.Rect{X: c.X, Y: c.Y, W: CannonWidth, H: CannonHeight}
}

// Recenter moves the cannon back to the horizontal center (after losing a life).
func (c *Cannon) Recenter(screen Screen) {
	c.X = float64(screen.CenterX) - CannonWidth/2
}

// SetCooldown overrides the fire cooldown, e.g. the respawn penalty.
func (c *Cannon) SetCooldown(seconds float64) {
	c.fireCooldown = seconds
}

// Cooldown returns the remaining fire cooldown in seconds.
func (c *Cannon) Cooldown() float64 {
	return c.fireCooldown
}

// Update handles horizontal movement, cooldown ticking, and firing.
// A shot is gated on the cooldown and on having no other cannon bullet in flight.
func (c *Cannon) Update(ctx UpdateContext) (bool, error) {
	dt := ctx.Delta.Seconds()

	if ctx.Input.Left {
		c.X -= CannonSpeed * dt
	}
	if ctx.Input.Right {
		c.X += CannonSpeed * dt
	}

	// Clamp to screen bounds
	maxX := float64(ctx.Screen.Width) - CannonWidth
	if c.X < 0 {
		c.X = 0
	}
	if c.X > maxX {
		c.X = maxX
	}

	if c.fireCooldown > 0 {
		c.fireCooldown -= dt
		if c.fireCooldown < 0 {
			c.fireCooldown = 0
		}
	}

	if ctx.Input.Fire && c.fireCooldown <= 0 && ctx.Spawner != nil &&
		!HasLiveBullet(ctx.Objects, OwnerCannon) {
		c.fireCooldown = CannonFireRate
		ctx.Spawner.Spawn(NewCannonBullet(c.X+CannonWidth/2, c.Y))
	}

	return false, nil
}

// Draw renders the cannon as a filled triangle pointing up.
func (c *Cannon) Draw(ctx DrawContext) error {
	// Blink while the respawn cooldown is longer than a regular shot cooldown
	if !ShouldRenderBlink(c.fireCooldown-CannonFireRate, CannonBlinkFrequency) {
		return nil
	}

	points := ctx.Canvas.BorrowPoints(3)
	points[0] = draw.Point{X: c.X + CannonWidth/2, Y: c.Y}
	points[1] = draw.Point{X: c.X, Y: c.Y + CannonHeight}
	points[2] = draw.Point{X: c.X + CannonWidth, Y: c.Y + CannonHeight}
	ctx.Canvas.DrawPolygon(points, true)

	return nil
}
