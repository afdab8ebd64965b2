package object

import (
	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/physics"
)

// Owner identifies who fired a bullet.
type Owner int

const (
	OwnerCannon Owner = iota
	OwnerInvader
)

// Bullet dimensions in logical units.
const (
	BulletWidth  = 1.0
	BulletHeight = 2.0
)

// CannonBulletSpeed is the upward speed of player bullets (units/sec).
const CannonBulletSpeed = 60.0

// InvaderBulletSpeed is the downward speed of invader bullets (units/sec).
const InvaderBulletSpeed = 25.0

// Bullet is a shot traveling vertically across the playfield.
// VY is negative for cannon bullets (up) and positive for invader bullets (down).
type Bullet struct {
	X, Y      float64 // Position (top-left)
	VY        float64 // Vertical velocity
	Owner     Owner   // Who fired it
	destroyed bool    // Marked for destruction
}

// NewCannonBullet creates an upward bullet centered horizontally on x.
func NewCannonBullet(x, y float64) *Bullet {
	return &Bullet{
		X:     x - BulletWidth/2,
		Y:     y - BulletHeight,
		VY:    -CannonBulletSpeed,
		Owner: OwnerCannon,
	}
}

// NewInvaderBullet creates a downward bullet centered horizontally on x.
func NewInvaderBullet(x, y float64) *Bullet {
	return &Bullet{
		X:     x - BulletWidth/2,
		Y:     y,
		VY:    InvaderBulletSpeed,
		Owner: OwnerInvader,
	}
}

// Rect returns the bullet's bounding box.
func (b *Bullet) Rect() physics.Rect {
	return physics.Rect{X: b.X, Y: b.Y, W: BulletWidth, H: BulletHeight}
}

// MarkDestroyed marks the bullet for removal (implements Destructible).
func (b *Bullet) MarkDestroyed() {
	b.destroyed = true
}

// IsDestroyed returns true if the bullet is marked for destruction (implements Destructible).
func (b *Bullet) IsDestroyed() bool {
	return b.destroyed
}

// Update moves the bullet and removes it once it leaves the playfield.
func (b *Bullet) Update(ctx UpdateContext) (bool, error) {
	if b.destroyed {
		return true, nil
	}

	dt := ctx.Delta.Seconds()
	b.Y += b.VY * dt

	if b.Rect().Bottom() < 0 || b.Y > float64(ctx.Screen.Height) {
		return true, nil
	}

	return false, nil
}

// Draw renders the bullet as a short vertical line.
func (b *Bullet) Draw(ctx DrawContext) error {
	cx := b.X + BulletWidth/2
	ctx.Canvas.DrawLine(
		draw.Point{X: cx, Y: b.Y},
		draw.Point{X: cx, Y: b.Y + BulletHeight},
	)
	return nil
}

// HasLiveBullet reports whether the object list contains a bullet with the
// given owner that is still in flight.
func HasLiveBullet(objects []Object, owner Owner) bool {
	for _, obj := range objects {
		if b, ok := obj.(*Bullet); ok && b.Owner == owner && !b.IsDestroyed() {
			return true
		}
	}
	return false
}
