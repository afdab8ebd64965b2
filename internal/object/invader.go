package object

import (
	"math"
	"math/rand"

	"github.com/tomz197/invaders/internal/physics"
)

// Invader dimensions and grid layout in logical units.
const (
	InvaderWidth      = 6.0
	InvaderHeight     = 3.0
	InvaderRows       = 4
	InvaderCols       = 8
	InvaderColSpacing = 12.0 // Horizontal distance between grid columns
	InvaderRowSpacing = 6.0  // Vertical distance between grid rows
	InvaderTopPadding = 6.0  // Distance from screen top to the first row
)

// Formation movement tuning.
const (
	InvaderBaseSpeed   = 9.0  // Horizontal speed of a level-1 wave (units/sec)
	LevelSpeedFactor   = 1.25 // Base speed multiplier per level
	DescentSpeedFactor = 1.1  // Speed multiplier applied on each descent
	InvaderDescentStep = 3.0  // Vertical drop on edge reversal
	EdgeMargin         = 1.0  // Distance from screen edge that triggers reversal
)

// Invader fire pacing in seconds. The actual interval is random within the range.
const (
	InvaderFireIntervalMin = 1.0
	InvaderFireIntervalMax = 3.0
)

// Invader is a single enemy in the wave grid.
type Invader struct {
	X, Y     float64 // Position (top-left)
	Alive    bool    // False once hit
	Row, Col int     // Grid coordinates at spawn
}

// Rect returns the invader's bounding box.
func (inv *Invader) Rect() physics.Rect {
	return physics.Rect{X: inv.X, Y: inv.Y, W: InvaderWidth, H: InvaderHeight}
}

// MarkDestroyed flips the alive flag (implements Destructible).
func (inv *Invader) MarkDestroyed() {
	inv.Alive = false
}

// IsDestroyed returns true once the invader has been hit (implements Destructible).
func (inv *Invader) IsDestroyed() bool {
	return !inv.Alive
}

// Wave is one full grid of invaders moving as a formation. The formation
// shares a horizontal direction; reaching a screen edge inverts the direction,
// drops the formation one step, and multiplies its speed.
type Wave struct {
	Invaders []*Invader
	Dir      float64 // +1 moving right, -1 moving left
	Speed    float64 // Horizontal speed (units/sec)

	fireTimer float64 // Seconds until the next invader shot
}

// NewWave spawns a full grid of invaders for the given level, centered
// horizontally. Base speed rises multiplicatively with the level; there is
// no upper bound on speed.
func NewWave(screen Screen, level int) *Wave {
	totalWidth := float64(InvaderCols-1)*InvaderColSpacing + InvaderWidth
	startX := (float64(screen.Width) - totalWidth) / 2
	if startX < EdgeMargin {
		startX = EdgeMargin
	}

	invaders := make([]*Invader, 0, InvaderRows*InvaderCols)
	for row := 0; row < InvaderRows; row++ {
		for col := 0; col < InvaderCols; col++ {
			invaders = append(invaders, &Invader{
				X:     startX + float64(col)*InvaderColSpacing,
				Y:     InvaderTopPadding + float64(row)*InvaderRowSpacing,
				Alive: true,
				Row:   row,
				Col:   col,
			})
		}
	}

	return &Wave{
		Invaders:  invaders,
		Dir:       1,
		Speed:     InvaderBaseSpeed * math.Pow(LevelSpeedFactor, float64(level-1)),
		fireTimer: fireInterval(),
	}
}

// AliveCount returns the number of invaders still alive.
func (w *Wave) AliveCount() int {
	count := 0
	for _, inv := range w.Invaders {
		if inv.Alive {
			count++
		}
	}
	return count
}

// Cleared returns true once every invader in the wave has been destroyed.
func (w *Wave) Cleared() bool {
	return w.AliveCount() == 0
}

// Extent returns the bounding edges of the live formation.
// ok is false when no invaders are alive.
func (w *Wave) Extent() (left, right, bottom float64, ok bool) {
	for _, inv := range w.Invaders {
		if !inv.Alive {
			continue
		}
		r := inv.Rect()
		if !ok {
			left, right, bottom = r.X, r.Right(), r.Bottom()
			ok = true
			continue
		}
		if r.X < left {
			left = r.X
		}
		if r.Right() > right {
			right = r.Right()
		}
		if r.Bottom() > bottom {
			bottom = r.Bottom()
		}
	}
	return
}

// Update advances the formation: edge reversal and descent, horizontal
// movement, and occasional invader fire. The wave itself is never removed;
// the loop replaces it when cleared.
func (w *Wave) Update(ctx UpdateContext) (bool, error) {
	left, right, _, ok := w.Extent()
	if !ok {
		return false, nil
	}

	dt := ctx.Delta.Seconds()
	screenW := float64(ctx.Screen.Width)

	// Reverse and descend when the formation touches an edge.
	descend := false
	if left <= EdgeMargin && w.Dir < 0 {
		descend = true
		w.Dir = 1
	} else if right >= screenW-EdgeMargin && w.Dir > 0 {
		descend = true
		w.Dir = -1
	}

	dx := w.Speed * w.Dir * dt
	for _, inv := range w.Invaders {
		if inv.Alive {
			inv.X += dx
		}
	}

	if descend {
		for _, inv := range w.Invaders {
			if inv.Alive {
				inv.Y += InvaderDescentStep
			}
		}
		w.Speed *= DescentSpeedFactor
	}

	w.clampToScreen(screenW)
	w.updateFire(dt, ctx.Spawner)

	return false, nil
}

// clampToScreen shifts the whole formation back inside [0, screenW] if a
// large frame delta pushed it past an edge.
func (w *Wave) clampToScreen(screenW float64) {
	left, right, _, ok := w.Extent()
	if !ok {
		return
	}

	var shift float64
	if left < 0 {
		shift = -left
	} else if right > screenW {
		shift = screenW - right
	}
	if shift == 0 {
		return
	}

	for _, inv := range w.Invaders {
		if inv.Alive {
			inv.X += shift
		}
	}
}

// updateFire ticks the fire timer and shoots from a random bottom-most
// live invader when it expires.
func (w *Wave) updateFire(dt float64, spawner Spawner) {
	if spawner == nil {
		return
	}

	w.fireTimer -= dt
	if w.fireTimer > 0 {
		return
	}
	w.fireTimer = fireInterval()

	shooters := w.bottomMost()
	if len(shooters) == 0 {
		return
	}

	inv := shooters[rand.Intn(len(shooters))]
	r := inv.Rect()
	spawner.Spawn(NewInvaderBullet(r.CenterX(), r.Bottom()))
}

// bottomMost returns the lowest live invader of each occupied column.
func (w *Wave) bottomMost() []*Invader {
	byCol := make(map[int]*Invader, InvaderCols)
	for _, inv := range w.Invaders {
		if !inv.Alive {
			continue
		}
		if lowest, seen := byCol[inv.Col]; !seen || inv.Y > lowest.Y {
			byCol[inv.Col] = inv
		}
	}

	shooters := make([]*Invader, 0, len(byCol))
	for _, inv := range byCol {
		shooters = append(shooters, inv)
	}
	return shooters
}

// Draw renders every live invader: a body block with two antenna pixels.
func (w *Wave) Draw(ctx DrawContext) error {
	for _, inv := range w.Invaders {
		if !inv.Alive {
			continue
		}
		ctx.Canvas.FillRect(inv.X, inv.Y+1, InvaderWidth, InvaderHeight-1)
		ctx.Canvas.SetFloat(inv.X+1, inv.Y)
		ctx.Canvas.SetFloat(inv.X+InvaderWidth-1, inv.Y)
	}
	return nil
}

// fireInterval returns a random delay until the next invader shot.
func fireInterval() float64 {
	return InvaderFireIntervalMin + rand.Float64()*(InvaderFireIntervalMax-InvaderFireIntervalMin)
}
