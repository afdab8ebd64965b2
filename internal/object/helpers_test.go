package object_test

import (
	"time"

	"github.com/tomz197/invaders/internal/object"
)

// recorder collects spawned objects for assertions.
type recorder struct {
	spawned []object.Object
}

func (r *recorder) Spawn(obj object.Object) {
	r.spawned = append(r.spawned, obj)
}

func (r *recorder) bullets() []*object.Bullet {
	var bullets []*object.Bullet
	for _, obj := range r.spawned {
		if b, ok := obj.(*object.Bullet); ok {
			bullets = append(bullets, b)
		}
	}
	return bullets
}

func testScreen() object.Screen {
	return object.Screen{Width: 120, Height: 80, CenterX: 60, CenterY: 40}
}

func tick(dt float64) time.Duration {
	return time.Duration(dt * float64(time.Second))
}

func updateCtx(dt float64, inp object.Input, spawner object.Spawner, objects []object.Object) object.UpdateContext {
	return object.UpdateContext{
		Delta:   tick(dt),
		Input:   inp,
		Screen:  testScreen(),
		Spawner: spawner,
		Objects: objects,
	}
}
