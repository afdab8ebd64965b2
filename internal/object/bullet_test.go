package object_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomz197/invaders/internal/object"
)

func TestCannonBulletTravelsUpAndExpires(t *testing.T) {
	b := object.NewCannonBullet(60, 70)
	startY := b.Y

	remove, err := b.Update(updateCtx(0.1, object.Input{}, nil, nil))
	require.NoError(t, err)
	assert.False(t, remove)
	assert.Less(t, b.Y, startY)

	// Run until it leaves the top of the screen
	removed := false
	for i := 0; i < 200; i++ {
		remove, err = b.Update(updateCtx(0.1, object.Input{}, nil, nil))
		require.NoError(t, err)
		if remove {
			removed = true
			break
		}
	}
	assert.True(t, removed, "bullet removed after leaving the screen")
}

func TestInvaderBulletTravelsDownAndExpires(t *testing.T) {
	b := object.NewInvaderBullet(60, 10)
	assert.Equal(t, object.OwnerInvader, b.Owner)

	remove, err := b.Update(updateCtx(0.1, object.Input{}, nil, nil))
	require.NoError(t, err)
	assert.False(t, remove)
	assert.Greater(t, b.Y, 10.0)

	removed := false
	for i := 0; i < 200; i++ {
		remove, err = b.Update(updateCtx(0.1, object.Input{}, nil, nil))
		require.NoError(t, err)
		if remove {
			removed = true
			break
		}
	}
	assert.True(t, removed, "bullet removed after leaving the screen")
}

func TestDestroyedBulletIsRemoved(t *testing.T) {
	b := object.NewCannonBullet(60, 70)
	b.MarkDestroyed()

	remove, err := b.Update(updateCtx(0.016, object.Input{}, nil, nil))
	require.NoError(t, err)
	assert.True(t, remove)
}

func TestHasLiveBullet(t *testing.T) {
	cannonBullet := object.NewCannonBullet(60, 70)
	invaderBullet := object.NewInvaderBullet(30, 20)
	objects := []object.Object{cannonBullet, invaderBullet}

	assert.True(t, object.HasLiveBullet(objects, object.OwnerCannon))
	assert.True(t, object.HasLiveBullet(objects, object.OwnerInvader))

	cannonBullet.MarkDestroyed()
	assert.False(t, object.HasLiveBullet(objects, object.OwnerCannon))
	assert.True(t, object.HasLiveBullet(objects, object.OwnerInvader))
}
