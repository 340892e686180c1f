package ecs_test

import (
	"runtime"
	"testing"

	"github.com/plus3/slotecs/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityRefBasicLifecycle(t *testing.T) {
	world := newTestWorld()

	id := world.NewEntity().With(&Position{X: 1.0, Y: 2.0}).Id()
	ref := world.Ref(id)
	require.NotNil(t, ref)
	assert.True(t, ref.Valid())

	resolved, ok := ref.Resolve()
	assert.True(t, ok)
	assert.Equal(t, id, resolved)

	world.RemoveEntity(id)
	assert.False(t, ref.Valid())

	_, ok = ref.Resolve()
	assert.False(t, ok)
}

func TestEntityRefStability(t *testing.T) {
	world := newTestWorld()
	id := world.NewEntity().Id()

	ref1 := world.Ref(id)
	ref2 := world.Ref(id)
	assert.Same(t, ref1, ref2)
	runtime.KeepAlive(ref1)
}

func TestEntityRefSurvivesSlotReuse(t *testing.T) {
	world := newTestWorld()
	id := world.NewEntity().With(Name{Value: "old"}).Id()
	ref := world.Ref(id)

	world.RemoveEntity(id)
	reused := world.NewEntity().With(Name{Value: "new"}).Id()
	require.Equal(t, id, reused)

	assert.False(t, ref.Valid())

	fresh := world.Ref(reused)
	assert.NotSame(t, ref, fresh)
	assert.True(t, fresh.Valid())
}

func TestEntityRefForDeadEntity(t *testing.T) {
	world := newTestWorld()
	id := world.NewEntity().Id()
	world.RemoveEntity(id)

	assert.Nil(t, world.Ref(id))
	assert.Nil(t, world.Ref(100))

	var nilRef *ecs.EntityRef
	assert.False(t, nilRef.Valid())
	_, ok := nilRef.Resolve()
	assert.False(t, ok)
}
