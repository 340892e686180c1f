package ecs_test

import (
	"testing"

	"github.com/plus3/slotecs/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestView(t *testing.T) {
	world := newTestWorld()
	entityId := world.NewEntity().
		With(&Position{X: 1, Y: 2}).
		With(Temperature(32)).
		Id()

	view := ecs.NewView[struct {
		*Position
		*Temperature
	}](world)

	item := view.Get(entityId)
	require.NotNil(t, item)
	assert.Equal(t, Temperature(32), *item.Temperature)
	assert.Equal(t, float32(1), item.Position.X)
	assert.Equal(t, float32(2), item.Position.Y)
}

func TestViewMissingComponent(t *testing.T) {
	world := newTestWorld()
	// Entity only has Position, not Velocity
	entityId := world.NewEntity().With(Position{X: 5, Y: 10}).Id()

	view := ecs.NewView[struct {
		*Position
		*Velocity
	}](world)

	assert.Nil(t, view.Get(entityId))

	var result struct {
		*Position
		*Velocity
	}
	assert.False(t, view.Fill(entityId, &result))
}

func TestViewComponentMutation(t *testing.T) {
	world := newTestWorld()
	entityId := world.NewEntity().
		With(Position{X: 1, Y: 1}).
		With(Score(1000)).
		Id()

	view := ecs.NewView[struct {
		*Position
		*Score
	}](world)

	item := view.Get(entityId)
	require.NotNil(t, item)

	item.Position.X = 100
	*item.Score = 2000

	assert.Equal(t, float32(100), ecs.GetComponent[Position](world, entityId).X)
	assert.Equal(t, Score(2000), *ecs.GetComponent[Score](world, entityId))
}

func TestViewInvalidEntityId(t *testing.T) {
	world := newTestWorld()
	removed := world.NewEntity().With(Position{}).With(Velocity{}).Id()
	world.RemoveEntity(removed)

	view := ecs.NewView[struct {
		*Position
		*Velocity
	}](world)

	assert.Nil(t, view.Get(9999))
	assert.Nil(t, view.Get(removed))
}

func TestViewOptionalFields(t *testing.T) {
	world := newTestWorld()
	withName := world.NewEntity().
		With(Position{X: 1}).
		With(Name{Value: "named"}).
		Id()
	bare := world.NewEntity().With(Position{X: 2}).Id()
	world.NewEntity().With(Name{Value: "no position"})

	view := ecs.NewView[struct {
		*Position
		Name *Name `ecs:"optional"`
	}](world)

	item := view.Get(withName)
	require.NotNil(t, item)
	require.NotNil(t, item.Name)
	assert.Equal(t, "named", item.Name.Value)

	item = view.Get(bare)
	require.NotNil(t, item)
	assert.Nil(t, item.Name)

	var seen []ecs.EntityId
	for id := range view.Iter() {
		seen = append(seen, id)
	}
	assert.Equal(t, []ecs.EntityId{withName, bare}, seen)
}

func TestViewIter(t *testing.T) {
	world := newTestWorld()
	for i := 0; i < 10; i++ {
		eb := world.NewEntity().With(Health{Current: i})
		if i%2 == 0 {
			eb.With(Speed{Value: i * 10})
		}
	}

	view := ecs.NewView[struct {
		*Health
		*Speed
	}](world)

	count := 0
	for id, item := range view.Iter() {
		assert.Equal(t, int(id), item.Health.Current)
		assert.Equal(t, item.Health.Current*10, item.Speed.Value)
		count++
	}
	assert.Equal(t, 5, count)

	// A second Iter starts from the beginning again.
	count = 0
	for range view.Values() {
		count++
	}
	assert.Equal(t, 5, count)
}

func TestViewIterEarlyBreak(t *testing.T) {
	world := newTestWorld()
	for i := 0; i < 10; i++ {
		world.NewEntity().With(Speed{Value: i})
	}

	view := ecs.NewView[struct{ *Speed }](world)

	count := 0
	for range view.Iter() {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}

func TestViewGetRef(t *testing.T) {
	world := newTestWorld()
	id := world.NewEntity().With(Health{Current: 9}).Id()
	ref := world.Ref(id)

	view := ecs.NewView[struct{ *Health }](world)

	item := view.GetRef(ref)
	require.NotNil(t, item)
	assert.Equal(t, 9, item.Health.Current)

	world.RemoveEntity(id)
	world.NewEntity().With(Health{Current: 1})
	assert.Nil(t, view.GetRef(ref))
}

func TestViewSpawn(t *testing.T) {
	world := newTestWorld()
	view := ecs.NewView[struct {
		*Position
		Velocity *Velocity `ecs:"optional"`
	}](world)

	id := view.Spawn(struct {
		*Position
		Velocity *Velocity `ecs:"optional"`
	}{Position: &Position{X: 4, Y: 5}})

	assert.Equal(t, Position{X: 4, Y: 5}, *ecs.GetComponent[Position](world, id))
	assert.False(t, ecs.HasComponent[Velocity](world, id))

	assert.Panics(t, func() {
		view.Spawn(struct {
			*Position
			Velocity *Velocity `ecs:"optional"`
		}{Velocity: &Velocity{}})
	})
}

func TestViewRejectsBadShapes(t *testing.T) {
	world := newTestWorld()

	t.Run("duplicate field type", func(t *testing.T) {
		assert.Panics(t, func() {
			ecs.NewView[struct {
				A *Position
				B *Position
			}](world)
		})
	})

	t.Run("duplicate optional field type", func(t *testing.T) {
		assert.Panics(t, func() {
			ecs.NewView[struct {
				*Position
				Other *Position `ecs:"optional"`
			}](world)
		})
	})

	t.Run("invalid tag", func(t *testing.T) {
		assert.Panics(t, func() {
			ecs.NewView[struct {
				*Position
				Name *Name `ecs:"maybe"`
			}](world)
		})
	})

	t.Run("non pointer field", func(t *testing.T) {
		assert.Panics(t, func() {
			ecs.NewView[struct{ Position Position }](world)
		})
	})

	t.Run("non struct", func(t *testing.T) {
		assert.Panics(t, func() {
			ecs.NewView[int](world)
		})
	})

	t.Run("unregistered type", func(t *testing.T) {
		type Unregistered struct{}
		assert.Panics(t, func() {
			ecs.NewView[struct{ *Unregistered }](world)
		})
	})
}
