package ecs_test

import (
	"testing"

	"github.com/plus3/slotecs/ecs"
)

func BenchmarkNewEntity(b *testing.B) {
	world := newTestWorld()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		world.NewEntity().With(Position{X: 1.0, Y: 2.0}).With(Velocity{DX: 0.5, DY: 0.5})
	}
}

func BenchmarkNewEntityWithMultipleComponents(b *testing.B) {
	world := newTestWorld()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		world.NewEntity().
			With(Position{X: 1.0, Y: 2.0}).
			With(Velocity{DX: 0.5, DY: 0.5}).
			With(Health{Current: 100, Max: 100}).
			With(Name{Value: "Entity"})
	}
}

func BenchmarkRemoveEntity(b *testing.B) {
	world := newTestWorld()

	ids := make([]ecs.EntityId, b.N)
	for i := 0; i < b.N; i++ {
		ids[i] = world.NewEntity().With(Position{X: 1.0, Y: 2.0}).Id()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		world.RemoveEntity(ids[i])
	}
}

func BenchmarkRecycle(b *testing.B) {
	world := newTestWorld()
	for i := 0; i < 1000; i++ {
		world.NewEntity().With(Position{})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		id := ecs.EntityId(i % 1000)
		world.RemoveEntity(id)
		world.NewEntity().With(Position{X: float32(i)})
	}
}

func BenchmarkGetComponent(b *testing.B) {
	world := newTestWorld()
	id := world.NewEntity().With(Position{X: 1.0, Y: 2.0}).Id()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ecs.GetComponent[Position](world, id)
	}
}

func BenchmarkAddComponent(b *testing.B) {
	world := newTestWorld()

	ids := make([]ecs.EntityId, b.N)
	for i := 0; i < b.N; i++ {
		ids[i] = world.NewEntity().With(Position{X: 1.0, Y: 2.0}).Id()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ecs.AddComponent(world, ids[i], Velocity{DX: 0.5, DY: 0.5})
	}
}

func BenchmarkRemoveComponent(b *testing.B) {
	world := newTestWorld()

	ids := make([]ecs.EntityId, b.N)
	for i := 0; i < b.N; i++ {
		ids[i] = world.NewEntity().With(Position{}).With(Velocity{}).Id()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ecs.RemoveComponent[Velocity](world, ids[i])
	}
}

func BenchmarkViewGet(b *testing.B) {
	world := newTestWorld()
	id := world.NewEntity().With(Position{X: 1.0, Y: 2.0}).With(Velocity{DX: 0.5, DY: 0.5}).Id()

	view := ecs.NewView[struct {
		*Position
		*Velocity
	}](world)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = view.Get(id)
	}
}

func BenchmarkViewIter(b *testing.B) {
	world := newTestWorld()
	for i := 0; i < 10000; i++ {
		eb := world.NewEntity().With(Position{X: float32(i)})
		if i%2 == 0 {
			eb.With(Velocity{DX: 1})
		}
	}

	view := ecs.NewView[struct {
		*Position
		*Velocity
	}](world)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, item := range view.Iter() {
			item.Position.X += item.Velocity.DX
		}
	}
}

func BenchmarkQueryIter(b *testing.B) {
	world := newTestWorld()
	for i := 0; i < 10000; i++ {
		eb := world.NewEntity().With(Position{X: float32(i)})
		if i%2 == 0 {
			eb.With(Velocity{DX: 1})
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := ecs.NewQuery2[Position, Velocity](world)
		for q.Next() {
			pos, vel := q.Get()
			pos.X += vel.DX
		}
	}
}

func BenchmarkQueryIterSparse(b *testing.B) {
	world := newTestWorld()
	for i := 0; i < 10000; i++ {
		eb := world.NewEntity().With(Position{X: float32(i)})
		if i%100 == 0 {
			eb.With(Health{Current: 1})
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := ecs.NewQuery2[Position, Health](world)
		for q.Next() {
			_, health := q.Get()
			health.Current++
		}
	}
}

func BenchmarkRunSystems(b *testing.B) {
	world := newTestWorld()
	for i := 0; i < 1000; i++ {
		world.NewEntity().
			With(Position{}).
			With(Velocity{DX: 1, DY: 1}).
			With(Health{Current: 100, Max: 100})
	}

	ecs.WithSystem2(world, func(_ *Ctx, pos *Position, vel *Velocity) {
		pos.X += vel.DX
		pos.Y += vel.DY
	})
	ecs.WithSystem1(world, func(ctx *Ctx, h *Health) {
		ctx.Calls += h.Current
	})
	world.AddSystem(&MovementSystem{})

	var ctx Ctx
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		world.RunSystems(&ctx)
	}
}
