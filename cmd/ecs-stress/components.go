package main

import (
	"math/rand"

	"github.com/plus3/slotecs/ecs"
)

type Position struct {
	X, Y float64
}

type Velocity struct {
	DX, DY float64
}

type Health struct {
	Current int
	Max     int
}

type Lifetime struct {
	Ticks int
}

type Mass float64

// Frame is the context shared by every system during one tick.
type Frame struct {
	DeltaTime float64
	Expired   int
	Moved     int
}

// SimulationStats is a world resource updated by the systems.
type SimulationStats struct {
	Spawned int
	Expired int
}

func newWorldBuilder(capacity int, opts ...ecs.BuilderOption) *ecs.WorldBuilder[Frame] {
	b := ecs.NewBuilder[Frame](append([]ecs.BuilderOption{ecs.WithCapacity(capacity)}, opts...)...)
	ecs.MustRegister[Position](b)
	ecs.MustRegister[Velocity](b)
	ecs.MustRegister[Health](b)
	ecs.MustRegister[Lifetime](b)
	ecs.MustRegister[Mass](b)
	return b
}

// spawnRandomEntity creates an entity with a random subset of the components.
func spawnRandomEntity(world *ecs.World[Frame], rng *rand.Rand) ecs.EntityId {
	eb := world.NewEntity().
		With(Position{X: rng.Float64() * 100, Y: rng.Float64() * 100}).
		With(Lifetime{Ticks: 1 + rng.Intn(200)})

	if rng.Intn(2) == 0 {
		eb.With(Velocity{DX: rng.Float64() - 0.5, DY: rng.Float64() - 0.5})
	}
	if rng.Intn(3) == 0 {
		eb.With(Health{Current: 100, Max: 100})
	}
	if rng.Intn(4) == 0 {
		eb.With(Mass(1 + rng.Float64()))
	}
	return eb.Id()
}
