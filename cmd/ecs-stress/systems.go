package main

import (
	"math/rand"

	"github.com/plus3/slotecs/ecs"
)

func move(frame *Frame, pos *Position, vel *Velocity) {
	pos.X += vel.DX * frame.DeltaTime
	pos.Y += vel.DY * frame.DeltaTime
	frame.Moved++
}

func decay(frame *Frame, health *Health, mass *Mass) {
	if health.Current > 0 {
		health.Current--
	}
	*mass *= 0.999
}

// ageSystem counts down lifetimes and queues expired entities for removal.
type ageSystem struct {
	Entities ecs.View[struct {
		*Lifetime
	}]
	Stats ecs.Singleton[SimulationStats]
}

func (s *ageSystem) Execute(frame *ecs.UpdateFrame[Frame]) {
	for id, item := range s.Entities.Iter() {
		item.Lifetime.Ticks--
		if item.Lifetime.Ticks <= 0 {
			frame.Commands.Delete(id)
			frame.Ctx.Expired++
			s.Stats.Get().Expired++
		}
	}
}

// churnSystem replaces expired entities so the population stays level.
type churnSystem struct {
	target int
	rng    *rand.Rand
	Stats  ecs.Singleton[SimulationStats]
}

func (s *churnSystem) Execute(frame *ecs.UpdateFrame[Frame]) {
	missing := s.target - frame.World.Components().Live() + frame.Ctx.Expired
	for i := 0; i < missing; i++ {
		frame.Commands.Defer(func() {
			spawnRandomEntity(frame.World, s.rng)
		})
		s.Stats.Get().Spawned++
	}
}

func registerSystems(world *ecs.World[Frame], target int, rng *rand.Rand) {
	ecs.NewSingleton[SimulationStats](world)

	ecs.WithSystem2(world, move)
	ecs.WithSystem2(world, decay)
	world.AddSystem(&ageSystem{})
	world.AddSystem(&churnSystem{target: target, rng: rng}, ecs.Named("churn"))
}
