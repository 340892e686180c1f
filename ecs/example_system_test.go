package ecs_test

import (
	"context"
	"fmt"
	"time"

	"github.com/plus3/slotecs/ecs"
)

type Clock struct {
	DeltaTime float32
}

// ExampleWithSystem2 registers a function system. The function runs once per
// matching entity on every tick and receives the context passed to
// RunSystems.
func ExampleWithSystem2() {
	b := ecs.NewBuilder[Clock]()
	ecs.MustRegister[Position](b)
	ecs.MustRegister[Velocity](b)
	world := b.Build()

	ship := world.NewEntity().
		With(Position{X: 0, Y: 0}).
		With(Velocity{DX: 10, DY: 4}).
		Id()

	ecs.WithSystem2(world, func(clock *Clock, pos *Position, vel *Velocity) {
		pos.X += vel.DX * clock.DeltaTime
		pos.Y += vel.DY * clock.DeltaTime
	})

	clock := Clock{DeltaTime: 0.5}
	for i := 0; i < 4; i++ {
		world.RunSystems(&clock)
	}

	pos := ecs.GetComponent[Position](world, ship)
	fmt.Printf("ship at (%.0f, %.0f)\n", pos.X, pos.Y)

	// Output:
	// ship at (20, 8)
}

type reaper struct {
	Dying ecs.View[struct{ *Health }]
}

func (r *reaper) Execute(frame *ecs.UpdateFrame[Clock]) {
	for id, item := range r.Dying.Iter() {
		if item.Health.Current <= 0 {
			frame.Commands.Delete(id)
		}
	}
}

// ExampleWorld_AddSystem adds a struct system. Its View field is bound when
// the system is added, and entity removals queued through Commands are
// applied once the tick has finished.
func ExampleWorld_AddSystem() {
	b := ecs.NewBuilder[Clock]()
	ecs.MustRegister[Health](b)
	world := b.Build()

	world.NewEntity().With(Health{Current: 3})
	world.NewEntity().With(Health{Current: 0})
	world.NewEntity().With(Health{Current: -2})

	world.AddSystem(&reaper{})
	world.RunSystems(&Clock{})

	fmt.Println("alive:", world.Components().Live())
	fmt.Println("system:", world.Scheduler().Stats().Systems[0].Name)

	// Output:
	// alive: 1
	// system: reaper
}

// ExampleWorld_RunStage runs only the systems of one stage, which lets a
// host drive updates and rendering at different rates.
func ExampleWorld_RunStage() {
	b := ecs.NewBuilder[Clock]()
	ecs.MustRegister[Position](b)
	world := b.Build()
	world.NewEntity().With(Position{X: 3, Y: 4})

	ecs.WithSystem1(world, func(_ *Clock, pos *Position) {
		pos.X++
	})
	ecs.WithSystem1(world, func(_ *Clock, pos *Position) {
		fmt.Printf("draw at (%.0f, %.0f)\n", pos.X, pos.Y)
	}, ecs.InStage(ecs.StageRender))

	clock := Clock{}
	world.RunStage(ecs.StageDefault, &clock)
	world.RunStage(ecs.StageDefault, &clock)
	world.RunStage(ecs.StageRender, &clock)

	// Output:
	// draw at (5, 4)
}

// ExampleWorld_Loop drives the world from a ticker until the context ends.
func ExampleWorld_Loop() {
	b := ecs.NewBuilder[Clock]()
	ecs.MustRegister[Health](b)
	world := b.Build()
	id := world.NewEntity().With(Health{Current: 0}).Id()

	ctx, cancel := context.WithCancel(context.Background())
	ecs.WithSystem1(world, func(_ *Clock, h *Health) {
		if h.Current < 3 {
			h.Current++
		}
		if h.Current == 3 {
			cancel()
		}
	})

	world.Loop(ctx, time.Millisecond, &Clock{})
	fmt.Println("health:", ecs.GetComponent[Health](world, id).Current)

	// Output:
	// health: 3
}
