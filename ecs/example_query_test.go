package ecs_test

import (
	"fmt"

	"github.com/plus3/slotecs/ecs"
)

// ExampleNewQuery2 iterates every entity holding both a Position and a
// Velocity. Each call returns a fresh iterator that visits entities in slot
// order; the pointers it yields write straight into the component columns.
func ExampleNewQuery2() {
	b := ecs.NewBuilder[struct{}]()
	ecs.MustRegister[Position](b)
	ecs.MustRegister[Velocity](b)
	world := b.Build()

	world.NewEntity().With(Position{X: 1, Y: 1}).With(Velocity{DX: 1, DY: 0})
	world.NewEntity().With(Position{X: 5, Y: 5})
	world.NewEntity().With(Position{X: 9, Y: 9}).With(Velocity{DX: 0, DY: -1})

	q := ecs.NewQuery2[Position, Velocity](world)
	for q.Next() {
		pos, vel := q.Get()
		pos.X += vel.DX
		pos.Y += vel.DY
		fmt.Printf("entity %d now at (%.0f, %.0f)\n", q.Entity(), pos.X, pos.Y)
	}

	// Output:
	// entity 0 now at (2, 1)
	// entity 2 now at (9, 8)
}
