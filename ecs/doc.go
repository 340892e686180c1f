/*
Package ecs is an entity-component-system core built on per-type columns.

Every registered component type owns one column with a slot per entity, so an
entity is nothing more than an index shared by all columns. Removed entities
keep their slots and are recycled first-in first-out; the index of a live
entity never changes.

Core Concepts:

  - Entity: an EntityId indexing every column.
  - Component: plain data stored in the column of its type.
  - Query: a fresh scan yielding pointers to several components of one entity.
  - System: a function run once per matching entity on every tick.
  - Resource: a single value per type that belongs to no entity.

Basic Usage:

	type Ctx struct{ Frame int }

	b := ecs.NewBuilder[Ctx]()
	ecs.MustRegister[Position](b)
	ecs.MustRegister[Velocity](b)
	world := b.Build()

	world.NewEntity().
		With(Position{X: 0, Y: 0}).
		With(Velocity{DX: 1, DY: 1})

	ecs.WithSystem2(world, func(ctx *Ctx, pos *Position, vel *Velocity) {
		pos.X += vel.DX
		pos.Y += vel.DY
	})

	var ctx Ctx
	world.RunSystems(&ctx)

A World is single-threaded. Wrap it in a mutex to share it between goroutines.
*/
package ecs

//go:generate go run ../cmd/fetchgen -out fetch_generated.go
