package ecs_test

import "github.com/plus3/slotecs/ecs"

// Common test component types
type Position struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

type Name struct {
	Value string
}

type Health struct {
	Current int
	Max     int
}

type Speed struct {
	Value int
}

type AI struct {
	State int
}

// Custom primitive types for testing non-struct components
type Score int32
type Tag string
type Temperature float64

type Inventory struct {
	Items []string
}

type Link struct {
	Next *Position
}

// Ctx is the external context handed to systems in tests.
type Ctx struct {
	Calls int
	Seen  []ecs.EntityId
}

func newTestWorld() *ecs.World[Ctx] {
	b := ecs.NewBuilder[Ctx]()
	ecs.MustRegister[Position](b)
	ecs.MustRegister[Velocity](b)
	ecs.MustRegister[Name](b)
	ecs.MustRegister[Health](b)
	ecs.MustRegister[Speed](b)
	ecs.MustRegister[AI](b)
	ecs.MustRegister[Score](b)
	ecs.MustRegister[Tag](b)
	ecs.MustRegister[Temperature](b)
	ecs.MustRegister[Inventory](b)
	ecs.MustRegister[Link](b)
	return b.Build()
}
