package ecs_test

import (
	"fmt"

	"github.com/plus3/slotecs/ecs"
)

// ExampleEntityRef keeps a handle to an entity that notices its removal.
// A bare EntityId would start naming the next entity placed in the recycled
// slot.
func ExampleEntityRef() {
	b := ecs.NewBuilder[struct{}]()
	ecs.MustRegister[Name](b)
	world := b.Build()

	target := world.NewEntity().With(Name{Value: "target"}).Id()
	ref := world.Ref(target)

	world.RemoveEntity(target)
	reused := world.NewEntity().With(Name{Value: "newcomer"}).Id()

	fmt.Println("same id:", reused == target)
	fmt.Println("ref valid:", ref.Valid())

	// Output:
	// same id: true
	// ref valid: false
}
