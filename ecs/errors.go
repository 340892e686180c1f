package ecs

import "github.com/rotisserie/eris"

var (
	// ErrComponentRegistered is returned when a component type is registered twice.
	ErrComponentRegistered = eris.New("component type already registered")

	// ErrTooManyComponents is returned when registering more than MaxComponentTypes types.
	ErrTooManyComponents = eris.New("too many component types")

	// ErrWorldBuilt is returned when a builder is used after Build.
	ErrWorldBuilt = eris.New("world already built")
)
