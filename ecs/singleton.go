package ecs

import "reflect"

// Singleton is a cached accessor for one resource type. Use it from systems
// that read the same resource every tick.
type Singleton[T any] struct {
	resources  *Resources
	ptr        *T
	generation uint64
}

// NewSingleton returns an accessor for the T resource. If the resource does
// not exist it is created from initializer, or the zero value, so Get never
// returns nil right after the call.
func NewSingleton[T any](src ResourceSource, initializer ...T) *Singleton[T] {
	if !HasResource[T](src) {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		AddResource(src, value)
	}

	s := &Singleton[T]{}
	s.Init(src)
	return s
}

// Init binds the accessor to src. It is called by AddSystem for Singleton
// fields. Unlike NewSingleton it does not create the resource.
func (s *Singleton[T]) Init(src ResourceSource) {
	s.resources = src.resourceStore()
	s.updateCache()
}

// Get returns a pointer to the resource, or nil if it does not exist.
func (s *Singleton[T]) Get() *T {
	if s.ptr == nil || s.generation != s.resources.generation {
		s.updateCache()
	}
	return s.ptr
}

// Exists reports whether the resource is currently stored.
func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}

func (s *Singleton[T]) updateCache() {
	if s.resources == nil {
		return
	}
	s.generation = s.resources.generation
	if entry, ok := s.resources.entry(reflect.TypeFor[T]()); ok {
		s.ptr = entry.value.(*T)
	} else {
		s.ptr = nil
	}
}
