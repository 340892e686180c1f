package ecs

import (
	"reflect"
	"sort"

	"github.com/kamstrup/intmap"
)

type resourceEntry struct {
	typ   reflect.Type
	value any
}

// Resources holds at most one value per type for world-wide state that does
// not belong to an entity, such as configuration or frame counters.
type Resources struct {
	items *intmap.Map[int, resourceEntry]

	// generation changes whenever a resource is removed so cached pointers
	// held by Singleton accessors can be revalidated.
	generation uint64
}

func newResources() *Resources {
	return &Resources{
		items: intmap.New[int, resourceEntry](16),
	}
}

func (r *Resources) resourceStore() *Resources {
	return r
}

// Len returns the number of stored resources.
func (r *Resources) Len() int {
	return r.items.Len()
}

// Types returns the stored resource types sorted by name.
func (r *Resources) Types() []reflect.Type {
	types := make([]reflect.Type, 0, r.items.Len())
	r.items.ForEach(func(_ int, entry resourceEntry) bool {
		types = append(types, entry.typ)
		return true
	})
	sort.Sort(byTypeName(types))
	return types
}

func (r *Resources) entry(t reflect.Type) (resourceEntry, bool) {
	return r.items.Get(typeId(t))
}

// ResourceSource is implemented by the types that own a Resources store:
// *Resources itself and *World.
type ResourceSource interface {
	resourceStore() *Resources
}

// AddResource stores value as the T resource. An existing T resource is
// overwritten in place, so pointers obtained earlier see the new value.
func AddResource[T any](src ResourceSource, value T) {
	r := src.resourceStore()
	t := reflect.TypeFor[T]()
	if entry, ok := r.entry(t); ok {
		*entry.value.(*T) = value
		return
	}

	ptr := new(T)
	*ptr = value
	r.items.Put(typeId(t), resourceEntry{typ: t, value: ptr})
}

// GetResource returns a copy of the T resource.
func GetResource[T any](src ResourceSource) (T, bool) {
	if ptr := GetResourceMut[T](src); ptr != nil {
		return *ptr, true
	}
	var zero T
	return zero, false
}

// GetResourceMut returns a pointer to the T resource, or nil.
func GetResourceMut[T any](src ResourceSource) *T {
	entry, ok := src.resourceStore().entry(reflect.TypeFor[T]())
	if !ok {
		return nil
	}
	return entry.value.(*T)
}

// HasResource reports whether a T resource is stored.
func HasResource[T any](src ResourceSource) bool {
	_, ok := src.resourceStore().entry(reflect.TypeFor[T]())
	return ok
}

// RemoveResource deletes the T resource and returns its last value.
func RemoveResource[T any](src ResourceSource) (T, bool) {
	r := src.resourceStore()
	t := reflect.TypeFor[T]()
	entry, ok := r.entry(t)
	if !ok {
		var zero T
		return zero, false
	}
	r.items.Del(typeId(t))
	r.generation++
	return *entry.value.(*T), true
}
