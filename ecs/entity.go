package ecs

import "weak"

// EntityId is the index of an entity's slot in every component column.
// Ids of removed entities are handed out again by later NewEntity calls.
type EntityId uint32

// EntityRef is a handle to an entity that notices removal. Unlike a bare
// EntityId it does not silently start pointing at a new entity when the slot
// is recycled.
type EntityRef struct {
	id    EntityId
	alive bool
}

// Resolve returns the referenced id, or false once the entity was removed.
func (r *EntityRef) Resolve() (EntityId, bool) {
	if r == nil || !r.alive {
		return 0, false
	}
	return r.id, true
}

// Valid reports whether the referenced entity is still live.
func (r *EntityRef) Valid() bool {
	return r != nil && r.alive
}

// Ref returns the reference for id, creating it if needed. Repeated calls for
// the same live entity return the same *EntityRef while it is reachable.
// It returns nil if id is not a live entity.
func (c *Components) Ref(id EntityId) *EntityRef {
	if !c.IsAlive(id) {
		return nil
	}

	if weakPtr, ok := c.refs.Get(id); ok {
		if ref := weakPtr.Value(); ref != nil {
			return ref
		}
		c.refs.Del(id)
	}

	ref := &EntityRef{id: id, alive: true}
	c.refs.Put(id, weak.Make(ref))
	return ref
}

func (c *Components) invalidateRef(id EntityId) {
	weakPtr, ok := c.refs.Get(id)
	if !ok {
		return
	}
	if ref := weakPtr.Value(); ref != nil {
		ref.alive = false
	}
	c.refs.Del(id)
}

// EntityBuilder attaches components to a freshly created entity.
//
//	id := world.NewEntity().
//		With(Health{Current: 100}).
//		With(Speed{Value: 1}).
//		Id()
type EntityBuilder struct {
	components *Components
	id         EntityId
}

// With stores component, given as a value or a pointer, on the entity.
// It panics if the component type is not registered.
func (eb *EntityBuilder) With(component any) *EntityBuilder {
	eb.components.addAny(eb.id, component)
	return eb
}

// Id returns the entity being built.
func (eb *EntityBuilder) Id() EntityId {
	return eb.id
}
