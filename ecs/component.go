package ecs

// Component is a typed handle to one (T, entity) slot of the table. It does
// not copy the value; reads and writes go straight to the column. A handle
// is only meaningful while its entity stays alive.
type Component[T any] struct {
	table  *Components
	column *column[T]
	id     EntityId
}

// ComponentFor returns the handle for id's T slot. It panics if T is not
// registered or id is out of range.
func ComponentFor[T any](src ComponentSource, id EntityId) Component[T] {
	table := src.componentTable()
	col := columnFor[T](table)
	table.mustBeInRange(id)
	return Component[T]{table: table, column: col, id: id}
}

// Entity returns the entity the handle belongs to.
func (c Component[T]) Entity() EntityId {
	return c.id
}

// Present reports whether the slot holds a value.
func (c Component[T]) Present() bool {
	return c.column.has(int(c.id))
}

// Get returns a copy of the value.
func (c Component[T]) Get() (T, bool) {
	if ptr := c.column.get(int(c.id)); ptr != nil {
		return *ptr, true
	}
	var zero T
	return zero, false
}

// Ptr returns a pointer to the stored value, or nil.
func (c Component[T]) Ptr() *T {
	return c.column.get(int(c.id))
}

// Set stores value, replacing any previous one. The entity must be alive.
func (c Component[T]) Set(value T) {
	c.table.mustBeAlive(c.id)
	c.column.set(int(c.id), value)
	c.table.attach(c.id, c.column)
}

// Clear empties the slot.
func (c Component[T]) Clear() {
	if c.column.clear(int(c.id)) {
		c.table.detach(c.id, c.column)
	}
}
