package ecs

import (
	"fmt"
	"reflect"
	"weak"

	"github.com/TheBitDrifter/mask"
	"github.com/kamstrup/intmap"
	"github.com/rotisserie/eris"
)

// MaxComponentTypes is the number of distinct component types one table can
// hold. It is the width of a slot signature, which the mask build tags
// (m256, m512, m1024) raise from the default of 64.
const MaxComponentTypes = int(mask.MaxBits)

// slot is the per-entity bookkeeping kept alongside the columns. The
// signature has one bit per column ordinal and mirrors column occupancy.
type slot struct {
	signature mask.Mask
	alive     bool
}

// Components is the entity-component table. Every registered component type
// owns one column, and every column has exactly one slot per allocated entity
// slot. Removed entities leave their slots in place and are recycled in FIFO
// order, so the index of a live entity never changes.
//
// Components is not safe for concurrent use.
type Components struct {
	columns  []iColumn
	ordinals *intmap.Map[int, uint32]
	slots    []slot
	free     []EntityId
	live     int
	refs     *intmap.Map[EntityId, weak.Pointer[EntityRef]]
}

func newComponents(capacity int) *Components {
	return &Components{
		ordinals: intmap.New[int, uint32](32),
		slots:    make([]slot, 0, capacity),
		refs:     intmap.New[EntityId, weak.Pointer[EntityRef]](64),
	}
}

func (c *Components) componentTable() *Components {
	return c
}

// Slots returns the number of allocated entity slots, live or free. It is the
// length of every column and the upper bound of every query scan.
func (c *Components) Slots() int {
	return len(c.slots)
}

// Live returns the number of live entities.
func (c *Components) Live() int {
	return c.live
}

// Free returns the number of slots waiting to be recycled.
func (c *Components) Free() int {
	return len(c.free)
}

// IsAlive reports whether id names a live entity.
func (c *Components) IsAlive(id EntityId) bool {
	return int(id) < len(c.slots) && c.slots[id].alive
}

// Types returns the registered component types in registration order.
func (c *Components) Types() []reflect.Type {
	types := make([]reflect.Type, len(c.columns))
	for i, col := range c.columns {
		types[i] = col.Type()
	}
	return types
}

// NewEntity allocates an entity slot. Freed slots are reused before the table
// grows. The returned entity holds no components.
func (c *Components) NewEntity() EntityId {
	var id EntityId
	if len(c.free) > 0 {
		id = c.free[0]
		c.free = c.free[1:]
	} else {
		id = EntityId(len(c.slots))
		c.slots = append(c.slots, slot{})
		for _, col := range c.columns {
			col.grow(len(c.slots))
		}
	}
	c.slots[id].alive = true
	c.live++
	return id
}

// RemoveEntity drops every component of id and queues the slot for reuse.
// It panics if id is out of range or already removed.
func (c *Components) RemoveEntity(id EntityId) {
	c.mustBeAlive(id)

	for _, col := range c.columns {
		col.clear(int(id))
	}
	c.slots[id] = slot{}
	c.free = append(c.free, id)
	c.live--
	c.invalidateRef(id)
}

func (c *Components) mustBeInRange(id EntityId) {
	if int(id) >= len(c.slots) {
		panic(fmt.Sprintf("entity id %d out of bounds (%d slots)", id, len(c.slots)))
	}
}

func (c *Components) mustBeAlive(id EntityId) {
	c.mustBeInRange(id)
	if !c.slots[id].alive {
		panic(fmt.Sprintf("entity id %d is not alive", id))
	}
}

// lookup finds the column for t. Pointer types resolve to their element type.
func (c *Components) lookup(t reflect.Type) (iColumn, bool) {
	if ord, ok := c.ordinals.Get(typeId(t)); ok {
		return c.columns[ord], true
	}
	if t.Kind() == reflect.Ptr {
		if ord, ok := c.ordinals.Get(typeId(t.Elem())); ok {
			return c.columns[ord], true
		}
	}
	return nil, false
}

func (c *Components) mustLookup(t reflect.Type) iColumn {
	col, ok := c.lookup(t)
	if !ok {
		panic("component type " + t.String() + " not registered")
	}
	return col
}

func registerColumn[T any](c *Components) (*column[T], error) {
	t := reflect.TypeFor[T]()
	if _, ok := c.ordinals.Get(typeId(t)); ok {
		return nil, eris.Wrapf(ErrComponentRegistered, "register %s", t)
	}
	if len(c.columns) >= MaxComponentTypes {
		return nil, eris.Wrapf(ErrTooManyComponents, "register %s: limit is %d", t, MaxComponentTypes)
	}

	col := newColumn[T](uint32(len(c.columns)))
	col.grow(len(c.slots))
	c.columns = append(c.columns, col)
	c.ordinals.Put(typeId(t), col.ordinal)
	return col, nil
}

// ensureColumn returns the column for T, registering it on first use.
func ensureColumn[T any](c *Components) *column[T] {
	if ord, ok := c.ordinals.Get(typeId(reflect.TypeFor[T]())); ok {
		return c.columns[ord].(*column[T])
	}
	col, err := registerColumn[T](c)
	if err != nil {
		panic(err)
	}
	return col
}

// columnFor returns the column for T and panics if T was never registered.
func columnFor[T any](c *Components) *column[T] {
	t := reflect.TypeFor[T]()
	ord, ok := c.ordinals.Get(typeId(t))
	if !ok {
		panic("component type " + t.String() + " not registered")
	}
	return c.columns[ord].(*column[T])
}

// attach records that col holds a value for id.
func (c *Components) attach(id EntityId, col iColumn) {
	c.slots[id].signature.Mark(col.Ordinal())
}

func (c *Components) detach(id EntityId, col iColumn) {
	c.slots[id].signature.Unmark(col.Ordinal())
}

// addAny stores component, given as a T or *T, on id.
func (c *Components) addAny(id EntityId, component any) {
	t := reflect.TypeOf(component)
	if t == nil {
		panic("cannot add nil component")
	}
	col := c.mustLookup(t)
	c.mustBeAlive(id)
	if !col.setAny(int(id), component) {
		panic("cannot store " + t.String() + " in column " + col.Type().String())
	}
	c.attach(id, col)
}

func (c *Components) removeByType(id EntityId, t reflect.Type) {
	col := c.mustLookup(t)
	c.mustBeInRange(id)
	if col.clear(int(id)) {
		c.detach(id, col)
	}
}

func (c *Components) getByType(id EntityId, t reflect.Type) any {
	col := c.mustLookup(t)
	c.mustBeInRange(id)
	return col.getAny(int(id))
}

// ComponentSource is implemented by the types that own a Components table:
// *Components itself and *World.
type ComponentSource interface {
	componentTable() *Components
}

// AddComponent stores value as id's T component, replacing any previous one.
// It panics if T is not registered or id is not a live entity.
func AddComponent[T any](src ComponentSource, id EntityId, value T) {
	c := src.componentTable()
	col := columnFor[T](c)
	c.mustBeAlive(id)
	col.set(int(id), value)
	c.attach(id, col)
}

// RemoveComponent clears id's T component. Removing an absent component is a no-op.
func RemoveComponent[T any](src ComponentSource, id EntityId) {
	c := src.componentTable()
	col := columnFor[T](c)
	c.mustBeInRange(id)
	if col.clear(int(id)) {
		c.detach(id, col)
	}
}

// GetComponent returns a pointer to id's T component, or nil if id does not
// hold one. The pointer stays valid until the component is removed.
func GetComponent[T any](src ComponentSource, id EntityId) *T {
	c := src.componentTable()
	col := columnFor[T](c)
	c.mustBeInRange(id)
	return col.get(int(id))
}

// HasComponent reports whether id holds a T component.
func HasComponent[T any](src ComponentSource, id EntityId) bool {
	c := src.componentTable()
	col := columnFor[T](c)
	c.mustBeInRange(id)
	return col.has(int(id))
}

// ReadComponent returns the component of type t for id as a pointer wrapped in
// an any, or nil.
func ReadComponent(src ComponentSource, id EntityId, t reflect.Type) any {
	return src.componentTable().getByType(id, t)
}
