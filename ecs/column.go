package ecs

import (
	"reflect"
	"unsafe"
)

// iColumn is the type-erased view of a component column used wherever the
// component type is only known at runtime.
type iColumn interface {
	Type() reflect.Type
	Ordinal() uint32
	Len() int
	Count() int

	grow(n int)
	has(index int) bool
	clear(index int) bool
	getAny(index int) any
	setAny(index int, item any) bool
	ptr(index int) unsafe.Pointer
	setFrom(index int, src unsafe.Pointer)
}

const (
	columnBlockSize = 64
)

type columnBlock[T any] struct {
	values [columnBlockSize]T
	filled [columnBlockSize]bool
}

// column stores every slot of component type T, one per allocated entity slot.
// Blocks are held by pointer so the address of a stored component does not
// move when the column grows.
type column[T any] struct {
	typ     reflect.Type
	ordinal uint32
	blocks  []*columnBlock[T]
	length  int
	count   int
}

func newColumn[T any](ordinal uint32) *column[T] {
	return &column[T]{
		typ:     reflect.TypeFor[T](),
		ordinal: ordinal,
	}
}

// Type returns the component type stored in the column.
func (c *column[T]) Type() reflect.Type {
	return c.typ
}

// Ordinal returns the column's position in the table, which is also its bit
// in a slot signature.
func (c *column[T]) Ordinal() uint32 {
	return c.ordinal
}

// Len returns the number of slots, occupied or not.
func (c *column[T]) Len() int {
	return c.length
}

// Count returns the number of occupied slots.
func (c *column[T]) Count() int {
	return c.count
}

func (c *column[T]) grow(n int) {
	for n > len(c.blocks)*columnBlockSize {
		c.blocks = append(c.blocks, new(columnBlock[T]))
	}
	if n > c.length {
		c.length = n
	}
}

func (c *column[T]) locate(index int) (*columnBlock[T], int) {
	if index < 0 || index >= c.length {
		return nil, 0
	}
	return c.blocks[index/columnBlockSize], index % columnBlockSize
}

func (c *column[T]) get(index int) *T {
	block, slot := c.locate(index)
	if block == nil || !block.filled[slot] {
		return nil
	}
	return &block.values[slot]
}

func (c *column[T]) set(index int, value T) {
	block, slot := c.locate(index)
	if block == nil {
		panic("column index out of range for " + c.typ.String())
	}
	if !block.filled[slot] {
		block.filled[slot] = true
		c.count++
	}
	block.values[slot] = value
}

func (c *column[T]) has(index int) bool {
	block, slot := c.locate(index)
	return block != nil && block.filled[slot]
}

// clear empties a slot and reports whether it was occupied.
func (c *column[T]) clear(index int) bool {
	block, slot := c.locate(index)
	if block == nil || !block.filled[slot] {
		return false
	}
	var zero T
	block.values[slot] = zero
	block.filled[slot] = false
	c.count--
	return true
}

func (c *column[T]) getAny(index int) any {
	if ptr := c.get(index); ptr != nil {
		return ptr
	}
	return nil
}

// setAny stores item, which may be a T or a *T.
func (c *column[T]) setAny(index int, item any) bool {
	switch v := item.(type) {
	case T:
		c.set(index, v)
	case *T:
		if v == nil {
			return false
		}
		c.set(index, *v)
	default:
		return false
	}
	return true
}

func (c *column[T]) ptr(index int) unsafe.Pointer {
	return unsafe.Pointer(c.get(index))
}

func (c *column[T]) setFrom(index int, src unsafe.Pointer) {
	c.set(index, *(*T)(src))
}
