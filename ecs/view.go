package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

// View fetches several components of one entity into a struct of pointers.
// The type T must be a struct whose fields are pointers to registered
// component types. Embedded fields are always required; named fields can be
// marked optional with the `ecs:"optional"` struct tag and are left nil when
// the entity does not hold that component.
//
// Every field must name a different component type.
type View[T any] struct {
	table       *Components
	types       []reflect.Type
	optional    []bool
	fieldOffset []uintptr
	columns     []iColumn
	required    []iColumn
}

// NewView creates a view of T over the table owned by src.
func NewView[T any](src ComponentSource) *View[T] {
	v := &View[T]{}
	v.parse()
	v.Init(src)
	return v
}

func (v *View[T]) parse() {
	structType := reflect.TypeFor[T]()
	if structType.Kind() != reflect.Struct {
		panic("View type parameter must be a struct")
	}

	v.types = make([]reflect.Type, 0, structType.NumField())
	v.optional = make([]bool, 0, structType.NumField())
	v.fieldOffset = make([]uintptr, 0, structType.NumField())

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if field.Type.Kind() != reflect.Ptr {
			panic("View struct fields must be pointer types")
		}

		isOptional := false
		if !field.Anonymous {
			if tag := field.Tag.Get("ecs"); tag != "" {
				if tag != "optional" {
					panic("invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
				}
				isOptional = true
			}
		}

		v.types = append(v.types, field.Type.Elem())
		v.optional = append(v.optional, isOptional)
		v.fieldOffset = append(v.fieldOffset, field.Offset)
	}
}

// Init binds the view to the table owned by src. Every field type must
// already be registered. It is called by AddSystem for View fields.
func (v *View[T]) Init(src ComponentSource) {
	if v.types == nil {
		v.parse()
	}

	v.table = src.componentTable()
	v.columns = make([]iColumn, len(v.types))
	v.required = v.required[:0]
	for i, typ := range v.types {
		v.columns[i] = v.table.mustLookup(typ)
		if !v.optional[i] {
			v.required = append(v.required, v.columns[i])
		}
	}

	// Rejects duplicate field types, optional ones included.
	newScanner(v.table, v.columns...)
}

func (v *View[T]) populate(resultPtr unsafe.Pointer, index int) bool {
	for i, col := range v.columns {
		fieldPtr := unsafe.Pointer(uintptr(resultPtr) + v.fieldOffset[i])

		componentPtr := col.ptr(index)
		if componentPtr == nil && !v.optional[i] {
			return false
		}
		*(*unsafe.Pointer)(fieldPtr) = componentPtr
	}
	return true
}

// Fill populates ptr with id's components. It returns false if id is not a
// live entity or lacks a required component.
func (v *View[T]) Fill(id EntityId, ptr *T) bool {
	if !v.table.IsAlive(id) {
		return false
	}
	return v.populate(unsafe.Pointer(ptr), int(id))
}

// Get returns a populated view struct for id, or nil.
func (v *View[T]) Get(id EntityId) *T {
	var result T
	if !v.Fill(id, &result) {
		return nil
	}
	return &result
}

// GetRef returns a populated view struct for the entity behind ref, or nil.
func (v *View[T]) GetRef(ref *EntityRef) *T {
	id, ok := ref.Resolve()
	if !ok {
		return nil
	}
	return v.Get(id)
}

// Iter returns a fresh iterator over every entity holding the required
// components, in slot order.
func (v *View[T]) Iter() iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		scan := newScanner(v.table, v.required...)

		var result T
		resultPtr := unsafe.Pointer(&result)

		for scan.next() {
			if !v.populate(resultPtr, int(scan.current)) {
				continue
			}
			if !yield(scan.current, result) {
				return
			}
		}
	}
}

// Values is Iter without the entity ids.
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range v.Iter() {
			if !yield(value) {
				return
			}
		}
	}
}

// Spawn creates an entity holding a copy of every non-nil component in data.
// It panics if a required field is nil.
func (v *View[T]) Spawn(data T) EntityId {
	structPtr := unsafe.Pointer(&data)

	for i := range v.columns {
		fieldPtr := unsafe.Pointer(uintptr(structPtr) + v.fieldOffset[i])
		if *(*unsafe.Pointer)(fieldPtr) == nil && !v.optional[i] {
			panic("required component is nil in View.Spawn")
		}
	}

	id := v.table.NewEntity()
	for i, col := range v.columns {
		fieldPtr := unsafe.Pointer(uintptr(structPtr) + v.fieldOffset[i])
		componentPtr := *(*unsafe.Pointer)(fieldPtr)
		if componentPtr == nil {
			continue
		}
		col.setFrom(int(id), componentPtr)
		v.table.attach(id, col)
	}
	return id
}
