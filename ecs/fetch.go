package ecs

import "github.com/TheBitDrifter/mask"

// scanner walks entity slots in index order and stops on every live slot
// whose signature holds all required columns. A scanner is created per query
// call and is bounded by the slot count at that moment.
type scanner struct {
	table    *Components
	required mask.Mask
	cursor   int
	end      int
	current  EntityId
}

// newScanner builds a scanner over the given columns. Requesting the same
// column twice would hand out two mutable pointers to one value, so it panics.
func newScanner(table *Components, columns ...iColumn) scanner {
	var required mask.Mask
	for i, col := range columns {
		for _, prev := range columns[:i] {
			if prev.Ordinal() == col.Ordinal() {
				panic("aliased fetch: component type " + col.Type().String() + " requested more than once")
			}
		}
		required.Mark(col.Ordinal())
	}

	return scanner{
		table:    table,
		required: required,
		end:      len(table.slots),
	}
}

func (s *scanner) next() bool {
	for s.cursor < s.end {
		index := s.cursor
		s.cursor++

		slot := &s.table.slots[index]
		if slot.alive && slot.signature.ContainsAll(s.required) {
			s.current = EntityId(index)
			return true
		}
	}
	return false
}

func (s *scanner) matches(id EntityId) bool {
	if int(id) >= len(s.table.slots) {
		return false
	}
	slot := &s.table.slots[id]
	return slot.alive && slot.signature.ContainsAll(s.required)
}
