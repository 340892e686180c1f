package ecs

import "reflect"

// ColumnStats describes one component column.
type ColumnStats struct {
	Type  reflect.Type
	Count int
}

// WorldStats is a snapshot of a world's storage.
type WorldStats struct {
	Slots         int
	Live          int
	Free          int
	Columns       []ColumnStats
	ResourceCount int
	ResourceTypes []reflect.Type
	SystemCount   int
}

// Stats collects a snapshot of the world's storage.
func (w *World[C]) Stats() WorldStats {
	table := w.components

	columns := make([]ColumnStats, len(table.columns))
	for i, col := range table.columns {
		columns[i] = ColumnStats{
			Type:  col.Type(),
			Count: col.Count(),
		}
	}

	return WorldStats{
		Slots:         table.Slots(),
		Live:          table.Live(),
		Free:          table.Free(),
		Columns:       columns,
		ResourceCount: w.resources.Len(),
		ResourceTypes: w.resources.Types(),
		SystemCount:   w.scheduler.Len(),
	}
}
