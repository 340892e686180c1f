package ecs

import (
	"context"
	"reflect"
	"strings"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Ticks           uint64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	Stage          Stage
	Components     []reflect.Type
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// systemEntry is the registration record of one system.
type systemEntry[C any] struct {
	name       string
	stage      Stage
	components []reflect.Type
	run        func(frame *UpdateFrame[C])
	stats      systemStatsInternal
}

// Scheduler holds the systems of a world and runs them in registration order.
type Scheduler[C any] struct {
	systems []*systemEntry[C]
	ticks   uint64
}

func newScheduler[C any]() *Scheduler[C] {
	return &Scheduler[C]{
		systems: make([]*systemEntry[C], 0),
	}
}

func (s *Scheduler[C]) add(cfg systemConfig, components []reflect.Type, run func(frame *UpdateFrame[C])) {
	s.systems = append(s.systems, &systemEntry[C]{
		name:       cfg.name,
		stage:      cfg.stage,
		components: components,
		run:        run,
		stats: systemStatsInternal{
			minDuration: time.Duration(1<<63 - 1),
		},
	})
}

// Len returns the number of registered systems.
func (s *Scheduler[C]) Len() int {
	return len(s.systems)
}

// once runs every system whose stage passes filter. A panicking system aborts
// the tick.
func (s *Scheduler[C]) once(frame *UpdateFrame[C], filter func(Stage) bool) {
	s.ticks++
	frame.Tick = s.ticks

	for _, system := range s.systems {
		if filter != nil && !filter(system.stage) {
			continue
		}
		frame.Stage = system.stage

		start := time.Now()
		system.run(frame)
		duration := time.Since(start)

		stats := &system.stats
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}
}

// bindFields initializes the exported View and Singleton fields of a struct
// system against w.
func bindFields[C any](w *World[C], system any) {
	systemValue := reflect.ValueOf(system)
	if systemValue.Kind() == reflect.Ptr {
		systemValue = systemValue.Elem()
	}

	if systemValue.Kind() != reflect.Struct {
		return
	}

	systemType := systemValue.Type()

	for i := 0; i < systemValue.NumField(); i++ {
		field := systemValue.Field(i)
		fieldType := systemType.Field(i)

		if !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}

		typeName := field.Type().Name()
		if !strings.HasPrefix(typeName, "View[") && !strings.HasPrefix(typeName, "Singleton[") {
			continue
		}

		initMethod := field.Addr().MethodByName("Init")
		if !initMethod.IsValid() {
			panic("Init method not found on field: " + fieldType.Name)
		}
		initMethod.Call([]reflect.Value{reflect.ValueOf(w)})
	}
}

// Loop runs every system at the given interval until ctx is cancelled.
// state is passed to the systems on every tick.
func (w *World[C]) Loop(ctx context.Context, interval time.Duration, state *C) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.RunSystems(state)
		}
	}
}

// Stats returns statistics about system execution.
func (s *Scheduler[C]) Stats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Ticks:       s.ticks,
		Systems:     make([]SystemStats, len(s.systems)),
	}

	var totalExecs int64
	for i, system := range s.systems {
		internal := system.stats
		avgDuration := time.Duration(0)
		minDuration := internal.minDuration
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		} else {
			minDuration = 0
		}

		stats.Systems[i] = SystemStats{
			Name:           system.name,
			Stage:          system.stage,
			Components:     system.components,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
