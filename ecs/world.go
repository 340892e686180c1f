package ecs

import (
	"log/slog"
	"reflect"
)

// World ties together the component table, the resource store and the
// systems that run against them. C is the type of the external context that
// RunSystems hands to every system.
//
// A World is not safe for concurrent use; callers that share one between
// goroutines must serialize every call through their own lock.
type World[C any] struct {
	components *Components
	resources  *Resources
	scheduler  *Scheduler[C]
	commands   *Commands
	logger     *slog.Logger
}

func (w *World[C]) componentTable() *Components {
	return w.components
}

func (w *World[C]) resourceStore() *Resources {
	return w.resources
}

// Components returns the world's entity-component table.
func (w *World[C]) Components() *Components {
	return w.components
}

// Resources returns the world's resource store.
func (w *World[C]) Resources() *Resources {
	return w.resources
}

// Commands returns the buffer flushed at the end of every tick.
func (w *World[C]) Commands() *Commands {
	return w.commands
}

// Scheduler returns the world's system registry.
func (w *World[C]) Scheduler() *Scheduler[C] {
	return w.scheduler
}

// NewEntity creates an entity and returns a builder for its components.
func (w *World[C]) NewEntity() *EntityBuilder {
	return &EntityBuilder{
		components: w.components,
		id:         w.components.NewEntity(),
	}
}

// RemoveEntity drops id and all its components. It panics if id is not a
// live entity.
func (w *World[C]) RemoveEntity(id EntityId) {
	w.components.RemoveEntity(id)
}

// IsAlive reports whether id names a live entity.
func (w *World[C]) IsAlive(id EntityId) bool {
	return w.components.IsAlive(id)
}

// Ref returns a removal-aware handle for id, or nil if id is not alive.
func (w *World[C]) Ref(id EntityId) *EntityRef {
	return w.components.Ref(id)
}

// AddSystem registers a struct system. Its exported View and Singleton fields
// are bound to the world before AddSystem returns.
func (w *World[C]) AddSystem(system System[C], opts ...SystemOption) *World[C] {
	bindFields(w, system)

	cfg := newSystemConfig(typeName(system), opts)
	w.scheduler.add(cfg, nil, system.Execute)
	w.logger.Debug("system registered", "system", cfg.name, "stage", cfg.stage)
	return w
}

func (w *World[C]) addEntitySystem(fn any, components []reflect.Type, opts []SystemOption, run func(frame *UpdateFrame[C])) {
	cfg := newSystemConfig(funcName(fn), opts)
	w.scheduler.add(cfg, components, run)
	w.logger.Debug("system registered", "system", cfg.name, "stage", cfg.stage, "components", len(components))
}

// RunSystems runs every registered system once, in registration order, then
// flushes the command buffer. ctx is shared by all systems of the tick.
func (w *World[C]) RunSystems(ctx *C) {
	w.run(ctx, nil)
}

// RunStage is RunSystems restricted to the systems registered in stage.
func (w *World[C]) RunStage(stage Stage, ctx *C) {
	w.run(ctx, func(s Stage) bool { return s == stage })
}

func (w *World[C]) run(ctx *C, filter func(Stage) bool) {
	frame := &UpdateFrame[C]{
		Ctx:      ctx,
		World:    w,
		Commands: w.commands,
	}
	w.scheduler.once(frame, filter)
	w.commands.Flush(w.components)
}
