package ecs

import "reflect"

// Commands buffers structural changes requested while systems run. The buffer
// is flushed once after every system of a tick has finished.
type Commands struct {
	spawns  []spawnCommand
	deletes []EntityId
	adds    []addComponentCommand
	removes []removeComponentCommand
	defers  []deferCommand
}

func newCommands() *Commands {
	return &Commands{}
}

type deferCommand struct {
	fn func()
}

type spawnCommand struct {
	components []any
}

type addComponentCommand struct {
	entity    EntityId
	component any
}

type removeComponentCommand struct {
	entity   EntityId
	compType reflect.Type
}

// Defer queues fn to run after the other commands of the flush.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, deferCommand{fn: fn})
}

// Spawn queues the creation of an entity holding components.
func (c *Commands) Spawn(components ...any) {
	c.spawns = append(c.spawns, spawnCommand{components: components})
}

// Delete queues the removal of entity.
func (c *Commands) Delete(entity EntityId) {
	c.deletes = append(c.deletes, entity)
}

// AddComponent queues storing component on entity.
func (c *Commands) AddComponent(entity EntityId, component any) {
	c.adds = append(c.adds, addComponentCommand{
		entity:    entity,
		component: component,
	})
}

// RemoveComponent queues clearing entity's component of type compType.
func (c *Commands) RemoveComponent(entity EntityId, compType reflect.Type) {
	c.removes = append(c.removes, removeComponentCommand{
		entity:   entity,
		compType: compType,
	})
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.spawns) + len(c.deletes) + len(c.adds) + len(c.removes) + len(c.defers)
}

// Flush applies the queued commands to table and resets the buffer. Deletes
// run first; adds and removes aimed at entities that are no longer alive are
// dropped; spawns run next and deferred functions last. The buffer is reset
// even if a command panics, so nothing is applied twice.
func (c *Commands) Flush(table *Components) {
	defer c.reset()

	for _, id := range c.deletes {
		if table.IsAlive(id) {
			table.RemoveEntity(id)
		}
	}

	for _, cmd := range c.removes {
		if table.IsAlive(cmd.entity) {
			table.removeByType(cmd.entity, cmd.compType)
		}
	}

	for _, cmd := range c.adds {
		if table.IsAlive(cmd.entity) {
			table.addAny(cmd.entity, cmd.component)
		}
	}

	for _, cmd := range c.spawns {
		id := table.NewEntity()
		for _, component := range cmd.components {
			table.addAny(id, component)
		}
	}

	for _, df := range c.defers {
		df.fn()
	}
}

func (c *Commands) reset() {
	c.spawns = c.spawns[:0]
	c.deletes = c.deletes[:0]
	c.adds = c.adds[:0]
	c.removes = c.removes[:0]
	c.defers = c.defers[:0]
}
