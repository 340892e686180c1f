package ecs

// UpdateFrame is handed to struct systems on every tick.
type UpdateFrame[C any] struct {
	Ctx      *C
	World    *World[C]
	Commands *Commands
	Stage    Stage
	Tick     uint64
}
