package ecs

import (
	"log/slog"
	"reflect"

	"github.com/rotisserie/eris"
)

type builderConfig struct {
	logger   *slog.Logger
	capacity int
}

// BuilderOption configures a WorldBuilder.
type BuilderOption func(*builderConfig)

// WithLogger sets the logger used for registration events. The default
// discards everything.
func WithLogger(logger *slog.Logger) BuilderOption {
	return func(c *builderConfig) {
		c.logger = logger
	}
}

// WithCapacity preallocates bookkeeping for n entity slots.
func WithCapacity(n int) BuilderOption {
	return func(c *builderConfig) {
		c.capacity = n
	}
}

// WorldBuilder collects component registrations before a World exists.
// Registration errors are reported here, before the world is in use.
type WorldBuilder[C any] struct {
	components *Components
	logger     *slog.Logger
	built      bool
}

// NewBuilder starts a world whose systems receive a *C.
func NewBuilder[C any](opts ...BuilderOption) *WorldBuilder[C] {
	cfg := builderConfig{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &WorldBuilder[C]{
		components: newComponents(cfg.capacity),
		logger:     cfg.logger,
	}
}

// Register adds a column for component type T. Registering the same type
// twice returns ErrComponentRegistered.
func Register[T, C any](b *WorldBuilder[C]) error {
	if b.built {
		return eris.Wrapf(ErrWorldBuilt, "register %s", reflect.TypeFor[T]())
	}
	col, err := registerColumn[T](b.components)
	if err != nil {
		return err
	}
	b.logger.Debug("component registered", "type", col.Type().String(), "ordinal", col.Ordinal())
	return nil
}

// MustRegister is Register for setup code; it panics on error and returns b
// for chaining.
func MustRegister[T, C any](b *WorldBuilder[C]) *WorldBuilder[C] {
	if err := Register[T](b); err != nil {
		panic(err)
	}
	return b
}

// Build finalizes the world. The builder cannot be used afterwards.
func (b *WorldBuilder[C]) Build() *World[C] {
	if b.built {
		panic(ErrWorldBuilt)
	}
	b.built = true

	return &World[C]{
		components: b.components,
		resources:  newResources(),
		scheduler:  newScheduler[C](),
		commands:   newCommands(),
		logger:     b.logger,
	}
}
