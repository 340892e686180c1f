package ecs

import (
	"reflect"
	"runtime"
	"strings"
)

// System is a behavior that runs once per tick with access to the whole
// world. Exported View and Singleton fields of a struct system are bound to
// the world when the system is added.
type System[C any] interface {
	Execute(frame *UpdateFrame[C])
}

// Stage groups systems that can be run on their own with RunStage.
type Stage string

const (
	StageDefault Stage = "default"
	StageRender  Stage = "render"
)

type systemConfig struct {
	name  string
	stage Stage
}

// SystemOption configures a system at registration.
type SystemOption func(*systemConfig)

// Named overrides the name reported in scheduler stats.
func Named(name string) SystemOption {
	return func(c *systemConfig) {
		c.name = name
	}
}

// InStage places the system in stage instead of StageDefault.
func InStage(stage Stage) SystemOption {
	return func(c *systemConfig) {
		c.stage = stage
	}
}

func newSystemConfig(defaultName string, opts []SystemOption) systemConfig {
	cfg := systemConfig{
		name:  defaultName,
		stage: StageDefault,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// funcName returns the short name of the function value fn.
func funcName(fn any) string {
	name := runtime.FuncForPC(reflect.ValueOf(fn).Pointer()).Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// typeName returns the name of a struct system's type.
func typeName(v any) string {
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
