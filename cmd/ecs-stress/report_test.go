package main

import (
	"bytes"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)
}

func TestStatsFinalizeEmpty(t *testing.T) {
	var s Stats
	s.Finalize()
	assert.Zero(t, s.Avg)
}

func TestReportAfterShortRun(t *testing.T) {
	world := newWorldBuilder(64).Build()
	rng := rand.New(rand.NewSource(7))
	registerSystems(world, 64, rng)
	for i := 0; i < 64; i++ {
		spawnRandomEntity(world, rng)
	}

	for i := 0; i < 300; i++ {
		frame := Frame{DeltaTime: 1.0 / 60}
		world.RunSystems(&frame)
	}

	// Every lifetime is at most 200 ticks, so the first generation expired
	// and was replaced.
	assert.Equal(t, 64, world.Components().Live())

	report := &Report{
		Duration:  time.Second,
		Entities:  64,
		World:     world.Stats(),
		Scheduler: world.Scheduler().Stats(),
	}
	report.UpdateTime.Finalize()

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))
	assert.Contains(t, buf.String(), "# ECS Stress Test Report")
	assert.Contains(t, buf.String(), "churn [default]: 300 runs")
	assert.Contains(t, buf.String(), "ageSystem [default]")
}
