package service

import (
	"context"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wricardo/fleetsim/fleet/scenario"
)

func TestAnalyze_Demo(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	sim := NewSimulator(nil, logger)

	analysis, err := sim.Analyze(context.Background(), scenario.Demo())
	require.NoError(t, err)

	assert.Equal(t, scenario.DemoName, analysis.Scenario)
	assert.Empty(t, analysis.Warnings)
	require.Len(t, analysis.Entities, 2)

	car := analysis.Entities[0]
	assert.Equal(t, "car", car.Name)
	assert.InDelta(t, 5.0, car.PathLength, 1e-9)
	assert.Equal(t, 1, car.Moves)
	assert.Equal(t, 1, car.Turns)

	bus := analysis.Entities[1]
	assert.Equal(t, "bus", bus.Name)
	assert.InDelta(t, 15.0, bus.PathLength, 1e-9)
	assert.Equal(t, 2, bus.Moves)
	assert.Equal(t, "Bus: (X=15.00, Y=0.00, Angle=0.00, Passengers=5, Earned=62.50)", bus.Description)
}

func TestAnalyze_Warnings(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	sim := NewSimulator(nil, logger)

	sc := &scenario.Scenario{Name: "odd", Steps: []scenario.Step{
		{Entity: "b", Op: scenario.OpBus, Args: []any{0, 0, 0}},
		{Entity: "b", Op: scenario.OpEnter, Args: []any{3}},
		{Entity: "b", Op: scenario.OpExit, Args: []any{5}},
		{Entity: "b", Op: scenario.OpEnter, Args: []any{-2}},
		{Entity: "b", Op: scenario.OpMove, Args: []any{4}},
		{Entity: "c", Op: scenario.OpVehicle, Args: []any{0, 0, 0}},
		{Entity: "c", Op: scenario.OpMove, Args: []any{-6}},
	}}

	analysis, err := sim.Analyze(context.Background(), sc)
	require.NoError(t, err)

	require.Len(t, analysis.Warnings, 3)
	assert.Equal(t, WarnExitClamped, analysis.Warnings[0].Code)
	assert.Equal(t, 3, analysis.Warnings[0].Step)
	assert.Equal(t, WarnNegativeEnter, analysis.Warnings[1].Code)
	assert.Equal(t, 4, analysis.Warnings[1].Step)
	assert.Equal(t, WarnNegativeFare, analysis.Warnings[2].Code)
	assert.Equal(t, "b", analysis.Warnings[2].Entity)

	require.Len(t, analysis.Entities, 2)
	assert.Equal(t, -2, *analysis.Entities[0].Passengers)
	assert.InDelta(t, -4.0, *analysis.Entities[0].Earned, 1e-9)
	assert.InDelta(t, 6.0, analysis.Entities[1].PathLength, 1e-9)
}

func TestAnalyze_Cancelled(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	sim := NewSimulator(nil, logger)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sim.Analyze(ctx, scenario.Demo())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnalyze_Invalid(t *testing.T) {
	sim := NewSimulator(nil, nil)

	_, err := sim.Analyze(context.Background(), &scenario.Scenario{})
	assert.ErrorIs(t, err, scenario.ErrInvalidScenario)
}
