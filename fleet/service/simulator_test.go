package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wricardo/fleetsim/fleet/engine"
	"github.com/wricardo/fleetsim/fleet/scenario"
)

var demoOutput = []string{
	"Vehicle: (X=10.00, Y=20.00, Angle=45.00)",
	"Vehicle: (X=13.54, Y=23.54, Angle=45.00)",
	"Vehicle: (X=13.54, Y=23.54, Angle=90.00)",
	"Bus: (X=0.00, Y=0.00, Angle=0.00, Passengers=0, Earned=0.00)",
	"Bus: (X=0.00, Y=0.00, Angle=0.00, Passengers=10, Earned=0.00)",
	"Bus: (X=10.00, Y=0.00, Angle=0.00, Passengers=10, Earned=50.00)",
	"Bus: (X=10.00, Y=0.00, Angle=0.00, Passengers=5, Earned=50.00)",
	"Bus: (X=15.00, Y=0.00, Angle=0.00, Passengers=5, Earned=62.50)",
}

func newTestSimulator(t *testing.T, format string) (Simulator, *bytes.Buffer, *logtest.Hook) {
	t.Helper()

	var out bytes.Buffer
	printer, err := NewPrinter(format, &out)
	require.NoError(t, err)

	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	return NewSimulator(printer, logger), &out, hook
}

func TestRun_Demo(t *testing.T) {
	sim, out, _ := newTestSimulator(t, FormatText)

	report, err := sim.Run(context.Background(), scenario.Demo())
	require.NoError(t, err)

	assert.Equal(t, strings.Join(demoOutput, "\n")+"\n", out.String())

	assert.Equal(t, scenario.DemoName, report.Scenario)
	assert.Equal(t, 8, report.Steps)
	_, err = uuid.Parse(report.RunID)
	assert.NoError(t, err)

	require.Len(t, report.Entities, 2)
	assert.Equal(t, "car", report.Entities[0].Name)
	assert.Equal(t, demoOutput[2], report.Entities[0].Description)
	assert.Equal(t, "bus", report.Entities[1].Name)
	assert.Equal(t, demoOutput[7], report.Entities[1].Description)
	assert.InDelta(t, 62.5, *report.Entities[1].Earned, 1e-9)
}

func TestRun_LogsEachStep(t *testing.T) {
	sim, _, hook := newTestSimulator(t, FormatText)

	report, err := sim.Run(context.Background(), scenario.Demo())
	require.NoError(t, err)

	var steps int
	for _, entry := range hook.AllEntries() {
		assert.Equal(t, report.RunID, entry.Data["run_id"])
		if entry.Level == logrus.DebugLevel {
			steps++
			assert.Contains(t, entry.Data, "entity")
			assert.Contains(t, entry.Data, "op")
		}
	}
	assert.Equal(t, 8, steps)
	assert.Equal(t, "Scenario finished", hook.LastEntry().Message)
}

func TestRun_RunIDsAreUnique(t *testing.T) {
	sim, _, _ := newTestSimulator(t, FormatText)

	first, err := sim.Run(context.Background(), scenario.Demo())
	require.NoError(t, err)
	second, err := sim.Run(context.Background(), scenario.Demo())
	require.NoError(t, err)

	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestRun_JSONOutput(t *testing.T) {
	sim, out, _ := newTestSimulator(t, FormatJSON)

	_, err := sim.Run(context.Background(), scenario.Demo())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 8)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, float64(1), first["step"])
	assert.Equal(t, "car", first["entity"])
	assert.Equal(t, "vehicle", first["op"])
	assert.Equal(t, "vehicle", first["kind"])
	assert.NotContains(t, first, "passengers")

	var last StepResult
	require.NoError(t, json.Unmarshal([]byte(lines[7]), &last))
	assert.Equal(t, 8, last.Step)
	assert.Equal(t, engine.KindBus, last.Kind)
	assert.InDelta(t, 15.0, last.X, 1e-9)
	require.NotNil(t, last.Passengers)
	assert.Equal(t, 5, *last.Passengers)
	require.NotNil(t, last.Earned)
	assert.InDelta(t, 62.5, *last.Earned, 1e-9)
}

func TestRun_InvalidScenario(t *testing.T) {
	sim, out, _ := newTestSimulator(t, FormatText)

	sc := &scenario.Scenario{Name: "bad", Steps: []scenario.Step{
		{Entity: "car", Op: scenario.OpVehicle, Args: []any{0, 0, 0}},
		{Entity: "car", Op: scenario.OpEnter, Args: []any{1}},
	}}

	_, err := sim.Run(context.Background(), sc)
	assert.ErrorIs(t, err, scenario.ErrInvalidScenario)
	assert.Empty(t, out.String(), "nothing is printed for an invalid scenario")
}

func TestRun_Cancelled(t *testing.T) {
	sim, out, _ := newTestSimulator(t, FormatText)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sim.Run(ctx, scenario.Demo())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestRun_DescribeStep(t *testing.T) {
	sim, out, _ := newTestSimulator(t, FormatText)

	sc := &scenario.Scenario{Name: "look", Steps: []scenario.Step{
		{Entity: "b", Op: scenario.OpBus, Args: []any{1, 2, 3}},
		{Entity: "b", Op: scenario.OpDescribe},
		{Entity: "b", Op: scenario.OpDescribe},
	}}

	_, err := sim.Run(context.Background(), sc)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, lines[0], lines[1])
	assert.Equal(t, lines[1], lines[2])
}

type failingPrinter struct{}

func (failingPrinter) Print(StepResult) error { return errors.New("disk full") }

func TestRun_PrinterError(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	sim := NewSimulator(failingPrinter{}, logger)

	_, err := sim.Run(context.Background(), scenario.Demo())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestNewSimulator_Defaults(t *testing.T) {
	sim := NewSimulator(nil, nil)

	report, err := sim.Run(context.Background(), scenario.Demo())
	require.NoError(t, err)
	assert.Len(t, report.Entities, 2)
}

func TestNewPrinter_UnknownFormat(t *testing.T) {
	_, err := NewPrinter("xml", &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
