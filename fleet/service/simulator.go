package service

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/wricardo/fleetsim/fleet/engine"
	"github.com/wricardo/fleetsim/fleet/registry"
	"github.com/wricardo/fleetsim/fleet/scenario"
)

// simulator implements the Simulator interface
type simulator struct {
	printer Printer
	log     logrus.FieldLogger
}

// NewSimulator creates a simulator that prints step results with printer
func NewSimulator(printer Printer, log logrus.FieldLogger) Simulator {
	if printer == nil {
		printer = Discard()
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &simulator{
		printer: printer,
		log:     log,
	}
}

// Run validates the scenario and applies its steps in order
func (s *simulator) Run(ctx context.Context, sc *scenario.Scenario) (*Report, error) {
	if err := scenario.Validate(sc); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	logger := s.log.WithFields(logrus.Fields{
		"run_id":   runID,
		"scenario": sc.Name,
	})
	logger.WithField("steps", len(sc.Steps)).Info("Starting scenario")

	reg := registry.New()
	for i, step := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("scenario %s stopped before step %d: %w", sc.Name, i+1, err)
		}

		e, err := apply(reg, step)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}

		result := StepResult{
			Step:        i + 1,
			Entity:      step.Entity,
			Op:          step.Op,
			Snapshot:    e.Snapshot(),
			Description: e.Describe(),
		}

		logger.WithFields(logrus.Fields{
			"step":   result.Step,
			"entity": step.Entity,
			"op":     step.Op,
		}).Debug(result.Description)

		if err := s.printer.Print(result); err != nil {
			return nil, fmt.Errorf("failed to print step %d: %w", i+1, err)
		}
	}

	report := &Report{
		RunID:    runID,
		Scenario: sc.Name,
		Steps:    len(sc.Steps),
		Entities: finalStates(reg),
	}

	logger.WithField("entities", len(report.Entities)).Info("Scenario finished")
	return report, nil
}

// Analyze applies the scenario without printing and collects per-entity
// totals and warnings
func (s *simulator) Analyze(ctx context.Context, sc *scenario.Scenario) (*Analysis, error) {
	if err := scenario.Validate(sc); err != nil {
		return nil, err
	}

	type totals struct {
		path  float64
		moves int
		turns int
	}

	reg := registry.New()
	stats := make(map[string]*totals)
	warnings := []Warning{}

	warn := func(step int, entity, code, format string, args ...any) {
		warnings = append(warnings, Warning{
			Step:    step,
			Entity:  entity,
			Code:    code,
			Message: fmt.Sprintf(format, args...),
		})
	}

	for i, step := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("analysis of %s stopped before step %d: %w", sc.Name, i+1, err)
		}
		n := i + 1

		// Inspect the state before the step is applied
		switch step.Op {
		case scenario.OpEnter:
			if num, _ := step.Int(0); num < 0 {
				warn(n, step.Entity, WarnNegativeEnter,
					"enter(%d) lowers the passenger count without the floor exit applies", num)
			}
		case scenario.OpExit:
			num, _ := step.Int(0)
			if bus, err := reg.Bus(step.Entity); err == nil && bus.Passengers()-num < 0 {
				warn(n, step.Entity, WarnExitClamped,
					"exit(%d) with %d on board was clamped to 0", num, bus.Passengers())
			}
		case scenario.OpMove:
			distance, _ := step.Float(0)
			if bus, err := reg.Bus(step.Entity); err == nil {
				if fare := engine.Fare(bus.Passengers(), distance); fare < 0 {
					warn(n, step.Entity, WarnNegativeFare,
						"move(%g) with %d passengers changes earnings by %.2f", distance, bus.Passengers(), fare)
				}
			}
		}

		if _, err := apply(reg, step); err != nil {
			return nil, fmt.Errorf("step %d: %w", n, err)
		}

		t, ok := stats[step.Entity]
		if !ok {
			t = &totals{}
			stats[step.Entity] = t
		}
		switch step.Op {
		case scenario.OpMove:
			distance, _ := step.Float(0)
			t.path += math.Abs(distance)
			t.moves++
		case scenario.OpTurn:
			t.turns++
		}
	}

	analysis := &Analysis{
		Scenario: sc.Name,
		Warnings: warnings,
	}
	for _, state := range finalStates(reg) {
		t := stats[state.Name]
		analysis.Entities = append(analysis.Entities, EntityAnalysis{
			EntityState: state,
			PathLength:  t.path,
			Moves:       t.moves,
			Turns:       t.turns,
		})
	}

	s.log.WithFields(logrus.Fields{
		"scenario": sc.Name,
		"warnings": len(warnings),
	}).Info("Scenario analysed")

	return analysis, nil
}

// apply executes one step against the registry and returns the entity it touched
func apply(reg *registry.Registry, step scenario.Step) (engine.Entity, error) {
	switch step.Op {
	case scenario.OpVehicle, scenario.OpBus:
		var coords [3]float64
		for i := range coords {
			v, err := step.Float(i)
			if err != nil {
				return nil, err
			}
			coords[i] = v
		}

		var e engine.Entity
		if step.Op == scenario.OpBus {
			e = engine.NewBus(coords[0], coords[1], coords[2])
		} else {
			e = engine.NewVehicle(coords[0], coords[1], coords[2])
		}
		if err := reg.Add(step.Entity, e); err != nil {
			return nil, err
		}
		return e, nil

	case scenario.OpMove, scenario.OpTurn, scenario.OpDescribe:
		e, err := reg.Get(step.Entity)
		if err != nil {
			return nil, err
		}
		if step.Op == scenario.OpDescribe {
			return e, nil
		}

		v, err := step.Float(0)
		if err != nil {
			return nil, err
		}
		if step.Op == scenario.OpMove {
			e.Move(v)
		} else {
			e.Turn(v)
		}
		return e, nil

	case scenario.OpEnter, scenario.OpExit:
		bus, err := reg.Bus(step.Entity)
		if err != nil {
			return nil, err
		}

		num, err := step.Int(0)
		if err != nil {
			return nil, err
		}
		if step.Op == scenario.OpEnter {
			bus.Enter(num)
		} else {
			bus.Exit(num)
		}
		return bus, nil

	default:
		return nil, fmt.Errorf("unknown op %q", step.Op)
	}
}

func finalStates(reg *registry.Registry) []EntityState {
	states := make([]EntityState, 0, reg.Len())
	for _, named := range reg.List() {
		states = append(states, EntityState{
			Name:        named.Name,
			Snapshot:    named.Entity.Snapshot(),
			Description: named.Entity.Describe(),
		})
	}
	return states
}
