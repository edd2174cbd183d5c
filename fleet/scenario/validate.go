package scenario

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"
	"go.uber.org/multierr"

	"github.com/wricardo/fleetsim/fleet/engine"
)

// maxExactInt is the largest integer a float64 holds exactly
const maxExactInt = 1 << 53

// Float returns argument i as a finite number
func (s Step) Float(i int) (float64, error) {
	if i < 0 || i >= len(s.Args) {
		return 0, fmt.Errorf("%s: missing argument %d", s.Op, i+1)
	}

	raw := s.Args[i]
	switch raw.(type) {
	case nil, bool:
		return 0, fmt.Errorf("%s: argument %d must be a number, got %v", s.Op, i+1, raw)
	}

	v, err := cast.ToFloat64E(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: argument %d must be a number: %w", s.Op, i+1, err)
	}
	if err := engine.CheckFinite(fmt.Sprintf("%s argument %d", s.Op, i+1), v); err != nil {
		return 0, err
	}
	return v, nil
}

// Int returns argument i as a whole number
func (s Step) Int(i int) (int, error) {
	v, err := s.Float(i)
	if err != nil {
		return 0, err
	}
	if v != math.Trunc(v) || math.Abs(v) > maxExactInt {
		return 0, fmt.Errorf("%w: %s argument %d must be a whole number, got %v", engine.ErrInvalidArgument, s.Op, i+1, v)
	}
	return int(v), nil
}

// Validate checks a scenario for correctness and reports every problem found.
// Each problem wraps ErrInvalidScenario.
func Validate(sc *Scenario) error {
	if sc == nil {
		return fmt.Errorf("%w: scenario is nil", ErrInvalidScenario)
	}

	var errs error
	if strings.TrimSpace(sc.Name) == "" {
		errs = multierr.Append(errs, fmt.Errorf("%w: name is required", ErrInvalidScenario))
	}
	if len(sc.Steps) == 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: at least one step is required", ErrInvalidScenario))
	}

	// Track the kind of each entity as it would be after every step
	kinds := make(map[string]engine.Kind)
	for i, step := range sc.Steps {
		if err := validateStep(step, kinds); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%w: step %d: %w", ErrInvalidScenario, i+1, err))
		}
	}

	return errs
}

func validateStep(step Step, kinds map[string]engine.Kind) error {
	if strings.TrimSpace(step.Entity) == "" {
		return fmt.Errorf("entity is required")
	}

	want, ok := arity[step.Op]
	if !ok {
		return fmt.Errorf("unknown op %q", step.Op)
	}

	kind, exists := kinds[step.Entity]
	switch {
	case step.Op.IsConstructor():
		if exists {
			return fmt.Errorf("entity %q already exists", step.Entity)
		}
		// Register even if the arguments are bad so later steps are not
		// reported as referring to a missing entity
		if step.Op == OpBus {
			kinds[step.Entity] = engine.KindBus
		} else {
			kinds[step.Entity] = engine.KindVehicle
		}
	case !exists:
		return fmt.Errorf("entity %q is used before it is created", step.Entity)
	case step.Op.IsPassengerOp() && kind != engine.KindBus:
		return fmt.Errorf("%s needs a bus but %q is a %s", step.Op, step.Entity, kind)
	}

	if len(step.Args) != want {
		return fmt.Errorf("%s takes %d argument(s), got %d", step.Op, want, len(step.Args))
	}

	for i := range step.Args {
		var err error
		if step.Op.IsPassengerOp() {
			_, err = step.Int(i)
		} else {
			_, err = step.Float(i)
		}
		if err != nil {
			return err
		}
	}

	return nil
}
