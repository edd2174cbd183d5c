package scenario

import "errors"

var (
	ErrScenarioNotFound = errors.New("scenario not found")
	ErrInvalidScenario  = errors.New("invalid scenario")
)

// Op is the operation a step performs
type Op string

const (
	OpVehicle  Op = "vehicle"
	OpBus      Op = "bus"
	OpMove     Op = "move"
	OpTurn     Op = "turn"
	OpEnter    Op = "enter"
	OpExit     Op = "exit"
	OpDescribe Op = "describe"
)

// arity is the number of arguments each op takes
var arity = map[Op]int{
	OpVehicle:  3,
	OpBus:      3,
	OpMove:     1,
	OpTurn:     1,
	OpEnter:    1,
	OpExit:     1,
	OpDescribe: 0,
}

// IsConstructor reports whether the op creates a new entity
func (o Op) IsConstructor() bool {
	return o == OpVehicle || o == OpBus
}

// IsPassengerOp reports whether the op only applies to a bus
func (o Op) IsPassengerOp() bool {
	return o == OpEnter || o == OpExit
}

// Step is a single operation applied to a named entity
type Step struct {
	Entity string `yaml:"entity" json:"entity"`
	Op     Op     `yaml:"op" json:"op"`
	Args   []any  `yaml:"args,omitempty" json:"args,omitempty"`
}

// Scenario is a named sequence of steps
type Scenario struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Steps       []Step `yaml:"steps" json:"steps"`
}

// Info summarises a scenario file for listings
type Info struct {
	Filename    string `json:"filename"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Steps       int    `json:"steps"`
	Entities    int    `json:"entities"`
}

// Entities returns the entity names in the order they are constructed
func (s *Scenario) Entities() []string {
	var names []string
	for _, step := range s.Steps {
		if step.Op.IsConstructor() {
			names = append(names, step.Entity)
		}
	}
	return names
}
