package scenario

// DemoName is the name of the built-in demonstration scenario
const DemoName = "demo"

// Demo returns the built-in demonstration: a car that moves and turns, then a
// bus that picks up passengers, drives, drops some off and drives again.
func Demo() *Scenario {
	return &Scenario{
		Name:        DemoName,
		Description: "A car moves and turns, then a bus carries passengers",
		Steps: []Step{
			{Entity: "car", Op: OpVehicle, Args: []any{10.0, 20.0, 45.0}},
			{Entity: "car", Op: OpMove, Args: []any{5.0}},
			{Entity: "car", Op: OpTurn, Args: []any{90.0}},
			{Entity: "bus", Op: OpBus, Args: []any{0.0, 0.0, 0.0}},
			{Entity: "bus", Op: OpEnter, Args: []any{10}},
			{Entity: "bus", Op: OpMove, Args: []any{10.0}},
			{Entity: "bus", Op: OpExit, Args: []any{5}},
			{Entity: "bus", Op: OpMove, Args: []any{5.0}},
		},
	}
}
