// Package scenario defines scripted sequences of entity operations and loads
// them from disk.
//
// Scenario Format:
//
// Scenarios are YAML (or JSON) files in the scenario directory. Each names its
// entities on the step that constructs them and refers to them by that name
// afterwards:
//
//	name: demo
//	description: one car, one bus
//	steps:
//	  - {entity: car, op: vehicle, args: [10, 20, 45]}
//	  - {entity: car, op: move, args: [5]}
//	  - {entity: bus, op: bus, args: [0, 0, 0]}
//	  - {entity: bus, op: enter, args: [10]}
//
// Arguments are positional and loosely typed, so "5" and 5 are the same
// distance. Validate reports every problem in a scenario at once.
//
// Usage:
//
//	manager, err := scenario.NewManager("scenarios")
//	if err != nil {
//		log.Fatal(err)
//	}
//	sc, err := manager.Load("rush_hour")
package scenario
