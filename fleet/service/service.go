package service

import (
	"context"

	"github.com/wricardo/fleetsim/fleet/engine"
	"github.com/wricardo/fleetsim/fleet/scenario"
)

// Simulator defines the operations available on scenarios
type Simulator interface {
	// Run applies every step and prints the affected entity after each one
	Run(ctx context.Context, sc *scenario.Scenario) (*Report, error)

	// Analyze applies every step without printing and reports on the run
	Analyze(ctx context.Context, sc *scenario.Scenario) (*Analysis, error)
}

// StepResult is the state of one entity right after a step was applied
type StepResult struct {
	Step   int         `json:"step"`
	Entity string      `json:"entity"`
	Op     scenario.Op `json:"op"`
	engine.Snapshot

	// Description is the human-readable form of the snapshot
	Description string `json:"-"`
}

// EntityState is the final state of a named entity
type EntityState struct {
	Name string `json:"name"`
	engine.Snapshot
	Description string `json:"description"`
}

// Report summarises a completed run
type Report struct {
	RunID    string        `json:"run_id"`
	Scenario string        `json:"scenario"`
	Steps    int           `json:"steps"`
	Entities []EntityState `json:"entities"`
}

// Warning codes
const (
	WarnNegativeEnter = "negative_enter"
	WarnExitClamped   = "exit_clamped"
	WarnNegativeFare  = "negative_fare"
)

// Warning flags a step whose effect may not be what the author intended
type Warning struct {
	Step    int    `json:"step"`
	Entity  string `json:"entity"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// EntityAnalysis describes what happened to one entity over a run
type EntityAnalysis struct {
	EntityState
	PathLength float64 `json:"path_length"`
	Moves      int     `json:"moves"`
	Turns      int     `json:"turns"`
}

// Analysis is the outcome of Analyze
type Analysis struct {
	Scenario string           `json:"scenario"`
	Entities []EntityAnalysis `json:"entities"`
	Warnings []Warning        `json:"warnings"`
}
