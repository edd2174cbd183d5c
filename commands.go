package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
	"go.uber.org/multierr"

	"github.com/wricardo/fleetsim/fleet/scenario"
	"github.com/wricardo/fleetsim/fleet/service"
)

// app holds what every command action needs
type app struct {
	out io.Writer
	log *logrus.Logger
}

// run executes a scenario and prints each step
func (a *app) run(ctx context.Context, cmd *cli.Command) error {
	sc, err := a.loadScenario(cmd)
	if err != nil {
		return err
	}

	printer, err := service.NewPrinter(cmd.String("format"), a.out)
	if err != nil {
		return err
	}

	report, err := service.NewSimulator(printer, a.log).Run(ctx, sc)
	if err != nil {
		return fmt.Errorf("failed to run scenario %s: %w", sc.Name, err)
	}

	a.log.WithFields(logrus.Fields{
		"run_id":   report.RunID,
		"entities": len(report.Entities),
	}).Debug("Run complete")
	return nil
}

// list prints the scenarios found in the scenario directory
func (a *app) list(ctx context.Context, cmd *cli.Command) error {
	manager, err := scenario.NewManager(cmd.String("scenario-dir"))
	if err != nil {
		return err
	}

	infos, err := manager.List()
	if err != nil {
		return err
	}

	overridden := false
	for _, info := range infos {
		if info.ID == scenario.DemoName {
			overridden = true
		}
	}
	if !overridden {
		demo := manager.Default()
		infos = append([]*scenario.Info{{
			Filename:    "(built-in)",
			ID:          scenario.DemoName,
			Name:        demo.Name,
			Description: demo.Description,
			Steps:       len(demo.Steps),
			Entities:    len(demo.Entities()),
		}}, infos...)
	}

	if cmd.String("format") == service.FormatJSON {
		return json.NewEncoder(a.out).Encode(infos)
	}

	for _, info := range infos {
		fmt.Fprintf(a.out, "%-20s %-20s %3d steps %2d entities  %s\n",
			info.ID, info.Filename, info.Steps, info.Entities, info.Description)
	}
	return nil
}

// validate checks each file given on the command line and reports every problem
func (a *app) validate(ctx context.Context, cmd *cli.Command) error {
	files := cmd.Args().Slice()
	if len(files) == 0 {
		return fmt.Errorf("validate needs at least one scenario file")
	}

	failed := 0
	for _, path := range files {
		errs := validateFile(path)
		if len(errs) == 0 {
			fmt.Fprintf(a.out, "OK   %s\n", path)
			continue
		}

		failed++
		fmt.Fprintf(a.out, "FAIL %s\n", path)
		for _, err := range errs {
			fmt.Fprintf(a.out, "     - %v\n", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d scenario file(s) failed validation", failed, len(files))
	}
	return nil
}

// analyze prints per-entity totals and warnings for a scenario
func (a *app) analyze(ctx context.Context, cmd *cli.Command) error {
	sc, err := a.loadScenario(cmd)
	if err != nil {
		return err
	}

	analysis, err := service.NewSimulator(nil, a.log).Analyze(ctx, sc)
	if err != nil {
		return fmt.Errorf("failed to analyze scenario %s: %w", sc.Name, err)
	}

	if cmd.String("format") == service.FormatJSON {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(analysis)
	}

	fmt.Fprintf(a.out, "=== Analyzing %s ===\n", analysis.Scenario)
	for _, e := range analysis.Entities {
		fmt.Fprintf(a.out, "%s: %s\n", e.Name, e.Description)
		fmt.Fprintf(a.out, "   path length %.2f over %d move(s), %d turn(s)\n", e.PathLength, e.Moves, e.Turns)
	}

	if len(analysis.Warnings) == 0 {
		fmt.Fprintln(a.out, "No warnings")
		return nil
	}
	fmt.Fprintf(a.out, "%d warning(s):\n", len(analysis.Warnings))
	for _, w := range analysis.Warnings {
		fmt.Fprintf(a.out, "   step %d (%s) [%s]: %s\n", w.Step, w.Entity, w.Code, w.Message)
	}
	return nil
}

// loadScenario resolves the scenario named by the first argument. A path to an
// existing file is loaded directly; anything else is looked up in the scenario
// directory. The built-in demo is used when no name is given.
func (a *app) loadScenario(cmd *cli.Command) (*scenario.Scenario, error) {
	name := cmd.Args().First()
	if name == "" {
		name = scenario.DemoName
	}

	if filepath.Ext(name) != "" {
		if _, err := os.Stat(name); err == nil {
			return scenario.LoadFile(name)
		}
	}

	manager, err := scenario.NewManager(cmd.String("scenario-dir"))
	if err != nil {
		if name == scenario.DemoName {
			a.log.WithError(err).Debug("Scenario directory unavailable, using built-in demo")
			return scenario.Demo(), nil
		}
		return nil, err
	}

	return manager.Load(name)
}

// validateFile returns every problem found in a scenario file
func validateFile(path string) []error {
	data, err := os.ReadFile(path)
	if err != nil {
		return []error{fmt.Errorf("failed to read file: %w", err)}
	}

	sc, err := scenario.Decode(data)
	if err != nil {
		return []error{err}
	}

	return multierr.Errors(scenario.Validate(sc))
}
