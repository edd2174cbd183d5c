// Command fleetsim drives vehicles and buses around the plane.
//
// With no arguments it runs the built-in demonstration: a car that moves and
// turns, then a bus that boards passengers and earns fares, printing every
// entity after each step. Named scenarios are read from the scenario directory.
//
// Commands:
//
//	run [name]          run the demo or a named scenario (default)
//	list                list scenarios in the scenario directory
//	validate <file>...  check scenario files and report every problem
//	analyze [name]      summarise a scenario and flag unusual steps
//
// Settings come from flags, the environment, or a .env file in the working
// directory.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/wricardo/fleetsim/fleet/service"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "fleetsim"
)

// main loads the environment, builds the command tree and runs it.
func main() {
	logger := logrus.StandardLogger()
	logger.SetOutput(os.Stderr)

	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			logger.WithError(err).Warn("Error loading .env file")
		}
	} else {
		logger.Debug("Loaded environment variables from .env file")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(os.Stdout, logger).Run(ctx, os.Args); err != nil {
		logger.WithError(err).Error("fleetsim failed")
		stop()
		os.Exit(1)
	}
}

// newApp builds the command tree. Simulation output goes to out and logs go to
// logger, so the two never mix.
func newApp(out io.Writer, logger *logrus.Logger) *cli.Command {
	a := &app{out: out, log: logger}

	return &cli.Command{
		Name:      AppName,
		Usage:     "drive vehicles and buses through scripted scenarios",
		Version:   Version,
		ArgsUsage: "[scenario]",
		Writer:    out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "scenario-dir",
				Value:   "scenarios",
				Usage:   "directory containing scenario files",
				Sources: cli.EnvVars("SCENARIO_DIR"),
			},
			&cli.StringFlag{
				Name:    "format",
				Value:   service.FormatText,
				Usage:   "output format: text or json",
				Sources: cli.EnvVars("OUTPUT_FORMAT"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "log level: debug, info, warn, error",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
			&cli.BoolFlag{
				Name:    "log-json",
				Usage:   "write logs as JSON",
				Sources: cli.EnvVars("LOG_JSON"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return ctx, setupLogging(logger, cmd.String("log-level"), cmd.Bool("log-json"))
		},
		Action: a.run,
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "run the demo or a named scenario",
				ArgsUsage: "[scenario]",
				Action:    a.run,
			},
			{
				Name:   "list",
				Usage:  "list scenarios in the scenario directory",
				Action: a.list,
			},
			{
				Name:      "validate",
				Usage:     "validate scenario files",
				ArgsUsage: "<file>...",
				Action:    a.validate,
			},
			{
				Name:      "analyze",
				Usage:     "summarise a scenario and flag unusual steps",
				ArgsUsage: "[scenario]",
				Action:    a.analyze,
			},
		},
	}
}

// setupLogging applies the level and formatter chosen on the command line
func setupLogging(logger *logrus.Logger, level string, asJSON bool) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logger.SetLevel(lvl)

	if asJSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return nil
}
