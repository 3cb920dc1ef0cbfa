// Package app wires the CLI, logger and runners together for a spec binary.
package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/zurustar/ebispec/pkg/cli"
	"github.com/zurustar/ebispec/pkg/logger"
	"github.com/zurustar/ebispec/pkg/scene"
	"github.com/zurustar/ebispec/pkg/spec"
)

// Application runs a registered suite according to command line arguments.
type Application struct {
	config   *cli.Config
	log      *slog.Logger
	registry *spec.Registry
}

// New creates an application for the given registry.
func New(registry *spec.Registry) *Application {
	return &Application{
		registry: registry,
	}
}

// Run parses args and executes the suite. The returned summary is the final
// tally; callers typically exit non-zero when it contains failures.
func (app *Application) Run(args []string) (spec.Summary, error) {
	config, err := cli.ParseArgs(args)
	if err != nil {
		return spec.Summary{}, fmt.Errorf("failed to parse args: %w", err)
	}
	app.config = config

	if app.config.ShowHelp {
		cli.PrintHelp()
		return spec.Summary{}, nil
	}

	if err := logger.Init(app.config.LogLevel); err != nil {
		return spec.Summary{}, fmt.Errorf("failed to initialize logger: %w", err)
	}
	app.log = logger.Get()

	app.log.Info("spec runner started",
		"registered", app.registry.Len(),
		"headless", app.config.Headless,
		"timeout", app.config.Timeout)

	root := scene.NewNode("root", nil)
	reporter := spec.NewReporter(os.Stdout, !app.config.NoColor)
	sched := spec.NewScheduler(app.registry, root, reporter)

	if app.config.Headless {
		if err := spec.RunHeadless(sched, spec.DefaultFrameStep, app.config.Timeout); err != nil {
			return sched.Summary(), fmt.Errorf("headless run failed: %w", err)
		}
	} else {
		if err := spec.Run(sched, root, app.config.Timeout); err != nil {
			return sched.Summary(), fmt.Errorf("windowed run failed: %w", err)
		}
	}

	sum := sched.Summary()
	app.log.Info("spec runner finished", "passes", sum.Passes, "failures", sum.Failures)
	return sum, nil
}
