// Command covgate gates a build on per-file line coverage from an LCOV
// report. The exit status is the number of library files under the
// threshold.
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/oxhq/covgate/internal/config"
	"github.com/oxhq/covgate/internal/lcov"
	"github.com/oxhq/covgate/internal/model"
	"github.com/oxhq/covgate/internal/render"
	"github.com/oxhq/covgate/internal/report"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const (
	// exitFatal marks a run that produced no report.
	exitFatal = 255
	// maxFailedExit keeps large failure counts from wrapping into exitFatal or 0.
	maxFailedExit = 254
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes covgate and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	level := new(slog.LevelVar)
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err, "code", model.CodeFor(err))
		return exitFatal
	}

	failed := 0
	cmd := newRootCommand(cfg, level, stdout, &failed)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		slog.Error("failed to run", "error", err, "code", model.CodeFor(err))
		return exitFatal
	}

	return min(failed, maxFailedExit)
}

func newRootCommand(cfg *config.Config, level *slog.LevelVar, stdout io.Writer, failed *int) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "covgate [report]",
		Short: "Fail a build when library files fall below a line-coverage threshold",
		Long: `covgate reads an LCOV report, keeps the library files (paths containing
lib/ or lib\ by default), and lists them below and at/above the threshold.
The exit status is the number of files below the threshold.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			if cfg.Debug {
				level.Set(slog.LevelDebug)
			}
			if len(args) == 1 {
				cfg.Input = args[0]
			}

			n, err := gate(cfg, stdout)
			if err != nil {
				return err
			}
			*failed = n
			return nil
		},
	}

	cfg.BindFlags(cmd.Flags())

	return cmd
}

// gate runs one analysis and writes the report. It returns the number of
// files below the threshold.
func gate(cfg *config.Config, stdout io.Writer) (int, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}

	opts, err := cfg.Options()
	if err != nil {
		return 0, err
	}

	renderer, err := render.New(cfg.Format, !cfg.NoColor && !color.NoColor)
	if err != nil {
		return 0, err
	}

	records, _, err := lcov.ParseFile(cfg.Input)
	if err != nil {
		return 0, err
	}

	rep := report.Analyze(records, opts)
	slog.Debug("analysis complete",
		"retained", len(rep.Below)+len(rep.Above),
		"below", len(rep.Below),
		"threshold", rep.Threshold,
	)

	if err := renderer.Render(stdout, rep); err != nil {
		return 0, err
	}

	return rep.Failed(), nil
}
