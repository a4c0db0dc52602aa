package config

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/oxhq/covgate/internal/render"
)

// BindFlags registers the command-line flags on fs, writing into c. The
// current values of c become the flag defaults, so flags given on the
// command line override the environment.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.Input, "input", "i", c.Input, "Path to the LCOV report.")
	fs.Float64VarP(&c.Threshold, "threshold", "t", c.Threshold, "Minimum line coverage percentage per file.")
	fs.StringSliceVarP(&c.Markers, "marker", "m", c.Markers, "Path substring marking library files (repeatable).")
	fs.StringSliceVar(&c.Include, "include", c.Include, "Only report library files matching these globs.")
	fs.StringSliceVar(&c.Exclude, "exclude", c.Exclude, "Skip library files matching these globs.")
	fs.IntVarP(&c.DisplayCap, "max-display", "n", c.DisplayCap, "Maximum passing files to list.")
	fs.StringVarP(&c.Format, "format", "f", c.Format, "Output format: "+strings.Join(render.Formats, ", ")+".")
	fs.BoolVar(&c.NoColor, "no-color", c.NoColor, "Disable coloured output.")
	fs.BoolVarP(&c.Debug, "verbose", "v", c.Debug, "Log parsing diagnostics to stderr.")
}
