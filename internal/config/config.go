package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/oxhq/covgate/internal/filter"
	"github.com/oxhq/covgate/internal/model"
	"github.com/oxhq/covgate/internal/render"
	"github.com/oxhq/covgate/internal/report"
)

// Environment variables read by LoadConfig.
const (
	EnvInput      = "COVGATE_INPUT"
	EnvThreshold  = "COVGATE_THRESHOLD"
	EnvMarkers    = "COVGATE_MARKERS"
	EnvInclude    = "COVGATE_INCLUDE"
	EnvExclude    = "COVGATE_EXCLUDE"
	EnvMaxDisplay = "COVGATE_MAX_DISPLAY"
	EnvFormat     = "COVGATE_FORMAT"
	EnvDebug      = "COVGATE_DEBUG"
	EnvNoColor    = "NO_COLOR"
)

// DefaultInput is where coverage tools conventionally write the LCOV report.
const DefaultInput = "coverage/lcov.info"

// Config holds the application's configuration.
type Config struct {
	Input      string
	Threshold  float64
	Markers    []string
	Include    []string
	Exclude    []string
	DisplayCap int
	Format     string
	NoColor    bool
	Debug      bool
}

// Default returns the built-in gate settings.
func Default() *Config {
	return &Config{
		Input:      DefaultInput,
		Threshold:  report.DefaultThreshold,
		Markers:    append([]string(nil), filter.DefaultMarkers...),
		DisplayCap: report.DefaultDisplayCap,
		Format:     render.FormatText,
	}
}

// Load reads the given dotenv files (".env" when none are named) into the
// process environment, then builds the configuration from it. Missing
// dotenv files are not an error.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("loading %s: %w", file, err)
		}
	}

	return LoadConfig(), nil
}

// LoadConfig loads configuration from environment variables. Unparseable
// values are logged and the default kept.
func LoadConfig() *Config {
	cfg := Default()

	if v := os.Getenv(EnvInput); v != "" {
		cfg.Input = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		cfg.Format = v
	}

	if v := os.Getenv(EnvThreshold); v != "" {
		if threshold, err := strconv.ParseFloat(strings.TrimSuffix(v, "%"), 64); err == nil && !math.IsNaN(threshold) {
			cfg.Threshold = threshold
		} else {
			slog.Warn("ignoring invalid environment value", "name", EnvThreshold, "value", v)
		}
	}

	if v := os.Getenv(EnvMaxDisplay); v != "" {
		if maxDisplay, err := strconv.Atoi(v); err == nil && maxDisplay >= 0 {
			cfg.DisplayCap = maxDisplay
		} else {
			slog.Warn("ignoring invalid environment value", "name", EnvMaxDisplay, "value", v)
		}
	}

	if markers := splitList(os.Getenv(EnvMarkers)); len(markers) > 0 {
		cfg.Markers = markers
	}
	cfg.Include = splitList(os.Getenv(EnvInclude))
	cfg.Exclude = splitList(os.Getenv(EnvExclude))

	// https://no-color.org: any non-empty value disables colour.
	cfg.NoColor = os.Getenv(EnvNoColor) != ""

	if v := os.Getenv(EnvDebug); v != "" {
		if debug, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = debug
		}
	}

	return cfg
}

// Validate checks ranges that flags and environment cannot enforce.
func (c *Config) Validate() error {
	if math.IsNaN(c.Threshold) || c.Threshold < 0 || c.Threshold > 100 {
		return fmt.Errorf("%w: got %g", model.ErrInvalidThreshold, c.Threshold)
	}
	if c.DisplayCap < 0 {
		return fmt.Errorf("%w: got %d", model.ErrInvalidDisplayCap, c.DisplayCap)
	}
	if len(c.Markers) == 0 {
		return model.ErrNoMarkers
	}
	if _, err := render.New(c.Format, false); err != nil {
		return err
	}
	return nil
}

// Options turns the configuration into analysis options.
func (c *Config) Options() (report.Options, error) {
	f, err := filter.New(c.Markers, c.Include, c.Exclude)
	if err != nil {
		return report.Options{}, err
	}

	return report.Options{
		Threshold:  c.Threshold,
		DisplayCap: c.DisplayCap,
		Filter:     f,
	}, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
