// Package filter decides which report paths count as library code.
package filter

import (
	"fmt"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/oxhq/covgate/internal/model"
)

// DefaultMarkers identify a library directory in either slash convention.
var DefaultMarkers = []string{"lib/", `lib\`}

// Filter keeps paths that contain a library marker and pass the optional
// include/exclude globs.
type Filter struct {
	Markers []string
	Include []string
	Exclude []string
}

// New builds a Filter, validating every glob.
func New(markers, include, exclude []string) (*Filter, error) {
	if len(markers) == 0 {
		return nil, model.ErrNoMarkers
	}

	for _, group := range [][]string{include, exclude} {
		for _, pattern := range group {
			if !doublestar.ValidatePattern(pattern) {
				return nil, fmt.Errorf("%w: %q", model.ErrInvalidPattern, pattern)
			}
		}
	}

	return &Filter{
		Markers: markers,
		Include: include,
		Exclude: exclude,
	}, nil
}

// Match reports whether p is retained.
func (f *Filter) Match(p string) bool {
	if !f.hasMarker(p) {
		return false
	}

	normalized := strings.ReplaceAll(p, `\`, "/")

	if len(f.Include) > 0 && !matchAny(normalized, f.Include) {
		return false
	}
	return !matchAny(normalized, f.Exclude)
}

// Apply returns the records whose path matches, in input order.
func (f *Filter) Apply(records []model.CoverageRecord) []model.CoverageRecord {
	kept := make([]model.CoverageRecord, 0, len(records))
	for _, rec := range records {
		if f.Match(rec.Path) {
			kept = append(kept, rec)
		}
	}
	return kept
}

func (f *Filter) hasMarker(p string) bool {
	for _, marker := range f.Markers {
		if strings.Contains(p, marker) {
			return true
		}
	}
	return false
}

func matchAny(p string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchPattern(p, pattern) {
			return true
		}
	}
	return false
}

// matchPattern matches the full path, and the base name for patterns
// without a separator.
func matchPattern(p, pattern string) bool {
	if matched, err := doublestar.Match(pattern, p); err == nil && matched {
		return true
	}

	if !strings.Contains(pattern, "/") {
		if matched, err := doublestar.Match(pattern, path.Base(p)); err == nil && matched {
			return true
		}
	}

	return false
}
