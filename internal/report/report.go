// Package report aggregates coverage records into a classified report.
package report

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/oxhq/covgate/internal/filter"
	"github.com/oxhq/covgate/internal/model"
)

const (
	DefaultThreshold  = 50.0
	DefaultDisplayCap = 10
)

// Options control one analysis.
type Options struct {
	Threshold  float64
	DisplayCap int
	Filter     *filter.Filter // nil keeps every record
}

// Analyze filters, aggregates, sorts and classifies records.
//
// Records for the same path are aggregated last-write-wins. Entries are
// ordered by ascending percentage, then filename, then path. An entry
// belongs to Below when its percentage is strictly under the threshold.
func Analyze(records []model.CoverageRecord, opts Options) *model.Report {
	if opts.Filter != nil {
		records = opts.Filter.Apply(records)
	}

	byPath := make(map[string]model.CoverageRecord, len(records))
	for _, rec := range records {
		if rec.LinesFound <= 0 {
			continue
		}
		if rec.LinesHit > rec.LinesFound {
			slog.Warn("lines hit exceeds lines found",
				"path", rec.Path, "hit", rec.LinesHit, "found", rec.LinesFound)
		}
		if prev, ok := byPath[rec.Path]; ok {
			slog.Warn("duplicate source file, keeping last block",
				"path", rec.Path,
				"previous", prev.Percent(),
				"current", rec.Percent(),
			)
		}
		byPath[rec.Path] = rec
	}

	entries := make([]model.ReportEntry, 0, len(byPath))
	for _, rec := range byPath {
		entries = append(entries, newEntry(rec))
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Percent != b.Percent {
			return a.Percent < b.Percent
		}
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		return a.Path < b.Path
	})

	rep := &model.Report{
		Threshold:  opts.Threshold,
		DisplayCap: opts.DisplayCap,
		Below:      []model.ReportEntry{},
		Above:      []model.ReportEntry{},
	}
	for _, e := range entries {
		if e.Percent < opts.Threshold {
			rep.Below = append(rep.Below, e)
		} else {
			rep.Above = append(rep.Above, e)
		}
	}

	return rep
}

func newEntry(rec model.CoverageRecord) model.ReportEntry {
	return model.ReportEntry{
		Path:       rec.Path,
		Filename:   Filename(rec.Path),
		Percent:    rec.Percent(),
		LinesHit:   rec.LinesHit,
		LinesFound: rec.LinesFound,
	}
}

// Filename strips the directory prefix from p. Backslash-separated paths
// are split on backslashes, everything else on forward slashes.
func Filename(p string) string {
	sep := "/"
	if strings.Contains(p, `\`) {
		sep = `\`
	}
	return p[strings.LastIndex(p, sep)+1:]
}
