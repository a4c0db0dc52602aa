// Package lcov reads LCOV tracefiles into per-source-file coverage records.
//
// Only the SF, LF and LH records are interpreted. Every other record type
// (TN, FN, FNDA, DA, BRDA, ...) is accepted and ignored.
package lcov

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/oxhq/covgate/internal/model"
)

const (
	prefixSourceFile = "SF:"
	prefixLinesFound = "LF:"
	prefixLinesHit   = "LH:"
	endOfRecord      = "end_of_record"

	maxLineSize = 1024 * 1024
)

// Stats counts what a parse saw.
type Stats struct {
	Blocks  int // blocks seen, including skipped ones
	Records int // blocks turned into records
	Skipped int // blocks dropped as incomplete or empty
}

// block accumulates the fields of one record between terminators.
type block struct {
	line     int // line number of the first line of the block
	path     string
	found    int
	hit      int
	hasPath  bool
	hasFound bool
	hasHit   bool
	empty    bool
}

func newBlock(line int) *block {
	return &block{line: line, empty: true}
}

// add interprets one trimmed line. Only the first occurrence of each
// record type counts.
func (b *block) add(line string) {
	if line == "" {
		return
	}
	b.empty = false

	switch {
	case strings.HasPrefix(line, prefixSourceFile):
		if !b.hasPath {
			b.path = strings.TrimSpace(strings.TrimPrefix(line, prefixSourceFile))
			b.hasPath = b.path != ""
		}
	case strings.HasPrefix(line, prefixLinesFound):
		if !b.hasFound {
			b.found, b.hasFound = parseCount(strings.TrimPrefix(line, prefixLinesFound))
		}
	case strings.HasPrefix(line, prefixLinesHit):
		if !b.hasHit {
			b.hit, b.hasHit = parseCount(strings.TrimPrefix(line, prefixLinesHit))
		}
	}
}

// record converts the block, reporting why it was dropped when it is not usable.
func (b *block) record() (model.CoverageRecord, string) {
	switch {
	case !b.hasPath:
		return model.CoverageRecord{}, "missing SF"
	case !b.hasFound:
		return model.CoverageRecord{}, "missing or invalid LF"
	case !b.hasHit:
		return model.CoverageRecord{}, "missing or invalid LH"
	case b.found == 0:
		return model.CoverageRecord{}, "no instrumented lines"
	}

	return model.CoverageRecord{
		Path:       b.path,
		LinesFound: b.found,
		LinesHit:   b.hit,
	}, ""
}

func parseCount(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// Parse reads an LCOV report and returns one record per usable block, in
// report order. Incomplete blocks are skipped without error.
func Parse(r io.Reader) ([]model.CoverageRecord, Stats, error) {
	var (
		records []model.CoverageRecord
		stats   Stats
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	cur := newBlock(1)

	flush := func() {
		if cur.empty {
			return
		}
		stats.Blocks++

		rec, reason := cur.record()
		if reason != "" {
			stats.Skipped++
			slog.Debug("skipping lcov block", "line", cur.line, "path", cur.path, "reason", reason)
			return
		}

		stats.Records++
		records = append(records, rec)
	}

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == endOfRecord {
			flush()
			cur = newBlock(lineNo + 1)
			continue
		}
		cur.add(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("reading line %d: %w", lineNo+1, err)
	}

	// Content after the last terminator still forms a block.
	flush()

	return records, stats, nil
}

// ParseFile opens and parses the report at path. Open and read failures
// wrap model.ErrReportUnreadable.
func ParseFile(path string) ([]model.CoverageRecord, Stats, error) {
	f, err := os.Open(path) //nolint:gosec // path is the user-selected report
	if err != nil {
		return nil, Stats{}, fmt.Errorf("%w: %w", model.ErrReportUnreadable, err)
	}
	defer f.Close()

	records, stats, err := Parse(f)
	if err != nil {
		return nil, stats, fmt.Errorf("%w: %s: %w", model.ErrReportUnreadable, path, err)
	}

	slog.Debug("parsed lcov report",
		"path", path,
		"blocks", stats.Blocks,
		"records", stats.Records,
		"skipped", stats.Skipped,
	)

	return records, stats, nil
}
