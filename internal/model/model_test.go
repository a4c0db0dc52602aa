package model

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoverageRecordPercent(t *testing.T) {
	tests := []struct {
		name   string
		record CoverageRecord
		want   float64
	}{
		{"full", CoverageRecord{Path: "lib/a.py", LinesFound: 10, LinesHit: 10}, 100},
		{"partial", CoverageRecord{Path: "lib/b.py", LinesFound: 10, LinesHit: 4}, 40},
		{"none hit", CoverageRecord{Path: "lib/c.py", LinesFound: 7, LinesHit: 0}, 0},
		{"no lines", CoverageRecord{Path: "lib/d.py", LinesFound: 0, LinesHit: 3}, 0},
		{"hit exceeds found", CoverageRecord{Path: "lib/e.py", LinesFound: 4, LinesHit: 6}, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.record.Percent(), 1e-9)
		})
	}
}

func TestReportDisplayCap(t *testing.T) {
	above := make([]ReportEntry, 13)
	for i := range above {
		above[i] = ReportEntry{Filename: fmt.Sprintf("f%02d.py", i), Percent: 50 + float64(i)}
	}

	rep := &Report{DisplayCap: 10, Above: above}
	assert.Len(t, rep.Shown(), 10)
	assert.Equal(t, 3, rep.Hidden())
	assert.Equal(t, "f00.py", rep.Shown()[0].Filename)

	rep.DisplayCap = 20
	assert.Len(t, rep.Shown(), 13)
	assert.Equal(t, 0, rep.Hidden())

	rep.DisplayCap = 0
	assert.Empty(t, rep.Shown())
	assert.Equal(t, 13, rep.Hidden())

	rep.DisplayCap = -1
	assert.NotPanics(t, func() { rep.Shown() })
	assert.Empty(t, rep.Shown())
	assert.Equal(t, 13, rep.Hidden())
}

func TestReportFailed(t *testing.T) {
	rep := &Report{Below: []ReportEntry{{Filename: "b.py", Percent: 40}}}
	assert.Equal(t, 1, rep.Failed())
	assert.Equal(t, 0, (&Report{}).Failed())
}

func TestCodeFor(t *testing.T) {
	tests := []struct {
		err  error
		want ErrorCode
	}{
		{nil, ECNone},
		{fmt.Errorf("open coverage/lcov.info: %w", ErrReportUnreadable), ECReadError},
		{fmt.Errorf("include %q: %w", "[", ErrInvalidPattern), ECInvalidPattern},
		{ErrUnknownFormat, ECUnknownFormat},
		{ErrInvalidThreshold, ECConfigError},
		{ErrInvalidDisplayCap, ECConfigError},
		{ErrNoMarkers, ECConfigError},
		{fmt.Errorf("boom"), ECUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CodeFor(tt.err), "error: %v", tt.err)
	}
}
