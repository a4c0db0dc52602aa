package model

// CoverageRecord is one source-file block of an LCOV report.
type CoverageRecord struct {
	Path       string `json:"path"` // as written in the report, either slash convention
	LinesFound int    `json:"lines_found"`
	LinesHit   int    `json:"lines_hit"`
}

// Percent returns the line coverage of the record. Records with no
// instrumentable lines report 0; callers drop them before aggregation.
func (r CoverageRecord) Percent() float64 {
	if r.LinesFound == 0 {
		return 0
	}
	return float64(r.LinesHit) / float64(r.LinesFound) * 100
}

// ReportEntry is a computed row of the final report.
type ReportEntry struct {
	Path       string  `json:"path"`
	Filename   string  `json:"filename"`
	Percent    float64 `json:"percent"`
	LinesHit   int     `json:"lines_hit"`
	LinesFound int     `json:"lines_found"`
}

// Report is the classified, sorted outcome of one analysis run.
type Report struct {
	Threshold  float64       `json:"threshold"`
	DisplayCap int           `json:"display_cap"`
	Below      []ReportEntry `json:"below"`
	Above      []ReportEntry `json:"above"`
}

// Failed is the number of files under the threshold.
func (r *Report) Failed() int {
	return len(r.Below)
}

// Shown returns the at/above entries that fit in the display cap.
func (r *Report) Shown() []ReportEntry {
	limit := max(r.DisplayCap, 0)
	if len(r.Above) <= limit {
		return r.Above
	}
	return r.Above[:limit]
}

// Hidden is the number of at/above entries omitted from display.
func (r *Report) Hidden() int {
	return len(r.Above) - len(r.Shown())
}
