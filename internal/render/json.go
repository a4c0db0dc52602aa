//nolint:tagliatelle
package render

import (
	"encoding/json"
	"io"

	"github.com/oxhq/covgate/internal/model"
)

// JSON writes the full report, including entries past the display cap.
type JSON struct{}

type jsonReport struct {
	Threshold  float64             `json:"threshold"`
	DisplayCap int                 `json:"display_cap"`
	Failed     int                 `json:"failed"`
	Passed     bool                `json:"passed"`
	Below      []model.ReportEntry `json:"below"`
	Above      []model.ReportEntry `json:"above"`
}

func (JSON) Render(w io.Writer, rep *model.Report) error {
	out := jsonReport{
		Threshold:  rep.Threshold,
		DisplayCap: rep.DisplayCap,
		Failed:     rep.Failed(),
		Passed:     rep.Failed() == 0,
		Below:      nonNil(rep.Below),
		Above:      nonNil(rep.Above),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func nonNil(entries []model.ReportEntry) []model.ReportEntry {
	if entries == nil {
		return []model.ReportEntry{}
	}
	return entries
}
