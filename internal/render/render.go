// Package render writes a classified coverage report in one of several
// output formats.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/oxhq/covgate/internal/model"
)

// Supported output formats.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// Formats lists the accepted format names.
var Formats = []string{FormatText, FormatJSON, FormatMarkdown}

// Renderer writes a report.
type Renderer interface {
	Render(w io.Writer, rep *model.Report) error
}

// New returns the renderer for format. colour only affects the text form.
func New(format string, colour bool) (Renderer, error) {
	switch strings.ToLower(format) {
	case FormatText, "":
		return NewText(colour), nil
	case FormatJSON:
		return JSON{}, nil
	case FormatMarkdown, "md":
		return Markdown{}, nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)", model.ErrUnknownFormat, format, strings.Join(Formats, ", "))
	}
}

// formatThreshold prints 50 as "50" and 72.5 as "72.5".
func formatThreshold(threshold float64) string {
	return strconv.FormatFloat(threshold, 'g', -1, 64)
}

// entryLine is the shared row layout: percentage, hit/found, file name.
func entryLine(e model.ReportEntry) string {
	return fmt.Sprintf("%5.1f%% (%3d/%3d) - %s", e.Percent, e.LinesHit, e.LinesFound, e.Filename)
}
