package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/oxhq/covgate/internal/model"
)

// Markdown writes a report suitable for a pull-request comment or job summary.
type Markdown struct{}

func (Markdown) Render(w io.Writer, rep *model.Report) error {
	bw := bufio.NewWriter(w)
	threshold := formatThreshold(rep.Threshold)

	fmt.Fprintf(bw, "# Code Coverage Report\n\n")
	if n := rep.Failed(); n > 0 {
		fmt.Fprintf(bw, "**❌ %d file(s) below %s%% line coverage**\n", n, threshold)
	} else {
		fmt.Fprintf(bw, "**🎉 All files have >= %s%% line coverage**\n", threshold)
	}

	if len(rep.Below) > 0 {
		fmt.Fprintf(bw, "\n## Files below %s%% (%d)\n\n", threshold, len(rep.Below))
		writeTable(bw, rep.Below)
	}

	fmt.Fprintf(bw, "\n## Files at or above %s%% (%d)\n\n", threshold, len(rep.Above))
	if shown := rep.Shown(); len(shown) > 0 {
		writeTable(bw, shown)
	} else {
		fmt.Fprintln(bw, "_None_")
	}
	if hidden := rep.Hidden(); hidden > 0 {
		fmt.Fprintf(bw, "\n_... and %d more files_\n", hidden)
	}

	return bw.Flush()
}

func writeTable(w io.Writer, entries []model.ReportEntry) {
	fmt.Fprintln(w, "| File | Coverage | Lines |")
	fmt.Fprintln(w, "|------|----------|-------|")
	for _, e := range entries {
		fmt.Fprintf(w, "| `%s` | %.1f%% | %d/%d |\n", escapeCell(e.Filename), e.Percent, e.LinesHit, e.LinesFound)
	}
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
