package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/oxhq/covgate/internal/model"
)

var banner = strings.Repeat("=", 80)

// Text is the console report.
type Text struct {
	heading *color.Color
	below   *color.Color
	above   *color.Color
	failure *color.Color
	success *color.Color
}

// NewText builds the console renderer. Without colour the output is plain
// text regardless of the terminal.
func NewText(colour bool) *Text {
	t := &Text{
		heading: color.New(color.Bold),
		below:   color.New(color.FgRed, color.Bold),
		above:   color.New(color.FgGreen, color.Bold),
		failure: color.New(color.FgRed),
		success: color.New(color.FgGreen),
	}

	for _, c := range []*color.Color{t.heading, t.below, t.above, t.failure, t.success} {
		if colour {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return t
}

func (t *Text) Render(w io.Writer, rep *model.Report) error {
	bw := bufio.NewWriter(w)
	threshold := formatThreshold(rep.Threshold)

	fmt.Fprintf(bw, "\n%s\n", banner)
	fmt.Fprintln(bw, t.heading.Sprint("FINAL COVERAGE REPORT"))
	fmt.Fprintln(bw, banner)

	if len(rep.Below) > 0 {
		fmt.Fprintf(bw, "\n%s\n\n", t.below.Sprintf("❌ FILES BELOW %s%% (%d files):", threshold, len(rep.Below)))
		for _, e := range rep.Below {
			fmt.Fprintf(bw, "   %s\n", entryLine(e))
		}
	}

	fmt.Fprintf(bw, "\n%s\n\n", t.above.Sprintf("✅ FILES ABOVE %s%% (%d files):", threshold, len(rep.Above)))
	for _, e := range rep.Shown() {
		fmt.Fprintf(bw, "   %s\n", entryLine(e))
	}
	if hidden := rep.Hidden(); hidden > 0 {
		fmt.Fprintf(bw, "   ... and %d more files\n", hidden)
	}

	fmt.Fprintf(bw, "\n%s\n", banner)
	if n := rep.Failed(); n > 0 {
		fmt.Fprintln(bw, t.failure.Sprintf("RESULT: %d file(s) still need work", n))
	} else {
		fmt.Fprintln(bw, t.success.Sprintf("🎉 SUCCESS: ALL FILES HAVE >= %s%% COVERAGE!", threshold))
	}
	fmt.Fprintf(bw, "%s\n\n", banner)

	return bw.Flush()
}
