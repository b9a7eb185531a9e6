// Package output renders the line-oriented run report. Colors degrade to
// plain text when stdout is not a color terminal.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"github.com/kyukibug/eecs280-setup/pkg/check"
)

var (
	green  = "\033[32m"
	red    = "\033[31m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
	bold   = "\033[1m"
	reset  = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, red, yellow, cyan, bold, reset = "", "", "", "", "", ""
	}
}

// Printer writes the run report to Out.
type Printer struct {
	Out io.Writer
}

// Banner prints the fixed header preceding a run.
func (p *Printer) Banner(title string) {
	fmt.Fprintf(p.Out, "%s%s%s\n", bold, title, reset)
	fmt.Fprintf(p.Out, "%s\n\n", strings.Repeat("=", len(title)))
}

// Result prints one check's status line plus its indented details.
func (p *Printer) Result(r check.Result) {
	if r.OK() {
		fmt.Fprintf(p.Out, "%s[OK]%s %s\n", green, reset, r.Name)
	} else {
		fmt.Fprintf(p.Out, "%s[FAIL]%s %s\n", red, reset, r.Name)
	}
	for _, d := range r.Details {
		p.Detail(d)
	}
}

// Detail prints an indented detail line under a status line.
func (p *Printer) Detail(line string) {
	fmt.Fprintf(p.Out, "       %s\n", line)
}

// Info prints an indented informational line.
func (p *Printer) Info(format string, args ...interface{}) {
	fmt.Fprintf(p.Out, "       %s%s%s\n", cyan, fmt.Sprintf(format, args...), reset)
}

// Warn prints an indented warning line.
func (p *Printer) Warn(format string, args ...interface{}) {
	fmt.Fprintf(p.Out, "       %s%s%s\n", yellow, fmt.Sprintf(format, args...), reset)
}

// Summary prints the fixed closing block for the run's final counters.
func (p *Printer) Summary(s check.RunSummary) {
	fmt.Fprintf(p.Out, "\n%d issue(s) found, %d fix(es) applied.\n", s.IssuesFound, s.FixesApplied)
	switch s.Category() {
	case check.AllClear:
		fmt.Fprintf(p.Out, "%sAll checks passed. Your environment is ready.%s\n", green, reset)
	case check.FixesWereApplied:
		fmt.Fprintf(p.Out, "%sFixes were applied. Open a new terminal and re-run this tool to confirm everything took effect.%s\n", yellow, reset)
	case check.IssuesRemain:
		fmt.Fprintf(p.Out, "%sSome checks failed and nothing was fixed. Follow the suggestions above, then re-run.%s\n", red, reset)
	}
}
