// Package prompt handles yes/no confirmations for guided fixes.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Prompter asks the user a yes/no question. Implementations must treat
// anything that is not an explicit yes as a decline, and must never
// re-prompt on unrecognized input.
type Prompter interface {
	Confirm(message string) bool
}

// TTY reads exactly one line from In per confirmation. "y" or "yes"
// (case-insensitive) confirms; everything else, including a read error,
// declines.
type TTY struct {
	In  io.Reader
	Out io.Writer

	reader *bufio.Reader
}

// Confirm asks one question and reads one answer line.
func (p *TTY) Confirm(message string) bool {
	if p.reader == nil {
		p.reader = bufio.NewReader(p.In)
	}
	fmt.Fprintf(p.Out, "%s [y/N] ", message)

	line, err := p.reader.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(p.Out)
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// AssumeYes answers yes to everything, echoing what it auto-confirmed.
// Backs the --yes flag for non-interactive use.
type AssumeYes struct {
	Out io.Writer
}

// Confirm echoes the question and confirms it.
func (p *AssumeYes) Confirm(message string) bool {
	fmt.Fprintf(p.Out, "%s [y/N] y\n", message)
	return true
}

// NeverAsk declines every confirmation without writing anything. Backs
// check-only mode, where no confirmation should ever be needed.
type NeverAsk struct{}

// Confirm declines.
func (NeverAsk) Confirm(string) bool { return false }

// Scripted replays canned answers and records the questions asked; it is
// the test double. Exhausted answers decline.
type Scripted struct {
	Answers  []bool
	Messages []string

	next int
}

// Confirm records the message and replays the next scripted answer.
func (p *Scripted) Confirm(message string) bool {
	p.Messages = append(p.Messages, message)
	if p.next >= len(p.Answers) {
		return false
	}
	answer := p.Answers[p.next]
	p.next++
	return answer
}

// Interactive reports whether f is attached to a terminal.
func Interactive(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
