// Package probe implements the read-only detection predicates that checks
// are built from. Probes never modify host state; a missing capability is
// a normal Fail result, never an error that stops the run.
package probe

import (
	"strings"

	"github.com/kyukibug/eecs280-setup/pkg/check"
	"github.com/kyukibug/eecs280-setup/pkg/hostenv"
)

// Executable reports whether a command resolves on the search path. When
// found, an optional read-only version query enriches the details; a failed
// version query never turns presence into a failure.
type Executable struct {
	Command     string
	VersionArgs []string // empty disables the version query
	Env         hostenv.Env
}

// Probe runs the executable probe.
func (p *Executable) Probe() check.Result {
	result := check.Result{Name: p.Command}

	path, err := p.Env.LookPath(p.Command)
	if err != nil {
		return result.Failf("not found in PATH")
	}
	result.AddDetailf("path: %s", path)

	if len(p.VersionArgs) > 0 {
		stdout, stderr, err := p.Env.RunCommand(p.Command, p.VersionArgs...)
		line := firstLine(stdout)
		if line == "" {
			line = firstLine(stderr)
		}
		switch {
		case err != nil:
			result.AddDetailf("version query failed: %v", err)
		case line != "":
			result.AddDetailf("version: %s", line)
		}
	}

	result.Status = check.StatusOK
	return result
}

// firstLine trims output down to its first non-empty line.
func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
