package probe

import (
	"strings"

	"github.com/kyukibug/eecs280-setup/pkg/check"
	"github.com/kyukibug/eecs280-setup/pkg/hostenv"
	"github.com/kyukibug/eecs280-setup/pkg/version"
)

// OutputMatch runs a read-only command and matches its output against an
// expected token or a minimum version. A spawn failure is a normal Fail
// with the best available diagnostics.
type OutputMatch struct {
	Name       string // display name for the result
	Command    string
	Args       []string
	Pattern    string           // regex the output must match
	MinVersion *version.Version // minimum version extracted from the output
	Env        hostenv.Env
}

// Probe runs the output-match probe.
func (p *OutputMatch) Probe() check.Result {
	result := check.Result{Name: p.Name}

	stdout, stderr, err := p.Env.RunCommand(p.Command, p.Args...)
	if err != nil {
		result.AddDetailf("%s failed: %v", p.Command, err)
		if line := firstLine(stderr); line != "" {
			result.AddDetailf("stderr: %s", line)
		}
		result.Status = check.StatusFail
		result.Err = err
		return result
	}

	output := strings.TrimSpace(stdout)
	if output == "" {
		output = strings.TrimSpace(stderr)
	}

	if p.Pattern != "" {
		re, err := check.CompileRegex(p.Pattern)
		if err != nil {
			return result.Failf("invalid pattern %q: %v", p.Pattern, err)
		}
		if !re.MatchString(output) {
			return result.Failf("output %q does not match %q", firstLine(output), p.Pattern)
		}
		result.AddDetailf("output: %s", firstLine(output))
	}

	if p.MinVersion != nil {
		v, err := version.Extract(output)
		if err != nil {
			return result.Failf("could not parse version from %q", firstLine(output))
		}
		result.AddDetailf("version: %s", v)
		if !v.AtLeast(*p.MinVersion) {
			return result.Failf("version %s below minimum %s", v, p.MinVersion)
		}
	}

	if p.Pattern == "" && p.MinVersion == nil {
		result.AddDetailf("output: %s", firstLine(output))
	}

	result.Status = check.StatusOK
	return result
}
