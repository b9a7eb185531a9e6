package probe

import (
	"github.com/kyukibug/eecs280-setup/pkg/check"
	"github.com/kyukibug/eecs280-setup/pkg/hostenv"
)

// FileMatch reports whether a file exists and its content matches a
// pattern. Used for markers in well-known system descriptor files, like
// the WSL signature in /proc/version.
type FileMatch struct {
	Name    string
	Path    string
	Pattern string
	Env     hostenv.Env
}

// Probe runs the file-match probe.
func (p *FileMatch) Probe() check.Result {
	result := check.Result{Name: p.Name}

	content, err := p.Env.ReadFile(p.Path)
	if err != nil {
		return result.Failf("cannot read %s: %v", p.Path, err)
	}

	re, err := check.CompileRegex(p.Pattern)
	if err != nil {
		return result.Failf("invalid pattern %q: %v", p.Pattern, err)
	}
	if !re.Match(content) {
		return result.Failf("%s does not match %q", p.Path, p.Pattern)
	}

	result.AddDetailf("%s: %s", p.Path, firstLine(string(content)))
	result.Status = check.StatusOK
	return result
}
