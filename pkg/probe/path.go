package probe

import (
	"path/filepath"
	"strings"

	"github.com/kyukibug/eecs280-setup/pkg/check"
	"github.com/kyukibug/eecs280-setup/pkg/hostenv"
)

// Path reports whether a fixed or home-relative path exists and is a
// regular file. Used for tools in conventional install locations outside
// the search path, like an editor's bundled CLI shim.
type Path struct {
	Name string // display name; defaults to the path
	Path string // absolute, or prefixed with "~/" to resolve under $HOME
	Env  hostenv.Env
}

// Probe runs the path probe.
func (p *Path) Probe() check.Result {
	name := p.Name
	if name == "" {
		name = p.Path
	}
	result := check.Result{Name: name}

	target := p.Path
	if strings.HasPrefix(target, "~/") {
		home, err := p.Env.HomeDir()
		if err != nil {
			return result.Failf("cannot resolve home directory: %v", err)
		}
		target = filepath.Join(home, target[2:])
	}

	info, err := p.Env.Stat(target)
	if err != nil {
		return result.Failf("not found: %s", target)
	}
	if info.IsDir() {
		return result.Failf("%s is a directory, expected a file", target)
	}

	result.AddDetailf("path: %s", target)
	result.Status = check.StatusOK
	return result
}
