package installer

import (
	"github.com/tidwall/gjson"

	"github.com/kyukibug/eecs280-setup/pkg/check"
	"github.com/kyukibug/eecs280-setup/pkg/hostenv"
)

// Homebrew installs formulae and casks via brew.
type Homebrew struct {
	Env hostenv.Env
}

// Name returns the package manager's display name.
func (h *Homebrew) Name() string {
	return "Homebrew"
}

// InstallCommand returns the brew install command line for names.
func (h *Homebrew) InstallCommand(names []string) string {
	return joinCommand("brew", append([]string{"install"}, names...))
}

// InstallPackages installs formulae with brew's output streamed live.
func (h *Homebrew) InstallPackages(names []string) check.Remediation {
	args := append([]string{"install"}, names...)
	if err := h.Env.RunInteractive("brew", args...); err != nil {
		return check.Failedf("brew install failed: %v", err)
	}
	return check.Applied()
}

// InstalledVersion reads a formula's installed version from brew's JSON
// metadata. Returns "" when brew fails or the output is not the expected
// shape; this is detail text only, never an error.
func (h *Homebrew) InstalledVersion(name string) string {
	stdout, _, err := h.Env.RunCommand("brew", "info", "--json=v2", "--formula", name)
	if err != nil {
		return ""
	}
	v := gjson.Get(stdout, "formulae.0.installed.0.version")
	if !v.Exists() {
		return ""
	}
	return "version: " + v.String()
}

// CaskFix installs a GUI application as a brew cask.
type CaskFix struct {
	Cask string
	Env  hostenv.Env
}

// Describe returns the cask install command line.
func (f *CaskFix) Describe() string {
	return "brew install --cask " + f.Cask
}

// Apply installs the cask.
func (f *CaskFix) Apply() check.Remediation {
	if err := f.Env.RunInteractive("brew", "install", "--cask", f.Cask); err != nil {
		return check.Failedf("brew install --cask %s failed: %v", f.Cask, err)
	}
	return check.Applied()
}
