package installer

import (
	"github.com/kyukibug/eecs280-setup/pkg/check"
	"github.com/kyukibug/eecs280-setup/pkg/hostenv"
)

// Apt installs packages via apt-get. Installation runs under sudo since
// package changes need root inside the distribution.
type Apt struct {
	Env hostenv.Env
}

// Name returns the package manager's display name.
func (a *Apt) Name() string {
	return "APT"
}

// InstallCommand returns the apt-get install command line for names.
func (a *Apt) InstallCommand(names []string) string {
	return joinCommand("sudo", append([]string{"apt-get", "install", "-y"}, names...))
}

// InstallPackages installs packages with apt-get's output streamed live.
func (a *Apt) InstallPackages(names []string) check.Remediation {
	args := append([]string{"apt-get", "install", "-y"}, names...)
	if err := a.Env.RunInteractive("sudo", args...); err != nil {
		return check.Failedf("apt-get install failed: %v", err)
	}
	return check.Applied()
}
