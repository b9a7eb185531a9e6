// Package installer shells out to the platform package manager and hosts
// the guided-fix implementations. The rest of the tool never builds
// install command lines itself.
package installer

import (
	"strings"

	"github.com/kyukibug/eecs280-setup/pkg/check"
)

// Installer installs packages through one platform package manager.
type Installer interface {
	// Name is the package manager's display name.
	Name() string
	// InstallCommand returns the exact command line InstallPackages would
	// run, for display before asking consent.
	InstallCommand(names []string) string
	// InstallPackages runs the package manager with output streamed live
	// to the user. The caller obtains consent first.
	InstallPackages(names []string) check.Remediation
}

func joinCommand(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}
