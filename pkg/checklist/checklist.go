// Package checklist defines the ordered checks for each supported
// platform. Order matters for readability and for checks that depend on
// an earlier fix, like the package manager being installed before the
// packages that need it.
package checklist

import (
	"github.com/kyukibug/eecs280-setup/pkg/check"
	"github.com/kyukibug/eecs280-setup/pkg/hostenv"
	"github.com/kyukibug/eecs280-setup/pkg/installer"
	"github.com/kyukibug/eecs280-setup/pkg/probe"
)

// codeExtensions are the VS Code extensions required for the course
// workflow, checked against `code --list-extensions` on both platforms.
var codeExtensions = []string{
	"ms-vscode.cpptools",
	"ms-vscode.cpptools-extension-pack",
}

// extensionChecks builds one check per required VS Code extension, all
// sharing a single enumeration of installed extensions.
func extensionChecks(env hostenv.Env) []check.Check {
	installed := &probe.Source{
		Command: "code",
		Args:    []string{"--list-extensions"},
		Env:     env,
	}

	checks := make([]check.Check, 0, len(codeExtensions))
	for _, id := range codeExtensions {
		checks = append(checks, check.Check{
			Name:       "extension: " + id,
			Prober:     &probe.Member{ID: id, Source: installed},
			Fixer:      &installer.CommandFix{Command: "code", Args: []string{"--install-extension", id}, Env: env},
			ManualHint: "code --install-extension " + id,
		})
	}
	return checks
}
