package checklist

import (
	"github.com/kyukibug/eecs280-setup/pkg/check"
	"github.com/kyukibug/eecs280-setup/pkg/hostenv"
	"github.com/kyukibug/eecs280-setup/pkg/installer"
	"github.com/kyukibug/eecs280-setup/pkg/probe"
	"github.com/kyukibug/eecs280-setup/pkg/version"
)

// brewFormulae are installed through the shared batch when missing.
var brewFormulae = []string{"git", "wget", "cmake"}

var minMacOS = version.MustParse("13")

// codeShimPath is where the VS Code app bundle keeps its CLI shim when
// the user never ran "Install 'code' command in PATH".
const codeShimPath = "/Applications/Visual Studio Code.app/Contents/Resources/app/bin/code"

// MacOS builds the macOS checklist in report order.
func MacOS(env hostenv.Env, brew *installer.Homebrew) []check.Check {
	checks := []check.Check{
		{
			Name:        "macOS version",
			Description: "the course toolchain needs macOS 13 or newer",
			Prober: &probe.OutputMatch{
				Name:       "macOS version",
				Command:    "sw_vers",
				Args:       []string{"-productVersion"},
				MinVersion: &minMacOS,
				Env:        env,
			},
			ManualHint: "upgrade via System Settings > General > Software Update",
		},
		{
			Name:        "Xcode Command Line Tools",
			Description: "provides the compiler, debugger, and make",
			Prober: &probe.OutputMatch{
				Name:    "Xcode Command Line Tools",
				Command: "xcode-select",
				Args:    []string{"-p"},
				Pattern: `\S`,
				Env:     env,
			},
			Fixer:      &installer.CommandFix{Command: "xcode-select", Args: []string{"--install"}, Env: env},
			ManualHint: "xcode-select --install",
		},
		{
			Name:        "Homebrew",
			Description: "package manager used to install the remaining tools",
			Prober:      &probe.Executable{Command: "brew", VersionArgs: []string{"--version"}, Env: env},
			Fixer:       &installer.HomebrewBootstrap{Env: env},
			ManualHint:  "see https://brew.sh",
		},
	}

	formulae := &probe.Source{
		Command: "brew",
		Args:    []string{"list", "--formula", "-1"},
		Env:     env,
	}
	for _, name := range brewFormulae {
		checks = append(checks, check.Check{
			Name:       "formula: " + name,
			Prober:     &probe.Member{ID: name, Source: formulae, Detail: brew.InstalledVersion},
			Package:    name,
			ManualHint: brew.InstallCommand([]string{name}),
		})
	}

	checks = append(checks,
		check.Check{
			Name:        "g++",
			Description: "C++ compiler (Apple clang behind a g++ shim)",
			Prober:      &probe.Executable{Command: "g++", VersionArgs: []string{"--version"}, Env: env},
			ManualHint:  "xcode-select --install",
		},
		check.Check{
			Name:       "make",
			Prober:     &probe.Executable{Command: "make", VersionArgs: []string{"--version"}, Env: env},
			ManualHint: "xcode-select --install",
		},
		check.Check{
			Name:        "lldb",
			Description: "debugger bundled with the Command Line Tools",
			Prober:      &probe.Executable{Command: "lldb", VersionArgs: []string{"--version"}, Env: env},
			ManualHint:  "xcode-select --install",
		},
		check.Check{
			Name:        "VS Code",
			Description: "editor used in lecture and lab",
			Prober: &probe.Any{
				Name: "VS Code",
				Probes: []check.Prober{
					&probe.Executable{Command: "code", VersionArgs: []string{"--version"}, Env: env},
					&probe.Path{Name: "VS Code", Path: codeShimPath, Env: env},
				},
			},
			Fixer:      &installer.CaskFix{Cask: "visual-studio-code", Env: env},
			ManualHint: "brew install --cask visual-studio-code",
		},
	)

	return append(checks, extensionChecks(env)...)
}
