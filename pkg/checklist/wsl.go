package checklist

import (
	"github.com/kyukibug/eecs280-setup/pkg/check"
	"github.com/kyukibug/eecs280-setup/pkg/hostenv"
	"github.com/kyukibug/eecs280-setup/pkg/installer"
	"github.com/kyukibug/eecs280-setup/pkg/probe"
	"github.com/kyukibug/eecs280-setup/pkg/version"
)

// aptPackages are installed through the shared batch when missing.
var aptPackages = []string{"g++", "gdb", "make", "git", "valgrind", "python3"}

// C++17 support.
var minGxx = version.MustParse("11")

// WSL builds the WSL (Ubuntu) checklist in report order.
func WSL(env hostenv.Env, apt *installer.Apt) []check.Check {
	checks := []check.Check{
		{
			Name:        "WSL 2",
			Description: "WSL 1 lacks the syscall support the course tools need",
			Prober: &probe.FileMatch{
				Name:    "WSL 2",
				Path:    "/proc/version",
				Pattern: `(?i)wsl2|microsoft-standard`,
				Env:     env,
			},
			ManualHint: "from Windows PowerShell: wsl --set-version Ubuntu 2",
		},
	}

	installed := &probe.Source{
		Command: "dpkg-query",
		Args:    []string{"-W", "-f", "${Package}\n"},
		Env:     env,
	}
	for _, name := range aptPackages {
		checks = append(checks, check.Check{
			Name:       "package: " + name,
			Prober:     &probe.Member{ID: name, Source: installed},
			Package:    name,
			ManualHint: apt.InstallCommand([]string{name}),
		})
	}

	checks = append(checks,
		check.Check{
			Name:        "g++ version",
			Description: "course projects need a C++17 compiler",
			Prober: &probe.OutputMatch{
				Name:       "g++ version",
				Command:    "g++",
				Args:       []string{"-dumpversion"},
				MinVersion: &minGxx,
				Env:        env,
			},
			ManualHint: "sudo apt-get install -y g++",
		},
		check.Check{
			Name:        "gdb",
			Description: "debugger used in lab",
			Prober:      &probe.Executable{Command: "gdb", VersionArgs: []string{"--version"}, Env: env},
			ManualHint:  "sudo apt-get install -y gdb",
		},
		check.Check{
			Name:        "VS Code (Windows interop)",
			Description: "the code command should reach the Windows VS Code install",
			Prober:      &probe.Executable{Command: "code", VersionArgs: []string{"--version"}, Env: env},
			ManualHint:  "install VS Code on Windows from https://code.visualstudio.com, then open a new WSL terminal",
		},
	)

	return append(checks, extensionChecks(env)...)
}
