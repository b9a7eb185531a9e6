package installer

import (
	"errors"
	"testing"

	"github.com/kyukibug/eecs280-setup/pkg/check"
	"github.com/kyukibug/eecs280-setup/pkg/hostenv"
)

func TestHomebrew_InstallPackages(t *testing.T) {
	env := &hostenv.FakeEnv{}
	h := &Homebrew{Env: env}

	outcome := h.InstallPackages([]string{"git", "wget"})

	if outcome.Outcome != check.OutcomeApplied {
		t.Errorf("Outcome = %v, want APPLIED", outcome.Outcome)
	}
	if len(env.RanInteractive) != 1 || env.RanInteractive[0] != "brew install git wget" {
		t.Errorf("RanInteractive = %v, want single brew install", env.RanInteractive)
	}
}

func TestHomebrew_InstallFailureIsSoft(t *testing.T) {
	env := &hostenv.FakeEnv{
		InteractiveErrs: map[string]error{
			"brew install git": errors.New("exit status 1"),
		},
	}
	h := &Homebrew{Env: env}

	outcome := h.InstallPackages([]string{"git"})

	if outcome.Outcome != check.OutcomeFailed {
		t.Errorf("Outcome = %v, want FAILED", outcome.Outcome)
	}
	if outcome.Reason == "" {
		t.Error("Reason should carry the failure diagnostic")
	}
}

func TestHomebrew_InstallCommand(t *testing.T) {
	h := &Homebrew{}
	got := h.InstallCommand([]string{"git", "cmake"})
	want := "brew install git cmake"
	if got != want {
		t.Errorf("InstallCommand = %q, want %q", got, want)
	}
}

func TestHomebrew_InstalledVersion(t *testing.T) {
	env := &hostenv.FakeEnv{
		Outputs: map[string]hostenv.Output{
			"brew info --json=v2 --formula git": {
				Stdout: `{"formulae":[{"name":"git","installed":[{"version":"2.39.5"}]}]}`,
			},
		},
	}
	h := &Homebrew{Env: env}

	got := h.InstalledVersion("git")
	if got != "version: 2.39.5" {
		t.Errorf("InstalledVersion = %q, want %q", got, "version: 2.39.5")
	}
}

func TestHomebrew_InstalledVersionDegradesOnBadOutput(t *testing.T) {
	tests := []struct {
		name string
		out  hostenv.Output
	}{
		{"malformed JSON", hostenv.Output{Stdout: "not json at all"}},
		{"missing field", hostenv.Output{Stdout: `{"formulae":[{"name":"git"}]}`}},
		{"command error", hostenv.Output{Err: errors.New("exit status 1")}},
	}

	for _, tt := range tests {
		env := &hostenv.FakeEnv{
			Outputs: map[string]hostenv.Output{
				"brew info --json=v2 --formula git": tt.out,
			},
		}
		h := &Homebrew{Env: env}
		if got := h.InstalledVersion("git"); got != "" {
			t.Errorf("%s: InstalledVersion = %q, want empty", tt.name, got)
		}
	}
}

func TestCaskFix(t *testing.T) {
	env := &hostenv.FakeEnv{}
	f := &CaskFix{Cask: "visual-studio-code", Env: env}

	if f.Describe() != "brew install --cask visual-studio-code" {
		t.Errorf("Describe = %q", f.Describe())
	}

	outcome := f.Apply()
	if outcome.Outcome != check.OutcomeApplied {
		t.Errorf("Outcome = %v, want APPLIED", outcome.Outcome)
	}
	if len(env.RanInteractive) != 1 || env.RanInteractive[0] != "brew install --cask visual-studio-code" {
		t.Errorf("RanInteractive = %v", env.RanInteractive)
	}
}
