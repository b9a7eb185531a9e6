package installer

import (
	"errors"
	"strings"
	"testing"

	"github.com/kyukibug/eecs280-setup/pkg/check"
	"github.com/kyukibug/eecs280-setup/pkg/hostenv"
)

func TestHomebrewBootstrap_AppliesAndWiresPath(t *testing.T) {
	env := &hostenv.FakeEnv{
		Home:    "/Users/student",
		EnvVars: map[string]string{"PATH": "/usr/bin:/bin"},
		Files:   map[string]string{"/opt/homebrew/bin/brew": "binary"},
	}
	f := &HomebrewBootstrap{Env: env}

	outcome := f.Apply()

	if outcome.Outcome != check.OutcomeApplied {
		t.Fatalf("Outcome = %v (%s), want APPLIED", outcome.Outcome, outcome.Reason)
	}
	if got := env.EnvVars["PATH"]; got != "/opt/homebrew/bin:/usr/bin:/bin" {
		t.Errorf("PATH = %q, want brew prefix prepended", got)
	}
	lines := env.Appended["/Users/student/.zprofile"]
	if len(lines) != 1 || !strings.Contains(lines[0], "/opt/homebrew/bin/brew shellenv") {
		t.Errorf("appended lines = %v, want one shellenv hook", lines)
	}
}

func TestHomebrewBootstrap_IntelPrefixFallback(t *testing.T) {
	env := &hostenv.FakeEnv{
		Files: map[string]string{"/usr/local/bin/brew": "binary"},
	}
	f := &HomebrewBootstrap{Env: env}

	outcome := f.Apply()

	if outcome.Outcome != check.OutcomeApplied {
		t.Fatalf("Outcome = %v (%s), want APPLIED", outcome.Outcome, outcome.Reason)
	}
	if got := env.EnvVars["PATH"]; got != "/usr/local/bin" {
		t.Errorf("PATH = %q, want the Intel prefix", got)
	}
}

func TestHomebrewBootstrap_ScriptFailure(t *testing.T) {
	env := &hostenv.FakeEnv{
		InteractiveErrs: map[string]error{
			"/bin/bash -c curl -fsSL " + brewInstallURL + " | /bin/bash": errors.New("exit status 1"),
		},
	}
	f := &HomebrewBootstrap{Env: env}

	outcome := f.Apply()

	if outcome.Outcome != check.OutcomeFailed {
		t.Errorf("Outcome = %v, want FAILED", outcome.Outcome)
	}
	if len(env.Appended) != 0 {
		t.Errorf("Appended = %v, want no profile writes after a failed install", env.Appended)
	}
}

func TestHomebrewBootstrap_BrewMissingAfterInstall(t *testing.T) {
	env := &hostenv.FakeEnv{}
	f := &HomebrewBootstrap{Env: env}

	outcome := f.Apply()

	if outcome.Outcome != check.OutcomeFailed {
		t.Errorf("Outcome = %v, want FAILED when no prefix has brew", outcome.Outcome)
	}
}

func TestCommandFix(t *testing.T) {
	env := &hostenv.FakeEnv{}
	f := &CommandFix{Command: "xcode-select", Args: []string{"--install"}, Env: env}

	if f.Describe() != "xcode-select --install" {
		t.Errorf("Describe = %q", f.Describe())
	}

	outcome := f.Apply()
	if outcome.Outcome != check.OutcomeApplied {
		t.Errorf("Outcome = %v, want APPLIED", outcome.Outcome)
	}
	if len(env.RanInteractive) != 1 || env.RanInteractive[0] != "xcode-select --install" {
		t.Errorf("RanInteractive = %v", env.RanInteractive)
	}
}
