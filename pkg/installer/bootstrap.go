package installer

import (
	"path/filepath"

	"github.com/kyukibug/eecs280-setup/pkg/check"
	"github.com/kyukibug/eecs280-setup/pkg/hostenv"
)

const brewInstallURL = "https://raw.githubusercontent.com/Homebrew/install/HEAD/install.sh"

// brewPrefixes are the standard install locations: Apple silicon first,
// then Intel. Neither is on the default search path of a fresh account.
var brewPrefixes = []string{"/opt/homebrew", "/usr/local"}

// HomebrewBootstrap installs Homebrew itself via the official install
// script, then makes brew usable for the rest of the run: the resolved
// prefix is prepended to the in-process PATH so later checks can invoke
// brew, and the shellenv hook is appended to ~/.zprofile for future
// sessions. The profile append does not check for an existing hook line,
// so a machine where the persist step keeps failing can accumulate
// duplicates across runs.
type HomebrewBootstrap struct {
	Env hostenv.Env
}

// Describe returns the install command line.
func (f *HomebrewBootstrap) Describe() string {
	return "curl -fsSL " + brewInstallURL + " | /bin/bash"
}

// Apply installs Homebrew and wires it up for this run and future shells.
func (f *HomebrewBootstrap) Apply() check.Remediation {
	if err := f.Env.RunInteractive("/bin/bash", "-c", "curl -fsSL "+brewInstallURL+" | /bin/bash"); err != nil {
		return check.Failedf("Homebrew install script failed: %v", err)
	}

	for _, prefix := range brewPrefixes {
		if _, err := f.Env.Stat(prefix + "/bin/brew"); err != nil {
			continue
		}
		if err := f.prependPath(prefix + "/bin"); err != nil {
			return check.Failedf("brew installed but PATH update failed: %v", err)
		}
		if err := f.persistShellenv(prefix); err != nil {
			return check.Failedf("brew works now, but persisting it to ~/.zprofile failed: %v", err)
		}
		return check.Applied()
	}
	return check.Failedf("install script finished but brew was not found under %s or %s",
		brewPrefixes[0], brewPrefixes[1])
}

func (f *HomebrewBootstrap) prependPath(dir string) error {
	path, _ := f.Env.LookupEnv("PATH")
	if path == "" {
		return f.Env.SetEnv("PATH", dir)
	}
	return f.Env.SetEnv("PATH", dir+":"+path)
}

func (f *HomebrewBootstrap) persistShellenv(prefix string) error {
	home, err := f.Env.HomeDir()
	if err != nil {
		return err
	}
	line := `eval "$(` + prefix + `/bin/brew shellenv)"`
	return f.Env.AppendFile(filepath.Join(home, ".zprofile"), line)
}
