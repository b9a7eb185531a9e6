package installer

import (
	"github.com/kyukibug/eecs280-setup/pkg/check"
	"github.com/kyukibug/eecs280-setup/pkg/hostenv"
)

// CommandFix runs one fixed command as a guided fix, e.g.
// "xcode-select --install" or "code --install-extension <id>".
type CommandFix struct {
	Command string
	Args    []string
	Env     hostenv.Env
}

// Describe returns the command line Apply would run.
func (f *CommandFix) Describe() string {
	return joinCommand(f.Command, f.Args)
}

// Apply runs the command with output streamed live.
func (f *CommandFix) Apply() check.Remediation {
	if err := f.Env.RunInteractive(f.Command, f.Args...); err != nil {
		return check.Failedf("%s failed: %v", f.Command, err)
	}
	return check.Applied()
}
