package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/kyukibug/eecs280-setup/pkg/hostenv"
	"github.com/kyukibug/eecs280-setup/pkg/platform"
	"github.com/kyukibug/eecs280-setup/pkg/prompt"
)

var (
	assumeYes bool
	checkOnly bool
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "assume yes for every confirmation")
	rootCmd.PersistentFlags().BoolVar(&checkOnly, "check-only", false, "report problems without offering fixes")
}

func runAutoDetect(cmd *cobra.Command, args []string) error {
	switch platform.Detect(&hostenv.RealEnv{}) {
	case platform.MacOS:
		return runMacOS(cmd, args)
	case platform.WSL:
		return runWSL(cmd, args)
	default:
		return errors.New(`could not identify this machine as macOS or WSL; run "eecs280setup macos" or "eecs280setup wsl" explicitly`)
	}
}

// newPrompter picks the confirmation strategy for this invocation.
// Needing prompts without an interactive stdin is the one unrecoverable
// startup error; everything later in a run degrades softly instead.
// Check-only runs never prompt, so they carry no terminal requirement.
func newPrompter() (prompt.Prompter, error) {
	if checkOnly {
		return prompt.NeverAsk{}, nil
	}
	if assumeYes {
		return &prompt.AssumeYes{Out: os.Stdout}, nil
	}
	if !prompt.Interactive(os.Stdin) {
		return nil, errors.New("stdin is not a terminal; re-run interactively or pass --yes")
	}
	return &prompt.TTY{In: os.Stdin, Out: os.Stdout}, nil
}
