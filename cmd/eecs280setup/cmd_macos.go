package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kyukibug/eecs280-setup/pkg/checklist"
	"github.com/kyukibug/eecs280-setup/pkg/hostenv"
	"github.com/kyukibug/eecs280-setup/pkg/installer"
	"github.com/kyukibug/eecs280-setup/pkg/output"
	"github.com/kyukibug/eecs280-setup/pkg/platform"
	"github.com/kyukibug/eecs280-setup/pkg/runner"
)

var macosCmd = &cobra.Command{
	Use:   "macos",
	Short: "Run the macOS checklist",
	Args:  cobra.NoArgs,
	RunE:  runMacOS,
}

func init() {
	rootCmd.AddCommand(macosCmd)
}

func runMacOS(cmd *cobra.Command, args []string) error {
	prompter, err := newPrompter()
	if err != nil {
		return err
	}

	env := &hostenv.RealEnv{}
	brew := &installer.Homebrew{Env: env}
	printer := &output.Printer{Out: os.Stdout}
	printer.Banner("EECS 280 setup: macOS")

	r := &runner.Runner{
		Target:    platform.MacOS,
		Checks:    checklist.MacOS(env, brew),
		Installer: brew,
		Batch:     installer.NewBatch(),
		Prompter:  prompter,
		Printer:   printer,
		Env:       env,
		CheckOnly: checkOnly,
	}
	return r.Run()
}
