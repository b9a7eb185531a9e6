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

var wslCmd = &cobra.Command{
	Use:   "wsl",
	Short: "Run the WSL (Ubuntu) checklist",
	Args:  cobra.NoArgs,
	RunE:  runWSL,
}

func init() {
	rootCmd.AddCommand(wslCmd)
}

func runWSL(cmd *cobra.Command, args []string) error {
	prompter, err := newPrompter()
	if err != nil {
		return err
	}

	env := &hostenv.RealEnv{}
	apt := &installer.Apt{Env: env}
	printer := &output.Printer{Out: os.Stdout}
	printer.Banner("EECS 280 setup: WSL")

	r := &runner.Runner{
		Target:    platform.WSL,
		Checks:    checklist.WSL(env, apt),
		Installer: apt,
		Batch:     installer.NewBatch(),
		Prompter:  prompter,
		Printer:   printer,
		Env:       env,
		CheckOnly: checkOnly,
	}
	return r.Run()
}
