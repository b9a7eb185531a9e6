package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "eecs280setup",
	Short: "Check and fix an EECS 280 development environment",
	Long: "eecs280setup verifies that the tools needed for EECS 280 are installed\n" +
		"(compiler toolchain, package manager, git, VS Code and its extensions)\n" +
		"and offers to install anything that is missing. Without a subcommand it\n" +
		"detects the host platform and runs the matching checklist.",
	Version: Version,
	Args:    cobra.NoArgs,
	RunE:    runAutoDetect,
}
