package main

import (
	"fmt"
	"os"

	"vrs/internal/cli"
	"vrs/internal/cli/commands"
	"vrs/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "vrs",
		Short:   "Vitest JSON report summarizer",
		Long:    `Inspect an already-produced vitest/jest JSON test report: print totals, list failing suites and failure messages, cross-check the report's counters and browse failures interactively.`,
		Version: version,
	}

	// Create initial config with defaults, then environment overrides
	cfg := config.New()
	cfg.LoadEnv()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
