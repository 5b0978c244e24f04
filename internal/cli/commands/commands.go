package commands

import (
	"vrs/internal/cli"
	"vrs/internal/config"
	"vrs/internal/storage"
	"vrs/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Totals   *TotalsCommand
	Failures *FailuresCommand
	Check    *CheckCommand
	View     *ViewCommand
	Export   *ExportCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	formatter := ui.NewFormatter(cfg)
	viewer := ui.NewViewer(cfg)
	jsonStorage := storage.NewJSONStorage(cfg)

	return &Commands{
		Totals:   NewTotalsCommand(cfg, formatter),
		Failures: NewFailuresCommand(cfg, formatter),
		Check:    NewCheckCommand(cfg, formatter),
		View:     NewViewCommand(cfg, viewer),
		Export:   NewExportCommand(cfg, jsonStorage),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Report flags are shared by every command
	rootCmd.PersistentFlags().StringVarP(&flags.ReportPath, "report", "r", "", "Path to the vitest JSON report (default "+config.DefaultReportFile+")")
	rootCmd.PersistentFlags().StringVarP(&flags.Encoding, "encoding", "e", "", "Report text encoding: utf-8, utf-8-sig or utf-16le (default "+config.DefaultEncoding+")")

	applyFlags := func(cmd *cobra.Command, args []string) error {
		cfg.Flags = flags.ToConfigFlags()
		return nil
	}

	// Totals command
	totalsCmd := &cobra.Command{
		Use:     "totals",
		Short:   "Print report totals and failing suites",
		Long:    "Print the report's top-level counters on one line, then each failed suite with its failed test count",
		RunE:    c.Totals.Execute,
		PreRunE: applyFlags,
	}
	rootCmd.AddCommand(totalsCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:     "failures",
		Short:   "Print failure details per suite",
		Long:    "For each suite with failed tests, print the suite name, each failed test's full name and the first line of its failure message",
		RunE:    c.Failures.Execute,
		PreRunE: applyFlags,
	}
	rootCmd.AddCommand(failuresCmd)

	// Check command
	checkCmd := &cobra.Command{
		Use:     "check",
		Short:   "Cross-check report counters against its contents",
		Long:    "Print suite and test counter lines, an independently recomputed failure count, an optional suite status lookup and the flat failures list",
		RunE:    c.Check.Execute,
		PreRunE: applyFlags,
	}
	checkCmd.Flags().StringVarP(&flags.Suite, "suite", "s", "", "Report the status of the first suite whose name contains this substring")
	rootCmd.AddCommand(checkCmd)

	// View command
	viewCmd := &cobra.Command{
		Use:     "view",
		Short:   "View test failures interactively",
		Long:    "Display the report's test failures in an interactive viewer",
		RunE:    c.View.Execute,
		PreRunE: applyFlags,
	}
	rootCmd.AddCommand(viewCmd)

	// Export command
	exportCmd := &cobra.Command{
		Use:     "export",
		Short:   "Export the failure list as JSON",
		Long:    "Extract every failed test with its suite, full name and failure message, and write the list as JSON",
		RunE:    c.Export.Execute,
		PreRunE: applyFlags,
	}
	exportCmd.Flags().StringVarP(&flags.ExportPath, "out", "o", "", "Path for the exported JSON file (default "+config.DefaultExportDir+"/"+config.DefaultExportFile+")")
	rootCmd.AddCommand(exportCmd)
}
