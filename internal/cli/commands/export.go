package commands

import (
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"vrs/internal/config"
	"vrs/internal/domain"
	"vrs/internal/report"
	"vrs/internal/storage"
)

// ExportCommand handles the export command
type ExportCommand struct {
	config  *config.Config
	storage storage.Storage
}

// NewExportCommand creates a new ExportCommand
func NewExportCommand(cfg *config.Config, st storage.Storage) *ExportCommand {
	return &ExportCommand{
		config:  cfg,
		storage: st,
	}
}

// Execute runs the command
func (ec *ExportCommand) Execute(cmd *cobra.Command, args []string) error {
	reportPath := ec.config.GetReportPath()
	rep, err := report.Load(reportPath, ec.config.GetEncoding())
	if err != nil {
		return err
	}

	sum := report.NewSummarizer(rep)
	output := &domain.ExportOutput{
		Meta: domain.ExportMeta{
			ReportPath:         reportPath,
			TotalTests:         rep.NumTotalTests,
			PassedTests:        rep.NumPassedTests,
			FailedTests:        rep.NumFailedTests,
			FailedSuites:       rep.NumFailedTestSuites,
			RecomputedFailures: sum.RecomputeFailedCount(),
			Timestamp:          time.Now().Format(time.RFC3339),
		},
		Failures: sum.Failures(),
	}

	if err := ec.storage.Save(output); err != nil {
		return err
	}

	color.Green("✓ Exported %d failure(s) to %s", len(output.Failures), ec.config.GetExportPath())
	return nil
}
