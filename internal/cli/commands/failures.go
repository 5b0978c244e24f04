package commands

import (
	"github.com/spf13/cobra"
	"vrs/internal/config"
	"vrs/internal/report"
	"vrs/internal/ui"
)

// FailuresCommand handles the failures command
type FailuresCommand struct {
	config    *config.Config
	formatter *ui.Formatter
}

// NewFailuresCommand creates a new FailuresCommand
func NewFailuresCommand(cfg *config.Config, formatter *ui.Formatter) *FailuresCommand {
	return &FailuresCommand{
		config:    cfg,
		formatter: formatter,
	}
}

// Execute runs the command
func (fc *FailuresCommand) Execute(cmd *cobra.Command, args []string) error {
	rep, err := report.Load(fc.config.GetReportPath(), fc.config.GetEncoding())
	if err != nil {
		return err
	}

	sum := report.NewSummarizer(rep)
	fc.formatter.PrintFailureDetails(sum.FailedBySuite())
	return nil
}
