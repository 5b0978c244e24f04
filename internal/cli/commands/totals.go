package commands

import (
	"github.com/spf13/cobra"
	"vrs/internal/config"
	"vrs/internal/report"
	"vrs/internal/ui"
)

// TotalsCommand handles the totals command
type TotalsCommand struct {
	config    *config.Config
	formatter *ui.Formatter
}

// NewTotalsCommand creates a new TotalsCommand
func NewTotalsCommand(cfg *config.Config, formatter *ui.Formatter) *TotalsCommand {
	return &TotalsCommand{
		config:    cfg,
		formatter: formatter,
	}
}

// Execute runs the command
func (tc *TotalsCommand) Execute(cmd *cobra.Command, args []string) error {
	rep, err := report.Load(tc.config.GetReportPath(), tc.config.GetEncoding())
	if err != nil {
		return err
	}

	sum := report.NewSummarizer(rep)
	tc.formatter.PrintTotals(rep)
	tc.formatter.PrintFailingSuites(sum.FailingSuites())
	return nil
}
