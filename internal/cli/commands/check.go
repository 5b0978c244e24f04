package commands

import (
	"github.com/spf13/cobra"
	"vrs/internal/config"
	"vrs/internal/report"
	"vrs/internal/ui"
)

// CheckCommand handles the check command
type CheckCommand struct {
	config    *config.Config
	formatter *ui.Formatter
}

// NewCheckCommand creates a new CheckCommand
func NewCheckCommand(cfg *config.Config, formatter *ui.Formatter) *CheckCommand {
	return &CheckCommand{
		config:    cfg,
		formatter: formatter,
	}
}

// Execute runs the command
func (cc *CheckCommand) Execute(cmd *cobra.Command, args []string) error {
	rep, err := report.Load(cc.config.GetReportPath(), cc.config.GetEncoding())
	if err != nil {
		return err
	}

	sum := report.NewSummarizer(rep)
	cc.formatter.PrintCheck(rep, sum, cc.config.Flags.Suite)
	return nil
}
