package commands

import (
	"github.com/spf13/cobra"
	"vrs/internal/config"
	"vrs/internal/report"
	"vrs/internal/ui"
)

// ViewCommand handles the view command
type ViewCommand struct {
	config *config.Config
	viewer *ui.Viewer
}

// NewViewCommand creates a new ViewCommand
func NewViewCommand(cfg *config.Config, viewer *ui.Viewer) *ViewCommand {
	return &ViewCommand{
		config: cfg,
		viewer: viewer,
	}
}

// Execute runs the command
func (vc *ViewCommand) Execute(cmd *cobra.Command, args []string) error {
	rep, err := report.Load(vc.config.GetReportPath(), vc.config.GetEncoding())
	if err != nil {
		return err
	}

	sum := report.NewSummarizer(rep)
	return vc.viewer.View(sum.Failures())
}
