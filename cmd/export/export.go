// Package export handles the CSV summary export command.
package export

import (
	"github.com/spf13/cobra"

	"fjacquet/budget-chat/cmd/root"
	"fjacquet/budget-chat/internal/export"
	"fjacquet/budget-chat/internal/logging"
)

var outputFile string

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the budget summary to CSV",
	Long:  `Export the budget summary (category, budget, spent, remaining) to a CSV file.`,
	Run:   exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output CSV file (defaults to config data.export_file)")
}

func exportFunc(cmd *cobra.Command, args []string) {
	session, err := root.BuildSession()
	if err != nil {
		root.Log.Fatalf("Failed to load budget: %v", err)
	}

	out := outputFile
	if out == "" {
		out = root.Cfg.Data.ExportFile
	}

	logger := logging.NewLogrusAdapterFromLogger(root.Log)
	if err := export.WriteSummaryCSV(session.Agent.Ledger(), out, logger); err != nil {
		root.Log.Fatalf("Failed to export summary: %v", err)
	}
	root.Log.Infof("Summary exported to %s", out)
}
