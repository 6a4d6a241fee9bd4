package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/fluencelabs/perfmeter/pkg/db"
	"github.com/fluencelabs/perfmeter/pkg/report"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Render the recorded benchmark history",
	Long:  "Reads the result file and prints a per-host markdown summary of all recorded benchmarks.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}

		if resultPath == "" {
			resultPath = meterCfg.ResultPath
		}

		d, err := db.New(resultPath, hostID)
		if err != nil {
			return err
		}

		return report.Generate(os.Stdout, d.Data)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().StringVar(&resultPath, "result", "",
		"path to the result file (default benches/PERFORMANCE.json)")
}
