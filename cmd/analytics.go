package cmd

import (
	"os"

	"github.com/repodocs/repodoc/analytics"
	"github.com/repodocs/repodoc/common"
	"github.com/spf13/cobra"
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Print the usage report",
	Long:  `Print every recorded documentation operation plus cost and token totals.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := common.WithYamlFile()

		usage, err := analytics.Open(settings.AnalyticsDB)
		if err != nil {
			return err
		}
		defer usage.Close()

		return usage.Report(cmd.Context(), os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(analyticsCmd)
}
