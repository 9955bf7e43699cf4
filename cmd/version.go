package cmd

import (
	"fmt"

	"github.com/repodocs/repodoc/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the version of repodoc`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("repodoc v%s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
