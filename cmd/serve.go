package cmd

import (
	"github.com/repodocs/repodoc/analytics"
	"github.com/repodocs/repodoc/common"
	"github.com/repodocs/repodoc/logger"
	"github.com/repodocs/repodoc/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the documentation web server",
	Long: `Serve an upload page where TypeScript files can be dropped for
documentation. Documented code, the original code and the token count are
returned as JSON and every successful run is recorded in the analytics
database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := common.WithYamlFile()

		backend, err := newBackend(cmd, settings)
		if err != nil {
			return err
		}

		var usage *analytics.Logger
		if settings.AnalyticsDB != "" {
			usage, err = analytics.Open(settings.AnalyticsDB)
			if err != nil {
				logger.Warnf("Running without analytics: %v", err)
			} else {
				defer usage.Close()
			}
		}

		port, _ := cmd.Flags().GetString("port")
		return server.New(backend, usage, settings).Start(port)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	addBackendFlags(serveCmd)
	serveCmd.Flags().String("port", "8080", "Port to listen on")
}
