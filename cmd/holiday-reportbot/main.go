package main

import (
	"fmt"
	"os"

	"holiday-reportbot/internal/config"
	"holiday-reportbot/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const serviceName = "holiday-reportbot"

var (
	configPath string

	cfg *config.Config
	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   serviceName,
	Short: "LINE bot that collects holiday status reports",
	Long: `holiday-reportbot receives LINE webhook messages, records each soldier's
holiday status report (location, body temperature, symptom) and replies with
the class summary for the current reporting period.

Run without a subcommand to start the webhook server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(configPath)
		if err != nil {
			return err
		}
		l, err := logger.NewLogger(c.Log.Level, c.Log.Format, serviceName, logger.FileOptions{
			Filename:   c.Log.File,
			MaxSizeMB:  c.Log.MaxSizeMB,
			MaxBackups: c.Log.MaxBackups,
			MaxAgeDays: c.Log.MaxAgeDays,
		})
		if err != nil {
			return fmt.Errorf("failed to init logger: %w", err)
		}
		cfg, log = c, l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
	RunE: runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (environment variables override it)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
