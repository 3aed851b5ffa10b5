package main

import (
	"fmt"
	"os"

	"github.com/2beens/fitsync/internal/config"
	"github.com/2beens/fitsync/internal/logging"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	envFlag    string
	configFlag string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "fitsync",
	Short: "fitsync keeps fitness courses, enrollment and progress in sync with the fitness API",
	Long: `fitsync is a headless client of the fitness API:
browse the course catalog, sign in, enroll in courses, record workout
progress, or run a local server that UIs can talk to.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(envFlag, configFlag)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logging.Setup(logging.LoggerSetupParams{
			LogFileName:      cfg.LogsPath,
			LogToStdout:      cfg.LogToStdout,
			LogLevel:         cfg.LogLevel,
			LogFormatJSON:    cfg.LogFormatJSON,
			Environment:      cfg.Environment,
			SentryEnabled:    cfg.SentryEnabled,
			SentryDSN:        os.Getenv("SENTRY_DSN"),
			SentryServerName: "fitsync",
		})
		log.Debugf("---->> running in [%s] environment, api [%s]", cfg.Environment, cfg.APIURL)

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFlag, "env", "development", "environment [prod | production | dev | development]")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "./config.toml", "path for the TOML config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
