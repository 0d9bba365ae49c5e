package cmd

import (
	"madad-backend/config"
	"madad-backend/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var envFile string

// newConnector is swapped out in tests.
var newConnector = func(cfg config.DatabaseConfig, log *zap.Logger) config.Connector {
	return config.NewPostgresConnector(cfg, log, nil)
}

var rootCmd = &cobra.Command{
	Use:           "madad",
	Short:         "Madad local services catalog backend",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")
}

// Execute runs the command line.
func Execute() error {
	return rootCmd.Execute()
}

type app struct {
	cfg       config.Config
	logger    *zap.Logger
	connector config.Connector
}

func bootstrap() (*app, error) {
	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		return nil, err
	}

	log, err := utils.NewLogger(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:       cfg,
		logger:    log,
		connector: newConnector(cfg.Database, log),
	}, nil
}
