package cmd

import (
	"madad-backend/services"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create the services table and load the initial listings",
	Long: `Create the services table if it is missing, then insert the initial
ten listings if the table is empty. Safe to run repeatedly.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer func() { _ = a.logger.Sync() }()

		initializer := services.NewInitializer(a.connector, a.logger)
		if err := initializer.Setup(cmd.Context()); err != nil {
			return err
		}
		cmd.Println("Setup complete")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)
}
