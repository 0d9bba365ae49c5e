package cmd

import (
	"errors"

	"madad-backend/services"

	"github.com/spf13/cobra"
)

var errDropNotConfirmed = errors.New("refusing to drop the services table without --yes")

var dropYes bool

var dropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Drop the services table (destroys all listings)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if !dropYes {
			return errDropNotConfirmed
		}

		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer func() { _ = a.logger.Sync() }()

		if err := services.NewInitializer(a.connector, a.logger).DropTable(cmd.Context()); err != nil {
			return err
		}
		cmd.Println("Old 'services' table dropped (if it existed).")
		return nil
	},
}

func init() {
	dropCmd.Flags().BoolVar(&dropYes, "yes", false, "confirm the table should be dropped")
	rootCmd.AddCommand(dropCmd)
}
