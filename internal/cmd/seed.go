package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"backoffice/internal/config/configs"
	"backoffice/internal/db"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the sample records into the configured store",
	Long: `Write the sample banners, coupons, customers, deals, deliveries,
products, requests, transactions and vendors into the configured store.
Existing records with the same keys are overwritten. Settings are only
written when none are stored.

With the memory driver the records are lost when the command exits, so
the command is only useful against PostgreSQL.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp(cmd.Context(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer a.close()
		if a.cfg.Storage.Driver == configs.DriverMemory {
			a.logger.Warn("seeding the memory store has no lasting effect")
		}
		if err = db.Seed(cmd.Context(), a.repos, time.Now()); err != nil {
			return err
		}
		cmd.Println("sample records written")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
