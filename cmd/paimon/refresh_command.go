package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"paimon/internal/services/datapull"
)

// timeRounding keeps durations in terminal output readable.
const timeRounding = 10 * time.Millisecond

func newRefreshCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Run the data pull script to update the game data dump",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger()
			if err != nil {
				return err
			}

			client, err := datapull.New(cfg, logger)
			if err != nil {
				return err
			}
			if err := client.Pull(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Game data refreshed into %s\n", cfg.Paths.DataDir)
			return nil
		},
	}
}
