package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"paimon/internal/logging"
	"paimon/internal/roster"
	"paimon/internal/services/datapull"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var withRefresh bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build the character database from the local game data",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger()
			if err != nil {
				return err
			}

			if withRefresh {
				client, err := datapull.New(cfg, logger)
				if err != nil {
					return err
				}
				if err := client.Pull(cmd.Context()); err != nil {
					// A failed refresh is survivable when the previous
					// dump is still on disk; the table load decides.
					logger.Warn("data refresh failed, generating from existing documents", logging.Error(err))
					if _, statErr := os.Stat(cfg.AvatarTablePath()); statErr != nil {
						return err
					}
				}
			}

			summary, err := roster.Generate(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote %d characters to %s (%s)\n",
				summary.Characters, summary.OutputPath, summary.Duration.Round(timeRounding))
			return nil
		},
	}

	cmd.Flags().BoolVar(&withRefresh, "refresh", false, "Run the data pull script before generating")
	return cmd
}
