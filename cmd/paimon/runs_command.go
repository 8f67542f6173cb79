package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"paimon/internal/history"
	"paimon/internal/services"
)

func newRunsCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recent pipeline runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.History.Enabled {
				return services.Wrap(services.ErrConfiguration, "runs", "open",
					"run history is disabled in the configuration", nil)
			}

			store, err := history.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No recorded runs")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				detail := run.ErrorMessage
				if run.Status == history.StatusCompleted {
					detail = run.OutputPath
				}
				rows = append(rows, []string{
					run.StartedAt.Local().Format("2006-01-02 15:04:05"),
					string(run.Status),
					strconv.Itoa(run.Characters),
					run.Language,
					run.FinishedAt.Sub(run.StartedAt).Round(timeRounding).String(),
					detail,
				})
			}

			fmt.Fprintln(out, renderTable(
				[]string{"Started", "Status", "Characters", "Language", "Duration", "Detail"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to list")
	return cmd
}
