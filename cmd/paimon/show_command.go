package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/text/collate"

	"paimon/internal/document"
	"paimon/internal/services"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display the generated character database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			value, err := document.Read(cfg.Paths.OutputPath)
			if err != nil {
				return err
			}
			characters, ok := value.(map[string]any)
			if !ok {
				return services.Wrap(services.ErrValidation, "show", "read",
					fmt.Sprintf("document %s is not a character database", cfg.Paths.OutputPath), nil)
			}

			rows := make([][]string, 0, len(characters))
			for id, entry := range characters {
				fields, ok := entry.(map[string]any)
				if !ok {
					return services.Wrap(services.ErrValidation, "show", "read",
						fmt.Sprintf("character %s has no field map", id), nil)
				}
				rows = append(rows, []string{
					id,
					stringField(fields, "name"),
					stringField(fields, "rarity"),
					stringField(fields, "element"),
					stringField(fields, "weapon"),
				})
			}

			collator := collate.New(cfg.LanguageTag())
			sort.Slice(rows, func(i, j int) bool {
				if c := collator.CompareString(rows[i][1], rows[j][1]); c != 0 {
					return c < 0
				}
				return rows[i][0] < rows[j][0]
			})

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "Name", "Rarity", "Element", "Weapon"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft, alignLeft},
			))
			fmt.Fprintf(out, "%d characters\n", len(rows))
			return nil
		},
	}
	return cmd
}

func stringField(fields map[string]any, key string) string {
	value, ok := fields[key]
	if !ok || value == nil {
		return "-"
	}
	s, ok := value.(string)
	if !ok {
		return fmt.Sprint(value)
	}
	return s
}
