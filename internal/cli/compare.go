package cli

import (
	"github.com/spf13/cobra"

	"benefits-engine/internal/engine"
)

func (a *app) compareCmd() *cobra.Command {
	var (
		baselinePath string
		scenarioPath string
		asJSON       bool
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare a baseline profile with a what-if scenario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			baseline, err := readProfile(baselinePath, cmd.InOrStdin())
			if err != nil {
				return err
			}
			scenario, err := readProfile(scenarioPath, cmd.InOrStdin())
			if err != nil {
				return err
			}
			table, err := a.loadTable(cmd.Context())
			if err != nil {
				return err
			}

			cmp, err := engine.Compare(table, baseline, scenario)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), cmp)
			}
			_, err = cmd.OutOrStdout().Write([]byte(renderComparison(cmp)))
			return err
		},
	}

	cmd.Flags().StringVar(&baselinePath, "baseline", "", "baseline profile JSON file")
	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "scenario profile JSON file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the comparison as JSON")
	_ = cmd.MarkFlagRequired("baseline")
	_ = cmd.MarkFlagRequired("scenario")

	return cmd
}
