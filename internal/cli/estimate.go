package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"benefits-engine/internal/engine"
	"benefits-engine/internal/rules"
)

func (a *app) estimateCmd() *cobra.Command {
	var (
		profilePath  string
		asJSON       bool
		sortPriority bool
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate benefits and recommendations for a profile",
		Long: `Estimate benefits and recommendations for a profile.

The profile is a JSON document (use "-" to read stdin), for example:

  {
    "disability_rating": 70,
    "dependents": {"spouse": true, "children": 1},
    "military_rank": "E-7",
    "years_of_service": 22,
    "income_streams": {"employment": 3200},
    "monthly_costs": {"housing": 1800, "food": 650},
    "savings": 4000
  }`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, err := readProfile(profilePath, cmd.InOrStdin())
			if err != nil {
				return err
			}
			table, err := a.loadTable(cmd.Context())
			if err != nil {
				return err
			}

			est := engine.Estimate(table, profile)
			if sortPriority {
				est.Recommendations = rules.SortByPriority(est.Recommendations)
			}
			a.logger.Debug("Estimate calculated",
				zap.Int("messages", len(est.Messages)),
				zap.Int("recommendations", len(est.Recommendations)))

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), est)
			}
			_, err = cmd.OutOrStdout().Write([]byte(renderEstimate(est)))
			return err
		},
	}

	cmd.Flags().StringVarP(&profilePath, "profile", "p", "", "profile JSON file, or - for stdin")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw estimate as JSON")
	cmd.Flags().BoolVar(&sortPriority, "sort-priority", false, "order recommendations high to low instead of rule order")
	_ = cmd.MarkFlagRequired("profile")

	return cmd
}
