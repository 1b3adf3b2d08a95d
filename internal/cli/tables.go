package cli

import (
	"github.com/spf13/cobra"
)

func (a *app) tablesCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Print the loaded rate tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table, err := a.loadTable(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), table)
			}
			_, err = cmd.OutOrStdout().Write([]byte(renderTables(table)))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the tables as JSON")
	return cmd
}
