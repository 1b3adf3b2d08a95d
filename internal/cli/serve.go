package cli

import (
	"github.com/spf13/cobra"

	"benefits-engine/internal/handler"
)

func (a *app) serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the estimator over HTTP",
		Long: `Serve the estimator over HTTP.

Routes:
  POST /api/calculate-benefits-eligibility
  POST /api/compare-scenarios
  GET  /api/rate-tables
  GET  /healthz`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table, err := a.loadTable(cmd.Context())
			if err != nil {
				return err
			}
			return handler.ListenAndServe(cmd.Context(), a.cfg.Addr(), handler.New(table, a.logger))
		},
	}

	cmd.Flags().String("port", "", "listen port (default from BENEFITS_PORT or 8080)")
	_ = a.v.BindPFlag("server.port", cmd.Flags().Lookup("port"))

	return cmd
}
