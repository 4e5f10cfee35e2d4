package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/stakevault/internal/adapters/metrics"
	statusadapter "github.com/bnema/stakevault/internal/adapters/render/status"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show pool, agents and unlock batches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.view(cmd.Context(), func(s *session) error {
				status, err := s.service.Status(cmd.Context())
				if err != nil {
					return err
				}

				if asJSON {
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					return enc.Encode(status)
				}

				rendered, err := app.statusRenderer(status, statusadapter.RenderOptions{Now: s.clock.Now()})
				if err != nil {
					return fmt.Errorf("render status: %w", err)
				}

				_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
				return err
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newMetricsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "Print vault gauges in Prometheus text format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.view(cmd.Context(), func(s *session) error {
				status, err := s.service.Status(cmd.Context())
				if err != nil {
					return err
				}

				exporter := metrics.NewExporter()
				exporter.Observe(status)
				return exporter.WriteText(cmd.OutOrStdout())
			})
		},
	}
}
