package main

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	httpadapter "github.com/evofsm/evofsm/internal/adapters/http"
	"github.com/evofsm/evofsm/pkg/observability"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the engine over HTTP",
	Long: `serve exposes the engine as a JSON API: genome validation, mutation,
minimization, and machine runs, plus /healthz and Prometheus /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, err := buildEngine(cmd)
		if err != nil {
			return err
		}

		addr, _ := cmd.Flags().GetString("addr")

		registry := prometheus.NewRegistry()
		metrics := observability.NewMetrics(registry)
		handler := httpadapter.NewHandler(eng, metrics, registry)

		srv := &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		}

		cmd.Printf("Listening on %s\n", addr)
		return srv.ListenAndServe()
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Listen address")
	rootCmd.AddCommand(serveCmd)
}
