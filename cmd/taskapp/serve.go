package main

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/kokumai1113/task-app/ui"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			adapter, cfg, err := buildAdapter()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Addr
			}

			// Metrics sit outside the auth wrapper so scrapers reach
			// them without credentials, same as the health probe.
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			mux.Handle("/", ui.Handler(adapter, cfg.Auth))

			fmt.Println("🚀 Task App started!")
			fmt.Printf("📱 Visit: http://localhost%s/\n", addr)
			if cfg.Auth.Enabled() {
				fmt.Println("🔐 Basic Authentication enabled")
			} else {
				fmt.Println("🚫 Authentication disabled")
			}

			return http.ListenAndServe(addr, mux)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to TASKAPP_ADDR, then :8080)")

	return cmd
}
