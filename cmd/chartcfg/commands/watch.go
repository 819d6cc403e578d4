package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/dshills/chartcfg/internal/defaults"
	"github.com/dshills/chartcfg/internal/logging"
	"github.com/dshills/chartcfg/internal/reload"
)

func newWatchCommand(g *globals) *cobra.Command {
	var (
		debounce    time.Duration
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-validate and reload a bundle whenever its files change",
		Long: `Watch the bundle given by --bundle and every document it names.

Each change reloads the whole bundle; an invalid edit is reported and
the previously loaded defaults stay in place. With --metrics-addr the
resolution and reload counters are served for Prometheus.`,
		Example: `  chartcfg watch -b bundle.yaml
  chartcfg watch -b bundle.yaml --metrics-addr :9464`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if g.bundle == "" {
				return errors.New("watch needs --bundle")
			}
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			target := defaults.NewContext(
				defaults.WithLogger(logging.Component(g.logger, "defaults")),
				defaults.WithObserver(g.observer),
			)
			r := reload.New(g.bundle, g.newLoader(), target,
				reload.WithDebounce(debounce),
				reload.WithLogger(logging.Component(g.logger, "reload")),
			)
			r.OnReload(func(res reload.Result) {
				if res.Err != nil {
					fmt.Fprintf(out, "reload failed: %v\n", res.Err)
					return
				}
				fmt.Fprintf(out, "reloaded: %v\n", res.Files)
			})

			if metricsAddr != "" {
				stop := serveMetrics(ctx, metricsAddr, g)
				defer stop()
			}

			fmt.Fprintf(out, "watching %s\n", g.bundle)
			return r.Run(ctx)
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", reload.DefaultDebounce, "quiet period before reloading")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")

	return cmd
}

func serveMetrics(ctx context.Context, addr string, g *globals) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", g.observer.Handler())
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			g.logger.Error().Err(err).Str("addr", addr).Msg("metrics server stopped")
		}
	}()
	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}
}
