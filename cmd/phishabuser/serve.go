package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"phishabuser/internal/config"
	"phishabuser/internal/logger"
	"phishabuser/internal/metrics"
	"phishabuser/internal/webhook"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runServer serves handler until ctx is done, then shuts down gracefully. A
// listener failure is returned right away.
func runServer(ctx context.Context, cfg *config.Config, handler http.Handler) error {
	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return eris.Wrapf(err, "could not start webserver on %s", cfg.HTTP.Addr)
	case <-ctx.Done():
	}

	logger.Info(ctx, "stopping webserver...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return eris.Wrap(err, "could not stop webserver")
	}

	return nil
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the report webhook and the metrics endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)

			p, closeASN := newPipeline(ctx, cfg, metrics.New(reg))
			defer closeASN()

			router := webhook.NewRouter(
				webhook.New(p),
				cfg.HTTP.MetricsPath,
				promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
			)

			return runServer(ctx, cfg, router)
		},
	}

	return cmd
}
