// Package main provides the CLI entrypoint of the abuse contact resolver. It
// loads configuration, initializes logging and wires the enrich and serve
// subcommands.
package main

import (
	"context"
	"os"

	"phishabuser/internal/config"
	"phishabuser/internal/enrich"
	"phishabuser/internal/logger"
	"phishabuser/internal/metrics"
	"phishabuser/internal/notify"
	"phishabuser/internal/pipeline"
	"phishabuser/internal/queryasn"
	"phishabuser/internal/queryrdap"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getRegistry creates the shared registry client used by every lookup.
func getRegistry(ctx context.Context, cfg *config.Config) *queryrdap.Client {
	client, err := queryrdap.New(queryrdap.Options{
		UserAgent:         cfg.RDAP.UserAgent,
		Timeout:           cfg.RDAP.Timeout,
		BootstrapURL:      cfg.RDAP.BootstrapURL,
		BootstrapCacheDir: cfg.RDAP.BootstrapCacheDir,
		RateLimit:         cfg.RDAP.RateLimit,
		RateBurst:         cfg.RDAP.RateBurst,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create registry client", zap.Error(err))
	}

	return client
}

// getASN opens the ASN database when one is configured. The returned resolver
// may be nil.
func getASN(ctx context.Context, cfg *config.Config) (*queryasn.Resolver, func()) {
	if cfg.GeoIP.ASNDatabase == "" {
		return nil, func() {}
	}

	resolver, err := queryasn.Open(cfg.GeoIP.ASNDatabase)
	if err != nil {
		logger.Fatal(ctx, "could not open asn database", zap.Error(err))
	}

	return resolver, func() {
		if err := resolver.Close(); err != nil {
			logger.Warn(ctx, "could not close asn database", zap.Error(err))
		}
	}
}

func newPipeline(ctx context.Context, cfg *config.Config, m *metrics.Metrics) (*pipeline.Pipeline, func()) {
	asn, closeASN := getASN(ctx, cfg)

	opts := enrich.Options{
		Registry: getRegistry(ctx, cfg),
		Metrics:  m,
	}
	if asn != nil {
		opts.ASN = asn
	}

	notifier := notify.Notifier{}
	if m != nil {
		notifier.Counter = m
	}

	return &pipeline.Pipeline{
		Enricher: enrich.New(opts),
		Notifier: notifier,
		Timeout:  cfg.EnrichTimeout,
	}, closeASN
}

func main() {
	var (
		configPath string
		cfg        *config.Config
	)

	ctx := context.Background()

	rootCmd := &cobra.Command{
		Use:          "phishabuser",
		Short:        "Finds who should receive abuse reports about a phishing message",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}

			*cfg = *loaded
			logger.Setup(cfg.Environment)

			return nil
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config File Path, environment only when empty")

	cfg = &config.Config{}

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		enrichCommand(cfg),
		serveCommand(cfg),
	)

	err := rootCmd.Execute()
	if err != nil {
		logger.Error(ctx, "command failed", zap.Error(err))
	}
	logger.Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
