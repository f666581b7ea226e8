package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"

	"github.com/Arjun0606/cabbageseo-sub003/internal/api"
	"github.com/Arjun0606/cabbageseo-sub003/internal/api/handler"
	"github.com/Arjun0606/cabbageseo-sub003/internal/config"
	"github.com/Arjun0606/cabbageseo-sub003/internal/preview"
	"github.com/Arjun0606/cabbageseo-sub003/internal/queries"
	"github.com/Arjun0606/cabbageseo-sub003/internal/ratelimit"
	"github.com/Arjun0606/cabbageseo-sub003/internal/scoring"
	"github.com/Arjun0606/cabbageseo-sub003/internal/sitecontext"
	"github.com/Arjun0606/cabbageseo-sub003/internal/visibility"
	"github.com/Arjun0606/cabbageseo-sub003/pkg/aiplatform"
	"github.com/Arjun0606/cabbageseo-sub003/pkg/aiplatform/gemini"
	"github.com/Arjun0606/cabbageseo-sub003/pkg/aiplatform/openaichat"
	"github.com/Arjun0606/cabbageseo-sub003/pkg/aiplatform/perplexity"
	"github.com/Arjun0606/cabbageseo-sub003/pkg/logger"
	"github.com/Arjun0606/cabbageseo-sub003/pkg/storage"
)

// setupScanner wires the scan pipeline: rate limiter, DNS resolver, site
// context, query generation, the three AI platforms, scoring and persistence.
// The OpenAI credential additionally powers the model-assisted steps; without
// it query generation falls back to templates and classification and previews
// are skipped.
func setupScanner(ctx context.Context, cfg *config.Config, reports storage.ReportStorage) visibility.Scanner {
	// otel metrics exported through the default prometheus registry, served
	// by the api server's metrics endpoint
	exporter, err := otelprom.New(otelprom.WithRegisterer(prometheus.DefaultRegisterer))
	if err != nil {
		logger.Fatal(ctx, "could not create otel exporter", zap.Error(err))
	}
	meter := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter)).Meter("visibility")

	// per-call timeouts come from the scan pipeline, not the transport
	httpClient := &http.Client{}

	openAI := openaichat.New(cfg.Providers.OpenAI.APIKey, cfg.Providers.OpenAI.Model)

	deps := visibility.Deps{
		Limiter:  ratelimit.NewMemory(ratelimit.NewOptions(cfg)),
		Resolver: net.DefaultResolver,
		Site: sitecontext.New(httpClient, sitecontext.Options{
			Timeout: cfg.Scan.SiteContextTimeout,
		}),
		Queries: queries.New(nil),
		Platforms: []aiplatform.Client{
			perplexity.New(httpClient, cfg.Providers.Perplexity.APIKey, cfg.Providers.Perplexity.Model),
			gemini.New(httpClient, cfg.Providers.Gemini.APIKey, cfg.Providers.Gemini.Model),
			openAI,
		},
		Scorer:  scoring.Default(),
		Reports: reports,
		Meter:   meter,
	}
	if openAI.Configured() {
		deps.Queries = queries.New(openAI)
		deps.Classifier = sitecontext.NewClassifier(openAI)
		deps.Preview = preview.New(openAI)
	} else {
		logger.Warn(ctx, "OPENAI_API_KEY is not set, using template queries and skipping previews")
	}

	scanner, err := visibility.New(deps, visibility.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create scanner", zap.Error(err))
	}

	return scanner
}

func setupServer(ctx context.Context, cfg *config.Config, scanner visibility.Scanner) func(ctx context.Context) {
	server := api.NewServer(api.Deps{
		Deps: handler.Deps{Scanner: scanner},
	}, api.NewOptions(cfg))

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the API server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			scanner := setupScanner(ctx, cfg, strg)
			stopWebserver := setupServer(ctx, cfg, scanner)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
		},
	}

	return cmd
}
