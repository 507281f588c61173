package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/texnokross/texnokross/internal/infrastructure/config"
	"github.com/texnokross/texnokross/internal/infrastructure/storage"
	httpRouter "github.com/texnokross/texnokross/internal/interfaces/http"
	"github.com/texnokross/texnokross/internal/interfaces/cli/clienv"
	"github.com/texnokross/texnokross/internal/shared/logger"
)

const shutdownTimeout = 30 * time.Second

var (
	env       string
	configDir string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the storefront API and the merchant endpoint the payment provider calls.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configDir, "config-dir", "c", "", "Directory holding config.yaml (default: ./configs)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := clienv.Init(env, configDir)
	if err != nil {
		return err
	}
	log := logger.NewLogger()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	backend, err := storage.Open(ctx, storageOptions(cfg), log.Named("storage"))
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := backend.Close(); err != nil {
			log.Errorw("failed to close storage", "error", err)
		}
	}()

	redisClient, closeRedis, err := rateLimitRedis(ctx, cfg, backend, log)
	if err != nil {
		return err
	}
	defer closeRedis()

	container := httpRouter.NewContainer(backend.Store, redisClient, cfg, log)

	mode := "PRODUCTION"
	if cfg.Payme.TestMode {
		mode = "TEST"
	}
	log.Infow("payme merchant settings",
		"mode", mode,
		"merchant_id_configured", container.PaymentConfigured(),
		"checkout_url", cfg.Payme.ActiveCheckoutURL(),
	)
	if !container.PaymentConfigured() {
		log.Warnw("payme merchant id is not configured, payment links are disabled")
	}

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      container.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infow("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode,
			"storage", cfg.Storage.Driver,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Infow("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Errorw("server forced to shutdown", "error", err)
			return err
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Infow("server exited gracefully")
	return nil
}

func storageOptions(cfg *config.Config) storage.Options {
	return storage.Options{
		Storage:  cfg.Storage,
		Database: cfg.Database,
		Redis:    cfg.Redis,
	}
}

// rateLimitRedis reuses the storage client when the store is Redis and
// dials a dedicated one otherwise.
func rateLimitRedis(ctx context.Context, cfg *config.Config, backend *storage.Backend, log logger.Interface) (*redis.Client, func(), error) {
	noop := func() {}
	if !cfg.RateLimit.Enabled {
		return nil, noop, nil
	}
	if backend.Redis != nil {
		return backend.Redis, noop, nil
	}
	client, err := storage.OpenRedis(ctx, &cfg.Redis)
	if err != nil {
		return nil, noop, fmt.Errorf("rate limiting needs redis: %w", err)
	}
	return client, func() {
		if err := client.Close(); err != nil {
			log.Warnw("failed to close rate limit redis client", "error", err)
		}
	}, nil
}

