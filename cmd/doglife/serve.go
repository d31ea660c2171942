package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"dog-life/internal/adapters/assets/memory"
	"dog-life/internal/adapters/assets/remote"
	pg "dog-life/internal/adapters/storage/postgres"
	"dog-life/internal/config"
	"dog-life/internal/platform/delay"
	"dog-life/internal/platform/logger"
	"dog-life/internal/ports/assets"
	"dog-life/internal/router"
	"dog-life/internal/samples"

	"github.com/spf13/cobra"
)

const (
	shutdownTimeout = 5 * time.Second
	sweepInterval   = time.Minute
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API (foreground)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if port, _ := cmd.Flags().GetString("port"); port != "" {
			cfg.Server.Port = port
		}
		return runServer(cmd.Context(), cfg)
	},
}

func init() {
	serveCmd.Flags().String("port", "", "listen port (overrides PORT)")
}

func newLogger(cfg config.Config) logger.Logger {
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})
}

func runServer(parent context.Context, cfg config.Config) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := newLogger(cfg)

	var db *sql.DB
	if cfg.Storage.DSN != "" {
		opened, err := pg.Open(ctx, cfg.Storage.DSN)
		if err != nil {
			return fmt.Errorf("opening postgres: %w", err)
		}
		defer opened.Close()
		db = opened
		log.Info("catalog backed by postgres", nil)
	}

	store, err := assetStore(cfg, log)
	if err != nil {
		return err
	}

	opts := router.Options{
		Log:             log,
		DB:              db,
		Assets:          store,
		Sleeper:         delay.Timer{},
		UploadDelay:     cfg.Stubs.UploadDelay,
		ThoughtDelay:    cfg.Stubs.ThoughtDelay,
		VoiceDelay:      cfg.Stubs.VoiceDelay,
		AnswerDelay:     cfg.Stubs.AnswerDelay,
		AnalysisDelay:   cfg.Stubs.AnalysisDelay,
		AIRateLimit:     cfg.Server.AIRateLimit,
		AIRateBurst:     cfg.Server.AIRateBurst,
		AudioTick:       cfg.Audio.Tick,
		AutoplayBlocked: cfg.Audio.AutoplayBlocked,
		SessionTTL:      cfg.Audio.SessionTTL,
	}
	manager := router.NewVoiceoverManager(opts)
	defer manager.Shutdown()
	opts.Voiceover = manager

	go manager.Run(ctx, sweepInterval)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(opts),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", logger.Fields{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down", nil)
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// assetStore usa el asset store remoto si hay URL; si no, las muestras locales.
func assetStore(cfg config.Config, log logger.Logger) (assets.Store, error) {
	if cfg.Assets.BaseURL == "" {
		return memory.NewStore(samples.Assets()), nil
	}
	client, err := remote.NewClient(remote.Config{
		BaseURL: cfg.Assets.BaseURL,
		APIKey:  cfg.Assets.APIKey,
		Timeout: cfg.Assets.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("asset store client: %w", err)
	}
	log.Info("using remote asset store", logger.Fields{"base_url": cfg.Assets.BaseURL})
	return client, nil
}
