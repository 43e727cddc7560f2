package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/familybiz/backend/internal/bridge"
	"github.com/familybiz/backend/internal/config"
	"github.com/familybiz/backend/internal/models"
	"github.com/familybiz/backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// A local .env file is optional
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Create the data directory
	if err := os.MkdirAll(filepath.Dir(cfg.DB.Path), os.ModePerm); err != nil {
		log.Fatal().Msg(err.Error())
	}

	if err := models.Connect(cfg.DB.Path); err != nil {
		log.Fatal().Msg(err.Error())
	}

	b := configureBridge(cfg)

	// Restore the ledger from the cloud before serving. A failed or slow
	// pull is not fatal, the local state stands.
	if b != nil {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Sync.StartupTimeout)
		if err := b.Pull(ctx); err != nil {
			log.Warn().Err(err).Msg("could not restore the ledger from the cloud, continuing with local state")
		}
		cancel()
	}

	r, teardown, err := router.Config()
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(r.Group("/"), b)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: r,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msg(err.Error())
		}
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-stopCtx.Done()

	// An edit still waiting in the debounce window would be lost on exit
	b.Flush()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Msg(err.Error())
	}
}

// configureBridge sets up the sync bridge, or returns nil when no cloud
// URL is configured.
func configureBridge(cfg *config.Config) *bridge.Bridge {
	if cfg.Sync.CloudURL == "" {
		log.Info().Msg("no cloud URL configured, sync is disabled")
		return nil
	}

	client := bridge.NewClient(cfg.Sync.CloudURL, cfg.Sync.Timeout)

	return bridge.New(
		client,
		cfg.Sync.Debounce,
		func() (models.Ledger, error) { return models.Snapshot(models.DB) },
		func(ledger models.Ledger) error { return models.Replace(models.DB, ledger) },
	)
}
