package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/berkgedik92/scrabble-word-finder/api"
	"github.com/berkgedik92/scrabble-word-finder/config"
	"github.com/berkgedik92/scrabble-word-finder/runner"
)

const (
	GracefulShutdownTimeout = 20 * time.Second
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if ex, err := os.Executable(); err == nil {
		cfg.AdjustRelativePaths(filepath.Dir(ex))
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	log.Info().Interface("config", cfg.SanitizedSettings()).Msg("loaded-config")

	g, err := runner.NewGameRunner(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("could not load game")
	}
	srv := &http.Server{
		Addr:              cfg.GetString(config.ConfigListenAddr),
		Handler:           api.NewServer(g, cfg.GetInt(config.ConfigMaxResults)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		log.Info().Str("addr", srv.Addr).Msg("listening")
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("got quit signal...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), GracefulShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if err := eg.Wait(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
	log.Info().Msg("server gracefully shut down")
}
