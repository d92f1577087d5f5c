package main

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/berkgedik92/scrabble-word-finder/config"
	"github.com/berkgedik92/scrabble-word-finder/shell"
)

var (
	GitVersion string
)

//go:embed wordfinder.txt
var banner string

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	// Relative data directories that do not exist in the working directory
	// are looked up next to the executable.
	if ex, err := os.Executable(); err == nil {
		cfg.AdjustRelativePaths(filepath.Dir(ex))
	}

	level := zerolog.InfoLevel
	if cfg.GetBool(config.ConfigDebug) {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).With().Timestamp().Logger()
	log.Debug().Msgf("Loaded config: %v", cfg.SanitizedSettings())

	sc, err := shell.NewShellController(cfg)
	if err != nil {
		log.Error().Err(err).Msg("could not start shell")
		os.Exit(1)
	}

	if argsLine := strings.TrimSpace(strings.Join(cfg.Args(), " ")); argsLine != "" {
		sc.Execute(argsLine)
		return
	}
	fmt.Println(banner)
	fmt.Println(GitVersion)
	sc.Loop()
}
