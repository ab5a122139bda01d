package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/passcheck/passcheck/internal/config"
	"github.com/passcheck/passcheck/internal/repository/wordlist"
	"github.com/passcheck/passcheck/internal/service/strength"
	"github.com/passcheck/passcheck/internal/shell"
	"github.com/passcheck/passcheck/pkg/logger"
)

func main() {
	// Optional .env for local overrides
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("PASSCHECK_CONFIG"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.NewLogger(&logger.Config{
		Level:      logger.ParseLevel(cfg.Log.Level),
		TimeFormat: time.RFC3339,
		Output:     os.Stderr,
	})

	repo := wordlist.NewRepository(cfg.Wordlist.Path)
	evaluator := strength.NewService(repo)
	sh := shell.New(evaluator, cfg.Shell, os.Stdin, os.Stdout, appLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := sh.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("session terminated")
	}
}
