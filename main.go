package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/config"
	"github.com/robalobadob/hangman/internal/httpserver"
	"github.com/robalobadob/hangman/internal/leaderboard"
	"github.com/robalobadob/hangman/internal/random"
	"github.com/robalobadob/hangman/internal/session"
	"github.com/robalobadob/hangman/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	vocab, err := words.Load(cfg.WordsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load vocabulary")
	}
	rng, err := random.New()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed random source")
	}

	sess, err := session.New(vocab.Words(), rng,
		session.WithLeaderboard(leaderboard.NewMemoryStore()),
		session.WithLogger(log.Logger.With().Str("component", "session").Logger()),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start session")
	}

	srv := httpserver.New(sess, vocab, httpserver.Options{
		ClientOrigin:     cfg.ClientOrigin,
		Timeout:          cfg.RequestTimeout,
		LeaderboardLimit: cfg.LeaderboardLimit,
		Logger:           log.Logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("port", cfg.Port).Int("words", vocab.Len()).Msg("starting go-server")
	if err := srv.Run(ctx, cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
