package main

import (
	"context"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/SyrovatkaA/memory-puzzle-game/internal/anim"
	"github.com/SyrovatkaA/memory-puzzle-game/internal/clock"
	"github.com/SyrovatkaA/memory-puzzle-game/internal/config"
	"github.com/SyrovatkaA/memory-puzzle-game/internal/game"
	"github.com/SyrovatkaA/memory-puzzle-game/internal/httpserver"
	"github.com/SyrovatkaA/memory-puzzle-game/internal/loop"
	"github.com/SyrovatkaA/memory-puzzle-game/internal/seed"
	"github.com/SyrovatkaA/memory-puzzle-game/internal/store"
	"github.com/SyrovatkaA/memory-puzzle-game/internal/term"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("MEMORY_CONFIG"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// The terminal belongs to the game, so logs go to a file.
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.LogFile).Msg("failed to open log file")
	}
	defer logFile.Close()
	log.Logger = zerolog.New(logFile).With().Timestamp().Logger()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	log.Info().
		Int("boardWidth", cfg.BoardWidth).Int("boardHeight", cfg.BoardHeight).
		Int("fps", cfg.FPS).Int("revealSpeed", cfg.RevealSpeed).
		Str("statusAddr", cfg.StatusAddr).
		Msg("config loaded")

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}

func run(cfg *config.Config) error {
	sd := seed.Resolve(cfg.Seed, cfg.Daily, cfg.DailySalt, time.Now())
	rng := rand.New(rand.NewSource(sd))
	log.Info().Int64("seed", sd).Bool("daily", cfg.Daily).Msg("dealing boards")

	gen, err := game.NewGenerator(cfg.BoardWidth, cfg.BoardHeight, cfg.Shapes, cfg.Colors, rng)
	if err != nil {
		return err
	}

	screen, err := term.Open()
	if err != nil {
		return err
	}
	defer screen.Fini()

	scale := term.Scale{ColumnPixels: cfg.ColumnPixels, RowPixels: cfg.RowPixels}
	term.CheckSize(screen, cfg.WindowWidth, cfg.WindowHeight, scale)

	layout := cfg.Layout()
	renderer := term.NewRenderer(screen, layout, scale, term.Colors{Box: cfg.BoxColor, Highlight: cfg.Highlight})
	input := term.NewInput(screen, scale)
	clk := clock.NewReal()

	seq := anim.New(renderer, clk, anim.Config{
		BoxSize:         cfg.BoxSize,
		RevealSpeed:     cfg.RevealSpeed,
		FPS:             cfg.FPS,
		BatchSize:       cfg.BatchSize,
		FlashCycles:     cfg.FlashCycles,
		FlashDelay:      cfg.FlashDelay,
		Background:      cfg.Background,
		FlashBackground: cfg.LightBackground,
	}, gen.Rand())
	ctl := game.NewController(gen, seq, cfg.Timing())

	mem := store.NewMemoryStore()
	if cfg.StatusAddr != "" {
		srv := httpserver.New(mem)
		go func() {
			log.Info().Str("addr", cfg.StatusAddr).Msg("starting status server")
			if err := srv.Start(cfg.StatusAddr); err != nil {
				log.Error().Err(err).Msg("status server exited")
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	l := loop.New(ctl, seq, renderer, input, clk, layout, loop.Config{FPS: cfg.FPS, Background: cfg.Background}, mem)
	return l.Run(ctx)
}
