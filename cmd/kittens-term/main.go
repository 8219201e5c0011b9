package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Garsondee/Kitten-Dodge/internal/config"
	"github.com/Garsondee/Kitten-Dodge/internal/game"
	"github.com/Garsondee/Kitten-Dodge/internal/term"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// logFile receives log output; the terminal itself belongs to tcell.
const logFile = "kittens-term.log"

func main() {
	var cfgPath string
	flag.StringVar(&cfgPath, "config", config.DefaultPath, "path to the TOML config file")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Logging.Output == "stderr" || cfg.Logging.Output == "stdout" {
		cfg.Logging.Output = logFile
	}
	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	engine, err := game.NewEngine(game.WithSeed(cfg.Session.Seed), game.WithLogger(logger))
	if err != nil {
		logger.Fatal("invalid rules", zap.Error(err))
	}

	s, err := tcell.NewScreen()
	if err != nil {
		logger.Fatal("failed to create screen", zap.Error(err))
	}
	if err := s.Init(); err != nil {
		logger.Fatal("failed to init screen", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := term.NewApp(s, engine, nil, logger)
	err = app.Run(ctx)
	s.Fini()
	if err != nil && ctx.Err() == nil {
		logger.Error("terminal session failed", zap.Error(err))
	}
	logger.Info("session closed", zap.Int("score", engine.DisplayScore()), zap.Int("frames", engine.Frame()))
}
