package main

import (
	"errors"
	"flag"
	"log"

	"github.com/Garsondee/Kitten-Dodge/internal/assets"
	"github.com/Garsondee/Kitten-Dodge/internal/config"
	"github.com/Garsondee/Kitten-Dodge/internal/game"
	"github.com/Garsondee/Kitten-Dodge/internal/screen"
	"github.com/Garsondee/Kitten-Dodge/internal/sfx"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

func main() {
	var cfgPath string
	flag.StringVar(&cfgPath, "config", config.DefaultPath, "path to the TOML config file")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	var manifest *assets.Manifest
	if cfg.Assets.Manifest != "" {
		manifest, err = assets.LoadManifest(cfg.Assets.Manifest)
		if err != nil {
			logger.Fatal("failed to load asset manifest", zap.String("path", cfg.Assets.Manifest), zap.Error(err))
		}
	}

	engine, err := game.NewEngine(game.WithSeed(cfg.Session.Seed), game.WithLogger(logger))
	if err != nil {
		logger.Fatal("invalid rules", zap.Error(err))
	}
	rules := engine.Rules()

	lib := assets.NewLibrary(manifest, rules, logger)
	if err := lib.Preload(); err != nil {
		logger.Warn("some sprites will use placeholders", zap.Error(err))
	}

	audio := sfx.New(cfg.Audio, logger)
	if err := audio.Init(); err != nil {
		logger.Warn("audio disabled", zap.Error(err))
	}
	defer audio.Close()
	engine.Subscribe(audio.OnEvent)

	logger.Info("starting",
		zap.String("title", cfg.Window.Title),
		zap.Float64("scale", cfg.Window.Scale),
		zap.Int64("seed", cfg.Session.Seed))

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(
		int(float64(rules.GameWidth)*cfg.Window.Scale),
		int(float64(rules.GameHeight)*cfg.Window.Scale),
	)
	g := screen.New(engine, lib, logger)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game exited", zap.Error(err))
	}
	logger.Info("session closed", zap.Int("score", engine.DisplayScore()), zap.Int("frames", engine.Frame()))
}
