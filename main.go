package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/MianHassanSohail/NumberSnake/prefabs"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "", "path to a game yaml (default: prefabs/game.yaml, embedded copy if absent)")
	platform := flag.String("platform", string(prefabs.PlatformEditor), "tuning target: editor or mobile")
	seed := flag.Uint64("seed", 1, "level generation seed")
	debug := flag.Bool("debug", false, "enable debug mode")
	watch := flag.Bool("watch", true, "reload the config file when it changes on disk")
	levelName := flag.String("level", "", "level layout in levels/ (basename, .json optional); empty generates one")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, watchPath, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	var reloader *prefabs.Reloader
	if *watch && watchPath != "" {
		reloader, err = prefabs.NewReloader(watchPath, logger)
		if err != nil {
			logger.Warn("config watch disabled", "path", watchPath, "err", err)
		} else {
			defer reloader.Close()
		}
	}

	game, err := NewGame(GameOptions{
		Config:   cfg,
		Platform: prefabs.Platform(*platform),
		Seed:     *seed,
		Layout:   *levelName,
		Debug:    *debug,
		Logger:   logger,
		Reloader: reloader,
	})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth*3/4, baseHeight*3/4)
	ebiten.SetWindowTitle(cfg.Name)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// loadConfig returns the config and the on-disk path worth watching, if
// any.
func loadConfig(path string) (*prefabs.GameConfig, string, error) {
	if path != "" {
		cfg, err := prefabs.LoadGameConfigFile(path)
		return cfg, path, err
	}
	cfg, err := prefabs.LoadGameConfig()
	if err != nil {
		return nil, "", err
	}
	disk := filepath.Join("prefabs", prefabs.ConfigFile)
	if _, err := os.Stat(disk); err != nil {
		return cfg, "", nil
	}
	return cfg, disk, nil
}
