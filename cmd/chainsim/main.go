// Command chainsim runs a session without a window and prints the chain at
// regular checkpoints. It is handy for checking config changes.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/MianHassanSohail/NumberSnake/event"
	"github.com/MianHassanSohail/NumberSnake/input"
	"github.com/MianHassanSohail/NumberSnake/prefabs"
	"github.com/MianHassanSohail/NumberSnake/session"
)

func main() {
	configPath := flag.String("config", "", "path to a game yaml (default: embedded prefabs/game.yaml)")
	platform := flag.String("platform", string(prefabs.PlatformEditor), "tuning target: editor or mobile")
	seed := flag.Uint64("seed", 1, "level generation seed")
	levelName := flag.String("level", "", "level layout in levels/; empty generates one")
	ticks := flag.Int("ticks", 3600, "maximum ticks to simulate")
	every := flag.Int("every", 60, "print a checkpoint every n ticks")
	weave := flag.Float64("weave", 0.5, "steering frequency in Hz; 0 runs straight")
	verbose := flag.Bool("v", false, "log every gameplay event")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	var (
		gc  *prefabs.GameConfig
		err error
	)
	if *configPath != "" {
		gc, err = prefabs.LoadGameConfigFile(*configPath)
	} else {
		gc, err = prefabs.LoadGameConfig()
	}
	if err != nil {
		log.Fatal(err)
	}

	cfg, err := session.NewConfig(gc, prefabs.Platform(*platform))
	if err != nil {
		log.Fatal(err)
	}

	src := &weaveSource{freq: *weave}
	bus := event.NewBus()
	bus.SubscribeAll(func(evt event.Event) {
		logger.Debug("event", "kind", evt.Kind, "value", evt.Value, "z", fmt.Sprintf("%.2f", evt.Pos.Z))
	})

	s, err := session.New(cfg, session.Options{
		Input:   input.NewKeyboard(src, gc.Controls.KeyboardStep),
		Emitter: bus,
		Logger:  logger,
		Seed:    *seed,
		Layout:  *levelName,
	})
	if err != nil {
		log.Fatal(err)
	}
	bus.Dispatch()

	const dt = 1.0 / 60
	for tick := 1; tick <= *ticks; tick++ {
		src.t += dt
		s.Tick(dt)
		bus.Dispatch()
		if s.State() != session.Playing {
			printCheckpoint(tick, s)
			break
		}
		if *every > 0 && tick%*every == 0 {
			printCheckpoint(tick, s)
		}
	}
	fmt.Println(s.Summary())
}

func printCheckpoint(tick int, s *session.Session) {
	p := s.Leader()
	fmt.Printf("tick %5d  z %6.2f  x %5.2f  head %3d  chain %v\n", tick, p.Z, p.X, s.Value(), s.Chain().Values())
}

// weaveSource steers left and right on a fixed period.
type weaveSource struct {
	t    float64
	freq float64
}

func (w *weaveSource) Pointer() input.Pointer { return input.Pointer{} }

func (w *weaveSource) Axis() float64 {
	if w.freq <= 0 {
		return 0
	}
	v := math.Sin(2 * math.Pi * w.freq * w.t)
	switch {
	case v > 0.5:
		return 1
	case v < -0.5:
		return -1
	}
	return 0
}
