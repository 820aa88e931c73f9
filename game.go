package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/MianHassanSohail/NumberSnake/assets"
	"github.com/MianHassanSohail/NumberSnake/effects"
	"github.com/MianHassanSohail/NumberSnake/event"
	"github.com/MianHassanSohail/NumberSnake/input"
	"github.com/MianHassanSohail/NumberSnake/prefabs"
	"github.com/MianHassanSohail/NumberSnake/session"
	"github.com/MianHassanSohail/NumberSnake/view"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"
)

const (
	baseWidth  = 540
	baseHeight = 960

	tickDT = 1.0 / 60
)

type GameOptions struct {
	Config   *prefabs.GameConfig
	Platform prefabs.Platform
	Seed     uint64
	Layout   string
	Debug    bool
	Logger   *slog.Logger
	Reloader *prefabs.Reloader
}

type Game struct {
	opts   GameOptions
	logger *slog.Logger
	gc     *prefabs.GameConfig

	bus       *event.Bus
	session   *session.Session
	camera    *view.Camera
	particles *effects.Particles
	sounds    *sounds
	pending   *prefabs.GameConfig

	face        text.Face
	endUI       *ebitenui.UI
	endStatus   func(string)
	clipboardOK bool
}

func NewGame(opts GameOptions) (*Game, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	cfg, err := session.NewConfig(opts.Config, opts.Platform)
	if err != nil {
		return nil, err
	}
	provider, err := input.New(input.NewEbitenSource(), opts.Config.Controls, opts.Platform, baseWidth)
	if err != nil {
		return nil, err
	}

	g := &Game{
		opts:   opts,
		logger: opts.Logger,
		gc:     opts.Config,
		bus:    event.NewBus(),
		face:   text.NewGoXFace(basicfont.Face7x13),
		sounds: newSounds(),
	}
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed+1))
	g.camera = view.NewCamera(baseWidth, baseHeight, opts.Config.Visuals.PixelsPerUnit, rng)
	g.particles = effects.New(opts.Config.Effects, rng, opts.Logger)

	g.bus.SubscribeAll(g.particles.Handle)
	g.bus.SubscribeAll(g.camera.ShakeOn(opts.Config.Effects))
	g.bus.SubscribeAll(g.sounds.Handle)
	g.bus.Subscribe(event.GameOver, g.showEnd)
	g.bus.Subscribe(event.LevelComplete, g.showEnd)
	if opts.Debug {
		g.bus.SubscribeAll(func(evt event.Event) {
			g.logger.Debug("event", "kind", evt.Kind, "value", evt.Value, "z", evt.Pos.Z)
		})
	}

	g.session, err = session.New(cfg, session.Options{
		Input:   provider,
		Emitter: g.bus,
		Logger:  opts.Logger,
		Seed:    opts.Seed,
		Layout:  opts.Layout,
	})
	if err != nil {
		return nil, err
	}
	g.bus.Dispatch()
	g.camera.SnapTo(g.session.Leader())

	g.clipboardOK = clipboard.Init() == nil
	if !g.clipboardOK {
		g.logger.Warn("clipboard unavailable; summary copy disabled")
	}
	return g, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.pollReload()

	if g.endUI != nil {
		g.endUI.Update()
		if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.restart()
		}
		return nil
	}

	g.session.Tick(tickDT)
	g.bus.Dispatch()
	g.particles.Update(tickDT)
	g.camera.Update(g.session.Leader(), tickDT)
	return nil
}

func (g *Game) pollReload() {
	if g.opts.Reloader == nil {
		return
	}
	if cfg, ok := g.opts.Reloader.Poll(); ok {
		g.pending = cfg
		g.logger.Info("config change queued for next restart")
	}
}

func (g *Game) restart() {
	if g.pending != nil {
		cfg, err := session.NewConfig(g.pending, g.opts.Platform)
		if err == nil {
			err = g.session.Reconfigure(cfg)
		}
		if err != nil {
			g.logger.Error("apply reloaded config", "err", err)
		} else {
			g.gc = g.pending
		}
		g.pending = nil
	}
	if g.session.State() != session.Playing {
		if err := g.session.Restart(); err != nil {
			g.logger.Error("restart", "err", err)
			return
		}
	}
	g.particles.Clear()
	g.bus.Dispatch()
	g.camera.SnapTo(g.session.Leader())
	g.endUI = nil
	g.endStatus = nil
}

func (g *Game) showEnd(evt event.Event) {
	if g.endUI != nil {
		return
	}
	g.endUI, g.endStatus = NewEndUI(g, evt.Kind, g.session.Summary())
}

func (g *Game) copySummary() {
	if !g.clipboardOK {
		g.setEndStatus("clipboard unavailable")
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(g.session.Summary().String()))
	g.setEndStatus("summary copied")
}

func (g *Game) setEndStatus(s string) {
	if g.endStatus != nil {
		g.endStatus(s)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawWorld(screen)
	g.drawHUD(screen)

	if g.opts.Debug {
		created, available := g.session.Chain().PoolStats()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
			"FPS %.1f  history %d/%d  pool %d/%d  removing %d",
			ebiten.ActualFPS(),
			g.session.History().Count(), g.session.History().Capacity(),
			available, created,
			g.session.Chain().PendingRemovals(),
		), 4, baseHeight-16)
	}

	if g.endUI != nil {
		g.endUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// sounds maps gameplay events to short synthesised blips.
type sounds struct {
	gain, loss, hit, over, done *assets.Sound
}

func newSounds() *sounds {
	return &sounds{
		gain: assets.NewSound(880, 0.08, 0.4),
		loss: assets.NewSound(330, 0.12, 0.4),
		hit:  assets.NewSound(110, 0.18, 0.6),
		over: assets.NewSound(82, 0.5, 0.5),
		done: assets.NewSound(660, 0.4, 0.4),
	}
}

func (s *sounds) Handle(evt event.Event) {
	switch evt.Kind {
	case event.NumberCollected:
		if evt.Value < 0 {
			s.loss.Play()
		} else {
			s.gain.Play()
		}
	case event.ObstacleHit:
		s.hit.Play()
	case event.GameOver:
		s.over.Play()
	case event.LevelComplete:
		s.done.Play()
	}
}
