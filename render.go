package main

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/MianHassanSohail/NumberSnake/common"
	"github.com/MianHassanSohail/NumberSnake/effects"
	"github.com/MianHassanSohail/NumberSnake/level"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

var (
	backgroundColor = color.NRGBA{R: 0x1b, G: 0x1e, B: 0x2b, A: 0xff}
	trackColor      = color.NRGBA{R: 0x2c, G: 0x31, B: 0x45, A: 0xff}
	laneColor       = color.NRGBA{R: 0x3b, G: 0x42, B: 0x5c, A: 0xff}
)

func (g *Game) drawWorld(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	cam := g.camera
	ppu := cam.PixelsPerUnit()
	vis := g.gc.Visuals
	t := g.session.Elapsed()

	// track
	halfTrack := g.gc.Movement.PlatformWidth / 2
	left, _ := cam.Project(common.Vec3{X: -halfTrack})
	right, _ := cam.Project(common.Vec3{X: halfTrack})
	vector.FillRect(screen, float32(left), 0, float32(right-left), baseHeight, trackColor, false)
	for lane := 0; lane < level.Lanes-1; lane++ {
		x, _ := cam.Project(common.Vec3{X: level.LaneX(lane, g.gc.Level.LaneWidth) + g.gc.Level.LaneWidth/2})
		vector.StrokeLine(screen, float32(x), 0, float32(x), baseHeight, 1, laneColor, false)
	}

	// items, far first so nearer ones overlap them
	items := g.session.Field().Ahead(cam.Z, cam.Ahead()+2)
	for i := len(items) - 1; i >= 0; i-- {
		it := items[i]
		if !cam.Visible(it.Pos, 64) {
			continue
		}
		switch it.Kind {
		case level.KindPickup:
			p := it.Pos
			p.Y += vis.PickupBobHeight * math.Sin(t*vis.PickupBobSpeed+p.Z)
			clr := vis.Positive.Or(colornames.Limegreen)
			label := "+" + strconv.Itoa(it.Value)
			if it.Value < 0 {
				clr = vis.Negative.Or(colornames.Crimson)
				label = strconv.Itoa(it.Value)
			}
			x, y := cam.Project(p)
			r := it.HalfWidth * ppu
			spin := math.Abs(math.Cos(t * vis.PickupRotationSpeed * math.Pi / 180))
			vector.FillRect(screen, float32(x-r*spin), float32(y-r), float32(2*r*spin)+1, float32(2*r), clr, true)
			g.drawLabel(screen, label, x, y, 2, color.White)
		case level.KindObstacle:
			pulse := 1 + vis.ObstaclePulseAmount*math.Sin(t*vis.ObstaclePulseSpeed*2*math.Pi)
			x, y := cam.Project(it.Pos)
			w := it.HalfWidth * ppu * pulse
			h := it.HalfDepth * ppu * pulse
			vector.FillRect(screen, float32(x-w), float32(y-h), float32(2*w), float32(2*h), vis.Obstacle.Or(colornames.Firebrick), true)
		case level.KindFinish:
			g.drawFinish(screen, it)
		}
	}

	// chain, tail first so the leader sits on top
	detached := g.session.Chain().Detached()
	for _, f := range detached {
		g.drawNumber(screen, f.Pos, 0.4*f.Scale, f.Value, vis.Follower.Or(colornames.Gold))
	}
	followers := g.session.Chain().Followers()
	for i := len(followers) - 1; i >= 0; i-- {
		f := followers[i]
		g.drawNumber(screen, f.Pos, 0.4*f.Scale, f.Value, vis.Follower.Or(colornames.Gold))
	}
	g.drawNumber(screen, g.session.Leader(), 0.5*g.session.HeadScale(), g.session.Value(), vis.Leader.Or(colornames.Dodgerblue))

	for _, b := range g.particles.Active() {
		g.drawBurst(screen, b)
	}
}

func (g *Game) drawFinish(screen *ebiten.Image, it *level.Item) {
	cam := g.camera
	half := g.gc.Movement.PlatformWidth / 2
	x0, y := cam.Project(common.Vec3{X: -half, Z: it.Pos.Z})
	x1, _ := cam.Project(common.Vec3{X: half, Z: it.Pos.Z})
	const checks = 12
	w := (x1 - x0) / checks
	h := w
	for i := range checks {
		for row := range 2 {
			clr := color.Color(color.White)
			if (i+row)%2 == 1 {
				clr = color.Black
			}
			vector.FillRect(screen, float32(x0+float64(i)*w), float32(y-h+float64(row)*h), float32(w), float32(h), clr, false)
		}
	}
}

func (g *Game) drawNumber(screen *ebiten.Image, pos common.Vec3, radius float64, value int, clr color.Color) {
	if radius <= 0 {
		return
	}
	x, y := g.camera.Project(pos)
	r := radius * g.camera.PixelsPerUnit()
	vector.FillCircle(screen, float32(x), float32(y), float32(r), clr, true)
	vector.StrokeCircle(screen, float32(x), float32(y), float32(r), 2, colornames.Black, true)
	g.drawLabel(screen, strconv.Itoa(value), x, y, 2*radius/0.5, colornames.Black)
}

func (g *Game) drawBurst(screen *ebiten.Image, b *effects.Burst) {
	progress := b.Progress()
	spread := 1.5 * progress
	base := color.Color(colornames.Gold)
	if b.Kind == effects.Hit {
		base = colornames.Orangered
	}
	clr := color.NRGBAModel.Convert(base).(color.NRGBA)
	clr.A = uint8(255 * (1 - progress))
	for _, s := range b.Sparks {
		p := b.Pos.Add(s.Scale(spread))
		x, y := g.camera.Project(p)
		vector.FillCircle(screen, float32(x), float32(y), 3, clr, true)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	g.drawLabel(screen, fmt.Sprintf("Score: %d", g.session.Value()), baseWidth/2, 28, 3, color.White)
	field := g.session.Field()
	if field.Length > 0 {
		progress := common.Clamp(g.session.Leader().Z/field.Length, 0, 1)
		vector.FillRect(screen, 20, 52, float32((baseWidth-40)*progress), 6, colornames.Dodgerblue, false)
		vector.StrokeRect(screen, 20, 52, baseWidth-40, 6, 1, colornames.White, false)
	}
	if g.pending != nil {
		g.drawLabel(screen, "config changed: applies on restart", baseWidth/2, 72, 1, colornames.Yellow)
	}
}

func (g *Game) drawLabel(dst *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, g.face, op)
}
