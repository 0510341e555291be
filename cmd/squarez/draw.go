package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/plus3/squarez/geom"
	"github.com/plus3/squarez/palette"
	"github.com/plus3/squarez/sim"
)

const (
	healthBarHeight = 6
	lineWidth       = 1
)

func draw(screen *ebiten.Image, snap *sim.Snapshot) {
	screen.Fill(palette.Black)

	for _, p := range snap.Particles {
		vector.DrawFilledRect(screen, float32(p.Pos.X), float32(p.Pos.Y), 1, 1, p.Color, false)
	}

	for _, b := range snap.Bullets {
		vector.DrawFilledCircle(screen, float32(b.Pos.X), float32(b.Pos.Y), 1.5, b.Color, true)
	}

	for _, sq := range snap.Squares {
		drawSquare(screen, sq)
	}

	w, h := float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy())
	for _, c := range snap.Flashes {
		vector.DrawFilledRect(screen, 0, 0, w, h, c, false)
	}
	for _, c := range snap.Fades {
		vector.DrawFilledRect(screen, 0, 0, w, h, c, false)
	}

	drawHUD(screen, snap)
}

func drawSquare(screen *ebiten.Image, sq sim.Square) {
	r := sq.Bounds
	x, y := float32(r.Left), float32(r.Top)
	size := float32(r.Width())

	if sq.Filled {
		vector.DrawFilledRect(screen, x, y, size, size, sq.Color, false)
	} else {
		vector.StrokeRect(screen, x, y, size, size, lineWidth, sq.Color, false)
	}
	if sq.Firing {
		vector.StrokeRect(screen, x-2, y-2, size+4, size+4, lineWidth, colornames.White, false)
	}

	tip := sq.Center.Add(geom.Polar(sq.Size, sq.Angle))
	vector.StrokeLine(screen,
		float32(sq.Center.X), float32(sq.Center.Y),
		float32(tip.X), float32(tip.Y),
		lineWidth, colornames.White, true)
}

func drawHUD(screen *ebiten.Image, snap *sim.Snapshot) {
	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())

	vector.DrawFilledRect(screen, 0, h-healthBarHeight, w, healthBarHeight, colornames.Darkred, false)
	vector.DrawFilledRect(screen, 0, h-healthBarHeight, w*float32(snap.PlayerHealth), healthBarHeight, sim.PlayerColor, false)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", snap.Score), 8, 8)

	switch snap.Mode {
	case sim.ModePaused:
		ebitenutil.DebugPrintAt(screen, "PAUSED - press Enter", int(w)/2-60, int(h)/2)
	case sim.ModeLost:
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("GAME OVER - %d points", snap.Score), int(w)/2-70, int(h)/2)
	}
}
