package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"sketchmatch/internal/canvas"
	"sketchmatch/internal/config"
	"sketchmatch/internal/entity"
	"sketchmatch/internal/gamemode"
	"sketchmatch/internal/logger"
	"sketchmatch/internal/pencil"
	"sketchmatch/internal/score"
)

// ColBg shows around the board when the window is letterboxed.
var ColBg = color.RGBA{0x2d, 0x2d, 0x2d, 0xff}

// Game is the ebiten host around the drawing engine.
type Game struct {
	Tick int
	cfg  config.Config

	canvas *canvas.Canvas
	scorer *score.Scorer
	round  *gamemode.Round
	board  *entity.Board

	input *inputReader
	queue pencil.Queue

	targets   []string
	targetIdx int
	target    string
	liveScore string
}

// Update: Logic (60 TPS)
func (g *Game) Update() error {
	g.Tick++

	// Global keys
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.canvas.Clear()
		g.round.Start()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.canvas.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.nextTarget()
	}

	// 1. Drain input, 2. advance the canvas
	g.input.Poll(&g.queue)
	g.canvas.Update(g.queue.Drain())

	g.round.Update()
	if g.Tick%g.cfg.ScoreEvery == 0 {
		g.pollScore()
	}
	return nil
}

// MatchScore computes the current match fraction against the target.
func (g *Game) MatchScore() (float64, error) {
	return g.scorer.Score()
}

func (g *Game) pollScore() {
	s, err := g.MatchScore()
	if err != nil {
		g.liveScore = "MATCH: --"
		return
	}
	g.liveScore = fmt.Sprintf("MATCH: %.1f%%", s*100)
}

func (g *Game) nextTarget() {
	if len(g.targets) == 0 {
		return
	}
	g.targetIdx = (g.targetIdx + 1) % len(g.targets)
	if err := g.setTarget(g.targets[g.targetIdx]); err != nil {
		logger.Logger().Warn("target switch failed", "err", err)
	}
}

// Draw: Rendering (VSync)
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColBg)
	g.board.Draw(screen)

	p := g.canvas.Pencil()
	hud := fmt.Sprintf("%s  R=%d\nTARGET: %s", g.liveScore, p.Radius, g.target)
	ebitenutil.DebugPrint(screen, hud)

	_, h := g.Layout(0, 0)
	ebitenutil.DebugPrintAt(screen, g.round.Status(), 4, h-36)
}

// Layout: the board fills the logical screen at the display scale
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width * g.cfg.Scale, g.cfg.Height * g.cfg.Scale
}
