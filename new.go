package main

import (
	"fmt"
	"time"

	"sketchmatch/internal/assets"
	"sketchmatch/internal/canvas"
	"sketchmatch/internal/config"
	"sketchmatch/internal/entity"
	"sketchmatch/internal/gamemode"
	"sketchmatch/internal/score"
)

// NewGame wires the engine and the host for a resolved config.
func NewGame(cfg config.Config) (*Game, error) {
	cc, err := cfg.Canvas()
	if err != nil {
		return nil, err
	}
	cv, err := canvas.New(cc)
	if err != nil {
		return nil, err
	}
	scorer := score.NewScorer(cv.Buffer())

	g := &Game{
		cfg:       cfg,
		canvas:    cv,
		scorer:    scorer,
		round:     gamemode.NewRound(time.Duration(cfg.RoundSeconds)*time.Second, scorer),
		board:     entity.NewBoard(cv, cfg.Scale),
		input:     newInputReader(ebitenInput{}, cfg.Scale, cfg.WheelScale),
		targets:   assets.Targets(),
		liveScore: "MATCH: --",
	}

	target := cfg.Target
	if target == "" && len(g.targets) > 0 {
		target = g.targets[0]
	}
	if target != "" {
		if err := g.setTarget(target); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// setTarget loads a target image and hands it to the scorer.
func (g *Game) setTarget(name string) error {
	cc, err := g.cfg.Canvas()
	if err != nil {
		return err
	}
	ref, err := assets.Load(name, assets.Options{
		Width:    cc.Width,
		Height:   cc.Height,
		Channels: cc.Channels,
		Paper:    cc.Paper,
		Ink:      cc.Ink,
		Binarize: g.cfg.BinarizeTargets(),
	})
	if err != nil {
		return err
	}
	if err := g.scorer.SetReference(ref); err != nil {
		return fmt.Errorf("target %s: %w", name, err)
	}
	g.target = name
	for i, t := range g.targets {
		if t == name {
			g.targetIdx = i
		}
	}
	return nil
}
