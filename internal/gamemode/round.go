package gamemode

import (
	"fmt"
	"time"

	"sketchmatch/internal/logger"
)

// Scorer is the score query the round polls when time runs out.
type Scorer interface {
	Score() (float64, error)
}

// RoundState is the phase of a round.
type RoundState int

const (
	RoundIdle     RoundState = iota // Waiting to start
	RoundDrawing                    // Timer ticking
	RoundFinished                   // Final score shown
)

// Round is one timed attempt at drawing the target.
type Round struct {
	State      RoundState
	Duration   time.Duration
	TimeLeft   time.Duration
	LastUpdate time.Time

	FinalScore float64
	Err        error

	scorer Scorer
	now    func() time.Time
}

func NewRound(d time.Duration, s Scorer) *Round {
	return &Round{
		State:    RoundIdle,
		Duration: d,
		TimeLeft: d,
		scorer:   s,
		now:      time.Now,
	}
}

// Start begins a new countdown. The canvas is not touched; callers clear it
// themselves if they want a fresh sheet.
func (r *Round) Start() {
	r.State = RoundDrawing
	r.TimeLeft = r.Duration
	r.LastUpdate = r.now()
	r.Err = nil
}

// Update advances the countdown and scores the drawing once it expires.
func (r *Round) Update() {
	if r.State != RoundDrawing {
		return
	}

	// Calculate time passed since last frame
	now := r.now()
	r.TimeLeft -= now.Sub(r.LastUpdate)
	r.LastUpdate = now

	// Timer Finished?
	if r.TimeLeft <= 0 {
		r.TimeLeft = 0
		r.State = RoundFinished
		r.FinalScore, r.Err = r.scorer.Score()
		if r.Err != nil {
			logger.Logger().Warn("round finished without a score", "err", r.Err)
			return
		}
		logger.Logger().Info("round finished", "score", r.FinalScore)
	}
}

// Status is the overlay text for the current state.
func (r *Round) Status() string {
	// Format Duration: "01:00"
	minutes := int(r.TimeLeft.Minutes())
	seconds := int(r.TimeLeft.Seconds()) % 60
	timeStr := fmt.Sprintf("%02d:%02d", minutes, seconds)

	switch r.State {
	case RoundIdle:
		return "PRESS SPACE TO DRAW\n" + timeStr
	case RoundDrawing:
		return "DRAWING... " + timeStr
	case RoundFinished:
		if r.Err != nil {
			return "TIME! NO TARGET"
		}
		return fmt.Sprintf("TIME! MATCH %.1f%%\nSPACE TO RETRY", r.FinalScore*100)
	}
	return ""
}
