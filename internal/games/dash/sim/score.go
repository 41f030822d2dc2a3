package sim

import "math"

// RunResult is reported once when a run ends.
type RunResult struct {
	FinalScore        int
	PresentsCollected int
}

// addScore applies delta and floors the total at zero.
func (e *Engine) addScore(delta float64) {
	e.score += delta
	if e.score < 0 {
		e.score = 0
	}
}

// accrueSurvival adds the per-frame survival bonus for the distance scrolled.
func (e *Engine) accrueSurvival(speed float64, fx Effects) {
	e.addScore(e.cfg.Scoring.SurvivalRate * speed * fx.Multiplier)
}

// Score returns the floor of the accumulated score.
func (e *Engine) Score() int {
	return int(math.Floor(e.score))
}

// RawScore returns the unfloored accumulated score.
func (e *Engine) RawScore() float64 {
	return e.score
}
