package game

import (
	"math"

	"github.com/diegok/solopong/internal/protocol"
)

// Bounds limits a paddle's centre y
type Bounds struct {
	Bottom, Top float64
}

// DefaultBounds keeps paddles clear of the top and bottom walls
func DefaultBounds() Bounds {
	return Bounds{Bottom: BottomBound, Top: TopBound}
}

// Clamp restricts y to [Bottom, Top]
func (b Bounds) Clamp(y float64) float64 {
	if y < b.Bottom {
		return b.Bottom
	}
	if y > b.Top {
		return b.Top
	}
	return y
}

// Step moves y by delta and clamps the result. A NaN result leaves y unchanged.
func (b Bounds) Step(y, delta float64) float64 {
	next := y + delta
	if math.IsNaN(next) {
		return y
	}
	return b.Clamp(next)
}

// MovePlayerPaddle moves a paddle by the held input for one tick
func MovePlayerPaddle(p *Body, in protocol.Input, step float64, bounds Bounds) {
	p.Position.Y = bounds.Step(p.Position.Y, in.Axis()*step)
}

// MoveAIPaddle steps a paddle toward target.
// Inside the dead zone (target within ±deadZone of the paddle) it holds still.
func MoveAIPaddle(p *Body, target, deadZone, step float64, bounds Bounds) {
	switch {
	case target > p.Position.Y+deadZone:
		p.Position.Y = bounds.Step(p.Position.Y, step)
	case target < p.Position.Y-deadZone:
		p.Position.Y = bounds.Step(p.Position.Y, -step)
	}
}

// UpdateAITarget re-predicts the AI target from the latest left bounce of the tick.
// Returns true when a new prediction was made.
func UpdateAITarget(w *World, ev *Events, ic Intercept) bool {
	bounce, ok := ev.LatestLeftBounce()
	if !ok {
		return false
	}
	w.AITarget = ic.Predict(bounce.Position, bounce.Direction, 0).Y
	return true
}
