package game

import "github.com/diegok/solopong/internal/protocol"

// CollisionEvent fires once per mover/collider overlap
type CollisionEvent struct{}

// GoalEvent fires when a mover touches a goal wall
type GoalEvent struct {
	IsLeftGoal bool
}

// Scorer returns the side that earns the point
func (g GoalEvent) Scorer() protocol.Side {
	if g.IsLeftGoal {
		return protocol.SideRight
	}
	return protocol.SideLeft
}

// LeftBounceEvent fires when a mover touches any left-side collider.
// Direction is the normalised velocity after reflection.
type LeftBounceEvent struct {
	Position  Vec2
	Direction Vec2
}

// Events collects everything produced during one tick.
// The tick driver clears it once every consumer has run.
type Events struct {
	Collisions  []CollisionEvent
	Goals       []GoalEvent
	LeftBounces []LeftBounceEvent
}

// Clear drops all events, keeping the backing arrays
func (e *Events) Clear() {
	e.Collisions = e.Collisions[:0]
	e.Goals = e.Goals[:0]
	e.LeftBounces = e.LeftBounces[:0]
}

// Collided reports whether any collision happened this tick.
// Sound is triggered from this, so many collisions collapse into one blip.
func (e *Events) Collided() bool {
	return len(e.Collisions) > 0
}

// LatestLeftBounce returns the last left bounce of the tick, if any
func (e *Events) LatestLeftBounce() (LeftBounceEvent, bool) {
	if len(e.LeftBounces) == 0 {
		return LeftBounceEvent{}, false
	}
	return e.LeftBounces[len(e.LeftBounces)-1], true
}
