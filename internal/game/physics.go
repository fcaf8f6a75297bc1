package game

import "github.com/diegok/solopong/internal/protocol"

// ApplyVelocity advances every mover by velocity * dt.
// Nothing is clamped here; overshoot is handled by ResolveCollisions.
func ApplyVelocity(w *World, dt float64) {
	for i := range w.Bodies {
		b := &w.Bodies[i]
		if !b.Moving {
			continue
		}
		b.Position = b.Position.Add(b.Velocity.Scale(dt))
	}
}

// ResolveCollisions tests every mover against every collider, reflects the
// mover's velocity and records the resulting events.
//
// Each collider is classified against the mover's position for this tick;
// reflections from one collider never change another collider's classification.
func ResolveCollisions(w *World, ev *Events) {
	for i := range w.Bodies {
		mover := &w.Bodies[i]
		if !mover.Moving {
			continue
		}

		for j := range w.Bodies {
			other := &w.Bodies[j]
			if other.Moving {
				continue
			}

			collision := Classify(mover.Position, mover.Size, other.Position, other.Size)
			if collision == NoCollision {
				continue
			}

			ev.Collisions = append(ev.Collisions, CollisionEvent{})

			if other.IsGoal() {
				ev.Goals = append(ev.Goals, GoalEvent{IsLeftGoal: other.Position.X < 0})
			}

			mover.Velocity = Reflect(mover.Velocity, collision)

			if other.Side == protocol.SideLeft {
				ev.LeftBounces = append(ev.LeftBounces, LeftBounceEvent{
					Position:  mover.Position,
					Direction: mover.Velocity.Normalize(),
				})
			}
		}
	}
}

// ApplyGoals updates the scoreboard from this tick's goal events
func ApplyGoals(w *World, ev *Events) {
	for _, g := range ev.Goals {
		switch g.Scorer() {
		case protocol.SideLeft:
			w.LeftScore++
		case protocol.SideRight:
			w.RightScore++
		}
	}
}
