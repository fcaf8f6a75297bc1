package game

import "github.com/diegok/solopong/internal/protocol"

// TickResult is what one tick hands to the presentation layer
type TickResult struct {
	Tick       int
	Collided   bool // at most one sound trigger per tick
	Goals      []GoalEvent
	Retargeted bool
	Snapshot   protocol.Snapshot
}

// GameState drives the simulation one fixed tick at a time
type GameState struct {
	World     *World
	Tuning    Tuning
	Intercept Intercept
	Bounds    Bounds
	DeadZone  float64

	events Events
}

// NewGameState creates the stock court with the given tuning
func NewGameState(t Tuning) *GameState {
	return NewGameStateWithWorld(NewCourt(t), t)
}

// NewGameStateWithWorld drives an existing world, e.g. a custom test court
func NewGameStateWithWorld(w *World, t Tuning) *GameState {
	deadZone := PuckSize.Y / 2
	if movers := w.Movers(); len(movers) > 0 {
		deadZone = w.Body(movers[0]).Size.Y / 2
	}

	return &GameState{
		World:     w,
		Tuning:    t,
		Intercept: DefaultIntercept(),
		Bounds:    DefaultBounds(),
		DeadZone:  deadZone,
	}
}

// Update runs one game tick.
//
// Order: paddles, integration, collisions, scoreboard, AI target, then the
// events are cleared so nothing leaks into the next tick.
func (gs *GameState) Update(in protocol.Input) TickResult {
	w := gs.World
	w.Tick++

	gs.movePaddles(in)
	ApplyVelocity(w, gs.Tuning.TimeStep)
	ResolveCollisions(w, &gs.events)

	ApplyGoals(w, &gs.events)
	retargeted := UpdateAITarget(w, &gs.events, gs.Intercept)

	result := TickResult{
		Tick:       w.Tick,
		Collided:   gs.events.Collided(),
		Retargeted: retargeted,
		Snapshot:   w.Snapshot(),
	}
	if len(gs.events.Goals) > 0 {
		result.Goals = append([]GoalEvent(nil), gs.events.Goals...)
	}

	gs.events.Clear()
	return result
}

// movePaddles moves the human paddles from input and the AI paddles toward the target
func (gs *GameState) movePaddles(in protocol.Input) {
	w := gs.World
	for i := range w.Bodies {
		p := &w.Bodies[i]
		if p.Role != protocol.RolePaddle {
			continue
		}

		if p.AI {
			MoveAIPaddle(p, w.AITarget, gs.DeadZone, gs.Tuning.AIStep(), gs.Bounds)
		} else if p.Side == protocol.SideLeft {
			MovePlayerPaddle(p, in, gs.Tuning.PlayerStep(), gs.Bounds)
		}
	}
}

// Score returns the current left and right scores
func (gs *GameState) Score() (left, right int) {
	return gs.World.LeftScore, gs.World.RightScore
}

// Puck returns the first mover, or nil if the world has none
func (gs *GameState) Puck() *Body {
	movers := gs.World.Movers()
	if len(movers) == 0 {
		return nil
	}
	return gs.World.Body(movers[0])
}
