package game

import "github.com/diegok/solopong/internal/protocol"

// BodyID is a stable index into World.Bodies
type BodyID int

// Body is anything with a position and a size on the court.
// Bodies with Moving set are movers (the puck); all others are colliders.
type Body struct {
	Role     protocol.Role
	Side     protocol.Side
	Position Vec2
	Size     Vec2
	Velocity Vec2
	Moving   bool
	AI       bool
}

// Box returns the current edges of the body
func (b *Body) Box() Box {
	return NewBox(b.Position, b.Size)
}

// IsGoal reports whether touching this body scores
func (b *Body) IsGoal() bool {
	return b.Role == protocol.RoleGoal
}

func (b *Body) state() protocol.BodyState {
	return protocol.BodyState{
		Role: b.Role,
		Side: b.Side,
		X:    b.Position.X,
		Y:    b.Position.Y,
		W:    b.Size.X,
		H:    b.Size.Y,
		AI:   b.AI,
	}
}

// World owns every body plus the per-game state the phases read and write
type World struct {
	Bodies      []Body
	Decorations []Body
	AITarget    float64
	LeftScore   int
	RightScore  int
	Tick        int
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		Bodies:      make([]Body, 0),
		Decorations: make([]Body, 0),
	}
}

// Add stores a body and returns its handle
func (w *World) Add(b Body) BodyID {
	w.Bodies = append(w.Bodies, b)
	return BodyID(len(w.Bodies) - 1)
}

// Body returns the body for the given handle, or nil if it does not exist
func (w *World) Body(id BodyID) *Body {
	if id < 0 || int(id) >= len(w.Bodies) {
		return nil
	}
	return &w.Bodies[id]
}

// Paddles returns handles of all paddles on the given side
func (w *World) Paddles(side protocol.Side) []BodyID {
	var ids []BodyID
	for i := range w.Bodies {
		if w.Bodies[i].Role == protocol.RolePaddle && w.Bodies[i].Side == side {
			ids = append(ids, BodyID(i))
		}
	}
	return ids
}

// Movers returns handles of every body carrying a velocity
func (w *World) Movers() []BodyID {
	var ids []BodyID
	for i := range w.Bodies {
		if w.Bodies[i].Moving {
			ids = append(ids, BodyID(i))
		}
	}
	return ids
}

// Snapshot copies the drawable state of the world
func (w *World) Snapshot() protocol.Snapshot {
	bodies := make([]protocol.BodyState, len(w.Bodies))
	for i := range w.Bodies {
		bodies[i] = w.Bodies[i].state()
	}
	decorations := make([]protocol.BodyState, len(w.Decorations))
	for i := range w.Decorations {
		decorations[i] = w.Decorations[i].state()
	}

	return protocol.Snapshot{
		Tick:        w.Tick,
		Bodies:      bodies,
		Decorations: decorations,
		LeftScore:   w.LeftScore,
		RightScore:  w.RightScore,
		AITarget:    w.AITarget,
		CourtWidth:  ScreenWidth,
		CourtHeight: ScreenHeight,
	}
}

// NewCourt builds the stock court: two goal walls, top and bottom walls,
// a player paddle on the left, an AI paddle on the right and the puck.
func NewCourt(t Tuning) *World {
	w := NewWorld()

	w.Add(Body{Role: protocol.RoleGoal, Side: protocol.SideLeft, Position: Vec2{X: LeftWallX}, Size: SideWallSize})
	w.Add(Body{Role: protocol.RoleGoal, Side: protocol.SideRight, Position: Vec2{X: RightWallX}, Size: SideWallSize})
	w.Add(Body{Role: protocol.RoleWall, Position: Vec2{Y: TopWallY}, Size: EndWallSize})
	w.Add(Body{Role: protocol.RoleWall, Position: Vec2{Y: BottomWallY}, Size: EndWallSize})

	w.Add(Body{Role: protocol.RolePaddle, Side: protocol.SideLeft, Position: Vec2{X: LeftPaddleX}, Size: PaddleSize})
	w.Add(Body{Role: protocol.RolePaddle, Side: protocol.SideRight, Position: Vec2{X: RightPaddleX}, Size: PaddleSize, AI: true})

	w.Add(Body{
		Role:     protocol.RolePuck,
		Position: PuckSpawn,
		Size:     PuckSize,
		Velocity: t.PuckDirection.Normalize().Scale(t.PuckSpeed),
		Moving:   true,
	})

	// Centre line
	increment := ScreenHeight / NumCentreDashes
	bottom := -ScreenHeight/2 + DashHeight + WallThickness
	for i := 0; i < NumCentreDashes; i++ {
		w.Decorations = append(w.Decorations, Body{
			Role:     protocol.RoleWall,
			Position: Vec2{Y: float64(i)*increment + bottom},
			Size:     Vec2{X: DashWidth, Y: DashHeight},
		})
	}

	return w
}
