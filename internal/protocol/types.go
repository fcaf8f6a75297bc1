package protocol

// Side identifies which half of the court a body belongs to
type Side int

const (
	SideNone  Side = 0
	SideLeft  Side = 1
	SideRight Side = 2
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "none"
}

// Role describes what a body is for
type Role int

const (
	RoleWall   Role = iota // top/bottom bounce wall
	RoleGoal               // scoring wall
	RolePaddle             // player or AI paddle
	RolePuck               // the moving puck
)

// Input is the per-tick input state sampled from the keyboard
type Input struct {
	Up   bool
	Down bool
}

// Axis returns +1 for up, -1 for down and 0 when neither or both are held
func (in Input) Axis() float64 {
	axis := 0.0
	if in.Up {
		axis += 1
	}
	if in.Down {
		axis -= 1
	}
	return axis
}

// BodyState is the drawable state of one body.
// Coordinates are world units with the origin at the court centre and y pointing up.
type BodyState struct {
	Role Role
	Side Side
	X, Y float64
	W, H float64
	AI   bool
}

// Snapshot is everything a renderer needs for one tick
type Snapshot struct {
	Tick        int
	Bodies      []BodyState
	Decorations []BodyState // centre line dashes, never collide
	LeftScore   int
	RightScore  int
	AITarget    float64
	CourtWidth  float64
	CourtHeight float64
}
