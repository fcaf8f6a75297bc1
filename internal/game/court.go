package game

// Court geometry. The origin is the centre of the screen and y points up.
const (
	ScreenWidth   = 800.0
	ScreenHeight  = 640.0
	WallThickness = 15.0
	PaddleOffset  = 80.0 // distance from the screen edge to each paddle centre
	PaddleHeight  = 60.0

	LeftWallX   = WallThickness - ScreenWidth/2
	RightWallX  = ScreenWidth/2 - WallThickness
	TopWallY    = ScreenHeight/2 - WallThickness
	BottomWallY = -ScreenHeight/2 + WallThickness

	LeftPaddleX  = -ScreenWidth/2 + PaddleOffset
	RightPaddleX = ScreenWidth/2 - PaddleOffset

	// Paddle centre limits so a paddle never overlaps the top or bottom wall
	TopBound    = TopWallY - WallThickness/2 - PaddleHeight/2
	BottomBound = BottomWallY + WallThickness/2 + PaddleHeight/2

	NumCentreDashes = 10
	DashWidth       = 5.0
	DashHeight      = 20.0
)

// Simulation defaults
const (
	TickRate          = 72 // Ticks per second
	TimeStep          = 1.0 / TickRate
	PuckSpeed         = 350.0
	PlayerPaddleSpeed = 500.0
	AIPaddleBaseSpeed = 250.0
	DefaultDifficulty = 1.0
	MaxBounces        = 5
)

var (
	PaddleSize           = Vec2{X: WallThickness, Y: PaddleHeight}
	PuckSize             = Vec2{X: WallThickness, Y: WallThickness}
	SideWallSize         = Vec2{X: WallThickness, Y: ScreenHeight - WallThickness}
	EndWallSize          = Vec2{X: ScreenWidth - WallThickness, Y: WallThickness}
	PuckSpawn            = Vec2{}
	InitialPuckDirection = Vec2{X: -0.5, Y: -0.5}
)

// Tuning holds the knobs an operator can change without touching geometry
type Tuning struct {
	TimeStep      float64
	PlayerSpeed   float64
	AISpeed       float64
	Difficulty    float64 // multiplier on AISpeed; 1.0 is the stock opponent
	PuckSpeed     float64
	PuckDirection Vec2
}

// DefaultTuning returns the stock game settings
func DefaultTuning() Tuning {
	return Tuning{
		TimeStep:      TimeStep,
		PlayerSpeed:   PlayerPaddleSpeed,
		AISpeed:       AIPaddleBaseSpeed,
		Difficulty:    DefaultDifficulty,
		PuckSpeed:     PuckSpeed,
		PuckDirection: InitialPuckDirection,
	}
}

// AIStep is how far the AI paddle may travel in one tick
func (t Tuning) AIStep() float64 {
	return t.AISpeed * t.Difficulty * t.TimeStep
}

// PlayerStep is how far the player paddle travels in one tick while a key is held
func (t Tuning) PlayerStep() float64 {
	return t.PlayerSpeed * t.TimeStep
}
