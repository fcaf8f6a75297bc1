package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diegok/solopong/internal/protocol"
)

func TestNewGameState_Court(t *testing.T) {
	gs := NewGameState(DefaultTuning())
	w := gs.World

	require.Len(t, w.Movers(), 1)
	require.Len(t, w.Paddles(protocol.SideLeft), 1)
	require.Len(t, w.Paddles(protocol.SideRight), 1)

	goals := 0
	for i := range w.Bodies {
		if w.Bodies[i].IsGoal() {
			goals++
		}
	}
	assert.Equal(t, 2, goals)

	left := w.Body(w.Paddles(protocol.SideLeft)[0])
	right := w.Body(w.Paddles(protocol.SideRight)[0])
	assert.False(t, left.AI)
	assert.True(t, right.AI)
	assert.Equal(t, Vec2{X: -320}, left.Position)
	assert.Equal(t, Vec2{X: 320}, right.Position)

	puck := gs.Puck()
	require.NotNil(t, puck)
	assert.InDelta(t, PuckSpeed, puck.Velocity.Length(), 1e-9)
	assert.Less(t, puck.Velocity.X, 0.0)
	assert.Less(t, puck.Velocity.Y, 0.0)

	assert.Equal(t, 0.0, w.AITarget)
	assert.Equal(t, PuckSize.Y/2, gs.DeadZone)
	assert.Len(t, w.Decorations, NumCentreDashes)
}

func TestWorld_BodyHandles(t *testing.T) {
	w := NewWorld()
	id := w.Add(Body{Role: protocol.RoleWall})

	assert.NotNil(t, w.Body(id))
	assert.Nil(t, w.Body(id+1))
	assert.Nil(t, w.Body(-1))
}

func TestGameState_FirstTick(t *testing.T) {
	gs := NewGameState(DefaultTuning())

	result := gs.Update(protocol.Input{})

	assert.Equal(t, 1, result.Tick)
	assert.False(t, result.Collided)
	assert.Empty(t, result.Goals)
	assert.False(t, result.Retargeted)

	puck := gs.Puck()
	want := InitialPuckDirection.Normalize().Scale(PuckSpeed * TimeStep)
	assert.InDelta(t, want.X, puck.Position.X, 1e-9)
	assert.InDelta(t, want.Y, puck.Position.Y, 1e-9)
	assert.Equal(t, 1, result.Snapshot.Tick)
	assert.Len(t, result.Snapshot.Bodies, len(gs.World.Bodies))
}

func TestGameState_PlayerInputMovesLeftPaddleOnly(t *testing.T) {
	gs := NewGameState(DefaultTuning())

	gs.Update(protocol.Input{Up: true})

	left := gs.World.Body(gs.World.Paddles(protocol.SideLeft)[0])
	right := gs.World.Body(gs.World.Paddles(protocol.SideRight)[0])
	assert.InDelta(t, DefaultTuning().PlayerStep(), left.Position.Y, 1e-12)
	assert.Equal(t, 0.0, right.Position.Y, "AI target starts at 0 so the AI paddle holds")
}

// The puck leaves the centre heading down-left; with slope 1 it meets the
// bottom wall before the left goal and must bounce once on the way.
func TestGameState_EndToEnd_BounceThenLeftGoal(t *testing.T) {
	gs := NewGameState(DefaultTuning())

	verticalBounces := 0
	lastVY := gs.Puck().Velocity.Y
	var goal *TickResult

	for i := 0; i < 1000 && goal == nil; i++ {
		result := gs.Update(protocol.Input{})

		vy := gs.Puck().Velocity.Y
		if (vy > 0) != (lastVY > 0) {
			verticalBounces++
		}
		lastVY = vy

		assert.InDelta(t, PuckSpeed, gs.Puck().Velocity.Length(), 1e-9, "speed is preserved")
		if len(result.Goals) > 0 {
			goal = &result
		}
	}

	require.NotNil(t, goal, "puck never reached a goal")
	require.Len(t, goal.Goals, 1)
	assert.True(t, goal.Goals[0].IsLeftGoal)
	assert.True(t, goal.Collided)
	assert.GreaterOrEqual(t, verticalBounces, 1)
	assert.Less(t, gs.Puck().Position.X, -370.0)

	left, right := gs.Score()
	assert.Equal(t, 0, left)
	assert.Equal(t, 1, right)
	assert.Equal(t, 1, goal.Snapshot.RightScore)

	// The left goal is a left-side collider, so the AI re-aims
	assert.True(t, goal.Retargeted)
	assert.Greater(t, gs.World.AITarget, BottomWallY)
	assert.Less(t, gs.World.AITarget, TopWallY)
	assert.NotEqual(t, 0.0, gs.World.AITarget)
	assert.Greater(t, gs.Puck().Velocity.X, 0.0)
}

func TestGameState_EventsDoNotLeak(t *testing.T) {
	w := NewWorld()
	w.Add(Body{Role: protocol.RoleWall, Position: Vec2{Y: TopWallY}, Size: EndWallSize})
	w.Add(newPuck(Vec2{Y: 290}, Vec2{Y: 72}))
	gs := NewGameStateWithWorld(w, DefaultTuning())

	first := gs.Update(protocol.Input{})
	require.True(t, first.Collided)

	// Moving away now; one tick later the overlap is gone
	second := gs.Update(protocol.Input{})
	assert.False(t, second.Collided)
	assert.Empty(t, second.Goals)
}

func TestGameState_AIChasesPrediction(t *testing.T) {
	w := NewWorld()
	w.Add(Body{Role: protocol.RolePaddle, Side: protocol.SideRight, Position: Vec2{X: RightPaddleX}, Size: PaddleSize, AI: true})
	w.AITarget = 200
	gs := NewGameStateWithWorld(w, DefaultTuning())

	for i := 0; i < 200; i++ {
		gs.Update(protocol.Input{})
	}

	right := gs.World.Body(gs.World.Paddles(protocol.SideRight)[0])
	assert.InDelta(t, 200, right.Position.Y, gs.DeadZone+gs.Tuning.AIStep())
}

func TestGameState_PaddlesStayInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	gs := NewGameState(DefaultTuning())

	for i := 0; i < 5000; i++ {
		in := protocol.Input{Up: rng.Intn(2) == 0, Down: rng.Intn(2) == 0}
		result := gs.Update(in)

		for _, b := range result.Snapshot.Bodies {
			if b.Role != protocol.RolePaddle {
				continue
			}
			require.GreaterOrEqual(t, b.Y, BottomBound, "tick %d", result.Tick)
			require.LessOrEqual(t, b.Y, TopBound, "tick %d", result.Tick)
		}
	}
}
