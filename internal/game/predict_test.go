package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertVecInDelta(t *testing.T, want, got Vec2) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9, "x")
	assert.InDelta(t, want.Y, got.Y, 1e-9, "y")
}

func TestPredict_NoBounce(t *testing.T) {
	ic := DefaultIntercept()
	dir := Vec2{X: 1, Y: 0.5}.Normalize()

	got := ic.Predict(Vec2{}, dir, 0)

	// Straight extrapolation to the target x
	cy := (ic.TargetX - 0) * (dir.Y / dir.X)
	assertVecInDelta(t, Vec2{X: ic.TargetX, Y: cy}, got)
	assert.InDelta(t, 160.0, got.Y, 1e-9)
}

func TestPredict_OneBounce(t *testing.T) {
	ic := DefaultIntercept()

	got := ic.Predict(Vec2{}, Vec2{X: 1, Y: 2}, 0)

	// Unfolded line y = 2x reaches 640 at x = 320; mirrored about the top wall (305)
	assertVecInDelta(t, Vec2{X: RightPaddleX, Y: 2*TopWallY - 640}, got)
}

func TestPredict_TwoBounces(t *testing.T) {
	ic := DefaultIntercept()

	got := ic.Predict(Vec2{}, Vec2{X: 1, Y: 4}, 0)

	// Top at x=76.25, bottom at x=228.75, then 91.25*4 up from -305
	assertVecInDelta(t, Vec2{X: RightPaddleX, Y: 60}, got)
}

func TestPredict_DownwardBounce(t *testing.T) {
	ic := DefaultIntercept()

	got := ic.Predict(Vec2{}, Vec2{X: 1, Y: -2}, 0)

	assertVecInDelta(t, Vec2{X: RightPaddleX, Y: 30}, got)
}

func TestPredict_BounceLimit(t *testing.T) {
	ic := DefaultIntercept()

	t.Run("already at limit", func(t *testing.T) {
		pos := Vec2{X: 12, Y: 34}
		assert.Equal(t, pos, ic.Predict(pos, Vec2{X: 1, Y: 0.1}, MaxBounces))
	})

	t.Run("steep ray stops after five bounces", func(t *testing.T) {
		got := ic.Predict(Vec2{}, Vec2{X: 1, Y: 1000}, 0)

		// Each bounce advances x by 610/1000; the fifth lands on the top wall
		assertVecInDelta(t, Vec2{X: 0.305 + 4*0.61, Y: TopWallY}, got)
	})
}

func TestPredict_DegenerateDirections(t *testing.T) {
	ic := DefaultIntercept()

	tests := []struct {
		name string
		pos  Vec2
		dir  Vec2
	}{
		{"vertical ray", Vec2{X: -100, Y: 20}, Vec2{X: 0, Y: 1}},
		{"zero direction", Vec2{X: -100, Y: 20}, Vec2{}},
		{"horizontal ray outside walls", Vec2{X: 0, Y: 400}, Vec2{X: 1, Y: 0}},
		{"nan direction", Vec2{X: 1, Y: 2}, Vec2{X: math.NaN(), Y: 1}},
		{"bounce past target", Vec2{X: 400}, Vec2{X: -1, Y: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.pos, ic.Predict(tt.pos, tt.dir, 0))
		})
	}
}

func TestPredict_HorizontalRayInsideWalls(t *testing.T) {
	ic := DefaultIntercept()

	got := ic.Predict(Vec2{X: -300, Y: 42}, Vec2{X: 1, Y: 0}, 0)

	assertVecInDelta(t, Vec2{X: RightPaddleX, Y: 42}, got)
}

func TestPredict_AlwaysFinite(t *testing.T) {
	ic := DefaultIntercept()
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 10000; i++ {
		pos := Vec2{X: rng.Float64()*740 - 370, Y: rng.Float64()*580 - 290}
		angle := rng.Float64() * 2 * math.Pi
		dir := Vec2{X: math.Cos(angle), Y: math.Sin(angle)}

		got := ic.Predict(pos, dir, 0)

		assert.True(t, finite(got), "case %d: %v from %v along %v", i, got, pos, dir)
		// Bounce points always sit short of the target, so anything on it is a real hit
		if math.Abs(got.X-ic.TargetX) < 1e-9 {
			assert.Greater(t, got.Y, ic.BottomY, "case %d", i)
			assert.Less(t, got.Y, ic.TopY, "case %d", i)
		}
	}
}
