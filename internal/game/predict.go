package game

import "math"

// minComponent is the smallest direction component treated as non-zero
const minComponent = 1e-9

// Intercept describes the walls used to predict where the puck meets the target x
type Intercept struct {
	TargetX    float64
	TopY       float64
	BottomY    float64
	MaxBounces int
}

// DefaultIntercept aims at the right paddle's face, bouncing off the wall centres
func DefaultIntercept() Intercept {
	return Intercept{
		TargetX:    RightPaddleX,
		TopY:       TopWallY,
		BottomY:    BottomWallY,
		MaxBounces: MaxBounces,
	}
}

// Predict returns the point where a ray from pos along dir reaches TargetX,
// unfolding top/bottom wall bounces one at a time.
//
// pos is returned unchanged when the bounce limit is hit, when the ray is
// parallel to either axis where that matters, or when the geometry is
// inconsistent (the bounce would land past the target).
func (ic Intercept) Predict(pos, dir Vec2, bounces int) Vec2 {
	if bounces >= ic.MaxBounces {
		return pos
	}
	if math.Abs(dir.X) < minComponent || !finite(pos) || !finite(dir) {
		return pos
	}

	cy := (ic.TargetX-pos.X)*(dir.Y/dir.X) + pos.Y
	if cy > ic.BottomY && cy < ic.TopY {
		return Vec2{X: ic.TargetX, Y: cy}
	}

	if math.Abs(dir.Y) < minComponent {
		return pos
	}

	wallY := ic.BottomY
	if dir.Y >= 0 {
		wallY = ic.TopY
	}

	cx := (wallY-pos.Y)*(dir.X/dir.Y) + pos.X
	if cx < ic.TargetX {
		return ic.Predict(Vec2{X: cx, Y: wallY}, Vec2{X: dir.X, Y: -dir.Y}, bounces+1)
	}

	return pos
}

func finite(v Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
