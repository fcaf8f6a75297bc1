package game

import "math"

// Collision names which face of the second box the first box struck
type Collision int

const (
	NoCollision     Collision = iota // boxes do not overlap
	CollisionLeft                    // hit the left face of the second box
	CollisionRight                   // hit the right face of the second box
	CollisionTop                     // hit the top face of the second box
	CollisionBottom                  // hit the bottom face of the second box
	CollisionInside                  // nested, no single face
)

func (c Collision) String() string {
	switch c {
	case CollisionLeft:
		return "left"
	case CollisionRight:
		return "right"
	case CollisionTop:
		return "top"
	case CollisionBottom:
		return "bottom"
	case CollisionInside:
		return "inside"
	}
	return "none"
}

// Box is an axis-aligned rectangle in world space (y up)
type Box struct {
	Left, Right float64
	Bottom, Top float64
}

// NewBox builds the edges of a box from its centre and full size
func NewBox(center, size Vec2) Box {
	half := size.Half()
	return Box{
		Left:   center.X - half.X,
		Right:  center.X + half.X,
		Bottom: center.Y - half.Y,
		Top:    center.Y + half.Y,
	}
}

// Overlaps reports whether the interiors of b and o intersect.
// Boxes that only share an edge do not overlap.
func (b Box) Overlaps(o Box) bool {
	return b.Left < o.Right && b.Right > o.Left && b.Bottom < o.Top && b.Top > o.Bottom
}

// Classify reports which face of the other box the mover struck.
//
// Each axis is classified on its own with a signed penetration depth; an axis
// where the mover straddles neither edge is Inside with depth -Inf. The axis with
// the shallower penetration wins. When both axes are Inside the x result (Inside)
// is returned.
func Classify(moverPos, moverSize, otherPos, otherSize Vec2) Collision {
	a := NewBox(moverPos, moverSize)
	b := NewBox(otherPos, otherSize)

	if !a.Overlaps(b) {
		return NoCollision
	}

	xSide, xDepth := CollisionInside, math.Inf(-1)
	switch {
	case a.Left < b.Left && a.Right > b.Left && a.Right < b.Right:
		xSide, xDepth = CollisionLeft, b.Left-a.Right
	case a.Left > b.Left && a.Left < b.Right && a.Right > b.Right:
		xSide, xDepth = CollisionRight, a.Left-b.Right
	}

	ySide, yDepth := CollisionInside, math.Inf(-1)
	switch {
	case a.Bottom < b.Bottom && a.Top > b.Bottom && a.Top < b.Top:
		ySide, yDepth = CollisionBottom, b.Bottom-a.Top
	case a.Bottom > b.Bottom && a.Bottom < b.Top && a.Top > b.Top:
		ySide, yDepth = CollisionTop, a.Bottom-b.Top
	}

	if math.Abs(yDepth) < math.Abs(xDepth) {
		return ySide
	}
	return xSide
}

// Reflect negates the velocity component that points into the struck face.
// A component already pointing away is left alone so an overlap that lasts
// several ticks does not flip the puck back and forth.
func Reflect(v Vec2, c Collision) Vec2 {
	switch c {
	case CollisionLeft:
		if v.X > 0 {
			v.X = -v.X
		}
	case CollisionRight:
		if v.X < 0 {
			v.X = -v.X
		}
	case CollisionTop:
		if v.Y < 0 {
			v.Y = -v.Y
		}
	case CollisionBottom:
		if v.Y > 0 {
			v.Y = -v.Y
		}
	}
	return v
}
