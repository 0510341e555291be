// Package geom provides the 2D points and axis-aligned rectangles used by the
// simulation. Everything here is a pure value type.
package geom

import "math"

// Pos is a point or displacement in world units.
type Pos struct {
	X, Y float64
}

// Polar builds the displacement of length r along heading theta (radians).
func Polar(r, theta float64) Pos {
	return Pos{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
}

func (p Pos) Add(o Pos) Pos {
	return Pos{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Pos) Sub(o Pos) Pos {
	return Pos{X: p.X - o.X, Y: p.Y - o.Y}
}

func (p Pos) Scale(n float64) Pos {
	return Pos{X: p.X * n, Y: p.Y * n}
}

func (p Pos) Div(n float64) Pos {
	return Pos{X: p.X / n, Y: p.Y / n}
}

// Dist2 returns the squared distance to o.
func (p Pos) Dist2(o Pos) float64 {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return dx*dx + dy*dy
}

// Angle returns the heading of p seen as a vector, in (-π, π].
func (p Pos) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// Mag returns the length of p seen as a vector.
func (p Pos) Mag() float64 {
	return math.Hypot(p.X, p.Y)
}

// Rect is an axis-aligned rectangle. Top is the smaller Y.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Square returns the rectangle of side size centered on center.
func Square(center Pos, size float64) Rect {
	half := size / 2
	return Rect{
		Left:   center.X - half,
		Top:    center.Y - half,
		Right:  center.X + half,
		Bottom: center.Y + half,
	}
}

func (r Rect) Width() float64  { return r.Right - r.Left }
func (r Rect) Height() float64 { return r.Bottom - r.Top }
func (r Rect) Area() float64   { return r.Width() * r.Height() }

// Intersects reports whether the interiors of r and o overlap.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.Left < o.Right && r.Right > o.Left && r.Top < o.Bottom && r.Bottom > o.Top
}

// Contains reports whether p lies strictly inside r.
// Points on the boundary are not contained.
func (r Rect) Contains(p Pos) bool {
	return r.Left < p.X && r.Right > p.X && r.Top < p.Y && r.Bottom > p.Y
}
