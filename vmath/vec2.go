package vmath

import "math"

// Vec2 is a float64 2D vector in world units
type Vec2 struct {
	X, Y float64
}

// V2 constructs a Vec2
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// V2Dot returns a.X*b.X + a.Y*b.Y
func V2Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Sqrt(V2MagSq(v))
}

// V2Normalize returns the unit vector, zero-safe
func V2Normalize(v Vec2) Vec2 {
	mag := V2Mag(v)
	if mag == 0 {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// V2Dist returns the Euclidean distance between two points
func V2Dist(a, b Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// V2Finite reports whether both components are neither NaN nor Inf
func V2Finite(v Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
