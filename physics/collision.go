package physics

import (
	"github.com/lixenwraith/gaze/parameter"
	"github.com/lixenwraith/gaze/vmath"
)

// Contact describes the outcome of resolving one node pair
type Contact uint8

const (
	// ContactNone means the pair does not overlap
	ContactNone Contact = iota
	// ContactSeparating means the overlap was corrected but the pair was already moving apart
	ContactSeparating
	// ContactImpulse means the overlap was corrected and an elastic impulse applied
	ContactImpulse
)

// degenerateNormal is used when two centers coincide and no direction is available
var degenerateNormal = vmath.Vec2{X: 1, Y: 0}

// ResolvePair separates two overlapping nodes and applies a 1D elastic impulse along the collision normal
// Positional correction is split evenly regardless of mass, tangential velocity is untouched
func ResolvePair(a, b *Node) Contact {
	delta := vmath.V2Sub(b.Pos, a.Pos)
	distance := vmath.V2Mag(delta)
	minDistance := a.Radius + b.Radius

	// NaN distance fails this test as well
	if !(distance < minDistance) {
		return ContactNone
	}

	normal := degenerateNormal
	if distance > 0 {
		normal = vmath.V2Scale(delta, 1/distance)
	}

	overlap := minDistance - distance
	move := vmath.V2Scale(normal, overlap*parameter.OverlapCorrectionShare)
	a.Pos = vmath.V2Sub(a.Pos, move)
	b.Pos = vmath.V2Add(b.Pos, move)

	v1n := vmath.V2Dot(a.Vel, normal)
	v2n := vmath.V2Dot(b.Vel, normal)
	if v1n-v2n < 0 {
		return ContactSeparating
	}

	common := 2 * (v1n - v2n) / (a.Mass + b.Mass)
	a.Vel = vmath.V2Sub(a.Vel, vmath.V2Scale(normal, common*b.Mass))
	b.Vel = vmath.V2Add(b.Vel, vmath.V2Scale(normal, common*a.Mass))
	return ContactImpulse
}
