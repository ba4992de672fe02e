package physics

import (
	"math/rand/v2"

	"github.com/lixenwraith/gaze/parameter"
	"github.com/lixenwraith/gaze/vmath"
)

// SeedPosition returns a pseudo-random position inset from the edges by SeedMargin
// An axis too small for the margin collapses to its center
func SeedPosition(rng *rand.Rand, width, height float64) vmath.Vec2 {
	return vmath.Vec2{
		X: insetRandom(rng, width),
		Y: insetRandom(rng, height),
	}
}

func insetRandom(rng *rand.Rand, dimension float64) float64 {
	span := dimension - 2*parameter.SeedMargin
	if span <= 0 {
		return dimension / 2
	}
	return rng.Float64()*span + parameter.SeedMargin
}

// SeedVelocity returns a small drift velocity in [-spread/2, spread/2) per axis
func SeedVelocity(rng *rand.Rand) vmath.Vec2 {
	return spreadVelocity(rng, parameter.SeedVelocitySpread)
}

// SeedJitter returns a radius increment in [0, RadiusJitter)
func SeedJitter(rng *rand.Rand) float64 {
	return rng.Float64() * parameter.RadiusJitter
}

// PublishPosition returns the viewport center
func PublishPosition(width, height float64) vmath.Vec2 {
	return vmath.Vec2{X: width / 2, Y: height / 2}
}

// PublishVelocity returns the "pop" velocity of a freshly published node, never the zero vector
func PublishVelocity(rng *rand.Rand) vmath.Vec2 {
	for {
		v := spreadVelocity(rng, parameter.PublishVelocitySpread)
		if v != (vmath.Vec2{}) {
			return v
		}
	}
}

func spreadVelocity(rng *rand.Rand, spread float64) vmath.Vec2 {
	return vmath.Vec2{
		X: (rng.Float64() - 0.5) * spread,
		Y: (rng.Float64() - 0.5) * spread,
	}
}
