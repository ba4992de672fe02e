package physics

import (
	"math"

	"github.com/lixenwraith/gaze/parameter"
	"github.com/lixenwraith/gaze/vmath"
)

// SizeCategory selects a node's base radius, which is also its mass
type SizeCategory uint8

const (
	// SizeText is a text-only node
	SizeText SizeCategory = iota
	// SizeImage is a node carrying an image, rendered larger
	SizeImage
)

// BaseRadius returns the category's base radius
func (c SizeCategory) BaseRadius() float64 {
	if c == SizeImage {
		return parameter.ImageBaseRadius
	}
	return parameter.TextBaseRadius
}

// String returns human-readable category name
func (c SizeCategory) String() string {
	if c == SizeImage {
		return "image"
	}
	return "text"
}

// Node is one circular body of the field
// ID, Radius and Mass are fixed at creation, Pos and Vel change every frame
type Node struct {
	ID     string
	Pos    vmath.Vec2
	Vel    vmath.Vec2 // World units per frame
	Radius float64
	Mass   float64

	// Payload is carried for the renderer and never read by the physics
	Payload any
}

// NewNode creates a node, clamping a non-positive or non-finite radius to MinRadius
// A non-positive mass falls back to the (clamped) radius
func NewNode(id string, radius, mass float64, pos, vel vmath.Vec2, payload any) Node {
	if !(radius > 0) || math.IsInf(radius, 0) {
		radius = parameter.MinRadius
	}
	if !(mass > 0) || math.IsInf(mass, 0) {
		mass = radius
	}
	return Node{
		ID:      id,
		Pos:     pos,
		Vel:     vel,
		Radius:  radius,
		Mass:    mass,
		Payload: payload,
	}
}

// NewSizedNode creates a node from a size category: radius = base + jitter, mass = base
func NewSizedNode(id string, category SizeCategory, jitter float64, pos, vel vmath.Vec2, payload any) Node {
	base := category.BaseRadius()
	if jitter < 0 {
		jitter = 0
	}
	return NewNode(id, base+jitter, base, pos, vel, payload)
}

// Contains reports whether p lies inside the node's circle
func (n *Node) Contains(p vmath.Vec2) bool {
	dx := p.X - n.Pos.X
	dy := p.Y - n.Pos.Y
	return dx*dx+dy*dy <= n.Radius*n.Radius
}
