package physics

import (
	"github.com/lixenwraith/gaze/parameter"
	"github.com/lixenwraith/gaze/vmath"
)

// Integrate advances position by one frame of velocity: p = p + v
func Integrate(n *Node) {
	n.Pos = vmath.V2Add(n.Pos, n.Vel)
}

// Damp scales velocity by factor
func Damp(n *Node, factor float64) {
	n.Vel = vmath.V2Scale(n.Vel, factor)
}

// ReflectWallX handles horizontal boundary collision, returns true if reflection occurred
// Clamps into [radius, width-radius] and negates VelX, skipped when width is not positive
func ReflectWallX(n *Node, width float64) bool {
	if width <= 0 {
		return false
	}
	if n.Pos.X < n.Radius {
		n.Pos.X = n.Radius
		n.Vel.X = -n.Vel.X
		return true
	}
	if n.Pos.X > width-n.Radius {
		n.Pos.X = width - n.Radius
		n.Vel.X = -n.Vel.X
		return true
	}
	return false
}

// ReflectWallY handles vertical boundary collision, returns true if reflection occurred
// Clamps into [radius, height-radius] and negates VelY, skipped when height is not positive
func ReflectWallY(n *Node, height float64) bool {
	if height <= 0 {
		return false
	}
	if n.Pos.Y < n.Radius {
		n.Pos.Y = n.Radius
		n.Vel.Y = -n.Vel.Y
		return true
	}
	if n.Pos.Y > height-n.Radius {
		n.Pos.Y = height - n.Radius
		n.Vel.Y = -n.Vel.Y
		return true
	}
	return false
}

// ReflectWalls handles both axis boundary collisions, returns the number of axes reflected
func ReflectWalls(n *Node, width, height float64) int {
	count := 0
	if ReflectWallX(n, width) {
		count++
	}
	if ReflectWallY(n, height) {
		count++
	}
	return count
}

// ContainInWalls clamps position into [radius, dimension-radius] without touching velocity
// Used after pair resolution, which may push a node past a wall; skipped per axis when the dimension is not positive
func ContainInWalls(n *Node, width, height float64) {
	if width > 0 {
		n.Pos.X = vmath.Clamp(n.Pos.X, n.Radius, width-n.Radius)
	}
	if height > 0 {
		n.Pos.Y = vmath.Clamp(n.Pos.Y, n.Radius, height-n.Radius)
	}
}

// FollowPointer moves a dragged node onto the pointer
// Velocity becomes the scaled pointer delta for throw feedback, no wall clamp is applied
func FollowPointer(n *Node, pointer vmath.Vec2) {
	n.Vel = vmath.V2Scale(vmath.V2Sub(pointer, n.Pos), parameter.DragResponseFactor)
	n.Pos = pointer
}
