package input

import (
	"github.com/lixenwraith/gaze/physics"
	"github.com/lixenwraith/gaze/vmath"
)

// HitTest returns the top-most node containing p
// Later nodes are drawn over earlier ones, so the search runs backwards
func HitTest(nodes []physics.Node, p vmath.Vec2) (string, bool) {
	for i := len(nodes) - 1; i >= 0; i-- {
		if nodes[i].Contains(p) {
			return nodes[i].ID, true
		}
	}
	return "", false
}
