package physics

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/gaze/parameter"
	"github.com/lixenwraith/gaze/vmath"
)

var (
	// ErrEmptyID is returned when adding a node without an identifier
	ErrEmptyID = errors.New("node id is empty")
	// ErrDuplicateID is returned when adding a node whose identifier is already present
	ErrDuplicateID = errors.New("duplicate node id")
	// ErrSnapshotMismatch is returned when applying nodes that do not match the field's order
	ErrSnapshotMismatch = errors.New("snapshot does not match field")
)

// Interaction is the per-frame pointer state supplied to Step
// An empty DraggedID or HoveredID means none
type Interaction struct {
	DraggedID string
	Pointer   vmath.Vec2
	HoveredID string
}

// StepStats counts the events of one Step
type StepStats struct {
	WallBounces int // Axis reflections
	Overlaps    int // Pairs that needed positional correction
	Impulses    int // Pairs that exchanged momentum
}

// Step advances nodes in place by exactly one frame
//
// Free nodes are damped when hovered, integrated and reflected off the walls.
// The dragged node follows the pointer instead. Pairs are then resolved in
// index order (i < j), skipping any pair that contains the dragged node.
// With three or more nodes overlapping in the same frame the result depends
// on that order. Free nodes finally get a position-only wall clamp so that
// no pair correction leaves them outside the viewport.
func Step(nodes []Node, width, height float64, in Interaction) StepStats {
	var stats StepStats

	for i := range nodes {
		n := &nodes[i]

		if in.DraggedID != "" && n.ID == in.DraggedID {
			FollowPointer(n, in.Pointer)
			continue
		}

		if in.HoveredID != "" && n.ID == in.HoveredID {
			Damp(n, parameter.HoverDamping)
		}

		Integrate(n)
		stats.WallBounces += ReflectWalls(n, width, height)
	}

	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			a, b := &nodes[i], &nodes[j]

			// Dragged node does not collide, prevents jitter under the pointer
			if in.DraggedID != "" && (a.ID == in.DraggedID || b.ID == in.DraggedID) {
				continue
			}

			switch ResolvePair(a, b) {
			case ContactSeparating:
				stats.Overlaps++
			case ContactImpulse:
				stats.Overlaps++
				stats.Impulses++
			}
		}
	}

	// Pair correction may have pushed a free node past a wall
	for i := range nodes {
		if in.DraggedID != "" && nodes[i].ID == in.DraggedID {
			continue
		}
		ContainInWalls(&nodes[i], width, height)
	}

	return stats
}

// Field owns the authoritative node set of a session
// Nodes are only ever appended, their order is stable and drives pair resolution order
type Field struct {
	nodes []Node
	index map[string]int
}

// NewField creates an empty field
func NewField() *Field {
	return &Field{
		nodes: make([]Node, 0, 16),
		index: make(map[string]int),
	}
}

// Add appends a node, rejecting empty or duplicate ids
func (f *Field) Add(n Node) error {
	if n.ID == "" {
		return ErrEmptyID
	}
	if _, exists := f.index[n.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, n.ID)
	}
	f.index[n.ID] = len(f.nodes)
	f.nodes = append(f.nodes, n)
	return nil
}

// Len returns the node count
func (f *Field) Len() int {
	return len(f.nodes)
}

// Node returns a copy of the node with the given id
func (f *Field) Node(id string) (Node, bool) {
	i, ok := f.index[id]
	if !ok {
		return Node{}, false
	}
	return f.nodes[i], true
}

// Nodes returns a snapshot of all nodes in stable order
func (f *Field) Nodes() []Node {
	out := make([]Node, len(f.nodes))
	copy(out, f.nodes)
	return out
}

// Apply commits the kinematic state of a stepped snapshot taken with Nodes
// Only positions and velocities are copied, ids must match index for index
func (f *Field) Apply(nodes []Node) error {
	if len(nodes) != len(f.nodes) {
		return fmt.Errorf("%w: %d nodes, field has %d", ErrSnapshotMismatch, len(nodes), len(f.nodes))
	}
	for i := range nodes {
		if nodes[i].ID != f.nodes[i].ID {
			return fmt.Errorf("%w: index %d is %s, field has %s", ErrSnapshotMismatch, i, nodes[i].ID, f.nodes[i].ID)
		}
	}
	for i := range nodes {
		f.nodes[i].Pos = nodes[i].Pos
		f.nodes[i].Vel = nodes[i].Vel
	}
	return nil
}

// Step advances the field by one frame, see Step
func (f *Field) Step(width, height float64, in Interaction) StepStats {
	return Step(f.nodes, width, height, in)
}
