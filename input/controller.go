package input

import (
	"github.com/lixenwraith/gaze/parameter"
	"github.com/lixenwraith/gaze/physics"
	"github.com/lixenwraith/gaze/vmath"
)

// State is the interaction state machine state
type State uint8

const (
	StateIdle     State = iota // No node under pointer control
	StateDragging              // One node follows the pointer
)

// String returns human-readable state name
func (s State) String() string {
	if s == StateDragging {
		return "Dragging"
	}
	return "Idle"
}

// Session is one drag gesture, from pointer-down on a node to pointer-up anywhere
type Session struct {
	NodeID   string
	Origin   vmath.Vec2
	Current  vmath.Vec2
	Exceeded bool // Pointer travelled past the click threshold, sticky for the session
}

// Controller tracks the pointer, the single drag session and the hovered node
// It never mutates nodes, the field reads its Interaction snapshot every frame
type Controller struct {
	state     State
	session   Session
	last      Session
	hasLast   bool
	pointer   vmath.Vec2
	hoveredID string
	threshold float64
}

// NewController creates an idle controller with the default click threshold
func NewController() *Controller {
	return NewControllerWithThreshold(parameter.ClickMoveThreshold)
}

// NewControllerWithThreshold creates an idle controller with a custom click threshold
func NewControllerWithThreshold(threshold float64) *Controller {
	if threshold < 0 {
		threshold = 0
	}
	return &Controller{
		state:     StateIdle,
		threshold: threshold,
	}
}

// State returns the current state
func (c *Controller) State() State {
	return c.state
}

// Session returns the active drag session
func (c *Controller) Session() (Session, bool) {
	if c.state != StateDragging {
		return Session{}, false
	}
	return c.session, true
}

// Pointer returns the last known pointer position
func (c *Controller) Pointer() vmath.Vec2 {
	return c.pointer
}

// DraggedID returns the dragged node id, empty when idle
func (c *Controller) DraggedID() string {
	if c.state != StateDragging {
		return ""
	}
	return c.session.NodeID
}

// HoveredID returns the hovered node id, empty when none
func (c *Controller) HoveredID() string {
	return c.hoveredID
}

// PointerDown starts a drag session on a node, replacing any previous session
func (c *Controller) PointerDown(nodeID string, p vmath.Vec2) {
	c.pointer = p
	c.session = Session{
		NodeID:  nodeID,
		Origin:  p,
		Current: p,
	}
	c.state = StateDragging
}

// PointerMove updates the shared pointer and marks the session as a drag once past the threshold
func (c *Controller) PointerMove(p vmath.Vec2) {
	c.pointer = p
	if c.state != StateDragging {
		return
	}
	c.session.Current = p
	if !c.session.Exceeded && vmath.V2Dist(c.session.Origin, p) > c.threshold {
		c.session.Exceeded = true
	}
}

// PointerUp ends the drag session unconditionally, wherever the pointer is
// The ended session is kept for click disambiguation and returned
func (c *Controller) PointerUp() (Session, bool) {
	if c.state != StateDragging {
		return Session{}, false
	}
	ended := c.session
	c.last = ended
	c.hasLast = true
	c.session = Session{}
	c.state = StateIdle
	return ended, true
}

// Click reports whether a click on a node is an "open" action
// It is, unless the active or just-ended drag session exceeded the movement threshold
func (c *Controller) Click(nodeID string) bool {
	if nodeID == "" {
		return false
	}
	if c.state == StateDragging {
		return !c.session.Exceeded
	}
	if c.hasLast {
		return !c.last.Exceeded
	}
	return true
}

// HoverEnter marks a node as hovered
func (c *Controller) HoverEnter(nodeID string) {
	c.hoveredID = nodeID
}

// HoverLeave clears the hover if it belongs to the node
func (c *Controller) HoverLeave(nodeID string) {
	if c.hoveredID == nodeID {
		c.hoveredID = ""
	}
}

// UpdateHover hit-tests the pointer and emits enter/leave, returns true if the hovered node changed
func (c *Controller) UpdateHover(nodes []physics.Node, p vmath.Vec2) bool {
	id, _ := HitTest(nodes, p)
	if id == c.hoveredID {
		return false
	}
	if c.hoveredID != "" {
		c.HoverLeave(c.hoveredID)
	}
	if id != "" {
		c.HoverEnter(id)
	}
	return true
}

// Interaction snapshots the state consumed by physics.Step
func (c *Controller) Interaction() physics.Interaction {
	return physics.Interaction{
		DraggedID: c.DraggedID(),
		Pointer:   c.pointer,
		HoveredID: c.hoveredID,
	}
}
