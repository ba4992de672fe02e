package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gaze/physics"
	"github.com/lixenwraith/gaze/vmath"
)

// Projector maps a terminal cell to world coordinates
type Projector interface {
	ToWorld(col, row int) vmath.Vec2
}

// MouseAction represents the decoded type of a mouse event
type MouseAction uint8

const (
	MouseActionNone MouseAction = iota
	MouseActionPress
	MouseActionRelease
	MouseActionMove
	MouseActionDrag
)

// String returns human-readable action name
func (a MouseAction) String() string {
	switch a {
	case MouseActionPress:
		return "Press"
	case MouseActionRelease:
		return "Release"
	case MouseActionMove:
		return "Move"
	case MouseActionDrag:
		return "Drag"
	default:
		return "None"
	}
}

// MouseResult describes what a mouse event did to the controller
type MouseResult struct {
	Action       MouseAction
	Pointer      vmath.Vec2
	OpenedID     string // Set when the release completed a click that opens a node
	HoverChanged bool
}

// Mouse decodes tcell mouse events into controller transitions
// tcell reports button masks only, so press, release and click are derived from mask edges
type Mouse struct {
	ctrl      *Controller
	proj      Projector
	held      bool
	pressedID string
}

// NewMouse creates a mouse adapter over a controller
func NewMouse(ctrl *Controller, proj Projector) *Mouse {
	return &Mouse{
		ctrl: ctrl,
		proj: proj,
	}
}

// SetProjector replaces the cell-to-world mapping, used after a resize
func (m *Mouse) SetProjector(proj Projector) {
	m.proj = proj
}

// Handle applies one mouse event, nodes is the latest snapshot used for hit-testing
func (m *Mouse) Handle(ev *tcell.EventMouse, nodes []physics.Node) MouseResult {
	col, row := ev.Position()
	p := m.proj.ToWorld(col, row)
	down := ev.Buttons()&tcell.Button1 != 0

	res := MouseResult{Pointer: p}

	switch {
	case down && !m.held:
		m.held = true
		res.Action = MouseActionPress
		if id, ok := HitTest(nodes, p); ok {
			m.pressedID = id
			m.ctrl.PointerDown(id, p)
		} else {
			m.ctrl.PointerMove(p)
		}

	case down && m.held:
		res.Action = MouseActionDrag
		m.ctrl.PointerMove(p)

	case !down && m.held:
		m.held = false
		res.Action = MouseActionRelease
		m.ctrl.PointerMove(p)
		m.ctrl.PointerUp()
		// Press and release on the same node form a click
		if m.pressedID != "" && m.ctrl.Click(m.pressedID) {
			res.OpenedID = m.pressedID
		}
		m.pressedID = ""

	default:
		res.Action = MouseActionMove
		m.ctrl.PointerMove(p)
	}

	res.HoverChanged = m.ctrl.UpdateHover(nodes, p)
	return res
}
