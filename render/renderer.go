package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/gaze/content"
	"github.com/lixenwraith/gaze/parameter"
	"github.com/lixenwraith/gaze/physics"
	"github.com/lixenwraith/gaze/proximity"
	"github.com/lixenwraith/gaze/vmath"
)

// Scene is everything drawn in one frame
type Scene struct {
	Nodes     []physics.Node
	Edges     []proximity.Edge
	HoveredID string
	DraggedID string

	Status      string
	StatusError bool

	// Thread is the opened item, nil when the constellation is shown
	Thread       *content.Item
	ThreadScroll int

	// Form is the publish form, nil when closed
	Form *Form
}

// Renderer draws scenes to a tcell screen
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a renderer bound to screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw renders a full frame and shows it
func (r *Renderer) Draw(vp Viewport, scene Scene) {
	s := r.screen
	s.SetStyle(Style(ColorForeground))
	s.Clear()
	fill(s, 0, 0, vp.Cols, vp.Rows, Style(ColorForeground))

	r.drawHeader(vp)
	for _, e := range scene.Edges {
		r.drawEdge(vp, e)
	}
	for i := range scene.Nodes {
		n := &scene.Nodes[i]
		r.drawNode(vp, n, n.ID == scene.HoveredID, n.ID == scene.DraggedID)
	}

	switch {
	case scene.Form != nil:
		drawForm(s, vp, scene.Form)
	case scene.Thread != nil:
		drawThread(s, vp, *scene.Thread, scene.ThreadScroll)
	}

	r.drawStatus(vp, scene)
	s.Show()
}

func (r *Renderer) drawHeader(vp Viewport) {
	title := Style(ColorAccent).Bold(true)
	used := drawText(r.screen, 1, 0, vp.Cols-1, parameter.HeaderTitle, title)
	drawText(r.screen, used+3, 0, vp.Cols-used-3, parameter.HeaderSubtitle, Style(ColorMuted))

	rule := Style(Fade(ColorMuted, 0.5))
	for col := 0; col < vp.Cols; col++ {
		r.screen.SetContent(col, parameter.HeaderHeight-1, '─', nil, rule)
	}
}

func (r *Renderer) drawStatus(vp Viewport, scene Scene) {
	row := vp.Rows - 1
	if row < parameter.HeaderHeight {
		return
	}

	hint := parameter.HintConstellation
	switch {
	case scene.Form != nil:
		hint = parameter.HintForm
	case scene.Thread != nil:
		hint = parameter.HintThread
	}
	hintWidth := runewidth.StringWidth(hint)
	if hintWidth < vp.Cols {
		drawText(r.screen, vp.Cols-hintWidth-1, row, hintWidth, hint, Style(ColorMuted))
	}

	if scene.Status != "" {
		style := Style(ColorForeground)
		if scene.StatusError {
			style = Style(ColorError)
		}
		drawText(r.screen, 1, row, max(vp.Cols-hintWidth-3, 0), scene.Status, style)
	}
}

// drawEdge rasterizes an edge with a supercover line, idle edges skip cells to read as dashed
func (r *Renderer) drawEdge(vp Viewport, e proximity.Edge) {
	x1, y1 := vp.ToCellF(e.From)
	x2, y2 := vp.ToCellF(e.To)

	var (
		glyph rune
		style tcell.Style
	)
	if e.Highlighted {
		glyph = parameter.RuneEdgeSolid
		style = Style(Fade(ColorAccent, e.Opacity)).Bold(e.Weight > 1)
	} else {
		glyph = parameter.RuneEdgeDash
		style = Style(Fade(ColorEdgeIdle, e.Opacity))
	}

	step := 0
	vmath.Traverse(x1, y1, x2, y2, func(col, row int) bool {
		defer func() { step++ }()
		if e.Dashed && step%3 != 0 {
			return true
		}
		if vp.InArea(col, row) {
			r.screen.SetContent(col, row, glyph, nil, style)
		}
		return true
	})
}

func (r *Renderer) drawNode(vp Viewport, n *physics.Node, hovered, dragged bool) {
	rimColor := ColorMuted
	switch {
	case dragged:
		rimColor = ColorForeground
	case hovered:
		rimColor = ColorAccent
	}
	rim := Style(rimColor)
	interior := tcell.StyleDefault.Foreground(ToTcell(ColorForeground)).Background(ToTcell(ColorNodeFill))

	band := math.Max(vp.CellW, vp.CellH) * 0.75
	minCol, minRow := vp.ToCell(vmath.Vec2{X: n.Pos.X - n.Radius, Y: n.Pos.Y - n.Radius})
	maxCol, maxRow := vp.ToCell(vmath.Vec2{X: n.Pos.X + n.Radius, Y: n.Pos.Y + n.Radius})

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			if !vp.InArea(col, row) {
				continue
			}
			d := vmath.V2Dist(vp.ToWorld(col, row), n.Pos)
			switch {
			case d > n.Radius:
			case d > n.Radius-band:
				r.screen.SetContent(col, row, parameter.RuneNodeRim, nil, rim)
			default:
				r.screen.SetContent(col, row, parameter.RuneNodeFill, nil, interior)
			}
		}
	}

	item, ok := n.Payload.(content.Item)
	if !ok {
		return
	}

	col, row := vp.ToCell(n.Pos)
	iconStyle := interior.Foreground(ToTcell(rimColor))
	if vp.InArea(col, row) {
		r.screen.SetContent(col, row, item.Type.Icon(), nil, iconStyle)
	}

	// Title below the icon, kept inside the rim
	labelWidth := int(2*(n.Radius-band)/vp.CellW) - 1
	if labelWidth > 2 && vp.InArea(col, row+1) {
		label := runewidth.Truncate(item.Title, labelWidth, "…")
		w := runewidth.StringWidth(label)
		start := max(col-w/2, 0)
		drawText(r.screen, start, row+1, min(w, vp.Cols-start), label, interior)
	}
}
