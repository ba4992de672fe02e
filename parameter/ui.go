package parameter

import "time"

// Cell Geometry
const (
	// CellWidth and CellHeight are world units covered by one terminal cell
	CellWidth  = 10.0
	CellHeight = 20.0
)

// Layout
const (
	// HeaderHeight is the number of rows reserved for the title block
	HeaderHeight = 2

	// StatusHeight is the number of rows reserved for the status line
	StatusHeight = 1

	// ThreadMaxWidth caps the body column of the thread view
	ThreadMaxWidth = 72

	// FormWidth is the width of the publish form panel
	FormWidth = 64
)

// Text
const (
	HeaderTitle       = "CULTURAL GAZE"
	HeaderSubtitle    = "A constellation of artifacts. Drag to rearrange. Click to expand thread."
	HintConstellation = "n:add node  q:quit"
	HintThread        = "esc:close thread  y:share  a:archive"
	HintForm          = "tab:next field  ←/→:type  ctrl+s:publish  esc:cancel"

	// StatusMessageTimeout is how long status messages stay visible
	StatusMessageTimeout = 3 * time.Second
)

// Glyphs
const (
	RuneEdgeSolid = '·'
	RuneEdgeDash  = '╌'
	RuneNodeRim   = '○'
	RuneNodeFill  = ' '
	RuneStarFull  = '★'
	RuneStarEmpty = '☆'
)
