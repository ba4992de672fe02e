package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette
var (
	ColorBackground = mustHex("#0a0a0a")
	ColorForeground = mustHex("#e5e5e5")
	ColorMuted      = mustHex("#737373")
	ColorAccent     = mustHex("#c9a050")
	ColorEdgeIdle   = mustHex("#ffffff")
	ColorNodeFill   = mustHex("#171717")
	ColorError      = mustHex("#d46a6a")
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Fade blends c over the background by alpha in [0, 1]
func Fade(c colorful.Color, alpha float64) colorful.Color {
	if alpha >= 1 {
		return c
	}
	if alpha <= 0 {
		return ColorBackground
	}
	return ColorBackground.BlendRgb(c, alpha)
}

// ToTcell converts to a true-color tcell color
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Style returns a style with fg over the palette background
func Style(fg colorful.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(ToTcell(fg)).Background(ToTcell(ColorBackground))
}
