package render

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gaze/content"
	"github.com/lixenwraith/gaze/parameter"
)

// FormField identifies one input of the publish form
type FormField int

const (
	FieldType FormField = iota
	FieldTitle
	FieldSubtitle
	FieldContent
	FieldRating
	FieldLink
	FieldImage
	fieldCount
)

var fieldLabels = [fieldCount]string{
	FieldType:     "Type",
	FieldTitle:    "Title",
	FieldSubtitle: "Subtitle",
	FieldContent:  "Content",
	FieldRating:   "Rating",
	FieldLink:     "Link",
	FieldImage:    "Image",
}

// String returns the field label
func (f FormField) String() string {
	if f < 0 || f >= fieldCount {
		return "?"
	}
	return fieldLabels[f]
}

// FormAction is the outcome of a key handled by the form
type FormAction uint8

const (
	FormNone FormAction = iota
	FormSubmit
	FormCancel
)

// Form is the "Add Node" editor state
type Form struct {
	typ    content.Type
	rating int
	text   [fieldCount][]rune
	focus  FormField
}

// NewForm creates an empty form focused on the title
func NewForm() *Form {
	f := &Form{}
	f.Reset()
	return f
}

// Reset clears every field
func (f *Form) Reset() {
	f.typ = content.TypeThought
	f.rating = 0
	for i := range f.text {
		f.text[i] = f.text[i][:0]
	}
	f.focus = FieldTitle
}

// Focus returns the focused field
func (f *Form) Focus() FormField {
	return f.focus
}

// Value returns the display value of a field
func (f *Form) Value(field FormField) string {
	switch field {
	case FieldType:
		return f.typ.Label()
	case FieldRating:
		if f.rating == 0 {
			return "-"
		}
		return content.Stars(f.rating)
	default:
		if field < 0 || field >= fieldCount {
			return ""
		}
		return string(f.text[field])
	}
}

// Item returns the form contents as an unvalidated item
func (f *Form) Item() content.Item {
	return content.Item{
		Type:     f.typ,
		Title:    string(f.text[FieldTitle]),
		Subtitle: string(f.text[FieldSubtitle]),
		Content:  string(f.text[FieldContent]),
		Rating:   f.rating,
		Link:     string(f.text[FieldLink]),
		Image:    string(f.text[FieldImage]),
	}
}

// HandleKey applies one key event to the form
func (f *Form) HandleKey(ev *tcell.EventKey) FormAction {
	switch ev.Key() {
	case tcell.KeyEscape:
		return FormCancel
	case tcell.KeyCtrlS:
		return FormSubmit
	case tcell.KeyTab, tcell.KeyDown:
		f.move(1)
	case tcell.KeyBacktab, tcell.KeyUp:
		f.move(-1)
	case tcell.KeyEnter:
		if f.focus == FieldContent {
			f.text[FieldContent] = append(f.text[FieldContent], '\n')
		} else {
			f.move(1)
		}
	case tcell.KeyLeft:
		f.adjust(-1)
	case tcell.KeyRight:
		f.adjust(1)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		f.backspace()
	case tcell.KeyRune:
		f.insert(ev.Rune())
	}
	return FormNone
}

func (f *Form) move(step int) {
	n := int(fieldCount)
	f.focus = FormField(((int(f.focus)+step)%n + n) % n)
}

func (f *Form) adjust(step int) {
	switch f.focus {
	case FieldType:
		f.typ = f.typ.Next(step)
	case FieldRating:
		f.rating = min(max(f.rating+step, 0), 5)
	}
}

func (f *Form) backspace() {
	switch f.focus {
	case FieldType:
	case FieldRating:
		f.rating = 0
	default:
		if n := len(f.text[f.focus]); n > 0 {
			f.text[f.focus] = f.text[f.focus][:n-1]
		}
	}
}

func (f *Form) insert(r rune) {
	switch f.focus {
	case FieldType:
		if r == ' ' {
			f.typ = f.typ.Next(1)
		}
	case FieldRating:
		if v, err := strconv.Atoi(string(r)); err == nil && v >= 0 && v <= 5 {
			f.rating = v
		}
	default:
		f.text[f.focus] = append(f.text[f.focus], r)
	}
}

// drawForm renders the form as a centered panel
func drawForm(s tcell.Screen, vp Viewport, f *Form) {
	width := min(parameter.FormWidth, vp.Cols-2)
	height := min(int(fieldCount)+8, vp.Rows-2)
	if width < 20 || height < 5 {
		return
	}
	x := (vp.Cols - width) / 2
	y := (vp.Rows - height) / 2
	drawPanel(s, x, y, width, height, "ADD NODE")

	labelStyle := Style(ColorMuted)
	valueStyle := Style(ColorForeground)
	focusStyle := Style(ColorAccent).Bold(true)

	row := y + 1
	inner := width - 4
	for field := FieldType; field < fieldCount && row < y+height-1; field++ {
		style := labelStyle
		marker := "  "
		if field == f.focus {
			style = focusStyle
			marker = "› "
		}
		label := marker + field.String()
		drawText(s, x+2, row, inner, label, style)

		valueX := x + 2 + 12
		value := f.Value(field)
		if field == FieldContent {
			lines := strings.Split(value, "\n")
			value = lines[len(lines)-1]
			if len(lines) > 1 {
				value = "…" + value
			}
		}
		if field == f.focus && field != FieldType && field != FieldRating {
			value += "▏"
		}
		drawText(s, valueX, row, inner-12, value, valueStyle)
		row++
	}
}
