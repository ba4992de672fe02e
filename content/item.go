package content

import "strings"

// Type is the kind of cultural artifact a node represents
type Type string

const (
	TypeReview  Type = "REVIEW"
	TypeMusic   Type = "MUSIC"
	TypeThought Type = "THOUGHT"
	TypeCinema  Type = "CINEMA"
	TypeVoice   Type = "VOICE"
)

// Types lists every type in form cycling order
var Types = []Type{TypeReview, TypeMusic, TypeThought, TypeCinema, TypeVoice}

// Icon returns the glyph drawn at the center of a node
func (t Type) Icon() rune {
	switch t {
	case TypeCinema:
		return '▶'
	case TypeMusic:
		return '♫'
	case TypeReview:
		return '★'
	case TypeVoice:
		return '◉'
	default:
		return '❝'
	}
}

// Label returns the display label
func (t Type) Label() string {
	if t == "" {
		return string(TypeThought)
	}
	return string(t)
}

// Next returns the following type in Types, wrapping around
func (t Type) Next(step int) Type {
	idx := 0
	for i, candidate := range Types {
		if candidate == t {
			idx = i
			break
		}
	}
	n := len(Types)
	return Types[((idx+step)%n+n)%n]
}

// Item is the payload carried by a constellation node
type Item struct {
	ID       string `yaml:"id"`
	Type     Type   `yaml:"type" validate:"required,oneof=REVIEW MUSIC THOUGHT CINEMA VOICE"`
	Title    string `yaml:"title" validate:"required,max=200"`
	Subtitle string `yaml:"subtitle,omitempty" validate:"max=200"`
	Content  string `yaml:"content" validate:"required"`
	Rating   int    `yaml:"rating,omitempty" validate:"min=0,max=5"`
	Image    string `yaml:"image,omitempty"`
	Link     string `yaml:"link,omitempty"`
}

// HasImage reports whether the item carries an image, which selects the larger node size
func (it Item) HasImage() bool {
	return strings.TrimSpace(it.Image) != ""
}

// Normalize trims fields, sanitizes text for the terminal and defaults the type
func (it Item) Normalize() Item {
	it.ID = strings.TrimSpace(it.ID)
	it.Type = Type(strings.ToUpper(strings.TrimSpace(string(it.Type))))
	if it.Type == "" {
		it.Type = TypeThought
	}
	it.Title = Sanitize(strings.TrimSpace(it.Title))
	it.Subtitle = Sanitize(strings.TrimSpace(it.Subtitle))
	it.Content = SanitizeBlock(strings.TrimSpace(it.Content))
	it.Image = strings.TrimSpace(it.Image)
	it.Link = Sanitize(strings.TrimSpace(it.Link))
	return it
}
