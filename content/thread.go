package content

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/gaze/parameter"
)

// Stars renders a 0-5 rating as full and empty star glyphs, empty string for unrated items
func Stars(rating int) string {
	if rating <= 0 {
		return ""
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat(string(parameter.RuneStarFull), rating) +
		strings.Repeat(string(parameter.RuneStarEmpty), 5-rating)
}

// ThreadText formats an item as plain text for sharing
func ThreadText(it Item) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s — %s\n", it.Type.Label(), it.Title)
	if it.Subtitle != "" {
		fmt.Fprintf(&b, "%s\n", it.Subtitle)
	}
	if stars := Stars(it.Rating); stars != "" {
		fmt.Fprintf(&b, "%s\n", stars)
	}
	b.WriteString("\n")
	b.WriteString(it.Content)
	b.WriteString("\n")
	if it.Link != "" {
		fmt.Fprintf(&b, "\nSource: %s\n", it.Link)
	}
	return b.String()
}
