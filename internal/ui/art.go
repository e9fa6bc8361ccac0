package ui

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/scplay/internal/page"
	"github.com/lucasb-eyer/go-colorful"
)

var hexColor = regexp.MustCompile(`#[0-9a-fA-F]{6}`)

// imageSwatchColor fills swatches for art backed by an image, which the terminal cannot show.
const imageSwatchColor = "#70929c"

// swatch renders an art style as a row of width colored cells.
//
// Gradient backgrounds blend their first and last colors across the row. Image backgrounds
// render as a solid block with a note glyph.
func swatch(style page.Style, width int) string {
	if width <= 0 {
		return ""
	}

	stops := hexColor.FindAllString(style.Background, -1)
	if strings.HasPrefix(style.Background, "url(") || len(stops) < 2 {
		cell := lipgloss.NewStyle().Background(lipgloss.Color(imageSwatchColor)).Foreground(lipgloss.Color("#ffffff"))
		return cell.Render("♪" + strings.Repeat(" ", width-1))
	}

	from, err := colorful.Hex(stops[0])
	if err != nil {
		return strings.Repeat(" ", width)
	}
	to, err := colorful.Hex(stops[len(stops)-1])
	if err != nil {
		return strings.Repeat(" ", width)
	}

	var b strings.Builder
	for i := range width {
		t := 0.0
		if width > 1 {
			t = float64(i) / float64(width-1)
		}
		c := from.BlendLab(to, t).Clamped()
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render(" "))
	}
	return b.String()
}
