package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/Rorical/RoriChat/ui/styles"
)

// renderPane draws body inside a rounded border with title set into the top
// edge. width and height are the inner text dimensions.
func renderPane(title string, body []string, width, height int, focused bool) string {
	rows := make([]string, height)
	for i := range rows {
		if i < len(body) {
			rows[i] = truncate.String(body[i], uint(width))
		}
	}
	box := styles.PaneStyle(width, height, focused).Render(strings.Join(rows, "\n"))
	return topBorder(title, width+4, focused) + "\n" + box
}

func topBorder(title string, outer int, focused bool) string {
	border := lipgloss.RoundedBorder()
	label := " " + title + " "
	fill := outer - 3 - lipgloss.Width(label)
	if fill < 0 {
		label = ""
		fill = max(0, outer-3)
	}

	color := lipgloss.NewStyle().Foreground(styles.BorderColor(focused))
	return color.Render(border.TopLeft+border.Top) +
		styles.TitleStyle(focused).Render(label) +
		color.Render(strings.Repeat(border.Top, fill)+border.TopRight)
}
