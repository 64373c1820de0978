package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriChat/ui/styles"
)

func RenderStatus(status, info string, loading bool, loadingDots int, width int) string {
	statusContent := status
	if loading {
		statusContent += strings.Repeat(".", loadingDots)
	}

	// Padding eats two columns; whatever is left separates the two sides.
	gap := width - 2 - lipgloss.Width(statusContent) - lipgloss.Width(info)
	if gap < 1 {
		return styles.StatusStyle(width).Render(statusContent)
	}
	return styles.StatusStyle(width).Render(
		statusContent + strings.Repeat(" ", gap) + styles.StatusInfoStyle().Render(info),
	)
}
