package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriChat/internal/core"
	"github.com/Rorical/RoriChat/ui/styles"
)

// HistoryView is what the history pane needs to draw itself.
type HistoryView struct {
	Lines   []core.Line // the visible window
	Offset  int
	Total   int
	Width   int
	Height  int
	Focused bool
}

func RenderHistory(v HistoryView) string {
	body := make([]string, len(v.Lines))
	for i, line := range v.Lines {
		body[i] = styleLine(line)
	}
	if len(v.Lines) == 0 {
		body = []string{styles.PlaceholderStyle().Render("No messages yet. Type a prompt below and press Enter.")}
	}
	return renderPane(historyTitle(v), body, v.Width, v.Height, v.Focused)
}

func styleLine(line core.Line) string {
	var style lipgloss.Style
	switch line.Kind {
	case core.LineUserHeader:
		style = styles.UserStyle()
	case core.LineAssistantHeader:
		style = styles.AssistantStyle()
	case core.LineErrorHeader:
		style = styles.ErrorStyle()
	default:
		return line.Text
	}
	return style.Render(line.Text)
}

func historyTitle(v HistoryView) string {
	title := "History"
	if v.Focused {
		title += " (↑↓ scroll, tab to input)"
	}
	if v.Total > v.Height {
		title += fmt.Sprintf(" %d-%d/%d", v.Offset+1, min(v.Total, v.Offset+v.Height), v.Total)
	}
	return title
}
