package components

import (
	"strings"

	"github.com/Rorical/RoriChat/internal/markdown"
	"github.com/Rorical/RoriChat/ui/styles"
)

const cursor = "█"

// RenderInput draws the prompt line, scrolled so its end stays visible.
func RenderInput(input string, width, rows int, focused, loading bool) string {
	title := "Input"
	switch {
	case loading:
		title += " (waiting for reply)"
	case focused:
		title += " (enter to send)"
	}

	var body []string
	if input == "" && !focused {
		body = []string{styles.PlaceholderStyle().Render("Press tab to type a prompt")}
	} else {
		text := input
		if focused {
			text += cursor
		}
		body = markdown.Wrap(text, width)
		if len(body) > rows {
			body = body[len(body)-rows:]
		}
		for i := range body {
			body[i] = strings.TrimRight(body[i], " ")
		}
	}
	return renderPane(title, body, width, rows, focused)
}
