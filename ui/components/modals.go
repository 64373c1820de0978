package components

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriChat/internal/models"
	"github.com/Rorical/RoriChat/ui/styles"
)

const (
	modalWidth      = 56
	helpWidth       = 80
	modelListHeight = 10
)

// placeModal centers box on a width x height screen.
func placeModal(box string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func modalBoxWidth(screen int) int {
	return max(20, min(modalWidth, screen-4))
}

// RenderConfigModal shows the token draft masked, one star per rune.
func RenderConfigModal(draft string, width, height int) string {
	inner := modalBoxWidth(width) - 4
	field := strings.Repeat("*", utf8.RuneCountInString(draft)) + cursor
	if lipgloss.Width(field) > inner {
		// Keep the tail visible while typing long tokens.
		runes := []rune(field)
		field = string(runes[max(0, len(runes)-inner):])
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle().Render("API Token"),
		"Paste your Qianfan API token:",
		"",
		field,
		styles.HintStyle().Render("enter save · esc cancel · empty clears the token"),
	)
	return placeModal(styles.ModalStyle(modalBoxWidth(width)).Render(body), width, height)
}

func RenderModelSelect(highlighted int, current models.ModelID, width, height int) string {
	rows := min(modelListHeight, max(3, height-10))
	start := max(0, min(highlighted-rows/2, len(models.AvailableModels)-rows))

	var list []string
	for i := start; i < min(len(models.AvailableModels), start+rows); i++ {
		id := models.AvailableModels[i]
		marker := "  "
		if id == current {
			marker = "* "
		}
		line := marker + string(id)
		if i == highlighted {
			line = styles.SelectedStyle().Render("> " + line)
		} else {
			line = "  " + line
		}
		list = append(list, line)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle().Render("Select Model"),
		strings.Join(list, "\n"),
		styles.HintStyle().Render("↑/↓ move · enter select · esc cancel · * current"),
	)
	return placeModal(styles.ModalStyle(modalBoxWidth(width)).Render(body), width, height)
}

func RenderHelp(keys help.KeyMap, width, height int) string {
	boxWidth := max(20, min(helpWidth, width-4))
	h := help.New()
	h.ShowAll = true

	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle().Render("Keyboard Shortcuts"),
		h.View(keys),
		styles.HintStyle().Render("esc or h to close"),
	)
	return placeModal(styles.ModalStyle(boxWidth).Render(body), width, height)
}
