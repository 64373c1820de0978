package styles

import "github.com/charmbracelet/lipgloss"

var (
	accent    = lipgloss.Color("62")
	dim       = lipgloss.Color("241")
	userColor = lipgloss.Color("39")
	aiColor   = lipgloss.Color("214")
	errColor  = lipgloss.Color("196")
	program   = lipgloss.Color("141")
)

// BorderColor is the pane border colour; the focused pane is highlighted.
func BorderColor(focused bool) lipgloss.TerminalColor {
	if focused {
		return accent
	}
	return dim
}

// PaneStyle draws the left, right and bottom border of a pane whose inner
// text area is width columns wide. The top border carries the title and is
// drawn separately.
func PaneStyle(width, height int, focused bool) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder(), false, true, true, true).
		BorderForeground(BorderColor(focused)).
		Padding(0, 1).
		Width(width + 2).
		Height(height)
}

func TitleStyle(focused bool) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(BorderColor(focused)).
		Bold(focused)
}

func StatusStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Background(lipgloss.Color("235")).
		Padding(0, 1).
		Width(width)
}

func StatusInfoStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(dim).
		Background(lipgloss.Color("235"))
}

func UserStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(userColor).
		Bold(true)
}

func AssistantStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(aiColor).
		Bold(true)
}

func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(errColor).
		Bold(true)
}

func PlaceholderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(dim).
		Italic(true)
}

func ModalStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(program).
		Padding(1, 2).
		Width(width)
}

func ModalTitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(program).
		Bold(true).
		MarginBottom(1)
}

func SelectedStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("230")).
		Background(accent).
		Bold(true)
}

func HintStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(dim).
		MarginTop(1)
}
