package dispatcher

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the application reacts to. Which of them apply
// depends on the current mode; see Dispatch.
type KeyMap struct {
	Submit    key.Binding
	Backspace key.Binding
	ClearLine key.Binding
	RecallUp  key.Binding
	RecallDn  key.Binding

	ScrollUp   key.Binding
	ScrollDown key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Top        key.Binding
	Bottom     key.Binding

	ToggleFocus key.Binding
	Help        key.Binding
	Config      key.Binding
	ModelSelect key.Binding
	Copy        key.Binding
	CopyPane    key.Binding

	Quit     key.Binding
	QuitPane key.Binding

	Confirm   key.Binding
	Cancel    key.Binding
	CloseHelp key.Binding
	Prev      key.Binding
	Next      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "send prompt"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "delete character"),
		),
		ClearLine: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "clear line"),
		),
		RecallUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous prompt"),
		),
		RecallDn: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next prompt"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home/g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end/G", "bottom"),
		),
		ToggleFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		Help: key.NewBinding(
			key.WithKeys("alt+h"),
			key.WithHelp("alt+h", "help"),
		),
		Config: key.NewBinding(
			key.WithKeys("alt+c"),
			key.WithHelp("alt+c", "set token"),
		),
		ModelSelect: key.NewBinding(
			key.WithKeys("alt+m"),
			key.WithHelp("alt+m", "choose model"),
		),
		Copy: key.NewBinding(
			key.WithKeys("alt+y"),
			key.WithHelp("alt+y", "copy reply"),
		),
		CopyPane: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy last reply"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("ctrl+c/esc", "quit"),
		),
		QuitPane: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		CloseHelp: key.NewBinding(
			key.WithKeys("esc", "h", "q", "?", "enter"),
			key.WithHelp("esc", "close"),
		),
		Prev: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Next: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
	}
}

// ShortHelp is shown under the input pane.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.ToggleFocus, k.Help, k.Quit}
}

// FullHelp is the content of the help modal.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.RecallUp, k.RecallDn, k.ClearLine, k.ToggleFocus},
		{k.ScrollUp, k.ScrollDown, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.Help, k.Config, k.ModelSelect, k.Copy, k.Quit},
	}
}
