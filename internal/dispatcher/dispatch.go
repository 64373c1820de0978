// Package dispatcher maps raw key presses to commands for the controller.
package dispatcher

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriChat/internal/models"
)

// Dispatcher is a pure lookup from (key, mode) to a command.
type Dispatcher struct {
	keys KeyMap
}

func New(keys KeyMap) *Dispatcher {
	return &Dispatcher{keys: keys}
}

func (d *Dispatcher) Keys() KeyMap {
	return d.keys
}

// Dispatch returns the command for msg in mode. ok is false for keys that
// mean nothing in that mode; they are ignored.
func (d *Dispatcher) Dispatch(msg tea.KeyMsg, mode models.UIMode) (models.Command, bool) {
	switch m := mode.(type) {
	case models.NormalMode:
		if m.Focus == models.FocusHistory {
			return d.historyPane(msg)
		}
		return d.inputPane(msg)
	case models.LoadingMode:
		return d.loading(msg)
	case models.ConfigModal:
		return d.configModal(msg)
	case models.ModelSelectModal:
		return d.modelSelect(msg)
	case models.HelpModal:
		return d.helpModal(msg)
	}
	return models.Command{}, false
}

// global handles the shortcuts shared by the non-modal modes.
func (d *Dispatcher) global(msg tea.KeyMsg) (models.Command, bool) {
	k := d.keys
	switch {
	case key.Matches(msg, k.Quit):
		return models.Cmd(models.CmdQuit), true
	case key.Matches(msg, k.ToggleFocus):
		return models.Cmd(models.CmdToggleFocus), true
	case key.Matches(msg, k.Help):
		return models.Cmd(models.CmdOpenHelp), true
	case key.Matches(msg, k.Config):
		return models.Cmd(models.CmdOpenConfig), true
	case key.Matches(msg, k.ModelSelect):
		return models.Cmd(models.CmdOpenModelSelect), true
	case key.Matches(msg, k.Copy):
		return models.Cmd(models.CmdCopyLastReply), true
	case key.Matches(msg, k.PageUp):
		return models.Cmd(models.CmdPageUp), true
	case key.Matches(msg, k.PageDown):
		return models.Cmd(models.CmdPageDown), true
	}
	return models.Command{}, false
}

func (d *Dispatcher) inputPane(msg tea.KeyMsg) (models.Command, bool) {
	k := d.keys
	switch {
	case key.Matches(msg, k.Submit):
		return models.Cmd(models.CmdSubmit), true
	case key.Matches(msg, k.RecallUp):
		return models.Cmd(models.CmdRecallPrev), true
	case key.Matches(msg, k.RecallDn):
		return models.Cmd(models.CmdRecallNext), true
	}
	if cmd, ok := d.global(msg); ok {
		return cmd, true
	}
	return d.editing(msg)
}

func (d *Dispatcher) historyPane(msg tea.KeyMsg) (models.Command, bool) {
	if cmd, ok := d.scrolling(msg); ok {
		return cmd, true
	}
	k := d.keys
	switch {
	case key.Matches(msg, k.CopyPane):
		return models.Cmd(models.CmdCopyLastReply), true
	case key.Matches(msg, k.QuitPane):
		return models.Cmd(models.CmdQuit), true
	}
	return d.global(msg)
}

// loading keeps scrolling, editing of the next prompt and the shortcuts
// available; there is deliberately no submit.
func (d *Dispatcher) loading(msg tea.KeyMsg) (models.Command, bool) {
	k := d.keys
	switch {
	case key.Matches(msg, k.Submit):
		return models.Command{}, false
	case msg.Type == tea.KeyUp:
		return models.Cmd(models.CmdScrollUp), true
	case msg.Type == tea.KeyDown:
		return models.Cmd(models.CmdScrollDown), true
	case msg.Type == tea.KeyHome:
		return models.Cmd(models.CmdScrollTop), true
	case msg.Type == tea.KeyEnd:
		return models.Cmd(models.CmdScrollBottom), true
	}
	if cmd, ok := d.global(msg); ok {
		return cmd, true
	}
	return d.editing(msg)
}

func (d *Dispatcher) scrolling(msg tea.KeyMsg) (models.Command, bool) {
	k := d.keys
	switch {
	case key.Matches(msg, k.ScrollUp):
		return models.Cmd(models.CmdScrollUp), true
	case key.Matches(msg, k.ScrollDown):
		return models.Cmd(models.CmdScrollDown), true
	case key.Matches(msg, k.PageUp):
		return models.Cmd(models.CmdPageUp), true
	case key.Matches(msg, k.PageDown):
		return models.Cmd(models.CmdPageDown), true
	case key.Matches(msg, k.Top):
		return models.Cmd(models.CmdScrollTop), true
	case key.Matches(msg, k.Bottom):
		return models.Cmd(models.CmdScrollBottom), true
	}
	return models.Command{}, false
}

// editing covers the text line: typed runes, pasted text, backspace, clear.
func (d *Dispatcher) editing(msg tea.KeyMsg) (models.Command, bool) {
	switch {
	case key.Matches(msg, d.keys.Backspace):
		return models.Cmd(models.CmdDeleteBackward), true
	case key.Matches(msg, d.keys.ClearLine):
		return models.Cmd(models.CmdClearInput), true
	}
	if text, ok := typedText(msg); ok {
		return models.InsertText(text), true
	}
	return models.Command{}, false
}

func typedText(msg tea.KeyMsg) (string, bool) {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return "", false
		}
		return string(msg.Runes), true
	case tea.KeySpace:
		return " ", true
	}
	return "", false
}

func (d *Dispatcher) configModal(msg tea.KeyMsg) (models.Command, bool) {
	k := d.keys
	switch {
	case msg.Type == tea.KeyCtrlC:
		return models.Cmd(models.CmdQuit), true
	case key.Matches(msg, k.Confirm):
		return models.Cmd(models.CmdConfirm), true
	case key.Matches(msg, k.Cancel):
		return models.Cmd(models.CmdCancel), true
	case key.Matches(msg, k.Copy):
		return models.Cmd(models.CmdCopyLastReply), true
	}
	return d.editing(msg)
}

func (d *Dispatcher) modelSelect(msg tea.KeyMsg) (models.Command, bool) {
	k := d.keys
	switch {
	case msg.Type == tea.KeyCtrlC:
		return models.Cmd(models.CmdQuit), true
	case key.Matches(msg, k.Confirm):
		return models.Cmd(models.CmdConfirm), true
	case key.Matches(msg, k.Cancel), key.Matches(msg, k.QuitPane):
		return models.Cmd(models.CmdCancel), true
	case key.Matches(msg, k.Prev):
		return models.Cmd(models.CmdHighlightPrev), true
	case key.Matches(msg, k.Next):
		return models.Cmd(models.CmdHighlightNext), true
	case key.Matches(msg, k.Copy):
		return models.Cmd(models.CmdCopyLastReply), true
	}
	return models.Command{}, false
}

func (d *Dispatcher) helpModal(msg tea.KeyMsg) (models.Command, bool) {
	k := d.keys
	switch {
	case msg.Type == tea.KeyCtrlC:
		return models.Cmd(models.CmdQuit), true
	case key.Matches(msg, k.CloseHelp):
		return models.Cmd(models.CmdCancel), true
	case key.Matches(msg, k.Copy):
		return models.Cmd(models.CmdCopyLastReply), true
	}
	return models.Command{}, false
}
