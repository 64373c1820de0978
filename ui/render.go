// Package ui turns a snapshot of session state into a terminal frame.
package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriChat/internal/config"
	"github.com/Rorical/RoriChat/internal/core"
	"github.com/Rorical/RoriChat/internal/models"
	"github.com/Rorical/RoriChat/ui/components"
)

// Frame is everything a redraw depends on. Render reads nothing else.
type Frame struct {
	Mode        models.UIMode
	Window      []core.Line
	Offset      int
	TotalLines  int
	Config      config.SessionConfig
	Layout      models.Layout
	Input       string
	Status      string
	LoadingDots int
	Keys        help.KeyMap
}

// FrameOf snapshots the controller for rendering.
func FrameOf(c *core.Controller, keys help.KeyMap, loadingDots int) Frame {
	h := c.History()
	window := h.Window()
	return Frame{
		Mode:        c.Mode(),
		Window:      window,
		Offset:      h.Offset(),
		TotalLines:  len(h.Lines()),
		Config:      c.Config(),
		Layout:      c.Layout(),
		Input:       c.Input(),
		Status:      c.Status(),
		LoadingDots: loadingDots,
		Keys:        keys,
	}
}

// Render is pure: the same frame always draws the same string.
func Render(f Frame) string {
	l := f.Layout
	switch m := f.Mode.(type) {
	case models.ConfigModal:
		return components.RenderConfigModal(m.DraftCredential, l.Width, l.Height)
	case models.ModelSelectModal:
		return components.RenderModelSelect(m.Highlighted, f.Config.Model, l.Width, l.Height)
	case models.HelpModal:
		return components.RenderHelp(f.Keys, l.Width, l.Height)
	}

	_, loading := f.Mode.(models.LoadingMode)
	historyFocused := false
	if n, ok := f.Mode.(models.NormalMode); ok {
		historyFocused = n.Focus == models.FocusHistory
	}

	history := components.RenderHistory(components.HistoryView{
		Lines:   f.Window,
		Offset:  f.Offset,
		Total:   f.TotalLines,
		Width:   l.HistoryWidth,
		Height:  l.HistoryHeight,
		Focused: historyFocused,
	})
	input := components.RenderInput(f.Input, l.HistoryWidth, l.InputRows, !historyFocused, loading)
	status := components.RenderStatus(f.Status, statusInfo(f.Config), loading, f.LoadingDots, l.Width)

	return lipgloss.JoinVertical(lipgloss.Left, history, input, status)
}

func statusInfo(cfg config.SessionConfig) string {
	token := "no token"
	if cfg.HasCredential() {
		token = "token set"
	}
	return fmt.Sprintf("%s · %s · alt+h help", cfg.Model, token)
}
