package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriChat/internal/core"
	"github.com/Rorical/RoriChat/internal/dispatcher"
)

// HandleUpdate routes one Bubble Tea message. Core events are handled by the
// caller, which must also re-arm WaitForEvent.
func HandleUpdate(ctrl *core.Controller, disp *dispatcher.Dispatcher, msg tea.Msg, loadingDots *int) ([]core.Effect, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return HandleKeyMsg(ctrl, disp, msg), nil
	case tea.WindowSizeMsg:
		HandleWindowSizeMsg(ctrl, msg)
		return nil, nil
	case TickMsg:
		return nil, HandleTickMsg(ctrl, loadingDots)
	case NoticeMsg:
		HandleNoticeMsg(ctrl, msg)
		return nil, nil
	}
	return nil, nil
}
