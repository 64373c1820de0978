package update

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriChat/internal/core"
	"github.com/Rorical/RoriChat/internal/dispatcher"
	"github.com/Rorical/RoriChat/internal/eventbus"
	"github.com/Rorical/RoriChat/internal/models"
)

// HandleKeyMsg translates a key press for the current mode and feeds it to
// the controller. Unmapped keys produce no effects.
func HandleKeyMsg(ctrl *core.Controller, disp *dispatcher.Dispatcher, keyMsg tea.KeyMsg) []core.Effect {
	cmd, ok := disp.Dispatch(keyMsg, ctrl.Mode())
	if !ok {
		return nil
	}
	_, effects := ctrl.HandleEvent(core.CommandEvent{Command: cmd})
	return effects
}

// CoreEventMsg wraps core events for Bubble Tea
type CoreEventMsg struct {
	Event eventbus.CoreEvent
}

// WaitForEvent blocks on the bus for the next core event. It must be
// re-issued after every CoreEventMsg.
func WaitForEvent(eb *eventbus.EventBus) tea.Cmd {
	return func() tea.Msg {
		ev, ok := eb.Next()
		if !ok {
			return nil
		}
		return CoreEventMsg{Event: ev}
	}
}

// HandleCoreEvent processes events from the core
func HandleCoreEvent(ctrl *core.Controller, coreEventMsg CoreEventMsg) []core.Effect {
	switch event := coreEventMsg.Event.(type) {
	case eventbus.RequestCompleted:
		_, effects := ctrl.HandleEvent(core.RequestCompleted(event))
		return effects
	}
	return nil
}

// NoticeMsg reports the outcome of an asynchronous effect on the status line.
type NoticeMsg struct {
	Text string
}

func HandleNoticeMsg(ctrl *core.Controller, msg NoticeMsg) {
	ctrl.HandleEvent(core.Notice{Text: msg.Text})
}

type TickMsg time.Time

func TickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func HandleWindowSizeMsg(ctrl *core.Controller, sizeMsg tea.WindowSizeMsg) {
	ctrl.HandleEvent(core.Resize{Width: sizeMsg.Width, Height: sizeMsg.Height})
}

// HandleTickMsg only animates the loading dots; it never touches session state.
func HandleTickMsg(ctrl *core.Controller, loadingDots *int) tea.Cmd {
	if _, loading := ctrl.Mode().(models.LoadingMode); loading {
		*loadingDots = (*loadingDots + 1) % 4
	} else {
		*loadingDots = 0
	}
	return TickCmd()
}
