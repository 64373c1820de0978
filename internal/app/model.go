package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriChat/internal/core"
	"github.com/Rorical/RoriChat/internal/dispatcher"
	"github.com/Rorical/RoriChat/internal/eventbus"
	"github.com/Rorical/RoriChat/internal/update"
	"github.com/Rorical/RoriChat/ui"
)

// AppModel adapts the controller to Bubble Tea. All controller calls happen
// inside Update, which Bubble Tea runs on a single goroutine.
type AppModel struct {
	controller  *core.Controller
	dispatcher  *dispatcher.Dispatcher
	eventBus    *eventbus.EventBus
	effects     *EffectRunner
	loadingDots int
}

func NewAppModel(ctrl *core.Controller, disp *dispatcher.Dispatcher, eb *eventbus.EventBus, effects *EffectRunner) *AppModel {
	return &AppModel{
		controller: ctrl,
		dispatcher: disp,
		eventBus:   eb,
		effects:    effects,
	}
}

func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(
		update.TickCmd(),
		update.WaitForEvent(m.eventBus),
	)
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle core events and continue listening
	if coreEvent, ok := msg.(update.CoreEventMsg); ok {
		effects := update.HandleCoreEvent(m.controller, coreEvent)
		return m, tea.Batch(m.apply(effects), update.WaitForEvent(m.eventBus))
	}

	effects, cmd := update.HandleUpdate(m.controller, m.dispatcher, msg, &m.loadingDots)
	return m, tea.Batch(cmd, m.apply(effects))
}

func (m *AppModel) View() string {
	return ui.Render(ui.FrameOf(m.controller, m.dispatcher.Keys(), m.loadingDots))
}

// apply runs effects and feeds synchronous failures back as notices.
func (m *AppModel) apply(effects []core.Effect) tea.Cmd {
	if len(effects) == 0 {
		return nil
	}
	notices, cmd := m.effects.Run(effects)
	for _, text := range notices {
		m.controller.HandleEvent(core.Notice{Text: text})
	}
	return cmd
}
