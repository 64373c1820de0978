package update

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriChat/internal/config"
	"github.com/Rorical/RoriChat/internal/core"
	"github.com/Rorical/RoriChat/internal/dispatcher"
	"github.com/Rorical/RoriChat/internal/eventbus"
	"github.com/Rorical/RoriChat/internal/models"
)

func newController(token string) *core.Controller {
	return core.NewController(config.Default().WithCredential(token))
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestHandleKeyMsg_TypingAndSubmit(t *testing.T) {
	ctrl := newController("tok")
	disp := dispatcher.New(dispatcher.DefaultKeyMap())

	assert.Empty(t, HandleKeyMsg(ctrl, disp, runes("hi")))
	assert.Equal(t, "hi", ctrl.Input())

	effects := HandleKeyMsg(ctrl, disp, tea.KeyMsg{Type: tea.KeyEnter})
	require.Len(t, effects, 1)
	assert.IsType(t, core.StartRequest{}, effects[0])
	assert.Equal(t, models.LoadingMode{}, ctrl.Mode())

	// Enter means nothing while loading.
	assert.Empty(t, HandleKeyMsg(ctrl, disp, tea.KeyMsg{Type: tea.KeyEnter}))
}

func TestHandleKeyMsg_UnmappedKeyIsIgnored(t *testing.T) {
	ctrl := newController("tok")
	disp := dispatcher.New(dispatcher.DefaultKeyMap())

	assert.Empty(t, HandleKeyMsg(ctrl, disp, tea.KeyMsg{Type: tea.KeyF5}))
	assert.Equal(t, models.InitialMode(), ctrl.Mode())
	assert.Empty(t, ctrl.Input())
}

func TestWaitForEvent(t *testing.T) {
	eb := eventbus.NewEventBus()
	require.NoError(t, eb.Publish(context.Background(), eventbus.RequestCompleted{ID: 4, Text: "x"}))

	msg := WaitForEvent(eb)()
	assert.Equal(t, CoreEventMsg{Event: eventbus.RequestCompleted{ID: 4, Text: "x"}}, msg)

	eb.Close()
	assert.Nil(t, WaitForEvent(eb)())
}

func TestHandleCoreEvent_DeliversCompletion(t *testing.T) {
	ctrl := newController("tok")
	ctrl.HandleEvent(core.CommandEvent{Command: models.InsertText("q")})
	ctrl.HandleEvent(core.CommandEvent{Command: models.Cmd(models.CmdSubmit)})

	HandleCoreEvent(ctrl, CoreEventMsg{Event: eventbus.RequestCompleted{ID: 1, Text: "answer"}})

	assert.Equal(t, models.NormalMode{Focus: models.FocusInput}, ctrl.Mode())
	reply, ok := ctrl.History().LastAssistantReply()
	require.True(t, ok)
	assert.Equal(t, "answer", reply)
}

func TestHandleUpdate(t *testing.T) {
	ctrl := newController("tok")
	disp := dispatcher.New(dispatcher.DefaultKeyMap())
	dots := 0

	_, cmd := HandleUpdate(ctrl, disp, tea.WindowSizeMsg{Width: 100, Height: 40}, &dots)
	assert.Nil(t, cmd)
	assert.Equal(t, models.ComputeLayout(100, 40), ctrl.Layout())

	_, cmd = HandleUpdate(ctrl, disp, NoticeMsg{Text: "hello"}, &dots)
	assert.Nil(t, cmd)
	assert.Equal(t, "hello", ctrl.Status())

	// Dots only advance while a request is in flight.
	_, cmd = HandleUpdate(ctrl, disp, TickMsg(time.Now()), &dots)
	assert.NotNil(t, cmd)
	assert.Equal(t, 0, dots)

	HandleUpdate(ctrl, disp, runes("q"), &dots)
	HandleUpdate(ctrl, disp, tea.KeyMsg{Type: tea.KeyEnter}, &dots)
	for i := 1; i <= 5; i++ {
		HandleUpdate(ctrl, disp, TickMsg(time.Now()), &dots)
		assert.Equal(t, i%4, dots)
	}
}
