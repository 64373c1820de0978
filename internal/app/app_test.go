package app

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriChat/internal/config"
	"github.com/Rorical/RoriChat/internal/core"
	"github.com/Rorical/RoriChat/internal/dispatcher"
	"github.com/Rorical/RoriChat/internal/eventbus"
	"github.com/Rorical/RoriChat/internal/models"
	"github.com/Rorical/RoriChat/internal/update"
)

type fakeRequests struct {
	started   []models.RequestHandle
	cancelled []uint64
	closed    bool
}

func (f *fakeRequests) Start(h models.RequestHandle, credential string) {
	f.started = append(f.started, h)
}

func (f *fakeRequests) Cancel(id uint64) { f.cancelled = append(f.cancelled, id) }
func (f *fakeRequests) Close()           { f.closed = true }

type fakeStore struct {
	saved []config.SessionConfig
	err   error
}

func (f *fakeStore) Save(cfg config.SessionConfig) error {
	f.saved = append(f.saved, cfg)
	return f.err
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type harness struct {
	model    *AppModel
	requests *fakeRequests
	store    *fakeStore
	copied   []string
	copyErr  error
}

func newHarness(cfg config.SessionConfig) *harness {
	h := &harness{requests: &fakeRequests{}, store: &fakeStore{}}
	runner := NewEffectRunner(h.requests, h.store, quietLogger())
	runner.copyText = func(s string) error {
		h.copied = append(h.copied, s)
		return h.copyErr
	}
	ctrl := core.NewController(cfg)
	h.model = NewAppModel(ctrl, dispatcher.New(dispatcher.DefaultKeyMap()), eventbus.NewEventBus(), runner)
	return h
}

// send delivers msg. Returned commands are dropped: the ones produced here
// either block (tick, bus wait) or are checked directly by the tests.
func (h *harness) send(msg tea.Msg) {
	h.model.Update(msg)
}

func key(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func typed(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func alt(r rune) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true} }

func TestAppModel_PromptRoundTrip(t *testing.T) {
	h := newHarness(config.Default().WithCredential("tok"))
	h.send(tea.WindowSizeMsg{Width: 80, Height: 24})
	h.send(typed("hello"))
	h.send(key(tea.KeyEnter))

	require.Len(t, h.requests.started, 1)
	assert.Equal(t, uint64(1), h.requests.started[0].ID)
	assert.Equal(t, models.LoadingMode{}, h.model.controller.Mode())

	h.send(update.CoreEventMsg{Event: eventbus.RequestCompleted{ID: 1, Text: "world"}})
	assert.Equal(t, models.NormalMode{Focus: models.FocusInput}, h.model.controller.Mode())

	view := h.model.View()
	assert.Contains(t, view, "hello")
	assert.Contains(t, view, "world")
}

func TestAppModel_ConfigIsPersisted(t *testing.T) {
	h := newHarness(config.Default())
	h.send(typed("hello"))
	h.send(key(tea.KeyEnter))
	assert.IsType(t, models.ConfigModal{}, h.model.controller.Mode())
	assert.Empty(t, h.requests.started)

	h.send(typed("secret"))
	h.send(key(tea.KeyEnter))

	require.Len(t, h.store.saved, 1)
	assert.Equal(t, "secret", h.store.saved[0].GetCredential())
	assert.Equal(t, "API token saved", h.model.controller.Status())
}

func TestAppModel_SaveFailureBecomesNotice(t *testing.T) {
	h := newHarness(config.Default())
	h.store.err = errors.New("disk full")

	h.send(alt('c'))
	h.send(typed("tok"))
	h.send(key(tea.KeyEnter))

	assert.Contains(t, h.model.controller.Status(), "disk full")
	assert.True(t, h.model.controller.Config().HasCredential(), "the session keeps the token")
}

func TestAppModel_QuitCancelsAndQuits(t *testing.T) {
	h := newHarness(config.Default().WithCredential("tok"))
	h.send(typed("hello"))
	h.send(key(tea.KeyEnter))

	_, cmd := h.model.Update(key(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.Equal(t, []uint64{1}, h.requests.cancelled)
	assert.True(t, h.requests.closed)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestEffectRunner_Copy(t *testing.T) {
	h := newHarness(config.Default())
	runner := h.model.effects

	notices, cmd := runner.Run([]core.Effect{core.CopyToClipboard{Text: "reply"}})
	assert.Empty(t, notices)
	require.NotNil(t, cmd)
	assert.Nil(t, cmd())
	assert.Equal(t, []string{"reply"}, h.copied)

	h.copyErr = errors.New("no clipboard")
	_, cmd = runner.Run([]core.Effect{core.CopyToClipboard{Text: "again"}})
	msg := cmd()
	notice, ok := msg.(update.NoticeMsg)
	require.True(t, ok)
	assert.Contains(t, notice.Text, "no clipboard")
}

func TestEffectRunner_Order(t *testing.T) {
	h := newHarness(config.Default())
	cfg := config.Default().WithModel(models.AvailableModels[0])

	notices, cmd := h.model.effects.Run([]core.Effect{
		core.CancelRequest{ID: 3},
		core.PersistConfig{Config: cfg},
		core.StartRequest{Handle: models.RequestHandle{ID: 4}},
	})
	assert.Empty(t, notices)
	assert.Nil(t, cmd)
	assert.Equal(t, []uint64{3}, h.requests.cancelled)
	require.Len(t, h.store.saved, 1)
	assert.True(t, cfg.Equal(h.store.saved[0]))
	require.Len(t, h.requests.started, 1)
	assert.Equal(t, uint64(4), h.requests.started[0].ID)
}
