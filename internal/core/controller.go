// Package core holds the session controller: a pure state machine that turns
// commands and request outcomes into a new UI mode plus declarative effects.
package core

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Rorical/RoriChat/internal/completion"
	"github.com/Rorical/RoriChat/internal/config"
	"github.com/Rorical/RoriChat/internal/markdown"
	"github.com/Rorical/RoriChat/internal/models"
)

const statusReady = "Ready"

// Controller is the single authority over the UI mode. It is not safe for
// concurrent use; the host feeds it events one at a time.
type Controller struct {
	mode    models.UIMode
	history *History
	config  config.SessionConfig
	policy  config.ModalPolicy
	now     func() time.Time

	input       string
	recall      []string
	recallPos   int
	recallDraft string

	status string
	layout models.Layout

	handle *models.RequestHandle
	lastID uint64
}

type Option func(*Controller)

// WithClock fixes the timestamp source, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

func WithModalPolicy(p config.ModalPolicy) Option {
	return func(c *Controller) {
		c.policy = p
	}
}

func WithFormatter(f markdown.Formatter) Option {
	return func(c *Controller) {
		c.history = NewHistory(f)
	}
}

func NewController(cfg config.SessionConfig, opts ...Option) *Controller {
	c := &Controller{
		mode:    models.InitialMode(),
		config:  cfg,
		policy:  config.ModalAllow,
		now:     time.Now,
		status:  statusReady,
		layout:  models.DefaultLayout,
		history: NewHistory(nil),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.history.SetViewport(c.layout.HistoryWidth, c.layout.HistoryHeight)
	if !cfg.HasCredential() {
		c.status = "No API token set. Press Alt+C to add one."
	}
	return c
}

func (c *Controller) Mode() models.UIMode          { return c.mode }
func (c *Controller) History() *History            { return c.history }
func (c *Controller) Config() config.SessionConfig { return c.config }
func (c *Controller) Input() string                { return c.input }
func (c *Controller) Status() string               { return c.status }
func (c *Controller) Layout() models.Layout        { return c.layout }

// Handle returns the live request handle, if any.
func (c *Controller) Handle() (models.RequestHandle, bool) {
	if c.handle == nil {
		return models.RequestHandle{}, false
	}
	return *c.handle, true
}

// HandleEvent applies ev and returns the resulting mode and effects.
func (c *Controller) HandleEvent(ev Event) (models.UIMode, []Effect) {
	var effects []Effect
	switch ev := ev.(type) {
	case CommandEvent:
		effects = c.handleCommand(ev.Command)
	case RequestCompleted:
		c.handleCompletion(ev)
	case Resize:
		c.layout = models.ComputeLayout(ev.Width, ev.Height)
		c.history.SetViewport(c.layout.HistoryWidth, c.layout.HistoryHeight)
	case Notice:
		c.status = ev.Text
	}
	return c.mode, effects
}

func (c *Controller) handleCommand(cmd models.Command) []Effect {
	switch cmd.Kind {
	case models.CmdQuit:
		return c.quit()
	case models.CmdCopyLastReply:
		return c.copyLastReply()
	}

	switch mode := c.mode.(type) {
	case models.NormalMode:
		return c.normal(mode, cmd)
	case models.LoadingMode:
		return c.loading(cmd)
	case models.ConfigModal:
		return c.configModal(mode, cmd)
	case models.ModelSelectModal:
		return c.modelSelect(mode, cmd)
	case models.HelpModal:
		if cmd.Kind == models.CmdConfirm || cmd.Kind == models.CmdCancel {
			c.mode = c.restingMode()
		}
	}
	return nil
}

func (c *Controller) quit() []Effect {
	var effects []Effect
	if c.handle != nil {
		effects = append(effects, CancelRequest{ID: c.handle.ID})
		c.handle = nil
	}
	return append(effects, Terminate{})
}

func (c *Controller) copyLastReply() []Effect {
	text, ok := c.history.LastAssistantReply()
	if !ok {
		c.status = "No reply to copy yet"
		return nil
	}
	c.status = "Copied last reply to clipboard"
	return []Effect{CopyToClipboard{Text: text}}
}

func (c *Controller) normal(mode models.NormalMode, cmd models.Command) []Effect {
	if c.scroll(cmd.Kind) {
		return nil
	}
	if effects, ok := c.openModal(cmd.Kind); ok {
		return effects
	}

	switch cmd.Kind {
	case models.CmdToggleFocus:
		if mode.Focus == models.FocusInput {
			c.mode = models.NormalMode{Focus: models.FocusHistory}
		} else {
			c.mode = models.NormalMode{Focus: models.FocusInput}
		}
		return nil
	}

	if mode.Focus != models.FocusInput {
		return nil
	}
	switch cmd.Kind {
	case models.CmdSubmit:
		return c.submit()
	case models.CmdRecallPrev:
		c.recallPrev()
	case models.CmdRecallNext:
		c.recallNext()
	default:
		c.input = edit(c.input, cmd)
	}
	return nil
}

// loading keeps the session responsive: scrolling, editing the next prompt
// and opening modals all work, but nothing starts a second request.
func (c *Controller) loading(cmd models.Command) []Effect {
	if c.scroll(cmd.Kind) {
		return nil
	}
	if effects, ok := c.openModal(cmd.Kind); ok {
		return effects
	}
	c.input = edit(c.input, cmd)
	return nil
}

func (c *Controller) scroll(kind models.CommandKind) bool {
	switch kind {
	case models.CmdScrollUp:
		c.history.Scroll(-1)
	case models.CmdScrollDown:
		c.history.Scroll(1)
	case models.CmdPageUp:
		c.history.PageUp()
	case models.CmdPageDown:
		c.history.PageDown()
	case models.CmdScrollTop:
		c.history.ScrollToTop()
	case models.CmdScrollBottom:
		c.history.ScrollToBottom()
	default:
		return false
	}
	return true
}

func (c *Controller) submit() []Effect {
	if !c.config.HasCredential() {
		c.mode = models.ConfigModal{}
		c.status = fmt.Sprintf("Cannot send: %v", config.ErrMissingCredential)
		return nil
	}
	text := strings.TrimSpace(c.input)
	if text == "" {
		return nil
	}

	c.remember(text)
	c.input = ""

	msg := models.Message{Role: models.User, Text: text, Timestamp: c.now()}
	snapshot := append(c.history.Messages(), msg)
	c.history.Append(msg)

	c.lastID++
	c.handle = &models.RequestHandle{ID: c.lastID, Model: c.config.Model, Messages: snapshot}
	c.mode = models.LoadingMode{}
	c.status = fmt.Sprintf("Waiting for %s", c.config.Model)
	return []Effect{StartRequest{Handle: *c.handle, Credential: c.config.GetCredential()}}
}

func (c *Controller) handleCompletion(ev RequestCompleted) {
	if c.handle == nil || ev.ID != c.handle.ID {
		return
	}
	c.handle = nil

	if ev.Err != nil {
		c.history.Append(models.Message{
			Role:      models.Assistant,
			Text:      completion.Summary(ev.Err),
			Timestamp: c.now(),
			Err:       true,
		})
		if completion.KindOf(ev.Err) == completion.KindAuthFailure {
			c.status = "Authentication failed. Press Alt+C to enter a new API token."
		} else {
			c.status = "Request failed"
		}
	} else {
		c.history.Append(models.Message{Role: models.Assistant, Text: ev.Text, Timestamp: c.now()})
		c.status = statusReady
	}

	// An open modal keeps the screen; closing it lands in Normal.
	if !models.IsModal(c.mode) {
		c.mode = models.NormalMode{Focus: models.FocusInput}
	}
}

// openModal handles the three modal-opening commands from Normal or Loading.
func (c *Controller) openModal(kind models.CommandKind) ([]Effect, bool) {
	switch kind {
	case models.CmdOpenHelp:
		c.mode = models.HelpModal{}
		return nil, true
	case models.CmdOpenConfig, models.CmdOpenModelSelect:
	default:
		return nil, false
	}

	var effects []Effect
	if c.handle != nil {
		switch c.policy {
		case config.ModalBlock:
			c.status = "Wait for the current request to finish"
			return nil, true
		case config.ModalCancel:
			effects = append(effects, CancelRequest{ID: c.handle.ID})
			c.handle = nil
			c.status = "Request cancelled"
		}
	}

	if kind == models.CmdOpenConfig {
		c.mode = models.ConfigModal{DraftCredential: c.config.GetCredential()}
	} else {
		highlighted := c.config.Model.Index()
		if highlighted < 0 {
			highlighted = models.DefaultModel.Index()
		}
		c.mode = models.ModelSelectModal{Highlighted: highlighted}
	}
	return effects, true
}

func (c *Controller) configModal(mode models.ConfigModal, cmd models.Command) []Effect {
	switch cmd.Kind {
	case models.CmdConfirm:
		c.config = c.config.WithCredential(mode.DraftCredential)
		c.mode = c.restingMode()
		if c.config.HasCredential() {
			c.status = "API token saved"
		} else {
			c.status = "API token cleared"
		}
		return []Effect{PersistConfig{Config: c.config}}
	case models.CmdCancel:
		c.mode = c.restingMode()
	case models.CmdInsertText:
		// Tokens never contain whitespace; pasted text often ends in a newline.
		mode.DraftCredential += strings.Join(strings.Fields(cmd.Text), "")
		c.mode = mode
	case models.CmdDeleteBackward, models.CmdClearInput:
		mode.DraftCredential = edit(mode.DraftCredential, cmd)
		c.mode = mode
	}
	return nil
}

func (c *Controller) modelSelect(mode models.ModelSelectModal, cmd models.Command) []Effect {
	switch cmd.Kind {
	case models.CmdHighlightPrev:
		mode.Highlighted = max(0, mode.Highlighted-1)
		c.mode = mode
	case models.CmdHighlightNext:
		mode.Highlighted = min(len(models.AvailableModels)-1, mode.Highlighted+1)
		c.mode = mode
	case models.CmdCancel:
		c.mode = c.restingMode()
	case models.CmdConfirm:
		return c.selectModel(models.ModelAt(mode.Highlighted))
	}
	return nil
}

// selectModel commits a model choice. A request started for another model is
// superseded: its id is invalidated so a late result is discarded.
func (c *Controller) selectModel(id models.ModelID) []Effect {
	var effects []Effect
	if id != c.config.Model && c.handle != nil {
		effects = append(effects, CancelRequest{ID: c.handle.ID})
		c.handle = nil
	}
	c.config = c.config.WithModel(id)
	c.mode = c.restingMode()
	c.status = fmt.Sprintf("Switched to model %s", id)
	return append(effects, PersistConfig{Config: c.config})
}

// restingMode is where a closed modal returns to.
func (c *Controller) restingMode() models.UIMode {
	if c.handle != nil {
		return models.LoadingMode{}
	}
	return models.NormalMode{Focus: models.FocusInput}
}

// remember records a submitted prompt for recall, skipping repeats of the
// newest entry.
func (c *Controller) remember(prompt string) {
	if n := len(c.recall); n == 0 || c.recall[n-1] != prompt {
		c.recall = append(c.recall, prompt)
	}
	c.recallPos = len(c.recall)
	c.recallDraft = ""
}

func (c *Controller) recallPrev() {
	if len(c.recall) == 0 {
		return
	}
	if c.recallPos >= len(c.recall) {
		c.recallDraft = c.input
		c.recallPos = len(c.recall)
	}
	if c.recallPos > 0 {
		c.recallPos--
	}
	c.input = c.recall[c.recallPos]
}

func (c *Controller) recallNext() {
	if c.recallPos >= len(c.recall) {
		return
	}
	c.recallPos++
	if c.recallPos == len(c.recall) {
		c.input = c.recallDraft
		c.recallDraft = ""
		return
	}
	c.input = c.recall[c.recallPos]
}

// edit applies a text-editing command to s; other commands leave it alone.
func edit(s string, cmd models.Command) string {
	switch cmd.Kind {
	case models.CmdInsertText:
		return s + strings.ReplaceAll(cmd.Text, "\r\n", "\n")
	case models.CmdDeleteBackward:
		_, size := utf8.DecodeLastRuneInString(s)
		return s[:len(s)-size]
	case models.CmdClearInput:
		return ""
	}
	return s
}
