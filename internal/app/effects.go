package app

import (
	"fmt"
	"log/slog"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriChat/internal/config"
	"github.com/Rorical/RoriChat/internal/core"
	"github.com/Rorical/RoriChat/internal/models"
	"github.com/Rorical/RoriChat/internal/update"
)

// requester is the part of request.Manager the runner drives.
type requester interface {
	Start(h models.RequestHandle, credential string)
	Cancel(id uint64)
	Close()
}

type configSaver interface {
	Save(cfg config.SessionConfig) error
}

// EffectRunner performs the effects the controller asks for. It runs on the
// Bubble Tea update goroutine, so config writes never overlap.
type EffectRunner struct {
	requests requester
	store    configSaver
	copyText func(string) error
	logger   *slog.Logger
}

func NewEffectRunner(requests requester, store configSaver, logger *slog.Logger) *EffectRunner {
	return &EffectRunner{
		requests: requests,
		store:    store,
		copyText: clipboard.WriteAll,
		logger:   logger,
	}
}

// Run performs effects in order. Failures come back as notices: synchronous
// ones are returned directly, asynchronous ones through the returned command.
func (r *EffectRunner) Run(effects []core.Effect) ([]string, tea.Cmd) {
	var notices []string
	var cmds []tea.Cmd
	for _, effect := range effects {
		switch e := effect.(type) {
		case core.StartRequest:
			r.requests.Start(e.Handle, e.Credential)
		case core.CancelRequest:
			r.requests.Cancel(e.ID)
		case core.PersistConfig:
			if err := r.store.Save(e.Config); err != nil {
				r.logger.Error("failed to save config", "error", err)
				notices = append(notices, fmt.Sprintf("Could not save config: %v", err))
			} else {
				r.logger.Info("config saved", "model", e.Config.Model, "has_token", e.Config.HasCredential())
			}
		case core.CopyToClipboard:
			cmds = append(cmds, r.copyCmd(e.Text))
		case core.Terminate:
			r.logger.Info("quit requested")
			r.requests.Close()
			cmds = append(cmds, tea.Quit)
		}
	}
	return notices, tea.Batch(cmds...)
}

func (r *EffectRunner) copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		if err := r.copyText(text); err != nil {
			r.logger.Warn("clipboard write failed", "error", err)
			return update.NoticeMsg{Text: fmt.Sprintf("Could not copy to clipboard: %v", err)}
		}
		return nil
	}
}
