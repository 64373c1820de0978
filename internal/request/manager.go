// Package request runs completion calls off the UI goroutine. At most one
// call is live; starting another replaces it.
package request

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Rorical/RoriChat/internal/completion"
	"github.com/Rorical/RoriChat/internal/eventbus"
	"github.com/Rorical/RoriChat/internal/models"
)

// Manager owns the single in-flight request and publishes its outcome as one
// eventbus.RequestCompleted.
type Manager struct {
	client  completion.Client
	bus     *eventbus.EventBus
	timeout time.Duration
	logger  *slog.Logger

	mu        sync.Mutex
	currentID uint64
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

// NewManager creates a manager. A zero timeout leaves deadlines to the client.
func NewManager(client completion.Client, bus *eventbus.EventBus, timeout time.Duration, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		client:  client,
		bus:     bus,
		timeout: timeout,
		logger:  logger,
	}
}

// Start launches the call for h, cancelling whatever was running before.
// It returns immediately.
func (m *Manager) Start(h models.RequestHandle, credential string) {
	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if m.timeout > 0 {
		ctx, cancel = context.WithTimeout(context.Background(), m.timeout)
	} else {
		ctx, cancel = context.WithCancel(context.Background())
	}

	m.mu.Lock()
	if m.cancel != nil {
		m.logger.Debug("superseding request", "old_id", m.currentID, "new_id", h.ID)
		m.cancel()
	}
	m.currentID = h.ID
	m.cancel = cancel
	m.mu.Unlock()

	m.logger.Info("request started", "id", h.ID, "model", h.Model, "messages", len(h.Messages))

	req := completion.Request{
		Model:      h.Model,
		Credential: credential,
		Messages:   h.Messages,
	}

	m.wg.Add(1)
	go m.run(ctx, h.ID, req)
}

func (m *Manager) run(ctx context.Context, id uint64, req completion.Request) {
	defer m.wg.Done()

	started := time.Now()
	text, err := m.client.Complete(ctx, req)
	m.release(id)

	event := eventbus.RequestCompleted{ID: id, Text: text, Err: err}
	if err != nil {
		m.logger.Warn("request failed", "id", id, "kind", completion.KindOf(err).String(),
			"error", err, "elapsed", time.Since(started))
	} else {
		m.logger.Info("request finished", "id", id, "chars", len(text), "elapsed", time.Since(started))
	}

	// Delivery must not depend on the request context, which may already be cancelled.
	if pubErr := m.bus.Publish(context.Background(), event); pubErr != nil {
		m.logger.Debug("completion not delivered", "id", id, "error", pubErr)
	}
}

// release drops the cancel func once the call for id has returned.
func (m *Manager) release(id uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.currentID == id && m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// Cancel aborts the call for id if it is still the current one. Best effort:
// the outcome is still published and left to the controller to discard.
func (m *Manager) Cancel(id uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.currentID != id || m.cancel == nil {
		return
	}
	m.logger.Info("request cancelled", "id", id)
	m.cancel()
	m.cancel = nil
}

// Live reports the id of the running call, if any.
func (m *Manager) Live() (uint64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentID, m.cancel != nil
}

// Close cancels the live call without waiting for it.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// Wait blocks until every started call has published its outcome.
func (m *Manager) Wait() {
	m.wg.Wait()
}
