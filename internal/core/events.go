package core

import (
	"github.com/Rorical/RoriChat/internal/config"
	"github.com/Rorical/RoriChat/internal/models"
)

// Event is anything the controller reacts to.
type Event interface {
	event()
}

// CommandEvent carries a key press already translated by the dispatcher.
type CommandEvent struct {
	Command models.Command
}

// RequestCompleted is the outcome of one request. Its fields match
// eventbus.RequestCompleted so the two convert directly.
type RequestCompleted struct {
	ID   uint64
	Text string
	Err  error
}

// Resize reports new terminal dimensions.
type Resize struct {
	Width  int
	Height int
}

// Notice replaces the status line, typically with the outcome of an effect.
type Notice struct {
	Text string
}

func (CommandEvent) event()     {}
func (RequestCompleted) event() {}
func (Resize) event()           {}
func (Notice) event()           {}

// Effect is a side effect the controller asks its host to perform. The
// controller never performs I/O itself.
type Effect interface {
	effect()
}

// StartRequest asks for Handle to be sent with Credential.
type StartRequest struct {
	Handle     models.RequestHandle
	Credential string
}

// CancelRequest is advisory; a late result is discarded by id anyway.
type CancelRequest struct {
	ID uint64
}

// PersistConfig asks for Config to be written to the config store.
type PersistConfig struct {
	Config config.SessionConfig
}

type CopyToClipboard struct {
	Text string
}

// Terminate ends the process.
type Terminate struct{}

func (StartRequest) effect()    {}
func (CancelRequest) effect()   {}
func (PersistConfig) effect()   {}
func (CopyToClipboard) effect() {}
func (Terminate) effect()       {}
