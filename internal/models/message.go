package models

import "time"

type Role int

const (
	User Role = iota
	Assistant
)

func (r Role) String() string {
	switch r {
	case User:
		return "user"
	case Assistant:
		return "assistant"
	}
	return "unknown"
}

// Message is one turn of the conversation. It is never modified after it has
// been appended to the history.
type Message struct {
	Role      Role
	Text      string
	Timestamp time.Time
	// Err marks a synthetic assistant message carrying a request failure.
	// Such messages are shown but never copied or sent back to the model.
	Err bool
}

// IsReply reports whether the message is genuine model output.
func (m Message) IsReply() bool {
	return m.Role == Assistant && !m.Err
}

// RequestHandle identifies one request attempt. IDs are monotonic within a
// session; only the most recent handle is ever current.
type RequestHandle struct {
	ID       uint64
	Model    ModelID
	Messages []Message // snapshot taken when the request was issued
}
