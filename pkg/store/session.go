package store

import "time"

// ChatTurn is a single exchange entry inside a tutoring session
type ChatTurn struct {
	Role    string `json:"role"` // "user" | "assistant"
	Content string `json:"content"`
}

// Session represents the active tutoring session state in memory.
// History is append-only; the orchestrator reads a bounded suffix of it
// when building tool parameters.
type Session struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	History   []ChatTurn `json:"history"`
	CreatedAt time.Time  `json:"created_at"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
