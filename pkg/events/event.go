package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "TOOL_EXECUTED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

const TypeToolExecuted = "TOOL_EXECUTED"

// ToolExecutedEvent is emitted after every orchestration pass, successful or
// degraded, so usage accounting sees the same stream the student does.
type ToolExecutedEvent struct {
	EventID    string
	UserID     string
	SessionID  string
	ToolName   string
	Intent     string
	Topic      string
	Emotion    string
	Degraded   bool
	OccurredAt time.Time
}

func (e ToolExecutedEvent) EventType() string { return TypeToolExecuted }

func (e ToolExecutedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"event_id":   e.EventID,
		"user_id":    e.UserID,
		"session_id": e.SessionID,
		"tool_name":  e.ToolName,
		"intent":     e.Intent,
		"topic":      e.Topic,
		"emotion":    e.Emotion,
		"degraded":   e.Degraded,
	}
}

func (e ToolExecutedEvent) Timestamp() time.Time { return e.OccurredAt }
