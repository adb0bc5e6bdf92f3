package dto

// OrchestrateRequest is the JSON body of the orchestration endpoint. A
// caller-supplied profile is optional; when present it must be structurally
// valid or the request is rejected.
type OrchestrateRequest struct {
	UserInput   string          `json:"user_input" validate:"required"`
	UserID      string          `json:"user_id" validate:"required"`
	SessionID   string          `json:"session_id,omitempty"`
	UserProfile *UserProfileDTO `json:"user_profile,omitempty"`
}

// UserProfileDTO carries no validate tags: profile validation happens in the
// pipeline so a broken profile maps to 422, not the 400 of a malformed body.
type UserProfileDTO struct {
	UserID                string `json:"user_id"`
	Name                  string `json:"name"`
	GradeLevel            string `json:"grade_level"`
	LearningStyleSummary  string `json:"learning_style_summary"`
	EmotionalStateSummary string `json:"emotional_state_summary"`
	MasteryLevelSummary   string `json:"mastery_level_summary"`
}

type ToolExecutionDTO struct {
	ToolName          string                 `json:"tool_name"`
	RequestParams     map[string]interface{} `json:"request_params"`
	RawToolResponse   interface{}            `json:"raw_tool_response"`
	FormattedResponse string                 `json:"formatted_response"`
}

// OrchestrateResponse is the full result bundle. Success reflects the
// envelope, not tool quality: tool-level failures degrade content but keep
// success true (fail-soft).
type OrchestrateResponse struct {
	Success        bool             `json:"success"`
	Response       string           `json:"response"`
	Intent         string           `json:"intent"`
	Topic          string           `json:"topic"`
	EmotionalState string           `json:"emotional_state"`
	Suggestions    []string         `json:"suggestions"`
	ToolExecution  ToolExecutionDTO `json:"tool_execution"`
	SessionID      string           `json:"session_id"`
	NextActions    []string         `json:"next_actions"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Model  string `json:"model"`
}
