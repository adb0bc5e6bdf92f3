package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-tutoring-be/internal/config"
	"ai-tutoring-be/internal/dto"
	"ai-tutoring-be/internal/repository/memory"
	"ai-tutoring-be/pkg/events"
	"ai-tutoring-be/pkg/orchestrator/params"
)

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

type capturingPublisher struct {
	mu     sync.Mutex
	events []events.ToolExecutedEvent
}

func (p *capturingPublisher) PublishToolExecuted(event events.ToolExecutedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *capturingPublisher) captured() []events.ToolExecutedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]events.ToolExecutedEvent, len(p.events))
	copy(out, p.events)
	return out
}

func testConfig() *config.Config {
	return &config.Config{
		Ai: config.AIConfig{
			LLMProvider:    "huggingface",
			LLMModel:       "deepseek-ai/DeepSeek-R1",
			RequestTimeout: 5 * time.Second,
		},
		Orchestrator: config.OrchestratorConfig{
			DefaultTool:   "quiz_generator",
			PracticeTool:  "quiz_generator",
			HistoryWindow: 5,
			SessionTTL:    time.Hour,
			SessionSweep:  10 * time.Minute,
		},
	}
}

func newTestService(t *testing.T) (IOrchestratorService, *memory.SessionRepository, *capturingPublisher) {
	t.Helper()
	cfg := testConfig()
	repo := memory.NewSessionRepository(cfg.Orchestrator.SessionTTL, cfg.Orchestrator.SessionSweep)
	publisher := &capturingPublisher{}
	// nil provider: keyword extraction, templated generators
	svc := NewOrchestratorService(cfg, nil, repo, publisher, noopLogger{})
	return svc, repo, publisher
}

func TestOrchestrateFrustratedPracticeRequest(t *testing.T) {
	svc, _, _ := newTestService(t)

	resp, err := svc.Orchestrate(context.Background(), &dto.OrchestrateRequest{
		UserInput: "I'm struggling with calculus derivatives and need practice problems",
		UserID:    "student_123",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.True(t, resp.Success)
	assert.Equal(t, "request_practice_problems", resp.Intent)
	assert.Equal(t, "calculus", resp.Topic)
	assert.Equal(t, "frustrated", resp.EmotionalState)
	assert.Equal(t, "quiz_generator", resp.ToolExecution.ToolName)
	assert.Equal(t, "Generated 5 easy practice problems on calculus", resp.Response)
	assert.Equal(t, "easy", resp.ToolExecution.RequestParams["difficulty"])
	assert.True(t, strings.HasPrefix(resp.SessionID, "student_123_"))
	assert.LessOrEqual(t, len(resp.Suggestions), 3)
	assert.NotEmpty(t, resp.NextActions)
}

func TestOrchestrateConfidentExplanationRequest(t *testing.T) {
	svc, _, _ := newTestService(t)

	resp, err := svc.Orchestrate(context.Background(), &dto.OrchestrateRequest{
		UserInput: "explain photosynthesis, I understand the basics well",
		UserID:    "student_123",
	})
	require.NoError(t, err)

	assert.Equal(t, "explanation", resp.Intent)
	assert.Equal(t, "photosynthesis", resp.Topic)
	assert.Equal(t, "confident", resp.EmotionalState)
	assert.Equal(t, "concept_explainer", resp.ToolExecution.ToolName)
	assert.Equal(t, "advanced", resp.ToolExecution.RequestParams["desired_depth"])
}

func TestOrchestrateSessionContinuity(t *testing.T) {
	svc, repo, _ := newTestService(t)

	first, err := svc.Orchestrate(context.Background(), &dto.OrchestrateRequest{
		UserInput: "quiz me on algebra",
		UserID:    "student_123",
	})
	require.NoError(t, err)

	second, err := svc.Orchestrate(context.Background(), &dto.OrchestrateRequest{
		UserInput: "make notes on algebra",
		UserID:    "student_123",
		SessionID: first.SessionID,
	})
	require.NoError(t, err)
	assert.Equal(t, first.SessionID, second.SessionID)

	session, found := repo.Get(first.SessionID)
	require.True(t, found)
	// Two exchanges, each one user turn plus one assistant turn
	assert.Len(t, session.History, 4)
	assert.Equal(t, "quiz me on algebra", session.History[0].Content)
}

func TestOrchestrateNewSessionPerUserWhenUnspecified(t *testing.T) {
	svc, _, _ := newTestService(t)

	a, err := svc.Orchestrate(context.Background(), &dto.OrchestrateRequest{
		UserInput: "quiz me",
		UserID:    "student_a",
	})
	require.NoError(t, err)
	b, err := svc.Orchestrate(context.Background(), &dto.OrchestrateRequest{
		UserInput: "quiz me",
		UserID:    "student_b",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(a.SessionID, "student_a_"))
	assert.True(t, strings.HasPrefix(b.SessionID, "student_b_"))
	assert.NotEqual(t, a.SessionID, b.SessionID)
}

func TestOrchestrateInvalidProfileRejected(t *testing.T) {
	svc, _, _ := newTestService(t)

	resp, err := svc.Orchestrate(context.Background(), &dto.OrchestrateRequest{
		UserInput:   "quiz me on algebra",
		UserID:      "student_123",
		UserProfile: &dto.UserProfileDTO{Name: "No ID or grade"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, params.ErrInvalidProfile)
	assert.Nil(t, resp)
}

func TestOrchestrateSuppliedProfileFlowsThrough(t *testing.T) {
	svc, _, _ := newTestService(t)

	resp, err := svc.Orchestrate(context.Background(), &dto.OrchestrateRequest{
		UserInput: "make notes on biology",
		UserID:    "student_42",
		UserProfile: &dto.UserProfileDTO{
			UserID:     "student_42",
			Name:       "Ada",
			GradeLevel: "11",
		},
	})
	require.NoError(t, err)

	userInfo, ok := resp.ToolExecution.RequestParams["user_info"].(map[string]interface{})
	require.True(t, ok, "user_info missing from request params")
	assert.Equal(t, "student_42", userInfo["user_id"])
}

func TestOrchestratePublishesUsageEvent(t *testing.T) {
	svc, _, publisher := newTestService(t)

	resp, err := svc.Orchestrate(context.Background(), &dto.OrchestrateRequest{
		UserInput: "flashcards please",
		UserID:    "student_123",
	})
	require.NoError(t, err)

	captured := publisher.captured()
	require.Len(t, captured, 1)
	event := captured[0]
	assert.Equal(t, "student_123", event.UserID)
	assert.Equal(t, resp.SessionID, event.SessionID)
	assert.Equal(t, resp.ToolExecution.ToolName, event.ToolName)
	assert.False(t, event.Degraded)
	assert.False(t, event.OccurredAt.IsZero())
}

func TestOrchestrateEmptyInputStillSucceeds(t *testing.T) {
	svc, _, _ := newTestService(t)

	resp, err := svc.Orchestrate(context.Background(), &dto.OrchestrateRequest{
		UserInput: "",
		UserID:    "student_123",
	})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "general", resp.Topic)
	assert.Equal(t, "neutral", resp.EmotionalState)
	assert.NotEmpty(t, resp.Response)
}

func TestHealth(t *testing.T) {
	svc, _, _ := newTestService(t)

	health := svc.Health()
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "deepseek-ai/DeepSeek-R1", health.Model)
}
