package service

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"ai-tutoring-be/internal/config"
	"ai-tutoring-be/internal/constant"
	"ai-tutoring-be/internal/dto"
	"ai-tutoring-be/internal/pkg/logger"
	"ai-tutoring-be/internal/repository/memory"
	"ai-tutoring-be/pkg/events"
	"ai-tutoring-be/pkg/llm"
	"ai-tutoring-be/pkg/orchestrator/dispatch"
	"ai-tutoring-be/pkg/orchestrator/extract"
	"ai-tutoring-be/pkg/orchestrator/params"
	"ai-tutoring-be/pkg/orchestrator/selector"
	"ai-tutoring-be/pkg/orchestrator/suggest"
	"ai-tutoring-be/pkg/store"
	"ai-tutoring-be/pkg/tools"
)

// IOrchestratorService defines the orchestration facade interface
type IOrchestratorService interface {
	Orchestrate(ctx context.Context, req *dto.OrchestrateRequest) (*dto.OrchestrateResponse, error)
	Health() *dto.HealthResponse
}

// orchestratorService sequences extraction, parameter building, dispatch and
// suggestion generation, and binds the result into a session.
type orchestratorService struct {
	cfg         *config.Config
	sessionRepo *memory.SessionRepository
	publisher   IPublisherService
	sysLogger   logger.ILogger

	// Domain components
	extractor  *extract.Extractor
	builder    *params.Builder
	dispatcher *dispatch.Dispatcher
}

// NewOrchestratorService wires the decision pipeline. llmProvider may be nil:
// extraction then runs keyword-only and generators stay templated, which is a
// normal operating mode rather than a degraded one.
func NewOrchestratorService(
	cfg *config.Config,
	llmProvider llm.LLMProvider,
	sessionRepo *memory.SessionRepository,
	publisher IPublisherService,
	sysLogger logger.ILogger,
) IOrchestratorService {

	pipelineLogger := initPipelineLogger()

	var llmStrategy extract.Strategy
	if llmProvider != nil {
		llmStrategy = extract.NewLLMStrategy(llmProvider, pipelineLogger)
	}
	extractor := extract.NewExtractor(llmStrategy, pipelineLogger)

	sel := selector.NewSelector(
		tools.ToolName(cfg.Orchestrator.PracticeTool),
		tools.ToolName(cfg.Orchestrator.DefaultTool),
	)
	builder := params.NewBuilder(sel, cfg.Orchestrator.HistoryWindow)

	dispatcher := dispatch.NewDispatcher(
		tools.NewQuizGenerator(),
		tools.NewFlashcardGenerator(),
		tools.NewNoteMaker(llmProvider, pipelineLogger),
		tools.NewConceptExplainer(llmProvider, pipelineLogger),
		cfg.Ai.RequestTimeout,
		pipelineLogger,
	)

	return &orchestratorService{
		cfg:         cfg,
		sessionRepo: sessionRepo,
		publisher:   publisher,
		sysLogger:   sysLogger,
		extractor:   extractor,
		builder:     builder,
		dispatcher:  dispatcher,
	}
}

func initPipelineLogger() *log.Logger {
	logPath := filepath.Join(".", "logs", "orchestrator.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		log.Printf("Failed to create logs directory: %v", err)
	}
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return log.New(os.Stdout, "[ORCHESTRATOR] ", log.LstdFlags)
	}
	return log.New(file, "", log.LstdFlags)
}

// Orchestrate processes one student message end-to-end. Tool-level failures
// degrade content but never flip Success; the only request-level error is an
// invalid caller-supplied profile.
func (s *orchestratorService) Orchestrate(ctx context.Context, req *dto.OrchestrateRequest) (*dto.OrchestrateResponse, error) {
	// Step 1: Resolve or create session
	session := s.sessionRepo.GetOrCreate(req.UserID, req.SessionID)

	// Step 2: Extract context (total: falls back to keyword tier internally)
	triple := s.extractor.Extract(ctx, req.UserInput)

	// Step 3: Build tool parameters (emotion-aware)
	profile := profileFromDTO(req.UserProfile)
	tool, toolReq, err := s.builder.Build(
		triple.Intent, triple.Topic, triple.EmotionalState, profile, session.History,
	)
	if err != nil {
		s.sysLogger.Warn("orchestrator", "Rejected invalid user profile", map[string]interface{}{
			"user_id": req.UserID,
			"error":   err.Error(),
		})
		return nil, err
	}

	// Step 4: Execute tool (total: failures become error executions)
	execution := s.dispatcher.Dispatch(ctx, tool, toolReq)
	degraded := isDegraded(execution)

	// Step 5: Generate suggestions
	suggestions := suggest.ForTurn(triple.Intent, triple.EmotionalState)

	// Step 6: Bind the exchange into the session
	s.sessionRepo.Append(session.ID,
		store.ChatTurn{Role: constant.ChatTurnRoleUser, Content: req.UserInput},
		store.ChatTurn{Role: constant.ChatTurnRoleAssistant, Content: execution.FormattedResponse},
	)

	// Step 7: Usage accounting, off the critical path
	if s.publisher != nil {
		event := events.ToolExecutedEvent{
			UserID:     req.UserID,
			SessionID:  session.ID,
			ToolName:   execution.ToolName,
			Intent:     triple.Intent,
			Topic:      triple.Topic,
			Emotion:    triple.EmotionalState,
			Degraded:   degraded,
			OccurredAt: time.Now(),
		}
		if err := s.publisher.PublishToolExecuted(event); err != nil {
			s.sysLogger.Warn("orchestrator", "Failed to publish usage event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	s.sysLogger.Info("orchestrator", "Orchestration pass completed", map[string]interface{}{
		"user_id":    req.UserID,
		"session_id": session.ID,
		"intent":     triple.Intent,
		"topic":      triple.Topic,
		"emotion":    triple.EmotionalState,
		"tool":       execution.ToolName,
		"degraded":   degraded,
	})

	return &dto.OrchestrateResponse{
		Success:        true, // fail-soft: tool failures degrade content, not the envelope
		Response:       execution.FormattedResponse,
		Intent:         triple.Intent,
		Topic:          triple.Topic,
		EmotionalState: triple.EmotionalState,
		Suggestions:    suggestions,
		ToolExecution: dto.ToolExecutionDTO{
			ToolName:          execution.ToolName,
			RequestParams:     execution.RequestParams,
			RawToolResponse:   execution.RawToolResponse,
			FormattedResponse: execution.FormattedResponse,
		},
		SessionID:   session.ID,
		NextActions: constant.NextActions,
	}, nil
}

func (s *orchestratorService) Health() *dto.HealthResponse {
	return &dto.HealthResponse{
		Status: "healthy",
		Model:  s.cfg.Ai.LLMModel,
	}
}

func profileFromDTO(p *dto.UserProfileDTO) *tools.UserProfile {
	if p == nil {
		return nil
	}
	return &tools.UserProfile{
		UserID:                p.UserID,
		Name:                  p.Name,
		GradeLevel:            p.GradeLevel,
		LearningStyleSummary:  p.LearningStyleSummary,
		EmotionalStateSummary: p.EmotionalStateSummary,
		MasteryLevelSummary:   p.MasteryLevelSummary,
	}
}

func isDegraded(execution tools.ToolExecution) bool {
	raw, ok := execution.RawToolResponse.(map[string]interface{})
	if !ok {
		return false
	}
	_, hasErr := raw["error"]
	return hasErr
}
