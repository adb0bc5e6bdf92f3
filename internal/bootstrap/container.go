package bootstrap

import (
	"log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"ai-tutoring-be/internal/config"
	"ai-tutoring-be/internal/controller"
	"ai-tutoring-be/internal/pkg/logger"
	"ai-tutoring-be/internal/repository/memory"
	"ai-tutoring-be/internal/service"
	"ai-tutoring-be/pkg/llm"
	"ai-tutoring-be/pkg/llm/factory"
)

type Container struct {
	// Controllers
	OrchestratorController controller.IOrchestratorController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Shared facades
	Logger              logger.ILogger
	OrchestratorService service.IOrchestratorService
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. LLM Provider. No HuggingFace token means the pipeline runs on the
	// deterministic tiers only; that is a supported mode, not a failure.
	var llmProvider llm.LLMProvider
	if cfg.Ai.LLMProvider == "huggingface" && cfg.Ai.HFToken == "" {
		log.Printf("[INFO] HF_TOKEN not set; inference disabled, keyword fallback only")
	} else {
		provider, err := factory.NewLLMProvider(
			cfg.Ai.LLMProvider,
			cfg.Ai.LLMModel,
			providerBaseURL(cfg),
			cfg.Ai.HFToken,
			cfg.Ai.RequestTimeout,
		)
		if err != nil {
			log.Printf("[WARN] Failed to initialize LLM provider: %v; keyword fallback only", err)
		} else {
			llmProvider = provider
			log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
		}
	}

	// 4. In-Memory Session Storage
	sessionRepo := memory.NewSessionRepository(cfg.Orchestrator.SessionTTL, cfg.Orchestrator.SessionSweep)

	// 5. Services
	publisherService := service.NewPublisherService(cfg.App.UsageTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.App.UsageTopic, sysLogger)

	orchestratorService := service.NewOrchestratorService(
		cfg,
		llmProvider,
		sessionRepo,
		publisherService,
		sysLogger,
	)

	// 6. Controllers
	return &Container{
		OrchestratorController: controller.NewOrchestratorController(orchestratorService),
		ConsumerService:        consumerService,
		Logger:                 sysLogger,
		OrchestratorService:    orchestratorService,
	}
}

func providerBaseURL(cfg *config.Config) string {
	if cfg.Ai.LLMProvider == "ollama" {
		return cfg.Ai.OllamaBaseURL
	}
	return cfg.Ai.HFBaseURL
}
