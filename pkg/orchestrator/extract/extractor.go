// Package extract turns free-text student input into a structured
// {intent, topic, emotional_state} triple.
//
// Extraction is an ordered list of strategies. The LLM strategy runs first
// when a provider is configured; the keyword strategy is total and closes the
// chain, so Extract never fails the caller.
package extract

import (
	"context"
	"log"

	"ai-tutoring-be/pkg/orchestrator/textnorm"
)

// ContextTriple is the structured reading of a student message. All three
// fields are always present and non-empty.
type ContextTriple struct {
	Intent         string `json:"intent"`
	Topic          string `json:"topic"`
	EmotionalState string `json:"emotional_state"`
}

// Intent constants
const (
	IntentPracticeProblems = "request_practice_problems"
	IntentExplanation      = "explanation"
	IntentNotes            = "notes"
)

// Emotional state constants
const (
	EmotionNeutral    = "neutral"
	EmotionFrustrated = "frustrated"
	EmotionConfident  = "confident"
	EmotionConfused   = "confused"
	EmotionAnxious    = "anxious"
)

// Strategy is one tier of the extraction chain.
type Strategy interface {
	Name() string
	Extract(ctx context.Context, input string) (*ContextTriple, error)
}

type Extractor struct {
	strategies []Strategy
	logger     *log.Logger
}

// NewExtractor builds the strategy chain. llmStrategy may be nil (no backend
// configured); the keyword strategy is always appended last.
func NewExtractor(llmStrategy Strategy, logger *log.Logger) *Extractor {
	var strategies []Strategy
	if llmStrategy != nil {
		strategies = append(strategies, llmStrategy)
	}
	strategies = append(strategies, NewKeywordStrategy())

	return &Extractor{
		strategies: strategies,
		logger:     logger,
	}
}

// Extract normalizes the input and walks the strategy chain, taking the first
// success. Total: the closing keyword strategy cannot fail.
func (e *Extractor) Extract(ctx context.Context, rawInput string) *ContextTriple {
	clean := textnorm.Normalize(rawInput)

	for _, s := range e.strategies {
		triple, err := s.Extract(ctx, clean)
		if err != nil {
			e.logger.Printf("[EXTRACT] %s strategy failed, trying next: %v", s.Name(), err)
			continue
		}
		e.logger.Printf("[EXTRACT] %s strategy resolved: intent=%s topic=%s emotion=%s",
			s.Name(), triple.Intent, triple.Topic, triple.EmotionalState)
		return triple
	}

	// Unreachable while the keyword strategy closes the chain, kept so the
	// contract survives a misconfigured strategy list.
	return &ContextTriple{
		Intent:         IntentPracticeProblems,
		Topic:          "general",
		EmotionalState: EmotionNeutral,
	}
}
