package tools

import (
	"context"
	"fmt"
	"log"
	"strings"

	"ai-tutoring-be/pkg/llm"
)

// ConceptExplainer produces an explanation at a requested depth. The
// explanation text is model-generated when a provider is configured and
// templated otherwise; a provider failure falls back to the template rather
// than failing the tool.
type ConceptExplainer struct {
	llmProvider llm.LLMProvider // may be nil
	logger      *log.Logger
}

func NewConceptExplainer(llmProvider llm.LLMProvider, logger *log.Logger) *ConceptExplainer {
	return &ConceptExplainer{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

func (g *ConceptExplainer) Generate(ctx context.Context, req ConceptExplainerRequest) (*ConceptExplanation, error) {
	concept := strings.ReplaceAll(req.ConceptToExplain, "_", " ")

	explanation := fmt.Sprintf("This is a %s explanation of %s.", req.DesiredDepth, concept)
	if g.llmProvider != nil {
		prompt := fmt.Sprintf(
			"Explain %s at a %s level for a grade %s student. Keep it under four sentences. Respond with plain text only.",
			concept, req.DesiredDepth, req.UserInfo.GradeLevel,
		)
		if generated, err := g.llmProvider.Generate(ctx, prompt, llm.WithMaxTokens(250)); err != nil {
			g.logger.Printf("[CONCEPT_EXPLAINER] LLM explanation failed, using template: %v", err)
		} else if s := strings.TrimSpace(generated); s != "" {
			explanation = s
		}
	}

	return &ConceptExplanation{
		Explanation:       explanation,
		Examples:          []string{fmt.Sprintf("Example of %s", concept)},
		RelatedConcepts:   []string{fmt.Sprintf("Concepts related to %s", req.CurrentTopic)},
		PracticeQuestions: []string{fmt.Sprintf("Practice question about %s", concept)},
		SourceReferences:  []string{fmt.Sprintf("Reference for %s", concept)},
		Depth:             req.DesiredDepth,
	}, nil
}
