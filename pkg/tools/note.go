package tools

import (
	"context"
	"fmt"
	"log"
	"strings"

	"ai-tutoring-be/pkg/llm"
)

// NoteMaker produces structured notes. When an LLM provider is configured the
// summary paragraph is model-generated; everything else is templated so the
// tool keeps working without a backend.
type NoteMaker struct {
	llmProvider llm.LLMProvider // may be nil
	logger      *log.Logger
}

func NewNoteMaker(llmProvider llm.LLMProvider, logger *log.Logger) *NoteMaker {
	return &NoteMaker{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

func (g *NoteMaker) Generate(ctx context.Context, req NoteMakerRequest) (*NoteSet, error) {
	topic := strings.ReplaceAll(req.Topic, "_", " ")

	summary := fmt.Sprintf("An overview of %s for a grade %s student.", topic, req.UserInfo.GradeLevel)
	if g.llmProvider != nil {
		prompt := fmt.Sprintf(
			"Write a two-sentence study summary of %s for a grade %s student. Respond with plain text only.",
			topic, req.UserInfo.GradeLevel,
		)
		if generated, err := g.llmProvider.Generate(ctx, prompt, llm.WithMaxTokens(120)); err != nil {
			g.logger.Printf("[NOTE_MAKER] LLM summary failed, using template: %v", err)
		} else if s := strings.TrimSpace(generated); s != "" {
			summary = s
		}
	}

	section := NoteSection{
		Title:     fmt.Sprintf("Core ideas of %s", topic),
		Content:   fmt.Sprintf("The essential points of %s, organised in %s style.", topic, req.NoteTakingStyle),
		KeyPoints: []string{fmt.Sprintf("Definition of %s", topic), fmt.Sprintf("Where %s applies", topic)},
	}
	if req.IncludeExamples {
		section.Examples = []string{fmt.Sprintf("Worked example on %s", topic)}
	}
	if req.IncludeAnalogies {
		section.Analogies = []string{fmt.Sprintf("Everyday analogy for %s", topic)}
	}

	return &NoteSet{
		Topic:                     req.Topic,
		Title:                     fmt.Sprintf("Notes: %s", topic),
		Summary:                   summary,
		NoteSections:              []NoteSection{section},
		KeyConcepts:               []string{topic},
		ConnectionsToPriorLearning: []string{fmt.Sprintf("How %s builds on earlier %s work", topic, req.Subject)},
		PracticeSuggestions:       []string{fmt.Sprintf("Try practice problems on %s", topic)},
		SourceReferences:          []string{fmt.Sprintf("Course material on %s", req.Subject)},
		NoteTakingStyle:           req.NoteTakingStyle,
	}, nil
}
