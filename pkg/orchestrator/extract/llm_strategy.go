package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"ai-tutoring-be/pkg/llm"
	"ai-tutoring-be/pkg/orchestrator/textnorm"
)

const extractionSystemPrompt = "You are an educational AI assistant. " +
	"Extract and return a JSON object with keys: intent, topic, emotional_state. " +
	"Ensure 'topic' is the main subject (multi-word topics using underscores). " +
	"Respond ONLY with valid JSON."

// LLMStrategy asks the inference backend for the triple and scrapes the
// structured answer out of whatever prose surrounds it.
type LLMStrategy struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

func NewLLMStrategy(llmProvider llm.LLMProvider, logger *log.Logger) *LLMStrategy {
	return &LLMStrategy{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

func (s *LLMStrategy) Name() string { return "llm" }

func (s *LLMStrategy) Extract(ctx context.Context, input string) (*ContextTriple, error) {
	response, err := s.llmProvider.Chat(ctx, []llm.Message{
		{Role: "system", Content: extractionSystemPrompt},
		{Role: "user", Content: input},
	}, llm.WithTemperature(0.7), llm.WithMaxTokens(150))
	if err != nil {
		return nil, fmt.Errorf("inference call: %w", err)
	}

	triple, err := ParseTriple(response)
	if err != nil {
		return nil, fmt.Errorf("parse inference reply: %w", err)
	}

	triple.Topic = cleanTopic(triple.Topic)
	if triple.Topic == "" || triple.Intent == "" || triple.EmotionalState == "" {
		return nil, fmt.Errorf("inference reply has empty triple field")
	}

	return triple, nil
}

// ParseTriple scans the reply for JSON-shaped substrings and returns the LAST
// one whose three keys validate as non-empty strings. Reasoning-style
// backends often think out loud before the structured answer, and the final
// object is the committed one.
func ParseTriple(response string) (*ContextTriple, error) {
	var last *ContextTriple

	for start := 0; start < len(response); start++ {
		if response[start] != '{' {
			continue
		}
		end := matchBrace(response, start)
		if end == -1 {
			continue
		}

		candidate := response[start : end+1]
		var raw struct {
			Intent         string `json:"intent"`
			Topic          string `json:"topic"`
			EmotionalState string `json:"emotional_state"`
		}
		if err := json.Unmarshal([]byte(candidate), &raw); err != nil {
			continue
		}
		if raw.Intent == "" || raw.Topic == "" || raw.EmotionalState == "" {
			continue
		}

		last = &ContextTriple{
			Intent:         strings.TrimSpace(raw.Intent),
			Topic:          raw.Topic,
			EmotionalState: strings.ToLower(strings.TrimSpace(raw.EmotionalState)),
		}
	}

	if last == nil {
		return nil, fmt.Errorf("no validating JSON object in reply")
	}
	return last, nil
}

// matchBrace returns the index of the brace closing the one at start, or -1.
// String literals are skipped so braces inside values don't break the scan.
func matchBrace(s string, start int) int {
	depth := 0
	inString := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch c {
			case '\\':
				i++
			case '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// cleanTopic lower-cases, joins words with underscores and strips leading
// request phrases ("explain", "i need", ...).
func cleanTopic(topic string) string {
	t := strings.ToLower(strings.TrimSpace(topic))
	t = strings.Join(strings.Fields(t), "_")
	return textnorm.StripLeadingPhrases(t)
}
