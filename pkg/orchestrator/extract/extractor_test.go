package extract

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"ai-tutoring-be/pkg/llm"
)

type stubProvider struct {
	reply string
	err   error
}

func (s *stubProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return s.reply, s.err
}

func (s *stubProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return s.reply, s.err
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func keywordOnlyExtractor() *Extractor {
	return NewExtractor(nil, testLogger())
}

func TestExtractFallbackScenarios(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantIntent  string
		wantTopic   string
		wantEmotion string
	}{
		{
			name:        "frustrated practice request",
			input:       "I'm struggling with calculus derivatives and need practice problems",
			wantIntent:  IntentPracticeProblems,
			wantTopic:   "calculus",
			wantEmotion: EmotionFrustrated,
		},
		{
			name:        "confident advanced request",
			input:       "I understand photosynthesis well, give me advanced content",
			wantIntent:  IntentPracticeProblems,
			wantTopic:   "photosynthesis",
			wantEmotion: EmotionConfident,
		},
		{
			name:        "explanation request",
			input:       "give detailed explanation",
			wantIntent:  IntentExplanation,
			wantTopic:   "general",
			wantEmotion: EmotionNeutral,
		},
		{
			name:        "notes request",
			input:       "make a summary of the french revolution",
			wantIntent:  IntentNotes,
			wantTopic:   "history",
			wantEmotion: EmotionNeutral,
		},
		{
			name:        "empty input gets defaults",
			input:       "",
			wantIntent:  IntentPracticeProblems,
			wantTopic:   "general",
			wantEmotion: EmotionNeutral,
		},
		{
			name:        "misspelled input corrected before classification",
			input:       "give me a quize, this is dificult",
			wantIntent:  IntentPracticeProblems,
			wantTopic:   "general",
			wantEmotion: EmotionFrustrated,
		},
	}

	e := keywordOnlyExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract(context.Background(), tt.input)
			if got.Intent != tt.wantIntent {
				t.Errorf("Intent = %q, want %q", got.Intent, tt.wantIntent)
			}
			if got.Topic != tt.wantTopic {
				t.Errorf("Topic = %q, want %q", got.Topic, tt.wantTopic)
			}
			if got.EmotionalState != tt.wantEmotion {
				t.Errorf("EmotionalState = %q, want %q", got.EmotionalState, tt.wantEmotion)
			}
		})
	}
}

func TestExtractTotality(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"!!!???",
		"lorem ipsum dolor sit amet",
		"{\"intent\": \"weird looking input\"}",
	}

	e := keywordOnlyExtractor()
	for _, in := range inputs {
		triple := e.Extract(context.Background(), in)
		if triple == nil {
			t.Fatalf("Extract(%q) returned nil", in)
		}
		if triple.Intent == "" || triple.Topic == "" || triple.EmotionalState == "" {
			t.Errorf("Extract(%q) produced empty field: %+v", in, triple)
		}
	}
}

func TestExtractUsesLLMWhenAvailable(t *testing.T) {
	provider := &stubProvider{
		reply: `{"intent": "explanation", "topic": "Chain Rule", "emotional_state": "confused"}`,
	}
	e := NewExtractor(NewLLMStrategy(provider, testLogger()), testLogger())

	got := e.Extract(context.Background(), "what is the chain rule?")
	if got.Intent != "explanation" {
		t.Errorf("Intent = %q, want explanation", got.Intent)
	}
	if got.Topic != "chain_rule" {
		t.Errorf("Topic = %q, want chain_rule", got.Topic)
	}
	if got.EmotionalState != "confused" {
		t.Errorf("EmotionalState = %q, want confused", got.EmotionalState)
	}
}

func TestExtractFallsBackOnProviderError(t *testing.T) {
	provider := &stubProvider{err: errors.New("backend unavailable")}
	e := NewExtractor(NewLLMStrategy(provider, testLogger()), testLogger())

	got := e.Extract(context.Background(), "I need practice problems on algebra")
	if got.Intent != IntentPracticeProblems {
		t.Errorf("Intent = %q, want fallback practice intent", got.Intent)
	}
	if got.Topic != "algebra" {
		t.Errorf("Topic = %q, want algebra", got.Topic)
	}
}

func TestExtractFallsBackOnUnparseableReply(t *testing.T) {
	provider := &stubProvider{reply: "I could not produce structured output, sorry."}
	e := NewExtractor(NewLLMStrategy(provider, testLogger()), testLogger())

	got := e.Extract(context.Background(), "explain photosynthesis")
	if got.Intent != IntentExplanation {
		t.Errorf("Intent = %q, want explanation from keyword tier", got.Intent)
	}
	if got.Topic != "photosynthesis" {
		t.Errorf("Topic = %q, want photosynthesis", got.Topic)
	}
}

func TestParseTriple(t *testing.T) {
	tests := []struct {
		name       string
		reply      string
		wantErr    bool
		wantIntent string
		wantTopic  string
	}{
		{
			name:       "bare object",
			reply:      `{"intent": "notes", "topic": "biology", "emotional_state": "neutral"}`,
			wantIntent: "notes",
			wantTopic:  "biology",
		},
		{
			name: "prose before the object",
			reply: `Let me think about this. The student wants notes.
{"intent": "notes", "topic": "biology", "emotional_state": "neutral"}`,
			wantIntent: "notes",
			wantTopic:  "biology",
		},
		{
			name: "last validating object wins",
			reply: `A draft: {"intent": "explanation", "topic": "draft", "emotional_state": "neutral"}
Final answer: {"intent": "notes", "topic": "cells", "emotional_state": "confused"}`,
			wantIntent: "notes",
			wantTopic:  "cells",
		},
		{
			name: "invalid trailing object ignored in favor of earlier valid one",
			reply: `{"intent": "notes", "topic": "cells", "emotional_state": "neutral"}
{"intent": "", "topic": "", "emotional_state": ""}`,
			wantIntent: "notes",
			wantTopic:  "cells",
		},
		{
			name:    "no object at all",
			reply:   "plain prose reply",
			wantErr: true,
		},
		{
			name:    "object missing keys",
			reply:   `{"intent": "notes"}`,
			wantErr: true,
		},
		{
			name:    "malformed json",
			reply:   `{"intent": "notes", "topic": `,
			wantErr: true,
		},
		{
			name:       "nested braces inside values",
			reply:      `{"intent": "notes", "topic": "set {a, b}", "emotional_state": "neutral"}`,
			wantIntent: "notes",
			wantTopic:  "set {a, b}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTriple(tt.reply)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseTriple(%q) expected error, got %+v", tt.reply, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTriple(%q) unexpected error: %v", tt.reply, err)
			}
			if got.Intent != tt.wantIntent {
				t.Errorf("Intent = %q, want %q", got.Intent, tt.wantIntent)
			}
			if got.Topic != tt.wantTopic {
				t.Errorf("Topic = %q, want %q", got.Topic, tt.wantTopic)
			}
		})
	}
}

func TestTopicTableOrderIsSignificant(t *testing.T) {
	// "derivative" belongs to the calculus entry even though later entries
	// could plausibly match other words in the sentence.
	e := keywordOnlyExtractor()
	got := e.Extract(context.Background(), "derivative of a force equation")
	if got.Topic != "calculus" {
		t.Errorf("Topic = %q, want calculus (first table entry wins)", got.Topic)
	}
}
