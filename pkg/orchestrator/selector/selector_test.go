package selector

import (
	"testing"

	"ai-tutoring-be/pkg/tools"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		name   string
		intent string
		want   tools.ToolName
	}{
		{"practice request", "request_practice_problems", tools.ToolQuizGenerator},
		{"quiz wording", "quiz me", tools.ToolQuizGenerator},
		{"explanation", "explanation", tools.ToolConceptExplainer},
		{"explain verb", "explain this", tools.ToolConceptExplainer},
		{"notes", "notes", tools.ToolNoteMaker},
		{"summary wording", "summary please", tools.ToolNoteMaker},
		{"flashcards", "flashcard drill", tools.ToolFlashcardGenerator},
		{"unknown falls to default", "something else entirely", tools.ToolQuizGenerator},
		{"empty falls to default", "", tools.ToolQuizGenerator},
	}

	s := NewSelector(tools.ToolQuizGenerator, tools.ToolQuizGenerator)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Select(tt.intent); got != tt.want {
				t.Errorf("Select(%q) = %q, want %q", tt.intent, got, tt.want)
			}
		})
	}
}

func TestSelectCaseInsensitive(t *testing.T) {
	s := NewSelector(tools.ToolQuizGenerator, tools.ToolQuizGenerator)
	if got := s.Select("EXPLANATION"); got != tools.ToolConceptExplainer {
		t.Errorf("Select(EXPLANATION) = %q, want concept explainer", got)
	}
}

func TestSelectPracticeToolPolicy(t *testing.T) {
	// Deployments can route practice intents to flashcards instead of quizzes.
	s := NewSelector(tools.ToolFlashcardGenerator, tools.ToolConceptExplainer)
	if got := s.Select("request_practice_problems"); got != tools.ToolFlashcardGenerator {
		t.Errorf("practice intent = %q, want configured flashcard tool", got)
	}
	if got := s.Select("gibberish"); got != tools.ToolConceptExplainer {
		t.Errorf("unmatched intent = %q, want configured default tool", got)
	}
}

func TestSelectDeterministic(t *testing.T) {
	s := NewSelector("", "")
	first := s.Select("explanation")
	for i := 0; i < 10; i++ {
		if got := s.Select("explanation"); got != first {
			t.Fatalf("Select is not deterministic: got %q then %q", first, got)
		}
	}
}
