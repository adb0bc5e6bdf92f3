// Package selector maps an extracted intent to a concrete tool identifier.
package selector

import (
	"strings"

	"ai-tutoring-be/pkg/tools"
)

// Selector is a pure intent-to-tool mapping. Which practice tool serves
// practice intents (quiz vs flashcards), and which tool catches unmatched
// intents, are deployment policy set through the config.
type Selector struct {
	practiceTool tools.ToolName
	defaultTool  tools.ToolName
}

func NewSelector(practiceTool, defaultTool tools.ToolName) *Selector {
	if practiceTool == "" {
		practiceTool = tools.ToolQuizGenerator
	}
	if defaultTool == "" {
		defaultTool = tools.ToolQuizGenerator
	}
	return &Selector{
		practiceTool: practiceTool,
		defaultTool:  defaultTool,
	}
}

// Select is deterministic and total: the same intent always yields the same
// tool, and every intent yields one.
func (s *Selector) Select(intent string) tools.ToolName {
	i := strings.ToLower(intent)
	switch {
	case strings.Contains(i, "practice") || strings.Contains(i, "quiz") || strings.Contains(i, "problems"):
		return s.practiceTool
	case strings.Contains(i, "note") || strings.Contains(i, "summary"):
		return tools.ToolNoteMaker
	case strings.Contains(i, "explain") || strings.Contains(i, "explanation"):
		return tools.ToolConceptExplainer
	case strings.Contains(i, "flashcard"):
		return tools.ToolFlashcardGenerator
	default:
		return s.defaultTool
	}
}
