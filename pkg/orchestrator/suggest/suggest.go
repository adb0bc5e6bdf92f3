// Package suggest produces ranked follow-up actions for a completed turn.
package suggest

import "strings"

const maxSuggestions = 3

// ForTurn returns up to three follow-up actions from a fixed rule table
// keyed by intent category, with one emotion-conditioned extra appended
// before truncation. Pure and deterministic.
func ForTurn(intent, emotion string) []string {
	var suggestions []string

	i := strings.ToLower(intent)
	switch {
	case strings.Contains(i, "practice") || strings.Contains(i, "problems"):
		suggestions = append(suggestions,
			"Generate flashcards for practice",
			"Provide concise notes summary",
			"Ask for detailed concept explanation",
		)
	case strings.Contains(i, "explanation") || strings.Contains(i, "explain"):
		suggestions = append(suggestions,
			"Provide practice questions",
			"Create summarized notes",
			"Test understanding via flashcards",
		)
	case strings.Contains(i, "note"):
		suggestions = append(suggestions,
			"Create flashcards from notes",
			"Generate practice questions",
			"Get concept explanations",
		)
	}

	switch emotion {
	case "confused", "anxious", "frustrated":
		suggestions = append(suggestions, "Break content into simpler parts")
	case "confident":
		suggestions = append(suggestions, "Try challenging problems")
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}
