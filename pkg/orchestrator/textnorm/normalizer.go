// Package textnorm cleans raw student input before any extraction runs.
package textnorm

import (
	"regexp"
	"strings"
)

// Common misspelling corrections, applied whole-word only.
var misspellings = map[string]string{
	"expalin":  "explain",
	"dificult": "difficult",
	"quize":    "quiz",
	"praktice": "practice",
	"flashcrd": "flashcard",
}

// Leading phrases stripped from topics and from raw input in the fallback
// path. Order matters: multi-word phrases must come before their prefixes
// so "can you" is removed before "can" would ever match.
var leadingPhrases = []string{
	"can you",
	"could you",
	"would you",
	"i want",
	"i need",
	"help with",
	"explain",
	"describe",
	"tell",
	"show",
	"give",
	"please",
}

var misspellingPatterns = func() map[*regexp.Regexp]string {
	patterns := make(map[*regexp.Regexp]string, len(misspellings))
	for wrong, right := range misspellings {
		patterns[regexp.MustCompile(`\b`+regexp.QuoteMeta(wrong)+`\b`)] = right
	}
	return patterns
}()

// Normalize lower-cases the input and corrects known misspellings.
// Idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(text string) string {
	out := strings.ToLower(text)
	for pattern, right := range misspellingPatterns {
		out = pattern.ReplaceAllString(out, right)
	}
	return out
}

// StripLeadingPhrases repeatedly removes any phrase from the fixed list at
// the start of the string, plus trailing whitespace, until no phrase matches.
// Phrases mid-string are never touched.
func StripLeadingPhrases(text string) string {
	out := strings.TrimSpace(text)
	for {
		stripped := false
		for _, phrase := range leadingPhrases {
			if !strings.HasPrefix(out, phrase) {
				continue
			}
			rest := out[len(phrase):]
			// Whole-phrase match only: the phrase must end at a word boundary
			if rest != "" && !strings.HasPrefix(rest, " ") && !strings.HasPrefix(rest, "_") {
				continue
			}
			out = strings.TrimLeft(rest, " _")
			stripped = true
		}
		if !stripped {
			break
		}
	}
	return out
}
