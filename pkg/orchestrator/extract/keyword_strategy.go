package extract

import (
	"context"
	"strings"
)

// topicEntry maps a canonical topic to the keywords that select it.
// Declaration order is significant: the first matching entry wins, not the
// best or longest match.
type topicEntry struct {
	topic    string
	keywords []string
}

var topicTable = []topicEntry{
	{"calculus", []string{"calculus", "derivative", "derivatives", "integral", "limit"}},
	{"algebra", []string{"algebra", "equation", "equations", "polynomial"}},
	{"geometry", []string{"geometry", "triangle", "circle", "angle"}},
	{"photosynthesis", []string{"photosynthesis", "chlorophyll"}},
	{"biology", []string{"biology", "cell", "evolution", "genetics"}},
	{"chemistry", []string{"chemistry", "molecule", "atom", "reaction"}},
	{"physics", []string{"physics", "force", "motion", "energy", "newton"}},
	{"history", []string{"history", "revolution", "empire"}},
	{"grammar", []string{"grammar", "tense", "sentence", "verb"}},
}

var (
	practiceKeywords   = []string{"practice", "problem", "quiz", "exercise"}
	explainKeywords    = []string{"explain", "detail", "teach", "describe"}
	notesKeywords      = []string{"note", "summary", "summarize"}
	frustratedKeywords = []string{"struggl", "frustrat", "confus", "hard", "difficult"}
	confidentKeywords  = []string{"confident", "easy", "understand", "know", "well"}
)

// KeywordStrategy is the deterministic fallback tier. It is total: any input,
// including the empty string, yields a full triple.
type KeywordStrategy struct{}

func NewKeywordStrategy() *KeywordStrategy {
	return &KeywordStrategy{}
}

func (s *KeywordStrategy) Name() string { return "keyword" }

func (s *KeywordStrategy) Extract(ctx context.Context, input string) (*ContextTriple, error) {
	return &ContextTriple{
		Intent:         classifyIntent(input),
		Topic:          classifyTopic(input),
		EmotionalState: classifyEmotion(input),
	}, nil
}

func classifyIntent(input string) string {
	switch {
	case containsAny(input, practiceKeywords):
		return IntentPracticeProblems
	case containsAny(input, explainKeywords):
		return IntentExplanation
	case containsAny(input, notesKeywords):
		return IntentNotes
	default:
		return IntentPracticeProblems
	}
}

func classifyTopic(input string) string {
	for _, entry := range topicTable {
		if containsAny(input, entry.keywords) {
			return entry.topic
		}
	}
	return "general"
}

func classifyEmotion(input string) string {
	// Frustration cues take precedence over confidence cues
	if containsAny(input, frustratedKeywords) {
		return EmotionFrustrated
	}
	if containsAny(input, confidentKeywords) {
		return EmotionConfident
	}
	return EmotionNeutral
}

func containsAny(input string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(input, kw) {
			return true
		}
	}
	return false
}
