package tools

import (
	"context"
	"fmt"
	"strings"
)

// FlashcardGenerator produces spaced-repetition style cards for a topic.
type FlashcardGenerator struct{}

func NewFlashcardGenerator() *FlashcardGenerator {
	return &FlashcardGenerator{}
}

func (g *FlashcardGenerator) Generate(ctx context.Context, req FlashcardGeneratorRequest) (*FlashcardSet, error) {
	topic := strings.ReplaceAll(req.Topic, "_", " ")

	cards := make([]Flashcard, 0, req.Count)
	for i := 1; i <= req.Count; i++ {
		card := Flashcard{
			Title:    fmt.Sprintf("%s card %d", topic, i),
			Question: fmt.Sprintf("Key fact %d about %s?", i, topic),
			Answer:   fmt.Sprintf("Answer %d for %s", i, topic),
		}
		if req.IncludeExamples {
			card.Example = fmt.Sprintf("Example illustrating fact %d of %s", i, topic)
		}
		cards = append(cards, card)
	}

	return &FlashcardSet{
		Flashcards:        cards,
		Topic:             req.Topic,
		AdaptationDetails: fmt.Sprintf("Count and difficulty tuned for %s", req.UserInfo.EmotionalStateSummary),
		Difficulty:        req.Difficulty,
	}, nil
}
