package tools

import (
	"context"
	"fmt"
	"strings"
)

// QuizGenerator produces practice problems. Content is templated; calculus
// topics get real derivative drills so the demo output is not pure filler.
type QuizGenerator struct{}

func NewQuizGenerator() *QuizGenerator {
	return &QuizGenerator{}
}

func (g *QuizGenerator) Generate(ctx context.Context, req QuizGeneratorRequest) (*QuizSet, error) {
	topic := strings.ReplaceAll(req.Topic, "_", " ")

	questions := make([]QuizQuestion, 0, req.NumQuestions)
	for i := 1; i <= req.NumQuestions; i++ {
		var q, a string
		if strings.Contains(topic, "calculus") || strings.Contains(topic, "derivative") {
			q = fmt.Sprintf("Compute the derivative of f(x) = x^%d", i+1)
			a = fmt.Sprintf("%d*x^%d", i+1, i)
		} else {
			q = fmt.Sprintf("Practice problem %d on %s", i, topic)
			a = fmt.Sprintf("Solution for problem %d", i)
		}
		questions = append(questions, QuizQuestion{
			Question:      q,
			Answer:        a,
			SolutionSteps: []string{"Step 1: apply the relevant rule", "Step 2: simplify"},
			Difficulty:    req.Difficulty,
		})
	}

	return &QuizSet{
		Questions:  questions,
		Topic:      req.Topic,
		Difficulty: req.Difficulty,
	}, nil
}
