// Package dispatch executes a selected tool with uniform failure containment.
// Dispatch never propagates an error: validation failures, generator errors,
// timeouts and panics all become a ToolExecution carrying an error payload.
package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"ai-tutoring-be/pkg/tools"
)

type Dispatcher struct {
	quiz      *tools.QuizGenerator
	flashcard *tools.FlashcardGenerator
	notes     *tools.NoteMaker
	concept   *tools.ConceptExplainer

	validate *validator.Validate
	timeout  time.Duration
	logger   *log.Logger
}

func NewDispatcher(
	quiz *tools.QuizGenerator,
	flashcard *tools.FlashcardGenerator,
	notes *tools.NoteMaker,
	concept *tools.ConceptExplainer,
	timeout time.Duration,
	logger *log.Logger,
) *Dispatcher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Dispatcher{
		quiz:      quiz,
		flashcard: flashcard,
		notes:     notes,
		concept:   concept,
		validate:  validator.New(),
		timeout:   timeout,
		logger:    logger,
	}
}

// Dispatch validates the request against the tool's schema, invokes the
// matching generator under a bounded timeout and normalizes the outcome.
func (d *Dispatcher) Dispatch(ctx context.Context, tool tools.ToolName, req tools.Request) (execution tools.ToolExecution) {
	params := asParams(req)

	// A generator must never take the whole request down with it
	defer func() {
		if r := recover(); r != nil {
			d.logger.Printf("[DISPATCH] panic in %s: %v", tool, r)
			execution = d.failedExecution(tool, params, fmt.Sprintf("tool panicked: %v", r))
		}
	}()

	switch tool {
	case tools.ToolQuizGenerator, tools.ToolNoteMaker, tools.ToolConceptExplainer, tools.ToolFlashcardGenerator:
	default:
		// Not an error class: unrecognized tools get a defined fallback outcome
		d.logger.Printf("[DISPATCH] unsupported tool %q, returning fallback execution", tool)
		return tools.ToolExecution{
			ToolName:          string(tool),
			RequestParams:     params,
			RawToolResponse:   map[string]interface{}{"message": "Tool not supported yet"},
			FormattedResponse: fmt.Sprintf("Tool %s is not supported yet (fallback mode)", tool),
		}
	}

	if req == nil {
		return d.failedExecution(tool, params, "nil tool request")
	}

	if req.Tool() != tool {
		return d.failedExecution(tool, params,
			fmt.Sprintf("request shape %s does not match tool %s", req.Tool(), tool))
	}

	if err := d.validate.Struct(req); err != nil {
		d.logger.Printf("[DISPATCH] %s request failed schema validation: %v", tool, err)
		return d.failedExecution(tool, params, fmt.Sprintf("request validation: %v", err))
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	var (
		raw interface{}
		err error
	)

	switch r := req.(type) {
	case tools.QuizGeneratorRequest:
		var set *tools.QuizSet
		if set, err = d.quiz.Generate(ctx, r); err == nil {
			raw = set
			execution = d.successExecution(tool, params, raw,
				fmt.Sprintf("Generated %d %s practice problems on %s", len(set.Questions), set.Difficulty, set.Topic))
		}
	case tools.FlashcardGeneratorRequest:
		var set *tools.FlashcardSet
		if set, err = d.flashcard.Generate(ctx, r); err == nil {
			raw = set
			execution = d.successExecution(tool, params, raw,
				fmt.Sprintf("Created %d %s flashcards on %s", len(set.Flashcards), set.Difficulty, set.Topic))
		}
	case tools.NoteMakerRequest:
		var set *tools.NoteSet
		if set, err = d.notes.Generate(ctx, r); err == nil {
			raw = set
			execution = d.successExecution(tool, params, raw,
				fmt.Sprintf("Generated structured notes on %s", set.Topic))
		}
	case tools.ConceptExplainerRequest:
		var exp *tools.ConceptExplanation
		if exp, err = d.concept.Generate(ctx, r); err == nil {
			raw = exp
			execution = d.successExecution(tool, params, raw,
				fmt.Sprintf("Generated %s explanation of %s", exp.Depth, strings.ReplaceAll(r.ConceptToExplain, "_", " ")))
		}
	default:
		return d.failedExecution(tool, params,
			fmt.Sprintf("no generator bound for request shape %T", req))
	}

	if err != nil {
		d.logger.Printf("[DISPATCH] %s generator failed: %v", tool, err)
		return d.failedExecution(tool, params, err.Error())
	}

	return execution
}

func (d *Dispatcher) successExecution(tool tools.ToolName, params map[string]interface{}, raw interface{}, formatted string) tools.ToolExecution {
	return tools.ToolExecution{
		ToolName:          string(tool),
		RequestParams:     params,
		RawToolResponse:   raw,
		FormattedResponse: formatted,
	}
}

func (d *Dispatcher) failedExecution(tool tools.ToolName, params map[string]interface{}, message string) tools.ToolExecution {
	topic := "general"
	if t, ok := params["topic"].(string); ok && t != "" {
		topic = t
	} else if t, ok := params["concept_to_explain"].(string); ok && t != "" {
		topic = t
	}
	return tools.ToolExecution{
		ToolName:          string(tool),
		RequestParams:     params,
		RawToolResponse:   map[string]interface{}{"error": message},
		FormattedResponse: fmt.Sprintf("Content generated for %s (fallback mode)", topic),
	}
}

// asParams flattens the typed request into the mapping recorded on the
// execution. Kept best-effort: a marshal failure yields an empty map, which
// still produces a well-formed ToolExecution.
func asParams(req tools.Request) map[string]interface{} {
	params := map[string]interface{}{}
	if req == nil {
		return params
	}
	data, err := json.Marshal(req)
	if err != nil {
		return params
	}
	_ = json.Unmarshal(data, &params)
	return params
}
