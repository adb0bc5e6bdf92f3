// Package params assembles a fully-populated tool request from an extracted
// context triple, the user profile and recent conversation history.
package params

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"ai-tutoring-be/pkg/orchestrator/selector"
	"ai-tutoring-be/pkg/store"
	"ai-tutoring-be/pkg/tools"
)

// ErrInvalidProfile marks a caller-supplied profile that fails validation.
// Profile fields feed verbatim into generated content, so a broken profile is
// surfaced instead of silently replaced with the demo default.
var ErrInvalidProfile = errors.New("invalid user profile")

// Tool defaults
const (
	defaultDifficulty     = "medium"
	defaultFlashcardCount = 5
	maxFlashcardCount     = 10
	defaultQuestionCount  = 5
	defaultNoteStyle      = "structured"
	defaultQuestionType   = "practice"
)

// depthByDifficulty derives concept depth from the computed difficulty, not
// from emotion directly. Difficulty is the single source of truth for depth.
var depthByDifficulty = map[string]string{
	"easy":   "basic",
	"medium": "intermediate",
	"hard":   "advanced",
}

type Builder struct {
	selector      *selector.Selector
	validate      *validator.Validate
	historyWindow int
}

func NewBuilder(sel *selector.Selector, historyWindow int) *Builder {
	if historyWindow <= 0 {
		historyWindow = 5
	}
	return &Builder{
		selector:      sel,
		validate:      validator.New(),
		historyWindow: historyWindow,
	}
}

// Build selects the tool for the intent and assembles its request. Every
// field the selected variant requires is populated; a partially-built request
// is never returned.
func (b *Builder) Build(
	intent, topic, emotion string,
	profile *tools.UserProfile,
	history []store.ChatTurn,
) (tools.ToolName, tools.Request, error) {

	tool := b.selector.Select(intent)

	userInfo, err := b.resolveProfile(profile, emotion)
	if err != nil {
		return tool, nil, err
	}

	chatHistory := recentMessages(history, b.historyWindow)
	difficulty := ComputeDifficulty(emotion, defaultDifficulty)
	subject := subjectFromTopic(topic)

	switch tool {
	case tools.ToolNoteMaker:
		return tool, tools.NoteMakerRequest{
			UserInfo:         userInfo,
			ChatHistory:      chatHistory,
			Topic:            topic,
			Subject:          subject,
			NoteTakingStyle:  defaultNoteStyle,
			IncludeExamples:  true,
			IncludeAnalogies: emotion == "confused" || emotion == "frustrated",
		}, nil

	case tools.ToolFlashcardGenerator:
		return tool, tools.FlashcardGeneratorRequest{
			UserInfo:        userInfo,
			Topic:           topic,
			Count:           flashcardCount(emotion),
			Difficulty:      difficulty,
			Subject:         subject,
			IncludeExamples: true,
		}, nil

	case tools.ToolConceptExplainer:
		depth, ok := depthByDifficulty[difficulty]
		if !ok {
			depth = "basic"
		}
		return tool, tools.ConceptExplainerRequest{
			UserInfo:         userInfo,
			ChatHistory:      chatHistory,
			ConceptToExplain: topic,
			CurrentTopic:     subject,
			DesiredDepth:     depth,
		}, nil

	default:
		// quiz_generator, also the catch-all practice shape
		return tools.ToolQuizGenerator, tools.QuizGeneratorRequest{
			Topic:        topic,
			Subject:      subject,
			Difficulty:   difficulty,
			QuestionType: defaultQuestionType,
			NumQuestions: defaultQuestionCount,
		}, nil
	}
}

// ComputeDifficulty applies the single emotion-adjustment rule shared by all
// tools. Struggling emotions pin difficulty to easy, confidence raises it to
// hard, anything else keeps the tool default.
func ComputeDifficulty(emotion, fallback string) string {
	switch emotion {
	case "confused", "anxious", "frustrated":
		return "easy"
	case "confident":
		return "hard"
	default:
		return fallback
	}
}

func (b *Builder) resolveProfile(profile *tools.UserProfile, emotion string) (tools.UserProfile, error) {
	if profile != nil {
		if err := b.validate.Struct(profile); err != nil {
			return tools.UserProfile{}, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
		}
		return *profile, nil
	}

	// The emotion annotation is the only personalization signal passed to
	// tools that never see the raw emotional state.
	summary := fmt.Sprintf("Currently feeling %s", emotion)
	switch emotion {
	case "frustrated":
		summary += " and needs encouragement"
	case "confident":
		summary += " and ready for challenges"
	}

	return tools.UserProfile{
		UserID:                "demo_student",
		Name:                  "Demo Student",
		GradeLevel:            "10",
		LearningStyleSummary:  "Prefers structured learning with examples",
		EmotionalStateSummary: summary,
		MasteryLevelSummary:   "Level 5: Developing competence",
	}, nil
}

func flashcardCount(emotion string) int {
	count := defaultFlashcardCount
	switch emotion {
	case "frustrated":
		if count > 3 {
			count = 3 // Fewer cards when struggling
		}
	case "confident":
		count += 2 // More cards when confident
		if count > maxFlashcardCount {
			count = maxFlashcardCount
		}
	}
	return count
}

func recentMessages(history []store.ChatTurn, window int) []tools.ChatMessage {
	if len(history) > window {
		history = history[len(history)-window:]
	}
	messages := make([]tools.ChatMessage, 0, len(history))
	for _, turn := range history {
		role := turn.Role
		if role != store.RoleUser && role != store.RoleAssistant {
			role = store.RoleUser
		}
		messages = append(messages, tools.ChatMessage{Role: role, Content: turn.Content})
	}
	return messages
}

func subjectFromTopic(topic string) string {
	fields := strings.FieldsFunc(topic, func(r rune) bool {
		return r == '_' || r == ' '
	})
	if len(fields) == 0 {
		return "general"
	}
	return fields[0]
}
