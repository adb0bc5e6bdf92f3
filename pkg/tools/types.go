package tools

// Tool identifiers form a closed enumeration. Adding a tool means adding a
// request variant below and a case in the dispatcher, so the change is
// visible at compile time.
type ToolName string

const (
	ToolQuizGenerator      ToolName = "quiz_generator"
	ToolNoteMaker          ToolName = "note_maker"
	ToolConceptExplainer   ToolName = "concept_explainer"
	ToolFlashcardGenerator ToolName = "flashcard_generator"
)

// UserProfile carries the identity and learning summaries that feed verbatim
// into generated content.
type UserProfile struct {
	UserID                string `json:"user_id" validate:"required"`
	Name                  string `json:"name" validate:"required"`
	GradeLevel            string `json:"grade_level" validate:"required"`
	LearningStyleSummary  string `json:"learning_style_summary"`
	EmotionalStateSummary string `json:"emotional_state_summary"`
	MasteryLevelSummary   string `json:"mastery_level_summary"`
}

// ChatMessage is the conversational-context entry passed to tools that
// declare one (note_maker, concept_explainer).
type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

// Request is the closed set of tool request variants.
type Request interface {
	Tool() ToolName
}

type NoteMakerRequest struct {
	UserInfo         UserProfile   `json:"user_info" validate:"required"`
	ChatHistory      []ChatMessage `json:"chat_history" validate:"dive"`
	Topic            string        `json:"topic" validate:"required"`
	Subject          string        `json:"subject" validate:"required"`
	NoteTakingStyle  string        `json:"note_taking_style" validate:"required,oneof=outline bullet_points narrative structured"`
	IncludeExamples  bool          `json:"include_examples"`
	IncludeAnalogies bool          `json:"include_analogies"`
}

func (NoteMakerRequest) Tool() ToolName { return ToolNoteMaker }

type FlashcardGeneratorRequest struct {
	UserInfo        UserProfile `json:"user_info" validate:"required"`
	Topic           string      `json:"topic" validate:"required"`
	Count           int         `json:"count" validate:"required,gte=1,lte=20"`
	Difficulty      string      `json:"difficulty" validate:"required,oneof=easy medium hard"`
	Subject         string      `json:"subject" validate:"required"`
	IncludeExamples bool        `json:"include_examples"`
}

func (FlashcardGeneratorRequest) Tool() ToolName { return ToolFlashcardGenerator }

type ConceptExplainerRequest struct {
	UserInfo         UserProfile   `json:"user_info" validate:"required"`
	ChatHistory      []ChatMessage `json:"chat_history" validate:"dive"`
	ConceptToExplain string        `json:"concept_to_explain" validate:"required"`
	CurrentTopic     string        `json:"current_topic" validate:"required"`
	DesiredDepth     string        `json:"desired_depth" validate:"required,oneof=basic intermediate advanced comprehensive"`
}

func (ConceptExplainerRequest) Tool() ToolName { return ToolConceptExplainer }

// QuizGeneratorRequest is the legacy/fallback practice tool shape.
type QuizGeneratorRequest struct {
	Topic        string `json:"topic" validate:"required"`
	Subject      string `json:"subject" validate:"required"`
	Difficulty   string `json:"difficulty" validate:"required,oneof=easy medium hard"`
	QuestionType string `json:"question_type" validate:"required"`
	NumQuestions int    `json:"num_questions" validate:"required,gte=1,lte=20"`
}

func (QuizGeneratorRequest) Tool() ToolName { return ToolQuizGenerator }

// --- Tool response shapes ---

type QuizQuestion struct {
	Question      string   `json:"question"`
	Answer        string   `json:"answer"`
	SolutionSteps []string `json:"solution_steps"`
	Difficulty    string   `json:"difficulty"`
}

type QuizSet struct {
	Questions  []QuizQuestion `json:"questions"`
	Topic      string         `json:"topic"`
	Difficulty string         `json:"difficulty"`
}

type Flashcard struct {
	Title    string `json:"title"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Example  string `json:"example,omitempty"`
}

type FlashcardSet struct {
	Flashcards        []Flashcard `json:"flashcards"`
	Topic             string      `json:"topic"`
	AdaptationDetails string      `json:"adaptation_details"`
	Difficulty        string      `json:"difficulty"`
}

type NoteSection struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	KeyPoints []string `json:"key_points"`
	Examples  []string `json:"examples"`
	Analogies []string `json:"analogies"`
}

type NoteSet struct {
	Topic                      string        `json:"topic"`
	Title                      string        `json:"title"`
	Summary                    string        `json:"summary"`
	NoteSections               []NoteSection `json:"note_sections"`
	KeyConcepts                []string      `json:"key_concepts"`
	ConnectionsToPriorLearning []string      `json:"connections_to_prior_learning"`
	PracticeSuggestions        []string      `json:"practice_suggestions"`
	SourceReferences           []string      `json:"source_references"`
	NoteTakingStyle            string        `json:"note_taking_style"`
}

type ConceptExplanation struct {
	Explanation       string   `json:"explanation"`
	Examples          []string `json:"examples"`
	RelatedConcepts   []string `json:"related_concepts"`
	PracticeQuestions []string `json:"practice_questions"`
	SourceReferences  []string `json:"source_references"`
	Depth             string   `json:"depth"`
}

// ToolExecution is the normalized record of a tool invocation. It is always
// produced, even on failure, with RawToolResponse holding an error payload
// and FormattedResponse a human-readable fallback sentence.
type ToolExecution struct {
	ToolName          string                 `json:"tool_name"`
	RequestParams     map[string]interface{} `json:"request_params"`
	RawToolResponse   interface{}            `json:"raw_tool_response"`
	FormattedResponse string                 `json:"formatted_response"`
}
