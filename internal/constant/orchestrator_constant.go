package constant

const (
	ChatTurnRoleUser      = "user"
	ChatTurnRoleAssistant = "assistant"
)

// NextActions is the static follow-up menu attached to every orchestration
// response, independent of the ranked suggestions.
var NextActions = []string{
	"Review flashcards",
	"Request notes",
	"Get explanation",
}
