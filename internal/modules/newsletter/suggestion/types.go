package suggestion

// Allowed values for SuggestionDTO.Type. The type picks which table the
// suggestion lands in; it is a static two-way dispatch, not a dynamic schema.
const (
	TypeEventType = "event-type"
	TypeTopic     = "topic"
)

// SuggestionDTO is the suggestion submission body.
type SuggestionDTO struct {
	Email       string `json:"email"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
