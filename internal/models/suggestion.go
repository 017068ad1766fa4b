package models

// EventTypeSuggestionModel is a free-text proposal for a new event-type
// option. Append-only, no uniqueness, reviewed manually.
type EventTypeSuggestionModel struct {
	Base
	Email         string  `json:"email"          gorm:"not null"`
	SuggestedType string  `json:"suggested_type" gorm:"not null"`
	Description   *string `json:"description"`
}

func (EventTypeSuggestionModel) TableName() string { return "event_type_suggestions" }

// TopicSuggestionModel is a free-text proposal for a new topic option.
type TopicSuggestionModel struct {
	Base
	Email          string  `json:"email"           gorm:"not null"`
	SuggestedTopic string  `json:"suggested_topic" gorm:"not null"`
	Description    *string `json:"description"`
}

func (TopicSuggestionModel) TableName() string { return "topic_suggestions" }
