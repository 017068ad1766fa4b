package models

// SubscriberModel is one newsletter subscription.
//
// Unsubscribing flips IsActive to false instead of deleting the row, so
// history survives. UnsubscribeToken is assigned once at creation and never
// rotated.
type SubscriberModel struct {
	Base
	Email            string      `json:"email"             gorm:"uniqueIndex;not null"`
	EventTypes       StringArray `json:"event_types"       gorm:"type:text"`
	Topics           StringArray `json:"topics"            gorm:"type:text"`
	UnsubscribeToken string      `json:"unsubscribe_token" gorm:"uniqueIndex;not null"`
	IsActive         bool        `json:"is_active"         gorm:"default:true"`
}

func (SubscriberModel) TableName() string { return "newsletter_subscribers" }
