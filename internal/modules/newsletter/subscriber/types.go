package subscriber

// SubscribeDTO is the subscription submission body.
type SubscribeDTO struct {
	Email      string   `json:"email"`
	EventTypes []string `json:"event_types"`
	Topics     []string `json:"topics"`

	// LegacyEventTypes accepts the camelCase key sent by the first frontend.
	LegacyEventTypes []string `json:"eventTypes"`
}

// ResolvedEventTypes returns event_types, falling back to the legacy key.
func (d *SubscribeDTO) ResolvedEventTypes() []string {
	if len(d.EventTypes) > 0 {
		return d.EventTypes
	}
	return d.LegacyEventTypes
}

// UnsubscribeDTO is the unsubscribe submission body.
type UnsubscribeDTO struct {
	Token string `json:"token"`
}
