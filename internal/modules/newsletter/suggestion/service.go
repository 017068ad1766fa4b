package suggestion

import (
	"strings"

	"github.com/mwanjeronie/mailinglist/internal/models"
	"github.com/mwanjeronie/mailinglist/internal/pkg/apierr"
	"github.com/mwanjeronie/mailinglist/internal/pkg/validate"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Submit validates the suggestion and appends it to the table selected by
// dto.Type. No duplicate detection; review happens manually.
func (s *Service) Submit(dto *SuggestionDTO) error {
	email := strings.TrimSpace(dto.Email)
	if !validate.Email(email) {
		return apierr.Validation("Invalid email address")
	}
	if !validate.NonBlank(dto.Name) {
		return apierr.Validation("Please provide a name for your suggestion")
	}

	var description *string
	if validate.NonBlank(dto.Description) {
		description = &dto.Description
	}

	var err error
	switch dto.Type {
	case TypeEventType:
		err = s.db.Create(&models.EventTypeSuggestionModel{
			Email:         email,
			SuggestedType: dto.Name,
			Description:   description,
		}).Error
	case TypeTopic:
		err = s.db.Create(&models.TopicSuggestionModel{
			Email:          email,
			SuggestedTopic: dto.Name,
			Description:    description,
		}).Error
	default:
		return apierr.Validation("Invalid suggestion type")
	}

	if err != nil {
		return apierr.Persistence("Failed to submit suggestion", err)
	}
	return nil
}
