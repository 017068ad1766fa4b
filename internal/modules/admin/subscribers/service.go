package subscribers

import (
	"github.com/mwanjeronie/mailinglist/internal/models"
	"github.com/mwanjeronie/mailinglist/internal/pkg/apierr"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// ListAll returns every subscriber row, newest first. No pagination and no
// server-side filtering of the JSON listing; the dashboard filters over the
// full set.
func (s *Service) ListAll() ([]models.SubscriberModel, error) {
	var subs []models.SubscriberModel
	if err := s.db.Order("created_at DESC").Find(&subs).Error; err != nil {
		return nil, apierr.Persistence("Failed to fetch subscribers", err)
	}
	return subs, nil
}
