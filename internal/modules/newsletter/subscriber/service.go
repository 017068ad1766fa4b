package subscriber

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/mwanjeronie/mailinglist/internal/models"
	"github.com/mwanjeronie/mailinglist/internal/pkg/apierr"
	"github.com/mwanjeronie/mailinglist/internal/pkg/validate"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Subscribe validates the submission, mints an unsubscribe token and inserts
// the row. Email uniqueness is left entirely to the store's unique index.
func (s *Service) Subscribe(dto *SubscribeDTO) (*models.SubscriberModel, error) {
	email := strings.TrimSpace(dto.Email)
	if !validate.Email(email) {
		return nil, apierr.Validation("Invalid email address")
	}
	eventTypes := dto.ResolvedEventTypes()
	if !validate.AnySelection(eventTypes, dto.Topics) {
		return nil, apierr.Validation("Please select at least one event type or topic")
	}

	// 256 bits of entropy; collisions are not checked, they are just
	// overwhelmingly unlikely.
	token := make([]byte, 32)
	if _, err := rand.Read(token); err != nil {
		return nil, apierr.Persistence("Failed to subscribe to newsletter", err)
	}

	sub := models.SubscriberModel{
		Email:            email,
		EventTypes:       models.StringArray(eventTypes),
		Topics:           models.StringArray(dto.Topics),
		UnsubscribeToken: hex.EncodeToString(token),
		IsActive:         true,
	}
	if err := s.db.Create(&sub).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, apierr.Duplicate("This email is already subscribed")
		}
		return nil, apierr.Persistence("Failed to subscribe to newsletter", err)
	}
	return &sub, nil
}

// Unsubscribe looks the row up by token and marks it inactive. Idempotent: a
// token whose row is already inactive still resolves and succeeds again.
// Tokens never expire, so the only failure beyond store errors is an unknown
// token.
func (s *Service) Unsubscribe(token string) error {
	if strings.TrimSpace(token) == "" {
		return apierr.Validation("Invalid unsubscribe token")
	}

	var sub models.SubscriberModel
	if err := s.db.Where("unsubscribe_token = ?", token).First(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierr.NotFound("Invalid or expired unsubscribe link")
		}
		return apierr.Persistence("Failed to unsubscribe", err)
	}

	if err := s.db.Model(&sub).Update("is_active", false).Error; err != nil {
		return apierr.Persistence("Failed to unsubscribe", err)
	}
	return nil
}

// isDuplicateKey detects unique-constraint violations across the translated
// gorm error and the raw MySQL error number.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
