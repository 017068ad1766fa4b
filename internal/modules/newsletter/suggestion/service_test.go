package suggestion

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/mwanjeronie/mailinglist/internal/database"
	"github.com/mwanjeronie/mailinglist/internal/models"
	"github.com/mwanjeronie/mailinglist/internal/pkg/apierr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func requireKind(t *testing.T, err error, kind apierr.Kind) {
	t.Helper()
	require.Error(t, err)
	apiErr, ok := err.(*apierr.Error)
	require.True(t, ok, "expected *apierr.Error, got %T", err)
	assert.Equal(t, kind, apiErr.Kind)
}

func TestSubmitEventTypeSuggestion(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	err := svc.Submit(&SuggestionDTO{
		Email:       "a@b.com",
		Type:        TypeEventType,
		Name:        "Hackathons",
		Description: "Weekend coding events",
	})
	require.NoError(t, err)

	var rows []models.EventTypeSuggestionModel
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "Hackathons", rows[0].SuggestedType)
	require.NotNil(t, rows[0].Description)
	assert.Equal(t, "Weekend coding events", *rows[0].Description)

	// the other table stays untouched
	var topicCount int64
	require.NoError(t, db.Model(&models.TopicSuggestionModel{}).Count(&topicCount).Error)
	assert.Zero(t, topicCount)
}

func TestSubmitTopicSuggestion(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	err := svc.Submit(&SuggestionDTO{Email: "a@b.com", Type: TypeTopic, Name: "Fintech"})
	require.NoError(t, err)

	var rows []models.TopicSuggestionModel
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "Fintech", rows[0].SuggestedTopic)
	assert.Nil(t, rows[0].Description)

	var eventCount int64
	require.NoError(t, db.Model(&models.EventTypeSuggestionModel{}).Count(&eventCount).Error)
	assert.Zero(t, eventCount)
}

func TestSubmitNoDuplicateDetection(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	dto := &SuggestionDTO{Email: "a@b.com", Type: TypeTopic, Name: "Fintech"}
	require.NoError(t, svc.Submit(dto))
	require.NoError(t, svc.Submit(dto))

	var count int64
	require.NoError(t, db.Model(&models.TopicSuggestionModel{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestSubmitValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	requireKind(t, svc.Submit(&SuggestionDTO{Email: "bad", Type: TypeTopic, Name: "x"}), apierr.KindValidation)
	requireKind(t, svc.Submit(&SuggestionDTO{Email: "a@b.com", Type: TypeTopic, Name: "   "}), apierr.KindValidation)
	requireKind(t, svc.Submit(&SuggestionDTO{Email: "a@b.com", Type: "category", Name: "x"}), apierr.KindValidation)

	var eventCount, topicCount int64
	require.NoError(t, db.Model(&models.EventTypeSuggestionModel{}).Count(&eventCount).Error)
	require.NoError(t, db.Model(&models.TopicSuggestionModel{}).Count(&topicCount).Error)
	assert.Zero(t, eventCount)
	assert.Zero(t, topicCount)
}
