package subscriber

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

func TestSubscribe(t *testing.T) {
	svc := NewService(newTestDB(t))

	sub, err := svc.Subscribe(&SubscribeDTO{
		Email:      "a@b.com",
		EventTypes: []string{"Workshops"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, sub.ID)
	assert.Equal(t, "a@b.com", sub.Email)
	assert.Equal(t, models.StringArray{"Workshops"}, sub.EventTypes)
	assert.Empty(t, sub.Topics)
	assert.True(t, sub.IsActive)
	assert.Len(t, sub.UnsubscribeToken, 64) // 256 bits hex-encoded
}

func TestSubscribeTopicsOnly(t *testing.T) {
	svc := NewService(newTestDB(t))

	sub, err := svc.Subscribe(&SubscribeDTO{
		Email:  "topics@b.com",
		Topics: []string{"Design", "AI & ML"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.StringArray{"Design", "AI & ML"}, sub.Topics)
}

func TestSubscribeLegacyEventTypesKey(t *testing.T) {
	svc := NewService(newTestDB(t))

	sub, err := svc.Subscribe(&SubscribeDTO{
		Email:            "legacy@b.com",
		LegacyEventTypes: []string{"Summits"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.StringArray{"Summits"}, sub.EventTypes)
}

func TestSubscribeInvalidEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	for _, email := range []string{"", "nope", "a@b", "a b@c.com"} {
		_, err := svc.Subscribe(&SubscribeDTO{Email: email, Topics: []string{"Design"}})
		requireKind(t, err, apierr.KindValidation)
	}

	var count int64
	require.NoError(t, db.Model(&models.SubscriberModel{}).Count(&count).Error)
	assert.Zero(t, count, "rejected submissions must not write rows")
}

func TestSubscribeNoSelection(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	_, err := svc.Subscribe(&SubscribeDTO{Email: "a@b.com"})
	requireKind(t, err, apierr.KindValidation)

	var count int64
	require.NoError(t, db.Model(&models.SubscriberModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSubscribeDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	_, err := svc.Subscribe(&SubscribeDTO{Email: "a@b.com", Topics: []string{"Design"}})
	require.NoError(t, err)

	_, err = svc.Subscribe(&SubscribeDTO{Email: "a@b.com", Topics: []string{"Product"}})
	requireKind(t, err, apierr.KindDuplicate)

	var count int64
	require.NoError(t, db.Model(&models.SubscriberModel{}).Where("email = ?", "a@b.com").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUnsubscribe(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	sub, err := svc.Subscribe(&SubscribeDTO{Email: "a@b.com", EventTypes: []string{"Workshops"}})
	require.NoError(t, err)

	require.NoError(t, svc.Unsubscribe(sub.UnsubscribeToken))

	var got models.SubscriberModel
	require.NoError(t, db.First(&got, "id = ?", sub.ID).Error)
	assert.False(t, got.IsActive)

	// idempotent: already-inactive rows unsubscribe again without error
	require.NoError(t, svc.Unsubscribe(sub.UnsubscribeToken))
}

func TestUnsubscribeUnknownToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	sub, err := svc.Subscribe(&SubscribeDTO{Email: "a@b.com", EventTypes: []string{"Workshops"}})
	require.NoError(t, err)

	err = svc.Unsubscribe("deadbeef")
	requireKind(t, err, apierr.KindNotFound)

	var got models.SubscriberModel
	require.NoError(t, db.First(&got, "id = ?", sub.ID).Error)
	assert.True(t, got.IsActive, "unknown token must not modify any row")
}

func TestUnsubscribeEmptyToken(t *testing.T) {
	svc := NewService(newTestDB(t))
	requireKind(t, svc.Unsubscribe(""), apierr.KindValidation)
	requireKind(t, svc.Unsubscribe("   "), apierr.KindValidation)
}
