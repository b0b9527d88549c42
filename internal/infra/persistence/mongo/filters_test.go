package mongo

import (
	"testing"
	"time"

	"github.com/aimericdrk/ai-fall-guard/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAcknowledgedBeforeFilter(t *testing.T) {
	cutoff := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	filter := acknowledgedBeforeFilter(cutoff)

	assert.Equal(t, bson.D{
		{Key: "createdAt", Value: bson.D{{Key: "$lt", Value: cutoff}}},
		{Key: "isAcknowledged", Value: true},
	}, filter)
}

func TestUnreadFilter(t *testing.T) {
	userID := primitive.NewObjectID()

	filter := unreadFilter(userID)

	require.Len(t, filter, 3)
	assert.Equal(t, bson.E{Key: "userId", Value: userID}, filter[0])
	assert.Equal(t, bson.E{Key: "status", Value: bson.D{{Key: "$in", Value: bson.A{"PENDING", "SENT", "DELIVERED"}}}}, filter[1])
	assert.Equal(t, bson.E{Key: "isAcknowledged", Value: false}, filter[2])
}

func TestStatsPipeline(t *testing.T) {
	userID := primitive.NewObjectID()
	since := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	pipeline := statsPipeline(userID, since)

	require.Len(t, pipeline, 2)
	assert.Equal(t, bson.D{{Key: "$match", Value: bson.D{
		{Key: "userId", Value: userID},
		{Key: "createdAt", Value: bson.D{{Key: "$gte", Value: since}}},
	}}}, pipeline[0])

	group, ok := pipeline[1].Map()["$group"].(bson.D)
	require.True(t, ok)
	fields := group.Map()
	assert.Nil(t, fields["_id"])
	assert.Equal(t, bson.D{{Key: "$sum", Value: 1}}, fields["totalFalls"])
	assert.Equal(t, bson.D{{Key: "$sum", Value: bson.D{{Key: "$cond", Value: bson.A{"$isFalseAlarm", 1, 0}}}}}, fields["falseAlarms"])
	assert.Equal(t, bson.D{{Key: "$min", Value: "$confidence"}}, fields["minConfidence"])
}

func TestSetWithTimestamp(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	update := setWithTimestamp(at, bson.D{{Key: "status", Value: "READ"}})

	assert.Equal(t, bson.D{{Key: "$set", Value: bson.D{
		{Key: "status", Value: "READ"},
		{Key: "updatedAt", Value: at},
	}}}, update)
}

func TestUserUpdateFields(t *testing.T) {
	first := "Ada"
	enabled := false
	contact := primitive.NewObjectID()

	fields := userUpdateFields(entity.UserUpdate{
		FirstName:            &first,
		NotificationsEnabled: &enabled,
		EmergencyContacts:    []string{contact.Hex(), "not-an-id"},
	})

	assert.Equal(t, bson.D{
		{Key: "firstName", Value: "Ada"},
		{Key: "notificationsEnabled", Value: false},
		{Key: "emergencyContacts", Value: []primitive.ObjectID{contact}},
	}, fields)
}

func TestGeoPoint(t *testing.T) {
	assert.Nil(t, geoPoint(nil))

	point := geoPoint(&entity.GeoLocation{Latitude: 48.85, Longitude: 2.35})

	require.NotNil(t, point)
	assert.Equal(t, "Point", point.Type)
	assert.Equal(t, []float64{2.35, 48.85}, point.Coordinates)
}

func TestParseObjectID(t *testing.T) {
	oid := primitive.NewObjectID()

	got, ok := parseObjectID(oid.Hex())
	assert.True(t, ok)
	assert.Equal(t, oid, got)

	_, ok = parseObjectID("123")
	assert.False(t, ok)
}
