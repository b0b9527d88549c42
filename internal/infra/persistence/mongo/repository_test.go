package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/aimericdrk/ai-fall-guard/internal/domain/entity"
	"github.com/aimericdrk/ai-fall-guard/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestUserRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("FindByID decodes the document", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: oid},
			{Key: "email", Value: "ada@example.com"},
			{Key: "password", Value: "hash"},
			{Key: "firstName", Value: "Ada"},
			{Key: "isActive", Value: true},
		}))

		user, err := NewUserRepository(mt.DB).FindByID(context.Background(), oid.Hex())

		require.NoError(mt, err)
		assert.Equal(mt, oid.Hex(), user.ID)
		assert.Equal(mt, "ada@example.com", user.Email)
		assert.Equal(mt, "hash", user.PasswordHash)
		assert.True(mt, user.IsActive)
		assert.Equal(mt, []string{}, user.DeviceTokens)
	})

	mt.Run("FindByID returns not found for an empty cursor", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.users", mtest.FirstBatch))

		_, err := NewUserRepository(mt.DB).FindByID(context.Background(), primitive.NewObjectID().Hex())

		assert.ErrorIs(mt, err, repository.ErrUserNotFound)
	})

	mt.Run("FindByID rejects malformed ids without querying", func(mt *mtest.T) {
		_, err := NewUserRepository(mt.DB).FindByID(context.Background(), "nope")

		assert.ErrorIs(mt, err, repository.ErrUserNotFound)
	})

	mt.Run("Create fills the id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		user := entity.NewUser("Ada@Example.com ", "hash", "Ada", "Lovelace", "")

		err := NewUserRepository(mt.DB).Create(context.Background(), user)

		require.NoError(mt, err)
		assert.NotEmpty(mt, user.ID)
		assert.Equal(mt, "ada@example.com", user.Email)
		assert.False(mt, user.CreatedAt.IsZero())
	})

	mt.Run("Create maps duplicate keys", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error",
		}))

		err := NewUserRepository(mt.DB).Create(context.Background(), entity.NewUser("a@b.c", "hash", "A", "B", ""))

		assert.ErrorIs(mt, err, repository.ErrUserAlreadyExists)
	})

	mt.Run("AddDeviceToken returns the updated user", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: bson.D{
				{Key: "_id", Value: oid},
				{Key: "email", Value: "ada@example.com"},
				{Key: "deviceTokens", Value: bson.A{"tok-1"}},
			}},
		})

		user, err := NewUserRepository(mt.DB).AddDeviceToken(context.Background(), oid.Hex(), "tok-1")

		require.NoError(mt, err)
		assert.Equal(mt, []string{"tok-1"}, user.DeviceTokens)
	})

	mt.Run("Delete reports missing users", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		err := NewUserRepository(mt.DB).Delete(context.Background(), primitive.NewObjectID().Hex())

		assert.ErrorIs(mt, err, repository.ErrUserNotFound)
	})
}

func TestFallEventRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("StatsSince returns zero stats when nothing matches", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.fallevents", mtest.FirstBatch))

		stats, err := NewFallEventRepository(mt.DB).StatsSince(context.Background(), primitive.NewObjectID().Hex(), time.Now())

		require.NoError(mt, err)
		assert.Equal(mt, &entity.FallStats{}, stats)
	})

	mt.Run("StatsSince decodes the group document", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.fallevents", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalFalls", Value: int32(3)},
			{Key: "acknowledgedFalls", Value: int32(2)},
			{Key: "falseAlarms", Value: int32(1)},
			{Key: "avgConfidence", Value: 0.8},
			{Key: "maxConfidence", Value: 0.95},
			{Key: "minConfidence", Value: 0.6},
		}))

		stats, err := NewFallEventRepository(mt.DB).StatsSince(context.Background(), primitive.NewObjectID().Hex(), time.Now())

		require.NoError(mt, err)
		assert.Equal(mt, &entity.FallStats{
			TotalFalls:        3,
			AcknowledgedFalls: 2,
			FalseAlarms:       1,
			AvgConfidence:     0.8,
			MaxConfidence:     0.95,
			MinConfidence:     0.6,
		}, stats)
	})

	mt.Run("Acknowledge returns not found when nothing matched", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "value", Value: nil}})

		_, err := NewFallEventRepository(mt.DB).Acknowledge(context.Background(), primitive.NewObjectID().Hex(), entity.FallAcknowledgement{
			AcknowledgedAt: time.Now(),
		})

		assert.ErrorIs(mt, err, repository.ErrFallEventNotFound)
	})

	mt.Run("DeleteAcknowledgedBefore returns the deleted count", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 4}))

		deleted, err := NewFallEventRepository(mt.DB).DeleteAcknowledgedBefore(context.Background(), time.Now())

		require.NoError(mt, err)
		assert.Equal(mt, int64(4), deleted)
	})
}

func TestNotificationRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("Create defaults the status to pending", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		notification := &entity.Notification{
			UserID: primitive.NewObjectID().Hex(),
			Type:   entity.NotificationTypeFallDetected,
			Title:  "Fall",
		}

		err := NewNotificationRepository(mt.DB).Create(context.Background(), notification)

		require.NoError(mt, err)
		assert.NotEmpty(mt, notification.ID)
		assert.Equal(mt, entity.NotificationStatusPending, notification.Status)
	})

	mt.Run("CountUnread reads the aggregated count", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.notifications", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: 1},
			{Key: "n", Value: int32(3)},
		}))

		count, err := NewNotificationRepository(mt.DB).CountUnread(context.Background(), primitive.NewObjectID().Hex())

		require.NoError(mt, err)
		assert.Equal(mt, int64(3), count)
	})

	mt.Run("MarkSent reports missing notifications", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		err := NewNotificationRepository(mt.DB).MarkSent(context.Background(), primitive.NewObjectID().Hex(), time.Now())

		assert.ErrorIs(mt, err, repository.ErrNotificationNotFound)
	})

	mt.Run("MarkRead returns the updated notification", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: bson.D{
				{Key: "_id", Value: oid},
				{Key: "status", Value: "READ"},
				{Key: "data", Value: bson.D{{Key: "fallEventId", Value: "abc"}}},
			}},
		})

		notification, err := NewNotificationRepository(mt.DB).MarkRead(context.Background(), oid.Hex(), time.Now())

		require.NoError(mt, err)
		assert.Equal(mt, entity.NotificationStatusRead, notification.Status)
		assert.Equal(mt, "abc", notification.Data["fallEventId"])
	})
}
