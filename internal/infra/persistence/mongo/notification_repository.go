package mongo

import (
	"context"
	"time"

	"github.com/aimericdrk/ai-fall-guard/internal/domain/entity"
	domainerrors "github.com/aimericdrk/ai-fall-guard/internal/domain/errors"
	"github.com/aimericdrk/ai-fall-guard/internal/domain/repository"
	"github.com/aimericdrk/ai-fall-guard/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type notificationRepository struct {
	coll *mongo.Collection
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *mongo.Database) repository.NotificationRepository {
	return &notificationRepository{
		coll: db.Collection(model.NotificationModel{}.CollectionName()),
	}
}

func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	userID, ok := parseObjectID(notification.UserID)
	if !ok {
		return repository.ErrUserNotFound
	}

	notificationM := fromNotificationDomain(notification)
	notificationM.ID = newObjectID()
	notificationM.UserID = userID
	notificationM.CreatedAt = now()
	notificationM.UpdatedAt = notificationM.CreatedAt

	if _, err := repo.coll.InsertOne(ctx, notificationM); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.ID = notificationM.ID.Hex()
	notification.Status = entity.NotificationStatus(notificationM.Status)
	notification.CreatedAt = notificationM.CreatedAt
	notification.UpdatedAt = notificationM.UpdatedAt

	return nil
}

func (repo *notificationRepository) FindByID(ctx context.Context, id string) (*entity.Notification, error) {
	oid, ok := parseObjectID(id)
	if !ok {
		return nil, repository.ErrNotificationNotFound
	}

	var notificationM model.NotificationModel
	if err := repo.coll.FindOne(ctx, byIDFilter(oid)).Decode(&notificationM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification")
	}

	return toNotificationDomain(&notificationM), nil
}

func (repo *notificationRepository) FindByUser(ctx context.Context, userID string, limit int) ([]*entity.Notification, error) {
	oid, ok := parseObjectID(userID)
	if !ok {
		return []*entity.Notification{}, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := repo.coll.Find(ctx, byUserFilter(oid), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	var notificationModels []*model.NotificationModel
	if err := cursor.All(ctx, &notificationModels); err != nil {
		return nil, errors.Wrap(err, "failed to decode notifications")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

func (repo *notificationRepository) MarkSent(ctx context.Context, id string, sentAt time.Time) error {
	update := setWithTimestamp(now(), bson.D{
		{Key: "status", Value: string(entity.NotificationStatusSent)},
		{Key: "sentAt", Value: sentAt.UTC().Truncate(time.Millisecond)},
	})

	return repo.updateOne(ctx, id, update)
}

func (repo *notificationRepository) IncrementRetry(ctx context.Context, id string) error {
	update := bson.D{
		{Key: "$inc", Value: bson.D{{Key: "retryCount", Value: 1}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: now()}}},
	}

	return repo.updateOne(ctx, id, update)
}

func (repo *notificationRepository) Acknowledge(ctx context.Context, id string, at time.Time) (*entity.Notification, error) {
	return repo.findOneAndUpdate(ctx, id, setWithTimestamp(now(), bson.D{
		{Key: "isAcknowledged", Value: true},
		{Key: "acknowledgedAt", Value: at.UTC().Truncate(time.Millisecond)},
		{Key: "status", Value: string(entity.NotificationStatusAcknowledged)},
	}))
}

func (repo *notificationRepository) MarkRead(ctx context.Context, id string, at time.Time) (*entity.Notification, error) {
	return repo.findOneAndUpdate(ctx, id, setWithTimestamp(now(), bson.D{
		{Key: "readAt", Value: at.UTC().Truncate(time.Millisecond)},
		{Key: "status", Value: string(entity.NotificationStatusRead)},
	}))
}

func (repo *notificationRepository) CountUnread(ctx context.Context, userID string) (int64, error) {
	oid, ok := parseObjectID(userID)
	if !ok {
		return 0, nil
	}

	count, err := repo.coll.CountDocuments(ctx, unreadFilter(oid))
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

func (repo *notificationRepository) DeleteAcknowledgedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := repo.coll.DeleteMany(ctx, acknowledgedBeforeFilter(cutoff.UTC()))
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to delete notifications")
	}

	return result.DeletedCount, nil
}

func (repo *notificationRepository) updateOne(ctx context.Context, id string, update bson.D) error {
	oid, ok := parseObjectID(id)
	if !ok {
		return repository.ErrNotificationNotFound
	}

	result, err := repo.coll.UpdateOne(ctx, byIDFilter(oid), update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update notification")
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

func (repo *notificationRepository) findOneAndUpdate(ctx context.Context, id string, update bson.D) (*entity.Notification, error) {
	oid, ok := parseObjectID(id)
	if !ok {
		return nil, repository.ErrNotificationNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var notificationM model.NotificationModel
	if err := repo.coll.FindOneAndUpdate(ctx, byIDFilter(oid), update, opts).Decode(&notificationM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update notification")
	}

	return toNotificationDomain(&notificationM), nil
}

func fromNotificationDomain(notification *entity.Notification) *model.NotificationModel {
	status := notification.Status
	if status == "" {
		status = entity.NotificationStatusPending
	}
	data := bson.M(notification.Data)
	if data == nil {
		data = bson.M{}
	}

	return &model.NotificationModel{
		Type:           string(notification.Type),
		Title:          notification.Title,
		Message:        notification.Message,
		Data:           data,
		Status:         string(status),
		IsEmergency:    notification.IsEmergency,
		RetryCount:     notification.RetryCount,
		DeviceTokens:   nonNilStrings(notification.DeviceTokens),
		SentAt:         notification.SentAt,
		DeliveredAt:    notification.DeliveredAt,
		ReadAt:         notification.ReadAt,
		IsAcknowledged: notification.IsAcknowledged,
		AcknowledgedAt: notification.AcknowledgedAt,
		CreatedAt:      notification.CreatedAt,
		UpdatedAt:      notification.UpdatedAt,
	}
}

func toNotificationDomain(notificationM *model.NotificationModel) *entity.Notification {
	data := map[string]any(notificationM.Data)
	if data == nil {
		data = map[string]any{}
	}

	return &entity.Notification{
		ID:             notificationM.ID.Hex(),
		UserID:         notificationM.UserID.Hex(),
		Type:           entity.NotificationType(notificationM.Type),
		Title:          notificationM.Title,
		Message:        notificationM.Message,
		Data:           data,
		Status:         entity.NotificationStatus(notificationM.Status),
		IsEmergency:    notificationM.IsEmergency,
		RetryCount:     notificationM.RetryCount,
		DeviceTokens:   nonNilStrings(notificationM.DeviceTokens),
		SentAt:         notificationM.SentAt,
		DeliveredAt:    notificationM.DeliveredAt,
		ReadAt:         notificationM.ReadAt,
		IsAcknowledged: notificationM.IsAcknowledged,
		AcknowledgedAt: notificationM.AcknowledgedAt,
		CreatedAt:      notificationM.CreatedAt,
		UpdatedAt:      notificationM.UpdatedAt,
	}
}
