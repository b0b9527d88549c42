package mongo

import (
	"context"
	"time"

	"github.com/aimericdrk/ai-fall-guard/internal/domain/entity"
	domainerrors "github.com/aimericdrk/ai-fall-guard/internal/domain/errors"
	"github.com/aimericdrk/ai-fall-guard/internal/domain/repository"
	"github.com/aimericdrk/ai-fall-guard/internal/infra/persistence/model"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type fallEventRepository struct {
	coll *mongo.Collection
}

// NewFallEventRepository is the constructor for fallEventRepository.
func NewFallEventRepository(db *mongo.Database) repository.FallEventRepository {
	return &fallEventRepository{
		coll: db.Collection(model.FallEventModel{}.CollectionName()),
	}
}

func (repo *fallEventRepository) Create(ctx context.Context, event *entity.FallEvent) error {
	userID, ok := parseObjectID(event.UserID)
	if !ok {
		return repository.ErrUserNotFound
	}

	eventM := fromFallEventDomain(event)
	eventM.ID = newObjectID()
	eventM.UserID = userID
	eventM.CreatedAt = now()
	eventM.UpdatedAt = eventM.CreatedAt

	if _, err := repo.coll.InsertOne(ctx, eventM); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create fall event")
	}

	event.ID = eventM.ID.Hex()
	event.CreatedAt = eventM.CreatedAt
	event.UpdatedAt = eventM.UpdatedAt

	return nil
}

func (repo *fallEventRepository) FindByID(ctx context.Context, id string) (*entity.FallEvent, error) {
	oid, ok := parseObjectID(id)
	if !ok {
		return nil, repository.ErrFallEventNotFound
	}

	var eventM model.FallEventModel
	if err := repo.coll.FindOne(ctx, byIDFilter(oid)).Decode(&eventM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrFallEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find fall event")
	}

	return toFallEventDomain(&eventM), nil
}

func (repo *fallEventRepository) FindByUser(ctx context.Context, userID string, limit int) ([]*entity.FallEvent, error) {
	oid, ok := parseObjectID(userID)
	if !ok {
		return []*entity.FallEvent{}, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := repo.coll.Find(ctx, byUserFilter(oid), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list fall events")
	}

	var eventModels []*model.FallEventModel
	if err := cursor.All(ctx, &eventModels); err != nil {
		return nil, errors.Wrap(err, "failed to decode fall events")
	}

	events := make([]*entity.FallEvent, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, toFallEventDomain(eventM))
	}

	return events, nil
}

func (repo *fallEventRepository) Acknowledge(
	ctx context.Context,
	id string,
	ack entity.FallAcknowledgement,
) (*entity.FallEvent, error) {
	oid, ok := parseObjectID(id)
	if !ok {
		return nil, repository.ErrFallEventNotFound
	}

	ackAt := ack.AcknowledgedAt.UTC().Truncate(time.Millisecond)
	update := setWithTimestamp(now(), bson.D{
		{Key: "isAcknowledged", Value: true},
		{Key: "acknowledgedAt", Value: ackAt},
		{Key: "isFalseAlarm", Value: ack.IsFalseAlarm},
		{Key: "falseAlarmReason", Value: ack.FalseAlarmReason},
	})
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var eventM model.FallEventModel
	if err := repo.coll.FindOneAndUpdate(ctx, byIDFilter(oid), update, opts).Decode(&eventM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrFallEventNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to acknowledge fall event")
	}

	return toFallEventDomain(&eventM), nil
}

func (repo *fallEventRepository) StatsSince(ctx context.Context, userID string, since time.Time) (*entity.FallStats, error) {
	oid, ok := parseObjectID(userID)
	if !ok {
		return &entity.FallStats{}, nil
	}

	cursor, err := repo.coll.Aggregate(ctx, statsPipeline(oid, since.UTC()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate fall stats")
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		if err := cursor.Err(); err != nil {
			return nil, errors.Wrap(err, "failed to read fall stats")
		}

		return &entity.FallStats{}, nil
	}

	var statsM model.FallStatsModel
	if err := cursor.Decode(&statsM); err != nil {
		return nil, errors.Wrap(err, "failed to decode fall stats")
	}

	return &entity.FallStats{
		TotalFalls:        statsM.TotalFalls,
		AcknowledgedFalls: statsM.AcknowledgedFalls,
		FalseAlarms:       statsM.FalseAlarms,
		AvgConfidence:     statsM.AvgConfidence,
		MaxConfidence:     statsM.MaxConfidence,
		MinConfidence:     statsM.MinConfidence,
	}, nil
}

func (repo *fallEventRepository) DeleteAcknowledgedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := repo.coll.DeleteMany(ctx, acknowledgedBeforeFilter(cutoff.UTC()))
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to delete fall events")
	}

	return result.DeletedCount, nil
}

// geoPoint mirrors the location as GeoJSON so that events can be queried by area.
func geoPoint(loc *entity.GeoLocation) *model.GeoPointModel {
	if loc == nil {
		return nil
	}

	point := orb.Point{loc.Longitude, loc.Latitude}

	return &model.GeoPointModel{
		Type:        point.GeoJSONType(),
		Coordinates: []float64{point.Lon(), point.Lat()},
	}
}

func fromFallEventDomain(event *entity.FallEvent) *model.FallEventModel {
	eventM := &model.FallEventModel{
		Confidence:       event.Confidence,
		Angle:            event.Angle,
		Velocity:         event.Velocity,
		Landmarks:        bson.M(event.Landmarks),
		Geo:              geoPoint(event.Location),
		IsAcknowledged:   event.IsAcknowledged,
		AcknowledgedAt:   event.AcknowledgedAt,
		IsFalseAlarm:     event.IsFalseAlarm,
		FalseAlarmReason: event.FalseAlarmReason,
		ImageURLs:        nonNilStrings(event.ImageURLs),
		IsActive:         event.IsActive,
		CreatedAt:        event.CreatedAt,
		UpdatedAt:        event.UpdatedAt,
	}
	if event.Location != nil {
		eventM.Location = &model.LocationModel{
			Latitude:  event.Location.Latitude,
			Longitude: event.Location.Longitude,
		}
	}
	if event.DeviceInfo != nil {
		eventM.DeviceInfo = &model.DeviceInfoModel{
			DeviceID:   event.DeviceInfo.DeviceID,
			DeviceType: event.DeviceInfo.DeviceType,
			AppVersion: event.DeviceInfo.AppVersion,
		}
	}

	return eventM
}

func toFallEventDomain(eventM *model.FallEventModel) *entity.FallEvent {
	event := &entity.FallEvent{
		ID:               eventM.ID.Hex(),
		UserID:           eventM.UserID.Hex(),
		Confidence:       eventM.Confidence,
		Angle:            eventM.Angle,
		Velocity:         eventM.Velocity,
		Landmarks:        map[string]any(eventM.Landmarks),
		IsAcknowledged:   eventM.IsAcknowledged,
		AcknowledgedAt:   eventM.AcknowledgedAt,
		IsFalseAlarm:     eventM.IsFalseAlarm,
		FalseAlarmReason: eventM.FalseAlarmReason,
		ImageURLs:        nonNilStrings(eventM.ImageURLs),
		IsActive:         eventM.IsActive,
		CreatedAt:        eventM.CreatedAt,
		UpdatedAt:        eventM.UpdatedAt,
	}
	if eventM.Location != nil {
		event.Location = &entity.GeoLocation{
			Latitude:  eventM.Location.Latitude,
			Longitude: eventM.Location.Longitude,
		}
	}
	if eventM.DeviceInfo != nil {
		event.DeviceInfo = &entity.DeviceInfo{
			DeviceID:   eventM.DeviceInfo.DeviceID,
			DeviceType: eventM.DeviceInfo.DeviceType,
			AppVersion: eventM.DeviceInfo.AppVersion,
		}
	}

	return event
}
