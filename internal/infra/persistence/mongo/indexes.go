package mongo

import (
	"context"

	"github.com/aimericdrk/ai-fall-guard/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collectionIndexes lists the indexes every collection needs. Creating an existing index is a no-op.
func collectionIndexes() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		model.UserModel{}.CollectionName(): {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("email_unique"),
			},
		},
		model.FallEventModel{}.CollectionName(): {
			{
				Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
				Options: options.Index().SetName("user_created"),
			},
			{
				Keys:    bson.D{{Key: "isAcknowledged", Value: 1}, {Key: "createdAt", Value: 1}},
				Options: options.Index().SetName("ack_created"),
			},
			{
				Keys:    bson.D{{Key: "geo", Value: "2dsphere"}},
				Options: options.Index().SetName("geo_2dsphere"),
			},
		},
		model.NotificationModel{}.CollectionName(): {
			{
				Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
				Options: options.Index().SetName("user_created"),
			},
			{
				Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "isAcknowledged", Value: 1}, {Key: "status", Value: 1}},
				Options: options.Index().SetName("user_unread"),
			},
		},
	}
}

// EnsureIndexes creates the indexes of all collections.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for collection, indexes := range collectionIndexes() {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, indexes); err != nil {
			return errors.Wrapf(err, "failed to create indexes for %s", collection)
		}
	}

	return nil
}
