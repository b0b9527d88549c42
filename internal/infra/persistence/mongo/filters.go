package mongo

import (
	"time"

	"github.com/aimericdrk/ai-fall-guard/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func byIDFilter(id primitive.ObjectID) bson.D {
	return bson.D{{Key: "_id", Value: id}}
}

func byUserFilter(userID primitive.ObjectID) bson.D {
	return bson.D{{Key: "userId", Value: userID}}
}

// acknowledgedBeforeFilter matches only acknowledged documents, whatever the cutoff.
func acknowledgedBeforeFilter(cutoff time.Time) bson.D {
	return bson.D{
		{Key: "createdAt", Value: bson.D{{Key: "$lt", Value: cutoff}}},
		{Key: "isAcknowledged", Value: true},
	}
}

func unreadFilter(userID primitive.ObjectID) bson.D {
	statuses := make(bson.A, 0, len(entity.UnreadStatuses))
	for _, status := range entity.UnreadStatuses {
		statuses = append(statuses, string(status))
	}

	return bson.D{
		{Key: "userId", Value: userID},
		{Key: "status", Value: bson.D{{Key: "$in", Value: statuses}}},
		{Key: "isAcknowledged", Value: false},
	}
}

// statsPipeline groups a user's events created since the given time into one summary document.
func statsPipeline(userID primitive.ObjectID, since time.Time) mongo.Pipeline {
	countIf := func(field string) bson.D {
		return bson.D{{Key: "$sum", Value: bson.D{{Key: "$cond", Value: bson.A{"$" + field, 1, 0}}}}}
	}

	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "userId", Value: userID},
			{Key: "createdAt", Value: bson.D{{Key: "$gte", Value: since}}},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalFalls", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "acknowledgedFalls", Value: countIf("isAcknowledged")},
			{Key: "falseAlarms", Value: countIf("isFalseAlarm")},
			{Key: "avgConfidence", Value: bson.D{{Key: "$avg", Value: "$confidence"}}},
			{Key: "maxConfidence", Value: bson.D{{Key: "$max", Value: "$confidence"}}},
			{Key: "minConfidence", Value: bson.D{{Key: "$min", Value: "$confidence"}}},
		}}},
	}
}

// setWithTimestamp wraps fields in a $set that also bumps updatedAt.
func setWithTimestamp(at time.Time, fields bson.D) bson.D {
	fields = append(fields, bson.E{Key: "updatedAt", Value: at})

	return bson.D{{Key: "$set", Value: fields}}
}
