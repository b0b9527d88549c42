package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// parseObjectID converts a hex ID. A malformed ID can never match a document, so callers treat
// the failure as not found.
func parseObjectID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}

	return oid, true
}

func isDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

// now returns the current time truncated to what BSON datetimes can store.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func hexIDs(ids []primitive.ObjectID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Hex())
	}

	return out
}

func objectIDs(ids []string) []primitive.ObjectID {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, ok := parseObjectID(id); ok {
			out = append(out, oid)
		}
	}

	return out
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}

func newObjectID() primitive.ObjectID {
	return primitive.NewObjectID()
}
