package mongo

import (
	"context"

	"github.com/aimericdrk/ai-fall-guard/internal/domain/entity"
	domainerrors "github.com/aimericdrk/ai-fall-guard/internal/domain/errors"
	"github.com/aimericdrk/ai-fall-guard/internal/domain/repository"
	"github.com/aimericdrk/ai-fall-guard/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{
		coll: db.Collection(model.UserModel{}.CollectionName()),
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	oid, ok := parseObjectID(id)
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return repo.findOne(ctx, byIDFilter(oid))
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, bson.D{{Key: "email", Value: entity.NormalizeEmail(email)}})
}

func (repo *userRepository) findOne(ctx context.Context, filter bson.D) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.coll.FindOne(ctx, filter).Decode(&userM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

// FindAll lists users, newest first.
func (repo *userRepository) FindAll(ctx context.Context, limit int) ([]*entity.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := repo.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	var userModels []*model.UserModel
	if err := cursor.All(ctx, &userModels); err != nil {
		return nil, errors.Wrap(err, "failed to decode users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// Create persists a new user entity to the storage.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	userM.ID = newObjectID()
	userM.CreatedAt = now()
	userM.UpdatedAt = userM.CreatedAt

	if _, err := repo.coll.InsertOne(ctx, userM); err != nil {
		if isDuplicateKey(err) {
			return repository.ErrUserAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID.Hex()
	user.Email = userM.Email
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update applies a partial update and returns the updated user.
func (repo *userRepository) Update(ctx context.Context, id string, update entity.UserUpdate) (*entity.User, error) {
	if update.IsEmpty() {
		return repo.FindByID(ctx, id)
	}

	return repo.findOneAndUpdate(ctx, id, setWithTimestamp(now(), userUpdateFields(update)))
}

// AddDeviceToken registers a push token once and returns the updated user.
func (repo *userRepository) AddDeviceToken(ctx context.Context, id, token string) (*entity.User, error) {
	update := bson.D{
		{Key: "$addToSet", Value: bson.D{{Key: "deviceTokens", Value: token}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: now()}}},
	}

	return repo.findOneAndUpdate(ctx, id, update)
}

// RemoveDeviceToken unregisters a push token and returns the updated user.
func (repo *userRepository) RemoveDeviceToken(ctx context.Context, id, token string) (*entity.User, error) {
	update := bson.D{
		{Key: "$pull", Value: bson.D{{Key: "deviceTokens", Value: token}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: now()}}},
	}

	return repo.findOneAndUpdate(ctx, id, update)
}

// Delete removes the user.
func (repo *userRepository) Delete(ctx context.Context, id string) error {
	oid, ok := parseObjectID(id)
	if !ok {
		return repository.ErrUserNotFound
	}

	result, err := repo.coll.DeleteOne(ctx, byIDFilter(oid))
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete user")
	}
	if result.DeletedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func (repo *userRepository) findOneAndUpdate(ctx context.Context, id string, update bson.D) (*entity.User, error) {
	oid, ok := parseObjectID(id)
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var userM model.UserModel
	if err := repo.coll.FindOneAndUpdate(ctx, byIDFilter(oid), update, opts).Decode(&userM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	return toUserDomain(&userM), nil
}

func userUpdateFields(update entity.UserUpdate) bson.D {
	var fields bson.D
	if update.FirstName != nil {
		fields = append(fields, bson.E{Key: "firstName", Value: *update.FirstName})
	}
	if update.LastName != nil {
		fields = append(fields, bson.E{Key: "lastName", Value: *update.LastName})
	}
	if update.PhoneNumber != nil {
		fields = append(fields, bson.E{Key: "phoneNumber", Value: *update.PhoneNumber})
	}
	if update.PasswordHash != nil {
		fields = append(fields, bson.E{Key: "password", Value: *update.PasswordHash})
	}
	if update.FallDetectionEnabled != nil {
		fields = append(fields, bson.E{Key: "fallDetectionEnabled", Value: *update.FallDetectionEnabled})
	}
	if update.NotificationsEnabled != nil {
		fields = append(fields, bson.E{Key: "notificationsEnabled", Value: *update.NotificationsEnabled})
	}
	if update.EmergencyContacts != nil {
		fields = append(fields, bson.E{Key: "emergencyContacts", Value: objectIDs(update.EmergencyContacts)})
	}

	return fields
}

func fromUserDomain(user *entity.User) *model.UserModel {
	userM := &model.UserModel{
		Email:                entity.NormalizeEmail(user.Email),
		Password:             user.PasswordHash,
		FirstName:            user.FirstName,
		LastName:             user.LastName,
		PhoneNumber:          user.PhoneNumber,
		IsActive:             user.IsActive,
		IsAdmin:              user.IsAdmin,
		DeviceTokens:         nonNilStrings(user.DeviceTokens),
		FallDetectionEnabled: user.FallDetectionEnabled,
		NotificationsEnabled: user.NotificationsEnabled,
		EmergencyContacts:    objectIDs(user.EmergencyContacts),
		CreatedAt:            user.CreatedAt,
		UpdatedAt:            user.UpdatedAt,
	}
	if oid, ok := parseObjectID(user.ID); ok {
		userM.ID = oid
	}

	return userM
}

func toUserDomain(userM *model.UserModel) *entity.User {
	return &entity.User{
		ID:                   userM.ID.Hex(),
		Email:                userM.Email,
		PasswordHash:         userM.Password,
		FirstName:            userM.FirstName,
		LastName:             userM.LastName,
		PhoneNumber:          userM.PhoneNumber,
		IsActive:             userM.IsActive,
		IsAdmin:              userM.IsAdmin,
		DeviceTokens:         nonNilStrings(userM.DeviceTokens),
		FallDetectionEnabled: userM.FallDetectionEnabled,
		NotificationsEnabled: userM.NotificationsEnabled,
		EmergencyContacts:    hexIDs(userM.EmergencyContacts),
		CreatedAt:            userM.CreatedAt,
		UpdatedAt:            userM.UpdatedAt,
	}
}
