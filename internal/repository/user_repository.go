package repository

import (
	"context"
	"errors"

	"github.com/alimikegami/e-bazaar/internal/domain"
	"github.com/alimikegami/e-bazaar/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewUserRepository(db *mongo.Database) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) collection() *mongo.Collection {
	return r.db.Collection(userCollection)
}

func (r *UserRepositoryImpl) GetUsers(ctx context.Context) (data []domain.User, err error) {
	cursor, err := r.collection().Find(ctx, bson.D{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUsers").Msg("")
		return
	}

	data = []domain.User{}
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUsers").Msg("")
		return nil, err
	}

	return data, nil
}

func (r *UserRepositoryImpl) GetUserByID(ctx context.Context, id primitive.ObjectID) (data domain.User, err error) {
	return r.findOne(ctx, "GetUserByID", bson.D{{Key: "_id", Value: id}})
}

func (r *UserRepositoryImpl) GetUserByEmail(ctx context.Context, email string) (data domain.User, err error) {
	return r.findOne(ctx, "GetUserByEmail", bson.D{{Key: "email", Value: email}})
}

func (r *UserRepositoryImpl) findOne(ctx context.Context, component string, filter bson.D) (data domain.User, err error) {
	err = r.collection().FindOne(ctx, filter).Decode(&data)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return data, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return
	}

	return data, nil
}

func (r *UserRepositoryImpl) AddUser(ctx context.Context, data domain.User) (id primitive.ObjectID, err error) {
	result, err := r.collection().InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddUser").Msg("")
		if mongo.IsDuplicateKeyError(err) {
			return id, errs.ErrEmailAlreadyUsed
		}
		return
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *UserRepositoryImpl) UpdateUser(ctx context.Context, id primitive.ObjectID, update domain.UserUpdate) (data domain.User, err error) {
	set := bson.D{}
	set = setIfPresent(set, "name", update.Name)
	set = setIfPresent(set, "email", update.Email)
	set = setIfPresent(set, "passwordHash", update.PasswordHash)
	set = setIfPresent(set, "phone", update.Phone)
	set = setIfPresent(set, "isAdmin", update.IsAdmin)
	set = setIfPresent(set, "street", update.Street)
	set = setIfPresent(set, "apartment", update.Apartment)
	set = setIfPresent(set, "zip", update.Zip)
	set = setIfPresent(set, "city", update.City)
	set = setIfPresent(set, "country", update.Country)

	if len(set) == 0 {
		return r.GetUserByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = r.collection().FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, bson.D{{Key: "$set", Value: set}}, opts).Decode(&data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateUser").Msg("")
		if errors.Is(err, mongo.ErrNoDocuments) {
			return data, errs.ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return data, errs.ErrEmailAlreadyUsed
		}
		return
	}

	return data, nil
}

func (r *UserRepositoryImpl) DeleteUser(ctx context.Context, id primitive.ObjectID) (err error) {
	result, err := r.collection().DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteUser").Msg("")
		return
	}

	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *UserRepositoryImpl) CountUsers(ctx context.Context) (count int64, err error) {
	count, err = r.collection().CountDocuments(ctx, bson.D{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountUsers").Msg("")
		return 0, err
	}

	return
}
