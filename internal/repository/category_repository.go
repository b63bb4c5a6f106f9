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

type CategoryRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewCategoryRepository(db *mongo.Database) CategoryRepository {
	return &CategoryRepositoryImpl{db: db}
}

func (r *CategoryRepositoryImpl) collection() *mongo.Collection {
	return r.db.Collection(categoryCollection)
}

func (r *CategoryRepositoryImpl) GetCategories(ctx context.Context) (data []domain.Category, err error) {
	cursor, err := r.collection().Find(ctx, bson.D{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCategories").Msg("")
		return
	}

	data = []domain.Category{}
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCategories").Msg("")
		return nil, err
	}

	return data, nil
}

func (r *CategoryRepositoryImpl) GetCategoryByID(ctx context.Context, id primitive.ObjectID) (data domain.Category, err error) {
	err = r.collection().FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCategoryByID").Msg("")
		if errors.Is(err, mongo.ErrNoDocuments) {
			return data, errs.ErrNotFound
		}
		return
	}

	return data, nil
}

func (r *CategoryRepositoryImpl) AddCategory(ctx context.Context, data domain.Category) (id primitive.ObjectID, err error) {
	result, err := r.collection().InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddCategory").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *CategoryRepositoryImpl) UpdateCategory(ctx context.Context, id primitive.ObjectID, update domain.CategoryUpdate) (data domain.Category, err error) {
	set := bson.D{}
	set = setIfPresent(set, "name", update.Name)
	set = setIfPresent(set, "icon", update.Icon)
	set = setIfPresent(set, "color", update.Color)

	if len(set) == 0 {
		return r.GetCategoryByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = r.collection().FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, bson.D{{Key: "$set", Value: set}}, opts).Decode(&data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateCategory").Msg("")
		if errors.Is(err, mongo.ErrNoDocuments) {
			return data, errs.ErrNotFound
		}
		return
	}

	return data, nil
}

func (r *CategoryRepositoryImpl) DeleteCategory(ctx context.Context, id primitive.ObjectID) (err error) {
	result, err := r.collection().DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteCategory").Msg("")
		return
	}

	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}
