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

type SellerRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewSellerRepository(db *mongo.Database) SellerRepository {
	return &SellerRepositoryImpl{db: db}
}

func (r *SellerRepositoryImpl) collection() *mongo.Collection {
	return r.db.Collection(sellerCollection)
}

func sellerMatch(filter SellerFilter) bson.D {
	match := bson.D{}
	if len(filter.Categories) > 0 {
		match = append(match, bson.E{Key: "category", Value: bson.D{{Key: "$in", Value: filter.Categories}}})
	}
	if filter.User != nil {
		match = append(match, bson.E{Key: "user", Value: *filter.User})
	}
	if filter.Featured {
		match = append(match, bson.E{Key: "isFeatured", Value: true})
	}

	return match
}

func (r *SellerRepositoryImpl) GetSellers(ctx context.Context, filter SellerFilter) (data []domain.Seller, err error) {
	pipeline := mongo.Pipeline{{{Key: "$match", Value: sellerMatch(filter)}}}
	if filter.Limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: filter.Limit}})
	}
	pipeline = append(pipeline, lookupOne(categoryCollection, "category", "categoryDetail")...)

	cursor, err := r.collection().Aggregate(ctx, pipeline)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetSellers").Msg("")
		return
	}

	data = []domain.Seller{}
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetSellers").Msg("")
		return nil, err
	}

	return data, nil
}

func (r *SellerRepositoryImpl) GetSellerByID(ctx context.Context, id primitive.ObjectID) (data domain.Seller, err error) {
	pipeline := mongo.Pipeline{{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}}}
	pipeline = append(pipeline, lookupOne(categoryCollection, "category", "categoryDetail")...)

	err = aggregateOne(ctx, r.collection(), pipeline, &data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetSellerByID").Msg("")
		return
	}

	return data, nil
}

func (r *SellerRepositoryImpl) AddSeller(ctx context.Context, data domain.Seller) (id primitive.ObjectID, err error) {
	result, err := r.collection().InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddSeller").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *SellerRepositoryImpl) UpdateSellerStatus(ctx context.Context, id primitive.ObjectID, status string) (data domain.Seller, err error) {
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "status", Value: status}}}}

	data, err = r.findOneAndUpdate(ctx, id, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateSellerStatus").Msg("")
	}

	return
}

func (r *SellerRepositoryImpl) UpdateSellerImages(ctx context.Context, id primitive.ObjectID, images []string) (data domain.Seller, err error) {
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "images", Value: images}}}}

	data, err = r.findOneAndUpdate(ctx, id, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateSellerImages").Msg("")
	}

	return
}

func (r *SellerRepositoryImpl) findOneAndUpdate(ctx context.Context, id primitive.ObjectID, update bson.D) (data domain.Seller, err error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	err = r.collection().FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update, opts).Decode(&data)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return data, errs.ErrNotFound
	}

	return
}

func (r *SellerRepositoryImpl) DeleteSeller(ctx context.Context, id primitive.ObjectID) (err error) {
	result, err := r.collection().DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteSeller").Msg("")
		return
	}

	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *SellerRepositoryImpl) CountSellers(ctx context.Context) (count int64, err error) {
	count, err = r.collection().CountDocuments(ctx, bson.D{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountSellers").Msg("")
		return 0, err
	}

	return
}
