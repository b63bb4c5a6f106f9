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

type OrderRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewOrderRepository(db *mongo.Database) OrderRepository {
	return &OrderRepositoryImpl{db: db}
}

func (r *OrderRepositoryImpl) collection() *mongo.Collection {
	return r.db.Collection(orderCollection)
}

func (r *OrderRepositoryImpl) items() *mongo.Collection {
	return r.db.Collection(orderItemCollection)
}

// populateOrder resolves the ordering user (without credentials) and the
// order items of every order in the pipeline.
func populateOrder(pipeline mongo.Pipeline) mongo.Pipeline {
	pipeline = append(pipeline, lookupOne(userCollection, "user", "userDetail")...)
	return append(pipeline,
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: orderItemCollection},
			{Key: "localField", Value: "orderItems"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "items"},
		}}},
		bson.D{{Key: "$project", Value: bson.D{{Key: "userDetail.passwordHash", Value: 0}}}},
	)
}

func (r *OrderRepositoryImpl) GetOrders(ctx context.Context, filter OrderFilter) (data []domain.Order, err error) {
	match := bson.D{}
	if filter.User != nil {
		match = append(match, bson.E{Key: "user", Value: *filter.User})
	}

	pipeline := populateOrder(mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "dateOrdered", Value: -1}}}},
	})

	cursor, err := r.collection().Aggregate(ctx, pipeline)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrders").Msg("")
		return
	}

	data = []domain.Order{}
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrders").Msg("")
		return nil, err
	}

	return data, nil
}

func (r *OrderRepositoryImpl) GetOrderByID(ctx context.Context, id primitive.ObjectID) (data domain.Order, err error) {
	pipeline := populateOrder(mongo.Pipeline{{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}}})

	err = aggregateOne(ctx, r.collection(), pipeline, &data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrderByID").Msg("")
		return
	}

	return data, nil
}

func (r *OrderRepositoryImpl) AddOrderItems(ctx context.Context, items []domain.OrderItem) (ids []primitive.ObjectID, err error) {
	docs := make([]interface{}, len(items))
	for i, item := range items {
		docs[i] = item
	}

	result, err := r.items().InsertMany(ctx, docs)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddOrderItems").Msg("")
		return
	}

	ids = make([]primitive.ObjectID, 0, len(result.InsertedIDs))
	for _, id := range result.InsertedIDs {
		ids = append(ids, id.(primitive.ObjectID))
	}

	return ids, nil
}

func (r *OrderRepositoryImpl) DeleteOrderItems(ctx context.Context, ids []primitive.ObjectID) (err error) {
	if len(ids) == 0 {
		return nil
	}

	_, err = r.items().DeleteMany(ctx, bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteOrderItems").Msg("")
	}

	return
}

func (r *OrderRepositoryImpl) AddOrder(ctx context.Context, data domain.Order) (id primitive.ObjectID, err error) {
	result, err := r.collection().InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddOrder").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *OrderRepositoryImpl) UpdateOrderStatus(ctx context.Context, id primitive.ObjectID, status string) (data domain.Order, err error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "status", Value: status}}}}

	err = r.collection().FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update, opts).Decode(&data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateOrderStatus").Msg("")
		if errors.Is(err, mongo.ErrNoDocuments) {
			return data, errs.ErrNotFound
		}
		return
	}

	return data, nil
}

// DeleteOrder removes the order together with its own order items. Listings
// referenced by those items are left untouched.
func (r *OrderRepositoryImpl) DeleteOrder(ctx context.Context, id primitive.ObjectID) (err error) {
	var order domain.Order
	err = r.collection().FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&order)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteOrder").Msg("")
		if errors.Is(err, mongo.ErrNoDocuments) {
			return errs.ErrNotFound
		}
		return
	}

	return r.DeleteOrderItems(ctx, order.OrderItems)
}

func (r *OrderRepositoryImpl) GetTotalSales(ctx context.Context) (total float64, err error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalsales", Value: bson.D{{Key: "$sum", Value: "$totalPrice"}}},
		}}},
	}

	var result struct {
		TotalSales float64 `bson:"totalsales"`
	}

	err = aggregateOne(ctx, r.collection(), pipeline, &result)
	if errors.Is(err, errs.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetTotalSales").Msg("")
		return 0, err
	}

	return result.TotalSales, nil
}

func (r *OrderRepositoryImpl) CountOrders(ctx context.Context) (count int64, err error) {
	count, err = r.collection().CountDocuments(ctx, bson.D{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountOrders").Msg("")
		return 0, err
	}

	return
}
