package repository

import (
	"context"

	"github.com/alimikegami/e-bazaar/pkg/errs"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	sellerCollection    = "sellers"
	categoryCollection  = "categories"
	userCollection      = "users"
	orderCollection     = "orders"
	orderItemCollection = "orderitems"
)

// EnsureIndexes creates the indexes the repositories rely on. User emails
// are unique; duplicate inserts and updates surface as errs.ErrEmailAlreadyUsed.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(userCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("email_unique").SetUnique(true),
	})

	return err
}

func lookupOne(from, localField, as string) []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: from},
			{Key: "localField", Value: localField},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: as},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$" + as},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}
}

// aggregateOne runs pipeline and decodes its first result into out, reporting
// errs.ErrNotFound when the pipeline yields nothing.
func aggregateOne(ctx context.Context, coll *mongo.Collection, pipeline mongo.Pipeline, out interface{}) error {
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		if err := cursor.Err(); err != nil {
			return err
		}
		return errs.ErrNotFound
	}

	return cursor.Decode(out)
}

func setIfPresent(set bson.D, key string, value interface{}) bson.D {
	switch v := value.(type) {
	case *string:
		if v != nil {
			return append(set, bson.E{Key: key, Value: *v})
		}
	case *bool:
		if v != nil {
			return append(set, bson.E{Key: key, Value: *v})
		}
	}

	return set
}
