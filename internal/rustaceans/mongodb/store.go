package mongodb

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cr8s-io/cr8s/internal/rustaceans"
	cr8s "github.com/cr8s-io/cr8s/internal/sdk"
)

const createIndexTimeout = 5 * time.Second

type store struct {
	collection *mongo.Collection
}

// NewStore returns a MongoDB-backed rustaceans store.
func NewStore(database *mongo.Database) (rustaceans.Store, error) {
	ctx, cancel :=
		context.WithTimeout(context.Background(), createIndexTimeout)
	defer cancel()
	unique := true
	collection := database.Collection("rustaceans")
	if _, err := collection.Indexes().CreateOne(
		ctx,
		mongo.IndexModel{
			Keys: bson.M{
				"id": 1,
			},
			Options: &options.IndexOptions{
				Unique: &unique,
			},
		},
	); err != nil {
		return nil, errors.Wrap(
			err,
			"error adding indexes to rustaceans collection",
		)
	}
	return &store{
		collection: collection,
	}, nil
}

func (s *store) Create(ctx context.Context, rustacean cr8s.Rustacean) error {
	if _, err := s.collection.InsertOne(ctx, rustacean); err != nil {
		return errors.Wrapf(
			err,
			"error inserting new rustacean %q",
			rustacean.ID,
		)
	}
	return nil
}

func (s *store) Get(ctx context.Context, id string) (cr8s.Rustacean, error) {
	rustacean := cr8s.Rustacean{}
	res := s.collection.FindOne(ctx, bson.M{"id": id})
	if res.Err() == mongo.ErrNoDocuments {
		return rustacean, cr8s.NewErrNotFound("Rustacean", id)
	}
	if res.Err() != nil {
		return rustacean, errors.Wrapf(
			res.Err(),
			"error finding rustacean %q",
			id,
		)
	}
	if err := res.Decode(&rustacean); err != nil {
		return rustacean, errors.Wrapf(err, "error decoding rustacean %q", id)
	}
	return rustacean, nil
}

func (s *store) List(ctx context.Context) (cr8s.RustaceanList, error) {
	rustaceanList := cr8s.NewRustaceanList()
	findOptions := options.Find()
	findOptions.SetSort(bson.M{"created": -1})
	cur, err := s.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return rustaceanList, errors.Wrap(err, "error finding rustaceans")
	}
	if err := cur.All(ctx, &rustaceanList.Items); err != nil {
		return rustaceanList, errors.Wrap(err, "error decoding rustaceans")
	}
	return rustaceanList, nil
}

func (s *store) Update(ctx context.Context, rustacean cr8s.Rustacean) error {
	res, err := s.collection.UpdateOne(
		ctx,
		bson.M{"id": rustacean.ID},
		bson.M{
			"$set": bson.M{
				"name":  rustacean.Name,
				"email": rustacean.Email,
			},
		},
	)
	if err != nil {
		return errors.Wrapf(err, "error updating rustacean %q", rustacean.ID)
	}
	if res.MatchedCount == 0 {
		return cr8s.NewErrNotFound("Rustacean", rustacean.ID)
	}
	return nil
}

func (s *store) Delete(ctx context.Context, id string) error {
	res, err := s.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return errors.Wrapf(err, "error deleting rustacean %q", id)
	}
	if res.DeletedCount == 0 {
		return cr8s.NewErrNotFound("Rustacean", id)
	}
	return nil
}
