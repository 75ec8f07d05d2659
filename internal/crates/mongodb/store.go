package mongodb

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cr8s-io/cr8s/internal/crates"
	cr8s "github.com/cr8s-io/cr8s/internal/sdk"
)

const createIndexTimeout = 5 * time.Second

type store struct {
	collection *mongo.Collection
}

// NewStore returns a MongoDB-backed crates store.
func NewStore(database *mongo.Database) (crates.Store, error) {
	ctx, cancel :=
		context.WithTimeout(context.Background(), createIndexTimeout)
	defer cancel()
	unique := true
	collection := database.Collection("crates")
	if _, err := collection.Indexes().CreateMany(
		ctx,
		[]mongo.IndexModel{
			{
				Keys: bson.M{
					"id": 1,
				},
				Options: &options.IndexOptions{
					Unique: &unique,
				},
			},
			{
				Keys: bson.M{
					"code": 1,
				},
				Options: &options.IndexOptions{
					Unique: &unique,
				},
			},
			{
				Keys: bson.M{
					"created": -1,
				},
			},
		},
	); err != nil {
		return nil, errors.Wrap(
			err,
			"error adding indexes to crates collection",
		)
	}
	return &store{
		collection: collection,
	}, nil
}

func (s *store) Create(ctx context.Context, crate cr8s.Crate) error {
	if _, err := s.collection.InsertOne(ctx, crate); err != nil {
		if writeException, ok := err.(mongo.WriteException); ok {
			if len(writeException.WriteErrors) == 1 &&
				writeException.WriteErrors[0].Code == 11000 {
				return cr8s.NewErrConflict(
					"Crate",
					crate.ID,
					"A crate with that code already exists.",
				)
			}
		}
		return errors.Wrapf(err, "error inserting new crate %q", crate.ID)
	}
	return nil
}

func (s *store) Get(ctx context.Context, id string) (cr8s.Crate, error) {
	crate := cr8s.Crate{}
	res := s.collection.FindOne(ctx, bson.M{"id": id})
	if res.Err() == mongo.ErrNoDocuments {
		return crate, cr8s.NewErrNotFound("Crate", id)
	}
	if res.Err() != nil {
		return crate, errors.Wrapf(res.Err(), "error finding crate %q", id)
	}
	if err := res.Decode(&crate); err != nil {
		return crate, errors.Wrapf(err, "error decoding crate %q", id)
	}
	return crate, nil
}

func (s *store) List(ctx context.Context) (cr8s.CrateList, error) {
	return s.find(ctx, bson.M{})
}

func (s *store) ListCreatedSince(
	ctx context.Context,
	since time.Time,
) (cr8s.CrateList, error) {
	return s.find(ctx, bson.M{"created": bson.M{"$gte": since}})
}

func (s *store) Update(ctx context.Context, crate cr8s.Crate) error {
	res, err := s.collection.UpdateOne(
		ctx,
		bson.M{"id": crate.ID},
		bson.M{
			"$set": bson.M{
				"rustaceanId": crate.RustaceanID,
				"code":        crate.Code,
				"name":        crate.Name,
				"version":     crate.Version,
				"description": crate.Description,
			},
		},
	)
	if err != nil {
		return errors.Wrapf(err, "error updating crate %q", crate.ID)
	}
	if res.MatchedCount == 0 {
		return cr8s.NewErrNotFound("Crate", crate.ID)
	}
	return nil
}

func (s *store) Delete(ctx context.Context, id string) error {
	res, err := s.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return errors.Wrapf(err, "error deleting crate %q", id)
	}
	if res.DeletedCount == 0 {
		return cr8s.NewErrNotFound("Crate", id)
	}
	return nil
}

func (s *store) find(
	ctx context.Context,
	criteria bson.M,
) (cr8s.CrateList, error) {
	crateList := cr8s.NewCrateList()
	findOptions := options.Find()
	findOptions.SetSort(bson.M{"created": -1})
	cur, err := s.collection.Find(ctx, criteria, findOptions)
	if err != nil {
		return crateList, errors.Wrap(err, "error finding crates")
	}
	if err := cur.All(ctx, &crateList.Items); err != nil {
		return crateList, errors.Wrap(err, "error decoding crates")
	}
	return crateList, nil
}
