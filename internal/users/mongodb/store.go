package mongodb

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cr8s-io/cr8s/internal/mongodb"
	cr8s "github.com/cr8s-io/cr8s/internal/sdk"
	"github.com/cr8s-io/cr8s/internal/users"
)

const createIndexTimeout = 5 * time.Second

// userDocument is the store-side representation of a user. The password
// hash exists only here; it is never attached to the cr8s.User type that
// travels through services and endpoints.
type userDocument struct {
	cr8s.User    `bson:",inline"`
	PasswordHash string `bson:"passwordHash"`
}

type store struct {
	*mongodb.BaseStore
	collection          *mongo.Collection
	userRolesCollection *mongo.Collection
}

// NewStore returns a MongoDB-backed users store.
func NewStore(database *mongo.Database) (users.Store, error) {
	ctx, cancel :=
		context.WithTimeout(context.Background(), createIndexTimeout)
	defer cancel()
	unique := true
	collection := database.Collection("users")
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
					"username": 1,
				},
				Options: &options.IndexOptions{
					Unique: &unique,
				},
			},
		},
	); err != nil {
		return nil, errors.Wrap(err, "error adding indexes to users collection")
	}
	return &store{
		BaseStore: &mongodb.BaseStore{
			Database: database,
		},
		collection:          collection,
		userRolesCollection: database.Collection("user_roles"),
	}, nil
}

func (s *store) Create(
	ctx context.Context,
	user cr8s.User,
	passwordHash string,
) error {
	document := userDocument{
		User:         user,
		PasswordHash: passwordHash,
	}
	if _, err := s.collection.InsertOne(ctx, document); err != nil {
		if writeException, ok := err.(mongo.WriteException); ok {
			if len(writeException.WriteErrors) == 1 &&
				writeException.WriteErrors[0].Code == 11000 {
				return cr8s.NewErrConflict(
					"User",
					user.ID,
					"A user with that username already exists.",
				)
			}
		}
		return errors.Wrapf(err, "error inserting new user %q", user.ID)
	}
	return nil
}

func (s *store) Get(ctx context.Context, id string) (cr8s.User, error) {
	document := userDocument{}
	res := s.collection.FindOne(ctx, bson.M{"id": id})
	if res.Err() == mongo.ErrNoDocuments {
		return cr8s.User{}, cr8s.NewErrNotFound("User", id)
	}
	if res.Err() != nil {
		return cr8s.User{}, errors.Wrapf(res.Err(), "error finding user %q", id)
	}
	if err := res.Decode(&document); err != nil {
		return cr8s.User{}, errors.Wrapf(err, "error decoding user %q", id)
	}
	return document.User, nil
}

func (s *store) FindByUsername(
	ctx context.Context,
	username string,
) (cr8s.User, string, error) {
	document := userDocument{}
	res := s.collection.FindOne(ctx, bson.M{"username": username})
	if res.Err() == mongo.ErrNoDocuments {
		return cr8s.User{}, "", cr8s.NewErrNotFound("User", username)
	}
	if res.Err() != nil {
		return cr8s.User{}, "", errors.Wrapf(
			res.Err(),
			"error finding user with username %q",
			username,
		)
	}
	if err := res.Decode(&document); err != nil {
		return cr8s.User{}, "", errors.Wrapf(
			err,
			"error decoding user with username %q",
			username,
		)
	}
	return document.User, document.PasswordHash, nil
}

func (s *store) List(ctx context.Context) (cr8s.UserList, error) {
	userList := cr8s.NewUserList()
	findOptions := options.Find()
	findOptions.SetSort(bson.M{"username": 1})
	cur, err := s.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return userList, errors.Wrap(err, "error finding users")
	}
	if err := cur.All(ctx, &userList.Items); err != nil {
		return userList, errors.Wrap(err, "error decoding users")
	}
	return userList, nil
}

func (s *store) Delete(ctx context.Context, id string) error {
	return s.DoTx(ctx, func(ctx context.Context) error {
		res, err := s.collection.DeleteOne(ctx, bson.M{"id": id})
		if err != nil {
			return errors.Wrapf(err, "error deleting user %q", id)
		}
		if res.DeletedCount == 0 {
			return cr8s.NewErrNotFound("User", id)
		}
		if _, err := s.userRolesCollection.DeleteMany(
			ctx,
			bson.M{"userId": id},
		); err != nil {
			return errors.Wrapf(
				err,
				"error deleting role assignments for user %q",
				id,
			)
		}
		return nil
	})
}
