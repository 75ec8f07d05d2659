package mongodb

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cr8s-io/cr8s/internal/roles"
	cr8s "github.com/cr8s-io/cr8s/internal/sdk"
)

const createIndexTimeout = 5 * time.Second

// userRoleDocument is a single user ↔ role assignment.
type userRoleDocument struct {
	UserID string `bson:"userId"`
	RoleID string `bson:"roleId"`
}

type store struct {
	collection          *mongo.Collection
	userRolesCollection *mongo.Collection
}

// NewStore returns a MongoDB-backed roles store.
func NewStore(database *mongo.Database) (roles.Store, error) {
	ctx, cancel :=
		context.WithTimeout(context.Background(), createIndexTimeout)
	defer cancel()
	unique := true
	collection := database.Collection("roles")
	if _, err := collection.Indexes().CreateOne(
		ctx,
		mongo.IndexModel{
			Keys: bson.M{
				"code": 1,
			},
			Options: &options.IndexOptions{
				Unique: &unique,
			},
		},
	); err != nil {
		return nil, errors.Wrap(err, "error adding indexes to roles collection")
	}
	userRolesCollection := database.Collection("user_roles")
	if _, err := userRolesCollection.Indexes().CreateOne(
		ctx,
		mongo.IndexModel{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "roleId", Value: 1},
			},
			Options: &options.IndexOptions{
				Unique: &unique,
			},
		},
	); err != nil {
		return nil, errors.Wrap(
			err,
			"error adding indexes to user_roles collection",
		)
	}
	return &store{
		collection:          collection,
		userRolesCollection: userRolesCollection,
	}, nil
}

func (s *store) Grant(
	ctx context.Context,
	userID string,
	codes []string,
) ([]cr8s.Role, error) {
	grantedRoles := make([]cr8s.Role, 0, len(codes))
	for _, code := range codes {
		role, err := s.findOrCreateByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		upsert := true
		if _, err := s.userRolesCollection.UpdateOne(
			ctx,
			bson.M{
				"userId": userID,
				"roleId": role.ID,
			},
			bson.M{
				"$set": userRoleDocument{
					UserID: userID,
					RoleID: role.ID,
				},
			},
			&options.UpdateOptions{
				Upsert: &upsert,
			},
		); err != nil {
			return nil, errors.Wrapf(
				err,
				"error assigning role %q to user %q",
				role.Code,
				userID,
			)
		}
		grantedRoles = append(grantedRoles, role)
	}
	return grantedRoles, nil
}

func (s *store) FindByUser(
	ctx context.Context,
	userID string,
) ([]cr8s.Role, error) {
	cur, err := s.userRolesCollection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, errors.Wrapf(
			err,
			"error finding role assignments for user %q",
			userID,
		)
	}
	assignments := []userRoleDocument{}
	if err := cur.All(ctx, &assignments); err != nil {
		return nil, errors.Wrapf(
			err,
			"error decoding role assignments for user %q",
			userID,
		)
	}
	roleIDs := make([]string, len(assignments))
	for i, assignment := range assignments {
		roleIDs[i] = assignment.RoleID
	}
	userRoles := []cr8s.Role{}
	if len(roleIDs) == 0 {
		return userRoles, nil
	}
	cur, err = s.collection.Find(
		ctx,
		bson.M{"id": bson.M{"$in": roleIDs}},
	)
	if err != nil {
		return nil, errors.Wrapf(err, "error finding roles for user %q", userID)
	}
	if err := cur.All(ctx, &userRoles); err != nil {
		return nil, errors.Wrapf(
			err,
			"error decoding roles for user %q",
			userID,
		)
	}
	return userRoles, nil
}

// findOrCreateByCode returns the role record for the specified code,
// creating one if the code has never been seen. A concurrent insert of the
// same code loses to the unique index and falls back to reading the
// winner's record.
func (s *store) findOrCreateByCode(
	ctx context.Context,
	code string,
) (cr8s.Role, error) {
	role, err := s.findByCode(ctx, code)
	if err == nil {
		return role, nil
	}
	if _, ok := errors.Cause(err).(*cr8s.ErrNotFound); !ok {
		return cr8s.Role{}, err
	}
	role = cr8s.NewRole(uuid.NewV4().String(), code, strings.Title(code))
	now := time.Now()
	role.Created = &now
	if _, err := s.collection.InsertOne(ctx, role); err != nil {
		if writeException, ok := err.(mongo.WriteException); ok {
			if len(writeException.WriteErrors) == 1 &&
				writeException.WriteErrors[0].Code == 11000 {
				return s.findByCode(ctx, code)
			}
		}
		return cr8s.Role{}, errors.Wrapf(
			err,
			"error inserting new role %q",
			code,
		)
	}
	return role, nil
}

func (s *store) findByCode(
	ctx context.Context,
	code string,
) (cr8s.Role, error) {
	role := cr8s.Role{}
	res := s.collection.FindOne(ctx, bson.M{"code": code})
	if res.Err() == mongo.ErrNoDocuments {
		return role, cr8s.NewErrNotFound("Role", code)
	}
	if res.Err() != nil {
		return role, errors.Wrapf(res.Err(), "error finding role %q", code)
	}
	if err := res.Decode(&role); err != nil {
		return role, errors.Wrapf(err, "error decoding role %q", code)
	}
	return role, nil
}
