package mongodb

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// BaseStore provides transaction and health-check helpers shared by all
// MongoDB-backed store implementations.
type BaseStore struct {
	Database *mongo.Database
}

// DoTx executes the specified function within a single transaction.
func (b *BaseStore) DoTx(
	ctx context.Context,
	fn func(context.Context) error,
) error {
	return b.Database.Client().UseSession(
		ctx,
		func(sc mongo.SessionContext) error {
			if err := sc.StartTransaction(); err != nil {
				return errors.Wrap(err, "error starting transaction")
			}
			if err := fn(sc); err != nil {
				return err
			}
			if err := sc.CommitTransaction(sc); err != nil {
				return errors.Wrap(err, "error committing transaction")
			}
			return nil
		},
	)
}

// CheckHealth pings the underlying database.
func (b *BaseStore) CheckHealth(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := b.Database.Client().Ping(
		pingCtx,
		readpref.Primary(),
	); err != nil {
		return errors.Wrap(err, "error pinging mongodb database")
	}
	return nil
}
