package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis"
	"github.com/pkg/errors"

	"github.com/cr8s-io/cr8s/internal/authn/sessions"
	cr8s "github.com/cr8s-io/cr8s/internal/sdk"
)

const keyPrefix = "sessions/"

type store struct {
	client *redis.Client
}

// NewStore returns a sessions store backed by a shared Redis cache. Expiry
// is delegated entirely to Redis-- entries are written with SETEX semantics
// and evicted by the cache itself when the TTL elapses.
func NewStore(client *redis.Client) sessions.Store {
	return &store{
		client: client,
	}
}

func (s *store) Create(
	ctx context.Context,
	token string,
	userID string,
	ttl time.Duration,
) error {
	if err := s.client.Set(sessionKey(token), userID, ttl).Err(); err != nil {
		return errors.Wrap(err, "error writing session to cache")
	}
	return nil
}

func (s *store) GetUserIDByToken(
	ctx context.Context,
	token string,
) (string, error) {
	userID, err := s.client.Get(sessionKey(token)).Result()
	if err == redis.Nil {
		return "", &cr8s.ErrNotFound{
			Type: "Session",
		}
	}
	if err != nil {
		return "", errors.Wrap(err, "error reading session from cache")
	}
	return userID, nil
}

func (s *store) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(sessionKey(token)).Err(); err != nil {
		return errors.Wrap(err, "error removing session from cache")
	}
	return nil
}

func sessionKey(token string) string {
	return fmt.Sprintf("%s%s", keyPrefix, token)
}
