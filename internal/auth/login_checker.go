package auth

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	gocache "github.com/patrickmn/go-cache"
)

const checkerCacheTTL = time.Minute

// LoginChecker resolves session tokens to user ids. Lookups are cached in
// process for a minute, so a logout must go through Forget on this instance.
type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
	cache       *gocache.Cache
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
		cache:       gocache.New(checkerCacheTTL, 5*checkerCacheTTL),
	}
}

// SessionUser returns the id of the user logged in with the token,
// or an empty string when the token is unknown or expired.
func (c *LoginChecker) SessionUser(ctx context.Context, token string) (string, error) {
	if cached, found := c.cache.Get(token); found {
		session := cached.(Session)
		if time.Since(session.CreatedAt) <= c.ttl {
			return session.UserID, nil
		}
		c.cache.Delete(token)
		return "", nil
	}

	val, err := c.redisClient.Get(ctx, sessionKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	session, err := parseSession(val)
	if err != nil {
		return "", err
	}

	if time.Since(session.CreatedAt) > c.ttl {
		return "", nil
	}

	c.cache.SetDefault(token, session)
	return session.UserID, nil
}

func (c *LoginChecker) IsLogged(ctx context.Context, token string) (bool, error) {
	userID, err := c.SessionUser(ctx, token)
	if err != nil {
		return false, err
	}
	return userID != "", nil
}

// Forget drops the cached lookup for the token.
func (c *LoginChecker) Forget(token string) {
	c.cache.Delete(token)
}
