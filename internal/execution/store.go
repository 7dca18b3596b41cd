package execution

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/2beens/movimentai/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultSessionTTL = 3 * time.Hour
	sessionKeyPrefix  = "movimentai-execution||"
	doneKeyPrefix     = "movimentai-execution-done||"
	// sorted set of session ids scored by expiry (unix seconds)
	sessionsIndexKey = "movimentai-executions"
)

var ErrSessionNotFound = errors.New("execution session not found")

// RedisStore keeps execution sessions as JSON values with a TTL.
type RedisStore struct {
	redisClient *redis.Client
	ttl         time.Duration
	now         func() time.Time
}

func NewRedisStore(redisClient *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &RedisStore{
		redisClient: redisClient,
		ttl:         ttl,
		now:         time.Now,
	}
}

func (rs *RedisStore) Save(ctx context.Context, session *Session) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "execution.store.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := rs.redisClient.Set(ctx, sessionKeyPrefix+session.ID, payload, rs.ttl).Err(); err != nil {
		return err
	}

	expiresAt := rs.now().Add(rs.ttl).Unix()
	return rs.redisClient.ZAdd(ctx, sessionsIndexKey, &redis.Z{
		Score:  float64(expiresAt),
		Member: session.ID,
	}).Err()
}

func (rs *RedisStore) Get(ctx context.Context, id string) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "execution.store.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	payload, err := rs.redisClient.Get(ctx, sessionKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var session Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("unmarshal session %s: %w", id, err)
	}
	if session.Machine == nil {
		return nil, fmt.Errorf("session %s has no machine", id)
	}
	return &session, nil
}

// ClaimCompletion marks the session as completed. Only the first caller gets
// true, so concurrent requests finishing the same session record it once.
func (rs *RedisStore) ClaimCompletion(ctx context.Context, id string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "execution.store.claimcompletion")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return rs.redisClient.SetNX(ctx, doneKeyPrefix+id, rs.now().Unix(), rs.ttl).Result()
}

// ActiveCount returns the number of sessions that did not expire yet.
func (rs *RedisStore) ActiveCount(ctx context.Context) (int64, error) {
	from := strconv.FormatInt(rs.now().Unix(), 10)
	return rs.redisClient.ZCount(ctx, sessionsIndexKey, from, "+inf").Result()
}

// PurgeExpired drops index members whose sessions already expired in redis.
func (rs *RedisStore) PurgeExpired(ctx context.Context) {
	until := strconv.FormatInt(rs.now().Unix(), 10)
	removed, err := rs.redisClient.ZRemRangeByScore(ctx, sessionsIndexKey, "-inf", until).Result()
	if err != nil {
		log.Errorf("=> execution store, purge expired: %s", err)
		return
	}
	log.Debugf("=> execution store, purged %d expired sessions from index", removed)
}
