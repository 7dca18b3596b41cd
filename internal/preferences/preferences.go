package preferences

import (
	"context"
	"strconv"

	"github.com/2beens/movimentai/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
)

const (
	ThemeDark  = "dark"
	ThemeLight = "light"

	keyPrefix = "movimentai-prefs||"

	fieldSound                = "sound"
	fieldTheme                = "theme"
	fieldNotificationPrompted = "notificationPrompted"
)

type Preferences struct {
	SoundEnabled         bool   `json:"soundEnabled"`
	Theme                string `json:"theme"`
	NotificationPrompted bool   `json:"notificationPrompted"`
}

func Defaults() Preferences {
	return Preferences{
		SoundEnabled:         true,
		Theme:                ThemeDark,
		NotificationPrompted: false,
	}
}

// Update carries only the fields the client wants to change.
type Update struct {
	SoundEnabled         *bool   `json:"soundEnabled"`
	Theme                *string `json:"theme" validate:"omitempty,oneof=light dark"`
	NotificationPrompted *bool   `json:"notificationPrompted"`
}

func (u Update) Empty() bool {
	return u.SoundEnabled == nil && u.Theme == nil && u.NotificationPrompted == nil
}

// fields returns the hash field/value pairs in a stable order.
func (u Update) fields() []any {
	var pairs []any
	if u.SoundEnabled != nil {
		pairs = append(pairs, fieldSound, onOff(*u.SoundEnabled))
	}
	if u.Theme != nil {
		pairs = append(pairs, fieldTheme, *u.Theme)
	}
	if u.NotificationPrompted != nil {
		pairs = append(pairs, fieldNotificationPrompted, strconv.FormatBool(*u.NotificationPrompted))
	}
	return pairs
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// RedisStore keeps one hash per user. Missing fields fall back to defaults.
type RedisStore struct {
	redisClient *redis.Client
}

func NewRedisStore(redisClient *redis.Client) *RedisStore {
	return &RedisStore{
		redisClient: redisClient,
	}
}

func (rs *RedisStore) Get(ctx context.Context, userID string) (_ *Preferences, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "preferences.store.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	values, err := rs.redisClient.HGetAll(ctx, keyPrefix+userID).Result()
	if err != nil {
		return nil, err
	}

	prefs := Defaults()
	if v, ok := values[fieldSound]; ok {
		prefs.SoundEnabled = v != "off"
	}
	if v, ok := values[fieldTheme]; ok && (v == ThemeDark || v == ThemeLight) {
		prefs.Theme = v
	}
	if v, ok := values[fieldNotificationPrompted]; ok {
		prefs.NotificationPrompted, _ = strconv.ParseBool(v)
	}
	return &prefs, nil
}

func (rs *RedisStore) Update(ctx context.Context, userID string, update Update) (_ *Preferences, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "preferences.store.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if pairs := update.fields(); len(pairs) > 0 {
		if err := rs.redisClient.HSet(ctx, keyPrefix+userID, pairs...).Err(); err != nil {
			return nil, err
		}
	}
	return rs.Get(ctx, userID)
}
