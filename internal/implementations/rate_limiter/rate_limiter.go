package ratelimiter

import (
	"context"
	"errors"
	"fmt"
	e "humandate/internal/core/domain/errors"
	"humandate/internal/core/domain/logging"
	ratelimiter "humandate/internal/core/domain/rate_limiter"
	"time"

	"github.com/go-redis/redis/v9"
)

const keyPrefix = "humandate::rl"

// Redis counts calls per key in fixed windows aligned to the wall clock.
type Redis struct {
	redisClient *redis.Client
	log         logging.Logger
	now         func() time.Time
}

func NewRedis(redisClient *redis.Client, log logging.Logger, now func() time.Time) *Redis {
	if redisClient == nil {
		panic(e.NewNilArgumentError("redisClient"))
	}
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &Redis{redisClient: redisClient, log: log, now: now}
}

func (r *Redis) CheckLimit(ctx context.Context, key string, limit ratelimiter.Limit) ratelimiter.Result {
	if limit.IsUnlimited() {
		return ratelimiter.Allowed()
	}
	k := windowKey(key, limit.Interval, r.now())

	cmds, err := r.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, k)
		pipe.Expire(ctx, k, limit.Interval.Duration())
		return nil
	})
	if errors.Is(err, context.Canceled) {
		return ratelimiter.NotAllowed()
	}
	if err != nil {
		r.log.Error(ctx, "Could not check rate limit due to Redis client error.", logging.Entry("err", err))
		return ratelimiter.Allowed()
	}
	count := cmds[0].(*redis.IntCmd).Val()
	if count > int64(limit.Value) {
		r.log.Debug(ctx, "Rate limit window is full.", logging.Entry("key", k), logging.Entry("count", count))
		return ratelimiter.NotAllowed()
	}
	return ratelimiter.Allowed()
}

func windowKey(key string, interval ratelimiter.Interval, now time.Time) string {
	switch interval {
	case ratelimiter.Hour:
		return fmt.Sprintf("%s::%s::h%d", keyPrefix, key, now.Hour())
	case ratelimiter.Minute:
		return fmt.Sprintf("%s::%s::m%d", keyPrefix, key, now.Minute())
	default:
		panic("invalid rate limiting interval")
	}
}

// Unlimited allows every call. It is used when no Redis is configured.
type Unlimited struct{}

func NewUnlimited() *Unlimited {
	return &Unlimited{}
}

func (u *Unlimited) CheckLimit(ctx context.Context, key string, limit ratelimiter.Limit) ratelimiter.Result {
	return ratelimiter.Allowed()
}
