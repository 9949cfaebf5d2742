package deps

import (
	"context"
	"humandate/internal/config"
	dt "humandate/internal/core/domain/datetime"
	dl "humandate/internal/core/domain/logging"
	drl "humandate/internal/core/domain/rate_limiter"
	"humandate/internal/http/handlers/health"
	humandateparser "humandate/internal/implementations/human_date_parser"
	"humandate/internal/implementations/logging"
	ratelimiter "humandate/internal/implementations/rate_limiter"
	"sync"
	"time"

	"github.com/go-redis/redis/v9"
)

type Deps struct {
	Config *config.Config
	Logger dl.Logger

	// Redis is nil when REDIS_URL is not set.
	Redis *redis.Client

	Now func() time.Time

	RateLimiter  drl.RateLimiter
	Parser       dt.Parser
	HealthChecks []health.Check
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()

	closeLogger := deps.initLogger()
	closeRedisClient := deps.initRedisClient()

	deps.Now = func() time.Time { return time.Now().UTC() }
	if deps.Redis != nil {
		deps.RateLimiter = ratelimiter.NewRedis(deps.Redis, deps.Logger, deps.Now)
		deps.HealthChecks = append(deps.HealthChecks, health.Check{
			Name: "redis",
			Run:  func(ctx context.Context) error { return deps.Redis.Ping(ctx).Err() },
		})
	} else {
		deps.RateLimiter = ratelimiter.NewUnlimited()
	}
	deps.Parser = humandateparser.New(deps.Now)

	return deps, func() {
		closeFuncs := []func(){
			closeRedisClient,
			closeLogger,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initLogger() func() {
	logger, err := logging.NewZapLogger(deps.Config.LogLevel)
	if err != nil {
		panic(err)
	}
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initRedisClient() func() {
	if deps.Config.RedisURL == "" {
		deps.Logger.Info(context.Background(), "REDIS_URL is not set, rate limiting is disabled.")
		return func() {}
	}
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}
