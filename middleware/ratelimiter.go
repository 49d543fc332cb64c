package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	ginlimiter "github.com/ulule/limiter/v3/drivers/middleware/gin"
	memory "github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"

	"github.com/vinaythakkar13/yatra-backend/config"
	"github.com/vinaythakkar13/yatra-backend/logger"
	"github.com/vinaythakkar13/yatra-backend/utils"
)

// RateLimiter limits requests per client IP. Counters live in redis when it
// is connected so every instance shares them.
func RateLimiter(cfg *config.Config) gin.HandlerFunc {
	rate := limiter.Rate{
		Period: 1 * time.Minute,
		Limit:  cfg.RateLimitPerMinute,
	}
	if rate.Limit <= 0 {
		rate.Limit = 100
	}

	store := limiter.Store(memory.NewStore())
	if utils.RedisEnabled() {
		rs, err := sredis.NewStoreWithOptions(utils.RedisClient, limiter.StoreOptions{
			Prefix: "yatra_limiter",
		})
		if err != nil {
			logger.Warningf("Redis rate limit store unavailable, using memory: %v", err)
		} else {
			store = rs
		}
	}

	return ginlimiter.NewMiddleware(limiter.New(store, rate))
}
