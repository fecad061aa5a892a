package middlewares

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"backend/commons/enums"
)

// RateLimit caps submissions per client IP over a 15 minute sliding window.
func RateLimit(max int64) gin.HandlerFunc {
	rate := limiter.Rate{
		Period: 15 * time.Minute,
		Limit:  max,
	}
	instance := limiter.New(memory.NewStore(), rate, limiter.WithTrustForwardHeader(true))
	return mgin.NewMiddleware(instance,
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   enums.THROTTLE_EXCEEDED,
				"message": "too many requests, please try again later",
			})
		}),
	)
}
