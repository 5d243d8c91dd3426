package middleware

import (
	"net/http"
	"strconv"

	"github.com/BIRU-sketch/Skill-Sphere/internal/pkg/ratelimit"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// RateLimitBuilder 按请求维度限流。keyFn 返回空字符串时放行，
// 比如解析不出 identifier 的畸形请求交给后面的校验去拒绝。
type RateLimitBuilder struct {
	limiter ratelimit.Limiter
	keyFn   func(ctx *gin.Context) string
	logger  *elog.Component
}

func NewRateLimitBuilder(limiter ratelimit.Limiter, keyFn func(ctx *gin.Context) string) *RateLimitBuilder {
	return &RateLimitBuilder{
		limiter: limiter,
		keyFn:   keyFn,
		logger:  elog.DefaultLogger,
	}
}

func (b *RateLimitBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		key := b.keyFn(ctx)
		if key == "" {
			ctx.Next()
			return
		}
		res, err := b.limiter.Allow(ctx.Request.Context(), key)
		if err != nil {
			// 限流器挂了不拦业务，只记日志
			b.logger.Error("限流器执行失败", elog.FieldErr(err))
			ctx.Next()
			return
		}
		ctx.Header("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
		ctx.Header("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))
		if !res.Allowed {
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"code": http.StatusTooManyRequests,
				"msg":  "尝试次数过多，请稍后再试",
			})
			return
		}
		ctx.Next()
	}
}
