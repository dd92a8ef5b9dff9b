package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/petmall-admin/internal/http/response"
	"github.com/petmall-admin/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimitKeyFunc 从请求中提取计数维度
type RateLimitKeyFunc func(*gin.Context) string

// RateLimitRule 固定窗口计数；BlockSeconds > 0 时首次超限把计数键的寿命延长为封禁时长
type RateLimitRule struct {
	Prefix        string
	WindowSeconds int
	MaxRequests   int
	BlockSeconds  int
}

func (r RateLimitRule) enabled() bool {
	return r.WindowSeconds > 0 && r.MaxRequests > 0
}

func (r RateLimitRule) key(dimension string) string {
	if r.Prefix == "" {
		return dimension
	}
	return r.Prefix + ":" + dimension
}

// KEYS[1]=计数键 ARGV=窗口秒数,上限,封禁秒数；返回 {计数, 剩余秒数}
var rateLimitScript = redis.NewScript(`
local n = redis.call("INCR", KEYS[1])
if n == 1 then
	redis.call("EXPIRE", KEYS[1], ARGV[1])
end
if n == tonumber(ARGV[2]) + 1 and tonumber(ARGV[3]) > 0 then
	redis.call("EXPIRE", KEYS[1], ARGV[3])
end
return {n, redis.call("TTL", KEYS[1])}
`)

// RateLimitMiddleware 基于 Redis 的登录限流；未配置 Redis 或规则为空时放行
func RateLimitMiddleware(client *redis.Client, rule RateLimitRule, keyFunc RateLimitKeyFunc) gin.HandlerFunc {
	if keyFunc == nil {
		keyFunc = KeyByIP
	}
	return func(c *gin.Context) {
		if client == nil || !rule.enabled() {
			c.Next()
			return
		}
		dimension := strings.TrimSpace(keyFunc(c))
		if dimension == "" {
			dimension = c.ClientIP()
		}
		key := rule.key(dimension)

		counters, err := rateLimitScript.Run(c.Request.Context(), client, []string{key},
			rule.WindowSeconds, rule.MaxRequests, rule.BlockSeconds).Int64Slice()
		if err != nil || len(counters) < 2 {
			logger.Warnw("rate_limit_unavailable", "key", key, "error", err)
			response.Error(c, response.CodeInternal, "Rate limiter unavailable")
			return
		}
		if hits := counters[0]; hits > int64(rule.MaxRequests) {
			logger.Warnw("rate_limit_exceeded", "key", key, "count", hits)
			response.Error(c, response.CodeTooManyRequests,
				fmt.Sprintf("Too many attempts, please retry in %d seconds", retryAfter(counters[1], rule.WindowSeconds)))
			return
		}
		c.Next()
	}
}

func retryAfter(ttl int64, window int) int {
	if ttl >= 1 {
		return int(ttl)
	}
	if window >= 1 {
		return window
	}
	return 1
}

// KeyByIP 按客户端 IP 计数
func KeyByIP(c *gin.Context) string {
	return c.ClientIP()
}

// KeyByIPAndJSONField 按请求体中第一个非空字段（小写）加 IP 计数，字段都为空时退回 IP
func KeyByIPAndJSONField(fields ...string) RateLimitKeyFunc {
	return func(c *gin.Context) string {
		payload := peekJSONBody(c)
		for _, field := range fields {
			text, _ := payload[field].(string)
			if value := strings.ToLower(strings.TrimSpace(text)); value != "" {
				return value + "|" + c.ClientIP()
			}
		}
		return c.ClientIP()
	}
}

// peekJSONBody 读取并还原请求体，供后续 handler 再次绑定
func peekJSONBody(c *gin.Context) map[string]any {
	if c == nil || c.Request == nil || c.Request.Body == nil {
		return nil
	}
	body, err := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(bytes.NewReader(body))
	if err != nil || len(body) == 0 {
		return nil
	}
	var payload map[string]any
	if json.Unmarshal(body, &payload) != nil {
		return nil
	}
	return payload
}
