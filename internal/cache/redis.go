package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/petmall-admin/internal/config"
	"github.com/petmall-admin/internal/constants"

	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client
var redisPrefix string
var redisEnabled bool

// NewClient 按配置创建 Redis 客户端，返回客户端与键前缀
func NewClient(cfg *config.RedisConfig) (*redis.Client, string) {
	addr := "127.0.0.1"
	port := 6379
	prefix := constants.RedisPrefixDefault
	options := &redis.Options{}
	if cfg != nil {
		if strings.TrimSpace(cfg.Host) != "" {
			addr = strings.TrimSpace(cfg.Host)
		}
		if cfg.Port > 0 {
			port = cfg.Port
		}
		if strings.TrimSpace(cfg.Prefix) != "" {
			prefix = strings.TrimSpace(cfg.Prefix)
		}
		options.Password = cfg.Password
		options.DB = cfg.DB
	}
	options.Addr = fmt.Sprintf("%s:%d", addr, port)
	return redis.NewClient(options), prefix
}

// InitRedis 初始化 Redis 客户端
func InitRedis(cfg *config.RedisConfig) error {
	if cfg == nil || !cfg.Enabled {
		redisEnabled = false
		return nil
	}
	client, prefix := NewClient(cfg)
	Use(client, prefix)
	return nil
}

// Use 直接注入客户端（测试或复用已有连接）
func Use(client *redis.Client, prefix string) {
	redisClient = client
	redisPrefix = strings.TrimSpace(prefix)
	if redisPrefix == "" {
		redisPrefix = constants.RedisPrefixDefault
	}
	redisEnabled = client != nil
}

// Reset 关闭并清空全局客户端
func Reset() {
	if redisClient != nil {
		_ = redisClient.Close()
	}
	redisClient = nil
	redisEnabled = false
}

// Enabled 判断缓存是否启用
func Enabled() bool {
	return redisEnabled && redisClient != nil
}

// Client 获取 Redis 客户端
func Client() *redis.Client {
	if !Enabled() {
		return nil
	}
	return redisClient
}

// Ping 探测连接
func Ping(ctx context.Context) error {
	if !Enabled() {
		return nil
	}
	return redisClient.Ping(ctx).Err()
}

// GetJSON 获取 JSON 缓存
func GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	if !Enabled() {
		return false, nil
	}
	val, err := redisClient.Get(ctx, Key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON 写入 JSON 缓存
func SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if !Enabled() {
		return nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return redisClient.Set(ctx, Key(key), payload, ttl).Err()
}

// Del 删除缓存
func Del(ctx context.Context, key string) error {
	if !Enabled() {
		return nil
	}
	return redisClient.Del(ctx, Key(key)).Err()
}

// Key 拼接带前缀的键
func Key(key string) string {
	return JoinKey(redisPrefix, key)
}

// JoinKey 用指定前缀拼接键
func JoinKey(prefix, key string) string {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return prefix
	}
	return fmt.Sprintf("%s:%s", prefix, trimmed)
}
