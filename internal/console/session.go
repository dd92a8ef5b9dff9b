package console

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/petmall-admin/internal/adminclient"
	"github.com/petmall-admin/internal/cache"
	"github.com/petmall-admin/internal/constants"
	"github.com/petmall-admin/internal/logger"

	"github.com/redis/go-redis/v9"
)

// ErrNoSession 会话槽位为空
var ErrNoSession = errors.New("未登录")

// Session 当前登录上下文，显式传给各视图
type Session struct {
	Token     string             `json:"token"`
	Admin     *adminclient.Admin `json:"admin"`
	ExpiresAt time.Time          `json:"expires_at"`
	BaseURL   string             `json:"base_url,omitempty"`
}

// Expired 判断令牌是否已过期，零值视为不过期
func (s *Session) Expired(now time.Time) bool {
	if s == nil {
		return true
	}
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// Username 当前管理员用户名
func (s *Session) Username() string {
	if s == nil || s.Admin == nil {
		return ""
	}
	return s.Admin.Username
}

// SessionStore 会话槽位，内容为不透明 JSON
type SessionStore interface {
	Load(ctx context.Context) (*Session, error)
	Save(ctx context.Context, session *Session) error
	Clear(ctx context.Context) error
}

// FileStore 目录下以 adminUser 命名的单个文件
type FileStore struct {
	dir string
}

// NewFileStore 创建文件会话存储；dir 为空时使用用户配置目录
func NewFileStore(dir string) (*FileStore, error) {
	if strings.TrimSpace(dir) == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve session dir: %w", err)
		}
		dir = filepath.Join(base, "petadmin")
	}
	return &FileStore{dir: dir}, nil
}

// Path 会话文件路径
func (s *FileStore) Path() string {
	return filepath.Join(s.dir, constants.SessionKey)
}

// Load 读取会话
func (s *FileStore) Load(_ context.Context) (*Session, error) {
	data, err := os.ReadFile(s.Path())
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}
	return decodeSession(data)
}

// Save 写入会话，文件权限 0600
func (s *FileStore) Save(_ context.Context, session *Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	tmp := s.Path() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.Path())
}

// Clear 清空会话，不存在时不报错
func (s *FileStore) Clear(_ context.Context) error {
	err := os.Remove(s.Path())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// RedisStore 会话保存在 <prefix>:session:adminUser
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore 创建 Redis 会话存储
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if strings.TrimSpace(prefix) == "" {
		prefix = constants.RedisPrefixDefault
	}
	return &RedisStore{
		client: client,
		key:    cache.JoinKey(cache.JoinKey(prefix, "session"), constants.SessionKey),
	}
}

// Key 会话键
func (s *RedisStore) Key() string {
	return s.key
}

// Load 读取会话
func (s *RedisStore) Load(ctx context.Context) (*Session, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}
	return decodeSession(data)
}

// Save 写入会话，令牌有过期时间时同步设置 TTL
func (s *RedisStore) Save(ctx context.Context, session *Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	var ttl time.Duration
	if session != nil && !session.ExpiresAt.IsZero() {
		ttl = time.Until(session.ExpiresAt)
		if ttl <= 0 {
			return s.Clear(ctx)
		}
	}
	return s.client.Set(ctx, s.key, data, ttl).Err()
}

// Clear 清空会话
func (s *RedisStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}

func decodeSession(data []byte) (*Session, error) {
	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if strings.TrimSpace(session.Token) == "" {
		return nil, ErrNoSession
	}
	return &session, nil
}

// Restore 启动时检查槽位；过期会话会被清掉
func Restore(ctx context.Context, store SessionStore, now time.Time) (*Session, error) {
	session, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if session.Expired(now) {
		logger.Infow("console_session_expired", "admin", session.Username())
		if err := store.Clear(ctx); err != nil {
			logger.Warnw("console_session_clear_failed", "error", err)
		}
		return nil, ErrNoSession
	}
	return session, nil
}

// Login 登录并写入会话槽位
func Login(ctx context.Context, client *adminclient.Client, store SessionStore, form adminclient.LoginForm) (*Session, error) {
	result, err := client.Login(ctx, form)
	if err != nil {
		return nil, err
	}
	session := &Session{
		Token:     result.AccessToken,
		Admin:     result.Admin,
		ExpiresAt: result.ExpiresAt,
		BaseURL:   client.BaseURL(),
	}
	if err := store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	logger.Infow("console_login", "admin", session.Username())
	return session, nil
}

// Logout 清空会话槽位
func Logout(ctx context.Context, store SessionStore, session *Session) error {
	if err := store.Clear(ctx); err != nil {
		return err
	}
	logger.Infow("console_logout", "admin", session.Username())
	return nil
}

// Client 为会话创建带令牌的客户端
func (s *Session) Client(baseURL string, opts ...adminclient.Option) *adminclient.Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = s.BaseURL
	}
	opts = append(opts, adminclient.WithToken(s.Token))
	return adminclient.New(baseURL, opts...)
}
