package console

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/petmall-admin/internal/adminclient"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSession(expires time.Time) *Session {
	return &Session{
		Token:     "tok-1",
		Admin:     &adminclient.Admin{ID: 1, Username: "admin"},
		ExpiresAt: expires,
		BaseURL:   "http://127.0.0.1:8000",
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, ErrNoSession)

	require.NoError(t, store.Save(ctx, sampleSession(time.Now().Add(time.Hour))))
	assert.Equal(t, filepath.Join(dir, "adminUser"), store.Path())
	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", loaded.Token)
	assert.Equal(t, "admin", loaded.Username())

	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))
	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestRedisStoreUsesSessionKey(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	store := NewRedisStore(client, "pmtest")
	ctx := context.Background()

	assert.Equal(t, "pmtest:session:adminUser", store.Key())
	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, ErrNoSession)

	require.NoError(t, store.Save(ctx, sampleSession(time.Now().Add(time.Hour))))
	assert.True(t, mr.Exists("pmtest:session:adminUser"))
	assert.Greater(t, mr.TTL("pmtest:session:adminUser"), 59*time.Minute)

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", loaded.Token)

	require.NoError(t, store.Clear(ctx))
	assert.False(t, mr.Exists("pmtest:session:adminUser"))
}

func TestRestoreClearsExpiredSession(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, store.Save(ctx, sampleSession(now.Add(-time.Minute))))
	_, err = Restore(ctx, store, now)
	assert.ErrorIs(t, err, ErrNoSession)
	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, ErrNoSession)

	require.NoError(t, store.Save(ctx, sampleSession(now.Add(time.Hour))))
	session, err := Restore(ctx, store, now)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", session.Token)
}

func TestLoginPersistsAndLogoutClears(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"jwt-abc","token_type":"bearer","expires_at":"2099-01-01T00:00:00Z","admin":{"id":1,"username":"admin"}}`))
	}))
	t.Cleanup(srv.Close)

	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()
	client := adminclient.New(srv.URL)

	session, err := Login(ctx, client, store, adminclient.LoginForm{Identifier: "admin", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", session.Token)
	assert.Equal(t, srv.URL, session.BaseURL)

	restored, err := Restore(ctx, store, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "admin", restored.Username())
	assert.Equal(t, "jwt-abc", restored.Client("").Token())

	require.NoError(t, Logout(ctx, store, restored))
	_, err = Restore(ctx, store, time.Now())
	assert.ErrorIs(t, err, ErrNoSession)
}
