package app

import (
	"context"
	"errors"
	"net/http"
	"time"
)

const (
	httpServiceName   = "http"
	readHeaderTimeout = 10 * time.Second
)

// HTTPService 管理后台 REST 接口
type HTTPService struct {
	server *http.Server
}

// NewHTTPService 创建 HTTP 服务
func NewHTTPService(addr string, handler http.Handler) *HTTPService {
	return &HTTPService{server: &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}}
}

func (s *HTTPService) Name() string { return httpServiceName }

// Start 阻塞监听；关停由 Stop 触发，在途请求不随运行上下文取消
func (s *HTTPService) Start(context.Context) error {
	if s == nil || s.server == nil {
		return errors.New("http server not initialized")
	}
	err := s.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Stop 等待在途请求结束，超出 ctx 期限则强制返回
func (s *HTTPService) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
