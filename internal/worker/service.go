package worker

import (
	"context"
	"errors"

	"github.com/petmall-admin/internal/config"
	"github.com/petmall-admin/internal/logger"
	"github.com/petmall-admin/internal/queue"

	"github.com/hibiken/asynq"
)

const serviceName = "worker"

// Service 托管 asynq 服务端，消费订单/物流变更事件
type Service struct {
	server *asynq.Server
	mux    *asynq.ServeMux
}

// NewService 按队列配置创建消费服务；队列未启用时报错
func NewService(cfg *config.QueueConfig, consumer *Consumer) (*Service, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("queue disabled")
	}
	if consumer == nil {
		return nil, errors.New("consumer is nil")
	}
	redisOpt, serverCfg := queue.BuildServerConfig(cfg)
	serverCfg.ErrorHandler = asynq.ErrorHandlerFunc(logTaskFailure)

	mux := asynq.NewServeMux()
	consumer.Register(mux)
	return &Service{server: asynq.NewServer(redisOpt, serverCfg), mux: mux}, nil
}

// logTaskFailure 记录每次失败的任务，重试由 asynq 负责
func logTaskFailure(ctx context.Context, task *asynq.Task, err error) {
	retried, _ := asynq.GetRetryCount(ctx)
	maxRetry, _ := asynq.GetMaxRetry(ctx)
	logger.Warnw("worker_task_failed",
		"task", task.Type(),
		"retried", retried,
		"max_retry", maxRetry,
		"error", err,
	)
}

func (s *Service) Name() string { return serviceName }

// Start 阻塞运行直到 Stop 被调用
func (s *Service) Start(_ context.Context) error {
	if s == nil || s.server == nil || s.mux == nil {
		return errors.New("worker not initialized")
	}
	return s.server.Run(s.mux)
}

// Stop 等待在途任务处理完毕后退出
func (s *Service) Stop(_ context.Context) error {
	if s != nil && s.server != nil {
		s.server.Shutdown()
	}
	return nil
}
