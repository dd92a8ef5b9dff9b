package queue

import (
	"net"
	"strconv"
	"strings"

	"github.com/petmall-admin/internal/config"
	"github.com/petmall-admin/internal/constants"

	"github.com/hibiken/asynq"
)

// DefaultQueue 变更事件默认投递的队列
const DefaultQueue = constants.QueueDefault

const (
	defaultConcurrency = 5
	defaultMaxRetry    = 3
)

// Client 变更事件投递端；队列未启用或为 nil 时投递为空操作
type Client struct {
	client *asynq.Client
}

// NewClient 创建投递端
func NewClient(cfg *config.QueueConfig) (*Client, error) {
	if cfg == nil || !cfg.Enabled {
		return &Client{}, nil
	}
	return &Client{client: asynq.NewClient(redisOpt(cfg))}, nil
}

// Enabled 是否真正投递
func (c *Client) Enabled() bool {
	return c != nil && c.client != nil
}

// Close 关闭底层连接
func (c *Client) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Close()
}

// EnqueueOrderStatusChanged 投递订单状态变更
func (c *Client) EnqueueOrderStatusChanged(payload OrderStatusChangedPayload, opts ...asynq.Option) error {
	return c.publish(func() (*asynq.Task, error) { return NewOrderStatusChangedTask(payload) }, opts)
}

// EnqueueShipmentStageChanged 投递物流阶段变更
func (c *Client) EnqueueShipmentStageChanged(payload ShipmentStageChangedPayload, opts ...asynq.Option) error {
	return c.publish(func() (*asynq.Task, error) { return NewShipmentStageChangedTask(payload) }, opts)
}

func (c *Client) publish(build func() (*asynq.Task, error), opts []asynq.Option) error {
	if !c.Enabled() {
		return nil
	}
	task, err := build()
	if err != nil {
		return err
	}
	_, err = c.client.Enqueue(task, append([]asynq.Option{asynq.Queue(DefaultQueue), asynq.MaxRetry(defaultMaxRetry)}, opts...)...)
	return err
}

// BuildServerConfig 消费端的连接与并发配置
func BuildServerConfig(cfg *config.QueueConfig) (asynq.RedisClientOpt, asynq.Config) {
	serverCfg := asynq.Config{
		Concurrency: defaultConcurrency,
		Queues:      map[string]int{DefaultQueue: 1},
	}
	if cfg != nil && cfg.Concurrency > 0 {
		serverCfg.Concurrency = cfg.Concurrency
	}
	if cfg != nil && len(cfg.Queues) > 0 {
		serverCfg.Queues = cfg.Queues
	}
	return redisOpt(cfg), serverCfg
}

func redisOpt(cfg *config.QueueConfig) asynq.RedisClientOpt {
	host, port := "127.0.0.1", 6379
	var opt asynq.RedisClientOpt
	if cfg != nil {
		if h := strings.TrimSpace(cfg.Host); h != "" {
			host = h
		}
		if cfg.Port > 0 {
			port = cfg.Port
		}
		opt.Password = cfg.Password
		opt.DB = cfg.DB
	}
	opt.Addr = net.JoinHostPort(host, strconv.Itoa(port))
	return opt
}
