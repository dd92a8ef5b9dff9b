package service

import (
	"github.com/petmall-admin/internal/queue"

	"github.com/hibiken/asynq"
)

// EventPublisher 生命周期事件投递（*queue.Client 实现）
type EventPublisher interface {
	EnqueueOrderStatusChanged(payload queue.OrderStatusChangedPayload, opts ...asynq.Option) error
	EnqueueShipmentStageChanged(payload queue.ShipmentStageChangedPayload, opts ...asynq.Option) error
}
