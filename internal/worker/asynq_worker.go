package worker

import (
	"context"

	"github.com/petmall-admin/internal/cache"
	"github.com/petmall-admin/internal/constants"
	"github.com/petmall-admin/internal/lifecycle"
	"github.com/petmall-admin/internal/logger"
	"github.com/petmall-admin/internal/provider"
	"github.com/petmall-admin/internal/queue"
	"github.com/petmall-admin/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderStatusChanged, c.handleOrderStatusChanged)
	mux.HandleFunc(queue.TaskShipmentStageChanged, c.handleShipmentStageChanged)
}

// handleOrderStatusChanged 订单状态变化后统计口径改变，清理仪表盘缓存
func (c *Consumer) handleOrderStatusChanged(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_status_changed_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	payload, err := queue.ParseOrderStatusChanged(task)
	if err != nil {
		logger.Warnw("worker_order_status_changed_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == "" {
		logger.Debugw("worker_order_status_changed_skip_invalid_payload")
		return nil
	}
	logger.Infow("order_status_changed",
		"order_id", payload.OrderID,
		"order_no", payload.OrderNo,
		"from", lifecycle.OrderLabel(payload.FromStatus),
		"to", lifecycle.OrderLabel(payload.ToStatus),
		"operator", payload.Operator,
	)
	if err := cache.InvalidateDashboard(ctx, service.DashboardSections...); err != nil {
		logger.Warnw("worker_dashboard_invalidate_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	return nil
}

// handleShipmentStageChanged 记录物流阶段变化；签收时清理统计缓存
func (c *Consumer) handleShipmentStageChanged(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_shipment_stage_changed_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	payload, err := queue.ParseShipmentStageChanged(task)
	if err != nil {
		logger.Warnw("worker_shipment_stage_changed_unmarshal_failed", "error", err)
		return err
	}
	if payload.ShipmentID == 0 {
		logger.Debugw("worker_shipment_stage_changed_skip_invalid_payload")
		return nil
	}
	event := "shipment_stage_advanced"
	if payload.Corrected {
		event = "shipment_stage_corrected"
	}
	logger.Infow(event,
		"shipment_id", payload.ShipmentID,
		"order_id", payload.OrderID,
		"from", lifecycle.ShipmentLabel(payload.FromStatus),
		"to", lifecycle.ShipmentLabel(payload.ToStatus),
	)
	if payload.ToStatus != constants.ShipmentStatusDelivered {
		return nil
	}
	if err := cache.InvalidateDashboard(ctx, service.DashboardSections...); err != nil {
		logger.Warnw("worker_dashboard_invalidate_failed", "shipment_id", payload.ShipmentID, "error", err)
		return err
	}
	return nil
}
