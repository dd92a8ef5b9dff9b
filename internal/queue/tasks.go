package queue

import (
	"encoding/json"
	"time"

	"github.com/petmall-admin/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderStatusChanged 订单状态变更事件
	TaskOrderStatusChanged = constants.TaskOrderStatusChanged
	// TaskShipmentStageChanged 物流阶段变更事件
	TaskShipmentStageChanged = constants.TaskShipmentStageChanged
)

// OrderStatusChangedPayload 订单状态变更载荷
type OrderStatusChangedPayload struct {
	OrderID    string    `json:"order_id"`
	OrderNo    string    `json:"order_number"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	Operator   string    `json:"operator"`
	ChangedAt  time.Time `json:"changed_at"`
}

// ShipmentStageChangedPayload 物流阶段变更载荷
type ShipmentStageChangedPayload struct {
	ShipmentID uint      `json:"shipment_id"`
	OrderID    string    `json:"order_id"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	Corrected  bool      `json:"corrected"` // 通过编辑直接改写，而非逐级推进
	ChangedAt  time.Time `json:"changed_at"`
}

// NewOrderStatusChangedTask 创建订单状态变更任务
func NewOrderStatusChangedTask(payload OrderStatusChangedPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderStatusChanged, body), nil
}

// NewShipmentStageChangedTask 创建物流阶段变更任务
func NewShipmentStageChangedTask(payload ShipmentStageChangedPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskShipmentStageChanged, body), nil
}

// ParseOrderStatusChanged 解析订单状态变更载荷
func ParseOrderStatusChanged(task *asynq.Task) (OrderStatusChangedPayload, error) {
	var payload OrderStatusChangedPayload
	err := json.Unmarshal(task.Payload(), &payload)
	return payload, err
}

// ParseShipmentStageChanged 解析物流阶段变更载荷
func ParseShipmentStageChanged(task *asynq.Task) (ShipmentStageChangedPayload, error) {
	var payload ShipmentStageChangedPayload
	err := json.Unmarshal(task.Payload(), &payload)
	return payload, err
}
