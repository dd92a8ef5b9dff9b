package lifecycle

import (
	"fmt"
	"strings"

	"github.com/petmall-admin/internal/constants"
)

// OrderStatus 订单生命周期状态
type OrderStatus string

const (
	OrderPending   OrderStatus = constants.OrderStatusPending
	OrderPaid      OrderStatus = constants.OrderStatusPaid
	OrderShipped   OrderStatus = constants.OrderStatusShipped
	OrderCompleted OrderStatus = constants.OrderStatusCompleted
	OrderCancelled OrderStatus = constants.OrderStatusCancelled
)

// OrderStatuses 全部订单状态（按生命周期顺序）
var OrderStatuses = []OrderStatus{OrderPending, OrderPaid, OrderShipped, OrderCompleted, OrderCancelled}

// ActionName 操作员可触发的订单动作
type ActionName string

const (
	ActionMarkPaid ActionName = "mark_paid"
	ActionShip     ActionName = "ship"
	ActionComplete ActionName = "complete"
	ActionCancel   ActionName = "cancel"
)

// OrderAction 订单动作按钮
type OrderAction struct {
	Name   ActionName  `json:"name"`
	Target OrderStatus `json:"target"`
	Label  string      `json:"label"`
}

// 出边顺序即按钮展示顺序
var orderTransitions = map[OrderStatus][]OrderAction{
	OrderPending: {
		{Name: ActionMarkPaid, Target: OrderPaid, Label: "确认收款"},
		{Name: ActionCancel, Target: OrderCancelled, Label: "取消订单"},
	},
	OrderPaid: {
		{Name: ActionShip, Target: OrderShipped, Label: "立即发货"},
		{Name: ActionCancel, Target: OrderCancelled, Label: "取消订单"},
	},
	OrderShipped: {
		{Name: ActionComplete, Target: OrderCompleted, Label: "完成订单"},
	},
	OrderCompleted: {},
	OrderCancelled: {},
}

// ParseOrderStatus 解析订单状态
func ParseOrderStatus(raw string) (OrderStatus, error) {
	status := OrderStatus(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := orderTransitions[status]; !ok {
		return "", fmt.Errorf("unknown order status: %q", raw)
	}
	return status, nil
}

// Valid 是否为已知状态
func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// Terminal 是否为终态
func (s OrderStatus) Terminal() bool {
	return s.Valid() && len(orderTransitions[s]) == 0
}

func (s OrderStatus) String() string {
	return string(s)
}

// AllowedNext 返回当前状态允许的下一状态集合
func AllowedNext(from OrderStatus) []OrderStatus {
	actions := orderTransitions[from]
	next := make([]OrderStatus, 0, len(actions))
	for _, action := range actions {
		next = append(next, action.Target)
	}
	return next
}

// CanTransition 判断 from -> to 是否为合法迁移（同状态不算迁移）
func CanTransition(from, to OrderStatus) bool {
	for _, action := range orderTransitions[from] {
		if action.Target == to {
			return true
		}
	}
	return false
}

// CanCancel 仅待付款、待发货可取消
func CanCancel(status OrderStatus) bool {
	return CanTransition(status, OrderCancelled)
}

// OfferedActions 返回当前状态下应展示的动作按钮，与 AllowedNext 一一对应
func OfferedActions(status OrderStatus) []OrderAction {
	actions := orderTransitions[status]
	out := make([]OrderAction, len(actions))
	copy(out, actions)
	return out
}

// ActionFor 查找迁移到 target 的动作
func ActionFor(from, target OrderStatus) (OrderAction, bool) {
	for _, action := range orderTransitions[from] {
		if action.Target == target {
			return action, true
		}
	}
	return OrderAction{}, false
}

// ActionByName 根据动作名查找当前状态下的动作
func ActionByName(from OrderStatus, name ActionName) (OrderAction, bool) {
	for _, action := range orderTransitions[from] {
		if action.Name == name {
			return action, true
		}
	}
	return OrderAction{}, false
}
