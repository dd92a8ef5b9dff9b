package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/petmall-admin/internal/constants"
	"github.com/petmall-admin/internal/lifecycle"
	"github.com/petmall-admin/internal/logger"
	"github.com/petmall-admin/internal/models"
	"github.com/petmall-admin/internal/queue"
	"github.com/petmall-admin/internal/repository"

	"gorm.io/gorm"
)

// OrderService 订单服务
type OrderService struct {
	orderRepo    repository.OrderRepository
	shipmentRepo repository.ShipmentRepository
	logRepo      repository.OrderStatusLogRepository
	publisher    EventPublisher
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, shipmentRepo repository.ShipmentRepository, logRepo repository.OrderStatusLogRepository, publisher EventPublisher) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		shipmentRepo: shipmentRepo,
		logRepo:      logRepo,
		publisher:    publisher,
	}
}

// OrderListInput 订单列表查询
type OrderListInput struct {
	Skip        int
	Limit       int
	Status      string
	OrderNumber string
	SortBy      string
}

// OrderDetail 订单详情：订单、物流与状态流水
type OrderDetail struct {
	Order    *models.Order
	Shipment *models.Shipment
	Logs     []models.OrderStatusLog
}

// List 管理端订单列表
func (s *OrderService) List(input OrderListInput) ([]models.Order, int64, repository.Window, error) {
	status, err := normalizeStatusFilter(input.Status)
	if err != nil {
		return nil, 0, repository.Window{}, err
	}
	sortBy := strings.TrimSpace(input.SortBy)
	switch sortBy {
	case constants.OrderSortAmountAsc, constants.OrderSortAmountDesc:
	default:
		sortBy = constants.OrderSortDefault
	}
	window := repository.Window{Skip: input.Skip, Limit: input.Limit}.Normalize()
	orders, total, err := s.orderRepo.ListAdmin(repository.OrderListFilter{
		Window:  window,
		Status:  status,
		OrderNo: strings.TrimSpace(input.OrderNumber),
		SortBy:  sortBy,
	})
	if err != nil {
		return nil, 0, window, err
	}
	return orders, total, window, nil
}

// normalizeStatusFilter “全部”类占位值视为不过滤
func normalizeStatusFilter(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if isAllFilter(trimmed) {
		return "", nil
	}
	status, err := lifecycle.ParseOrderStatus(trimmed)
	if err != nil {
		return "", ErrOrderStatusInvalid
	}
	return string(status), nil
}

func isAllFilter(raw string) bool {
	switch strings.TrimSpace(raw) {
	case "", constants.FilterAll, constants.FilterAllZh, constants.FilterAllStatus:
		return true
	}
	return false
}

// Get 获取订单
func (s *OrderService) Get(id string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// GetDetail 获取订单详情
func (s *OrderService) GetDetail(id string) (*OrderDetail, error) {
	order, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	shipment, err := s.shipmentRepo.GetByOrderID(order.ID)
	if err != nil {
		return nil, err
	}
	logs, err := s.logRepo.ListByOrder(order.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: order, Shipment: shipment, Logs: logs}, nil
}

// UpdateOrderStatus 按状态机迁移订单；同状态视为成功的空操作。
// 读取、校验与写入在同一事务内完成：行锁串行化并发请求，条件更新保证状态未被他人改动
func (s *OrderService) UpdateOrderStatus(id string, targetStatus string, operator string) (*models.Order, error) {
	if strings.TrimSpace(targetStatus) == "" {
		return nil, ErrOrderStatusRequired
	}
	target, err := lifecycle.ParseOrderStatus(targetStatus)
	if err != nil {
		return nil, ErrOrderStatusInvalid
	}

	var (
		from    lifecycle.OrderStatus
		orderNo string
		changed bool
	)
	now := time.Now()
	err = s.orderRepo.Transaction(func(tx *gorm.DB) error {
		orders := s.orderRepo.WithTx(tx)
		locked, err := orders.GetForUpdate(id)
		if err != nil {
			return err
		}
		if locked == nil {
			return ErrOrderNotFound
		}
		from, orderNo = lifecycle.OrderStatus(locked.Status), locked.OrderNo
		if from == target {
			return nil
		}
		if !lifecycle.CanTransition(from, target) {
			return &TransitionError{From: string(from), To: string(target)}
		}
		ok, err := orders.CompareAndSetStatus(locked.ID, string(from), string(target))
		if err != nil {
			return err
		}
		if !ok {
			logger.Warnw("order_status_changed_concurrently", "order_id", locked.ID, "from", from, "to", target)
			return &TransitionError{From: string(from), To: string(target)}
		}
		if target == lifecycle.OrderShipped {
			if err := ensureShipment(s.shipmentRepo.WithTx(tx), locked.ID, now); err != nil {
				return err
			}
		}
		changed = true
		return s.logRepo.WithTx(tx).Create(&models.OrderStatusLog{
			OrderID:    locked.ID,
			OrderNo:    orderNo,
			FromStatus: string(from),
			ToStatus:   string(target),
			Operator:   operator,
			CreatedAt:  now,
		})
	})
	if err != nil {
		var transitionErr *TransitionError
		if errors.Is(err, ErrOrderNotFound) || errors.As(err, &transitionErr) {
			return nil, err
		}
		return nil, fmt.Errorf("update order status: %w", err)
	}

	order, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if changed {
		s.publishStatusChanged(order, from, target, operator, now)
	}
	return order, nil
}

// ensureShipment 订单进入已发货时补建物流记录
func ensureShipment(repo *repository.GormShipmentRepository, orderID string, now time.Time) error {
	existing, err := repo.GetByOrderID(orderID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	return repo.Create(&models.Shipment{
		OrderID:   orderID,
		Status:    constants.ShipmentStatusAwaitingPickup,
		ShippedAt: now,
	})
}

func (s *OrderService) publishStatusChanged(order *models.Order, from, to lifecycle.OrderStatus, operator string, at time.Time) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.EnqueueOrderStatusChanged(queue.OrderStatusChangedPayload{
		OrderID:    order.ID,
		OrderNo:    order.OrderNo,
		FromStatus: string(from),
		ToStatus:   string(to),
		Operator:   operator,
		ChangedAt:  at,
	})
	if err != nil {
		logger.Warnw("order_enqueue_status_changed_failed",
			"order_id", order.ID,
			"status", string(to),
			"error", err,
		)
	}
}

// CreateOrderInput 创建订单（种子数据与测试使用）
type CreateOrderInput struct {
	UserID        string
	PaymentMethod string
	Address       models.AddressSnapshot
	Items         []CreateOrderItem
	Status        string
	CreatedAt     time.Time
}

// CreateOrderItem 订单项
type CreateOrderItem struct {
	ProductID string
	Quantity  int
	Price     models.Money
}

// Create 创建订单并计算总额
func (s *OrderService) Create(input CreateOrderInput) (*models.Order, error) {
	if len(input.Items) == 0 {
		return nil, &FieldError{Field: "items", Message: "is required"}
	}
	status := lifecycle.OrderPending
	if strings.TrimSpace(input.Status) != "" {
		parsed, err := lifecycle.ParseOrderStatus(input.Status)
		if err != nil {
			return nil, ErrOrderStatusInvalid
		}
		status = parsed
	}
	orderNo, err := generateOrderNo()
	if err != nil {
		return nil, err
	}
	order := &models.Order{
		OrderNo:         orderNo,
		UserID:          input.UserID,
		PaymentMethod:   input.PaymentMethod,
		Status:          string(status),
		AddressSnapshot: input.Address,
		CreatedAt:       input.CreatedAt,
	}
	total := models.Money{}
	for _, item := range input.Items {
		if item.Quantity < 1 {
			return nil, &FieldError{Field: "quantity", Message: "must be at least 1"}
		}
		if item.Price.IsNegative() {
			return nil, &FieldError{Field: "price", Message: "must be >= 0"}
		}
		order.Items = append(order.Items, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
		total = total.Add(item.Price.Mul(item.Quantity))
	}
	order.TotalAmount = total
	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

// generateOrderNo 生成订单号：PM + 时间 + 6 位随机数
func generateOrderNo() (string, error) {
	suffix, err := randNumeric(6)
	if err != nil {
		return "", err
	}
	return "PM" + time.Now().Format("20060102150405") + suffix, nil
}

func randNumeric(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("invalid length")
	}
	var sb strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		sb.WriteByte(byte('0' + n.Int64()))
	}
	return sb.String(), nil
}
