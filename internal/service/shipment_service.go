package service

import (
	"strings"
	"time"

	"github.com/petmall-admin/internal/lifecycle"
	"github.com/petmall-admin/internal/logger"
	"github.com/petmall-admin/internal/models"
	"github.com/petmall-admin/internal/queue"
	"github.com/petmall-admin/internal/repository"
)

// ShipmentService 物流服务
type ShipmentService struct {
	shipmentRepo repository.ShipmentRepository
	orderRepo    repository.OrderRepository
	publisher    EventPublisher
}

// NewShipmentService 创建物流服务
func NewShipmentService(shipmentRepo repository.ShipmentRepository, orderRepo repository.OrderRepository, publisher EventPublisher) *ShipmentService {
	return &ShipmentService{
		shipmentRepo: shipmentRepo,
		orderRepo:    orderRepo,
		publisher:    publisher,
	}
}

// ShipmentListInput 物流列表查询
type ShipmentListInput struct {
	Skip   int
	Limit  int
	Search string
	Status string
}

// CreateShipmentInput 手动创建物流记录
type CreateShipmentInput struct {
	OrderID             string
	Carrier             string
	TrackingNumber      string
	Status              string
	EstimatedDeliveryAt *time.Time
}

// CorrectShipmentInput 编辑物流记录；nil 字段保持不变
type CorrectShipmentInput struct {
	Carrier             *string
	TrackingNumber      *string
	Status              *string
	EstimatedDeliveryAt *time.Time
}

// List 物流列表
func (s *ShipmentService) List(input ShipmentListInput) ([]models.Shipment, int64, repository.Window, error) {
	status := ""
	if !isAllFilter(input.Status) {
		parsed, err := lifecycle.ParseShipmentStatus(input.Status)
		if err != nil {
			return nil, 0, repository.Window{}, ErrShipmentStatusBad
		}
		status = string(parsed)
	}
	window := repository.Window{Skip: input.Skip, Limit: input.Limit}.Normalize()
	shipments, total, err := s.shipmentRepo.ListAdmin(repository.ShipmentListFilter{
		Window: window,
		Search: strings.TrimSpace(input.Search),
		Status: status,
	})
	if err != nil {
		return nil, 0, window, err
	}
	return shipments, total, window, nil
}

// Get 获取物流记录
func (s *ShipmentService) Get(id uint) (*models.Shipment, error) {
	shipment, err := s.shipmentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shipment == nil {
		return nil, ErrShipmentNotFound
	}
	return shipment, nil
}

// GetByOrder 按订单查物流
func (s *ShipmentService) GetByOrder(orderID string) (*models.Shipment, error) {
	shipment, err := s.shipmentRepo.GetByOrderID(orderID)
	if err != nil {
		return nil, err
	}
	if shipment == nil {
		return nil, ErrShipmentNotFound
	}
	return shipment, nil
}

// Create 为已发货（或已完成但缺少记录）的订单补建物流记录，一个订单只允许一条；
// 待付款、待发货与已取消的订单不能有物流记录，否则取消将不再是发货前的操作
func (s *ShipmentService) Create(input CreateShipmentInput) (*models.Shipment, error) {
	order, err := s.orderRepo.GetByID(strings.TrimSpace(input.OrderID))
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	switch lifecycle.OrderStatus(order.Status) {
	case lifecycle.OrderShipped, lifecycle.OrderCompleted:
	default:
		return nil, ErrShipmentOrderNotShipped
	}
	existing, err := s.shipmentRepo.GetByOrderID(order.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrShipmentExists
	}
	status := lifecycle.ShipmentAwaitingPickup
	if strings.TrimSpace(input.Status) != "" {
		parsed, err := lifecycle.ParseShipmentStatus(input.Status)
		if err != nil {
			return nil, ErrShipmentStatusBad
		}
		status = parsed
	}
	shipment := &models.Shipment{
		OrderID:             order.ID,
		Carrier:             strings.TrimSpace(input.Carrier),
		TrackingNumber:      strings.TrimSpace(input.TrackingNumber),
		Status:              string(status),
		ShippedAt:           time.Now(),
		EstimatedDeliveryAt: input.EstimatedDeliveryAt,
	}
	if err := s.shipmentRepo.Create(shipment); err != nil {
		return nil, err
	}
	return s.Get(shipment.ID)
}

// Advance 推进到下一阶段；target 必须恰好是下一阶段，防止并发下跨级
func (s *ShipmentService) Advance(id uint, target string) (*models.Shipment, error) {
	shipment, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	current, err := lifecycle.ParseShipmentStatus(shipment.Status)
	if err != nil {
		return nil, ErrShipmentStatusBad
	}
	next, ok := lifecycle.NextStage(current)
	if !ok {
		return nil, ErrShipmentDelivered
	}
	if strings.TrimSpace(target) != "" {
		want, err := lifecycle.ParseShipmentStatus(target)
		if err != nil {
			return nil, ErrShipmentStatusBad
		}
		if !lifecycle.IsSingleStep(current, want) {
			return nil, ErrShipmentStageInvalid
		}
	}
	shipment.Status = string(next)
	if err := s.shipmentRepo.Update(shipment); err != nil {
		return nil, err
	}
	s.publishStageChanged(shipment, current, next, false)
	return s.Get(id)
}

// Correct 特权编辑：可直接改写承运商、运单号、预计送达与任一阶段
func (s *ShipmentService) Correct(id uint, input CorrectShipmentInput) (*models.Shipment, error) {
	shipment, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	from := lifecycle.ShipmentStatus(shipment.Status)
	if input.Carrier != nil {
		shipment.Carrier = strings.TrimSpace(*input.Carrier)
	}
	if input.TrackingNumber != nil {
		shipment.TrackingNumber = strings.TrimSpace(*input.TrackingNumber)
	}
	if input.EstimatedDeliveryAt != nil {
		shipment.EstimatedDeliveryAt = input.EstimatedDeliveryAt
	}
	if input.Status != nil {
		parsed, err := lifecycle.ParseShipmentStatus(*input.Status)
		if err != nil {
			return nil, ErrShipmentStatusBad
		}
		shipment.Status = string(parsed)
	}
	if err := s.shipmentRepo.Update(shipment); err != nil {
		return nil, err
	}
	if to := lifecycle.ShipmentStatus(shipment.Status); to != from {
		s.publishStageChanged(shipment, from, to, true)
	}
	return s.Get(id)
}

func (s *ShipmentService) publishStageChanged(shipment *models.Shipment, from, to lifecycle.ShipmentStatus, corrected bool) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.EnqueueShipmentStageChanged(queue.ShipmentStageChangedPayload{
		ShipmentID: shipment.ID,
		OrderID:    shipment.OrderID,
		FromStatus: string(from),
		ToStatus:   string(to),
		Corrected:  corrected,
		ChangedAt:  time.Now(),
	})
	if err != nil {
		logger.Warnw("shipment_enqueue_stage_changed_failed",
			"shipment_id", shipment.ID,
			"status", string(to),
			"error", err,
		)
	}
}
