package admin

import (
	"time"

	handlershared "github.com/petmall-admin/internal/http/handlers/shared"
	"github.com/petmall-admin/internal/http/response"
	"github.com/petmall-admin/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateShipmentRequest 手动创建物流记录
type CreateShipmentRequest struct {
	OrderID           string     `json:"order_id" binding:"required"`
	Carrier           string     `json:"carrier"`
	TrackingNumber    string     `json:"tracking_number"`
	Status            string     `json:"status"`
	EstimatedDelivery *time.Time `json:"estimated_delivery"`
}

// CorrectShipmentRequest 编辑物流记录，缺省字段不修改
type CorrectShipmentRequest struct {
	Carrier           *string    `json:"carrier"`
	TrackingNumber    *string    `json:"tracking_number"`
	Status            *string    `json:"status"`
	EstimatedDelivery *time.Time `json:"estimated_delivery"`
}

// AdvanceShipmentRequest 推进请求；status 为空时推进到下一阶段
type AdvanceShipmentRequest struct {
	Status string `json:"status"`
}

// GetShipments 物流列表
func (h *Handler) GetShipments(c *gin.Context) {
	skip, limit := handlershared.ParseWindow(c)
	shipments, total, window, err := h.ShipmentService.List(service.ShipmentListInput{
		Skip:   skip,
		Limit:  limit,
		Search: c.Query("search"),
		Status: c.Query("status"),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, buildShipmentViews(shipments), total, window.Page(), window.Normalize().Limit)
}

// GetShipment 物流详情
func (h *Handler) GetShipment(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	shipment, err := h.ShipmentService.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, buildShipmentView(shipment))
}

// GetShipmentByOrder 按订单查询物流
func (h *Handler) GetShipmentByOrder(c *gin.Context) {
	orderID, ok := parseStringParam(c, "order_id")
	if !ok {
		return
	}
	shipment, err := h.ShipmentService.GetByOrder(orderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, buildShipmentView(shipment))
}

// CreateShipment 创建物流记录
func (h *Handler) CreateShipment(c *gin.Context) {
	var req CreateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	shipment, err := h.ShipmentService.Create(service.CreateShipmentInput{
		OrderID:             req.OrderID,
		Carrier:             req.Carrier,
		TrackingNumber:      req.TrackingNumber,
		Status:              req.Status,
		EstimatedDeliveryAt: req.EstimatedDelivery,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, buildShipmentView(shipment))
}

// CorrectShipment 编辑物流记录，可直接设置任意阶段
func (h *Handler) CorrectShipment(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req CorrectShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	shipment, err := h.ShipmentService.Correct(id, service.CorrectShipmentInput{
		Carrier:             req.Carrier,
		TrackingNumber:      req.TrackingNumber,
		Status:              req.Status,
		EstimatedDeliveryAt: req.EstimatedDelivery,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	requestLog(c).Infow("shipment_corrected", "shipment_id", shipment.ID, "status", shipment.Status)
	response.Success(c, buildShipmentView(shipment))
}

// AdvanceShipment 推进物流阶段（仅一步）
func (h *Handler) AdvanceShipment(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req AdvanceShipmentRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
	}
	shipment, err := h.ShipmentService.Advance(id, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, buildShipmentView(shipment))
}
