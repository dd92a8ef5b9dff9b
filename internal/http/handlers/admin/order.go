package admin

import (
	handlershared "github.com/petmall-admin/internal/http/handlers/shared"
	"github.com/petmall-admin/internal/http/response"
	"github.com/petmall-admin/internal/service"

	"github.com/gin-gonic/gin"
)

// UpdateOrderStatusRequest 订单状态变更请求
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// GetOrders 订单列表
func (h *Handler) GetOrders(c *gin.Context) {
	skip, limit := handlershared.ParseWindow(c)
	orders, total, window, err := h.OrderService.List(service.OrderListInput{
		Skip:        skip,
		Limit:       limit,
		Status:      c.Query("status"),
		OrderNumber: c.Query("order_number"),
		SortBy:      c.Query("sort_by"),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, buildOrderViews(orders), total, window.Page(), window.Normalize().Limit)
}

// GetOrder 订单详情，含物流与状态流水
func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := parseStringParam(c, "id")
	if !ok {
		return
	}
	detail, err := h.OrderService.GetDetail(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, buildOrderDetailView(detail))
}

// UpdateOrderStatus 变更订单状态
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseStringParam(c, "id")
	if !ok {
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	order, err := h.OrderService.UpdateOrderStatus(id, req.Status, operatorName(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	detail, err := h.OrderService.GetDetail(order.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, buildOrderDetailView(detail))
}
