package admin

import (
	"github.com/petmall-admin/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats 总览卡片
func (h *Handler) GetDashboardStats(c *gin.Context) {
	stats, err := h.DashboardService.Stats(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, stats)
}

// GetSalesChart 近六个月销售额
func (h *Handler) GetSalesChart(c *gin.Context) {
	points, err := h.DashboardService.SalesChart(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, points)
}

// GetCategoryChart 分类商品分布
func (h *Handler) GetCategoryChart(c *gin.Context) {
	points, err := h.DashboardService.CategoryChart(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, points)
}

// GetRecentOrders 最近订单
func (h *Handler) GetRecentOrders(c *gin.Context) {
	orders, err := h.DashboardService.RecentOrders()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, orders)
}
