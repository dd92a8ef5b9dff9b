package admin

import (
	"github.com/petmall-admin/internal/http/response"
	"github.com/petmall-admin/internal/service"

	"github.com/gin-gonic/gin"
)

// GetBanners 轮播图列表（按排序）
func (h *Handler) GetBanners(c *gin.Context) {
	banners, err := h.BannerService.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, banners)
}

// CreateBanner 创建轮播图
func (h *Handler) CreateBanner(c *gin.Context) {
	var req service.BannerInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	banner, err := h.BannerService.Create(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, banner)
}

// UpdateBanner 更新轮播图
func (h *Handler) UpdateBanner(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req service.BannerInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	banner, err := h.BannerService.Update(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, banner)
}

// DeleteBanner 删除轮播图
func (h *Handler) DeleteBanner(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.BannerService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Message(c, "Banner deleted successfully")
}
