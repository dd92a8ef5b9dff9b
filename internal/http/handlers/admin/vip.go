package admin

import (
	"github.com/petmall-admin/internal/http/response"
	"github.com/petmall-admin/internal/service"

	"github.com/gin-gonic/gin"
)

// GetVIPLevels 会员等级列表
func (h *Handler) GetVIPLevels(c *gin.Context) {
	levels, err := h.VIPService.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, levels)
}

// CreateVIPLevel 创建会员等级
func (h *Handler) CreateVIPLevel(c *gin.Context) {
	var req service.VIPInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	level, err := h.VIPService.Create(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, level)
}

// UpdateVIPLevel 更新会员等级
func (h *Handler) UpdateVIPLevel(c *gin.Context) {
	id, ok := parseStringParam(c, "id")
	if !ok {
		return
	}
	var req service.VIPInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	level, err := h.VIPService.Update(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, level)
}

// DeleteVIPLevel 删除会员等级，仍有会员时拒绝
func (h *Handler) DeleteVIPLevel(c *gin.Context) {
	id, ok := parseStringParam(c, "id")
	if !ok {
		return
	}
	if err := h.VIPService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Message(c, "VIP level deleted successfully")
}
