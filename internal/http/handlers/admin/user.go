package admin

import (
	handlershared "github.com/petmall-admin/internal/http/handlers/shared"
	"github.com/petmall-admin/internal/http/response"
	"github.com/petmall-admin/internal/service"

	"github.com/gin-gonic/gin"
)

// UpdateUserStatusRequest 用户状态切换
type UpdateUserStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// GetUsers 用户列表
func (h *Handler) GetUsers(c *gin.Context) {
	skip, limit := handlershared.ParseWindow(c)
	users, total, window, err := h.UserService.List(service.UserListInput{
		Skip:   skip,
		Limit:  limit,
		Search: c.Query("search"),
		Status: c.Query("status"),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessWithPage(c, users, total, window.Page(), window.Normalize().Limit)
}

// GetUser 用户详情
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := parseStringParam(c, "id")
	if !ok {
		return
	}
	user, err := h.UserService.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, user)
}

// CreateUser 创建用户
func (h *Handler) CreateUser(c *gin.Context) {
	var req service.UserInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	user, err := h.UserService.Create(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, user)
}

// UpdateUser 更新用户资料
func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := parseStringParam(c, "id")
	if !ok {
		return
	}
	var req service.UserInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	user, err := h.UserService.Update(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, user)
}

// UpdateUserStatus 切换用户活跃状态
func (h *Handler) UpdateUserStatus(c *gin.Context) {
	id, ok := parseStringParam(c, "id")
	if !ok {
		return
	}
	var req UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	user, err := h.UserService.UpdateStatus(id, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, user)
}

// DeleteUser 删除用户
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := parseStringParam(c, "id")
	if !ok {
		return
	}
	if err := h.UserService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Message(c, "User deleted successfully")
}
