package admin

import (
	"time"

	"github.com/petmall-admin/internal/http/response"
	"github.com/petmall-admin/internal/models"
	"github.com/petmall-admin/internal/service"

	"github.com/gin-gonic/gin"
)

// LoginRequest 登录请求，identifier 可以是用户名或邮箱
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Username   string `json:"username"`
	Password   string `json:"password" binding:"required"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	ExpiresAt   time.Time     `json:"expires_at"`
	Admin       *models.Admin `json:"admin"`
}

// Login 管理员登录
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	identifier := req.Identifier
	if identifier == "" {
		identifier = req.Username
	}
	if identifier == "" {
		respondError(c, response.CodeUnprocessable, "identifier: is required", nil)
		return
	}

	admin, token, expiresAt, err := h.AuthService.Login(identifier, req.Password)
	if err != nil {
		requestLog(c).Infow("admin_login_failed", "identifier", identifier)
		respondServiceError(c, err)
		return
	}
	requestLog(c).Infow("admin_login", "admin_id", admin.ID)

	response.Success(c, LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
		Admin:       admin,
	})
}

// Register 注册管理员
func (h *Handler) Register(c *gin.Context) {
	var req service.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	admin, err := h.AuthService.Register(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	requestLog(c).Infow("admin_registered", "admin_id", admin.ID, "username", admin.Username)
	response.Created(c, admin)
}

// Me 当前登录管理员
func (h *Handler) Me(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}
	admin, err := h.AuthService.CurrentAdmin(adminID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, admin)
}
