package admin

import (
	"errors"

	handlershared "github.com/petmall-admin/internal/http/handlers/shared"
	"github.com/petmall-admin/internal/http/response"
	"github.com/petmall-admin/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var notFoundErrors = []error{
	service.ErrNotFound,
	service.ErrOrderNotFound,
	service.ErrShipmentNotFound,
	service.ErrVIPNotFound,
	service.ErrUserNotFound,
	service.ErrCategoryNotFound,
	service.ErrBannerNotFound,
	service.ErrProductNotFound,
}

var badRequestErrors = []error{
	service.ErrOrderStatusRequired,
	service.ErrOrderStatusInvalid,
	service.ErrOrderTransition,
	service.ErrShipmentExists,
	service.ErrShipmentOrderNotShipped,
	service.ErrShipmentStatusBad,
	service.ErrShipmentStageInvalid,
	service.ErrShipmentDelivered,
	service.ErrVIPNameExists,
	service.ErrVIPLevelExists,
	service.ErrVIPHasMembers,
	service.ErrUserExists,
	service.ErrUserStatusInvalid,
	service.ErrCategoryExists,
	service.ErrAdminExists,
	service.ErrAdminUsernameTaken,
	service.ErrWeakPassword,
}

func requestLog(c *gin.Context) *zap.SugaredLogger {
	return handlershared.RequestLog(c)
}

func respondError(c *gin.Context, code int, detail string, err error) {
	handlershared.RespondError(c, code, detail, err)
}

// respondServiceError 将业务错误映射为 HTTP 状态码与 detail
func respondServiceError(c *gin.Context, err error) {
	var fieldErr *service.FieldError
	if errors.As(err, &fieldErr) {
		respondError(c, response.CodeUnprocessable, fieldErr.Error(), err)
		return
	}
	if errors.Is(err, service.ErrInvalidInput) {
		respondError(c, response.CodeUnprocessable, err.Error(), err)
		return
	}
	if errors.Is(err, service.ErrInvalidCredentials) {
		respondError(c, response.CodeUnauthorized, err.Error(), err)
		return
	}
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			respondError(c, response.CodeNotFound, err.Error(), err)
			return
		}
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			respondError(c, response.CodeBadRequest, err.Error(), err)
			return
		}
	}
	respondError(c, response.CodeInternal, handlershared.DetailInternal, err)
}

// respondBindError 请求体解析失败
func respondBindError(c *gin.Context, err error) {
	respondError(c, response.CodeUnprocessable, "Invalid request body: "+err.Error(), err)
}
