package shared

import (
	"github.com/petmall-admin/internal/http/response"
	"github.com/petmall-admin/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DetailInternal 未预期错误统一返回的文案
const DetailInternal = "Internal server error"

// RequestLog 提供携带 request_id 的日志实例。
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get("request_id"); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.SW("request_id", id)
		}
	}
	return logger.S()
}

// RespondError 返回 {"detail"} 错误响应；5xx 时记录原始错误。
func RespondError(c *gin.Context, code int, detail string, err error) {
	appErr := response.WrapError(code, detail, err)
	switch {
	case err == nil:
	case appErr.Internal():
		RequestLog(c).Errorw("handler_error", "code", code, "path", c.FullPath(), "error", appErr)
	default:
		RequestLog(c).Debugw("handler_rejected", "code", code, "detail", detail)
	}
	response.Error(c, appErr.Code, appErr.Detail)
}
