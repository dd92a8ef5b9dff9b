package admin

import (
	"strconv"
	"strings"

	handlershared "github.com/petmall-admin/internal/http/handlers/shared"
	"github.com/petmall-admin/internal/http/response"

	"github.com/gin-gonic/gin"
)

// 鉴权中间件写入的上下文键
const (
	ContextAdminID       = "admin_id"
	ContextAdminUsername = "admin_username"
)

func getAdminID(c *gin.Context) (uint, bool) {
	return handlershared.GetContextUint(c, ContextAdminID)
}

// operatorName 状态流水中记录的操作人
func operatorName(c *gin.Context) string {
	if name := handlershared.GetContextString(c, ContextAdminUsername); name != "" {
		return name
	}
	return "admin"
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := strings.TrimSpace(c.Param(name))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeUnprocessable, "Invalid "+name, nil)
		return 0, false
	}
	return uint(id), true
}

func parseStringParam(c *gin.Context, name string) (string, bool) {
	raw := strings.TrimSpace(c.Param(name))
	if raw == "" {
		respondError(c, response.CodeUnprocessable, "Invalid "+name, nil)
		return "", false
	}
	return raw, true
}
