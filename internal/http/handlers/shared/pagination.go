package shared

import (
	"strconv"
	"strings"

	"github.com/petmall-admin/internal/constants"

	"github.com/gin-gonic/gin"
)

// ParseWindow 读取 skip/limit 查询参数，非法值回退为默认值。
func ParseWindow(c *gin.Context) (skip, limit int) {
	skip, _ = strconv.Atoi(strings.TrimSpace(c.DefaultQuery("skip", "0")))
	limit, _ = strconv.Atoi(strings.TrimSpace(c.DefaultQuery("limit", strconv.Itoa(constants.DefaultPageSize))))
	return NormalizeWindow(skip, limit)
}

// NormalizeWindow 归一化 skip/limit。
func NormalizeWindow(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = constants.DefaultPageSize
	}
	if limit > constants.MaxPageSize {
		limit = constants.MaxPageSize
	}
	return skip, limit
}
