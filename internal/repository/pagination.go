package repository

import (
	"github.com/petmall-admin/internal/constants"

	"gorm.io/gorm"
)

// Window skip/limit 分页窗口
type Window struct {
	Skip  int
	Limit int
}

// Normalize 修正非法的 skip/limit
func (w Window) Normalize() Window {
	if w.Skip < 0 {
		w.Skip = 0
	}
	if w.Limit <= 0 {
		w.Limit = constants.DefaultPageSize
	}
	if w.Limit > constants.MaxPageSize {
		w.Limit = constants.MaxPageSize
	}
	return w
}

// Page 当前页码（从 1 开始）
func (w Window) Page() int {
	n := w.Normalize()
	return n.Skip/n.Limit + 1
}

// applyWindow 应用 skip/limit，统一处理非法参数。
func applyWindow(query *gorm.DB, w Window) *gorm.DB {
	if query == nil {
		return query
	}
	n := w.Normalize()
	return query.Offset(n.Skip).Limit(n.Limit)
}
