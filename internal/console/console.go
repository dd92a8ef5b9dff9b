// Package console 运营控制台的视图状态：会话、订单看板、物流看板、会员与商品操作。
// 视图只持有本地缓存，所有变更都由后端裁决，成功后重新拉取。
package console

import (
	"context"
	"errors"
	"time"

	"github.com/petmall-admin/internal/constants"
)

var (
	// ErrDeclined 操作员未确认，请求未发出
	ErrDeclined = errors.New("操作已取消")
	// ErrNotOffered 当前展示状态下不提供该动作，请求未发出
	ErrNotOffered = errors.New("当前状态不支持该操作")
	// ErrNotLoaded 目标记录不在当前视图中
	ErrNotLoaded = errors.New("记录不在当前视图中，请先刷新")
)

// Confirmer 变更前向操作员确认
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ConfirmFunc 函数适配器
type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

// Confirm 实现 Confirmer
func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

// Notifier 操作结果提示
type Notifier interface {
	Success(message string)
	Warning(message string)
	Error(message string)
}

// Options 看板通用选项
type Options struct {
	PageSize int
	Debounce time.Duration
}

func (o Options) pageSize() int {
	if o.PageSize <= 0 {
		return constants.DefaultPageSize
	}
	if o.PageSize > constants.MaxPageSize {
		return constants.MaxPageSize
	}
	return o.PageSize
}

func confirm(ctx context.Context, c Confirmer, prompt string) error {
	ok, err := c.Confirm(ctx, prompt)
	if err != nil {
		return err
	}
	if !ok {
		return ErrDeclined
	}
	return nil
}

// skipFor 页码转换为偏移量，页码从 1 开始
func skipFor(page, size int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * size
}
