package admin

import "github.com/petmall-admin/internal/provider"

// Handler 管理后台 /admin 下全部接口，依赖统一从容器取得
type Handler struct {
	*provider.Container
}

// New 创建处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
