package console

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/petmall-admin/internal/adminclient"
	"github.com/petmall-admin/internal/constants"
	"github.com/petmall-admin/internal/lifecycle"
	"github.com/petmall-admin/internal/logger"
)

// OrderAPI 订单看板依赖的后端能力
type OrderAPI interface {
	ListOrders(ctx context.Context, q adminclient.OrderQuery) (*adminclient.Page[adminclient.Order], error)
	GetOrder(ctx context.Context, id string) (*adminclient.OrderDetail, error)
	UpdateOrderStatus(ctx context.Context, id, status string) (*adminclient.OrderDetail, error)
}

// OrderFilter 订单筛选条件
type OrderFilter struct {
	Status      string
	OrderNumber string
	SortBy      string
}

// OrderBoardState 订单看板快照
type OrderBoardState struct {
	Filter   OrderFilter
	Page     int
	PageSize int
	Total    int64
	Orders   []adminclient.Order
	Detail   *adminclient.OrderDetail
	Loading  bool
}

// OrderBoard 订单列表与详情
type OrderBoard struct {
	api      OrderAPI
	confirm  Confirmer
	notify   Notifier
	pageSize int
	debounce *Debouncer

	listGen   generation
	detailGen generation

	mu      sync.Mutex
	filter  OrderFilter
	page    int
	total   int64
	orders  []adminclient.Order
	detail  *adminclient.OrderDetail
	loading bool
}

// NewOrderBoard 创建订单看板
func NewOrderBoard(api OrderAPI, confirmer Confirmer, notifier Notifier, opts Options) *OrderBoard {
	return &OrderBoard{
		api:      api,
		confirm:  confirmer,
		notify:   notifier,
		pageSize: opts.pageSize(),
		debounce: NewDebouncer(opts.Debounce),
		page:     1,
	}
}

// State 当前快照
func (b *OrderBoard) State() OrderBoardState {
	b.mu.Lock()
	defer b.mu.Unlock()
	state := OrderBoardState{
		Filter:   b.filter,
		Page:     b.page,
		PageSize: b.pageSize,
		Total:    b.total,
		Orders:   append([]adminclient.Order(nil), b.orders...),
		Loading:  b.loading,
	}
	if b.detail != nil {
		detail := *b.detail
		state.Detail = &detail
	}
	return state
}

// Refresh 按当前筛选与页码拉取列表；被后续请求取代的响应直接丢弃
func (b *OrderBoard) Refresh(ctx context.Context) error {
	b.mu.Lock()
	query := adminclient.OrderQuery{
		Skip:        skipFor(b.page, b.pageSize),
		Limit:       b.pageSize,
		Status:      normalizeFilter(b.filter.Status),
		OrderNumber: strings.TrimSpace(b.filter.OrderNumber),
		SortBy:      b.filter.SortBy,
	}
	reqCtx, token := b.listGen.begin(ctx)
	b.loading = true
	b.mu.Unlock()

	page, err := b.api.ListOrders(reqCtx, query)

	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.listGen.current(token) {
		logger.Debugw("console_orders_stale_response_dropped", "token", token)
		return nil
	}
	b.listGen.finish(token)
	b.loading = false
	if err != nil {
		logger.Warnw("console_orders_fetch_failed", "error", err)
		b.notify.Error("获取订单列表失败: " + adminclient.Message(err))
		return err
	}
	b.orders = page.Items
	b.total = page.Total
	return nil
}

// SetFilter 一次性设置全部筛选条件并立即查询第一页
func (b *OrderBoard) SetFilter(ctx context.Context, filter OrderFilter) error {
	return b.Load(ctx, filter, 1)
}

// Load 同时设置筛选条件与页码，只发一次请求
func (b *OrderBoard) Load(ctx context.Context, filter OrderFilter, page int) error {
	if page < 1 {
		page = 1
	}
	b.debounce.Stop()
	b.mu.Lock()
	b.filter = filter
	b.page = page
	b.mu.Unlock()
	return b.Refresh(ctx)
}

// SetStatus 切换状态筛选，回到第一页
func (b *OrderBoard) SetStatus(ctx context.Context, status string) error {
	b.mu.Lock()
	b.filter.Status = status
	b.page = 1
	b.mu.Unlock()
	return b.Refresh(ctx)
}

// SetSort 切换排序方式，回到第一页
func (b *OrderBoard) SetSort(ctx context.Context, sortBy string) error {
	b.mu.Lock()
	b.filter.SortBy = sortBy
	b.page = 1
	b.mu.Unlock()
	return b.Refresh(ctx)
}

// SetPage 翻页
func (b *OrderBoard) SetPage(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}
	b.mu.Lock()
	b.page = page
	b.mu.Unlock()
	return b.Refresh(ctx)
}

// Search 输入订单号；静默期结束后以最终输入回到第一页查询
func (b *OrderBoard) Search(ctx context.Context, orderNumber string) {
	b.mu.Lock()
	b.filter.OrderNumber = orderNumber
	b.page = 1
	b.mu.Unlock()
	b.debounce.Trigger(func() {
		_ = b.Refresh(ctx)
	})
}

// OpenDetail 打开订单详情
func (b *OrderBoard) OpenDetail(ctx context.Context, id string) (*adminclient.OrderDetail, error) {
	b.mu.Lock()
	reqCtx, token := b.detailGen.begin(ctx)
	b.mu.Unlock()
	detail, err := b.api.GetOrder(reqCtx, id)

	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.detailGen.current(token) {
		return nil, context.Canceled
	}
	b.detailGen.finish(token)
	if err != nil {
		b.notify.Error("获取订单详情失败: " + adminclient.Message(err))
		return nil, err
	}
	b.detail = detail
	copied := *detail
	return &copied, nil
}

// CloseDetail 关闭详情
func (b *OrderBoard) CloseDetail() {
	b.detailGen.stop()
	b.mu.Lock()
	b.detail = nil
	b.mu.Unlock()
}

// Offered 当前展示状态下可执行的动作
func (b *OrderBoard) Offered(id string) ([]lifecycle.OrderAction, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	status, ok := b.displayedStatusLocked(id)
	if !ok {
		return nil, ErrNotLoaded
	}
	return lifecycle.OfferedActions(status), nil
}

// Perform 按动作名执行状态流转
func (b *OrderBoard) Perform(ctx context.Context, id string, name lifecycle.ActionName) error {
	b.mu.Lock()
	status, ok := b.displayedStatusLocked(id)
	b.mu.Unlock()
	if !ok {
		return ErrNotLoaded
	}
	action, ok := lifecycle.ActionByName(status, name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotOffered, name)
	}
	return b.Transition(ctx, id, action.Target)
}

// Transition 将订单流转到 target：
// 仅当前展示状态允许时可调用；确认后发送；成功后先修补本地缓存再重新拉取；失败不动本地状态且不重试
func (b *OrderBoard) Transition(ctx context.Context, id string, target lifecycle.OrderStatus) error {
	b.mu.Lock()
	from, ok := b.displayedStatusLocked(id)
	b.mu.Unlock()
	if !ok {
		return ErrNotLoaded
	}
	if !lifecycle.CanTransition(from, target) {
		return fmt.Errorf("%w: %s -> %s", ErrNotOffered, lifecycle.OrderLabel(from.String()), lifecycle.OrderLabel(target.String()))
	}

	prompt := fmt.Sprintf("确定要将订单状态更新为 %s 吗？", lifecycle.OrderLabel(target.String()))
	if err := confirm(ctx, b.confirm, prompt); err != nil {
		return err
	}

	if _, err := b.api.UpdateOrderStatus(ctx, id, target.String()); err != nil {
		logger.Warnw("console_order_transition_failed",
			"order_id", id,
			"from", from,
			"to", target,
			"error", err,
		)
		b.notify.Error("更新失败: " + adminclient.Message(err))
		return err
	}

	b.mu.Lock()
	detailOpen := b.patchLocked(id, target)
	b.mu.Unlock()
	logger.Infow("console_order_transitioned", "order_id", id, "from", from, "to", target)
	b.notify.Success("状态更新成功")

	// 本地修补只是临时值，以重新拉取的结果为准
	if err := b.Refresh(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Warnw("console_order_refetch_failed", "order_id", id, "error", err)
	}
	if detailOpen {
		if _, err := b.OpenDetail(ctx, id); err != nil && !errors.Is(err, context.Canceled) {
			logger.Warnw("console_order_detail_refetch_failed", "order_id", id, "error", err)
		}
	}
	return nil
}

// displayedStatusLocked 详情优先，其次列表
func (b *OrderBoard) displayedStatusLocked(id string) (lifecycle.OrderStatus, bool) {
	if b.detail != nil && b.detail.ID == id {
		return lifecycle.OrderStatus(b.detail.Status), true
	}
	for _, order := range b.orders {
		if order.ID == id {
			return lifecycle.OrderStatus(order.Status), true
		}
	}
	return "", false
}

// patchLocked 同步修补列表与已打开的详情，返回详情是否为该订单
func (b *OrderBoard) patchLocked(id string, target lifecycle.OrderStatus) bool {
	presentation := lifecycle.OrderPresentation(target.String())
	for i := range b.orders {
		if b.orders[i].ID == id {
			b.orders[i].Status = target.String()
			b.orders[i].StatusLabel = presentation.Label
			b.orders[i].StatusColor = presentation.Color
		}
	}
	if b.detail == nil || b.detail.ID != id {
		return false
	}
	detail := *b.detail
	detail.Status = target.String()
	detail.StatusLabel = presentation.Label
	detail.StatusColor = presentation.Color
	detail.Actions = toClientActions(lifecycle.OfferedActions(target))
	b.detail = &detail
	return true
}

func toClientActions(actions []lifecycle.OrderAction) []adminclient.OrderAction {
	out := make([]adminclient.OrderAction, 0, len(actions))
	for _, action := range actions {
		out = append(out, adminclient.OrderAction{
			Name:   string(action.Name),
			Target: action.Target.String(),
			Label:  action.Label,
		})
	}
	return out
}

// normalizeFilter “全部”占位值不下发
func normalizeFilter(value string) string {
	trimmed := strings.TrimSpace(value)
	switch trimmed {
	case constants.FilterAll, constants.FilterAllZh, constants.FilterAllStatus:
		return ""
	}
	return trimmed
}

// Close 停止尚未触发的搜索并取消在途请求
func (b *OrderBoard) Close() {
	b.debounce.Stop()
	b.listGen.stop()
	b.detailGen.stop()
}
