package console

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/petmall-admin/internal/adminclient"
	"github.com/petmall-admin/internal/lifecycle"
	"github.com/petmall-admin/internal/logger"
)

// ShipmentAPI 物流看板依赖的后端能力
type ShipmentAPI interface {
	ListShipments(ctx context.Context, q adminclient.ShipmentQuery) (*adminclient.Page[adminclient.Shipment], error)
	GetShipment(ctx context.Context, id uint) (*adminclient.Shipment, error)
	AdvanceShipment(ctx context.Context, id uint, target string) (*adminclient.Shipment, error)
	CorrectShipment(ctx context.Context, id uint, form adminclient.ShipmentCorrection) (*adminclient.Shipment, error)
}

// ShipmentFilter 物流筛选条件
type ShipmentFilter struct {
	Search string
	Status string
}

// ShipmentBoardState 物流看板快照
type ShipmentBoardState struct {
	Filter    ShipmentFilter
	Page      int
	PageSize  int
	Total     int64
	Shipments []adminclient.Shipment
	Detail    *adminclient.Shipment
	Loading   bool
}

// ShipmentBoard 物流列表与详情；推进成功后只重新查询，不做本地修补
type ShipmentBoard struct {
	api      ShipmentAPI
	confirm  Confirmer
	notify   Notifier
	pageSize int
	debounce *Debouncer

	listGen   generation
	detailGen generation

	mu        sync.Mutex
	filter    ShipmentFilter
	page      int
	total     int64
	shipments []adminclient.Shipment
	detail    *adminclient.Shipment
	loading   bool
}

// NewShipmentBoard 创建物流看板
func NewShipmentBoard(api ShipmentAPI, confirmer Confirmer, notifier Notifier, opts Options) *ShipmentBoard {
	return &ShipmentBoard{
		api:      api,
		confirm:  confirmer,
		notify:   notifier,
		pageSize: opts.pageSize(),
		debounce: NewDebouncer(opts.Debounce),
		page:     1,
	}
}

// State 当前快照
func (b *ShipmentBoard) State() ShipmentBoardState {
	b.mu.Lock()
	defer b.mu.Unlock()
	state := ShipmentBoardState{
		Filter:    b.filter,
		Page:      b.page,
		PageSize:  b.pageSize,
		Total:     b.total,
		Shipments: append([]adminclient.Shipment(nil), b.shipments...),
		Loading:   b.loading,
	}
	if b.detail != nil {
		detail := *b.detail
		state.Detail = &detail
	}
	return state
}

// Refresh 拉取物流列表
func (b *ShipmentBoard) Refresh(ctx context.Context) error {
	b.mu.Lock()
	query := adminclient.ShipmentQuery{
		Skip:   skipFor(b.page, b.pageSize),
		Limit:  b.pageSize,
		Search: strings.TrimSpace(b.filter.Search),
		Status: normalizeFilter(b.filter.Status),
	}
	reqCtx, token := b.listGen.begin(ctx)
	b.loading = true
	b.mu.Unlock()

	page, err := b.api.ListShipments(reqCtx, query)

	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.listGen.current(token) {
		logger.Debugw("console_shipments_stale_response_dropped", "token", token)
		return nil
	}
	b.listGen.finish(token)
	b.loading = false
	if err != nil {
		logger.Warnw("console_shipments_fetch_failed", "error", err)
		b.notify.Error("获取物流列表失败: " + adminclient.Message(err))
		return err
	}
	b.shipments = page.Items
	b.total = page.Total
	return nil
}

// SetFilter 一次性设置全部筛选条件并立即查询第一页
func (b *ShipmentBoard) SetFilter(ctx context.Context, filter ShipmentFilter) error {
	return b.Load(ctx, filter, 1)
}

// Load 同时设置筛选条件与页码，只发一次请求
func (b *ShipmentBoard) Load(ctx context.Context, filter ShipmentFilter, page int) error {
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
func (b *ShipmentBoard) SetStatus(ctx context.Context, status string) error {
	b.mu.Lock()
	b.filter.Status = status
	b.page = 1
	b.mu.Unlock()
	return b.Refresh(ctx)
}

// SetPage 翻页
func (b *ShipmentBoard) SetPage(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}
	b.mu.Lock()
	b.page = page
	b.mu.Unlock()
	return b.Refresh(ctx)
}

// Search 按订单号、收件人或运单号搜索，防抖后回到第一页
func (b *ShipmentBoard) Search(ctx context.Context, keyword string) {
	b.mu.Lock()
	b.filter.Search = keyword
	b.page = 1
	b.mu.Unlock()
	b.debounce.Trigger(func() {
		_ = b.Refresh(ctx)
	})
}

// OpenDetail 打开物流详情
func (b *ShipmentBoard) OpenDetail(ctx context.Context, id uint) (*adminclient.Shipment, error) {
	b.mu.Lock()
	reqCtx, token := b.detailGen.begin(ctx)
	b.mu.Unlock()
	shipment, err := b.api.GetShipment(reqCtx, id)

	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.detailGen.current(token) {
		return nil, context.Canceled
	}
	b.detailGen.finish(token)
	if err != nil {
		b.notify.Error("获取物流详情失败: " + adminclient.Message(err))
		return nil, err
	}
	b.detail = shipment
	copied := *shipment
	return &copied, nil
}

// CloseDetail 关闭详情
func (b *ShipmentBoard) CloseDetail() {
	b.detailGen.stop()
	b.mu.Lock()
	b.detail = nil
	b.mu.Unlock()
}

// Advance 推进一个阶段；签收后不再提供
func (b *ShipmentBoard) Advance(ctx context.Context, id uint) error {
	b.mu.Lock()
	current, ok := b.displayedStatusLocked(id)
	b.mu.Unlock()
	if !ok {
		return ErrNotLoaded
	}
	action, ok := lifecycle.OfferedAdvance(current)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotOffered, lifecycle.ShipmentLabel(current.String()))
	}

	prompt := fmt.Sprintf("确定将物流状态从 %s 更新为 %s 吗？",
		lifecycle.ShipmentLabel(current.String()), lifecycle.ShipmentLabel(action.Target.String()))
	if err := confirm(ctx, b.confirm, prompt); err != nil {
		return err
	}

	if _, err := b.api.AdvanceShipment(ctx, id, action.Target.String()); err != nil {
		logger.Warnw("console_shipment_advance_failed",
			"shipment_id", id,
			"from", current,
			"to", action.Target,
			"error", err,
		)
		b.notify.Error("更新失败: " + adminclient.Message(err))
		return err
	}
	logger.Infow("console_shipment_advanced", "shipment_id", id, "from", current, "to", action.Target)
	b.notify.Success("状态更新成功")
	b.reload(ctx, id)
	return nil
}

// Correct 修正物流信息；直接改状态属于修正而非推进，状态确有变化时同样需要确认。
// 状态可填机器码或中文文案，发送前统一为机器码
func (b *ShipmentBoard) Correct(ctx context.Context, id uint, form adminclient.ShipmentCorrection) error {
	if form.Status != nil {
		requested, err := lifecycle.ParseShipmentStatus(*form.Status)
		if err != nil {
			verr := &adminclient.ValidationError{Fields: map[string]string{"status": "未知的物流状态 " + *form.Status}}
			b.notify.Error(verr.Error())
			return verr
		}
		code := requested.String()
		form.Status = &code

		b.mu.Lock()
		current, ok := b.displayedStatusLocked(id)
		b.mu.Unlock()
		if ok && current != requested {
			prompt := fmt.Sprintf("确定将物流状态直接修改为 %s 吗？", lifecycle.ShipmentLabel(code))
			if err := confirm(ctx, b.confirm, prompt); err != nil {
				return err
			}
		}
	}

	if _, err := b.api.CorrectShipment(ctx, id, form); err != nil {
		logger.Warnw("console_shipment_correct_failed", "shipment_id", id, "error", err)
		b.notify.Error("更新失败: " + adminclient.Message(err))
		return err
	}
	logger.Infow("console_shipment_corrected", "shipment_id", id)
	b.notify.Success("更新成功")
	b.reload(ctx, id)
	return nil
}

func (b *ShipmentBoard) reload(ctx context.Context, id uint) {
	if err := b.Refresh(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Warnw("console_shipment_refetch_failed", "shipment_id", id, "error", err)
	}
	b.mu.Lock()
	detailOpen := b.detail != nil && b.detail.ID == id
	b.mu.Unlock()
	if detailOpen {
		if _, err := b.OpenDetail(ctx, id); err != nil && !errors.Is(err, context.Canceled) {
			logger.Warnw("console_shipment_detail_refetch_failed", "shipment_id", id, "error", err)
		}
	}
}

func (b *ShipmentBoard) displayedStatusLocked(id uint) (lifecycle.ShipmentStatus, bool) {
	if b.detail != nil && b.detail.ID == id {
		return lifecycle.ShipmentStatus(b.detail.Status), true
	}
	for _, shipment := range b.shipments {
		if shipment.ID == id {
			return lifecycle.ShipmentStatus(shipment.Status), true
		}
	}
	return "", false
}

// Close 停止尚未触发的搜索并取消在途请求
func (b *ShipmentBoard) Close() {
	b.debounce.Stop()
	b.listGen.stop()
	b.detailGen.stop()
}
