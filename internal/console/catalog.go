package console

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/petmall-admin/internal/adminclient"
	"github.com/petmall-admin/internal/logger"
)

// VIPAPI 会员等级面板依赖的后端能力
type VIPAPI interface {
	ListVIPLevels(ctx context.Context) ([]adminclient.VIPLevel, error)
	DeleteVIPLevel(ctx context.Context, level adminclient.VIPLevel) error
}

// VIPPanel 会员等级列表
type VIPPanel struct {
	api     VIPAPI
	confirm Confirmer
	notify  Notifier

	mu     sync.Mutex
	levels []adminclient.VIPLevel
}

// NewVIPPanel 创建会员等级面板
func NewVIPPanel(api VIPAPI, confirmer Confirmer, notifier Notifier) *VIPPanel {
	return &VIPPanel{api: api, confirm: confirmer, notify: notifier}
}

// Levels 当前列表
func (p *VIPPanel) Levels() []adminclient.VIPLevel {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]adminclient.VIPLevel(nil), p.levels...)
}

// Refresh 拉取会员等级
func (p *VIPPanel) Refresh(ctx context.Context) error {
	levels, err := p.api.ListVIPLevels(ctx)
	if err != nil {
		p.notify.Error("获取会员等级失败: " + adminclient.Message(err))
		return err
	}
	p.mu.Lock()
	p.levels = levels
	p.mu.Unlock()
	return nil
}

// Delete 删除等级；本地显示仍有会员时只提示，不确认也不发请求
func (p *VIPPanel) Delete(ctx context.Context, id string) error {
	level, ok := p.find(id)
	if !ok {
		return ErrNotLoaded
	}
	if level.MemberCount > 0 {
		err := &adminclient.VIPMembersError{Level: level.Name, Members: level.MemberCount}
		p.notify.Warning(err.Error())
		return err
	}
	if err := confirm(ctx, p.confirm, "确定要删除这个会员等级吗？"); err != nil {
		return err
	}
	if err := p.api.DeleteVIPLevel(ctx, level); err != nil {
		logger.Warnw("console_vip_delete_failed", "vip_level_id", id, "error", err)
		p.notify.Error("删除失败: " + adminclient.Message(err))
		return err
	}
	logger.Infow("console_vip_deleted", "vip_level_id", id, "name", level.Name)
	p.notify.Success("会员等级删除成功")
	if err := p.Refresh(ctx); err != nil {
		logger.Warnw("console_vip_refetch_failed", "error", err)
	}
	return nil
}

func (p *VIPPanel) find(id string) (adminclient.VIPLevel, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, level := range p.levels {
		if level.ID == id {
			return level, true
		}
	}
	return adminclient.VIPLevel{}, false
}

// ProductAPI 商品批量操作依赖的后端能力
type ProductAPI interface {
	ImportProducts(ctx context.Context, rows []adminclient.ProductForm) (*adminclient.ImportResult, error)
	BatchDeleteProducts(ctx context.Context, ids []string) (*adminclient.BatchDeleteResult, error)
}

// ImportDialog 批量导入对话框；存在失败行时保持打开并展示错误报告
type ImportDialog struct {
	api       ProductAPI
	notify    Notifier
	onChanged func(ctx context.Context) error

	mu     sync.Mutex
	open   bool
	errors []string
}

// NewImportDialog 创建导入对话框，onChanged 在每次提交后刷新商品列表，可为 nil
func NewImportDialog(api ProductAPI, notifier Notifier, onChanged func(ctx context.Context) error) *ImportDialog {
	return &ImportDialog{api: api, notify: notifier, onChanged: onChanged}
}

// Open 打开对话框并清空上次的错误报告
func (d *ImportDialog) Open() {
	d.mu.Lock()
	d.open = true
	d.errors = nil
	d.mu.Unlock()
}

// Close 关闭对话框
func (d *ImportDialog) Close() {
	d.mu.Lock()
	d.open = false
	d.errors = nil
	d.mu.Unlock()
}

// IsOpen 是否打开
func (d *ImportDialog) IsOpen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.open
}

// Errors 最近一次提交的逐行错误
func (d *ImportDialog) Errors() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.errors...)
}

// Submit 提交导入
func (d *ImportDialog) Submit(ctx context.Context, rows []adminclient.ProductForm) (*adminclient.ImportResult, error) {
	result, err := d.api.ImportProducts(ctx, rows)
	if err != nil {
		logger.Warnw("console_products_import_failed", "rows", len(rows), "error", err)
		d.notify.Error("导入失败: " + adminclient.Message(err))
		return nil, err
	}

	d.mu.Lock()
	if result.HasErrors() {
		d.errors = append([]string(nil), result.Errors...)
	} else {
		d.errors = nil
		d.open = false
	}
	d.mu.Unlock()

	if result.HasErrors() {
		d.notify.Warning("部分商品导入失败，请查看下方的错误报告")
		if result.Message != "" {
			d.notify.Success(result.Message)
		}
	} else {
		d.notify.Success(result.Message)
	}
	logger.Infow("console_products_imported", "rows", len(rows), "failed_rows", len(result.Errors))

	if d.onChanged != nil {
		if err := d.onChanged(ctx); err != nil {
			logger.Warnw("console_products_refetch_failed", "error", err)
		}
	}
	return result, nil
}

// BatchDeleteProducts 确认后批量删除商品
func BatchDeleteProducts(ctx context.Context, api ProductAPI, confirmer Confirmer, notifier Notifier, ids []string) (*adminclient.BatchDeleteResult, error) {
	if len(ids) == 0 {
		err := errors.New("请先选择要删除的商品")
		notifier.Error(err.Error())
		return nil, err
	}
	if err := confirm(ctx, confirmer, fmt.Sprintf("确定要删除选中的 %d 个商品吗？", len(ids))); err != nil {
		return nil, err
	}
	result, err := api.BatchDeleteProducts(ctx, ids)
	if err != nil {
		notifier.Error("批量删除失败: " + adminclient.Message(err))
		return nil, err
	}
	notifier.Success(fmt.Sprintf("成功删除 %d 个商品", result.Deleted))
	return result, nil
}
