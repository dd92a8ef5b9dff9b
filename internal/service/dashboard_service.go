package service

import (
	"context"
	"fmt"
	"time"

	"github.com/petmall-admin/internal/cache"
	"github.com/petmall-admin/internal/lifecycle"
	"github.com/petmall-admin/internal/logger"
	"github.com/petmall-admin/internal/models"
	"github.com/petmall-admin/internal/repository"

	"github.com/shopspring/decimal"
)

// 仪表盘缓存分段
const (
	DashboardSectionStats      = "stats"
	DashboardSectionSales      = "sales"
	DashboardSectionCategories = "categories"
)

// DashboardSections 全部可缓存分段
var DashboardSections = []string{DashboardSectionStats, DashboardSectionSales, DashboardSectionCategories}

const (
	salesChartMonths  = 6
	recentOrdersLimit = 5
	noProductLabel    = "无商品"
)

// DashboardService 仪表盘服务
type DashboardService struct {
	repo      repository.DashboardRepository
	orderRepo repository.OrderRepository
	now       func() time.Time
}

// NewDashboardService 创建仪表盘服务
func NewDashboardService(repo repository.DashboardRepository, orderRepo repository.OrderRepository) *DashboardService {
	return &DashboardService{repo: repo, orderRepo: orderRepo, now: time.Now}
}

// DashboardStats 总览卡片
type DashboardStats struct {
	TotalSales    models.Money `json:"total_sales"`
	TotalOrders   int64        `json:"total_orders"`
	TotalUsers    int64        `json:"total_users"`
	TotalProducts int64        `json:"total_products"`
}

// SalesPoint 月度销售额
type SalesPoint struct {
	Name  string       `json:"name"`
	Sales models.Money `json:"销售额"`
}

// CategoryPoint 分类商品数
type CategoryPoint struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// RecentOrder 最近订单卡片
type RecentOrder struct {
	ID          string       `json:"id"`
	Customer    string       `json:"customer"`
	Product     string       `json:"product"`
	Amount      models.Money `json:"amount"`
	Status      string       `json:"status"`
	StatusLabel string       `json:"status_label"`
	StatusColor string       `json:"status_color"`
}

// Stats 总览统计
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	var cached DashboardStats
	if s.readCache(ctx, DashboardSectionStats, &cached) {
		return &cached, nil
	}
	totals, err := s.repo.GetTotals()
	if err != nil {
		return nil, err
	}
	stats := &DashboardStats{
		TotalSales:    models.NewMoneyFromDecimal(decimal.NewFromFloat(totals.TotalSales)),
		TotalOrders:   totals.OrderCount,
		TotalUsers:    totals.UserCount,
		TotalProducts: totals.ProductCount,
	}
	s.writeCache(ctx, DashboardSectionStats, stats)
	return stats, nil
}

// SalesChart 最近 6 个自然月销售额，含当月
func (s *DashboardService) SalesChart(ctx context.Context) ([]SalesPoint, error) {
	var cached []SalesPoint
	if s.readCache(ctx, DashboardSectionSales, &cached) {
		return cached, nil
	}
	current := startOfMonth(s.now())
	points := make([]SalesPoint, 0, salesChartMonths)
	for i := salesChartMonths - 1; i >= 0; i-- {
		start := current.AddDate(0, -i, 0)
		end := start.AddDate(0, 1, 0)
		total, err := s.repo.SumSales(start, end)
		if err != nil {
			return nil, err
		}
		points = append(points, SalesPoint{
			Name:  fmt.Sprintf("%d月", int(start.Month())),
			Sales: models.NewMoneyFromDecimal(decimal.NewFromFloat(total)),
		})
	}
	s.writeCache(ctx, DashboardSectionSales, points)
	return points, nil
}

// CategoryChart 分类商品分布
func (s *DashboardService) CategoryChart(ctx context.Context) ([]CategoryPoint, error) {
	var cached []CategoryPoint
	if s.readCache(ctx, DashboardSectionCategories, &cached) {
		return cached, nil
	}
	rows, err := s.repo.CategoryProductCounts()
	if err != nil {
		return nil, err
	}
	points := make([]CategoryPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, CategoryPoint{Name: row.Name, Value: row.Value})
	}
	s.writeCache(ctx, DashboardSectionCategories, points)
	return points, nil
}

// RecentOrders 最近 5 笔订单，状态文案与颜色取自统一展示表
func (s *DashboardService) RecentOrders() ([]RecentOrder, error) {
	orders, err := s.orderRepo.ListRecent(recentOrdersLimit)
	if err != nil {
		return nil, err
	}
	result := make([]RecentOrder, 0, len(orders))
	for i := range orders {
		order := &orders[i]
		presentation := lifecycle.OrderPresentation(order.Status)
		result = append(result, RecentOrder{
			ID:          order.OrderNo,
			Customer:    order.CustomerName(),
			Product:     summarizeItems(order.Items),
			Amount:      order.TotalAmount,
			Status:      order.Status,
			StatusLabel: presentation.Label,
			StatusColor: presentation.Color,
		})
	}
	return result, nil
}

// summarizeItems 单件显示商品名，多件显示 “首件 等N件”
func summarizeItems(items []models.OrderItem) string {
	if len(items) == 0 {
		return noProductLabel
	}
	name := noProductLabel
	if items[0].Product != nil && items[0].Product.Name != "" {
		name = items[0].Product.Name
	}
	if len(items) == 1 {
		return name
	}
	return fmt.Sprintf("%s 等%d件", name, len(items))
}

func (s *DashboardService) readCache(ctx context.Context, section string, dest interface{}) bool {
	hit, err := cache.GetDashboard(ctx, section, dest)
	if err != nil {
		logger.Warnw("dashboard_cache_read_failed", "section", section, "error", err)
		return false
	}
	return hit
}

func (s *DashboardService) writeCache(ctx context.Context, section string, value interface{}) {
	if err := cache.SetDashboard(ctx, section, value); err != nil {
		logger.Warnw("dashboard_cache_write_failed", "section", section, "error", err)
	}
}
