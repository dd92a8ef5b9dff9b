package repository

import (
	"time"

	"github.com/petmall-admin/internal/models"

	"gorm.io/gorm"
)

// DashboardRepository 仪表盘聚合查询接口
// 说明：仅聚合统计数据，不承载业务规则。
type DashboardRepository interface {
	GetTotals() (DashboardTotalsRow, error)
	SumSales(startAt, endAt time.Time) (float64, error)
	CategoryProductCounts() ([]DashboardCategoryRow, error)
}

// DashboardTotalsRow 总览统计
type DashboardTotalsRow struct {
	TotalSales   float64
	OrderCount   int64
	UserCount    int64
	ProductCount int64
}

// DashboardCategoryRow 分类商品数
type DashboardCategoryRow struct {
	Name  string
	Value int64
}

// GormDashboardRepository GORM 仪表盘聚合实现
type GormDashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository 创建仪表盘仓库
func NewDashboardRepository(db *gorm.DB) *GormDashboardRepository {
	return &GormDashboardRepository{db: db}
}

// GetTotals 获取总览统计
func (r *GormDashboardRepository) GetTotals() (DashboardTotalsRow, error) {
	result := DashboardTotalsRow{}

	var sales struct {
		Total float64
	}
	if err := r.db.Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0) AS total").
		Scan(&sales).Error; err != nil {
		return result, err
	}
	result.TotalSales = sales.Total

	if err := r.db.Model(&models.Order{}).Count(&result.OrderCount).Error; err != nil {
		return result, err
	}
	if err := r.db.Model(&models.User{}).Count(&result.UserCount).Error; err != nil {
		return result, err
	}
	if err := r.db.Model(&models.Product{}).Count(&result.ProductCount).Error; err != nil {
		return result, err
	}
	return result, nil
}

// SumSales 区间内订单金额合计，区间左闭右开
func (r *GormDashboardRepository) SumSales(startAt, endAt time.Time) (float64, error) {
	var row struct {
		Total float64
	}
	err := r.db.Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0) AS total").
		Where("created_at >= ? AND created_at < ?", startAt, endAt).
		Scan(&row).Error
	return row.Total, err
}

// CategoryProductCounts 按分类统计商品数，忽略未分类商品
func (r *GormDashboardRepository) CategoryProductCounts() ([]DashboardCategoryRow, error) {
	var rows []DashboardCategoryRow
	err := r.db.Model(&models.Product{}).
		Select("category AS name, COUNT(*) AS value").
		Where("category IS NOT NULL AND category <> ''").
		Group("category").
		Order("value desc").
		Scan(&rows).Error
	return rows, err
}
