package repository

import (
	"errors"
	"time"

	"github.com/petmall-admin/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// VIPRepository 会员等级数据访问接口
type VIPRepository interface {
	List() ([]models.VIPLevel, error)
	GetByID(id string) (*models.VIPLevel, error)
	CountByName(name string, excludeID string) (int64, error)
	CountByLevel(level int, excludeID string) (int64, error)
	Create(vip *models.VIPLevel) error
	Update(vip *models.VIPLevel) error
	Delete(id string) error
	CountMembers(id string) (int64, error)
	RevenueSince(id string, since time.Time) (decimal.Decimal, error)
}

// GormVIPRepository GORM 实现
type GormVIPRepository struct {
	db *gorm.DB
}

// NewVIPRepository 创建会员等级仓库
func NewVIPRepository(db *gorm.DB) *GormVIPRepository {
	return &GormVIPRepository{db: db}
}

// List 按等级升序列出
func (r *GormVIPRepository) List() ([]models.VIPLevel, error) {
	var levels []models.VIPLevel
	if err := r.db.Order("level asc").Find(&levels).Error; err != nil {
		return nil, err
	}
	return levels, nil
}

// GetByID 根据 ID 获取等级
func (r *GormVIPRepository) GetByID(id string) (*models.VIPLevel, error) {
	var vip models.VIPLevel
	if err := r.db.Where("id = ?", id).First(&vip).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vip, nil
}

// CountByName 统计同名等级
func (r *GormVIPRepository) CountByName(name string, excludeID string) (int64, error) {
	var count int64
	query := r.db.Model(&models.VIPLevel{}).Where("name = ?", name)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByLevel 统计同序号等级
func (r *GormVIPRepository) CountByLevel(level int, excludeID string) (int64, error) {
	var count int64
	query := r.db.Model(&models.VIPLevel{}).Where("level = ?", level)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Create 创建等级
func (r *GormVIPRepository) Create(vip *models.VIPLevel) error {
	return r.db.Create(vip).Error
}

// Update 更新等级
func (r *GormVIPRepository) Update(vip *models.VIPLevel) error {
	return r.db.Save(vip).Error
}

// Delete 删除等级
func (r *GormVIPRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.VIPLevel{}).Error
}

// CountMembers 统计该等级下的会员数
func (r *GormVIPRepository) CountMembers(id string) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("vip_level_id = ?", id).Count(&count).Error
	return count, err
}

// RevenueSince 该等级会员自 since 起的订单金额合计
func (r *GormVIPRepository) RevenueSince(id string, since time.Time) (decimal.Decimal, error) {
	var row struct {
		Total float64
	}
	err := r.db.Model(&models.Order{}).
		Select("COALESCE(SUM(orders.total_amount), 0) AS total").
		Joins("JOIN users ON users.id = orders.user_id").
		Where("users.vip_level_id = ? AND orders.created_at >= ?", id, since).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromFloat(row.Total).Round(2), nil
}
