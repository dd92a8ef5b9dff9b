package repository

import (
	"github.com/petmall-admin/internal/models"

	"gorm.io/gorm"
)

// OrderStatusLogRepository 订单状态变更记录
type OrderStatusLogRepository interface {
	Create(log *models.OrderStatusLog) error
	ListByOrder(orderID string) ([]models.OrderStatusLog, error)
	WithTx(tx *gorm.DB) *GormOrderStatusLogRepository
}

// GormOrderStatusLogRepository GORM 实现
type GormOrderStatusLogRepository struct {
	db *gorm.DB
}

// NewOrderStatusLogRepository 创建状态记录仓库
func NewOrderStatusLogRepository(db *gorm.DB) *GormOrderStatusLogRepository {
	return &GormOrderStatusLogRepository{db: db}
}

// WithTx 绑定事务
func (r *GormOrderStatusLogRepository) WithTx(tx *gorm.DB) *GormOrderStatusLogRepository {
	if tx == nil {
		return r
	}
	return &GormOrderStatusLogRepository{db: tx}
}

// Create 写入一条记录
func (r *GormOrderStatusLogRepository) Create(log *models.OrderStatusLog) error {
	return r.db.Create(log).Error
}

// ListByOrder 按时间顺序列出订单的状态变更
func (r *GormOrderStatusLogRepository) ListByOrder(orderID string) ([]models.OrderStatusLog, error) {
	var logs []models.OrderStatusLog
	if err := r.db.Where("order_id = ?", orderID).Order("id asc").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
