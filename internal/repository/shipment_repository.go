package repository

import (
	"errors"

	"github.com/petmall-admin/internal/models"

	"gorm.io/gorm"
)

// ShipmentRepository 物流数据访问接口
type ShipmentRepository interface {
	Create(shipment *models.Shipment) error
	GetByID(id uint) (*models.Shipment, error)
	GetByOrderID(orderID string) (*models.Shipment, error)
	ListAdmin(filter ShipmentListFilter) ([]models.Shipment, int64, error)
	Update(shipment *models.Shipment) error
	WithTx(tx *gorm.DB) *GormShipmentRepository
}

// GormShipmentRepository GORM 实现
type GormShipmentRepository struct {
	db *gorm.DB
}

// NewShipmentRepository 创建物流仓库
func NewShipmentRepository(db *gorm.DB) *GormShipmentRepository {
	return &GormShipmentRepository{db: db}
}

// WithTx 绑定事务
func (r *GormShipmentRepository) WithTx(tx *gorm.DB) *GormShipmentRepository {
	if tx == nil {
		return r
	}
	return &GormShipmentRepository{db: tx}
}

// Create 创建物流记录
func (r *GormShipmentRepository) Create(shipment *models.Shipment) error {
	return r.db.Create(shipment).Error
}

// GetByID 根据 ID 获取物流记录
func (r *GormShipmentRepository) GetByID(id uint) (*models.Shipment, error) {
	var shipment models.Shipment
	if err := r.db.Preload("Order").Preload("Order.User").First(&shipment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &shipment, nil
}

// GetByOrderID 根据订单获取物流记录
func (r *GormShipmentRepository) GetByOrderID(orderID string) (*models.Shipment, error) {
	var shipment models.Shipment
	if err := r.db.Preload("Order").Preload("Order.User").Where("order_id = ?", orderID).First(&shipment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &shipment, nil
}

// ListAdmin 管理端物流列表，关键字匹配订单号、收货人、下单用户与运单号
func (r *GormShipmentRepository) ListAdmin(filter ShipmentListFilter) ([]models.Shipment, int64, error) {
	query := r.db.Model(&models.Shipment{}).
		Joins("LEFT JOIN orders ON orders.id = shipments.order_id").
		Joins("LEFT JOIN users ON users.id = orders.user_id")
	if filter.Status != "" {
		query = query.Where("shipments.status = ?", filter.Status)
	}
	query = applyKeyword(query, filter.Search,
		"orders.order_no",
		jsonTextExpr(r.db, "orders.address_snapshot", "name"),
		"users.username",
		"shipments.tracking_number",
	)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var shipments []models.Shipment
	if err := applyWindow(query, filter.Window).
		Select("shipments.*").
		Preload("Order").
		Preload("Order.User").
		Order("shipments.id desc").
		Find(&shipments).Error; err != nil {
		return nil, 0, err
	}
	return shipments, total, nil
}

// Update 保存物流记录
func (r *GormShipmentRepository) Update(shipment *models.Shipment) error {
	return r.db.Omit("Order").Save(shipment).Error
}
