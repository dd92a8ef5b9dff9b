package repository

import (
	"errors"

	"github.com/petmall-admin/internal/models"

	"gorm.io/gorm"
)

// UserRepository 用户数据访问接口
type UserRepository interface {
	GetByID(id string) (*models.User, error)
	CountByUsernameOrEmail(username, email string, excludeID string) (int64, error)
	Create(user *models.User) error
	Update(user *models.User) error
	UpdateActive(id string, active bool) error
	Delete(id string) error
	List(filter UserListFilter) ([]models.User, int64, error)
	Aggregates(userIDs []string) (map[string]UserAggregate, error)
	LatestAddresses(userIDs []string) (map[string]models.AddressSnapshot, error)
}

// GormUserRepository GORM 实现
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓库
func NewUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// GetByID 根据 ID 获取用户
func (r *GormUserRepository) GetByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.Preload("VIPLevel").Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// CountByUsernameOrEmail 唯一性校验
func (r *GormUserRepository) CountByUsernameOrEmail(username, email string, excludeID string) (int64, error) {
	var count int64
	query := r.db.Model(&models.User{}).Where("username = ? OR email = ?", username, email)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Create 创建用户
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// Update 更新用户
func (r *GormUserRepository) Update(user *models.User) error {
	return r.db.Omit("VIPLevel").Save(user).Error
}

// UpdateActive 切换启用状态
func (r *GormUserRepository) UpdateActive(id string, active bool) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("is_active", active).Error
}

// Delete 删除用户
func (r *GormUserRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.User{}).Error
}

// List 用户列表
func (r *GormUserRepository) List(filter UserListFilter) ([]models.User, int64, error) {
	query := r.db.Model(&models.User{})
	query = applyKeyword(query, filter.Search, "username", "email", "phone")
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var users []models.User
	if err := applyWindow(query, filter.Window).Preload("VIPLevel").Order("registered_at desc").Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// Aggregates 批量统计用户订单数与消费总额
func (r *GormUserRepository) Aggregates(userIDs []string) (map[string]UserAggregate, error) {
	result := make(map[string]UserAggregate, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}
	var rows []UserAggregate
	err := r.db.Model(&models.Order{}).
		Select("user_id, COUNT(*) AS orders_count, COALESCE(SUM(total_amount), 0) AS total_spent").
		Where("user_id IN ?", userIDs).
		Group("user_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.UserID] = row
	}
	return result, nil
}

// LatestAddresses 取每个用户最近一笔订单的收货地址
func (r *GormUserRepository) LatestAddresses(userIDs []string) (map[string]models.AddressSnapshot, error) {
	result := make(map[string]models.AddressSnapshot, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}
	var orders []models.Order
	err := r.db.Select("user_id", "address_snapshot", "created_at").
		Where("user_id IN ?", userIDs).
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	for _, order := range orders {
		if _, ok := result[order.UserID]; ok {
			continue
		}
		if order.AddressSnapshot.Line() == "" {
			continue
		}
		result[order.UserID] = order.AddressSnapshot
	}
	return result, nil
}
