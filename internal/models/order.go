package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order 订单表
type Order struct {
	ID              string          `gorm:"primaryKey;size:36" json:"id"`                              // 主键
	OrderNo         string          `gorm:"uniqueIndex;size:50;not null" json:"order_number"`          // 订单编号
	UserID          string          `gorm:"size:36;index" json:"user_id"`                              // 用户ID
	PaymentMethod   string          `gorm:"size:50" json:"payment_method"`                             // 支付方式
	TotalAmount     Money           `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"` // 实付金额
	Status          string          `gorm:"size:20;index;not null" json:"status"`                      // 订单状态
	AddressSnapshot AddressSnapshot `gorm:"type:text" json:"address"`                                  // 收货地址快照
	CreatedAt       time.Time       `gorm:"index" json:"created_at"`                                   // 创建时间
	UpdatedAt       time.Time       `json:"updated_at"`                                                // 更新时间

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	User  *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}

// BeforeCreate 生成主键
func (o *Order) BeforeCreate(_ *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// CustomerName 收货人优先，其次下单用户
func (o *Order) CustomerName() string {
	if o.AddressSnapshot.Name != "" {
		return o.AddressSnapshot.Name
	}
	if o.User != nil {
		return o.User.Username
	}
	return ""
}
