package models

import "time"

// OrderStatusLog 订单状态变更记录
type OrderStatusLog struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	OrderID    string    `gorm:"size:36;index;not null" json:"order_id"`
	OrderNo    string    `gorm:"size:50;index" json:"order_number"`
	FromStatus string    `gorm:"size:20" json:"from_status"`
	ToStatus   string    `gorm:"size:20;not null" json:"to_status"`
	Operator   string    `gorm:"size:50" json:"operator"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

// TableName 指定表名
func (OrderStatusLog) TableName() string {
	return "order_status_logs"
}
