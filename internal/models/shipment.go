package models

import "time"

// Shipment 物流记录，一个订单至多一条
type Shipment struct {
	ID                  uint       `gorm:"primarykey" json:"id"`                         // 主键
	OrderID             string     `gorm:"uniqueIndex;size:36;not null" json:"order_id"` // 订单ID
	TrackingNumber      string     `gorm:"size:100;index" json:"tracking_number"`        // 运单号
	Carrier             string     `gorm:"size:50" json:"carrier"`                       // 承运商
	Status              string     `gorm:"size:20;index;not null" json:"status"`         // 物流阶段
	ShippedAt           time.Time  `json:"shipped_at"`                                   // 发货时间
	EstimatedDeliveryAt *time.Time `json:"estimated_delivery_at"`                        // 预计送达
	UpdatedAt           time.Time  `json:"updated_at"`                                   // 更新时间

	Order *Order `gorm:"foreignKey:OrderID" json:"order,omitempty"`
}

// TableName 指定表名
func (Shipment) TableName() string {
	return "shipments"
}
