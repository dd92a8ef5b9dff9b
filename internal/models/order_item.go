package models

// OrderItem 订单项表
type OrderItem struct {
	ID        uint   `gorm:"primarykey" json:"id"`                               // 主键
	OrderID   string `gorm:"size:36;index;not null" json:"order_id"`             // 订单ID
	ProductID string `gorm:"size:36;index" json:"product_id"`                    // 商品ID
	Quantity  int    `gorm:"not null;default:1" json:"quantity"`                 // 数量
	Price     Money  `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // 单价

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
