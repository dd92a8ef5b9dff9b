package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product 商品表
type Product struct {
	ID          string  `gorm:"primaryKey;size:36" json:"id"`                       // 主键
	Name        string  `gorm:"size:100;index;not null" json:"name"`                // 商品名称
	Price       Money   `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // 价格
	Category    string  `gorm:"size:50;index" json:"category"`                      // 分类名称
	Image       string  `gorm:"type:text" json:"image"`                             // 主图
	Description string  `gorm:"type:text" json:"description"`                       // 描述
	Rating      float64 `gorm:"default:0" json:"rating"`                            // 评分
	Sales       int     `gorm:"default:0" json:"sales"`                             // 销量
	Stock       int     `gorm:"default:0" json:"stock"`                             // 库存
	Status      string  `gorm:"size:20;default:'上架';index" json:"status"`           // 上下架状态
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// BeforeCreate 生成主键
func (p *Product) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
