package models

// Category 商品分类表
type Category struct {
	ID          uint   `gorm:"primarykey" json:"id"`                     // 主键
	Name        string `gorm:"uniqueIndex;size:50;not null" json:"name"` // 分类名称
	Description string `gorm:"size:200" json:"description"`              // 描述
	Icon        string `gorm:"size:100" json:"icon"`                     // 图标
	Color       string `gorm:"size:50;default:'blue'" json:"color"`      // 展示颜色
	SortOrder   int    `gorm:"default:0;index" json:"sort_order"`        // 排序权重
	IsActive    bool   `gorm:"default:true" json:"is_active"`            // 是否启用

	ProductCount int64 `gorm:"-" json:"product_count"` // 商品数量（查询时计算）
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}
