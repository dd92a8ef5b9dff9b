package models

import "time"

// Banner 首页轮播图
type Banner struct {
	ID          uint      `gorm:"primarykey" json:"id"`                // 主键
	Title       string    `gorm:"size:100;not null" json:"title"`      // 标题
	ImageURL    string    `gorm:"type:text;not null" json:"image_url"` // 图片地址
	Description string    `gorm:"type:text" json:"description"`        // 描述
	LinkURL     string    `gorm:"size:255" json:"link_url"`            // 跳转链接
	SortOrder   int       `gorm:"default:0;index" json:"sort_order"`   // 排序
	IsActive    bool      `gorm:"default:true;index" json:"is_active"` // 是否启用
	CreatedAt   time.Time `gorm:"index" json:"created_at"`             // 创建时间
}

// TableName 指定表名
func (Banner) TableName() string {
	return "banners"
}
