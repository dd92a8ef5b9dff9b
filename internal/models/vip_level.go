package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VIPLevel 会员等级表
type VIPLevel struct {
	ID       string      `gorm:"primaryKey;size:36" json:"id"`                  // 主键
	Name     string      `gorm:"uniqueIndex;size:50" json:"name"`               // 等级名称
	Level    int         `gorm:"uniqueIndex" json:"level"`                      // 等级序号
	Discount int         `gorm:"not null;default:100" json:"discount"`          // 折扣（百分比）
	MinSpend Money       `gorm:"type:decimal(20,2);default:0" json:"min_spend"` // 升级门槛
	Color    string      `gorm:"size:20" json:"color"`                          // 展示颜色
	Icon     string      `gorm:"size:20" json:"icon"`                           // 图标
	Benefits StringArray `gorm:"type:text" json:"benefits"`                     // 权益列表

	MemberCount    int64 `gorm:"-" json:"member_count"`    // 会员数量（查询时计算）
	MonthlyRevenue Money `gorm:"-" json:"monthly_revenue"` // 本月营收（查询时计算）
}

// TableName 指定表名
func (VIPLevel) TableName() string {
	return "vip_levels"
}

// BeforeCreate 生成主键
func (v *VIPLevel) BeforeCreate(_ *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
