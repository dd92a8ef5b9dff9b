package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User 商城用户表
type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`                 // 主键
	Username     string    `gorm:"uniqueIndex;size:50" json:"username"`          // 用户名
	Email        string    `gorm:"uniqueIndex;size:100" json:"email"`            // 邮箱
	PasswordHash string    `gorm:"size:255" json:"-"`                            // 密码哈希
	Phone        string    `gorm:"size:20;index" json:"phone"`                   // 手机号
	Avatar       string    `gorm:"size:255" json:"avatar"`                       // 头像
	IsActive     bool      `gorm:"not null;default:true;index" json:"is_active"` // 是否启用
	VIPLevelID   *string   `gorm:"size:36;index" json:"vip_level_id"`            // 会员等级
	RegisteredAt time.Time `gorm:"index" json:"registered_at"`                   // 注册时间

	VIPLevel *VIPLevel `gorm:"foreignKey:VIPLevelID" json:"vip_level,omitempty"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}

// BeforeCreate 生成主键与注册时间
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.RegisteredAt.IsZero() {
		u.RegisteredAt = time.Now()
	}
	return nil
}
