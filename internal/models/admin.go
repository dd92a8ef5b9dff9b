package models

import "time"

// Admin 管理员表
type Admin struct {
	ID           uint       `gorm:"primarykey" json:"id"`                         // 主键
	Username     string     `gorm:"uniqueIndex;not null;size:50" json:"username"` // 管理员账号
	Email        string     `gorm:"uniqueIndex;size:100" json:"email"`            // 邮箱
	PasswordHash string     `gorm:"not null" json:"-"`                            // 密码哈希（不返回给前端）
	Avatar       string     `gorm:"size:255" json:"avatar"`                       // 头像
	LastLoginAt  *time.Time `json:"last_login_at"`                                // 最后登录时间
	CreatedAt    time.Time  `gorm:"index" json:"created_at"`                      // 创建时间
}

// TableName 指定表名
func (Admin) TableName() string {
	return "admins"
}
