package adminclient

import "time"

// LoginForm 登录表单
type LoginForm struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// RegisterForm 管理员注册表单
type RegisterForm struct {
	Username string `json:"username" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=6"`
}

// ShipmentForm 手动创建物流记录
type ShipmentForm struct {
	OrderID           string     `json:"order_id" validate:"required"`
	Carrier           string     `json:"carrier" validate:"max=50"`
	TrackingNumber    string     `json:"tracking_number" validate:"max=100"`
	Status            string     `json:"status,omitempty"`
	EstimatedDelivery *time.Time `json:"estimated_delivery,omitempty"`
}

// ShipmentCorrection 物流编辑；nil 字段不修改
type ShipmentCorrection struct {
	Carrier           *string    `json:"carrier,omitempty" validate:"omitempty,max=50"`
	TrackingNumber    *string    `json:"tracking_number,omitempty" validate:"omitempty,max=100"`
	Status            *string    `json:"status,omitempty"`
	EstimatedDelivery *time.Time `json:"estimated_delivery,omitempty"`
}

// VIPForm 会员等级表单
type VIPForm struct {
	Name     string   `json:"name" validate:"required,max=50"`
	Level    int      `json:"level" validate:"gte=0"`
	Discount int      `json:"discount" validate:"gte=0,lte=100"`
	MinSpend string   `json:"min_spend,omitempty" validate:"omitempty,numeric"`
	Color    string   `json:"color" validate:"max=20"`
	Icon     string   `json:"icon" validate:"max=20"`
	Benefits []string `json:"benefits"`
}

// UserForm 用户表单
type UserForm struct {
	Username   string  `json:"username" validate:"required,max=50"`
	Email      string  `json:"email" validate:"required,email,max=100"`
	Phone      string  `json:"phone" validate:"max=20"`
	Avatar     string  `json:"avatar" validate:"max=255"`
	Password   string  `json:"password,omitempty" validate:"omitempty,min=6"`
	VIPLevelID *string `json:"vip_level_id"`
}

// CategoryForm 分类表单
type CategoryForm struct {
	Name        string `json:"name" validate:"required,max=50"`
	Description string `json:"description" validate:"max=200"`
	Icon        string `json:"icon" validate:"max=100"`
	Color       string `json:"color" validate:"max=50"`
	SortOrder   int    `json:"sort_order"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

// BannerForm 轮播图表单
type BannerForm struct {
	Title       string `json:"title" validate:"required,max=100"`
	ImageURL    string `json:"image_url" validate:"required"`
	Description string `json:"description"`
	LinkURL     string `json:"link_url" validate:"max=255"`
	SortOrder   int    `json:"sort_order"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

// ProductForm 商品表单，也是批量导入的单行
type ProductForm struct {
	Name        string `json:"name" validate:"required,max=100"`
	Price       string `json:"price" validate:"required,numeric"`
	Category    string `json:"category" validate:"max=50"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Stock       int    `json:"stock" validate:"gte=0"`
	Status      string `json:"status,omitempty" validate:"omitempty,oneof=上架 下架"`
}
