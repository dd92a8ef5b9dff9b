package adminclient

import (
	"time"

	"github.com/shopspring/decimal"
)

// Page 分页列表
type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
}

// MessageResult 仅含提示消息的响应
type MessageResult struct {
	Message string `json:"message"`
}

// Admin 管理员
type Admin struct {
	ID          uint       `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	LastLoginAt *time.Time `json:"last_login_at"`
}

// LoginResult 登录结果
type LoginResult struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	Admin       *Admin    `json:"admin"`
}

// Address 收货地址
type Address struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Province string `json:"province"`
	City     string `json:"city"`
	District string `json:"district"`
	Detail   string `json:"detail"`
}

// OrderItem 订单项
type OrderItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// Order 订单
type Order struct {
	ID            string          `json:"id"`
	OrderNumber   string          `json:"order_number"`
	UserID        string          `json:"user_id"`
	Customer      string          `json:"customer"`
	PaymentMethod string          `json:"payment_method"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Status        string          `json:"status"`
	StatusLabel   string          `json:"status_label"`
	StatusColor   string          `json:"status_color"`
	Address       Address         `json:"address"`
	AddressLine   string          `json:"address_line"`
	Items         []OrderItem     `json:"items"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// OrderAction 后端给出的可执行动作
type OrderAction struct {
	Name   string `json:"name"`
	Target string `json:"target"`
	Label  string `json:"label"`
}

// StatusLog 订单状态流水
type StatusLog struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	Operator  string    `json:"operator"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderDetail 订单详情
type OrderDetail struct {
	Order
	Shipment *Shipment     `json:"shipment"`
	Logs     []StatusLog   `json:"logs"`
	Actions  []OrderAction `json:"actions"`
}

// TimelineStep 物流时间线节点
type TimelineStep struct {
	Stage string `json:"stage"`
	Label string `json:"label"`
	Done  bool   `json:"done"`
}

// AdvanceOption 下一阶段按钮
type AdvanceOption struct {
	Target string `json:"target"`
	Label  string `json:"label"`
}

// Shipment 物流记录
type Shipment struct {
	ID                uint           `json:"id"`
	OrderID           string         `json:"order_id"`
	OrderNumber       string         `json:"order_number"`
	Customer          string         `json:"customer"`
	TrackingNumber    string         `json:"tracking_number"`
	Carrier           string         `json:"carrier"`
	Status            string         `json:"status"`
	StatusLabel       string         `json:"status_label"`
	StatusColor       string         `json:"status_color"`
	ShippedAt         time.Time      `json:"shipped_at"`
	EstimatedDelivery *time.Time     `json:"estimated_delivery"`
	UpdatedAt         time.Time      `json:"updated_at"`
	Timeline          []TimelineStep `json:"timeline"`
	Next              *AdvanceOption `json:"next,omitempty"`
}

// VIPLevel 会员等级
type VIPLevel struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Level          int             `json:"level"`
	Discount       int             `json:"discount"`
	MinSpend       decimal.Decimal `json:"min_spend"`
	Color          string          `json:"color"`
	Icon           string          `json:"icon"`
	Benefits       []string        `json:"benefits"`
	MemberCount    int64           `json:"member_count"`
	MonthlyRevenue decimal.Decimal `json:"monthly_revenue"`
}

// User 商城用户
type User struct {
	ID           string          `json:"id"`
	Username     string          `json:"username"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Avatar       string          `json:"avatar"`
	IsActive     bool            `json:"is_active"`
	VIPLevelID   *string         `json:"vip_level_id"`
	RegisteredAt time.Time       `json:"registered_at"`
	Status       string          `json:"status"`
	OrdersCount  int64           `json:"orders_count"`
	TotalSpent   decimal.Decimal `json:"total_spent"`
	Address      string          `json:"address"`
}

// Category 商品分类
type Category struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
	Color        string `json:"color"`
	SortOrder    int    `json:"sort_order"`
	IsActive     bool   `json:"is_active"`
	ProductCount int64  `json:"product_count"`
}

// Banner 首页轮播图
type Banner struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	ImageURL    string `json:"image_url"`
	Description string `json:"description"`
	LinkURL     string `json:"link_url"`
	SortOrder   int    `json:"sort_order"`
	IsActive    bool   `json:"is_active"`
}

// Product 商品
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Rating      float64         `json:"rating"`
	Sales       int             `json:"sales"`
	Stock       int             `json:"stock"`
	Status      string          `json:"status"`
}

// ImportResult 批量导入结果；Errors 非空时导入对话框保持打开
type ImportResult struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

// HasErrors 是否存在失败行
func (r *ImportResult) HasErrors() bool {
	return r != nil && len(r.Errors) > 0
}

// BatchDeleteResult 批量删除结果
type BatchDeleteResult struct {
	Message string `json:"message"`
	Deleted int64  `json:"deleted"`
}

// DashboardStats 总览卡片
type DashboardStats struct {
	TotalSales    decimal.Decimal `json:"total_sales"`
	TotalOrders   int64           `json:"total_orders"`
	TotalUsers    int64           `json:"total_users"`
	TotalProducts int64           `json:"total_products"`
}

// SalesPoint 月度销售额
type SalesPoint struct {
	Name  string          `json:"name"`
	Sales decimal.Decimal `json:"销售额"`
}

// CategoryPoint 分类商品数
type CategoryPoint struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// RecentOrder 最近订单
type RecentOrder struct {
	ID          string          `json:"id"`
	Customer    string          `json:"customer"`
	Product     string          `json:"product"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	StatusLabel string          `json:"status_label"`
	StatusColor string          `json:"status_color"`
}
