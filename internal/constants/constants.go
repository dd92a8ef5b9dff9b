package constants

// 订单状态常量
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// 物流状态常量
const (
	ShipmentStatusAwaitingPickup = "awaiting_pickup"
	ShipmentStatusInTransit      = "in_transit"
	ShipmentStatusOutForDelivery = "out_for_delivery"
	ShipmentStatusDelivered      = "delivered"
)

// 订单排序方式
const (
	OrderSortDefault    = ""
	OrderSortAmountDesc = "amount_desc"
	OrderSortAmountAsc  = "amount_asc"
)

// 列表筛选“全部”占位值（原管理端约定）
const (
	FilterAll       = "all"
	FilterAllZh     = "全部"
	FilterAllStatus = "全部状态"
)

// 用户状态常量（管理端展示值）
const (
	UserStatusActive   = "活跃"
	UserStatusInactive = "非活跃"
)

// 商品上下架状态
const (
	ProductStatusOnSale  = "上架"
	ProductStatusOffSale = "下架"
)

// 分页常量
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// 队列常量
const (
	QueueDefault             = "default"
	TaskOrderStatusChanged   = "order:status_changed"
	TaskShipmentStageChanged = "shipment:stage_changed"
)

// 缓存常量
const (
	RedisPrefixDefault = "pm"
	CacheKeyDashboard  = "dashboard"
)

// 会话槽位常量
const (
	SessionKey = "adminUser"
)
