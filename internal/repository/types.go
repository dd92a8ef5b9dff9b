package repository

// OrderListFilter 管理端订单列表过滤条件
type OrderListFilter struct {
	Window
	Status  string
	OrderNo string // 订单号模糊匹配
	SortBy  string // amount_desc / amount_asc / 默认按创建时间倒序
}

// ShipmentListFilter 物流列表过滤条件
type ShipmentListFilter struct {
	Window
	Search string // 订单号、收货人、用户名、运单号
	Status string
}

// UserListFilter 用户列表过滤条件
type UserListFilter struct {
	Window
	Search   string
	IsActive *bool
}

// ProductListFilter 商品列表过滤条件
type ProductListFilter struct {
	Window
	Search   string
	Category string
}

// UserAggregate 用户订单聚合
type UserAggregate struct {
	UserID      string
	OrdersCount int64
	TotalSpent  float64
}
