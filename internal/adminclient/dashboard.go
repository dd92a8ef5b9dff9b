package adminclient

import "context"

// DashboardStats 总览卡片
func (c *Client) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	if err := c.get(ctx, "/admin/dashboard/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// SalesChart 近六个月销售额
func (c *Client) SalesChart(ctx context.Context) ([]SalesPoint, error) {
	var points []SalesPoint
	if err := c.get(ctx, "/admin/dashboard/sales-chart", nil, &points); err != nil {
		return nil, err
	}
	return points, nil
}

// CategoryChart 分类商品分布
func (c *Client) CategoryChart(ctx context.Context) ([]CategoryPoint, error) {
	var points []CategoryPoint
	if err := c.get(ctx, "/admin/dashboard/category-chart", nil, &points); err != nil {
		return nil, err
	}
	return points, nil
}

// RecentOrders 最近订单
func (c *Client) RecentOrders(ctx context.Context) ([]RecentOrder, error) {
	var orders []RecentOrder
	if err := c.get(ctx, "/admin/dashboard/recent-orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
