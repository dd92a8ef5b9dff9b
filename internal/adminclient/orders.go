package adminclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// OrderQuery 订单列表查询
type OrderQuery struct {
	Skip        int
	Limit       int
	Status      string
	OrderNumber string
	SortBy      string
}

func (q OrderQuery) values() url.Values {
	v := windowValues(q.Skip, q.Limit)
	setIf(v, "status", q.Status)
	setIf(v, "order_number", q.OrderNumber)
	setIf(v, "sort_by", q.SortBy)
	return v
}

// ShipmentQuery 物流列表查询
type ShipmentQuery struct {
	Skip   int
	Limit  int
	Search string
	Status string
}

func (q ShipmentQuery) values() url.Values {
	v := windowValues(q.Skip, q.Limit)
	setIf(v, "search", q.Search)
	setIf(v, "status", q.Status)
	return v
}

// ListOrders 订单列表
func (c *Client) ListOrders(ctx context.Context, q OrderQuery) (*Page[Order], error) {
	var page Page[Order]
	if err := c.get(ctx, "/admin/orders", q.values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetOrder 订单详情
func (c *Client) GetOrder(ctx context.Context, id string) (*OrderDetail, error) {
	var detail OrderDetail
	if err := c.get(ctx, "/admin/orders/"+url.PathEscape(id), nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// UpdateOrderStatus 变更订单状态
func (c *Client) UpdateOrderStatus(ctx context.Context, id, status string) (*OrderDetail, error) {
	var detail OrderDetail
	body := map[string]string{"status": status}
	if err := c.put(ctx, "/admin/orders/"+url.PathEscape(id)+"/status", body, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// ListShipments 物流列表
func (c *Client) ListShipments(ctx context.Context, q ShipmentQuery) (*Page[Shipment], error) {
	var page Page[Shipment]
	if err := c.get(ctx, "/admin/shipping", q.values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetShipment 物流详情
func (c *Client) GetShipment(ctx context.Context, id uint) (*Shipment, error) {
	var shipment Shipment
	if err := c.get(ctx, shipmentPath(id), nil, &shipment); err != nil {
		return nil, err
	}
	return &shipment, nil
}

// GetShipmentByOrder 按订单查物流
func (c *Client) GetShipmentByOrder(ctx context.Context, orderID string) (*Shipment, error) {
	var shipment Shipment
	if err := c.get(ctx, "/admin/shipping/order/"+url.PathEscape(orderID), nil, &shipment); err != nil {
		return nil, err
	}
	return &shipment, nil
}

// CreateShipment 创建物流记录
func (c *Client) CreateShipment(ctx context.Context, form ShipmentForm) (*Shipment, error) {
	if err := Validate(form); err != nil {
		return nil, err
	}
	var shipment Shipment
	if err := c.post(ctx, "/admin/shipping", form, &shipment); err != nil {
		return nil, err
	}
	return &shipment, nil
}

// CorrectShipment 编辑物流记录（可直接设置任一阶段）
func (c *Client) CorrectShipment(ctx context.Context, id uint, form ShipmentCorrection) (*Shipment, error) {
	if err := Validate(form); err != nil {
		return nil, err
	}
	var shipment Shipment
	if err := c.put(ctx, shipmentPath(id), form, &shipment); err != nil {
		return nil, err
	}
	return &shipment, nil
}

// AdvanceShipment 推进一步；target 为期望的下一阶段，空表示由后端决定
func (c *Client) AdvanceShipment(ctx context.Context, id uint, target string) (*Shipment, error) {
	var shipment Shipment
	body := map[string]string{"status": target}
	if err := c.post(ctx, shipmentPath(id)+"/advance", body, &shipment); err != nil {
		return nil, err
	}
	return &shipment, nil
}

func shipmentPath(id uint) string {
	return fmt.Sprintf("/admin/shipping/%d", id)
}

func windowValues(skip, limit int) url.Values {
	v := url.Values{}
	if skip > 0 {
		v.Set("skip", strconv.Itoa(skip))
	} else {
		v.Set("skip", "0")
	}
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	return v
}

func setIf(v url.Values, key, value string) {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		v.Set(key, trimmed)
	}
}
