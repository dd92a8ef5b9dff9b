package admin

import (
	"time"

	"github.com/petmall-admin/internal/lifecycle"
	"github.com/petmall-admin/internal/models"
	"github.com/petmall-admin/internal/service"
)

// OrderItemView 订单项
type OrderItemView struct {
	ProductID   string       `json:"product_id"`
	ProductName string       `json:"product_name"`
	Quantity    int          `json:"quantity"`
	Price       models.Money `json:"price"`
}

// OrderView 订单列表/详情公共字段
type OrderView struct {
	ID            string                 `json:"id"`
	OrderNumber   string                 `json:"order_number"`
	UserID        string                 `json:"user_id"`
	Customer      string                 `json:"customer"`
	PaymentMethod string                 `json:"payment_method"`
	TotalAmount   models.Money           `json:"total_amount"`
	Status        string                 `json:"status"`
	StatusLabel   string                 `json:"status_label"`
	StatusColor   string                 `json:"status_color"`
	Address       models.AddressSnapshot `json:"address"`
	AddressLine   string                 `json:"address_line"`
	Items         []OrderItemView        `json:"items"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

// OrderDetailView 订单详情，附带物流与状态流水
type OrderDetailView struct {
	OrderView
	Shipment *ShipmentView           `json:"shipment"`
	Logs     []OrderStatusLogView    `json:"logs"`
	Actions  []lifecycle.OrderAction `json:"actions"`
}

// OrderStatusLogView 状态流水
type OrderStatusLogView struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	Operator  string    `json:"operator"`
	CreatedAt time.Time `json:"created_at"`
}

// ShipmentView 物流记录
type ShipmentView struct {
	ID                uint                     `json:"id"`
	OrderID           string                   `json:"order_id"`
	OrderNumber       string                   `json:"order_number"`
	Customer          string                   `json:"customer"`
	TrackingNumber    string                   `json:"tracking_number"`
	Carrier           string                   `json:"carrier"`
	Status            string                   `json:"status"`
	StatusLabel       string                   `json:"status_label"`
	StatusColor       string                   `json:"status_color"`
	ShippedAt         time.Time                `json:"shipped_at"`
	EstimatedDelivery *time.Time               `json:"estimated_delivery"`
	UpdatedAt         time.Time                `json:"updated_at"`
	Timeline          []lifecycle.TimelineStep `json:"timeline"`
	Next              *lifecycle.AdvanceAction `json:"next,omitempty"`
}

func buildOrderView(order *models.Order) OrderView {
	presentation := lifecycle.OrderPresentation(order.Status)
	items := make([]OrderItemView, 0, len(order.Items))
	for _, item := range order.Items {
		name := ""
		if item.Product != nil {
			name = item.Product.Name
		}
		items = append(items, OrderItemView{
			ProductID:   item.ProductID,
			ProductName: name,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}
	return OrderView{
		ID:            order.ID,
		OrderNumber:   order.OrderNo,
		UserID:        order.UserID,
		Customer:      order.CustomerName(),
		PaymentMethod: order.PaymentMethod,
		TotalAmount:   order.TotalAmount,
		Status:        order.Status,
		StatusLabel:   presentation.Label,
		StatusColor:   presentation.Color,
		Address:       order.AddressSnapshot,
		AddressLine:   order.AddressSnapshot.Line(),
		Items:         items,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
}

func buildOrderViews(orders []models.Order) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for i := range orders {
		views = append(views, buildOrderView(&orders[i]))
	}
	return views
}

func buildOrderDetailView(detail *service.OrderDetail) OrderDetailView {
	view := OrderDetailView{
		OrderView: buildOrderView(detail.Order),
		Logs:      make([]OrderStatusLogView, 0, len(detail.Logs)),
		Actions:   lifecycle.OfferedActions(lifecycle.OrderStatus(detail.Order.Status)),
	}
	if detail.Shipment != nil {
		shipment := buildShipmentView(detail.Shipment)
		if shipment.OrderNumber == "" {
			shipment.OrderNumber = detail.Order.OrderNo
			shipment.Customer = detail.Order.CustomerName()
		}
		view.Shipment = &shipment
	}
	for _, log := range detail.Logs {
		view.Logs = append(view.Logs, OrderStatusLogView{
			From:      log.FromStatus,
			To:        log.ToStatus,
			Operator:  log.Operator,
			CreatedAt: log.CreatedAt,
		})
	}
	return view
}

func buildShipmentView(shipment *models.Shipment) ShipmentView {
	presentation := lifecycle.ShipmentPresentation(shipment.Status)
	view := ShipmentView{
		ID:                shipment.ID,
		OrderID:           shipment.OrderID,
		TrackingNumber:    shipment.TrackingNumber,
		Carrier:           shipment.Carrier,
		Status:            shipment.Status,
		StatusLabel:       presentation.Label,
		StatusColor:       presentation.Color,
		ShippedAt:         shipment.ShippedAt,
		EstimatedDelivery: shipment.EstimatedDeliveryAt,
		UpdatedAt:         shipment.UpdatedAt,
	}
	if parsed, err := lifecycle.ParseShipmentStatus(shipment.Status); err == nil {
		view.Status = string(parsed)
		view.Timeline = lifecycle.Timeline(parsed)
		if next, ok := lifecycle.OfferedAdvance(parsed); ok {
			view.Next = &next
		}
	}
	if shipment.Order != nil {
		view.OrderNumber = shipment.Order.OrderNo
		view.Customer = shipment.Order.CustomerName()
	}
	return view
}

func buildShipmentViews(shipments []models.Shipment) []ShipmentView {
	views := make([]ShipmentView, 0, len(shipments))
	for i := range shipments {
		views = append(views, buildShipmentView(&shipments[i]))
	}
	return views
}
