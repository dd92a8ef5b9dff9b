package lifecycle

import "strings"

// Presentation 状态的展示信息（文案 + 颜色标记）
type Presentation struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// ColorNeutral 未知状态使用的颜色
const ColorNeutral = "gray"

var orderPresentation = map[OrderStatus]Presentation{
	OrderPending:   {Label: "待付款", Color: "yellow"},
	OrderPaid:      {Label: "待发货", Color: "blue"},
	OrderShipped:   {Label: "已发货", Color: "purple"},
	OrderCompleted: {Label: "已完成", Color: "green"},
	OrderCancelled: {Label: "已取消", Color: "gray"},
}

var shipmentPresentation = map[ShipmentStatus]Presentation{
	ShipmentAwaitingPickup: {Label: "待揽件", Color: "orange"},
	ShipmentInTransit:      {Label: "运输中", Color: "blue"},
	ShipmentOutForDelivery: {Label: "派送中", Color: "purple"},
	ShipmentDelivered:      {Label: "已签收", Color: "green"},
}

// OrderPresentation 返回订单状态的展示信息，未知状态原样显示
func OrderPresentation(status string) Presentation {
	if p, ok := orderPresentation[OrderStatus(strings.TrimSpace(status))]; ok {
		return p
	}
	return Presentation{Label: status, Color: ColorNeutral}
}

// ShipmentPresentation 返回物流状态的展示信息，兼容中文存量值
func ShipmentPresentation(status string) Presentation {
	parsed, err := ParseShipmentStatus(status)
	if err != nil {
		return Presentation{Label: status, Color: ColorNeutral}
	}
	return shipmentPresentation[parsed]
}

// OrderLabel 订单状态文案
func OrderLabel(status string) string {
	return OrderPresentation(status).Label
}

// ShipmentLabel 物流状态文案
func ShipmentLabel(status string) string {
	return ShipmentPresentation(status).Label
}
