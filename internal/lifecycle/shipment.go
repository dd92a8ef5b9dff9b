package lifecycle

import (
	"fmt"
	"strings"

	"github.com/petmall-admin/internal/constants"
)

// ShipmentStatus 物流阶段
type ShipmentStatus string

const (
	ShipmentAwaitingPickup ShipmentStatus = constants.ShipmentStatusAwaitingPickup
	ShipmentInTransit      ShipmentStatus = constants.ShipmentStatusInTransit
	ShipmentOutForDelivery ShipmentStatus = constants.ShipmentStatusOutForDelivery
	ShipmentDelivered      ShipmentStatus = constants.ShipmentStatusDelivered
)

// ShipmentStages 物流阶段，严格线性
var ShipmentStages = []ShipmentStatus{
	ShipmentAwaitingPickup,
	ShipmentInTransit,
	ShipmentOutForDelivery,
	ShipmentDelivered,
}

// 推进到某阶段时的按钮文案
var advanceLabels = map[ShipmentStatus]string{
	ShipmentInTransit:      "揽件",
	ShipmentOutForDelivery: "派送",
	ShipmentDelivered:      "签收",
}

// 存量数据里直接存的是中文文案
var shipmentLegacyLabels = map[string]ShipmentStatus{
	"待揽件": ShipmentAwaitingPickup,
	"运输中": ShipmentInTransit,
	"派送中": ShipmentOutForDelivery,
	"已签收": ShipmentDelivered,
}

// ParseShipmentStatus 解析物流状态，同时接受机器码与中文文案
func ParseShipmentStatus(raw string) (ShipmentStatus, error) {
	trimmed := strings.TrimSpace(raw)
	if status, ok := shipmentLegacyLabels[trimmed]; ok {
		return status, nil
	}
	status := ShipmentStatus(strings.ToLower(trimmed))
	if status.Index() < 0 {
		return "", fmt.Errorf("unknown shipment status: %q", raw)
	}
	return status, nil
}

// Index 阶段序号，未知返回 -1
func (s ShipmentStatus) Index() int {
	for i, stage := range ShipmentStages {
		if stage == s {
			return i
		}
	}
	return -1
}

// Valid 是否为已知阶段
func (s ShipmentStatus) Valid() bool {
	return s.Index() >= 0
}

func (s ShipmentStatus) String() string {
	return string(s)
}

// NextStage 返回下一阶段；已签收或未知状态返回 false
func NextStage(current ShipmentStatus) (ShipmentStatus, bool) {
	idx := current.Index()
	if idx < 0 || idx >= len(ShipmentStages)-1 {
		return "", false
	}
	return ShipmentStages[idx+1], true
}

// CanAdvance 是否提供“推进”动作
func CanAdvance(current ShipmentStatus) bool {
	_, ok := NextStage(current)
	return ok
}

// IsSingleStep 判断 from -> to 是否恰好前进一步
func IsSingleStep(from, to ShipmentStatus) bool {
	next, ok := NextStage(from)
	return ok && next == to
}

// AdvanceAction 推进按钮
type AdvanceAction struct {
	Target ShipmentStatus `json:"target"`
	Label  string         `json:"label"`
}

// OfferedAdvance 返回当前阶段的推进按钮
func OfferedAdvance(current ShipmentStatus) (AdvanceAction, bool) {
	next, ok := NextStage(current)
	if !ok {
		return AdvanceAction{}, false
	}
	return AdvanceAction{Target: next, Label: advanceLabels[next]}, true
}

// TimelineStep 物流时间线节点
type TimelineStep struct {
	Stage ShipmentStatus `json:"stage"`
	Label string         `json:"label"`
	Done  bool           `json:"done"`
}

// Timeline 当前阶段及之前的节点标记完成，之后的节点为待完成
func Timeline(current ShipmentStatus) []TimelineStep {
	idx := current.Index()
	steps := make([]TimelineStep, 0, len(ShipmentStages))
	for i, stage := range ShipmentStages {
		steps = append(steps, TimelineStep{
			Stage: stage,
			Label: shipmentPresentation[stage].Label,
			Done:  idx >= 0 && i <= idx,
		})
	}
	return steps
}
