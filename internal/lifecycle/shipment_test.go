package lifecycle

import "testing"

func TestNextStageIsStrictlyLinear(t *testing.T) {
	for i, stage := range ShipmentStages {
		next, ok := NextStage(stage)
		if i == len(ShipmentStages)-1 {
			if ok {
				t.Fatalf("delivered must not advance, got %s", next)
			}
			continue
		}
		if !ok || next != ShipmentStages[i+1] {
			t.Fatalf("NextStage(%s) want %s got %s", stage, ShipmentStages[i+1], next)
		}
		if next.Index()-stage.Index() != 1 {
			t.Fatalf("advance from %s skipped stages", stage)
		}
	}
}

func TestCanAdvance(t *testing.T) {
	if CanAdvance(ShipmentDelivered) {
		t.Fatalf("delivered shipment must not offer advance")
	}
	if CanAdvance(ShipmentStatus("lost")) {
		t.Fatalf("unknown status must not offer advance")
	}
	if !CanAdvance(ShipmentAwaitingPickup) {
		t.Fatalf("awaiting pickup should offer advance")
	}
}

func TestIsSingleStep(t *testing.T) {
	if !IsSingleStep(ShipmentInTransit, ShipmentOutForDelivery) {
		t.Fatalf("in_transit -> out_for_delivery is one step")
	}
	if IsSingleStep(ShipmentAwaitingPickup, ShipmentOutForDelivery) {
		t.Fatalf("skip must not count as single step")
	}
	if IsSingleStep(ShipmentOutForDelivery, ShipmentInTransit) {
		t.Fatalf("regression must not count as single step")
	}
}

func TestTimelineMarksStagesUpToCurrent(t *testing.T) {
	for ci, current := range ShipmentStages {
		steps := Timeline(current)
		if len(steps) != len(ShipmentStages) {
			t.Fatalf("timeline length want %d got %d", len(ShipmentStages), len(steps))
		}
		for i, step := range steps {
			want := i <= ci
			if step.Done != want {
				t.Fatalf("current=%s step=%s done want %v got %v", current, step.Stage, want, step.Done)
			}
		}
	}
}

func TestParseShipmentStatusAcceptsLegacyLabels(t *testing.T) {
	cases := map[string]ShipmentStatus{
		"待揽件":              ShipmentAwaitingPickup,
		"运输中":              ShipmentInTransit,
		"派送中":              ShipmentOutForDelivery,
		"已签收":              ShipmentDelivered,
		"OUT_FOR_DELIVERY": ShipmentOutForDelivery,
	}
	for raw, want := range cases {
		got, err := ParseShipmentStatus(raw)
		if err != nil || got != want {
			t.Fatalf("ParseShipmentStatus(%q) want %s got %s err=%v", raw, want, got, err)
		}
	}
	if _, err := ParseShipmentStatus("shipped"); err == nil {
		t.Fatalf("expected error for unknown shipment status")
	}
}

func TestOfferedAdvanceLabels(t *testing.T) {
	action, ok := OfferedAdvance(ShipmentAwaitingPickup)
	if !ok || action.Target != ShipmentInTransit || action.Label != "揽件" {
		t.Fatalf("unexpected advance action: %+v", action)
	}
	if _, ok := OfferedAdvance(ShipmentDelivered); ok {
		t.Fatalf("delivered must not offer advance")
	}
}
