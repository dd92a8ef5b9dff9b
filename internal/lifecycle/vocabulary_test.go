package lifecycle

import "testing"

func TestEveryStatusHasPresentation(t *testing.T) {
	for _, status := range OrderStatuses {
		p := OrderPresentation(string(status))
		if p.Label == "" || p.Label == string(status) || p.Color == "" {
			t.Fatalf("order status %s missing presentation: %+v", status, p)
		}
	}
	for _, stage := range ShipmentStages {
		p := ShipmentPresentation(string(stage))
		if p.Label == "" || p.Label == string(stage) || p.Color == "" {
			t.Fatalf("shipment status %s missing presentation: %+v", stage, p)
		}
	}
}

func TestUnknownStatusFallsBackToRawValue(t *testing.T) {
	p := OrderPresentation("refunded")
	if p.Label != "refunded" || p.Color != ColorNeutral {
		t.Fatalf("unexpected fallback: %+v", p)
	}
	if ShipmentLabel("已签收") != "已签收" {
		t.Fatalf("legacy shipment label should resolve to itself")
	}
	if OrderLabel("paid") != "待发货" {
		t.Fatalf("paid label want 待发货 got %s", OrderLabel("paid"))
	}
}
