package lifecycle

import (
	"reflect"
	"testing"
)

func TestOfferedActionsMatchAllowedNext(t *testing.T) {
	expected := map[OrderStatus][]OrderStatus{
		OrderPending:   {OrderPaid, OrderCancelled},
		OrderPaid:      {OrderShipped, OrderCancelled},
		OrderShipped:   {OrderCompleted},
		OrderCompleted: {},
		OrderCancelled: {},
	}
	for _, status := range OrderStatuses {
		next := AllowedNext(status)
		if !reflect.DeepEqual(next, expected[status]) {
			t.Fatalf("allowed next for %s: want %v got %v", status, expected[status], next)
		}
		actions := OfferedActions(status)
		if len(actions) != len(next) {
			t.Fatalf("offered actions for %s: want %d got %d", status, len(next), len(actions))
		}
		for i, action := range actions {
			if action.Target != next[i] {
				t.Fatalf("action %d for %s targets %s, want %s", i, status, action.Target, next[i])
			}
			if action.Label == "" {
				t.Fatalf("action %s has empty label", action.Name)
			}
		}
	}
}

func TestCanCancelOnlyBeforeShipping(t *testing.T) {
	cases := map[OrderStatus]bool{
		OrderPending:   true,
		OrderPaid:      true,
		OrderShipped:   false,
		OrderCompleted: false,
		OrderCancelled: false,
	}
	for status, want := range cases {
		if got := CanCancel(status); got != want {
			t.Fatalf("CanCancel(%s) want %v got %v", status, want, got)
		}
	}
}

func TestCanTransitionRejectsEverythingOutsideTable(t *testing.T) {
	for _, from := range OrderStatuses {
		allowed := map[OrderStatus]bool{}
		for _, to := range AllowedNext(from) {
			allowed[to] = true
		}
		for _, to := range OrderStatuses {
			if got := CanTransition(from, to); got != allowed[to] {
				t.Fatalf("CanTransition(%s,%s) want %v got %v", from, to, allowed[to], got)
			}
		}
	}
}

func TestTerminalStatuses(t *testing.T) {
	if !OrderCompleted.Terminal() || !OrderCancelled.Terminal() {
		t.Fatalf("completed and cancelled must be terminal")
	}
	if OrderPending.Terminal() || OrderPaid.Terminal() || OrderShipped.Terminal() {
		t.Fatalf("non-terminal status reported terminal")
	}
	if OrderStatus("unknown").Terminal() {
		t.Fatalf("unknown status must not be terminal")
	}
}

func TestParseOrderStatus(t *testing.T) {
	got, err := ParseOrderStatus("  Paid ")
	if err != nil || got != OrderPaid {
		t.Fatalf("parse paid failed: %v %v", got, err)
	}
	if _, err := ParseOrderStatus("refunded"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}

func TestShipNowReplacedByComplete(t *testing.T) {
	ship, ok := ActionByName(OrderPaid, ActionShip)
	if !ok || ship.Target != OrderShipped {
		t.Fatalf("paid order should offer ship action, got %+v", ship)
	}
	if _, ok := ActionByName(OrderShipped, ActionShip); ok {
		t.Fatalf("shipped order must not offer ship action")
	}
	complete, ok := ActionByName(OrderShipped, ActionComplete)
	if !ok || complete.Target != OrderCompleted {
		t.Fatalf("shipped order should offer complete action, got %+v", complete)
	}
}

func TestActionFor(t *testing.T) {
	action, ok := ActionFor(OrderPending, OrderCancelled)
	if !ok || action.Name != ActionCancel {
		t.Fatalf("unexpected action: %+v %v", action, ok)
	}
	if _, ok := ActionFor(OrderShipped, OrderCancelled); ok {
		t.Fatalf("cancel must not be offered for shipped orders")
	}
}
