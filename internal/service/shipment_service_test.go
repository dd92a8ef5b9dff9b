package service

import (
	"errors"
	"testing"
	"time"

	"github.com/petmall-admin/internal/constants"
	"github.com/petmall-admin/internal/repository"
)

func newShipmentServiceForTest(t *testing.T) (*ShipmentService, *OrderService, *recordingPublisher) {
	t.Helper()
	db := openServiceTestDB(t)
	pub := &recordingPublisher{}
	orderRepo := repository.NewOrderRepository(db)
	shipmentRepo := repository.NewShipmentRepository(db)
	orders := NewOrderService(orderRepo, shipmentRepo, repository.NewOrderStatusLogRepository(db), pub)
	return NewShipmentService(shipmentRepo, orderRepo, pub), orders, pub
}

func TestShipmentAdvanceIsStrictlyLinear(t *testing.T) {
	svc, orders, pub := newShipmentServiceForTest(t)
	order, err := orders.Create(CreateOrderInput{
		Status: constants.OrderStatusPaid,
		Items:  []CreateOrderItem{{ProductID: "p1", Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if _, err := orders.UpdateOrderStatus(order.ID, constants.OrderStatusShipped, "admin"); err != nil {
		t.Fatalf("ship order failed: %v", err)
	}
	shipment, err := svc.GetByOrder(order.ID)
	if err != nil {
		t.Fatalf("get shipment by order failed: %v", err)
	}

	if _, err := svc.Advance(shipment.ID, constants.ShipmentStatusOutForDelivery); !errors.Is(err, ErrShipmentStageInvalid) {
		t.Fatalf("skipping a stage must be rejected, got %v", err)
	}

	want := []string{
		constants.ShipmentStatusInTransit,
		constants.ShipmentStatusOutForDelivery,
		constants.ShipmentStatusDelivered,
	}
	for _, stage := range want {
		got, err := svc.Advance(shipment.ID, stage)
		if err != nil {
			t.Fatalf("advance to %s failed: %v", stage, err)
		}
		if got.Status != stage {
			t.Fatalf("expected %s, got %s", stage, got.Status)
		}
	}
	if _, err := svc.Advance(shipment.ID, ""); !errors.Is(err, ErrShipmentDelivered) {
		t.Fatalf("advance from delivered must fail, got %v", err)
	}
	if len(pub.shipments) != 3 {
		t.Fatalf("expected 3 stage events, got %d", len(pub.shipments))
	}
	for _, event := range pub.shipments {
		if event.Corrected {
			t.Fatalf("advance events must not be marked corrected: %+v", event)
		}
	}
}

func TestShipmentCorrectAllowsAnyStage(t *testing.T) {
	svc, orders, pub := newShipmentServiceForTest(t)
	order, err := orders.Create(CreateOrderInput{
		Status: constants.OrderStatusShipped,
		Items:  []CreateOrderItem{{ProductID: "p1", Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	shipment, err := svc.Create(CreateShipmentInput{OrderID: order.ID, Carrier: "顺丰", TrackingNumber: "SF100"})
	if err != nil {
		t.Fatalf("create shipment failed: %v", err)
	}
	if shipment.Status != constants.ShipmentStatusAwaitingPickup {
		t.Fatalf("default status should be awaiting pickup, got %s", shipment.Status)
	}

	delivered := constants.ShipmentStatusDelivered
	carrier := "中通"
	eta := time.Now().Add(48 * time.Hour)
	got, err := svc.Correct(shipment.ID, CorrectShipmentInput{Status: &delivered, Carrier: &carrier, EstimatedDeliveryAt: &eta})
	if err != nil {
		t.Fatalf("correct shipment failed: %v", err)
	}
	if got.Status != delivered || got.Carrier != "中通" || got.TrackingNumber != "SF100" {
		t.Fatalf("unexpected corrected shipment: %+v", got)
	}

	back := "待揽件"
	got, err = svc.Correct(shipment.ID, CorrectShipmentInput{Status: &back})
	if err != nil {
		t.Fatalf("correct back failed: %v", err)
	}
	if got.Status != constants.ShipmentStatusAwaitingPickup {
		t.Fatalf("legacy label should map to awaiting_pickup, got %s", got.Status)
	}
	if len(pub.shipments) != 2 || !pub.shipments[0].Corrected {
		t.Fatalf("expected corrected events, got %+v", pub.shipments)
	}

	bad := "lost"
	if _, err := svc.Correct(shipment.ID, CorrectShipmentInput{Status: &bad}); !errors.Is(err, ErrShipmentStatusBad) {
		t.Fatalf("unknown status should be rejected, got %v", err)
	}
}

func TestShipmentCreateRejectsDuplicateAndMissingOrder(t *testing.T) {
	svc, orders, _ := newShipmentServiceForTest(t)
	order, err := orders.Create(CreateOrderInput{
		Status: constants.OrderStatusShipped,
		Items:  []CreateOrderItem{{ProductID: "p1", Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if _, err := svc.Create(CreateShipmentInput{OrderID: order.ID}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(CreateShipmentInput{OrderID: order.ID}); !errors.Is(err, ErrShipmentExists) {
		t.Fatalf("duplicate should be rejected, got %v", err)
	}
	if _, err := svc.Create(CreateShipmentInput{OrderID: "missing"}); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("missing order should be rejected, got %v", err)
	}
	if _, err := svc.Get(9999); !errors.Is(err, ErrShipmentNotFound) {
		t.Fatalf("expected shipment not found, got %v", err)
	}
}

func TestShipmentCreateRequiresShippedOrder(t *testing.T) {
	svc, orders, _ := newShipmentServiceForTest(t)
	for _, status := range []string{
		constants.OrderStatusPending,
		constants.OrderStatusPaid,
		constants.OrderStatusCancelled,
	} {
		order, err := orders.Create(CreateOrderInput{
			Status: status,
			Items:  []CreateOrderItem{{ProductID: "p1", Quantity: 1}},
		})
		if err != nil {
			t.Fatalf("create %s order failed: %v", status, err)
		}
		if _, err := svc.Create(CreateShipmentInput{OrderID: order.ID}); !errors.Is(err, ErrShipmentOrderNotShipped) {
			t.Fatalf("%s order must not get a shipment, got %v", status, err)
		}
		if existing, _ := svc.GetByOrder(order.ID); existing != nil {
			t.Fatalf("%s order should have no shipment: %+v", status, existing)
		}
	}

	completed, err := orders.Create(CreateOrderInput{
		Status: constants.OrderStatusCompleted,
		Items:  []CreateOrderItem{{ProductID: "p1", Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create completed order failed: %v", err)
	}
	if _, err := svc.Create(CreateShipmentInput{OrderID: completed.ID}); err != nil {
		t.Fatalf("completed order without a record should accept one: %v", err)
	}
}

func TestShipmentListStatusFilter(t *testing.T) {
	svc, orders, _ := newShipmentServiceForTest(t)
	for i := 0; i < 3; i++ {
		order, err := orders.Create(CreateOrderInput{
			Status: constants.OrderStatusShipped,
			Items:  []CreateOrderItem{{ProductID: "p1", Quantity: 1}},
		})
		if err != nil {
			t.Fatalf("create order failed: %v", err)
		}
		if _, err := svc.Create(CreateShipmentInput{OrderID: order.ID}); err != nil {
			t.Fatalf("create shipment failed: %v", err)
		}
	}
	items, total, _, err := svc.List(ShipmentListInput{Status: "全部状态"})
	if err != nil || total != 3 || len(items) != 3 {
		t.Fatalf("unexpected all list: total=%d err=%v", total, err)
	}
	_, total, _, err = svc.List(ShipmentListInput{Status: "运输中"})
	if err != nil || total != 0 {
		t.Fatalf("unexpected in_transit list: total=%d err=%v", total, err)
	}
	if _, _, _, err := svc.List(ShipmentListInput{Status: "nope"}); !errors.Is(err, ErrShipmentStatusBad) {
		t.Fatalf("expected bad status error, got %v", err)
	}
}
