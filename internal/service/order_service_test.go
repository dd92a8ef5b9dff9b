package service

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/petmall-admin/internal/constants"
	"github.com/petmall-admin/internal/models"
	"github.com/petmall-admin/internal/repository"

	"gorm.io/gorm"
)

func newOrderServiceForTest(t *testing.T) (*OrderService, *gorm.DB, *recordingPublisher) {
	t.Helper()
	db := openServiceTestDB(t)
	pub := &recordingPublisher{}
	svc := NewOrderService(
		repository.NewOrderRepository(db),
		repository.NewShipmentRepository(db),
		repository.NewOrderStatusLogRepository(db),
		pub,
	)
	return svc, db, pub
}

func TestUpdateOrderStatusFollowsTransitionTable(t *testing.T) {
	svc, db, pub := newOrderServiceForTest(t)
	order := createTestOrder(t, db, "PM100", constants.OrderStatusPending, "99.00", time.Now())

	if _, err := svc.UpdateOrderStatus(order.ID, constants.OrderStatusShipped, "admin"); !errors.Is(err, ErrOrderTransition) {
		t.Fatalf("pending -> shipped should be rejected, got %v", err)
	}
	var transitionErr *TransitionError
	_, err := svc.UpdateOrderStatus(order.ID, constants.OrderStatusCompleted, "admin")
	if !errors.As(err, &transitionErr) || transitionErr.From != "pending" || transitionErr.To != "completed" {
		t.Fatalf("expected transition error pending -> completed, got %v", err)
	}

	updated, err := svc.UpdateOrderStatus(order.ID, constants.OrderStatusPaid, "admin")
	if err != nil {
		t.Fatalf("pending -> paid failed: %v", err)
	}
	if updated.Status != constants.OrderStatusPaid {
		t.Fatalf("unexpected status: %s", updated.Status)
	}
	if len(pub.orders) != 1 || pub.orders[0].FromStatus != "pending" || pub.orders[0].ToStatus != "paid" {
		t.Fatalf("unexpected published events: %+v", pub.orders)
	}

	stored, err := svc.Get(order.ID)
	if err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if stored.Status != constants.OrderStatusPaid {
		t.Fatalf("status not persisted: %s", stored.Status)
	}
}

func TestUpdateOrderStatusSameStatusIsNoop(t *testing.T) {
	svc, db, pub := newOrderServiceForTest(t)
	order := createTestOrder(t, db, "PM101", constants.OrderStatusPaid, "10.00", time.Now())

	got, err := svc.UpdateOrderStatus(order.ID, constants.OrderStatusPaid, "admin")
	if err != nil {
		t.Fatalf("same status should succeed: %v", err)
	}
	if got.Status != constants.OrderStatusPaid {
		t.Fatalf("unexpected status: %s", got.Status)
	}
	if len(pub.orders) != 0 {
		t.Fatalf("no event expected for no-op, got %d", len(pub.orders))
	}
	detail, err := svc.GetDetail(order.ID)
	if err != nil {
		t.Fatalf("get detail failed: %v", err)
	}
	if len(detail.Logs) != 0 {
		t.Fatalf("no log row expected for no-op, got %d", len(detail.Logs))
	}
}

func TestUpdateOrderStatusShipCreatesShipmentOnce(t *testing.T) {
	svc, db, _ := newOrderServiceForTest(t)
	order := createTestOrder(t, db, "PM102", constants.OrderStatusPaid, "10.00", time.Now())

	if _, err := svc.UpdateOrderStatus(order.ID, constants.OrderStatusShipped, "ops"); err != nil {
		t.Fatalf("paid -> shipped failed: %v", err)
	}
	detail, err := svc.GetDetail(order.ID)
	if err != nil {
		t.Fatalf("get detail failed: %v", err)
	}
	if detail.Shipment == nil || detail.Shipment.Status != constants.ShipmentStatusAwaitingPickup {
		t.Fatalf("shipment should be created awaiting pickup, got %+v", detail.Shipment)
	}
	if len(detail.Logs) != 1 || detail.Logs[0].Operator != "ops" || detail.Logs[0].ToStatus != constants.OrderStatusShipped {
		t.Fatalf("unexpected logs: %+v", detail.Logs)
	}

	if _, err := svc.UpdateOrderStatus(order.ID, constants.OrderStatusCompleted, "ops"); err != nil {
		t.Fatalf("shipped -> completed failed: %v", err)
	}
	var count int64
	if err := db.Model(&models.Shipment{}).Where("order_id = ?", order.ID).Count(&count).Error; err != nil {
		t.Fatalf("count shipments failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one shipment, got %d", count)
	}
}

func TestUpdateOrderStatusTerminalAndCancel(t *testing.T) {
	svc, db, _ := newOrderServiceForTest(t)
	shipped := createTestOrder(t, db, "PM103", constants.OrderStatusShipped, "10.00", time.Now())
	if _, err := svc.UpdateOrderStatus(shipped.ID, constants.OrderStatusCancelled, "admin"); !errors.Is(err, ErrOrderTransition) {
		t.Fatalf("shipped order must not be cancellable, got %v", err)
	}

	paid := createTestOrder(t, db, "PM104", constants.OrderStatusPaid, "10.00", time.Now())
	if _, err := svc.UpdateOrderStatus(paid.ID, constants.OrderStatusCancelled, "admin"); err != nil {
		t.Fatalf("paid -> cancelled failed: %v", err)
	}
	for _, target := range []string{constants.OrderStatusPending, constants.OrderStatusPaid, constants.OrderStatusShipped, constants.OrderStatusCompleted} {
		if _, err := svc.UpdateOrderStatus(paid.ID, target, "admin"); !errors.Is(err, ErrOrderTransition) {
			t.Fatalf("cancelled is terminal, %s should be rejected, got %v", target, err)
		}
	}
}

// 在事务读取订单之后、写入之前插入一次并发取消，模拟没有行锁的数据库上两个请求交错
func TestUpdateOrderStatusLosesRaceToConcurrentCancel(t *testing.T) {
	svc, db, pub := newOrderServiceForTest(t)
	order := createTestOrder(t, db, "PM107", constants.OrderStatusPaid, "10.00", time.Now())

	var armed atomic.Bool
	armed.Store(true)
	err := db.Callback().Query().After("gorm:query").Register("test:concurrent_cancel", func(d *gorm.DB) {
		if d.Statement.Table != "orders" || !armed.CompareAndSwap(true, false) {
			return
		}
		if err := d.Session(&gorm.Session{NewDB: true}).
			Exec("UPDATE orders SET status = ? WHERE id = ?", constants.OrderStatusCancelled, order.ID).Error; err != nil {
			d.AddError(err)
		}
	})
	if err != nil {
		t.Fatalf("register callback failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Callback().Query().Remove("test:concurrent_cancel") })

	_, err = svc.UpdateOrderStatus(order.ID, constants.OrderStatusShipped, "ops")
	var transitionErr *TransitionError
	if !errors.As(err, &transitionErr) || transitionErr.From != "paid" || transitionErr.To != "shipped" {
		t.Fatalf("ship after concurrent cancel must be rejected, got %v", err)
	}

	detail, err := svc.GetDetail(order.ID)
	if err != nil {
		t.Fatalf("get detail failed: %v", err)
	}
	if detail.Order.Status != constants.OrderStatusCancelled {
		t.Fatalf("cancelled must stay terminal, got %s", detail.Order.Status)
	}
	if detail.Shipment != nil {
		t.Fatalf("no shipment may be created for a cancelled order: %+v", detail.Shipment)
	}
	if len(detail.Logs) != 0 {
		t.Fatalf("rejected transition must not write a log row, got %d", len(detail.Logs))
	}
	if len(pub.orders) != 0 {
		t.Fatalf("rejected transition must not publish, got %+v", pub.orders)
	}
}

func TestUpdateOrderStatusInputErrors(t *testing.T) {
	svc, db, _ := newOrderServiceForTest(t)
	order := createTestOrder(t, db, "PM105", constants.OrderStatusPending, "10.00", time.Now())

	if _, err := svc.UpdateOrderStatus(order.ID, "", "admin"); !errors.Is(err, ErrOrderStatusRequired) {
		t.Fatalf("expected status required, got %v", err)
	}
	if _, err := svc.UpdateOrderStatus(order.ID, "refunded", "admin"); !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("expected invalid status, got %v", err)
	}
	if _, err := svc.UpdateOrderStatus("missing", constants.OrderStatusPaid, "admin"); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateOrderStatusPublishFailureDoesNotFail(t *testing.T) {
	svc, db, pub := newOrderServiceForTest(t)
	pub.err = errors.New("redis down")
	order := createTestOrder(t, db, "PM106", constants.OrderStatusPending, "10.00", time.Now())

	if _, err := svc.UpdateOrderStatus(order.ID, constants.OrderStatusPaid, "admin"); err != nil {
		t.Fatalf("publish failure must not fail the transition: %v", err)
	}
}

func TestOrderListNormalizesFilters(t *testing.T) {
	svc, db, _ := newOrderServiceForTest(t)
	now := time.Now()
	createTestOrder(t, db, "PM200", constants.OrderStatusPending, "30.00", now.Add(-2*time.Hour))
	createTestOrder(t, db, "PM201", constants.OrderStatusPaid, "50.00", now.Add(-time.Hour))

	for _, all := range []string{"", "all", "全部", "全部状态"} {
		_, total, _, err := svc.List(OrderListInput{Status: all})
		if err != nil {
			t.Fatalf("list with %q failed: %v", all, err)
		}
		if total != 2 {
			t.Fatalf("%q should not filter, total=%d", all, total)
		}
	}

	orders, total, window, err := svc.List(OrderListInput{Status: "paid", Limit: 500})
	if err != nil {
		t.Fatalf("list paid failed: %v", err)
	}
	if total != 1 || orders[0].OrderNo != "PM201" {
		t.Fatalf("unexpected paid list: total=%d", total)
	}
	if window.Limit != constants.MaxPageSize {
		t.Fatalf("limit should be capped, got %d", window.Limit)
	}

	if _, _, _, err := svc.List(OrderListInput{Status: "bogus"}); !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("expected invalid status error, got %v", err)
	}
}

func TestCreateOrderComputesTotal(t *testing.T) {
	svc, db, _ := newOrderServiceForTest(t)
	product := &models.Product{Name: "猫粮", Price: models.MustMoney("45.50")}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	order, err := svc.Create(CreateOrderInput{
		PaymentMethod: "wechat",
		Items: []CreateOrderItem{
			{ProductID: product.ID, Quantity: 2, Price: product.Price},
			{ProductID: product.ID, Quantity: 1, Price: models.MustMoney("9.00")},
		},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if order.TotalAmount.String() != "100.00" {
		t.Fatalf("unexpected total: %s", order.TotalAmount.String())
	}
	if order.Status != constants.OrderStatusPending || len(order.OrderNo) != len("PM")+14+6 {
		t.Fatalf("unexpected order: status=%s no=%s", order.Status, order.OrderNo)
	}

	if _, err := svc.Create(CreateOrderInput{Items: []CreateOrderItem{{ProductID: product.ID, Quantity: 0}}}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("quantity 0 should be rejected, got %v", err)
	}
}
