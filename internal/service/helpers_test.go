package service

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/petmall-admin/internal/models"
	"github.com/petmall-admin/internal/queue"

	"github.com/glebarez/sqlite"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

func openServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{DisableForeignKeyConstraintWhenMigrating: true})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.MigrateWith(db); err != nil {
		t.Fatalf("migrate models failed: %v", err)
	}
	return db
}

type recordingPublisher struct {
	mu        sync.Mutex
	orders    []queue.OrderStatusChangedPayload
	shipments []queue.ShipmentStageChangedPayload
	err       error
}

func (p *recordingPublisher) EnqueueOrderStatusChanged(payload queue.OrderStatusChangedPayload, _ ...asynq.Option) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.orders = append(p.orders, payload)
	return nil
}

func (p *recordingPublisher) EnqueueShipmentStageChanged(payload queue.ShipmentStageChangedPayload, _ ...asynq.Option) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.shipments = append(p.shipments, payload)
	return nil
}

func createTestOrder(t *testing.T, db *gorm.DB, orderNo, status, amount string, createdAt time.Time) *models.Order {
	t.Helper()
	order := &models.Order{
		OrderNo:         orderNo,
		Status:          status,
		TotalAmount:     models.MustMoney(amount),
		PaymentMethod:   "alipay",
		AddressSnapshot: models.AddressSnapshot{Name: "张三", Province: "浙江省", City: "杭州市", Detail: "文一路 1 号"},
		CreatedAt:       createdAt,
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return order
}
