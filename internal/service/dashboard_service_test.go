package service

import (
	"context"
	"testing"
	"time"

	"github.com/petmall-admin/internal/cache"
	"github.com/petmall-admin/internal/constants"
	"github.com/petmall-admin/internal/models"
	"github.com/petmall-admin/internal/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestDashboardServiceAggregates(t *testing.T) {
	db := openServiceTestDB(t)
	svc := NewDashboardService(repository.NewDashboardRepository(db), repository.NewOrderRepository(db))
	fixed := time.Date(2026, 3, 15, 12, 0, 0, 0, time.Local)
	svc.now = func() time.Time { return fixed }

	product := &models.Product{Name: "猫粮", Category: "主粮", Price: models.MustMoney("50")}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	march := createTestOrder(t, db, "PMD1", constants.OrderStatusPaid, "100.00", fixed.Add(-24*time.Hour))
	createTestOrder(t, db, "PMD2", constants.OrderStatusPending, "40.00", time.Date(2026, 1, 10, 0, 0, 0, 0, time.Local))
	items := []models.OrderItem{
		{OrderID: march.ID, ProductID: product.ID, Quantity: 1, Price: product.Price},
		{OrderID: march.ID, ProductID: product.ID, Quantity: 1, Price: product.Price},
	}
	if err := db.Create(&items).Error; err != nil {
		t.Fatalf("create items failed: %v", err)
	}

	ctx := context.Background()
	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.TotalSales.String() != "140.00" || stats.TotalOrders != 2 || stats.TotalProducts != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	points, err := svc.SalesChart(ctx)
	if err != nil {
		t.Fatalf("sales chart failed: %v", err)
	}
	if len(points) != 6 || points[0].Name != "10月" || points[5].Name != "3月" {
		t.Fatalf("unexpected chart months: %+v", points)
	}
	if points[5].Sales.String() != "100.00" || points[3].Sales.String() != "40.00" {
		t.Fatalf("unexpected chart values: %+v", points)
	}

	categories, err := svc.CategoryChart(ctx)
	if err != nil || len(categories) != 1 || categories[0].Name != "主粮" || categories[0].Value != 1 {
		t.Fatalf("unexpected category chart: %+v err=%v", categories, err)
	}

	recent, err := svc.RecentOrders()
	if err != nil {
		t.Fatalf("recent orders failed: %v", err)
	}
	if len(recent) != 2 || recent[0].ID != "PMD1" {
		t.Fatalf("unexpected recent orders: %+v", recent)
	}
	if recent[0].Product != "猫粮 等2件" || recent[0].StatusLabel != "待发货" || recent[0].Customer != "张三" {
		t.Fatalf("unexpected recent order view: %+v", recent[0])
	}
	if recent[1].Product != "无商品" {
		t.Fatalf("order without items should show placeholder, got %s", recent[1].Product)
	}
}

func TestDashboardStatsServedFromCache(t *testing.T) {
	mr := miniredis.RunT(t)
	cache.Use(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "test")
	t.Cleanup(cache.Reset)

	db := openServiceTestDB(t)
	svc := NewDashboardService(repository.NewDashboardRepository(db), repository.NewOrderRepository(db))
	ctx := context.Background()

	first, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if first.TotalOrders != 0 {
		t.Fatalf("expected empty stats, got %+v", first)
	}
	createTestOrder(t, db, "PMC1", constants.OrderStatusPaid, "10.00", time.Now())

	cached, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if cached.TotalOrders != 0 {
		t.Fatalf("second read should come from cache, got %+v", cached)
	}

	if err := cache.InvalidateDashboard(ctx, DashboardSections...); err != nil {
		t.Fatalf("invalidate failed: %v", err)
	}
	fresh, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if fresh.TotalOrders != 1 {
		t.Fatalf("stats should be recomputed after invalidation, got %+v", fresh)
	}
}
