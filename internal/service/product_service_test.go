package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/petmall-admin/internal/constants"
	"github.com/petmall-admin/internal/repository"
)

func TestProductImportReportsMixedOutcome(t *testing.T) {
	db := openServiceTestDB(t)
	svc := NewProductService(repository.NewProductRepository(db))

	result := svc.Import([]ProductInput{
		{Name: "冻干鸡肉", Price: "39.90", Category: "零食", Stock: 10},
		{Name: "", Price: "12"},
		{Name: "猫抓板", Price: "abc"},
		{Name: "狗绳", Price: "25", Stock: 3},
	})
	if result.Message != "Successfully uploaded 2 products" {
		t.Fatalf("unexpected message: %s", result.Message)
	}
	if len(result.Errors) != 2 {
		t.Fatalf("expected 2 row errors, got %v", result.Errors)
	}
	if !strings.HasPrefix(result.Errors[0], "Line 3: ") || !strings.HasPrefix(result.Errors[1], "Line 4: ") {
		t.Fatalf("row errors should carry line numbers: %v", result.Errors)
	}

	_, total, _, err := svc.List(ProductListInput{})
	if err != nil {
		t.Fatalf("list products failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("valid rows should be committed, total=%d", total)
	}
}

func TestProductImportAllValidHasEmptyErrors(t *testing.T) {
	db := openServiceTestDB(t)
	svc := NewProductService(repository.NewProductRepository(db))

	result := svc.Import([]ProductInput{{Name: "猫砂", Price: "59"}})
	if result.Errors == nil || len(result.Errors) != 0 {
		t.Fatalf("errors should be an empty list, got %#v", result.Errors)
	}
}

func TestProductCRUDAndBatchDelete(t *testing.T) {
	db := openServiceTestDB(t)
	svc := NewProductService(repository.NewProductRepository(db))

	first, err := svc.Create(ProductInput{Name: "狗粮", Price: "88.00", Category: "主粮"})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if first.Status != constants.ProductStatusOnSale {
		t.Fatalf("default status should be on sale, got %s", first.Status)
	}
	second, err := svc.Create(ProductInput{Name: "猫粮", Price: "66", Category: "主粮", Status: constants.ProductStatusOffSale})
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if _, err := svc.Create(ProductInput{Name: "坏价格", Price: "-1"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative price should be rejected, got %v", err)
	}
	if _, err := svc.Create(ProductInput{Name: "坏状态", Price: "1", Status: "售罄"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("unknown status should be rejected, got %v", err)
	}

	updated, err := svc.Update(first.ID, ProductInput{Name: "狗粮 2kg", Price: "90.5", Category: "主粮", Stock: 5})
	if err != nil {
		t.Fatalf("update product failed: %v", err)
	}
	if updated.Price.String() != "90.50" || updated.Stock != 5 {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	items, total, _, err := svc.List(ProductListInput{Category: "全部", Search: "狗"})
	if err != nil || total != 1 || items[0].ID != first.ID {
		t.Fatalf("unexpected search result: total=%d err=%v", total, err)
	}

	res, err := svc.BatchDelete([]string{first.ID, second.ID, "missing"})
	if err != nil {
		t.Fatalf("batch delete failed: %v", err)
	}
	if res.Message != "Successfully deleted 2 products" {
		t.Fatalf("unexpected message: %s", res.Message)
	}
	if _, err := svc.BatchDelete(nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty batch should be rejected, got %v", err)
	}
	if _, err := svc.Get(first.ID); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}
