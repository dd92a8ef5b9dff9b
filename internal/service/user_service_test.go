package service

import (
	"errors"
	"testing"
	"time"

	"github.com/petmall-admin/internal/constants"
	"github.com/petmall-admin/internal/models"
	"github.com/petmall-admin/internal/repository"
)

func TestUserServiceViewsAndStatus(t *testing.T) {
	db := openServiceTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	alice, err := svc.Create(UserInput{Username: "alice", Email: "Alice@Example.com", Phone: "13800000001", Password: "secret1"})
	if err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	if alice.Email != "alice@example.com" || alice.Status != constants.UserStatusActive || alice.Address != "未知地址" {
		t.Fatalf("unexpected new user view: %+v", alice)
	}
	if alice.PasswordHash == "" || alice.PasswordHash == "secret1" {
		t.Fatalf("password should be hashed")
	}
	if _, err := svc.Create(UserInput{Username: "alice2", Email: "alice@example.com"}); !errors.Is(err, ErrUserExists) {
		t.Fatalf("duplicate email should be rejected, got %v", err)
	}

	older := &models.Order{OrderNo: "PMU1", UserID: alice.ID, Status: "paid", TotalAmount: models.MustMoney("20"),
		AddressSnapshot: models.AddressSnapshot{Province: "江苏省", City: "南京市"}, CreatedAt: time.Now().Add(-time.Hour)}
	newer := &models.Order{OrderNo: "PMU2", UserID: alice.ID, Status: "paid", TotalAmount: models.MustMoney("30.5"),
		AddressSnapshot: models.AddressSnapshot{Province: "浙江省", City: "杭州市", Detail: "西湖区"}, CreatedAt: time.Now()}
	for _, order := range []*models.Order{older, newer} {
		if err := db.Create(order).Error; err != nil {
			t.Fatalf("create order failed: %v", err)
		}
	}

	view, err := svc.Get(alice.ID)
	if err != nil {
		t.Fatalf("get user failed: %v", err)
	}
	if view.OrdersCount != 2 || view.TotalSpent.String() != "50.50" || view.Address != "浙江省杭州市西湖区" {
		t.Fatalf("unexpected aggregates: %+v", view)
	}

	if _, err := svc.UpdateStatus(alice.ID, "冻结"); !errors.Is(err, ErrUserStatusInvalid) {
		t.Fatalf("unknown status should be rejected, got %v", err)
	}
	view, err = svc.UpdateStatus(alice.ID, constants.UserStatusInactive)
	if err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	if view.Status != constants.UserStatusInactive {
		t.Fatalf("status not updated: %s", view.Status)
	}

	if _, err := svc.Create(UserInput{Username: "bob", Email: "bob@example.com"}); err != nil {
		t.Fatalf("create bob failed: %v", err)
	}
	users, total, _, err := svc.List(UserListInput{Status: constants.UserStatusActive})
	if err != nil || total != 1 || users[0].Username != "bob" {
		t.Fatalf("unexpected active filter: total=%d err=%v", total, err)
	}
	_, total, _, err = svc.List(UserListInput{Status: constants.FilterAllStatus, Search: "1380000"})
	if err != nil || total != 1 {
		t.Fatalf("search by phone failed: total=%d err=%v", total, err)
	}

	if err := svc.Delete(alice.ID); err != nil {
		t.Fatalf("delete user failed: %v", err)
	}
	if _, err := svc.Get(alice.ID); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
