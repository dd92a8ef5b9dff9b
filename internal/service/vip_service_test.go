package service

import (
	"errors"
	"testing"
	"time"

	"github.com/petmall-admin/internal/models"
	"github.com/petmall-admin/internal/repository"
)

func TestVIPServiceUniquenessAndDeleteGuard(t *testing.T) {
	db := openServiceTestDB(t)
	svc := NewVIPService(repository.NewVIPRepository(db))

	gold, err := svc.Create(VIPInput{Name: "黄金会员", Level: 2, Discount: 90, MinSpend: models.MustMoney("1000")})
	if err != nil {
		t.Fatalf("create vip failed: %v", err)
	}
	if _, err := svc.Create(VIPInput{Name: "黄金会员", Level: 3, Discount: 85}); !errors.Is(err, ErrVIPNameExists) {
		t.Fatalf("duplicate name should be rejected, got %v", err)
	}
	if _, err := svc.Create(VIPInput{Name: "铂金会员", Level: 2, Discount: 85}); !errors.Is(err, ErrVIPLevelExists) {
		t.Fatalf("duplicate level should be rejected, got %v", err)
	}
	if _, err := svc.Create(VIPInput{Name: "钻石会员", Level: 4, Discount: 120}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("discount > 100 should be rejected, got %v", err)
	}
	if _, err := svc.Update(gold.ID, VIPInput{Name: "黄金会员", Level: 2, Discount: 88}); err != nil {
		t.Fatalf("update keeping own name should pass: %v", err)
	}

	member := &models.User{Username: "u1", Email: "u1@example.com", VIPLevelID: &gold.ID}
	if err := db.Create(member).Error; err != nil {
		t.Fatalf("create member failed: %v", err)
	}
	order := &models.Order{OrderNo: "PMVIP1", UserID: member.ID, Status: "paid", TotalAmount: models.MustMoney("66.60"), CreatedAt: time.Now()}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	levels, err := svc.List()
	if err != nil {
		t.Fatalf("list vip failed: %v", err)
	}
	if len(levels) != 1 || levels[0].MemberCount != 1 || levels[0].MonthlyRevenue.String() != "66.60" {
		t.Fatalf("unexpected vip stats: %+v", levels)
	}

	err = svc.Delete(gold.ID)
	var membersErr *VIPMembersError
	if !errors.As(err, &membersErr) || membersErr.Members != 1 {
		t.Fatalf("delete with members should be rejected, got %v", err)
	}
	if err.Error() != "Cannot delete VIP level with 1 members" {
		t.Fatalf("unexpected detail: %s", err.Error())
	}

	if err := db.Model(member).Update("vip_level_id", nil).Error; err != nil {
		t.Fatalf("detach member failed: %v", err)
	}
	if err := svc.Delete(gold.ID); err != nil {
		t.Fatalf("delete empty level failed: %v", err)
	}
	if err := svc.Delete(gold.ID); !errors.Is(err, ErrVIPNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
