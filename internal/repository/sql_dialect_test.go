package repository

import (
	"strings"
	"testing"
)

func TestJSONTextExprByDialect(t *testing.T) {
	if got := jsonTextExprByDialect("sqlite", "orders.address_snapshot", "name"); got != "json_extract(orders.address_snapshot, '$.name')" {
		t.Fatalf("sqlite json expr mismatch: %s", got)
	}
	if got := jsonTextExprByDialect("postgres", "orders.address_snapshot", "name"); got != "(orders.address_snapshot::jsonb ->> 'name')" {
		t.Fatalf("postgres json expr mismatch: %s", got)
	}
}

func TestBuildLikeConditionByDialect(t *testing.T) {
	condition, count := buildLikeConditionByDialect("postgres", "username", " ", "email")
	if count != 2 {
		t.Fatalf("arg count want 2 got %d", count)
	}
	if condition != "(username ILIKE ? OR email ILIKE ?)" {
		t.Fatalf("unexpected condition: %s", condition)
	}
	condition, _ = buildLikeConditionByDialect("sqlite", "order_no")
	if !strings.Contains(condition, "order_no LIKE ?") {
		t.Fatalf("sqlite should use LIKE, got %s", condition)
	}
}

func TestRepeatLikeArgs(t *testing.T) {
	args := repeatLikeArgs(" PM2024 ", 3)
	if len(args) != 3 {
		t.Fatalf("args len want 3 got %d", len(args))
	}
	for idx, arg := range args {
		if arg != "%PM2024%" {
			t.Fatalf("args[%d] unexpected: %v", idx, arg)
		}
	}
}

func TestWindowNormalize(t *testing.T) {
	w := Window{Skip: -5, Limit: 0}.Normalize()
	if w.Skip != 0 || w.Limit != 10 {
		t.Fatalf("unexpected normalized window: %+v", w)
	}
	if (Window{Skip: 20, Limit: 10}).Page() != 3 {
		t.Fatalf("skip 20 limit 10 should be page 3")
	}
	if (Window{Limit: 1000}).Normalize().Limit != 100 {
		t.Fatalf("limit should be capped")
	}
}
