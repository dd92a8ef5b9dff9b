package shared

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestParseWindow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		query     string
		wantSkip  int
		wantLimit int
	}{
		{"", 0, 10},
		{"?skip=20&limit=10", 20, 10},
		{"?skip=-5&limit=0", 0, 10},
		{"?skip=abc&limit=1000", 0, 100},
	}
	for _, tc := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/admin/orders"+tc.query, nil)
		skip, limit := ParseWindow(c)
		if skip != tc.wantSkip || limit != tc.wantLimit {
			t.Fatalf("query %q: got skip=%d limit=%d", tc.query, skip, limit)
		}
	}
}
