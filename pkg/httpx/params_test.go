package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Gunvolt24/pixelcraft/pkg/httpx"
	"github.com/gin-gonic/gin"
)

// Утилита для создания *gin.Context с query-строкой
func ctxWithQuery(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/?"+rawQuery, http.NoBody)
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c
}

func TestClampInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		v, min, max int
		want        int
	}{
		{"below_min", 0, 1, 10, 1},
		{"above_max", 11, 1, 10, 10},
		{"inside", 5, 1, 10, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := httpx.ClampInt(tt.v, tt.min, tt.max); got != tt.want {
				t.Fatalf("ClampInt(%d,%d,%d) = %d, want %d", tt.v, tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestParseLimitOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		rawQuery     string
		defaultLimit int
		maxLimit     int
		wantLimit    int
		wantOffset   int
	}{
		{"defaults", "", 24, 60, 24, 0},
		{"default_above_max", "", 100, 60, 60, 0},
		{"ok_both", "limit=12&offset=24", 24, 60, 12, 24},
		{"limit_zero_clamped_to_min", "limit=0", 24, 60, 1, 0},
		{"limit_above_max_clamped", "limit=999", 24, 60, 60, 0},
		{"limit_non_int_uses_default", "limit=foo", 24, 60, 24, 0},
		{"offset_negative_ignored", "limit=10&offset=-3", 24, 60, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			limit, offset := httpx.ParseLimitOffset(ctxWithQuery(tt.rawQuery), tt.defaultLimit, tt.maxLimit)
			if limit != tt.wantLimit || offset != tt.wantOffset {
				t.Fatalf("got limit=%d offset=%d, want %d/%d (query=%q)",
					limit, offset, tt.wantLimit, tt.wantOffset, tt.rawQuery)
			}
		})
	}
}

func TestQueryPositiveInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rawQuery string
		want     int
	}{
		{"price_min=3000", 3000},
		{"price_min=", 0},
		{"price_min=abc", 0},
		{"price_min=-5", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := httpx.QueryPositiveInt(ctxWithQuery(tt.rawQuery), "price_min"); got != tt.want {
			t.Fatalf("QueryPositiveInt(%q) = %d, want %d", tt.rawQuery, got, tt.want)
		}
	}
}
