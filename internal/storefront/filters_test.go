package storefront_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/pixelcraft/internal/storefront"
)

func query(t *testing.T, raw string) url.Values {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u.Query()
}

func TestApplyFilters_SetsAndDeletes(t *testing.T) {
	got, err := storefront.ApplyFilters(
		"http://shop.local/pcs?category=gamer&price_max=9000&performance=high",
		storefront.Filters{PriceMin: "2000", Performance: []string{"high", " ultra "}},
	)
	require.NoError(t, err)

	q := query(t, got)
	require.Equal(t, "gamer", q.Get("category"))
	require.Equal(t, "2000", q.Get("price_min"))
	require.False(t, q.Has("price_max"))
	require.Equal(t, "high,ultra", q.Get("performance"))
}

func TestApplyFilters_EmptyPerformanceRemovesParam(t *testing.T) {
	got, err := storefront.ApplyFilters("http://shop.local/pcs?performance=high", storefront.Filters{})
	require.NoError(t, err)
	require.False(t, query(t, got).Has("performance"))
}

func TestSortURL_KeepsOtherParams(t *testing.T) {
	got, err := storefront.SortURL("http://shop.local/pcs?category=gamer&sort=newest", "price_low")
	require.NoError(t, err)

	q := query(t, got)
	require.Equal(t, "price_low", q.Get("sort"))
	require.Equal(t, "gamer", q.Get("category"))
}
