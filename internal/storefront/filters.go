package storefront

import (
	"fmt"
	"net/url"
	"strings"
)

// Filters — фильтры каталога из боковой панели.
type Filters struct {
	PriceMin    string
	PriceMax    string
	Performance []string
}

// ApplyFilters — URL каталога с фильтрами: пустое значение удаляет параметр.
func ApplyFilters(current string, f Filters) (string, error) {
	u, err := url.Parse(current)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}
	q := u.Query()
	setOrDelete(q, "price_min", strings.TrimSpace(f.PriceMin))
	setOrDelete(q, "price_max", strings.TrimSpace(f.PriceMax))

	perf := make([]string, 0, len(f.Performance))
	for _, p := range f.Performance {
		if p = strings.TrimSpace(p); p != "" {
			perf = append(perf, p)
		}
	}
	setOrDelete(q, "performance", strings.Join(perf, ","))

	u.RawQuery = q.Encode()
	return u.String(), nil
}

// SortURL — текущий URL с заменённым sort; остальные параметры сохраняются.
func SortURL(current, sort string) (string, error) {
	u, err := url.Parse(current)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}
	q := u.Query()
	q.Set("sort", sort)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func setOrDelete(q url.Values, key, value string) {
	if value == "" {
		q.Del(key)
		return
	}
	q.Set(key, value)
}
