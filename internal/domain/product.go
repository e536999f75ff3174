package domain

import (
	"regexp"
	"strings"
	"time"
)

// Product — готовый ПК в каталоге магазина.
type Product struct {
	ID           string     `json:"id"`
	Slug         string     `json:"slug"`
	Name         string     `json:"name"`
	Subtitle     string     `json:"subtitle,omitempty"`
	Description  string     `json:"description,omitempty"`
	CategorySlug string     `json:"category_slug,omitempty"`
	Price        float64    `json:"price"`
	PriceOld     *float64   `json:"price_old,omitempty"`
	Processor    string     `json:"processor,omitempty"`
	GPU          string     `json:"gpu,omitempty"`
	RAM          string     `json:"ram,omitempty"`
	Storage      string     `json:"storage,omitempty"`
	MainImage    string     `json:"main_image,omitempty"`
	Featured     bool       `json:"featured"`
	Bestseller   bool       `json:"bestseller"`
	InStock      bool       `json:"in_stock"`
	Active       bool       `json:"active"`
	Views        int64      `json:"views"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// Category — категория каталога.
type Category struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Color  string `json:"color"`
	Ordem  int    `json:"ordem"`
	Active bool   `json:"active"`
}

// SearchHit — строка выдачи поиска.
type SearchHit struct {
	Slug  string  `json:"slug"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image,omitempty"`
}

// Порядок сортировки каталога.
const (
	SortNewest    = "newest"
	SortPriceLow  = "price_low"
	SortPriceHigh = "price_high"
	SortPopular   = "popular"
)

// CatalogFilter — параметры выборки каталога.
type CatalogFilter struct {
	CategorySlug string
	Sort         string
	PriceMin     int
	PriceMax     int
	Limit        int
	Offset       int
}

var (
	slugDrop  = regexp.MustCompile(`[^a-zA-Z0-9\s-]`)
	slugSpace = regexp.MustCompile(`[-\s]+`)
)

// Slugify — slug из названия: нижний регистр, только латиница/цифры, пробелы и дефисы схлопываются в "-".
func Slugify(name string) string {
	s := slugDrop.ReplaceAllString(strings.ToLower(name), "")
	s = slugSpace.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
