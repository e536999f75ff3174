//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/Gunvolt24/pixelcraft/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// MakeProduct — валидный активный товар с уникальными id и slug.
func MakeProduct(opts ...func(*domain.Product)) domain.Product {
	suffix := UniqSuffix()
	p := domain.Product{
		ID:        "pc-" + suffix,
		Name:      "PC Gamer " + suffix,
		Subtitle:  "Pronto para jogar",
		Price:     4999.90,
		Processor: "Ryzen 5 5600",
		GPU:       "GTX 1650",
		RAM:       "16GB",
		Storage:   "SSD 512GB",
		MainImage: "/static/img/pc-" + suffix + ".webp",
		InStock:   true,
		Active:    true,
	}
	for _, fn := range opts {
		fn(&p)
	}
	if p.Slug == "" {
		p.Slug = domain.Slugify(p.Name)
	}
	return p
}

func WithCategory(slug string) func(*domain.Product) {
	return func(p *domain.Product) { p.CategorySlug = slug }
}

func WithPrice(price float64) func(*domain.Product) {
	return func(p *domain.Product) { p.Price = price }
}

func WithGPU(gpu string) func(*domain.Product) {
	return func(p *domain.Product) { p.GPU = gpu }
}

func WithProductID(id string) func(*domain.Product) {
	return func(p *domain.Product) { p.ID = id }
}

func WithFeatured() func(*domain.Product) {
	return func(p *domain.Product) { p.Featured = true }
}

func WithInactive() func(*domain.Product) {
	return func(p *domain.Product) { p.Active = false }
}
