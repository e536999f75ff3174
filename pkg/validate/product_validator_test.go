package validate

import (
	"context"
	"errors"
	"testing"

	"github.com/Gunvolt24/pixelcraft/internal/domain"
)

func validProduct() *domain.Product {
	return &domain.Product{ID: "pc-1", Name: "PC Gamer RTX", Price: 2999.90, Active: true}
}

func TestProductValidator_OK_DerivesSlug(t *testing.T) {
	p := validProduct()
	if err := NewProductValidator().Validate(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Slug != "pc-gamer-rtx" {
		t.Fatalf("slug: want pc-gamer-rtx, got %q", p.Slug)
	}
}

func TestProductValidator_Invalid(t *testing.T) {
	negative := -1.0
	tests := []struct {
		name   string
		mutate func(p *domain.Product)
	}{
		{"empty_id", func(p *domain.Product) { p.ID = " " }},
		{"empty_name", func(p *domain.Product) { p.Name = "" }},
		{"zero_price", func(p *domain.Product) { p.Price = 0 }},
		{"negative_old_price", func(p *domain.Product) { p.PriceOld = &negative }},
		{"slug_from_symbols_only", func(p *domain.Product) { p.Name = "###" }},
		{"not_normalized_slug", func(p *domain.Product) { p.Slug = "PC Gamer" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProduct()
			tt.mutate(p)
			err := NewProductValidator().Validate(context.Background(), p)
			if !errors.Is(err, ErrInvalidProduct) {
				t.Fatalf("want ErrInvalidProduct, got %v", err)
			}
		})
	}
}

func TestProductValidator_Nil(t *testing.T) {
	if err := NewProductValidator().Validate(context.Background(), nil); !errors.Is(err, ErrInvalidProduct) {
		t.Fatalf("want ErrInvalidProduct, got %v", err)
	}
}

func TestEmail(t *testing.T) {
	got, err := Email("  Gamer@Example.COM ")
	if err != nil || got != "gamer@example.com" {
		t.Fatalf("want normalized email, got %q err=%v", got, err)
	}

	for _, bad := range []string{"", "   ", "no-at-sign", "Name <a@b.com>", "a@"} {
		if _, err := Email(bad); !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("Email(%q): want ErrInvalidEmail, got %v", bad, err)
		}
	}
}
