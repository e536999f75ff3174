package validate

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/Gunvolt24/pixelcraft/internal/domain"
	"github.com/Gunvolt24/pixelcraft/internal/ports"
)

// Проверка, что ProductValidator удовлетворяет интерфейсу ProductValidator.
var _ ports.ProductValidator = (*ProductValidator)(nil)

// ErrInvalidProduct — базовая (sentinel error) ошибка валидации товара из фида.
var ErrInvalidProduct = errors.New("product validation failed")

// ErrInvalidEmail — адрес для рассылки не прошёл проверку.
var ErrInvalidEmail = errors.New("invalid email")

// ProductValidator — валидация товара из фида каталога.
// Нормализует запись: пустой slug выводится из названия.
type ProductValidator struct{}

func NewProductValidator() *ProductValidator { return &ProductValidator{} }

// Validate — проверяет корректность полей товара; возвращает ErrInvalidProduct с причиной.
func (v *ProductValidator) Validate(_ context.Context, p *domain.Product) error {
	if p == nil {
		return fmt.Errorf("%w: product is nil", ErrInvalidProduct)
	}
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidProduct)
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidProduct)
	}
	if p.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrInvalidProduct)
	}
	if p.PriceOld != nil && *p.PriceOld < 0 {
		return fmt.Errorf("%w: price_old must be non-negative", ErrInvalidProduct)
	}
	if p.Slug == "" {
		p.Slug = domain.Slugify(p.Name)
	}
	if p.Slug == "" {
		return fmt.Errorf("%w: slug cannot be derived from name %q", ErrInvalidProduct, p.Name)
	}
	if p.Slug != domain.Slugify(p.Slug) {
		return fmt.Errorf("%w: slug %q is not normalized", ErrInvalidProduct, p.Slug)
	}
	return nil
}

// Email — проверка адреса для рассылки; возвращает нормализованный (trim + lower) адрес.
func Email(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidEmail)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", fmt.Errorf("%w: %q", ErrInvalidEmail, raw)
	}
	return email, nil
}
