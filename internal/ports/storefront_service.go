package ports

import (
	"context"

	"github.com/Gunvolt24/pixelcraft/internal/domain"
)

// CartService — операции с корзиной сессии для HTTP-слоя.
type CartService interface {
	Add(ctx context.Context, sessionID, productID string) (int, error)
	Remove(ctx context.Context, sessionID, productID string) (int, error)
	View(ctx context.Context, sessionID string) (domain.CartView, error)
	// Checkout — как View, но пустая корзина — ошибка.
	Checkout(ctx context.Context, sessionID string) (domain.CartView, error)
	Count(ctx context.Context, sessionID string) (int, error)
}

// CatalogService — чтение каталога для HTTP-слоя.
type CatalogService interface {
	List(ctx context.Context, filter domain.CatalogFilter) ([]*domain.Product, error)
	Detail(ctx context.Context, slug string) (*domain.Product, error)
	Search(ctx context.Context, query string) ([]domain.SearchHit, error)
	Categories(ctx context.Context) ([]domain.Category, error)
	Featured(ctx context.Context) ([]*domain.Product, error)
	Related(ctx context.Context, product *domain.Product) ([]*domain.Product, error)
}

// NewsletterService — подписка на рассылку.
type NewsletterService interface {
	Subscribe(ctx context.Context, email string) (domain.NewsletterResult, error)
}
