package ports

import (
	"context"

	"github.com/Gunvolt24/pixelcraft/internal/domain"
)

// ProductRepository — хранилище каталога.
// GetByID/GetBySlug возвращают (nil, nil), если записи нет.
type ProductRepository interface {
	Upsert(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
	List(ctx context.Context, filter domain.CatalogFilter) ([]*domain.Product, error)
	Search(ctx context.Context, query string, limit int) ([]domain.SearchHit, error)
	// Featured — активные товары с флагом featured, новые первыми.
	Featured(ctx context.Context, limit int) ([]*domain.Product, error)
	// Related — активные товары той же категории, кроме excludeID, в случайном порядке.
	Related(ctx context.Context, categorySlug, excludeID string, limit int) ([]*domain.Product, error)
	IncrementViews(ctx context.Context, id string) error
	Categories(ctx context.Context) ([]domain.Category, error)
}
