package usecase

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/Gunvolt24/pixelcraft/internal/domain"
	"github.com/Gunvolt24/pixelcraft/internal/ports"
	"github.com/Gunvolt24/pixelcraft/pkg/metrics"
)

const (
	// MinSearchLen — короче запрос не уходит в БД.
	MinSearchLen = 2
	// SearchLimit — максимум строк в выдаче поиска.
	SearchLimit = 10
	// FeaturedLimit — товаров в витрине главной страницы.
	FeaturedLimit = 8
	// RelatedLimit — похожих товаров на карточке.
	RelatedLimit = 4
)

var _ ports.CatalogService = (*CatalogService)(nil)

type CatalogService struct {
	repo ports.ProductRepository
	log  ports.Logger
}

func NewCatalogService(repo ports.ProductRepository, log ports.Logger) *CatalogService {
	return &CatalogService{repo: repo, log: log}
}

// List — проксирование в репозиторий (пагинация уже провалидирована на верхнем уровне).
func (s *CatalogService) List(ctx context.Context, filter domain.CatalogFilter) ([]*domain.Product, error) {
	return s.repo.List(ctx, filter)
}

// Detail — карточка товара; каждый просмотр увеличивает счётчик views.
func (s *CatalogService) Detail(ctx context.Context, slug string) (*domain.Product, error) {
	product, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		s.log.Errorf(ctx, "repo.GetBySlug failed slug=%s err=%v", slug, err)
		return nil, fmt.Errorf("load product: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if err := s.repo.IncrementViews(ctx, product.ID); err != nil {
		s.log.Warnf(ctx, "repo.IncrementViews failed id=%s err=%v", product.ID, err)
	} else {
		product.Views++
	}
	return product, nil
}

// Search — выдача для поиска по мере ввода; короткий запрос даёт пустой список без обращения к БД.
func (s *CatalogService) Search(ctx context.Context, query string) ([]domain.SearchHit, error) {
	if utf8.RuneCountInString(query) < MinSearchLen {
		metrics.SearchRequests.WithLabelValues("short").Inc()
		return []domain.SearchHit{}, nil
	}

	hits, err := s.repo.Search(ctx, query, SearchLimit)
	if err != nil {
		metrics.SearchRequests.WithLabelValues("error").Inc()
		s.log.Errorf(ctx, "repo.Search failed q=%q err=%v", query, err)
		return nil, fmt.Errorf("search: %w", err)
	}
	if len(hits) == 0 {
		metrics.SearchRequests.WithLabelValues("empty").Inc()
		return []domain.SearchHit{}, nil
	}
	metrics.SearchRequests.WithLabelValues("hit").Inc()
	return hits, nil
}

// Featured — витрина главной страницы.
func (s *CatalogService) Featured(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.repo.Featured(ctx, FeaturedLimit)
	if err != nil {
		s.log.Errorf(ctx, "repo.Featured failed err=%v", err)
		return nil, fmt.Errorf("featured: %w", err)
	}
	if products == nil {
		products = []*domain.Product{}
	}
	return products, nil
}

// Related — похожие товары для карточки: та же категория, без самого товара.
func (s *CatalogService) Related(ctx context.Context, product *domain.Product) ([]*domain.Product, error) {
	if product == nil || product.CategorySlug == "" {
		return []*domain.Product{}, nil
	}
	products, err := s.repo.Related(ctx, product.CategorySlug, product.ID, RelatedLimit)
	if err != nil {
		return nil, fmt.Errorf("related: %w", err)
	}
	if products == nil {
		products = []*domain.Product{}
	}
	return products, nil
}

func (s *CatalogService) Categories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.repo.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("categories: %w", err)
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	return categories, nil
}
