package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gunvolt24/pixelcraft/internal/domain"
	"github.com/Gunvolt24/pixelcraft/internal/ports"
)

// Проверка, что ProductRepository удовлетворяет интерфейсу.
var _ ports.ProductRepository = (*ProductRepository)(nil)

// ProductRepository — каталог ПК на Postgres (pgxpool).
type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

const productColumns = `
	p.id, p.slug, p.name, p.subtitle, p.description, COALESCE(c.slug, ''),
	p.price::float8, p.price_old::float8, p.processor, p.gpu, p.ram, p.storage, p.main_image,
	p.featured, p.bestseller, p.in_stock, p.active, p.views, p.created_at, p.updated_at`

const productFrom = `FROM products p LEFT JOIN categories c ON c.id = p.category_id`

// Upsert — идемпотентная запись товара из фида. Неизвестная категория даёт category_id = NULL.
func (r *ProductRepository) Upsert(ctx context.Context, product *domain.Product) error {
	if product == nil || product.ID == "" {
		return errors.New("product is empty or id is required")
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO products (
			id, slug, name, subtitle, description, category_id, price, price_old,
			processor, gpu, ram, storage, main_image, featured, bestseller, in_stock, active
		) VALUES (
			$1, $2, $3, $4, $5, (SELECT id FROM categories WHERE slug = $6), $7, $8,
			$9, $10, $11, $12, $13, $14, $15, $16, $17
		)
		ON CONFLICT (id) DO UPDATE SET
			slug = EXCLUDED.slug,
			name = EXCLUDED.name,
			subtitle = EXCLUDED.subtitle,
			description = EXCLUDED.description,
			category_id = EXCLUDED.category_id,
			price = EXCLUDED.price,
			price_old = EXCLUDED.price_old,
			processor = EXCLUDED.processor,
			gpu = EXCLUDED.gpu,
			ram = EXCLUDED.ram,
			storage = EXCLUDED.storage,
			main_image = EXCLUDED.main_image,
			featured = EXCLUDED.featured,
			bestseller = EXCLUDED.bestseller,
			in_stock = EXCLUDED.in_stock,
			active = EXCLUDED.active,
			updated_at = now()
	`,
		product.ID, product.Slug, product.Name, product.Subtitle, product.Description, product.CategorySlug,
		product.Price, product.PriceOld, product.Processor, product.GPU, product.RAM, product.Storage,
		product.MainImage, product.Featured, product.Bestseller, product.InStock, product.Active,
	)
	if err != nil {
		return fmt.Errorf("upsert product: %w", err)
	}
	return nil
}

// GetByID — товар по id (включая неактивные). Не нашли — (nil, nil).
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+productColumns+` `+productFrom+` WHERE p.id = $1`, id)
	return scanOne(row, "select product by id")
}

// GetBySlug — только активные товары. Не нашли — (nil, nil).
func (r *ProductRepository) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+productColumns+` `+productFrom+` WHERE p.slug = $1 AND p.active`, slug)
	return scanOne(row, "select product by slug")
}

// List — страница каталога по фильтру. Нулевые PriceMin/PriceMax не ограничивают выборку.
func (r *ProductRepository) List(ctx context.Context, filter domain.CatalogFilter) ([]*domain.Product, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	var (
		where = []string{"p.active"}
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.CategorySlug != "" {
		where = append(where, "c.slug = "+arg(filter.CategorySlug))
	}
	if filter.PriceMin > 0 {
		where = append(where, "p.price >= "+arg(filter.PriceMin))
	}
	if filter.PriceMax > 0 {
		where = append(where, "p.price <= "+arg(filter.PriceMax))
	}

	query := `SELECT ` + productColumns + ` ` + productFrom +
		` WHERE ` + strings.Join(where, " AND ") +
		` ORDER BY ` + orderBy(filter.Sort) +
		` LIMIT ` + arg(filter.Limit) + ` OFFSET ` + arg(filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows, filter.Limit)
}

// Featured — витрина главной страницы.
func (r *ProductRepository) Featured(ctx context.Context, limit int) ([]*domain.Product, error) {
	if limit <= 0 {
		limit = 8
	}
	rows, err := r.pool.Query(ctx, `SELECT `+productColumns+` `+productFrom+`
		WHERE p.active AND p.featured
		ORDER BY p.created_at DESC, p.id
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("select featured: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows, limit)
}

// Related — товары без категории похожих не имеют.
func (r *ProductRepository) Related(ctx context.Context, categorySlug, excludeID string, limit int) ([]*domain.Product, error) {
	if categorySlug == "" {
		return []*domain.Product{}, nil
	}
	if limit <= 0 {
		limit = 4
	}
	rows, err := r.pool.Query(ctx, `SELECT `+productColumns+` `+productFrom+`
		WHERE p.active AND c.slug = $1 AND p.id <> $2
		ORDER BY random()
		LIMIT $3`, categorySlug, excludeID, limit)
	if err != nil {
		return nil, fmt.Errorf("select related: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows, limit)
}

// Search — подстрока без учёта регистра по названию, подзаголовку, процессору и видеокарте.
func (r *ProductRepository) Search(ctx context.Context, query string, limit int) ([]domain.SearchHit, error) {
	if limit <= 0 {
		limit = 10
	}
	pattern := "%" + escapeLike(query) + "%"

	rows, err := r.pool.Query(ctx, `
		SELECT slug, name, price::float8, main_image
		FROM products
		WHERE active AND (
			name ILIKE $1 OR subtitle ILIKE $1 OR processor ILIKE $1 OR gpu ILIKE $1
		)
		ORDER BY name
		LIMIT $2
	`, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()

	hits := make([]domain.SearchHit, 0, limit)
	for rows.Next() {
		var h domain.SearchHit
		if err := rows.Scan(&h.Slug, &h.Name, &h.Price, &h.Image); err != nil {
			return nil, fmt.Errorf("scan hit: %w", err)
		}
		hits = append(hits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search rows: %w", err)
	}
	return hits, nil
}

func (r *ProductRepository) IncrementViews(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `UPDATE products SET views = views + 1 WHERE id = $1`, id); err != nil {
		return fmt.Errorf("increment views: %w", err)
	}
	return nil
}

// Categories — активные категории в порядке ordem.
func (r *ProductRepository) Categories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, slug, color, ordem, active
		FROM categories
		WHERE active
		ORDER BY ordem, id
	`)
	if err != nil {
		return nil, fmt.Errorf("select categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Color, &c.Ordem, &c.Active); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("categories rows: %w", err)
	}
	return categories, nil
}

// ------вспомогательные функции------

func scanOne(row pgx.Row, op string) (*domain.Product, error) {
	p, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func collectProducts(rows pgx.Rows, capHint int) ([]*domain.Product, error) {
	products := make([]*domain.Product, 0, capHint)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("products rows: %w", err)
	}
	return products, nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	if err := row.Scan(
		&p.ID, &p.Slug, &p.Name, &p.Subtitle, &p.Description, &p.CategorySlug,
		&p.Price, &p.PriceOld, &p.Processor, &p.GPU, &p.RAM, &p.Storage, &p.MainImage,
		&p.Featured, &p.Bestseller, &p.InStock, &p.Active, &p.Views, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

// orderBy — неизвестная сортировка трактуется как newest.
func orderBy(sort string) string {
	switch sort {
	case domain.SortPriceLow:
		return "p.price ASC, p.id"
	case domain.SortPriceHigh:
		return "p.price DESC, p.id"
	case domain.SortPopular:
		return "p.views DESC, p.id"
	default:
		return "p.created_at DESC, p.id"
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }
