package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gunvolt24/pixelcraft/internal/ports"
)

var _ ports.NewsletterRepository = (*NewsletterRepository)(nil)

type NewsletterRepository struct {
	pool *pgxpool.Pool
}

func NewNewsletterRepository(pool *pgxpool.Pool) *NewsletterRepository {
	return &NewsletterRepository{pool: pool}
}

// Subscribe — вставка без ошибки на дубликат; true только для нового адреса.
func (r *NewsletterRepository) Subscribe(ctx context.Context, email string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		INSERT INTO newsletter_subscribers (email) VALUES ($1)
		ON CONFLICT (email) DO NOTHING
	`, email)
	if err != nil {
		return false, fmt.Errorf("insert subscriber: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
