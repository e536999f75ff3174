package ports

import "context"

type NewsletterRepository interface {
	// Subscribe — true, если адрес добавлен впервые.
	Subscribe(ctx context.Context, email string) (bool, error)
}
