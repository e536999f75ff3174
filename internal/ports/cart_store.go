package ports

import (
	"context"

	"github.com/Gunvolt24/pixelcraft/internal/domain"
)

// CartStore — хранилище корзин сессий.
// Требования к реализации: потокобезопасность; возврат копий; отсутствующая корзина — (nil, nil).
type CartStore interface {
	// Get — корзина сессии или (nil, nil), если её нет/истекла.
	Get(ctx context.Context, sessionID string) (*domain.SessionCart, error)

	// Save — сохранить/заменить корзину (продлевает TTL).
	Save(ctx context.Context, cart *domain.SessionCart) error

	// Update — атомарное изменение корзины сессии: fn получает копию (пустую, если корзины нет)
	// и меняет её; параллельные Update одной сессии не теряют изменений друг друга.
	// Ошибка fn возвращается как есть, корзина при этом не сохраняется.
	Update(ctx context.Context, sessionID string, fn func(cart *domain.SessionCart) error) (*domain.SessionCart, error)

	// Delete — явная очистка корзины.
	Delete(ctx context.Context, sessionID string) error
}
