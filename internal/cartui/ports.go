package cartui

import (
	"context"

	"github.com/Gunvolt24/pixelcraft/internal/domain"
	"github.com/Gunvolt24/pixelcraft/internal/notify"
	"github.com/Gunvolt24/pixelcraft/internal/storefront"
)

// RemoteCart — серверная корзина (источник истины, пока доступна).
type RemoteCart interface {
	AddToCart(ctx context.Context, itemID string) (int, error)
	RemoveFromCart(ctx context.Context, itemID string) (int, error)
	CartCount(ctx context.Context) (int, error)
	Cart(ctx context.Context) (domain.CartView, error)
}

// Searcher — поиск по каталогу.
type Searcher interface {
	Search(ctx context.Context, query string) ([]domain.SearchHit, error)
}

// Subscriber — подписка на рассылку.
type Subscriber interface {
	Subscribe(ctx context.Context, email string) (domain.NewsletterResult, error)
}

// AddressLookup — поиск адреса по CEP.
type AddressLookup interface {
	Lookup(ctx context.Context, raw string) (storefront.Address, error)
}

// Notifier — всплывающие уведомления.
type Notifier interface {
	Show(message string, severity notify.Severity) notify.Notification
}

// Badge — счётчик корзины в шапке.
type Badge interface {
	SetCount(n int)
}

// Confirmer — интерактивный вопрос да/нет.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// Reloader — полная перерисовка страницы корзины с данными сервера.
type Reloader interface {
	Reload(ctx context.Context)
}

// ResultsView — выпадающий список результатов поиска.
type ResultsView interface {
	Render(rows []ResultRow)
	RenderEmpty(message string)
	Clear()
}

// AddressForm — поля адреса в форме оформления заказа.
type AddressForm interface {
	FillAddress(addr storefront.Address)
}
