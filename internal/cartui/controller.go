// Package cartui — клиентская логика корзины витрины: счётчик, резервная локальная корзина,
// поиск по мере ввода, уведомления, автозаполнение адреса и подписка на рассылку.
package cartui

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Gunvolt24/pixelcraft/internal/notify"
	"github.com/Gunvolt24/pixelcraft/internal/ports"
)

const (
	DefaultFallbackName  = "PC PixelCraft"
	DefaultFallbackPrice = 2999.90
)

// Deps — внешние зависимости контроллера.
type Deps struct {
	Remote    RemoteCart
	Fallback  *FallbackStore
	Notifier  Notifier
	Badge     Badge
	Confirmer Confirmer
	Reloader  Reloader
	Logger    ports.Logger
}

// Options — параметры позиции, синтезируемой при недоступном сервере.
type Options struct {
	FallbackName  string
	FallbackPrice float64
	Now           func() time.Time
}

// Controller — состояние корзины на клиенте. Сервер — источник истины; локальный список
// используется, только когда сервер не принял добавление.
type Controller struct {
	remote   RemoteCart
	fallback *FallbackStore
	notifier Notifier
	badge    Badge
	confirm  Confirmer
	reloader Reloader
	log      ports.Logger
	opts     Options

	mu     sync.Mutex
	items  []CartItem
	count  int
	source Source
}

// NewController — локальный список читается из хранилища сразу (как при загрузке страницы).
func NewController(ctx context.Context, deps Deps, opts Options) *Controller {
	if opts.FallbackName == "" {
		opts.FallbackName = DefaultFallbackName
	}
	if opts.FallbackPrice <= 0 {
		opts.FallbackPrice = DefaultFallbackPrice
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Controller{
		remote:   deps.Remote,
		fallback: deps.Fallback,
		notifier: deps.Notifier,
		badge:    deps.Badge,
		confirm:  deps.Confirmer,
		reloader: deps.Reloader,
		log:      deps.Logger,
		opts:     opts,
		items:    deps.Fallback.Load(ctx),
	}
}

// Count — значение на бейдже.
func (c *Controller) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// Source — источник последнего значения счётчика.
func (c *Controller) Source() Source {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.source
}

// Items — копия локального списка.
func (c *Controller) Items() []CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]CartItem(nil), c.items...)
}

// AddItem — добавление на сервер; при любом отказе товар уходит в локальный список.
// Ошибки не возвращаются: каждый исход заканчивается уведомлением.
func (c *Controller) AddItem(ctx context.Context, itemID string) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		c.notifier.Show(MsgInvalidItem, notify.SeverityError)
		return
	}

	_, err := c.remote.AddToCart(ctx, itemID)
	if err == nil {
		c.RefreshCount(ctx)
		c.notifier.Show(MsgAdded, notify.SeveritySuccess)
		return
	}
	c.log.Warnf(ctx, "cart: remote add failed item=%s, using local cart: %v", itemID, err)

	c.mu.Lock()
	c.items = upsert(c.items, CartItem{
		ID:        itemID,
		Name:      c.opts.FallbackName,
		UnitPrice: c.opts.FallbackPrice,
		Quantity:  1,
		AddedAt:   c.opts.Now(),
	})
	items := append([]CartItem(nil), c.items...)
	c.count = len(c.items)
	c.source = SourceLocal
	count := c.count
	c.mu.Unlock()

	if err := c.fallback.Save(items); err != nil {
		c.log.Errorf(ctx, "cart: %v", err)
	}
	c.badge.SetCount(count)
	c.notifier.Show(MsgAddedOffline, notify.SeveritySuccess)
}

// RefreshCount — счётчик с сервера (/api/cart-count, затем /cart). Если оба запроса
// не удались, бейдж не меняется.
func (c *Controller) RefreshCount(ctx context.Context) {
	n, err := c.remote.CartCount(ctx)
	if err != nil {
		c.log.Warnf(ctx, "cart: count endpoint failed, deriving from cart view: %v", err)
		view, vErr := c.remote.Cart(ctx)
		if vErr != nil {
			c.log.Warnf(ctx, "cart: count refresh failed, display stays stale: %v", vErr)
			return
		}
		n = len(view.Items)
	}

	c.mu.Lock()
	c.count = n
	c.source = SourceRemote
	c.mu.Unlock()

	c.badge.SetCount(n)
}

// RemoveItem — только после подтверждения; false, если покупатель отказался.
func (c *Controller) RemoveItem(ctx context.Context, itemID string) bool {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		c.notifier.Show(MsgInvalidItem, notify.SeverityError)
		return false
	}
	if !c.confirm.Confirm(ctx, PromptRemove) {
		return false
	}

	c.mu.Lock()
	items, removed := without(c.items, itemID)
	c.items = items
	snapshot := append([]CartItem(nil), c.items...)
	local := c.source == SourceLocal
	c.mu.Unlock()

	if removed {
		if err := c.fallback.Save(snapshot); err != nil {
			c.log.Errorf(ctx, "cart: %v", err)
		}
	}

	if _, err := c.remote.RemoveFromCart(ctx, itemID); err != nil {
		c.log.Warnf(ctx, "cart: remote remove failed item=%s: %v", itemID, err)
	}

	if local {
		c.mu.Lock()
		c.count = len(c.items)
		count := c.count
		c.mu.Unlock()
		c.badge.SetCount(count)
	} else {
		c.RefreshCount(ctx)
	}

	c.notifier.Show(MsgRemoved, notify.SeverityInfo)
	c.reloader.Reload(ctx)
	return true
}

// Clear — очищает локальный список (явная очистка или конец сессии).
func (c *Controller) Clear(ctx context.Context) {
	c.mu.Lock()
	c.items = []CartItem{}
	local := c.source == SourceLocal
	if local {
		c.count = 0
	}
	c.mu.Unlock()

	if err := c.fallback.Clear(); err != nil {
		c.log.Errorf(ctx, "cart: %v", err)
	}
	if local {
		c.badge.SetCount(0)
	}
}
