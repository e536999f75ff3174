package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Gunvolt24/pixelcraft/internal/domain"
	"github.com/Gunvolt24/pixelcraft/internal/ports"
	"github.com/Gunvolt24/pixelcraft/pkg/metrics"
)

var _ ports.CartService = (*CartService)(nil)

// CartService — корзина сессии: источник истины для клиентского счётчика.
type CartService struct {
	products ports.ProductRepository
	carts    ports.CartStore
	log      ports.Logger
}

func NewCartService(products ports.ProductRepository, carts ports.CartStore, log ports.Logger) *CartService {
	return &CartService{products: products, carts: carts, log: log}
}

// errNotInCart — Remove не нашёл позицию; корзина не перезаписывается.
var errNotInCart = errors.New("line not in cart")

// Add — повторное добавление увеличивает количество. Возвращает число позиций.
// Чтение и запись корзины идут через CartStore.Update, параллельные Add одной сессии не теряются.
func (s *CartService) Add(ctx context.Context, sessionID, productID string) (int, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		metrics.CartOps.WithLabelValues("add", "invalid").Inc()
		return 0, ErrEmptyProductID
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		metrics.CartOps.WithLabelValues("add", "error").Inc()
		s.log.Errorf(ctx, "products.GetByID failed product_id=%s err=%v", productID, err)
		return 0, fmt.Errorf("load product: %w", err)
	}
	if product == nil || !product.Active {
		metrics.CartOps.WithLabelValues("add", "not_found").Inc()
		return 0, ErrProductNotFound
	}

	cart, err := s.carts.Update(ctx, sessionID, func(cart *domain.SessionCart) error {
		cart.Add(product)
		return nil
	})
	if err != nil {
		metrics.CartOps.WithLabelValues("add", "error").Inc()
		s.log.Errorf(ctx, "carts.Update failed session=%s err=%v", sessionID, err)
		return 0, fmt.Errorf("save cart: %w", err)
	}

	metrics.CartOps.WithLabelValues("add", "ok").Inc()
	s.log.Infof(ctx, "cart add product_id=%s lines=%d", productID, cart.Count())
	return cart.Count(), nil
}

// Remove — удаляет позицию целиком; отсутствие позиции не ошибка.
func (s *CartService) Remove(ctx context.Context, sessionID, productID string) (int, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		metrics.CartOps.WithLabelValues("remove", "invalid").Inc()
		return 0, ErrEmptyProductID
	}

	var count int
	cart, err := s.carts.Update(ctx, sessionID, func(cart *domain.SessionCart) error {
		count = cart.Count()
		if !cart.Remove(productID) {
			return errNotInCart
		}
		return nil
	})
	if errors.Is(err, errNotInCart) {
		metrics.CartOps.WithLabelValues("remove", "not_found").Inc()
		return count, nil
	}
	if err != nil {
		metrics.CartOps.WithLabelValues("remove", "error").Inc()
		s.log.Errorf(ctx, "carts.Update failed session=%s err=%v", sessionID, err)
		return 0, fmt.Errorf("save cart: %w", err)
	}

	metrics.CartOps.WithLabelValues("remove", "ok").Inc()
	return cart.Count(), nil
}

func (s *CartService) View(ctx context.Context, sessionID string) (domain.CartView, error) {
	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return domain.CartView{}, err
	}
	return cart.View(), nil
}

func (s *CartService) Count(ctx context.Context, sessionID string) (int, error) {
	cart, err := s.load(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return cart.Count(), nil
}

// Checkout — содержимое корзины для оформления; пустая корзина — ErrEmptyCart.
func (s *CartService) Checkout(ctx context.Context, sessionID string) (domain.CartView, error) {
	view, err := s.View(ctx, sessionID)
	if err != nil {
		return domain.CartView{}, err
	}
	if view.Count == 0 {
		return domain.CartView{}, ErrEmptyCart
	}
	return view, nil
}

// load — корзина сессии; отсутствующая заменяется пустой.
func (s *CartService) load(ctx context.Context, sessionID string) (*domain.SessionCart, error) {
	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		s.log.Errorf(ctx, "carts.Get failed session=%s err=%v", sessionID, err)
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if cart == nil {
		cart = &domain.SessionCart{SessionID: sessionID}
	}
	return cart, nil
}
