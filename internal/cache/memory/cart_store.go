package memory

import (
	"container/list"
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Gunvolt24/pixelcraft/internal/domain"
	"github.com/Gunvolt24/pixelcraft/internal/ports"
	"github.com/Gunvolt24/pixelcraft/pkg/metrics"
)

var _ ports.CartStore = (*CartStore)(nil)

// ErrNoSession — Update без id сессии.
var ErrNoSession = errors.New("cart store: empty session id")

// entry — корзина сессии в списке LRU.
type entry struct {
	sessionID string
	cart      *domain.SessionCart
	expiresAt time.Time
}

// CartStore — in-memory хранилище корзин: LRU по числу сессий + скользящий TTL.
// Реализует ports.CartStore; наружу отдаются только копии.
// Это единственная копия корзины: вытеснение по capacity теряет корзину живой сессии,
// поэтому каждое вытеснение пишется в лог на уровне warn.
type CartStore struct {
	capacity int
	ttl      time.Duration
	log      ports.Logger

	ll    *list.List
	index map[string]*list.Element
	now   func() time.Time

	mu sync.Mutex
}

// Option — необязательная настройка CartStore.
type Option func(*CartStore)

// WithLogger — логгер для предупреждений о вытеснении.
func WithLogger(l ports.Logger) Option {
	return func(s *CartStore) { s.log = l }
}

// NewCartStore — capacity <= 0 трактуется как 1, ttl <= 0 отключает истечение.
func NewCartStore(capacity int, ttl time.Duration, opts ...Option) *CartStore {
	if capacity <= 0 {
		capacity = 1
	}
	s := &CartStore{
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get — копия корзины или (nil, nil). Обращение продлевает TTL.
func (s *CartStore) Get(_ context.Context, sessionID string) (*domain.SessionCart, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	elem, ok := s.index[sessionID]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, nil
	}
	ent := elem.Value.(*entry)
	if s.isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		s.removeElement(elem)
		return nil, nil
	}
	s.ll.MoveToFront(elem)
	ent.expiresAt = s.expiryFrom(now)

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return ent.cart.Clone(), nil
}

// Save — сохраняет копию корзины. Корзина без SessionID игнорируется.
func (s *CartStore) Save(_ context.Context, cart *domain.SessionCart) error {
	if cart == nil || cart.SessionID == "" {
		return nil
	}
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.put(cart.Clone(), now)
	return nil
}

// Update — чтение, fn и запись под одной блокировкой.
func (s *CartStore) Update(_ context.Context, sessionID string, fn func(*domain.SessionCart) error) (*domain.SessionCart, error) {
	if sessionID == "" {
		return nil, ErrNoSession
	}
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	cart := &domain.SessionCart{SessionID: sessionID}
	if elem, ok := s.index[sessionID]; ok {
		ent := elem.Value.(*entry)
		if s.isExpired(ent, now) {
			metrics.CacheOps.WithLabelValues("expired").Inc()
			s.removeElement(elem)
		} else {
			cart = ent.cart.Clone()
		}
	}

	if err := fn(cart); err != nil {
		return nil, err
	}
	cart.SessionID = sessionID
	s.put(cart.Clone(), now)
	return cart, nil
}

// put — вставка или замена под s.mu; cart уже скопирована.
func (s *CartStore) put(cart *domain.SessionCart, now time.Time) {
	if elem, ok := s.index[cart.SessionID]; ok {
		ent := elem.Value.(*entry)
		ent.cart = cart
		ent.expiresAt = s.expiryFrom(now)
		s.ll.MoveToFront(elem)
		return
	}

	s.pruneExpiredFromBack(now)

	elem := s.ll.PushFront(&entry{
		sessionID: cart.SessionID,
		cart:      cart,
		expiresAt: s.expiryFrom(now),
	})
	s.index[cart.SessionID] = elem
	metrics.CacheSize.Set(float64(len(s.index)))

	if s.ll.Len() > s.capacity {
		s.evictLRU()
	}
}

// Delete — удаляет корзину; отсутствие не ошибка.
func (s *CartStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if elem, ok := s.index[sessionID]; ok {
		s.removeElement(elem)
	}
	return nil
}

// Len — число корзин в памяти (включая ещё не вычищенные просроченные).
func (s *CartStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ll.Len()
}

func (s *CartStore) evictLRU() {
	back := s.ll.Back()
	if back == nil {
		return
	}
	ent := back.Value.(*entry)
	s.removeElement(back)
	metrics.CacheOps.WithLabelValues("evicted").Inc()
	if s.log != nil {
		s.log.Warnf(context.Background(), "cart store full (capacity=%d): evicted cart session=%s lines=%d",
			s.capacity, ent.sessionID, ent.cart.Count())
	}
}

// removeElement — удаляет из списка и индекса, обновляет gauge.
func (s *CartStore) removeElement(elem *list.Element) {
	ent := elem.Value.(*entry)
	delete(s.index, ent.sessionID)
	s.ll.Remove(elem)
	metrics.CacheSize.Set(float64(len(s.index)))
}

func (s *CartStore) isExpired(ent *entry, now time.Time) bool {
	if s.ttl <= 0 {
		return false
	}
	return now.After(ent.expiresAt)
}

func (s *CartStore) expiryFrom(now time.Time) time.Time {
	if s.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(s.ttl)
}

// pruneExpiredFromBack — чистит хвост до первой живой корзины.
func (s *CartStore) pruneExpiredFromBack(now time.Time) {
	if s.ttl <= 0 {
		return
	}
	for back := s.ll.Back(); back != nil; back = s.ll.Back() {
		if !now.After(back.Value.(*entry).expiresAt) {
			return
		}
		s.removeElement(back)
		metrics.CacheOps.WithLabelValues("expired").Inc()
	}
}
