// Package redis — корзины сессий в Redis: один ключ на сессию, JSON, TTL продлевается на каждом чтении/записи.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/Gunvolt24/pixelcraft/internal/domain"
	"github.com/Gunvolt24/pixelcraft/internal/ports"
	"github.com/Gunvolt24/pixelcraft/pkg/metrics"
)

const keyPrefix = "pixelcraft:cart:"

// maxUpdateAttempts — повторы оптимистичной транзакции, пока WATCH-ключ меняют другие запросы.
const maxUpdateAttempts = 64

// ErrUpdateConflict — Update не смог применить изменение за maxUpdateAttempts попыток.
var ErrUpdateConflict = errors.New("redis cart update: too many concurrent writers")

var _ ports.CartStore = (*CartStore)(nil)

// CartStore — реализация ports.CartStore поверх go-redis.
type CartStore struct {
	rdb goredis.UniversalClient
	ttl time.Duration
}

// Options — параметры подключения.
type Options struct {
	Addr        string
	DB          int
	DialTimeout time.Duration
}

// Connect — создаёт клиента и проверяет соединение PING-ом.
func Connect(ctx context.Context, opts Options) (*goredis.Client, error) {
	if opts.DialTimeout <= 0 {
		opts.DialTimeout = 5 * time.Second
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        opts.Addr,
		DB:          opts.DB,
		DialTimeout: opts.DialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, opts.DialTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// NewCartStore — ttl <= 0 хранит корзины без истечения.
func NewCartStore(rdb goredis.UniversalClient, ttl time.Duration) *CartStore {
	return &CartStore{rdb: rdb, ttl: ttl}
}

func (s *CartStore) Get(ctx context.Context, sessionID string) (*domain.SessionCart, error) {
	var (
		raw string
		err error
	)
	if s.ttl > 0 {
		raw, err = s.rdb.GetEx(ctx, key(sessionID), s.ttl).Result()
	} else {
		raw, err = s.rdb.Get(ctx, key(sessionID)).Result()
	}
	if errors.Is(err, goredis.Nil) {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get cart: %w", err)
	}

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return decode(sessionID, raw)
}

func (s *CartStore) Save(ctx context.Context, cart *domain.SessionCart) error {
	if cart == nil || cart.SessionID == "" {
		return nil
	}
	b, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	// 0 у go-redis = без истечения
	if err := s.rdb.Set(ctx, key(cart.SessionID), b, max(s.ttl, 0)).Err(); err != nil {
		return fmt.Errorf("redis set cart: %w", err)
	}
	return nil
}

// Update — WATCH ключа сессии, fn, запись в MULTI/EXEC; при гонке транзакция повторяется.
func (s *CartStore) Update(ctx context.Context, sessionID string, fn func(*domain.SessionCart) error) (*domain.SessionCart, error) {
	k := key(sessionID)
	var updated *domain.SessionCart

	txf := func(tx *goredis.Tx) error {
		cart := &domain.SessionCart{SessionID: sessionID}
		raw, err := tx.Get(ctx, k).Result()
		switch {
		case errors.Is(err, goredis.Nil):
		case err != nil:
			return fmt.Errorf("redis get cart: %w", err)
		default:
			if cart, err = decode(sessionID, raw); err != nil {
				return err
			}
		}

		if err := fn(cart); err != nil {
			return err
		}
		cart.SessionID = sessionID
		b, err := json.Marshal(cart)
		if err != nil {
			return fmt.Errorf("encode cart: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, k, b, max(s.ttl, 0))
			return nil
		})
		if err == nil {
			updated = cart
		}
		return err
	}

	for range maxUpdateAttempts {
		err := s.rdb.Watch(ctx, txf, k)
		if errors.Is(err, goredis.TxFailedErr) {
			metrics.CacheOps.WithLabelValues("conflict").Inc()
			continue
		}
		if err != nil {
			return nil, err
		}
		return updated, nil
	}
	return nil, ErrUpdateConflict
}

func (s *CartStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.rdb.Del(ctx, key(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis del cart: %w", err)
	}
	return nil
}

func key(sessionID string) string { return keyPrefix + sessionID }

func decode(sessionID, raw string) (*domain.SessionCart, error) {
	var cart domain.SessionCart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	cart.SessionID = sessionID
	return &cart, nil
}
