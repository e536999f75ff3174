package cartui

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Gunvolt24/pixelcraft/internal/ports"
	"github.com/Gunvolt24/pixelcraft/pkg/kv"
)

// FallbackKey — ключ, под которым хранится локальная корзина.
const FallbackKey = "cart"

// FallbackStore — локальная корзина как JSON-текст в kv.Store сессии.
type FallbackStore struct {
	store kv.Store
	log   ports.Logger
}

func NewFallbackStore(store kv.Store, log ports.Logger) *FallbackStore {
	return &FallbackStore{store: store, log: log}
}

// Load — отсутствующее или испорченное значение читается как пустая корзина.
func (f *FallbackStore) Load(ctx context.Context) []CartItem {
	raw, ok, err := f.store.Get(FallbackKey)
	if err != nil {
		f.log.Warnf(ctx, "fallback cart: read failed: %v", err)
		return []CartItem{}
	}
	if !ok || raw == "" {
		return []CartItem{}
	}

	var items []CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		f.log.Warnf(ctx, "fallback cart: corrupt value ignored: %v", err)
		return []CartItem{}
	}
	if items == nil {
		items = []CartItem{}
	}
	return items
}

func (f *FallbackStore) Save(items []CartItem) error {
	if items == nil {
		items = []CartItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode fallback cart: %w", err)
	}
	if err := f.store.Set(FallbackKey, string(raw)); err != nil {
		return fmt.Errorf("save fallback cart: %w", err)
	}
	return nil
}

func (f *FallbackStore) Clear() error {
	if err := f.store.Delete(FallbackKey); err != nil {
		return fmt.Errorf("clear fallback cart: %w", err)
	}
	return nil
}
