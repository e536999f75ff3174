package cartui

import "time"

// CartItem — позиция локальной (резервной) корзины.
type CartItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UnitPrice float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

// Source — откуда получено последнее значение счётчика.
type Source int

const (
	SourceNone Source = iota
	SourceRemote
	SourceLocal
)

func (s Source) String() string {
	switch s {
	case SourceRemote:
		return "remote"
	case SourceLocal:
		return "local"
	default:
		return "none"
	}
}

// upsert — повторный id увеличивает количество, новый добавляется в конец.
func upsert(items []CartItem, item CartItem) []CartItem {
	for i := range items {
		if items[i].ID == item.ID {
			items[i].Quantity += item.Quantity
			return items
		}
	}
	return append(items, item)
}

// without — список без позиции id; ok=false, если её не было.
func without(items []CartItem, id string) ([]CartItem, bool) {
	for i := range items {
		if items[i].ID == id {
			out := make([]CartItem, 0, len(items)-1)
			out = append(out, items[:i]...)
			return append(out, items[i+1:]...), true
		}
	}
	return items, false
}
