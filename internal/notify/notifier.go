// Package notify — всплывающие уведомления с автоматическим скрытием.
package notify

import (
	"sort"
	"sync"
	"time"
)

// DefaultTTL — сколько уведомление висит на экране без действий пользователя.
const DefaultTTL = 4 * time.Second

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Notification — одно показанное уведомление.
type Notification struct {
	ID        uint64
	Message   string
	Severity  Severity
	CreatedAt time.Time
}

// Sink — слой отображения (терминал, тесты).
type Sink interface {
	Show(n Notification)
	Dismiss(id uint64)
}

type entry struct {
	n     Notification
	timer *time.Timer
}

// Notifier — показывает уведомление сразу и скрывает его через ttl; Show не ждёт скрытия.
type Notifier struct {
	mu     sync.Mutex
	sink   Sink
	ttl    time.Duration
	nextID uint64
	active map[uint64]*entry
	now    func() time.Time
}

// New — ttl <= 0 заменяется на DefaultTTL.
func New(sink Sink, ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Notifier{
		sink:   sink,
		ttl:    ttl,
		active: make(map[uint64]*entry),
		now:    time.Now,
	}
}

func (n *Notifier) Show(message string, severity Severity) Notification {
	n.mu.Lock()
	n.nextID++
	note := Notification{ID: n.nextID, Message: message, Severity: severity, CreatedAt: n.now()}
	id := note.ID
	n.active[id] = &entry{
		n:     note,
		timer: time.AfterFunc(n.ttl, func() { n.Dismiss(id) }),
	}
	n.mu.Unlock()

	n.sink.Show(note)
	return note
}

// Dismiss — скрывает уведомление досрочно; false, если оно уже скрыто.
func (n *Notifier) Dismiss(id uint64) bool {
	n.mu.Lock()
	e, ok := n.active[id]
	if ok {
		e.timer.Stop()
		delete(n.active, id)
	}
	n.mu.Unlock()

	if ok {
		n.sink.Dismiss(id)
	}
	return ok
}

// Active — видимые уведомления в порядке показа.
func (n *Notifier) Active() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]Notification, 0, len(n.active))
	for _, e := range n.active {
		out = append(out, e.n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Close — останавливает таймеры и скрывает всё, что осталось на экране.
func (n *Notifier) Close() {
	for _, note := range n.Active() {
		n.Dismiss(note.ID)
	}
}
