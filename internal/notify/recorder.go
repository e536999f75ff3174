package notify

import "sync"

// Recorder — Sink, который запоминает показанные и скрытые уведомления.
type Recorder struct {
	mu        sync.Mutex
	shown     []Notification
	dismissed []uint64
}

func (r *Recorder) Show(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shown = append(r.shown, n)
}

func (r *Recorder) Dismiss(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dismissed = append(r.dismissed, id)
}

// Shown — копия показанных уведомлений.
func (r *Recorder) Shown() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.shown...)
}

// Last — последнее показанное уведомление.
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.shown) == 0 {
		return Notification{}, false
	}
	return r.shown[len(r.shown)-1], true
}

func (r *Recorder) Dismissed() []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]uint64(nil), r.dismissed...)
}
