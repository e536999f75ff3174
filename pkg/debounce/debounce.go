// Package debounce — отложенный вызов функции после паузы во входящих событиях.
package debounce

import (
	"sync"
	"time"
)

// Debouncer — каждый новый вызов Debounce сбрасывает таймер; срабатывает только последний.
type Debouncer struct {
	mu       sync.Mutex
	timer    *time.Timer
	duration time.Duration
	// gen — поколение отложенного вызова; таймер, успевший сработать после Cancel, ничего не делает.
	gen uint64
}

func New(duration time.Duration) *Debouncer {
	return &Debouncer{duration: duration}
}

// Debounce — выполнит fn через duration, если за это время не было нового вызова.
func (d *Debouncer) Debounce(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.duration, func() {
		d.mu.Lock()
		if gen != d.gen {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()
		fn()
	})
}

// Cancel — отменяет отложенный вызов, если он есть.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked()
}

// Immediate — отменяет отложенный вызов и выполняет fn сразу.
func (d *Debouncer) Immediate(fn func()) {
	d.Cancel()
	fn()
}

// Pending — есть ли запланированный вызов.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

func (d *Debouncer) cancelLocked() {
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
