package terminal

import (
	"context"

	"github.com/Gunvolt24/pixelcraft/internal/domain"
	"github.com/Gunvolt24/pixelcraft/internal/ports"
)

// CartSource — откуда перечитывается корзина.
type CartSource interface {
	Cart(ctx context.Context) (domain.CartView, error)
}

// CartReloader — перечитывает корзину с сервера и печатает её.
type CartReloader struct {
	src CartSource
	out *Renderer
	log ports.Logger
}

func NewCartReloader(src CartSource, out *Renderer, log ports.Logger) *CartReloader {
	return &CartReloader{src: src, out: out, log: log}
}

// Reload — при ошибке сервера пишет в лог; вывод не меняется.
func (r *CartReloader) Reload(ctx context.Context) {
	view, err := r.src.Cart(ctx)
	if err != nil {
		r.log.Warnf(ctx, "cart reload failed: %v", err)
		return
	}
	r.out.CartView(view)
}
