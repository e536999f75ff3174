// Package terminal — вывод клиентской корзины в терминал: бейдж, уведомления,
// результаты поиска, адрес и содержимое корзины.
package terminal

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/Gunvolt24/pixelcraft/internal/cartui"
	"github.com/Gunvolt24/pixelcraft/internal/domain"
	"github.com/Gunvolt24/pixelcraft/internal/notify"
	"github.com/Gunvolt24/pixelcraft/internal/storefront"
)

var (
	colorSuccess = lipgloss.Color("#8BC34A")
	colorError   = lipgloss.Color("#E53935")
	colorInfo    = lipgloss.Color("#2196F3")
	colorMuted   = lipgloss.Color("#9E9E9E")
	colorAccent  = lipgloss.Color("#FFC107")
)

// Renderer — пишет в out; цветовой профиль определяется по out (в файл и в тестах без цвета).
type Renderer struct {
	mu  sync.Mutex
	out io.Writer

	badge  lipgloss.Style
	toast  map[notify.Severity]lipgloss.Style
	muted  lipgloss.Style
	name   lipgloss.Style
	price  lipgloss.Style
	header lipgloss.Style
}

func NewRenderer(out io.Writer) *Renderer {
	lg := lipgloss.NewRenderer(out)
	base := lg.NewStyle()
	return &Renderer{
		out:   out,
		badge: base.Bold(true).Foreground(colorAccent),
		toast: map[notify.Severity]lipgloss.Style{
			notify.SeveritySuccess: base.Foreground(colorSuccess),
			notify.SeverityError:   base.Bold(true).Foreground(colorError),
			notify.SeverityInfo:    base.Foreground(colorInfo),
		},
		muted:  base.Foreground(colorMuted),
		name:   base.Bold(true),
		price:  base.Foreground(colorSuccess),
		header: base.Bold(true).Underline(true),
	}
}

func (r *Renderer) println(s string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.out, s)
}

// SetCount — бейдж корзины.
func (r *Renderer) SetCount(n int) {
	r.println(r.badge.Render(fmt.Sprintf("🛒 %d", n)))
}

// Show — notify.Sink.
func (r *Renderer) Show(n notify.Notification) {
	style, ok := r.toast[n.Severity]
	if !ok {
		style = r.toast[notify.SeverityInfo]
	}
	r.println(style.Render(fmt.Sprintf("[%s] %s", n.Severity, n.Message)))
}

// Dismiss — выведенную строку не стереть, скрытие в терминале ничего не делает.
func (r *Renderer) Dismiss(uint64) {}

// Render — cartui.ResultsView.
func (r *Renderer) Render(rows []cartui.ResultRow) {
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s  %s  %s  %s",
			r.name.Render(row.Name),
			r.price.Render(row.Price),
			row.Link,
			r.muted.Render(row.Thumbnail),
		)
	}
	r.println(b.String())
}

func (r *Renderer) RenderEmpty(message string) {
	r.println(r.muted.Render(message))
}

// Clear — очистка выдачи при слишком коротком запросе.
func (r *Renderer) Clear() {
	r.println(r.muted.Render("(busca limpa)"))
}

// FillAddress — cartui.AddressForm.
func (r *Renderer) FillAddress(addr storefront.Address) {
	r.println(strings.Join([]string{
		r.header.Render("CEP " + addr.PostalCode),
		"Rua:    " + addr.Street,
		"Bairro: " + addr.Neighborhood,
		"Cidade: " + addr.City,
		"Estado: " + addr.State,
	}, "\n"))
}

// CartView — содержимое корзины с сервера.
func (r *Renderer) CartView(view domain.CartView) {
	if len(view.Items) == 0 {
		r.println(r.muted.Render(cartui.MsgEmptyCart))
		return
	}
	var b strings.Builder
	b.WriteString(r.header.Render("Carrinho"))
	for _, it := range view.Items {
		fmt.Fprintf(&b, "\n%s  %s × %d  %s",
			it.ID,
			r.name.Render(it.Name),
			it.Quantity,
			r.price.Render(cartui.FormatPrice(it.Price*float64(it.Quantity))),
		)
	}
	fmt.Fprintf(&b, "\nTotal: %s", r.price.Render(cartui.FormatPrice(view.Total)))
	r.println(b.String())
}

// LocalItems — локальная (офлайн) корзина.
func (r *Renderer) LocalItems(items []cartui.CartItem) {
	if len(items) == 0 {
		r.println(r.muted.Render(cartui.MsgEmptyCart))
		return
	}
	var b strings.Builder
	b.WriteString(r.header.Render("Carrinho (offline)"))
	for _, it := range items {
		fmt.Fprintf(&b, "\n%s  %s × %d  %s",
			it.ID,
			r.name.Render(it.Name),
			it.Quantity,
			r.price.Render(cartui.FormatPrice(it.UnitPrice*float64(it.Quantity))),
		)
	}
	r.println(b.String())
}
