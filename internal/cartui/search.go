package cartui

import (
	"context"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/Gunvolt24/pixelcraft/internal/domain"
	"github.com/Gunvolt24/pixelcraft/internal/ports"
	"github.com/Gunvolt24/pixelcraft/pkg/debounce"
)

const (
	// MinQueryLen — более короткий запрос очищает результаты и не уходит на сервер.
	MinQueryLen = 2
	// DefaultQuietPeriod — пауза ввода перед поиском.
	DefaultQuietPeriod = 300 * time.Millisecond
	// PlaceholderImage — картинка для товара без фото.
	PlaceholderImage = "/static/img/placeholder.svg"
)

// ResultRow — строка выдачи поиска.
type ResultRow struct {
	Thumbnail string
	Name      string
	Price     string
	Link      string
}

// Search — поиск по мере ввода. Токен выдаётся в момент планирования поиска;
// выполняется и рисуется только поиск с последним токеном, остальные отбрасываются.
// Запросы идут в фоне: OnInput и OnSubmit не ждут сервер.
type Search struct {
	ctx      context.Context
	searcher Searcher
	view     ResultsView
	log      ports.Logger
	deb      *debounce.Debouncer

	mu       sync.Mutex
	idle     *sync.Cond
	latest   uint64
	inflight int
}

// NewSearch — ctx ограничивает все запросы поиска; quiet <= 0 — DefaultQuietPeriod.
func NewSearch(ctx context.Context, searcher Searcher, view ResultsView, log ports.Logger, quiet time.Duration) *Search {
	if quiet <= 0 {
		quiet = DefaultQuietPeriod
	}
	s := &Search{
		ctx:      ctx,
		searcher: searcher,
		view:     view,
		log:      log,
		deb:      debounce.New(quiet),
	}
	s.idle = sync.NewCond(&s.mu)
	return s
}

// OnInput — каждое изменение поля переносит поиск на quiet после последнего нажатия.
func (s *Search) OnInput(text string) {
	if utf8.RuneCountInString(text) < MinQueryLen {
		s.deb.Cancel()
		s.mu.Lock()
		s.latest++
		s.view.Clear()
		s.mu.Unlock()
		return
	}
	token := s.issue()
	s.deb.Debounce(func() {
		if s.acquire(token) {
			s.run(token, text)
		}
	})
}

// OnSubmit — Enter: поиск сразу, без ожидания паузы.
func (s *Search) OnSubmit(text string) {
	if utf8.RuneCountInString(text) < MinQueryLen {
		return
	}
	s.deb.Cancel()
	token := s.issue()
	if s.acquire(token) {
		go s.run(token, text)
	}
}

// Wait — ждёт уже начатые запросы; отложенный (ещё не сработавший) поиск не ждёт.
func (s *Search) Wait() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for s.inflight > 0 {
		s.idle.Wait()
	}
}

// Close — отменяет запланированный поиск; ответы начатых запросов отбрасываются.
func (s *Search) Close() {
	s.deb.Cancel()
	s.mu.Lock()
	s.latest++
	s.mu.Unlock()
}

func (s *Search) issue() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest++
	return s.latest
}

// acquire — false, если поиск уже вытеснен более новым вводом.
func (s *Search) acquire(token uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.latest {
		return false
	}
	s.inflight++
	return true
}

func (s *Search) run(token uint64, query string) {
	hits, err := s.searcher.Search(s.ctx, query)

	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.release()

	if token != s.latest {
		s.log.Infof(s.ctx, "search: stale response dropped q=%q", query)
		return
	}
	if err != nil {
		s.log.Warnf(s.ctx, "search: request failed q=%q: %v", query, err)
		s.view.RenderEmpty(MsgNoResults)
		return
	}
	if len(hits) == 0 {
		s.view.RenderEmpty(MsgNoResults)
		return
	}
	s.view.Render(Rows(hits))
}

// release — под s.mu.
func (s *Search) release() {
	s.inflight--
	if s.inflight == 0 {
		s.idle.Broadcast()
	}
}

// Rows — строки выдачи из ответа сервера.
func Rows(hits []domain.SearchHit) []ResultRow {
	rows := make([]ResultRow, 0, len(hits))
	for _, h := range hits {
		thumb := h.Image
		if thumb == "" {
			thumb = PlaceholderImage
		}
		rows = append(rows, ResultRow{
			Thumbnail: thumb,
			Name:      h.Name,
			Price:     FormatPrice(h.Price),
			Link:      "/pc/" + h.Slug,
		})
	}
	return rows
}
