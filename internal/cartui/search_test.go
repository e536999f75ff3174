package cartui_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/pixelcraft/internal/cartui"
	"github.com/Gunvolt24/pixelcraft/internal/domain"
	"github.com/Gunvolt24/pixelcraft/internal/storefront"
	"github.com/Gunvolt24/pixelcraft/pkg/logger"
)

const testQuiet = 40 * time.Millisecond

// fakeSearcher — отвечает по таблице и запоминает запросы.
type fakeSearcher struct {
	mu      sync.Mutex
	queries []string
	results map[string][]domain.SearchHit
	err     error
	// block — запросы с этим текстом ждут release.
	block   string
	started chan struct{}
	release chan struct{}
}

func (f *fakeSearcher) Search(ctx context.Context, q string) ([]domain.SearchHit, error) {
	f.mu.Lock()
	f.queries = append(f.queries, q)
	block := f.block != "" && q == f.block
	f.mu.Unlock()

	if block {
		close(f.started)
		<-f.release
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.results[q], nil
}

func (f *fakeSearcher) Queries() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.queries...)
}

// fakeView — запоминает, что было нарисовано.
type fakeView struct {
	mu      sync.Mutex
	renders [][]cartui.ResultRow
	empties []string
	clears  int
}

func (v *fakeView) Render(rows []cartui.ResultRow) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.renders = append(v.renders, rows)
}

func (v *fakeView) RenderEmpty(msg string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.empties = append(v.empties, msg)
}

func (v *fakeView) Clear() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.clears++
}

func (v *fakeView) snapshot() ([][]cartui.ResultRow, []string, int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([][]cartui.ResultRow(nil), v.renders...), append([]string(nil), v.empties...), v.clears
}

var rtxHit = domain.SearchHit{Slug: "pc-gamer-rtx-4060", Name: "PC Gamer RTX 4060", Price: 2999.90}

func newSearch(t *testing.T, s *fakeSearcher) (*cartui.Search, *fakeView) {
	t.Helper()
	v := &fakeView{}
	srch := cartui.NewSearch(context.Background(), s, v, logger.NewNop(), testQuiet)
	t.Cleanup(srch.Close)
	return srch, v
}

func TestSearch_RapidKeystrokes_OneRequestWithFinalQuery(t *testing.T) {
	s := &fakeSearcher{results: map[string][]domain.SearchHit{"rtx 4060": {rtxHit}}}
	srch, v := newSearch(t, s)

	for _, text := range []string{"rt", "rtx", "rtx ", "rtx 4", "rtx 40", "rtx 406", "rtx 4060"} {
		srch.OnInput(text)
		time.Sleep(testQuiet / 8)
	}

	require.Eventually(t, func() bool { return len(s.Queries()) == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(3 * testQuiet)

	require.Equal(t, []string{"rtx 4060"}, s.Queries())
	renders, _, _ := v.snapshot()
	require.Len(t, renders, 1)
}

func TestSearch_ShortQuery_NoRequestAndCleared(t *testing.T) {
	s := &fakeSearcher{}
	srch, v := newSearch(t, s)

	srch.OnInput("r")
	srch.OnSubmit("r")
	srch.OnInput("")
	time.Sleep(3 * testQuiet)

	require.Empty(t, s.Queries())
	_, _, clears := v.snapshot()
	require.Equal(t, 2, clears)
}

func TestSearch_ShortQueryCancelsPending(t *testing.T) {
	s := &fakeSearcher{}
	srch, v := newSearch(t, s)

	srch.OnInput("rtx")
	srch.OnInput("r")
	time.Sleep(3 * testQuiet)

	require.Empty(t, s.Queries())
	renders, empties, clears := v.snapshot()
	require.Empty(t, renders)
	require.Empty(t, empties)
	require.Equal(t, 1, clears)
}

func TestSearch_RendersFormattedRow(t *testing.T) {
	s := &fakeSearcher{results: map[string][]domain.SearchHit{"rtx": {rtxHit}}}
	srch, v := newSearch(t, s)

	srch.OnSubmit("rtx")
	srch.Wait()

	renders, _, _ := v.snapshot()
	require.Len(t, renders, 1)
	require.Equal(t, []cartui.ResultRow{{
		Thumbnail: cartui.PlaceholderImage,
		Name:      "PC Gamer RTX 4060",
		Price:     "R$ 2.999,90",
		Link:      "/pc/pc-gamer-rtx-4060",
	}}, renders[0])
}

func TestSearch_NoResults(t *testing.T) {
	s := &fakeSearcher{results: map[string][]domain.SearchHit{"zzz99": {}}}
	srch, v := newSearch(t, s)

	srch.OnSubmit("zzz99")
	srch.Wait()

	renders, empties, _ := v.snapshot()
	require.Empty(t, renders)
	require.Equal(t, []string{"Nenhum resultado encontrado"}, empties)
}

func TestSearch_TransportFailureRendersEmptyState(t *testing.T) {
	s := &fakeSearcher{err: storefront.ErrTransport}
	srch, v := newSearch(t, s)

	srch.OnSubmit("rtx")
	srch.Wait()

	_, empties, _ := v.snapshot()
	require.Equal(t, []string{cartui.MsgNoResults}, empties)
}

func TestSearch_StaleResponseDropped(t *testing.T) {
	s := &fakeSearcher{
		results: map[string][]domain.SearchHit{
			"rt":  {{Slug: "old", Name: "Old", Price: 1}},
			"rtx": {rtxHit},
		},
		block:   "rt",
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	srch, v := newSearch(t, s)

	srch.OnSubmit("rt")
	<-s.started

	srch.OnSubmit("rtx")
	require.Eventually(t, func() bool {
		renders, _, _ := v.snapshot()
		return len(renders) == 1
	}, time.Second, 5*time.Millisecond)

	close(s.release)
	srch.Wait()

	renders, _, _ := v.snapshot()
	require.Len(t, renders, 1)
	require.Equal(t, "/pc/pc-gamer-rtx-4060", renders[0][0].Link)
}

func TestSearch_SubmitDoesNotBlockOnSlowServer(t *testing.T) {
	s := &fakeSearcher{
		results: map[string][]domain.SearchHit{"rtx": {rtxHit}},
		block:   "rtx",
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	srch, v := newSearch(t, s)

	returned := make(chan struct{})
	go func() {
		defer close(returned)
		srch.OnSubmit("rtx")
	}()
	select {
	case <-returned:
	case <-time.After(time.Second):
		close(s.release)
		t.Fatal("OnSubmit waited for the server")
	}

	<-s.started
	renders, _, _ := v.snapshot()
	require.Empty(t, renders)

	close(s.release)
	srch.Wait()
	renders, _, _ = v.snapshot()
	require.Len(t, renders, 1)
}

func TestSearch_ShortInputWhileRequestInFlight_NoRender(t *testing.T) {
	s := &fakeSearcher{
		results: map[string][]domain.SearchHit{"rtx": {rtxHit}},
		block:   "rtx",
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	srch, v := newSearch(t, s)

	srch.OnInput("rtx")
	<-s.started
	srch.OnInput("r")
	close(s.release)
	srch.Wait()

	renders, empties, clears := v.snapshot()
	require.Empty(t, renders)
	require.Empty(t, empties)
	require.Equal(t, 1, clears)
}

func TestRows_KeepsImage(t *testing.T) {
	rows := cartui.Rows([]domain.SearchHit{{Slug: "a", Name: "A", Price: 10, Image: "/static/uploads/a.webp"}})
	require.Equal(t, "/static/uploads/a.webp", rows[0].Thumbnail)
	require.Equal(t, "R$ 10,00", rows[0].Price)
}
