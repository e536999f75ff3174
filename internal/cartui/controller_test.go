package cartui_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/pixelcraft/internal/cartui"
	"github.com/Gunvolt24/pixelcraft/internal/cartui/mocks"
	"github.com/Gunvolt24/pixelcraft/internal/domain"
	"github.com/Gunvolt24/pixelcraft/internal/notify"
	"github.com/Gunvolt24/pixelcraft/internal/storefront"
	"github.com/Gunvolt24/pixelcraft/pkg/kv"
	"github.com/Gunvolt24/pixelcraft/pkg/logger"
)

var fixedNow = time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

type env struct {
	remote  *mocks.MockRemoteCart
	badge   *mocks.MockBadge
	confirm *mocks.MockConfirmer
	reload  *mocks.MockReloader
	store   *kv.Memory
	rec     *notify.Recorder
	c       *cartui.Controller
}

func newEnv(t *testing.T, seed []cartui.CartItem) *env {
	t.Helper()
	ctrl := gomock.NewController(t)

	e := &env{
		remote:  mocks.NewMockRemoteCart(ctrl),
		badge:   mocks.NewMockBadge(ctrl),
		confirm: mocks.NewMockConfirmer(ctrl),
		reload:  mocks.NewMockReloader(ctrl),
		store:   kv.NewMemory(),
		rec:     &notify.Recorder{},
	}
	if seed != nil {
		raw, err := json.Marshal(seed)
		require.NoError(t, err)
		require.NoError(t, e.store.Set(cartui.FallbackKey, string(raw)))
	}

	n := notify.New(e.rec, time.Minute)
	t.Cleanup(n.Close)

	log := logger.NewNop()
	e.c = cartui.NewController(context.Background(), cartui.Deps{
		Remote:    e.remote,
		Fallback:  cartui.NewFallbackStore(e.store, log),
		Notifier:  n,
		Badge:     e.badge,
		Confirmer: e.confirm,
		Reloader:  e.reload,
		Logger:    log,
	}, cartui.Options{Now: func() time.Time { return fixedNow }})
	return e
}

// storedItems — что лежит в локальном хранилище под ключом cart.
func (e *env) storedItems(t *testing.T) ([]cartui.CartItem, bool) {
	t.Helper()
	raw, ok, err := e.store.Get(cartui.FallbackKey)
	require.NoError(t, err)
	if !ok {
		return nil, false
	}
	var items []cartui.CartItem
	require.NoError(t, json.Unmarshal([]byte(raw), &items))
	return items, true
}

func (e *env) lastNote(t *testing.T) notify.Notification {
	t.Helper()
	n, ok := e.rec.Last()
	require.True(t, ok, "no notification shown")
	return n
}

func TestAddItem_RemoteSuccess_NeverWritesLocal(t *testing.T) {
	e := newEnv(t, nil)
	ctx := context.Background()

	gomock.InOrder(
		e.remote.EXPECT().AddToCart(ctx, "pc-7").Return(1, nil),
		e.remote.EXPECT().CartCount(ctx).Return(1, nil),
		e.badge.EXPECT().SetCount(1),
	)

	e.c.AddItem(ctx, "pc-7")

	_, stored := e.storedItems(t)
	require.False(t, stored)
	require.Empty(t, e.c.Items())
	require.Equal(t, 1, e.c.Count())
	require.Equal(t, cartui.SourceRemote, e.c.Source())

	note := e.lastNote(t)
	require.Equal(t, cartui.MsgAdded, note.Message)
	require.Equal(t, notify.SeveritySuccess, note.Severity)
}

func TestAddItem_RemoteFailure_AppendsExactlyOne(t *testing.T) {
	for name, remoteErr := range map[string]error{
		"transport": fmt.Errorf("%w: connection refused", storefront.ErrTransport),
		"business":  fmt.Errorf("%w: Produto não encontrado", storefront.ErrBusiness),
	} {
		t.Run(name, func(t *testing.T) {
			seed := []cartui.CartItem{{ID: "pc-1", Name: "PC", UnitPrice: 100, Quantity: 1, AddedAt: fixedNow}}
			e := newEnv(t, seed)
			ctx := context.Background()

			e.remote.EXPECT().AddToCart(ctx, "pc-9").Return(0, remoteErr)
			e.badge.EXPECT().SetCount(2)

			e.c.AddItem(ctx, "pc-9")

			stored, ok := e.storedItems(t)
			require.True(t, ok)
			require.Len(t, stored, len(seed)+1)
			require.Equal(t, cartui.CartItem{
				ID:        "pc-9",
				Name:      cartui.DefaultFallbackName,
				UnitPrice: cartui.DefaultFallbackPrice,
				Quantity:  1,
				AddedAt:   fixedNow,
			}, stored[1])

			require.Equal(t, 2, e.c.Count())
			require.Equal(t, cartui.SourceLocal, e.c.Source())
			require.Equal(t, cartui.MsgAddedOffline, e.lastNote(t).Message)
		})
	}
}

func TestAddItem_OfflineSameID_IncrementsQuantity(t *testing.T) {
	e := newEnv(t, nil)
	ctx := context.Background()

	e.remote.EXPECT().AddToCart(ctx, "pc-9").Return(0, storefront.ErrTransport).Times(2)
	e.badge.EXPECT().SetCount(1).Times(2)

	e.c.AddItem(ctx, "pc-9")
	e.c.AddItem(ctx, "pc-9")

	items := e.c.Items()
	require.Len(t, items, 1)
	require.Equal(t, 2, items[0].Quantity)
}

func TestAddItem_EmptyID_NoRequest(t *testing.T) {
	e := newEnv(t, nil)

	e.c.AddItem(context.Background(), "   ")

	note := e.lastNote(t)
	require.Equal(t, cartui.MsgInvalidItem, note.Message)
	require.Equal(t, notify.SeverityError, note.Severity)
	require.Equal(t, cartui.SourceNone, e.c.Source())
}

func TestRefreshCount_FallsBackToCartView(t *testing.T) {
	e := newEnv(t, nil)
	ctx := context.Background()

	view := domain.CartView{Items: []domain.CartLine{{ID: "a"}, {ID: "b"}, {ID: "c"}}, Count: 3}
	e.remote.EXPECT().CartCount(ctx).Return(0, storefront.ErrTransport)
	e.remote.EXPECT().Cart(ctx).Return(view, nil)
	e.badge.EXPECT().SetCount(3)

	e.c.RefreshCount(ctx)
	require.Equal(t, 3, e.c.Count())
	require.Equal(t, cartui.SourceRemote, e.c.Source())
}

func TestRefreshCount_BothFail_DisplayStale(t *testing.T) {
	e := newEnv(t, nil)
	ctx := context.Background()

	e.remote.EXPECT().CartCount(ctx).Return(0, storefront.ErrTransport)
	e.remote.EXPECT().Cart(ctx).Return(domain.CartView{}, storefront.ErrTransport)

	e.c.RefreshCount(ctx)
	require.Equal(t, 0, e.c.Count())
	require.Equal(t, cartui.SourceNone, e.c.Source())
	require.Empty(t, e.rec.Shown())
}

func TestRemoveItem_NotConfirmed_NoChanges(t *testing.T) {
	seed := []cartui.CartItem{{ID: "pc-1", Name: "PC", UnitPrice: 100, Quantity: 1, AddedAt: fixedNow}}
	e := newEnv(t, seed)
	ctx := context.Background()
	before, _, _ := e.store.Get(cartui.FallbackKey)

	e.confirm.EXPECT().Confirm(ctx, cartui.PromptRemove).Return(false)

	require.False(t, e.c.RemoveItem(ctx, "pc-1"))

	after, _, _ := e.store.Get(cartui.FallbackKey)
	require.Equal(t, before, after)
	require.Len(t, e.c.Items(), 1)
	require.Empty(t, e.rec.Shown())
}

func TestRemoveItem_Confirmed_LocalSource(t *testing.T) {
	e := newEnv(t, nil)
	ctx := context.Background()

	e.remote.EXPECT().AddToCart(ctx, gomock.Any()).Return(0, storefront.ErrTransport).Times(2)
	e.badge.EXPECT().SetCount(1)
	e.badge.EXPECT().SetCount(2)
	e.c.AddItem(ctx, "pc-1")
	e.c.AddItem(ctx, "pc-2")

	gomock.InOrder(
		e.confirm.EXPECT().Confirm(ctx, cartui.PromptRemove).Return(true),
		e.remote.EXPECT().RemoveFromCart(ctx, "pc-1").Return(0, storefront.ErrTransport),
		e.badge.EXPECT().SetCount(1),
		e.reload.EXPECT().Reload(ctx),
	)

	require.True(t, e.c.RemoveItem(ctx, "pc-1"))

	stored, _ := e.storedItems(t)
	require.Len(t, stored, 1)
	require.Equal(t, "pc-2", stored[0].ID)
	require.Equal(t, 1, e.c.Count())

	note := e.lastNote(t)
	require.Equal(t, cartui.MsgRemoved, note.Message)
	require.Equal(t, notify.SeverityInfo, note.Severity)
}

func TestRemoveItem_Confirmed_RemoteSource(t *testing.T) {
	e := newEnv(t, nil)
	ctx := context.Background()

	gomock.InOrder(
		e.confirm.EXPECT().Confirm(ctx, cartui.PromptRemove).Return(true),
		e.remote.EXPECT().RemoveFromCart(ctx, "pc-1").Return(0, nil),
		e.remote.EXPECT().CartCount(ctx).Return(0, nil),
		e.badge.EXPECT().SetCount(0),
		e.reload.EXPECT().Reload(ctx),
	)

	require.True(t, e.c.RemoveItem(ctx, "pc-1"))
	require.Equal(t, cartui.SourceRemote, e.c.Source())
	_, stored := e.storedItems(t)
	require.False(t, stored)
}

func TestClear_EmptiesLocalList(t *testing.T) {
	e := newEnv(t, nil)
	ctx := context.Background()

	e.remote.EXPECT().AddToCart(ctx, "pc-1").Return(0, storefront.ErrTransport)
	e.badge.EXPECT().SetCount(1)
	e.c.AddItem(ctx, "pc-1")

	e.badge.EXPECT().SetCount(0)
	e.c.Clear(ctx)

	require.Empty(t, e.c.Items())
	require.Equal(t, 0, e.c.Count())
	_, stored := e.storedItems(t)
	require.False(t, stored)
}

func TestNewController_CorruptStorageReadsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := kv.NewMemory()
	require.NoError(t, store.Set(cartui.FallbackKey, "{definitely not a list"))

	log := logger.NewNop()
	c := cartui.NewController(context.Background(), cartui.Deps{
		Remote:   mocks.NewMockRemoteCart(ctrl),
		Fallback: cartui.NewFallbackStore(store, log),
		Notifier: mocks.NewMockNotifier(ctrl),
		Badge:    mocks.NewMockBadge(ctrl),
		Logger:   log,
	}, cartui.Options{})

	require.Empty(t, c.Items())
}

type failingStore struct{ kv.Store }

func (failingStore) Set(string, string) error { return errors.New("quota exceeded") }

func TestAddItem_PersistFailure_StillUpdatesDisplay(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mocks.NewMockRemoteCart(ctrl)
	badge := mocks.NewMockBadge(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	log := logger.NewNop()

	c := cartui.NewController(context.Background(), cartui.Deps{
		Remote:   remote,
		Fallback: cartui.NewFallbackStore(failingStore{kv.NewMemory()}, log),
		Notifier: notifier,
		Badge:    badge,
		Logger:   log,
	}, cartui.Options{})

	remote.EXPECT().AddToCart(gomock.Any(), "pc-1").Return(0, storefront.ErrTransport)
	badge.EXPECT().SetCount(1)
	notifier.EXPECT().Show(cartui.MsgAddedOffline, notify.SeveritySuccess)

	c.AddItem(context.Background(), "pc-1")
	require.Equal(t, 1, c.Count())
}
