package storefront_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/pixelcraft/internal/domain"
	"github.com/Gunvolt24/pixelcraft/internal/storefront"
	"github.com/Gunvolt24/pixelcraft/pkg/httpx"
)

func newClient(t *testing.T, h http.Handler) (*storefront.Client, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	c, err := storefront.NewClient(storefront.Options{BaseURL: ts.URL})
	require.NoError(t, err)
	return c, ts
}

func TestNewClient_InvalidBaseURL(t *testing.T) {
	_, err := storefront.NewClient(storefront.Options{BaseURL: "not a url"})
	require.Error(t, err)
}

func TestAddToCart_Success(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/add-to-cart", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "pc-7", body["product_id"])

		_, _ = w.Write([]byte(`{"success":true,"cart_count":2}`))
	}))

	count, err := c.AddToCart(context.Background(), "pc-7")
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func TestAddToCart_NotFound_IsBusinessError(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"error":"Produto não encontrado"}`))
	}))

	_, err := c.AddToCart(context.Background(), "ghost")
	require.ErrorIs(t, err, storefront.ErrBusiness)
	require.Contains(t, err.Error(), "Produto não encontrado")
}

func TestAddToCart_ServerError_IsTransport(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))

	_, err := c.AddToCart(context.Background(), "pc-1")
	require.ErrorIs(t, err, storefront.ErrTransport)
}

func TestAddToCart_Unreachable_IsTransport(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	c, err := storefront.NewClient(storefront.Options{BaseURL: url})
	require.NoError(t, err)

	_, err = c.AddToCart(context.Background(), "pc-1")
	require.ErrorIs(t, err, storefront.ErrTransport)
}

func TestAddToCart_EmptyID_NoRequest(t *testing.T) {
	var calls int32
	c, _ := newClient(t, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))

	_, err := c.AddToCart(context.Background(), "  ")
	require.ErrorIs(t, err, storefront.ErrEmptyItemID)
	require.Zero(t, atomic.LoadInt32(&calls))
}

func TestSession_CapturedAndReplayed(t *testing.T) {
	const sid = "5f2d8a4e-6f0b-4c1e-9a3d-1b2c3d4e5f60"
	var (
		mu   sync.Mutex
		seen []string
	)
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		if ck, err := r.Cookie(httpx.SessionCookie); err == nil {
			seen = append(seen, ck.Value)
		} else {
			seen = append(seen, "")
			http.SetCookie(w, &http.Cookie{Name: httpx.SessionCookie, Value: sid})
		}
		_, _ = w.Write([]byte(`{"count":0}`))
	}))

	_, err := c.CartCount(context.Background())
	require.NoError(t, err)
	require.Equal(t, sid, c.SessionID())

	_, err = c.CartCount(context.Background())
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []string{"", sid}, seen)
}

func TestCartCount_MissingField_IsTransport(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))

	_, err := c.CartCount(context.Background())
	require.ErrorIs(t, err, storefront.ErrTransport)
}

func TestCart_View(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/cart", r.URL.Path)
		_, _ = w.Write([]byte(`{"items":[{"id":"pc-1","name":"PC","price":10,"quantity":1}],"total":10,"count":1}`))
	}))

	view, err := c.Cart(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, view.Count)
	require.Equal(t, []domain.CartLine{{ID: "pc-1", Name: "PC", Price: 10, Quantity: 1}}, view.Items)
}

func TestSearch_EncodesQuery(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "rtx 4060", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(`[{"slug":"pc-gamer-rtx","name":"PC Gamer RTX","price":2999.9}]`))
	}))

	hits, err := c.Search(context.Background(), "rtx 4060")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	require.Equal(t, "pc-gamer-rtx", hits[0].Slug)
}

func TestSearch_BadJSON_IsTransport(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	}))

	_, err := c.Search(context.Background(), "rtx")
	require.True(t, errors.Is(err, storefront.ErrTransport))
}

func TestSubscribe(t *testing.T) {
	c, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "a@b.com", body["email"])
		_, _ = w.Write([]byte(`{"success":true,"message":"E-mail cadastrado com sucesso!"}`))
	}))

	res, err := c.Subscribe(context.Background(), "a@b.com")
	require.NoError(t, err)
	require.True(t, res.Success)

	_, err = c.Subscribe(context.Background(), "")
	require.ErrorIs(t, err, storefront.ErrEmptyEmail)
}
