package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/pixelcraft/config"
	"github.com/Gunvolt24/pixelcraft/internal/cartui"
	"github.com/Gunvolt24/pixelcraft/pkg/httpx"
	"github.com/Gunvolt24/pixelcraft/pkg/kv"
)

const testSID = "6f1c2f5e-8f4a-4c57-9d61-0b1d2a3c4e5f"

// fakeStorefront — минимальный API витрины; offline=true отвечает 503 на добавление.
type fakeStorefront struct {
	offline  atomic.Bool
	removes  atomic.Int32
	searches atomic.Int32
}

func (f *fakeStorefront) handler() http.Handler {
	mux := http.NewServeMux()
	writeJSON := func(w http.ResponseWriter, v any) {
		http.SetCookie(w, &http.Cookie{Name: httpx.SessionCookie, Value: testSID, HttpOnly: true})
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(v)
	}
	mux.HandleFunc("/add-to-cart", func(w http.ResponseWriter, _ *http.Request) {
		if f.offline.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		writeJSON(w, map[string]any{"success": true, "cart_count": 1})
	})
	mux.HandleFunc("/remove-from-cart", func(w http.ResponseWriter, _ *http.Request) {
		f.removes.Add(1)
		writeJSON(w, map[string]any{"success": true, "cart_count": 0})
	})
	mux.HandleFunc("/api/cart-count", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]any{"count": 1})
	})
	mux.HandleFunc("/cart", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]any{
			"items": []map[string]any{{"id": "7", "name": "PC Gamer RTX", "price": 2999.90, "quantity": 1}},
			"total": 2999.90,
			"count": 1,
		})
	})
	mux.HandleFunc("/api/search", func(w http.ResponseWriter, _ *http.Request) {
		f.searches.Add(1)
		writeJSON(w, []map[string]any{{"slug": "pc-gamer-rtx", "name": "PC Gamer RTX", "price": 2999.90}})
	})
	return mux
}

func runCmd(t *testing.T, cfg config.Config, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd(&cfg)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func testConfig(t *testing.T, baseURL string) config.Config {
	t.Helper()
	cfg, err := config.LoadWithPrefix("PIXELCRAFT_TEST_SHOPCTL")
	require.NoError(t, err)
	cfg.Client.BaseURL = baseURL
	cfg.Client.SessionDir = t.TempDir()
	return cfg
}

func openSessionStore(t *testing.T, cfg config.Config) *kv.SQLite {
	t.Helper()
	store, err := kv.NewSQLite(cfg.Client.SessionDir, sessionFile)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestShopctl_AddOnline_PersistsSessionOnly(t *testing.T) {
	fs := &fakeStorefront{}
	srv := httptest.NewServer(fs.handler())
	defer srv.Close()
	cfg := testConfig(t, srv.URL)

	out, err := runCmd(t, cfg, "", "add", "7")
	require.NoError(t, err)
	require.Contains(t, out, "🛒 1")
	require.Contains(t, out, cartui.MsgAdded)

	store := openSessionStore(t, cfg)
	sid, ok, err := store.Get(sessionKey)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, testSID, sid)

	_, ok, err = store.Get(cartui.FallbackKey)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestShopctl_AddOffline_ThenDeclinedRemove(t *testing.T) {
	fs := &fakeStorefront{}
	fs.offline.Store(true)
	srv := httptest.NewServer(fs.handler())
	defer srv.Close()
	cfg := testConfig(t, srv.URL)

	out, err := runCmd(t, cfg, "", "add", "7")
	require.NoError(t, err)
	require.Contains(t, out, cartui.MsgAddedOffline)

	out, err = runCmd(t, cfg, "n\n", "remove", "7")
	require.NoError(t, err)
	require.Contains(t, out, cartui.PromptRemove)
	require.NotContains(t, out, cartui.MsgRemoved)
	require.Zero(t, fs.removes.Load())

	store := openSessionStore(t, cfg)
	raw, ok, err := store.Get(cartui.FallbackKey)
	require.NoError(t, err)
	require.True(t, ok)
	var items []cartui.CartItem
	require.NoError(t, json.Unmarshal([]byte(raw), &items))
	require.Len(t, items, 1)

	out, err = runCmd(t, cfg, "", "remove", "--yes", "7")
	require.NoError(t, err)
	require.Contains(t, out, cartui.MsgRemoved)
	require.Equal(t, int32(1), fs.removes.Load())
}

func TestShopctl_SearchAndType(t *testing.T) {
	fs := &fakeStorefront{}
	srv := httptest.NewServer(fs.handler())
	defer srv.Close()
	cfg := testConfig(t, srv.URL)

	out, err := runCmd(t, cfg, "", "search", "rtx")
	require.NoError(t, err)
	require.Contains(t, out, "R$ 2.999,90")
	require.Contains(t, out, "/pc/pc-gamer-rtx")

	_, err = runCmd(t, cfg, "r\nrt\nrtx\n", "type")
	require.NoError(t, err)
	require.Equal(t, int32(2), fs.searches.Load())
}

func TestShopctl_CEPInvalid(t *testing.T) {
	cfg := testConfig(t, "http://127.0.0.1:1")

	out, err := runCmd(t, cfg, "", "cep", "123")
	require.Error(t, err)
	require.Contains(t, out, cartui.MsgCEPInvalid)
}

func TestShopctl_CountUnreachable(t *testing.T) {
	cfg := testConfig(t, "http://127.0.0.1:1")

	_, err := runCmd(t, cfg, "", "count")
	require.Error(t, err)
}
