// Package storefront — HTTP-клиенты витрины PixelCraft и сервиса CEP.
package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/Gunvolt24/pixelcraft/internal/domain"
	"github.com/Gunvolt24/pixelcraft/pkg/httpx"
	"github.com/Gunvolt24/pixelcraft/pkg/telemetry"
)

const maxBodySize = 1 << 20

// Options — параметры клиента API витрины.
type Options struct {
	BaseURL string
	Timeout time.Duration
	// SessionID — ранее выданная сессия; пусто — сервер выдаст новую при первом запросе.
	SessionID string
	// Transport — базовый транспорт (nil — http.DefaultTransport); всегда оборачивается otelhttp.
	Transport http.RoundTripper
}

// Client — клиент API корзины, поиска и рассылки. Хранит cookie сессии между вызовами.
type Client struct {
	base *url.URL
	http *http.Client

	mu        sync.Mutex
	sessionID string
}

func NewClient(opts Options) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base url %q", opts.BaseURL)
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		base:      base,
		http:      &http.Client{Timeout: timeout, Transport: telemetry.HTTPTransport(opts.Transport)},
		sessionID: opts.SessionID,
	}, nil
}

// SessionID — текущая сессия (после первого ответа сервера).
func (c *Client) SessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionID
}

// cartResponse — ответ add/remove; error приходит вместе с success=false.
type cartResponse struct {
	Success   bool   `json:"success"`
	CartCount int    `json:"cart_count"`
	Error     string `json:"error"`
}

// AddToCart — POST /add-to-cart; success=false даёт ErrBusiness.
func (c *Client) AddToCart(ctx context.Context, itemID string) (int, error) {
	return c.mutateCart(ctx, "/add-to-cart", itemID)
}

// RemoveFromCart — POST /remove-from-cart.
func (c *Client) RemoveFromCart(ctx context.Context, itemID string) (int, error) {
	return c.mutateCart(ctx, "/remove-from-cart", itemID)
}

func (c *Client) mutateCart(ctx context.Context, path, itemID string) (int, error) {
	if strings.TrimSpace(itemID) == "" {
		return 0, ErrEmptyItemID
	}

	var resp cartResponse
	status, err := c.do(ctx, http.MethodPost, path, nil, map[string]string{"product_id": itemID}, &resp)
	if err != nil {
		return 0, err
	}
	if !resp.Success {
		msg := resp.Error
		if msg == "" {
			msg = http.StatusText(status)
		}
		return 0, fmt.Errorf("%w: %s", ErrBusiness, msg)
	}
	return resp.CartCount, nil
}

// CartCount — GET /api/cart-count.
func (c *Client) CartCount(ctx context.Context) (int, error) {
	var resp struct {
		Count *int `json:"count"`
	}
	if _, err := c.do(ctx, http.MethodGet, "/api/cart-count", nil, nil, &resp); err != nil {
		return 0, err
	}
	if resp.Count == nil {
		return 0, fmt.Errorf("%w: count missing in response", ErrTransport)
	}
	return *resp.Count, nil
}

// Cart — GET /cart.
func (c *Client) Cart(ctx context.Context) (domain.CartView, error) {
	var view domain.CartView
	if _, err := c.do(ctx, http.MethodGet, "/cart", nil, nil, &view); err != nil {
		return domain.CartView{}, err
	}
	return view, nil
}

// Search — GET /api/search?q=.
func (c *Client) Search(ctx context.Context, query string) ([]domain.SearchHit, error) {
	var hits []domain.SearchHit
	if _, err := c.do(ctx, http.MethodGet, "/api/search", url.Values{"q": {query}}, nil, &hits); err != nil {
		return nil, err
	}
	return hits, nil
}

// Subscribe — POST /api/newsletter; success=false не ошибка, решение за вызывающим.
func (c *Client) Subscribe(ctx context.Context, email string) (domain.NewsletterResult, error) {
	if strings.TrimSpace(email) == "" {
		return domain.NewsletterResult{}, ErrEmptyEmail
	}
	var res domain.NewsletterResult
	if _, err := c.do(ctx, http.MethodPost, "/api/newsletter", nil, map[string]string{"email": email}, &res); err != nil {
		return domain.NewsletterResult{}, err
	}
	return res, nil
}

// do — один запрос к API. Не-2xx ответ с JSON-телом {success:false} разбирается в out
// (так сервер сообщает о неизвестном товаре); остальные не-2xx — ErrTransport.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) (int, error) {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var rd io.Reader = http.NoBody
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), rd)
	if err != nil {
		return 0, fmt.Errorf("%w: build request: %v", ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sid := c.SessionID(); sid != "" {
		req.AddCookie(&http.Cookie{Name: httpx.SessionCookie, Value: sid})
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %s: %v", ErrTransport, method, path, err)
	}
	defer resp.Body.Close()
	c.captureSession(resp)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return resp.StatusCode, fmt.Errorf("%w: read body: %v", ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if rejected(raw) {
			if err := json.Unmarshal(raw, out); err == nil {
				return resp.StatusCode, nil
			}
		}
		return resp.StatusCode, fmt.Errorf("%w: %s %s: status %d", ErrTransport, method, path, resp.StatusCode)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return resp.StatusCode, fmt.Errorf("%w: decode %s: %v", ErrTransport, path, err)
	}
	return resp.StatusCode, nil
}

func (c *Client) captureSession(resp *http.Response) {
	for _, ck := range resp.Cookies() {
		if ck.Name == httpx.SessionCookie && ck.Value != "" {
			c.mu.Lock()
			c.sessionID = ck.Value
			c.mu.Unlock()
			return
		}
	}
}

// rejected — тело вида {"success": false, ...}.
func rejected(raw []byte) bool {
	var env struct {
		Success *bool `json:"success"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return false
	}
	return env.Success != nil && !*env.Success
}
