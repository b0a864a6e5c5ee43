package selector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/Gunvolt24/sales_table/internal/domain"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Значения по умолчанию для сервиса виджета.
const (
	DefaultWidgetPath = "/sales-table/embed"
	DefaultAjaxPath   = "/ajax"
	DefaultTimeout    = 10 * time.Second

	lookupAction = "get_product_orders"
	nonceHeader  = "X-Sales-Nonce"
)

// Config — параметры HTTPClient.
type Config struct {
	BaseURL    string            // адрес сервиса, например http://localhost:8080
	WidgetPath string            // откуда брать токен и cookie сессии
	AjaxPath   string            // эндпоинт поиска
	Timeout    time.Duration     // таймаут одного HTTP-запроса
	Transport  http.RoundTripper // nil → http.DefaultTransport
}

// HTTPClient — клиент эндпоинта поиска.
// Перед первым поиском делает preflight GET виджета: получает cookie сессии и
// anti-forgery токен; при 403 токен запрашивается заново (один повтор).
type HTTPClient struct {
	httpClient *http.Client
	baseURL    string
	widgetPath string
	ajaxPath   string

	mu    sync.Mutex
	nonce string
}

var _ Lookuper = (*HTTPClient)(nil)

// NewHTTPClient — клиент с cookie jar и otelhttp-транспортом.
func NewHTTPClient(cfg Config) (*HTTPClient, error) {
	base := strings.TrimSuffix(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}

	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &HTTPClient{
		httpClient: &http.Client{
			Timeout:   timeout,
			Jar:       jar,
			Transport: otelhttp.NewTransport(transport),
		},
		baseURL:    base,
		widgetPath: cfg.WidgetPath,
		ajaxPath:   cfg.AjaxPath,
	}
	if c.widgetPath == "" {
		c.widgetPath = DefaultWidgetPath
	}
	if c.ajaxPath == "" {
		c.ajaxPath = DefaultAjaxPath
	}
	return c, nil
}

// Lookup — записи по товару.
// Ошибки: ErrTransport (сеть, статус != 200, битый JSON), ErrRejected (success=false).
func (c *HTTPClient) Lookup(ctx context.Context, productID string) ([]domain.OrderSummary, error) {
	nonce, err := c.currentNonce(ctx)
	if err != nil {
		return nil, err
	}

	orders, status, err := c.postLookup(ctx, productID, nonce)
	if status == http.StatusForbidden {
		// токен истёк или сессия сменилась — один повтор со свежим токеном
		if nonce, err = c.refreshNonce(ctx); err != nil {
			return nil, err
		}
		orders, _, err = c.postLookup(ctx, productID, nonce)
	}
	return orders, err
}

func (c *HTTPClient) currentNonce(ctx context.Context) (string, error) {
	c.mu.Lock()
	nonce := c.nonce
	c.mu.Unlock()

	if nonce != "" {
		return nonce, nil
	}
	return c.refreshNonce(ctx)
}

// refreshNonce — preflight GET виджета: cookie сессии оседает в jar, токен приходит в заголовке.
func (c *HTTPClient) refreshNonce(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+c.widgetPath, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create preflight request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: preflight: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	// вычитываем тело, чтобы соединение вернулось в пул
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: preflight status %d", ErrTransport, resp.StatusCode)
	}
	nonce := resp.Header.Get(nonceHeader)
	if nonce == "" {
		return "", fmt.Errorf("%w: preflight returned no nonce", ErrTransport)
	}

	c.mu.Lock()
	c.nonce = nonce
	c.mu.Unlock()
	return nonce, nil
}

type lookupResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Orders  []domain.OrderSummary `json:"orders"`
		Message string                `json:"message"`
	} `json:"data"`
}

func (c *HTTPClient) postLookup(ctx context.Context, productID, nonce string) ([]domain.OrderSummary, int, error) {
	form := url.Values{
		"action":     {lookupAction},
		"product_id": {productID},
		"nonce":      {nonce},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.ajaxPath, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, 0, fmt.Errorf("create lookup request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: lookup: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, resp.StatusCode, fmt.Errorf("%w: lookup status %d", ErrTransport, resp.StatusCode)
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("%w: decode lookup response: %v", ErrTransport, err)
	}
	if !body.Success {
		return nil, resp.StatusCode, fmt.Errorf("%w: %s", ErrRejected, body.Data.Message)
	}
	if body.Data.Orders == nil {
		body.Data.Orders = []domain.OrderSummary{}
	}
	return body.Data.Orders, resp.StatusCode, nil
}
