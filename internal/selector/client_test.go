package selector_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/Gunvolt24/sales_table/internal/selector"
)

// fakeService — минимальный сервер виджета: выдаёт cookie и токен, отвечает на поиск.
func fakeService(t *testing.T, ajax http.HandlerFunc) (*httptest.Server, *int32) {
	t.Helper()
	var preflights int32

	mux := http.NewServeMux()
	mux.HandleFunc(selector.DefaultWidgetPath, func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&preflights, 1)
		http.SetCookie(w, &http.Cookie{Name: "afs_session", Value: "sess", Path: "/"})
		w.Header().Set("X-Sales-Nonce", "tok")
		_, _ = w.Write([]byte("<div></div>"))
	})
	mux.HandleFunc(selector.DefaultAjaxPath, ajax)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &preflights
}

func newClient(t *testing.T, baseURL string) *selector.HTTPClient {
	t.Helper()
	c, err := selector.NewHTTPClient(selector.Config{BaseURL: baseURL})
	if err != nil {
		t.Fatalf("NewHTTPClient: %v", err)
	}
	return c
}

func TestNewHTTPClient_RequiresBaseURL(t *testing.T) {
	if _, err := selector.NewHTTPClient(selector.Config{BaseURL: "  "}); err == nil {
		t.Fatalf("want error for empty base URL")
	}
}

func TestLookup_SendsFormWithSessionAndCachesNonce(t *testing.T) {
	srv, preflights := fakeService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("want POST, got %s", r.Method)
		}
		if r.PostFormValue("action") != "get_product_orders" || r.PostFormValue("product_id") != "42" || r.PostFormValue("nonce") != "tok" {
			t.Errorf("unexpected form: %v", r.PostForm)
		}
		if c, err := r.Cookie("afs_session"); err != nil || c.Value != "sess" {
			t.Errorf("session cookie is not sent: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"orders":[{"customer_name":"Guest","quantity":2,"payment_method":"N/A","status":"Processing","order_id":1}]}}`))
	})
	c := newClient(t, srv.URL)

	for i := 0; i < 2; i++ {
		orders, err := c.Lookup(context.Background(), "42")
		if err != nil {
			t.Fatalf("Lookup: %v", err)
		}
		if len(orders) != 1 || orders[0].CustomerName != "Guest" || orders[0].Quantity != 2 || orders[0].OrderID != 1 {
			t.Fatalf("unexpected orders: %+v", orders)
		}
	}
	if got := atomic.LoadInt32(preflights); got != 1 {
		t.Fatalf("want one preflight, got %d", got)
	}
}

func TestLookup_EmptyOrders_NonNil(t *testing.T) {
	srv, _ := fakeService(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":{"orders":null}}`))
	})

	orders, err := newClient(t, srv.URL).Lookup(context.Background(), "1")
	if err != nil || orders == nil || len(orders) != 0 {
		t.Fatalf("want empty non-nil list, got %v err=%v", orders, err)
	}
}

func TestLookup_Errors(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"rejected", http.StatusOK, `{"success":false,"data":{"message":"Invalid product ID"}}`, selector.ErrRejected},
		{"bad json", http.StatusOK, `not json`, selector.ErrTransport},
		{"bad request", http.StatusBadRequest, `{"success":false,"data":{"message":"unknown action"}}`, selector.ErrTransport},
		{"internal", http.StatusInternalServerError, `{"success":false}`, selector.ErrTransport},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv, _ := fakeService(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})

			_, err := newClient(t, srv.URL).Lookup(context.Background(), "1")
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("want %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestLookup_PreflightWithoutNonce_Transport(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(selector.DefaultWidgetPath, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<div></div>"))
	})
	mux.HandleFunc(selector.DefaultAjaxPath, func(http.ResponseWriter, *http.Request) {
		t.Errorf("lookup must not be sent without a nonce")
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	_, err := newClient(t, srv.URL).Lookup(context.Background(), "1")
	if !errors.Is(err, selector.ErrTransport) {
		t.Fatalf("want ErrTransport, got %v", err)
	}
}
