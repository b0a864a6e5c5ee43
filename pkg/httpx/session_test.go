package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Gunvolt24/sales_table/pkg/ctxmeta"
	"github.com/Gunvolt24/sales_table/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TestSessionMiddleware_IssuesCookieWhenMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotID string
	var ok bool

	r := gin.New()
	r.Use(httpx.SessionMiddleware(httpx.SessionOptions{}))
	r.GET("/", func(c *gin.Context) {
		gotID, ok = ctxmeta.SessionIDFromContext(c.Request.Context())
		c.Status(204)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", http.NoBody)
	r.ServeHTTP(w, req)

	var cookie *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == httpx.DefaultSessionCookie {
			cookie = ck
		}
	}
	if cookie == nil {
		t.Fatalf("cookie %s должен быть установлен", httpx.DefaultSessionCookie)
	}
	if _, err := uuid.Parse(cookie.Value); err != nil {
		t.Fatalf("ID сессии должен быть UUID, got=%q err=%v", cookie.Value, err)
	}
	if !cookie.HttpOnly {
		t.Fatalf("cookie сессии должна быть HttpOnly")
	}
	if !ok || gotID != cookie.Value {
		t.Fatalf("session id в контексте должен совпадать с cookie: ctx=%q ok=%v cookie=%q", gotID, ok, cookie.Value)
	}
}

func TestSessionMiddleware_ReusesCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotID string

	r := gin.New()
	r.Use(httpx.SessionMiddleware(httpx.SessionOptions{CookieName: "sid"}))
	r.GET("/", func(c *gin.Context) {
		gotID, _ = ctxmeta.SessionIDFromContext(c.Request.Context())
		c.Status(204)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", http.NoBody)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "existing"})
	r.ServeHTTP(w, req)

	if gotID != "existing" {
		t.Fatalf("middleware должен использовать существующую сессию: got=%q", gotID)
	}
	if len(w.Result().Cookies()) != 0 {
		t.Fatalf("при наличии сессии новая cookie не выставляется")
	}
}
