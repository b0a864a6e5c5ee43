package httpx

import (
	"net/http"

	"github.com/Gunvolt24/sales_table/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionOptions — параметры cookie сессии браузера.
type SessionOptions struct {
	CookieName string
	Secure     bool
	MaxAge     int // секунды; 0 — cookie до закрытия браузера
}

// DefaultSessionCookie — имя cookie сессии по умолчанию.
const DefaultSessionCookie = "afs_session"

// SessionMiddleware:
// - берёт ID сессии из cookie или генерирует UUID и выставляет cookie
// - кладёт session_id в контекст (к нему привязаны anti-forgery токены)
func SessionMiddleware(opts SessionOptions) gin.HandlerFunc {
	name := opts.CookieName
	if name == "" {
		name = DefaultSessionCookie
	}

	return func(c *gin.Context) {
		sessionID, err := c.Cookie(name)
		if err != nil || sessionID == "" {
			sessionID = uuid.New().String()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(name, sessionID, opts.MaxAge, "/", "", opts.Secure, true)
		}

		ctx := ctxmeta.WithSessionID(c.Request.Context(), sessionID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
