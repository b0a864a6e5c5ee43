package rest

import (
	"net/http"

	"github.com/Gunvolt24/sales_table/internal/domain"
	"github.com/Gunvolt24/sales_table/pkg/ctxmeta"
	"github.com/Gunvolt24/sales_table/pkg/metrics"
	"github.com/gin-gonic/gin"
)

// NonceHeader — заголовок ответа виджета с anti-forgery токеном (для клиентов без разбора HTML).
const NonceHeader = "X-Sales-Nonce"

// Режимы отрисовки виджета (label "mode").
const (
	renderModePage  = "page"
	renderModeEmbed = "embed"
)

// widgetView — данные шаблонов "page" и "sales_table".
type widgetView struct {
	Products  []domain.Product
	Nonce     string
	Action    string
	AjaxURL   string
	StaticURL string
}

// GET /sales-table?products=3,7 — страница с виджетом.
func (h *Handler) salesTablePage(c *gin.Context) {
	h.renderWidget(c, "page", renderModePage)
}

// GET /sales-table/embed?products=3,7 — фрагмент виджета для встраивания в страницу магазина.
func (h *Handler) salesTableEmbed(c *gin.Context) {
	h.renderWidget(c, "sales_table", renderModeEmbed)
}

func (h *Handler) renderWidget(c *gin.Context, tmpl, mode string) {
	ctx := c.Request.Context()

	products, err := h.catalog.DropdownProducts(ctx, c.Query("products"))
	if err != nil {
		h.log.Errorf(ctx, "render widget: dropdown products failed products=%q err=%v", c.Query("products"), err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	sessionID, _ := ctxmeta.SessionIDFromContext(ctx)
	nonce := h.tokens.Issue(sessionID, ActionGetProductOrders)

	// токен не должен оседать в общих кэшах
	c.Header("Cache-Control", "no-store")
	c.Header(NonceHeader, nonce)
	c.HTML(http.StatusOK, tmpl, widgetView{
		Products:  products,
		Nonce:     nonce,
		Action:    ActionGetProductOrders,
		AjaxURL:   ajaxPath,
		StaticURL: staticPath,
	})
	metrics.WidgetRenders.WithLabelValues(mode).Inc()
}
