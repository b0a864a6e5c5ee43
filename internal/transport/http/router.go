package rest

import (
	"html/template"
	"net/http"
	"time"

	"github.com/Gunvolt24/sales_table/internal/ports"
	"github.com/Gunvolt24/sales_table/pkg/httpx"
	"github.com/Gunvolt24/sales_table/web"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const (
	// ActionGetProductOrders — действие поиска заказов по товару (поле action в POST /ajax).
	ActionGetProductOrders = "get_product_orders"

	ajaxPath   = "/ajax"
	staticPath = "/static"
)

// Handler — HTTP-обработчики виджета и эндпоинта поиска.
type Handler struct {
	lookup         ports.OrderLookupService
	catalog        ports.ProductCatalogService
	tokens         ports.TokenManager
	log            ports.Logger
	handlerTimeout time.Duration
	tmpl           *template.Template
}

// NewHandler — конструктор; handlerTimeout <= 0 → без собственного таймаута на поиск.
// Шаблоны встроены в бинарник, ошибка разбора — ошибка сборки.
func NewHandler(
	lookup ports.OrderLookupService,
	catalog ports.ProductCatalogService,
	tokens ports.TokenManager,
	log ports.Logger,
	handlerTimeout time.Duration,
) *Handler {
	return &Handler{
		lookup:         lookup,
		catalog:        catalog,
		tokens:         tokens,
		log:            log,
		handlerTimeout: handlerTimeout,
		tmpl:           template.Must(web.Templates()),
	}
}

// NewRouter — gin.Engine со всеми маршрутами.
// otelServiceName == "" → без otelgin.
func NewRouter(h *Handler, otelServiceName string, session httpx.SessionOptions) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestLogger(h.log))

	r.SetHTMLTemplate(h.tmpl)

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.StaticFS(staticPath, http.FS(web.Static()))

	// Виджет и поиск работают в рамках сессии: к ней привязан anti-forgery токен.
	widget := r.Group("", httpx.SessionMiddleware(session))
	widget.GET("/sales-table", h.salesTablePage)
	widget.GET("/sales-table/embed", h.salesTableEmbed)
	widget.POST(ajaxPath, h.ajax)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	return r
}
