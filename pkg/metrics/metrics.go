package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Результаты запроса поиска (label "result").
const (
	ResultOK        = "ok"
	ResultInvalid   = "invalid"
	ResultForbidden = "forbidden"
	ResultError     = "error"
)

var (
	LookupRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sales_lookup_requests_total",
			Help: "Number of order lookup requests by result",
		},
		[]string{"result"}, // ok|invalid|forbidden|error
	)
	LookupRecords = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sales_lookup_records",
			Help:    "Number of order summary records returned per lookup",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
		},
	)
	LookupOrdersSkipped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sales_lookup_orders_skipped_total",
			Help: "Orders referenced by line items that could not be loaded",
		},
	)
)

var (
	WidgetRenders = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sales_widget_renders_total",
			Help: "Number of rendered sales table widgets",
		},
		[]string{"mode"}, // page|embed
	)
)

var registerOnce sync.Once

// MustRegister — регистрирует метрики в глобальном реестре (повторный вызов безопасен).
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(LookupRequests, LookupRecords, LookupOrdersSkipped, WidgetRenders)
	})
}
