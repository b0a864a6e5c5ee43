package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/Gunvolt24/sales_table/internal/domain"
	"github.com/Gunvolt24/sales_table/pkg/ctxmeta"
	"github.com/Gunvolt24/sales_table/pkg/metrics"
	"github.com/Gunvolt24/sales_table/pkg/validate"
	"github.com/gin-gonic/gin"
)

// Сообщения ответов POST /ajax.
const (
	MessageUnknownAction  = "unknown action"
	MessageInvalidToken   = "Invalid security token"
	MessageInvalidProduct = "Invalid product ID"
	MessageInternalError  = "internal server error"
)

// ajaxResponse — конверт ответа: {"success": bool, "data": ...}.
type ajaxResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type ordersPayload struct {
	Orders []domain.OrderSummary `json:"orders"`
}

type messagePayload struct {
	Message string `json:"message"`
}

// POST /ajax (form: action, product_id, nonce).
// Порядок проверок: action → токен → product_id → поиск.
func (h *Handler) ajax(c *gin.Context) {
	ctx := c.Request.Context()

	action := c.PostForm("action")
	if action != ActionGetProductOrders {
		h.log.Warnf(ctx, "ajax: unknown action=%q", action)
		fail(c, http.StatusBadRequest, MessageUnknownAction)
		return
	}

	sessionID, _ := ctxmeta.SessionIDFromContext(ctx)
	if err := h.tokens.Verify(sessionID, action, c.PostForm("nonce")); err != nil {
		h.log.Warnf(ctx, "ajax: token rejected err=%v", err)
		metrics.LookupRequests.WithLabelValues(metrics.ResultForbidden).Inc()
		fail(c, http.StatusForbidden, MessageInvalidToken)
		return
	}

	productID, err := validate.ParseProductID(c.PostForm("product_id"))
	if err != nil {
		h.invalidProduct(c, err)
		return
	}

	if h.handlerTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.handlerTimeout)
		defer cancel()
	}

	orders, err := h.lookup.LookupOrdersForProduct(ctx, productID)
	switch {
	case errors.Is(err, domain.ErrInvalidProduct):
		h.invalidProduct(c, err)
		return
	case err != nil:
		h.log.Errorf(ctx, "ajax: lookup failed product_id=%d err=%v", productID, err)
		metrics.LookupRequests.WithLabelValues(metrics.ResultError).Inc()
		fail(c, http.StatusInternalServerError, MessageInternalError)
		return
	}

	if orders == nil {
		orders = []domain.OrderSummary{}
	}
	metrics.LookupRequests.WithLabelValues(metrics.ResultOK).Inc()
	metrics.LookupRecords.Observe(float64(len(orders)))

	c.JSON(http.StatusOK, ajaxResponse{Success: true, Data: ordersPayload{Orders: orders}})
}

// Ошибка валидации — прикладной отказ: HTTP 200 и success=false.
func (h *Handler) invalidProduct(c *gin.Context, err error) {
	h.log.Infof(c.Request.Context(), "ajax: %v", err)
	metrics.LookupRequests.WithLabelValues(metrics.ResultInvalid).Inc()
	fail(c, http.StatusOK, MessageInvalidProduct)
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, ajaxResponse{Success: false, Data: messagePayload{Message: message}})
}
