package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Gunvolt24/sales_table/internal/domain"
	"github.com/Gunvolt24/sales_table/internal/ports"
	"github.com/Gunvolt24/sales_table/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

// Проверка, что OrderLookupService удовлетворяет интерфейсу транспортного слоя.
var _ ports.OrderLookupService = (*OrderLookupService)(nil)

const (
	// GuestCustomerName — имя покупателя, если в заказе нет ни имени, ни фамилии.
	GuestCustomerName = "Guest"
	// NoPaymentMethod — способ оплаты, если в заказе он не указан.
	NoPaymentMethod = "N/A"

	defaultLoadConcurrency = 4
)

// OrderLookupService — поиск строк заказов по товару (без знаний о транспорте).
type OrderLookupService struct {
	orders          ports.OrderReader      // хранилище заказов
	statuses        ports.StatusVocabulary // словарь статусов
	log             ports.Logger
	loadConcurrency int // сколько заказов загружаем параллельно
}

// NewOrderLookupService — DI-конструктор. loadConcurrency <= 0 → значение по умолчанию.
func NewOrderLookupService(
	orders ports.OrderReader,
	statuses ports.StatusVocabulary,
	log ports.Logger,
	loadConcurrency int,
) *OrderLookupService {
	if loadConcurrency <= 0 {
		loadConcurrency = defaultLoadConcurrency
	}
	return &OrderLookupService{
		orders:          orders,
		statuses:        statuses,
		log:             log,
		loadConcurrency: loadConcurrency,
	}
}

// LookupOrdersForProduct — все позиции заказов с товаром productID.
// Шаги:
//  1. productID <= 0 → domain.ErrInvalidProduct, к хранилищу не обращаемся;
//  2. уникальные ID заказов из индекса позиций;
//  3. загрузка каждого заказа; незагружаемый заказ пропускается (не ошибка);
//  4. одна запись на каждую позицию с нашим товаром.
//
// Порядок: порядок обнаружения заказов, внутри заказа — порядок позиций.
func (s *OrderLookupService) LookupOrdersForProduct(ctx context.Context, productID int64) ([]domain.OrderSummary, error) {
	if productID <= 0 {
		return nil, fmt.Errorf("%w: product_id=%d", domain.ErrInvalidProduct, productID)
	}

	start := time.Now()
	orderIDs, err := s.orders.OrderIDsByProduct(ctx, productID)
	if err != nil {
		s.log.Errorf(ctx, "orders.OrderIDsByProduct failed product_id=%d err=%v", productID, err)
		return nil, fmt.Errorf("find orders by product: %w", err)
	}

	summaries := make([]domain.OrderSummary, 0, len(orderIDs))
	if len(orderIDs) == 0 {
		return summaries, nil
	}

	loaded, err := s.loadOrders(ctx, orderIDs)
	if err != nil {
		return nil, err
	}

	for _, order := range loaded {
		if order == nil {
			continue
		}
		summaries = append(summaries, s.summarize(order, productID)...)
	}

	s.log.Infof(ctx, "lookup product_id=%d orders=%d records=%d took=%s",
		productID, len(orderIDs), len(summaries), time.Since(start))
	return summaries, nil
}

// loadOrders — параллельная загрузка заказов с ограничением;
// результат по индексу сохраняет порядок orderIDs, пропущенные заказы — nil.
func (s *OrderLookupService) loadOrders(ctx context.Context, orderIDs []int64) ([]*domain.Order, error) {
	loaded := make([]*domain.Order, len(orderIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.loadConcurrency)

	for i, orderID := range orderIDs {
		g.Go(func() error {
			order, err := s.orders.GetByID(gctx, orderID)
			switch {
			case err == nil && order != nil:
				loaded[i] = order
			case gctx.Err() != nil:
				return gctx.Err()
			case err == nil, errors.Is(err, domain.ErrOrderNotFound):
				metrics.LookupOrdersSkipped.Inc()
				s.log.Warnf(ctx, "order skipped order_id=%d: not found", orderID)
			default:
				// Временная ошибка по одному заказу не валит весь запрос.
				metrics.LookupOrdersSkipped.Inc()
				s.log.Warnf(ctx, "order skipped order_id=%d err=%v", orderID, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	return loaded, nil
}

// summarize — записи отчёта по позициям заказа с товаром productID.
func (s *OrderLookupService) summarize(order *domain.Order, productID int64) []domain.OrderSummary {
	var out []domain.OrderSummary
	for _, item := range order.Items {
		if item.ProductID != productID {
			continue
		}
		out = append(out, domain.OrderSummary{
			CustomerName:  customerName(order),
			Quantity:      item.Quantity,
			PaymentMethod: paymentMethod(order),
			Status:        s.statuses.Label(order.Status),
			OrderID:       order.ID,
		})
	}
	return out
}

func customerName(order *domain.Order) string {
	name := strings.TrimSpace(order.BillingFirstName + " " + order.BillingLastName)
	if name == "" {
		return GuestCustomerName
	}
	return name
}

func paymentMethod(order *domain.Order) string {
	if order.PaymentMethodTitle == "" {
		return NoPaymentMethod
	}
	return order.PaymentMethodTitle
}
