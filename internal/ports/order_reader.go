package ports

import (
	"context"

	"github.com/Gunvolt24/sales_table/internal/domain"
)

// OrderReader — доступ к хранилищу заказов (только чтение).
type OrderReader interface {
	// OrderIDsByProduct — уникальные ID заказов, в которых есть позиция с товаром productID.
	OrderIDsByProduct(ctx context.Context, productID int64) ([]int64, error)

	// GetByID — заказ целиком (позиции, плательщик, способ оплаты, статус).
	// Если заказа нет — domain.ErrOrderNotFound.
	GetByID(ctx context.Context, orderID int64) (*domain.Order, error)
}
