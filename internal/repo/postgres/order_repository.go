package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/sales_table/internal/domain"
	"github.com/Gunvolt24/sales_table/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что OrderRepository удовлетворяет интерфейсу OrderReader.
var _ ports.OrderReader = (*OrderRepository)(nil)

// lineItemType — тип позиции «товар» (в order_items лежат ещё доставка, сборы и т.п.).
const lineItemType = "line_item"

// OrderRepository — чтение заказов из Postgres (pgxpool).
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository - конструктор OrderRepository.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository { return &OrderRepository{pool: pool} }

// OrderIDsByProduct — уникальные ID заказов с позицией-товаром productID (по возрастанию ID).
func (r *OrderRepository) OrderIDsByProduct(ctx context.Context, productID int64) ([]int64, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT order_id
		FROM order_items
		WHERE item_type = $1 AND product_id = $2
		ORDER BY order_id
	`, lineItemType, productID)
	if err != nil {
		return nil, fmt.Errorf("select order ids: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("scan order ids: %w", err)
	}
	return ids, nil
}

// GetByID — заказ с позициями-товарами. Если не нашли — domain.ErrOrderNotFound.
func (r *OrderRepository) GetByID(ctx context.Context, orderID int64) (*domain.Order, error) {
	var order domain.Order

	// orders (основная запись)
	err := r.pool.QueryRow(ctx, `
		SELECT id, status, billing_first_name, billing_last_name, payment_method_title
		FROM orders WHERE id = $1
	`, orderID).Scan(&order.ID, &order.Status, &order.BillingFirstName, &order.BillingLastName,
		&order.PaymentMethodTitle,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: order_id=%d", domain.ErrOrderNotFound, orderID)
	}
	if err != nil {
		return nil, fmt.Errorf("select order: %w", err)
	}

	// items (0..N), порядок — порядок добавления в заказ
	rows, err := r.pool.Query(ctx, `
		SELECT id, product_id, quantity
		FROM order_items
		WHERE order_id = $1 AND item_type = $2
		ORDER BY id
	`, orderID, lineItemType)
	if err != nil {
		return nil, fmt.Errorf("select items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.LineItem
		if err := rows.Scan(&item.ID, &item.ProductID, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		order.Items = append(order.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("items rows: %w", err)
	}

	return &order, nil
}
