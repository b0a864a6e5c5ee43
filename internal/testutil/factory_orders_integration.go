//go:build integration

package testutil

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/sales_table/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InsertProduct — товар в каталоге; status "publish" или "draft".
func InsertProduct(ctx context.Context, pool *pgxpool.Pool, title, status string) (int64, error) {
	var id int64
	err := pool.QueryRow(ctx,
		`INSERT INTO products (title, status) VALUES ($1, $2) RETURNING id`, title, status,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert product: %w", err)
	}
	return id, nil
}

// MakeOrder — мини-генератор заказа (без позиций; позиции — через WithItem).
func MakeOrder(opts ...func(*domain.Order)) domain.Order {
	o := domain.Order{
		BillingFirstName:   "John",
		BillingLastName:    "Smith",
		PaymentMethodTitle: "Direct bank transfer",
		Status:             domain.StatusProcessing,
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

func WithGuest() func(*domain.Order) {
	return func(o *domain.Order) {
		o.BillingFirstName = ""
		o.BillingLastName = ""
	}
}

func WithPaymentMethod(title string) func(*domain.Order) {
	return func(o *domain.Order) { o.PaymentMethodTitle = title }
}

func WithStatus(status string) func(*domain.Order) {
	return func(o *domain.Order) { o.Status = status }
}

func WithItem(productID int64, qty int) func(*domain.Order) {
	return func(o *domain.Order) {
		o.Items = append(o.Items, domain.LineItem{ProductID: productID, Quantity: qty})
	}
}

// InsertOrder — транзакционно сохраняет заказ с позициями; возвращает ID заказа.
// Позиции вставляются через COPY (CopyFromRows).
func InsertOrder(ctx context.Context, pool *pgxpool.Pool, order *domain.Order) (int64, error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id int64
	if err := tx.QueryRow(ctx, `
		INSERT INTO orders (status, billing_first_name, billing_last_name, payment_method_title)
		VALUES ($1, $2, $3, $4) RETURNING id
	`, order.Status, order.BillingFirstName, order.BillingLastName, order.PaymentMethodTitle).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}

	rows := make([][]any, 0, len(order.Items))
	for _, item := range order.Items {
		rows = append(rows, []any{id, "line_item", item.ProductID, item.Quantity})
	}
	if len(rows) > 0 {
		if _, err := tx.CopyFrom(ctx,
			pgx.Identifier{"order_items"},
			[]string{"order_id", "item_type", "product_id", "quantity"},
			pgx.CopyFromRows(rows),
		); err != nil {
			return 0, fmt.Errorf("copy items: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	order.ID = id
	return id, nil
}
