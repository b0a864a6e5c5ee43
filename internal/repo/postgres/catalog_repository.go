package postgres

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/sales_table/internal/domain"
	"github.com/Gunvolt24/sales_table/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что CatalogRepository удовлетворяет интерфейсу CatalogReader.
var _ ports.CatalogReader = (*CatalogRepository)(nil)

// ProductStatusPublished — статус опубликованного товара.
const ProductStatusPublished = "publish"

// CatalogRepository — каталог товаров на Postgres (pgxpool).
type CatalogRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository - конструктор CatalogRepository.
func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

// ListPublished — опубликованные товары, отсортированные по названию (ASC).
// Пустой ids — без фильтра по ID.
func (r *CatalogRepository) ListPublished(ctx context.Context, ids []int64) ([]domain.Product, error) {
	var (
		rows pgx.Rows
		err  error
	)

	if len(ids) == 0 {
		rows, err = r.pool.Query(ctx, `
			SELECT id, title
			FROM products
			WHERE status = $1
			ORDER BY title ASC, id ASC
		`, ProductStatusPublished)
	} else {
		rows, err = r.pool.Query(ctx, `
			SELECT id, title
			FROM products
			WHERE status = $1 AND id = ANY($2::bigint[])
			ORDER BY title ASC, id ASC
		`, ProductStatusPublished, ids)
	}
	if err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}

	products, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Product, error) {
		var p domain.Product
		err := row.Scan(&p.ID, &p.Title)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan products: %w", err)
	}
	return products, nil
}
