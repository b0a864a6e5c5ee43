package ports

import (
	"context"

	"github.com/Gunvolt24/sales_table/internal/domain"
)

// CatalogReader — доступ к каталогу товаров.
type CatalogReader interface {
	// ListPublished — опубликованные товары по названию (ASC).
	// Пустой ids — без фильтра, иначе только товары из набора.
	ListPublished(ctx context.Context, ids []int64) ([]domain.Product, error)
}
