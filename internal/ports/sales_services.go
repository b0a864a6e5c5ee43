package ports

import (
	"context"

	"github.com/Gunvolt24/sales_table/internal/domain"
)

// OrderLookupService — поиск строк заказов по товару.
type OrderLookupService interface {
	LookupOrdersForProduct(ctx context.Context, productID int64) ([]domain.OrderSummary, error)
}

// ProductCatalogService — товары для выпадающего списка виджета.
type ProductCatalogService interface {
	DropdownProducts(ctx context.Context, productsAttr string) ([]domain.Product, error)
}
