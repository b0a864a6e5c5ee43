package usecase

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/sales_table/internal/domain"
	"github.com/Gunvolt24/sales_table/internal/ports"
	"github.com/Gunvolt24/sales_table/pkg/validate"
)

var _ ports.ProductCatalogService = (*ProductCatalogService)(nil)

// ProductCatalogService — товары для выпадающего списка виджета.
type ProductCatalogService struct {
	catalog ports.CatalogReader
	log     ports.Logger
}

// NewProductCatalogService — DI-конструктор.
func NewProductCatalogService(catalog ports.CatalogReader, log ports.Logger) *ProductCatalogService {
	return &ProductCatalogService{catalog: catalog, log: log}
}

// DropdownProducts — опубликованные товары по названию.
// productsAttr — атрибут products виджета ("3,7"); пустой — все товары.
func (s *ProductCatalogService) DropdownProducts(ctx context.Context, productsAttr string) ([]domain.Product, error) {
	ids, restricted := validate.ParseProductIDList(productsAttr)
	if restricted && len(ids) == 0 {
		s.log.Warnf(ctx, "products attribute has no valid ids: %q", productsAttr)
		return []domain.Product{}, nil
	}

	products, err := s.catalog.ListPublished(ctx, ids)
	if err != nil {
		s.log.Errorf(ctx, "catalog.ListPublished failed ids=%v err=%v", ids, err)
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}
