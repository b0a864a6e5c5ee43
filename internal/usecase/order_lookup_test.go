package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Gunvolt24/sales_table/internal/domain"
	"github.com/Gunvolt24/sales_table/internal/ports/mocks"
	"github.com/Gunvolt24/sales_table/internal/usecase"
	"github.com/golang/mock/gomock"
)

const productID int64 = 7

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func newLookup(repo *mocks.MockOrderReader) *usecase.OrderLookupService {
	return usecase.NewOrderLookupService(repo, domain.DefaultStatusVocabulary(), noopLogger{}, 2)
}

func TestLookup_InvalidProduct_NoDataAccess(t *testing.T) {
	for _, id := range []int64{0, -1, -100} {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockOrderReader(ctrl)
		// Без EXPECT: любой вызов репозитория провалит тест.

		got, err := newLookup(repo).LookupOrdersForProduct(context.Background(), id)
		if !errors.Is(err, domain.ErrInvalidProduct) {
			t.Fatalf("id=%d: want ErrInvalidProduct, got %v", id, err)
		}
		if got != nil {
			t.Fatalf("id=%d: want nil result, got %+v", id, got)
		}
	}
}

func TestLookup_NoOrders_EmptyList(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockOrderReader(ctrl)

	repo.EXPECT().OrderIDsByProduct(gomock.Any(), productID).Return(nil, nil)

	got, err := newLookup(repo).LookupOrdersForProduct(context.Background(), productID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("want empty non-nil list, got %#v", got)
	}
}

func TestLookup_TwoItemsSameProduct_TwoRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockOrderReader(ctrl)

	order := &domain.Order{
		ID:                 10,
		BillingFirstName:   "Ann",
		BillingLastName:    "Lee",
		PaymentMethodTitle: "Card",
		Status:             domain.StatusCompleted,
		Items: []domain.LineItem{
			{ID: 1, ProductID: productID, Quantity: 1},
			{ID: 2, ProductID: 99, Quantity: 5},
			{ID: 3, ProductID: productID, Quantity: 3},
		},
	}

	repo.EXPECT().OrderIDsByProduct(gomock.Any(), productID).Return([]int64{10}, nil)
	repo.EXPECT().GetByID(gomock.Any(), int64(10)).Return(order, nil)

	got, err := newLookup(repo).LookupOrdersForProduct(context.Background(), productID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []domain.OrderSummary{
		{CustomerName: "Ann Lee", Quantity: 1, PaymentMethod: "Card", Status: "Completed", OrderID: 10},
		{CustomerName: "Ann Lee", Quantity: 3, PaymentMethod: "Card", Status: "Completed", OrderID: 10},
	}
	if len(got) != len(want) {
		t.Fatalf("want %d records, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("record %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestLookup_GuestAndNoPaymentMethod(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockOrderReader(ctrl)

	order := &domain.Order{
		ID:     1,
		Status: domain.StatusProcessing,
		Items:  []domain.LineItem{{ID: 1, ProductID: productID, Quantity: 2}},
	}

	repo.EXPECT().OrderIDsByProduct(gomock.Any(), productID).Return([]int64{1}, nil)
	repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(order, nil)

	got, err := newLookup(repo).LookupOrdersForProduct(context.Background(), productID)
	if err != nil || len(got) != 1 {
		t.Fatalf("want 1 record, got %+v err=%v", got, err)
	}
	want := domain.OrderSummary{
		CustomerName:  usecase.GuestCustomerName,
		Quantity:      2,
		PaymentMethod: usecase.NoPaymentMethod,
		Status:        "Processing",
		OrderID:       1,
	}
	if got[0] != want {
		t.Fatalf("got %+v, want %+v", got[0], want)
	}
}

func TestLookup_OnlyOneNamePart_Trimmed(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockOrderReader(ctrl)

	order := &domain.Order{
		ID:              2,
		BillingLastName: "Smith",
		Items:           []domain.LineItem{{ProductID: productID, Quantity: 1}},
	}

	repo.EXPECT().OrderIDsByProduct(gomock.Any(), productID).Return([]int64{2}, nil)
	repo.EXPECT().GetByID(gomock.Any(), int64(2)).Return(order, nil)

	got, err := newLookup(repo).LookupOrdersForProduct(context.Background(), productID)
	if err != nil || len(got) != 1 {
		t.Fatalf("want 1 record, got %+v err=%v", got, err)
	}
	if got[0].CustomerName != "Smith" {
		t.Fatalf("want trimmed name %q, got %q", "Smith", got[0].CustomerName)
	}
}

func TestLookup_SkipsMissingAndFailingOrders_KeepsOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockOrderReader(ctrl)

	mk := func(id int64, qty int) *domain.Order {
		return &domain.Order{
			ID:               id,
			BillingFirstName: "C",
			Status:           domain.StatusOnHold,
			Items:            []domain.LineItem{{ProductID: productID, Quantity: qty}},
		}
	}

	repo.EXPECT().OrderIDsByProduct(gomock.Any(), productID).Return([]int64{1, 2, 3, 4, 5}, nil)
	repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(mk(1, 1), nil)
	repo.EXPECT().GetByID(gomock.Any(), int64(2)).Return(nil, domain.ErrOrderNotFound)
	repo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(mk(3, 3), nil)
	repo.EXPECT().GetByID(gomock.Any(), int64(4)).Return(nil, errors.New("connection reset"))
	repo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(mk(5, 5), nil)

	got, err := newLookup(repo).LookupOrdersForProduct(context.Background(), productID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantIDs := []int64{1, 3, 5}
	if len(got) != len(wantIDs) {
		t.Fatalf("want %d records, got %+v", len(wantIDs), got)
	}
	for i, id := range wantIDs {
		if got[i].OrderID != id || got[i].Quantity != int(id) || got[i].Status != "On hold" {
			t.Fatalf("record %d: got %+v, want order_id=%d", i, got[i], id)
		}
	}
}

func TestLookup_IndexQueryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockOrderReader(ctrl)

	dbErr := errors.New("db down")
	repo.EXPECT().OrderIDsByProduct(gomock.Any(), productID).Return(nil, dbErr)

	_, err := newLookup(repo).LookupOrdersForProduct(context.Background(), productID)
	if !errors.Is(err, dbErr) {
		t.Fatalf("want wrapped db error, got %v", err)
	}
}

func TestLookup_UsesStatusVocabulary(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockOrderReader(ctrl)
	statuses := mocks.NewMockStatusVocabulary(ctrl)

	order := &domain.Order{ID: 4, Status: "wc-custom", Items: []domain.LineItem{{ProductID: productID, Quantity: 1}}}

	repo.EXPECT().OrderIDsByProduct(gomock.Any(), productID).Return([]int64{4}, nil)
	repo.EXPECT().GetByID(gomock.Any(), int64(4)).Return(order, nil)
	statuses.EXPECT().Label("wc-custom").Return("Custom")

	svc := usecase.NewOrderLookupService(repo, statuses, noopLogger{}, 0)
	got, err := svc.LookupOrdersForProduct(context.Background(), productID)
	if err != nil || len(got) != 1 || got[0].Status != "Custom" {
		t.Fatalf("want status label Custom, got %+v err=%v", got, err)
	}
}

func TestLookup_CanceledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockOrderReader(ctrl)

	ctx, cancel := context.WithCancel(context.Background())

	repo.EXPECT().OrderIDsByProduct(gomock.Any(), productID).Return([]int64{1}, nil)
	repo.EXPECT().GetByID(gomock.Any(), int64(1)).DoAndReturn(func(context.Context, int64) (*domain.Order, error) {
		cancel()
		return nil, context.Canceled
	})

	_, err := newLookup(repo).LookupOrdersForProduct(ctx, productID)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}
