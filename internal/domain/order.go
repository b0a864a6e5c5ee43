package domain

// Order — заказ из системы управления заказами (только чтение).
type Order struct {
	ID                 int64      `json:"id"`
	BillingFirstName   string     `json:"billing_first_name"`
	BillingLastName    string     `json:"billing_last_name"`
	PaymentMethodTitle string     `json:"payment_method_title"`
	Status             string     `json:"status"`
	Items              []LineItem `json:"items"`
}

// LineItem — позиция заказа: ссылка на товар и количество (> 0).
type LineItem struct {
	ID        int64 `json:"id"`
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// OrderSummary — строка отчёта: одна запись на каждую подходящую позицию заказа.
// Собирается на каждый запрос заново, нигде не хранится.
type OrderSummary struct {
	CustomerName  string `json:"customer_name"`
	Quantity      int    `json:"quantity"`
	PaymentMethod string `json:"payment_method"`
	Status        string `json:"status"`
	OrderID       int64  `json:"order_id"`
}
