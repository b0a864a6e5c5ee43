package domain

// Product — товар каталога (только чтение, владелец — внешний каталог).
type Product struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}
