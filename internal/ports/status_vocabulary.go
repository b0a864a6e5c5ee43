package ports

// StatusVocabulary — код статуса заказа → отображаемое название.
type StatusVocabulary interface {
	Label(code string) string
}
