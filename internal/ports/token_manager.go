package ports

// TokenManager — выпуск и проверка anti-forgery токенов, привязанных к сессии и действию.
type TokenManager interface {
	Issue(sessionID, action string) string
	Verify(sessionID, action, token string) error
}
