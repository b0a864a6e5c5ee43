package domain

import "strings"

// Коды статусов заказа.
const (
	StatusPending       = "pending"
	StatusProcessing    = "processing"
	StatusOnHold        = "on-hold"
	StatusCompleted     = "completed"
	StatusCancelled     = "cancelled"
	StatusRefunded      = "refunded"
	StatusFailed        = "failed"
	StatusCheckoutDraft = "checkout-draft"
)

// legacyStatusPrefix — префикс, с которым статусы лежат в старых хранилищах ("wc-processing").
const legacyStatusPrefix = "wc-"

// StatusVocabulary — словарь «код статуса → отображаемое название».
type StatusVocabulary map[string]string

// DefaultStatusVocabulary — встроенный словарь статусов.
func DefaultStatusVocabulary() StatusVocabulary {
	return StatusVocabulary{
		StatusPending:       "Pending payment",
		StatusProcessing:    "Processing",
		StatusOnHold:        "On hold",
		StatusCompleted:     "Completed",
		StatusCancelled:     "Cancelled",
		StatusRefunded:      "Refunded",
		StatusFailed:        "Failed",
		StatusCheckoutDraft: "Draft",
	}
}

// Label — название статуса; неизвестный код возвращается как есть.
func (v StatusVocabulary) Label(code string) string {
	key := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(code)), legacyStatusPrefix)
	if label, ok := v[key]; ok {
		return label
	}
	return code
}
