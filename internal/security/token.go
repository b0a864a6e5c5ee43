package security

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Gunvolt24/sales_table/internal/domain"
	"github.com/Gunvolt24/sales_table/internal/ports"
)

// Проверка, что TokenManager удовлетворяет интерфейсу TokenManager.
var _ ports.TokenManager = (*TokenManager)(nil)

// DefaultTokenTTL — срок жизни токена по умолчанию.
const DefaultTokenTTL = 12 * time.Hour

// TokenManager — anti-forgery токены вида "<expires_unix>.<hex(hmac)>".
// HMAC-SHA256 считается от действия, ID сессии и срока действия.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager — конструктор. ttl <= 0 → DefaultTokenTTL.
func NewTokenManager(secret []byte, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenManager{secret: secret, ttl: ttl, now: time.Now}
}

// RandomSecret — случайный секрет (когда секрет не задан в конфигурации).
func RandomSecret() ([]byte, error) {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("random secret: %w", err)
	}
	return secret, nil
}

// Issue — выпускает токен для сессии и действия.
func (m *TokenManager) Issue(sessionID, action string) string {
	expires := m.now().Add(m.ttl).Unix()
	return strconv.FormatInt(expires, 10) + "." + hex.EncodeToString(m.sign(sessionID, action, expires))
}

// Verify — проверяет токен; любая проблема → domain.ErrForbidden с причиной.
func (m *TokenManager) Verify(sessionID, action, token string) error {
	if token == "" {
		return fmt.Errorf("%w: token is missing", domain.ErrForbidden)
	}
	if sessionID == "" {
		return fmt.Errorf("%w: session is missing", domain.ErrForbidden)
	}

	rawExpires, rawMAC, ok := strings.Cut(token, ".")
	if !ok {
		return fmt.Errorf("%w: malformed token", domain.ErrForbidden)
	}
	expires, err := strconv.ParseInt(rawExpires, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: malformed token expiry", domain.ErrForbidden)
	}
	got, err := hex.DecodeString(rawMAC)
	if err != nil {
		return fmt.Errorf("%w: malformed token signature", domain.ErrForbidden)
	}

	// Сравнение за константное время.
	if subtle.ConstantTimeCompare(got, m.sign(sessionID, action, expires)) != 1 {
		return fmt.Errorf("%w: token signature mismatch", domain.ErrForbidden)
	}
	if m.now().Unix() > expires {
		return fmt.Errorf("%w: token expired", domain.ErrForbidden)
	}
	return nil
}

func (m *TokenManager) sign(sessionID, action string, expires int64) []byte {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(action))
	mac.Write([]byte{0})
	mac.Write([]byte(sessionID))
	mac.Write([]byte{0})
	mac.Write([]byte(strconv.FormatInt(expires, 10)))
	return mac.Sum(nil)
}
