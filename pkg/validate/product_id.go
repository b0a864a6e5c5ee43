package validate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Gunvolt24/sales_table/internal/domain"
)

// ParseProductID — разбирает product_id из запроса.
// Пустое, нечисловое или неположительное значение → domain.ErrInvalidProduct (с обёрнутой причиной).
func ParseProductID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: product_id обязателен", domain.ErrInvalidProduct)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: product_id=%q не число", domain.ErrInvalidProduct, raw)
	}
	if id <= 0 {
		return 0, fmt.Errorf("%w: product_id=%d должен быть > 0", domain.ErrInvalidProduct, id)
	}
	return id, nil
}

// ParseProductIDList — разбирает атрибут products ("3, 7,12").
// restricted=false — атрибут пуст, фильтр не нужен.
// Некорректные элементы пропускаются; при restricted=true и пустом ids список товаров пуст.
func ParseProductIDList(raw string) (ids []int64, restricted bool) {
	if strings.TrimSpace(raw) == "" {
		return nil, false
	}

	seen := make(map[int64]struct{})
	for _, part := range strings.Split(raw, ",") {
		id, err := ParseProductID(part)
		if err != nil {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, true
}
