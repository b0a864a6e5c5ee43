// Package selector — клиентская сторона виджета: выбор товара и таблица заказов
// как конечный автомат Idle → Loading → Populated | Empty | Error.
package selector

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/Gunvolt24/sales_table/internal/domain"
)

// State — состояние виджета.
type State int

const (
	Idle State = iota
	Loading
	Populated
	Empty
	Error
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Populated:
		return "populated"
	case Empty:
		return "empty"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText — состояние в JSON строкой ("populated"), а не числом.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Тексты, которые видит пользователь.
const (
	MessageSelectProduct = "Please select a product to view orders."
	MessageLoading       = "Loading..."
	MessageNoOrders      = "No orders found for this product."
	MessageLoadError     = "Error loading orders. Please try again."
)

var (
	// ErrTransport — запрос не дошёл или ответ не разобран (сеть, HTTP-статус, JSON).
	ErrTransport = errors.New("transport error")

	// ErrRejected — сервер ответил success=false (прикладной отказ).
	ErrRejected = errors.New("lookup rejected")
)

// Row — строка таблицы: четыре ячейки в фиксированном порядке и токен статуса.
type Row struct {
	CustomerName  string `json:"customer_name"`
	Quantity      int    `json:"quantity"`
	PaymentMethod string `json:"payment_method"`
	Status        string `json:"status"`
	StatusToken   string `json:"status_token"`
}

// Cells — ячейки строки: имя, количество, способ оплаты, статус.
func (r Row) Cells() []string {
	return []string{r.CustomerName, strconv.Itoa(r.Quantity), r.PaymentMethod, r.Status}
}

// View — что показывает виджет.
type View struct {
	State     State  `json:"state"`
	ProductID string `json:"product_id,omitempty"`
	Rows      []Row  `json:"rows,omitempty"`
	Message   string `json:"message,omitempty"`
}

// Lookuper — источник записей по товару (обычно HTTPClient).
type Lookuper interface {
	Lookup(ctx context.Context, productID string) ([]domain.OrderSummary, error)
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// StatusToken — статус в нижнем регистре, серии пробелов заменены одним дефисом
// ("On hold" → "on-hold").
func StatusToken(status string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(status), "-")
}

// Selector — автомат виджета. Каждый выбор увеличивает поколение запроса;
// ответ устаревшего поколения отбрасывается и не перетирает более новый выбор.
type Selector struct {
	lookup Lookuper

	mu         sync.Mutex
	generation uint64
	view       View
}

// New — автомат в состоянии Idle.
func New(lookup Lookuper) *Selector {
	return &Selector{lookup: lookup, view: idleView()}
}

// View — текущее представление.
func (s *Selector) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// Select — пользователь выбрал товар (пустая строка — вернулся к заглушке).
// Возвращает представление после обработки; если за время запроса был сделан
// новый выбор, результат отбрасывается и возвращается текущее представление.
func (s *Selector) Select(ctx context.Context, productID string) View {
	productID = strings.TrimSpace(productID)

	s.mu.Lock()
	s.generation++
	gen := s.generation
	if productID == "" {
		s.view = idleView()
		v := s.view
		s.mu.Unlock()
		return v
	}
	s.view = View{State: Loading, ProductID: productID, Message: MessageLoading}
	s.mu.Unlock()

	orders, err := s.lookup.Lookup(ctx, productID)
	next := resolve(productID, orders, err)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return s.view
	}
	s.view = next
	return next
}

func idleView() View {
	return View{State: Idle, Message: MessageSelectProduct}
}

// resolve — переход из Loading по результату запроса.
func resolve(productID string, orders []domain.OrderSummary, err error) View {
	switch {
	case errors.Is(err, ErrRejected):
		return View{State: Empty, ProductID: productID, Message: MessageNoOrders}
	case err != nil:
		return View{State: Error, ProductID: productID, Message: MessageLoadError}
	case len(orders) == 0:
		return View{State: Empty, ProductID: productID, Message: MessageNoOrders}
	}

	rows := make([]Row, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, Row{
			CustomerName:  o.CustomerName,
			Quantity:      o.Quantity,
			PaymentMethod: o.PaymentMethod,
			Status:        o.Status,
			StatusToken:   StatusToken(o.Status),
		})
	}
	return View{State: Populated, ProductID: productID, Rows: rows}
}
