package domain

// DateLayout is the wire format for order and user dates.
const DateLayout = "2006-01-02"

// OrderStatus is one of the five order lifecycle states.
type OrderStatus string

const (
	StatusPending    OrderStatus = "Beklemede"
	StatusProcessing OrderStatus = "İşleniyor"
	StatusShipped    OrderStatus = "Kargoya Verildi"
	StatusCompleted  OrderStatus = "Tamamlandı"
	StatusCancelled  OrderStatus = "İptal Edildi"
)

// OrderStatuses lists the known states in lifecycle order.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		StatusPending,
		StatusProcessing,
		StatusShipped,
		StatusCompleted,
		StatusCancelled,
	}
}

// ValidStatus reports whether s is one of the enumerated states.
func ValidStatus(s OrderStatus) bool {
	for _, known := range OrderStatuses() {
		if s == known {
			return true
		}
	}
	return false
}

// OrderItem is an immutable value snapshot of a purchased product line.
// It references the product by id but never reads it back, so historical
// orders stay stable when the catalog changes.
type OrderItem struct {
	ProductID int     `json:"id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Order represents a placed order. Only Status is mutable after creation.
type Order struct {
	ID            int         `json:"id"`
	CustomerName  string      `json:"customerName"`
	CustomerEmail string      `json:"customerEmail"`
	Date          string      `json:"date"`
	Status        OrderStatus `json:"status"`
	Total         float64     `json:"total"`
	Items         []OrderItem `json:"items"`
	Address       string      `json:"address"`
	PaymentMethod string      `json:"paymentMethod"`
}
