package order

import (
	"time"

	"luxestore-be/internal/state"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusShipped Status = "shipped"
)

type Order struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Status    Status    `json:"status"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"created_at"`
	Items     []Item    `json:"items"`
}

// Item freezes the line at purchase time: name and unit price are copied
// from the cart snapshot, not joined back to the catalog.
type Item struct {
	ID        string         `json:"id"`
	OrderID   string         `json:"order_id"`
	ProductID string         `json:"product_id"`
	Name      string         `json:"name"`
	UnitPrice float64        `json:"unit_price"`
	Quantity  int            `json:"quantity"`
	Variant   *state.Variant `json:"variant,omitempty"`
}
