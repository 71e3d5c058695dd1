package catalog

import "time"

// Product is a catalog entry. Catalog fields are owned by the database and
// never mutated by the storefront core; optional columns map to pointers.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	OriginalPrice *float64  `json:"original_price,omitempty"`
	ImageURL      *string   `json:"image_url,omitempty"`
	Category      string    `json:"category"`
	Rating        *float64  `json:"rating,omitempty"`
	ReviewsCount  *int      `json:"reviews_count,omitempty"`
	Badge         *string   `json:"badge,omitempty"`
	Stock         int       `json:"stock"`
	Description   *string   `json:"description,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
