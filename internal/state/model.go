package state

import (
	"time"

	"luxestore-be/internal/catalog"
)

// Snapshot is a copy of a product's display fields taken at insertion time.
// Wishlist, comparison and recently-viewed entries deliberately hold
// snapshots rather than live references: later catalog changes do not leak
// into stored entries. Optional catalog fields collapse to zero values.
type Snapshot struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"original_price,omitempty"`
	ImageURL      string  `json:"image_url,omitempty"`
	Category      string  `json:"category"`
	Rating        float64 `json:"rating,omitempty"`
	ReviewsCount  int     `json:"reviews_count,omitempty"`
	Badge         string  `json:"badge,omitempty"`
	Stock         int     `json:"stock"`
}

// SnapshotOf copies the product, dereferencing optional fields so the
// snapshot shares no memory with the source.
func SnapshotOf(p catalog.Product) Snapshot {
	s := Snapshot{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Category: p.Category,
		Stock:    p.Stock,
	}
	if p.OriginalPrice != nil {
		s.OriginalPrice = *p.OriginalPrice
	}
	if p.ImageURL != nil {
		s.ImageURL = *p.ImageURL
	}
	if p.Rating != nil {
		s.Rating = *p.Rating
	}
	if p.ReviewsCount != nil {
		s.ReviewsCount = *p.ReviewsCount
	}
	if p.Badge != nil {
		s.Badge = *p.Badge
	}
	return s
}

// Variant is the selected color/size descriptor on a cart line.
type Variant struct {
	Color string `json:"color,omitempty"`
	Size  string `json:"size,omitempty"`
}

type CartLine struct {
	Product  Snapshot `json:"product"`
	Quantity int      `json:"quantity"`
	Variant  *Variant `json:"selectedVariant,omitempty"`
}

type RecentEntry struct {
	Snapshot
	ViewedAt int64 `json:"viewedAt"` // unix milliseconds
}

func newRecentEntry(p catalog.Product, viewedAt time.Time) RecentEntry {
	return RecentEntry{Snapshot: SnapshotOf(p), ViewedAt: viewedAt.UnixMilli()}
}

func copyVariant(v *Variant) *Variant {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
