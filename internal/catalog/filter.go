package catalog

import (
	"sort"
	"strings"
)

type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortPopular   SortKey = "popular"
	SortRating    SortKey = "rating"
)

// CategoryAll is the wildcard category selector.
const CategoryAll = "All"

const DefaultPageSize = 12

// Filter drives a single Query invocation. MaxPrice <= 0 means no upper
// bound so the zero value filters nothing out on price.
type Filter struct {
	Search   string
	Category string
	MinPrice float64
	MaxPrice float64
	Sort     SortKey
}

type Page struct {
	Items      []Product `json:"items"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	TotalPages int       `json:"total_pages"`
}

// Query filters, sorts and paginates products. It is pure: the input slice
// is never mutated and identical inputs yield identical pages. The input is
// expected to arrive ordered newest-first, which makes SortNewest a
// pass-through; ties under every other key keep their input order so
// pagination stays reproducible.
func Query(products []Product, f Filter, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if f.matches(p) {
			filtered = append(filtered, p)
		}
	}
	sortProducts(filtered, f.Sort)

	total := len(filtered)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	items := []Product{}
	if start < total {
		end := start + pageSize
		if end > total {
			end = total
		}
		items = filtered[start:end]
	}

	return Page{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

func (f Filter) matches(p Product) bool {
	return f.matchesSearch(p) && f.matchesCategory(p) && f.matchesPrice(p)
}

func (f Filter) matchesSearch(p Product) bool {
	q := strings.ToLower(strings.TrimSpace(f.Search))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Name), q) {
		return true
	}
	if p.Description != nil && strings.Contains(strings.ToLower(*p.Description), q) {
		return true
	}
	return strings.Contains(strings.ToLower(p.Category), q)
}

func (f Filter) matchesCategory(p Product) bool {
	if f.Category == "" || f.Category == CategoryAll {
		return true
	}
	return p.Category == f.Category
}

func (f Filter) matchesPrice(p Product) bool {
	if p.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && p.Price > f.MaxPrice {
		return false
	}
	return true
}

func sortProducts(products []Product, key SortKey) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortPopular:
		sort.SliceStable(products, func(i, j int) bool {
			return reviewsOf(products[i]) > reviewsOf(products[j])
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return ratingOf(products[i]) > ratingOf(products[j])
		})
	default:
		// SortNewest: input order is already created_at descending.
	}
}

func reviewsOf(p Product) int {
	if p.ReviewsCount == nil {
		return 0
	}
	return *p.ReviewsCount
}

func ratingOf(p Product) float64 {
	if p.Rating == nil {
		return 0
	}
	return *p.Rating
}

// ParseSortKey maps a query-string value onto a known sort key, defaulting
// to newest.
func ParseSortKey(raw string) SortKey {
	switch SortKey(raw) {
	case SortPriceLow, SortPriceHigh, SortPopular, SortRating:
		return SortKey(raw)
	default:
		return SortNewest
	}
}
