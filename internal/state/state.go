package state

import (
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"luxestore-be/internal/catalog"
	"luxestore-be/internal/kvstore"
	"luxestore-be/internal/logger"
	"luxestore-be/internal/metrics"
)

const (
	// storeName matches the blob key the original storefront persisted under.
	storeName = "luxestore-storage"

	maxRecentlyViewed = 10
)

// persistedState is the durable JSON shape of the main store blob.
type persistedState struct {
	Cart             []CartLine    `json:"cart"`
	Wishlist         []Snapshot    `json:"wishlist"`
	RecentlyViewed   []RecentEntry `json:"recentlyViewed"`
	SearchQuery      string        `json:"searchQuery"`
	SelectedCategory string        `json:"selectedCategory"`
}

// Store is the single source of truth for user-local commerce state: cart,
// wishlist, recently-viewed, and the two legacy filter fields. Every
// mutation writes the whole blob through to the adapter. A write failure is
// logged and counted; the in-memory state stays authoritative. The mutex
// makes each operation atomic for callers sharing one handle.
type Store struct {
	mu sync.Mutex
	kv kvstore.Store

	cart             []CartLine
	wishlist         []Snapshot
	recentlyViewed   []RecentEntry
	searchQuery      string
	selectedCategory string
}

// NewStore rehydrates from the adapter. A missing or malformed blob never
// fails construction: the store starts empty.
func NewStore(kv kvstore.Store) *Store {
	s := &Store{
		kv:               kv,
		selectedCategory: catalog.CategoryAll,
	}

	data, ok, err := kv.Load(storeName)
	if err != nil {
		logger.L().Warn("failed to load commerce state, starting empty", zap.Error(err))
		return s
	}
	if !ok {
		return s
	}

	var saved persistedState
	if err := json.Unmarshal(data, &saved); err != nil {
		logger.L().Warn("malformed commerce state blob, starting empty", zap.Error(err))
		return s
	}

	s.cart = saved.Cart
	s.wishlist = saved.Wishlist
	s.recentlyViewed = saved.RecentlyViewed
	s.searchQuery = saved.SearchQuery
	if saved.SelectedCategory != "" {
		s.selectedCategory = saved.SelectedCategory
	}
	return s
}

// AddToCart merges by product id: an existing line gains quantity 1, a new
// product appends a fresh line with quantity 1.
func (s *Store) AddToCart(p catalog.Product, variant *Variant) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].Product.ID == p.ID {
			s.cart[i].Quantity++
			s.persist()
			return
		}
	}

	s.cart = append(s.cart, CartLine{
		Product:  SnapshotOf(p),
		Quantity: 1,
		Variant:  copyVariant(variant),
	})
	s.persist()
}

func (s *Store) RemoveFromCart(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeCartLine(productID)
	s.persist()
}

// UpdateCartQuantity clamps to zero; a zero quantity removes the line.
func (s *Store) UpdateCartQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeCartLine(productID)
		s.persist()
		return
	}

	for i := range s.cart {
		if s.cart[i].Product.ID == productID {
			s.cart[i].Quantity = quantity
			break
		}
	}
	s.persist()
}

func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = nil
	s.persist()
}

func (s *Store) removeCartLine(productID string) {
	kept := s.cart[:0]
	for _, line := range s.cart {
		if line.Product.ID != productID {
			kept = append(kept, line)
		}
	}
	s.cart = kept
}

// ToggleWishlist flips membership for the product id.
func (s *Store) ToggleWishlist(p catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.wishlist {
		if s.wishlist[i].ID == p.ID {
			s.wishlist = append(s.wishlist[:i], s.wishlist[i+1:]...)
			s.persist()
			return
		}
	}

	s.wishlist = append(s.wishlist, SnapshotOf(p))
	s.persist()
}

func (s *Store) IsInWishlist(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.wishlist {
		if s.wishlist[i].ID == productID {
			return true
		}
	}
	return false
}

// AddToRecentlyViewed moves the product to the front with a fresh
// timestamp, deduplicating by id and keeping the 10 most recent.
func (s *Store) AddToRecentlyViewed(p catalog.Product, viewedAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]RecentEntry, 0, len(s.recentlyViewed)+1)
	kept = append(kept, newRecentEntry(p, viewedAt))
	for _, e := range s.recentlyViewed {
		if e.ID != p.ID {
			kept = append(kept, e)
		}
	}
	if len(kept) > maxRecentlyViewed {
		kept = kept[:maxRecentlyViewed]
	}
	s.recentlyViewed = kept
	s.persist()
}

func (s *Store) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.searchQuery = query
	s.persist()
}

func (s *Store) SetSelectedCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selectedCategory = category
	s.persist()
}

func (s *Store) SearchQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchQuery
}

func (s *Store) SelectedCategory() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedCategory
}

// CartTotal sums price times quantity over all lines.
func (s *Store) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, line := range s.cart {
		total += line.Product.Price * float64(line.Quantity)
	}
	return total
}

// CartCount sums quantities over all lines.
func (s *Store) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	for _, line := range s.cart {
		count += line.Quantity
	}
	return count
}

// Cart returns a copy of the cart lines.
func (s *Store) Cart() []CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]CartLine, len(s.cart))
	copy(out, s.cart)
	for i := range out {
		out[i].Variant = copyVariant(out[i].Variant)
	}
	return out
}

// Wishlist returns a copy of the wishlist entries.
func (s *Store) Wishlist() []Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Snapshot, len(s.wishlist))
	copy(out, s.wishlist)
	return out
}

// RecentlyViewed returns a copy of the entries, most recent first.
func (s *Store) RecentlyViewed() []RecentEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]RecentEntry, len(s.recentlyViewed))
	copy(out, s.recentlyViewed)
	return out
}

// persist writes the whole blob through. Callers hold the mutex.
func (s *Store) persist() {
	saved := persistedState{
		Cart:             s.cart,
		Wishlist:         s.wishlist,
		RecentlyViewed:   s.recentlyViewed,
		SearchQuery:      s.searchQuery,
		SelectedCategory: s.selectedCategory,
	}
	if saved.Cart == nil {
		saved.Cart = []CartLine{}
	}
	if saved.Wishlist == nil {
		saved.Wishlist = []Snapshot{}
	}
	if saved.RecentlyViewed == nil {
		saved.RecentlyViewed = []RecentEntry{}
	}

	data, err := json.Marshal(saved)
	if err != nil {
		metrics.PersistFailures.Inc()
		logger.L().Warn("failed to serialize commerce state", zap.Error(err))
		return
	}
	if err := s.kv.Save(storeName, data); err != nil {
		metrics.PersistFailures.Inc()
		logger.L().Warn("failed to persist commerce state", zap.Error(err))
	}
}
