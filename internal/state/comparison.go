package state

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"luxestore-be/internal/catalog"
	"luxestore-be/internal/kvstore"
	"luxestore-be/internal/logger"
	"luxestore-be/internal/metrics"
)

const (
	comparisonName = "product-comparison-storage"

	maxComparisonItems = 4
)

type persistedComparison struct {
	Products []Snapshot `json:"products"`
}

// Comparison is the bounded comparison tray. At most four distinct products
// can be compared at once. The tray-open flag is session state and is not
// serialized with the entries.
type Comparison struct {
	mu       sync.Mutex
	kv       kvstore.Store
	products []Snapshot
	open     bool
}

func NewComparison(kv kvstore.Store) *Comparison {
	c := &Comparison{kv: kv}

	data, ok, err := kv.Load(comparisonName)
	if err != nil {
		logger.L().Warn("failed to load comparison state, starting empty", zap.Error(err))
		return c
	}
	if !ok {
		return c
	}

	var saved persistedComparison
	if err := json.Unmarshal(data, &saved); err != nil {
		logger.L().Warn("malformed comparison blob, starting empty", zap.Error(err))
		return c
	}
	c.products = saved.Products
	return c
}

// Add reports success. Re-adding a present product is a no-op success even
// at capacity; a fifth distinct product is rejected with the tray unchanged.
func (c *Comparison) Add(p catalog.Product) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.products {
		if c.products[i].ID == p.ID {
			return true
		}
	}
	if len(c.products) >= maxComparisonItems {
		return false
	}

	c.products = append(c.products, SnapshotOf(p))
	c.persist()
	return true
}

func (c *Comparison) Remove(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.products[:0]
	for _, p := range c.products {
		if p.ID != productID {
			kept = append(kept, p)
		}
	}
	c.products = kept
	c.persist()
}

// Clear empties the tray and closes it.
func (c *Comparison) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.products = nil
	c.open = false
	c.persist()
}

func (c *Comparison) Contains(productID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.products {
		if c.products[i].ID == productID {
			return true
		}
	}
	return false
}

func (c *Comparison) Products() []Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Snapshot, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Comparison) SetOpen(open bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = open
}

func (c *Comparison) Open() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

func (c *Comparison) persist() {
	saved := persistedComparison{Products: c.products}
	if saved.Products == nil {
		saved.Products = []Snapshot{}
	}

	data, err := json.Marshal(saved)
	if err != nil {
		metrics.PersistFailures.Inc()
		logger.L().Warn("failed to serialize comparison state", zap.Error(err))
		return
	}
	if err := c.kv.Save(comparisonName, data); err != nil {
		metrics.PersistFailures.Inc()
		logger.L().Warn("failed to persist comparison state", zap.Error(err))
	}
}
