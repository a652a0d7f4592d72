// Package cache is the in-memory caching layer for transaction reads. It
// keeps two independent regions: a point region keyed by id or reference, and
// a list region keyed by the full listing request. Both are bounded in size
// and expire entries a fixed interval after they were written.
//
// Eviction policy: entries never outlive the write TTL (expiry is checked on
// every read), and when a region reaches capacity the underlying client
// evicts the configured percentage of least recently used entries per shard.
package cache

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/viccon/sturdyc"

	"transaction-management/internal/models"
)

const (
	defaultCapacity           = 1000
	defaultNumShards          = 64
	defaultTTL                = 30 * time.Minute
	defaultEvictionPercentage = 10
)

// Config tunes both cache regions. Each region gets its own client with the
// same capacity and TTL, so their eviction domains stay independent.
type Config struct {
	Capacity           int
	NumShards          int
	TTL                time.Duration
	EvictionPercentage int
}

func (c Config) withDefaults() Config {
	if c.Capacity <= 0 {
		c.Capacity = defaultCapacity
	}
	if c.NumShards <= 0 {
		c.NumShards = defaultNumShards
	}
	if c.TTL <= 0 {
		c.TTL = defaultTTL
	}
	if c.EvictionPercentage <= 0 || c.EvictionPercentage > 100 {
		c.EvictionPercentage = defaultEvictionPercentage
	}
	return c
}

// TransactionCache holds non-owning, TTL-bounded copies of store results.
// A point entry holding a typed nil is a cached "record absent" marker; it
// counts as a hit and prevents repeated store lookups for missing keys.
type TransactionCache struct {
	point *sturdyc.Client[*models.Transaction]
	list  *sturdyc.Client[*models.TransactionPage]
}

func New(cfg Config) *TransactionCache {
	cfg = cfg.withDefaults()
	return &TransactionCache{
		point: sturdyc.New[*models.Transaction](cfg.Capacity, cfg.NumShards, cfg.TTL, cfg.EvictionPercentage),
		list:  sturdyc.New[*models.TransactionPage](cfg.Capacity, cfg.NumShards, cfg.TTL, cfg.EvictionPercentage),
	}
}

// IDKey is the point key for an id lookup.
func IDKey(id int64) string {
	return "id:" + strconv.FormatInt(id, 10)
}

// RefKey is the point key for a reference lookup.
func RefKey(reference string) string {
	return "ref:" + reference
}

// ListKey derives the composite key for one page of a filtered listing.
// Filter values are lowercased so that filters differing only in case share
// an entry, mirroring the case-insensitive match done by the store.
func ListKey(filter models.ListFilter, page models.PageRequest) string {
	return fmt.Sprintf("category=%s&type=%s&page=%d&size=%d&sortBy=%s&direction=%s",
		strings.ToLower(filter.Category),
		strings.ToLower(filter.Type),
		page.Page,
		page.Size,
		page.SortBy,
		strings.ToLower(page.Direction),
	)
}

// GetPoint returns the cached record for key. found distinguishes a cache
// miss from a cached absence: (nil, true) means the store was already asked
// and had no such record.
func (c *TransactionCache) GetPoint(key string) (txn *models.Transaction, found bool) {
	txn, found = c.point.Get(key)
	observe(regionPoint, found)
	return txn, found
}

// SetPoint caches a record under key. A nil txn stores the absence marker.
func (c *TransactionCache) SetPoint(key string, txn *models.Transaction) {
	c.point.Set(key, txn)
}

// InvalidatePoint drops the given point entries. Dropping rather than
// overwriting forces the next read to repopulate from the store.
func (c *TransactionCache) InvalidatePoint(keys ...string) {
	for _, key := range keys {
		c.point.Delete(key)
	}
}

func (c *TransactionCache) GetList(key string) (*models.TransactionPage, bool) {
	page, found := c.list.Get(key)
	observe(regionList, found)
	return page, found
}

func (c *TransactionCache) SetList(key string, page *models.TransactionPage) {
	c.list.Set(key, page)
}

// InvalidateLists drops every cached list page. Mutations call this instead
// of per-page invalidation: listing predicates are too combinatorial to
// invalidate precisely, so correctness wins over cache warmth.
func (c *TransactionCache) InvalidateLists() {
	for _, key := range c.list.ScanKeys() {
		c.list.Delete(key)
	}
}

// Clear empties both regions. Administrative recovery path.
func (c *TransactionCache) Clear() {
	for _, key := range c.point.ScanKeys() {
		c.point.Delete(key)
	}
	c.InvalidateLists()
}
