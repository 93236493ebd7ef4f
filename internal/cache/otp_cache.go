package cache

import (
	"container/list"
	"sync"
	"time"
)

// Clock returns the current time. Injectable so tests can control expiry.
type Clock func() time.Time

// Options configures the cache bounds.
type Options struct {
	MaxEntries int           // hard cap on entry count
	MaxWeight  int           // cap on total weight; every entry weighs 1 unit
	TTL        time.Duration // lifetime of an entry from its last write
	Clock      Clock         // defaults to time.Now
}

// DefaultOptions returns the production bounds: 500 entries, weight 5000,
// 5 minute TTL.
func DefaultOptions() Options {
	return Options{
		MaxEntries: 500,
		MaxWeight:  5000,
		TTL:        5 * time.Minute,
	}
}

type entry struct {
	key       string
	value     string
	weight    int
	expiresAt time.Time
}

// OTPCache is a bounded LRU cache with per-entry TTL, used to hold pending
// password-reset codes keyed by email. All operations are serialized by a
// single mutex; both Put and Get count as a recency touch.
type OTPCache struct {
	mu     sync.Mutex
	opts   Options
	ll     *list.List // front is most recently used
	items  map[string]*list.Element
	weight int
}

// New creates an OTPCache with the given options.
func New(opts Options) *OTPCache {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &OTPCache{
		opts:  opts,
		ll:    list.New(),
		items: make(map[string]*list.Element),
	}
}

// Put stores value under key, overwriting any existing entry and resetting
// its TTL. Expired entries are dropped first; if the cache is still over
// capacity the least-recently-used entries are evicted.
func (c *OTPCache) Put(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.opts.Clock()
	if el, ok := c.items[key]; ok {
		ent := el.Value.(*entry)
		ent.value = value
		ent.expiresAt = now.Add(c.opts.TTL)
		c.ll.MoveToFront(el)
	} else {
		ent := &entry{key: key, value: value, weight: 1, expiresAt: now.Add(c.opts.TTL)}
		c.items[key] = c.ll.PushFront(ent)
		c.weight += ent.weight
	}

	c.evictExpired(now)
	for (c.opts.MaxEntries > 0 && c.ll.Len() > c.opts.MaxEntries) ||
		(c.opts.MaxWeight > 0 && c.weight > c.opts.MaxWeight) {
		oldest := c.ll.Back()
		if oldest == nil {
			break
		}
		c.removeElement(oldest)
	}
}

// Get returns the value for key if present and unexpired, touching its
// recency. An expired entry is removed and reported as absent.
func (c *OTPCache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return "", false
	}
	ent := el.Value.(*entry)
	if !c.opts.Clock().Before(ent.expiresAt) {
		c.removeElement(el)
		return "", false
	}
	c.ll.MoveToFront(el)
	return ent.value, true
}

// Delete removes key unconditionally.
func (c *OTPCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.removeElement(el)
	}
}

// Len returns the number of live entries, dropping any that have expired.
func (c *OTPCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.evictExpired(c.opts.Clock())
	return c.ll.Len()
}

// evictExpired drops every expired entry. Expired entries go before any
// live entry is considered for LRU eviction. Caller must hold the lock.
func (c *OTPCache) evictExpired(now time.Time) {
	for el := c.ll.Back(); el != nil; {
		prev := el.Prev()
		if !now.Before(el.Value.(*entry).expiresAt) {
			c.removeElement(el)
		}
		el = prev
	}
}

func (c *OTPCache) removeElement(el *list.Element) {
	ent := el.Value.(*entry)
	c.ll.Remove(el)
	delete(c.items, ent.key)
	c.weight -= ent.weight
}
