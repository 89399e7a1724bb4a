// internal/store/session.go
package store

import (
	"sync"
	"time"

	"github.com/scmdash/scm-backend/internal/models"
)

// Session holds one collection per resource type. A session corresponds to
// one open dashboard; two sessions never share records.
type Session struct {
	ID        string
	Inventory *Collection[models.InventoryItem]
	Customers *Collection[models.Customer]
	Suppliers *Collection[models.Supplier]
	Products  *Collection[models.Product]
	Orders    *Collection[models.Order]
	Shipments *Collection[models.Shipment]
}

// Seed is the initial content of a session.
type Seed struct {
	Inventory []models.InventoryItem
	Customers []models.Customer
	Suppliers []models.Supplier
	Products  []models.Product
	Orders    []models.Order
	Shipments []models.Shipment
}

func NewSession(id string, seed Seed) *Session {
	return &Session{
		ID:        id,
		Inventory: NewCollection(seed.Inventory),
		Customers: NewCollection(seed.Customers),
		Suppliers: NewCollection(seed.Suppliers),
		Products:  NewCollection(seed.Products),
		Orders:    NewCollection(seed.Orders),
		Shipments: NewCollection(seed.Shipments),
	}
}

func (s *Session) Reset() {
	s.Inventory.Reset()
	s.Customers.Reset()
	s.Suppliers.Reset()
	s.Products.Reset()
	s.Orders.Reset()
	s.Shipments.Reset()
}

const DefaultSessionID = "default"

// Limits bound how many sessions a registry keeps. Zero values disable the
// corresponding bound.
type Limits struct {
	MaxSessions int
	IdleTTL     time.Duration
}

type entry struct {
	session  *Session
	lastSeen time.Time
}

// Registry hands out sessions by identifier, creating them from the seed on
// first use.
type Registry struct {
	mu       sync.Mutex
	seed     Seed
	limits   Limits
	now      func() time.Time
	sessions map[string]*entry
	onCreate func(*Session)
	onEvict  func(id string)
}

func NewRegistry(seed Seed) *Registry {
	return &Registry{
		seed:     seed,
		now:      time.Now,
		sessions: make(map[string]*entry),
	}
}

// WithLimits sets the session cap and idle timeout.
func (r *Registry) WithLimits(limits Limits) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.limits = limits
	return r
}

// WithClock replaces the clock used for last-access times.
func (r *Registry) WithClock(now func() time.Time) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now = now
	return r
}

// OnCreate registers a callback that runs once for every new session.
func (r *Registry) OnCreate(fn func(*Session)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onCreate = fn
}

// OnEvict registers a callback that runs, outside the registry lock, for
// every session removed by the cap or the idle sweep.
func (r *Registry) OnEvict(fn func(id string)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onEvict = fn
}

func (r *Registry) Get(id string) *Session {
	if id == "" {
		id = DefaultSessionID
	}

	r.mu.Lock()
	now := r.now()
	if e, ok := r.sessions[id]; ok {
		e.lastSeen = now
		r.mu.Unlock()
		return e.session
	}

	var evicted []string
	if max := r.limits.MaxSessions; max > 0 {
		for len(r.sessions) >= max {
			evicted = append(evicted, r.evictOldest())
		}
	}

	s := NewSession(id, r.seed)
	r.sessions[id] = &entry{session: s, lastSeen: now}
	onCreate, onEvict := r.onCreate, r.onEvict
	r.mu.Unlock()

	r.notifyEvicted(onEvict, evicted)
	if onCreate != nil {
		onCreate(s)
	}
	return s
}

// evictOldest removes the least recently used session. r.mu must be held.
func (r *Registry) evictOldest() string {
	var oldest string
	var seen time.Time
	for id, e := range r.sessions {
		if oldest == "" || e.lastSeen.Before(seen) {
			oldest, seen = id, e.lastSeen
		}
	}
	delete(r.sessions, oldest)
	return oldest
}

// Sweep removes every session idle for longer than the configured timeout
// and returns their identifiers.
func (r *Registry) Sweep() []string {
	r.mu.Lock()
	var evicted []string
	if ttl := r.limits.IdleTTL; ttl > 0 {
		cutoff := r.now().Add(-ttl)
		for id, e := range r.sessions {
			if e.lastSeen.Before(cutoff) {
				delete(r.sessions, id)
				evicted = append(evicted, id)
			}
		}
	}
	onEvict := r.onEvict
	r.mu.Unlock()

	r.notifyEvicted(onEvict, evicted)
	return evicted
}

func (r *Registry) notifyEvicted(fn func(string), ids []string) {
	if fn == nil {
		return
	}
	for _, id := range ids {
		fn(id)
	}
}

func (r *Registry) Drop(id string) bool {
	if id == "" {
		id = DefaultSessionID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return false
	}
	delete(r.sessions, id)
	return true
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
