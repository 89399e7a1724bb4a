package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scmdash/scm-backend/internal/models"
)

func TestCollectionSnapshotIsIsolated(t *testing.T) {
	c := NewCollection(demoSuppliers())

	snap := c.Snapshot()
	snap[0].Name = "changed"
	snap[0].ProductCategories[0] = "changed"

	stored, ok := c.Find("SUP-001")
	require.True(t, ok)
	assert.Equal(t, "NanoChip Technologies", stored.Name)
	assert.Equal(t, "Microprocessors", stored.ProductCategories[0])
}

func TestCollectionModifyAndRemove(t *testing.T) {
	c := NewCollection(demoInventory())

	updated, ok := c.Modify("INV-003", func(item *models.InventoryItem) {
		item.Quantity = 300
	})
	require.True(t, ok)
	assert.Equal(t, 300, updated.Quantity)

	_, ok = c.Modify("INV-999", func(item *models.InventoryItem) {
		item.Quantity = 1
	})
	assert.False(t, ok)

	assert.True(t, c.Remove("INV-003"))
	assert.False(t, c.Remove("INV-003"))
	assert.Equal(t, 7, c.Len())
	assert.False(t, c.Contains("INV-003"))
}

func TestCollectionInsertSeesExistingIDs(t *testing.T) {
	c := NewCollection(demoCustomers())

	created := c.Insert(func(size int, taken func(string) bool) models.Customer {
		assert.Equal(t, 3, size)
		assert.True(t, taken("CUS-001"))
		assert.False(t, taken("CUS-004"))
		return models.Customer{ID: "CUS-004", Name: "New"}
	})

	assert.Equal(t, "CUS-004", created.ID)
	assert.Equal(t, []string{"CUS-001", "CUS-002", "CUS-003", "CUS-004"}, c.IDs())
}

func TestSessionResetRestoresSeed(t *testing.T) {
	s := NewSession("t", DemoSeed())
	s.Customers.Remove("CUS-001")
	s.Orders.Modify("ORD-001625", func(o *models.Order) { o.Status = models.OrderStatusCancelled })

	s.Reset()

	assert.Equal(t, 3, s.Customers.Len())
	order, ok := s.Orders.Find("ORD-001625")
	require.True(t, ok)
	assert.Equal(t, models.OrderStatusPending, order.Status)
}

func TestRegistrySessionsDiverge(t *testing.T) {
	r := NewRegistry(DemoSeed())
	created := 0
	r.OnCreate(func(*Session) { created++ })

	a := r.Get("tab-a")
	b := r.Get("tab-b")
	a.Customers.Remove("CUS-002")

	assert.Equal(t, 2, a.Customers.Len())
	assert.Equal(t, 3, b.Customers.Len())
	assert.Same(t, a, r.Get("tab-a"))
	assert.Same(t, r.Get(""), r.Get(DefaultSessionID))
	assert.Equal(t, 3, created)

	assert.True(t, r.Drop("tab-a"))
	assert.False(t, r.Drop("tab-a"))
}

func TestRegistryCapEvictsLeastRecentlyUsed(t *testing.T) {
	clock := time.Date(2025, 4, 10, 9, 0, 0, 0, time.UTC)
	r := NewRegistry(DemoSeed()).
		WithLimits(Limits{MaxSessions: 3}).
		WithClock(func() time.Time { return clock })

	var evicted []string
	r.OnEvict(func(id string) { evicted = append(evicted, id) })

	for i := 0; i < 3; i++ {
		r.Get(fmt.Sprintf("tab-%d", i))
		clock = clock.Add(time.Second)
	}
	r.Get("tab-0")
	clock = clock.Add(time.Second)

	for i := 3; i < 5000; i++ {
		r.Get(fmt.Sprintf("tab-%d", i))
		clock = clock.Add(time.Second)
	}

	assert.Equal(t, 3, r.Len())
	assert.Len(t, evicted, 4997)
	assert.Equal(t, "tab-1", evicted[0])
	assert.Equal(t, "tab-2", evicted[1])
	assert.Equal(t, "tab-0", evicted[2])
}

func TestRegistrySweepDropsIdleSessions(t *testing.T) {
	clock := time.Date(2025, 4, 10, 9, 0, 0, 0, time.UTC)
	r := NewRegistry(DemoSeed()).
		WithLimits(Limits{IdleTTL: 10 * time.Minute}).
		WithClock(func() time.Time { return clock })

	var evicted []string
	r.OnEvict(func(id string) { evicted = append(evicted, id) })

	r.Get("idle")
	r.Get("busy")
	clock = clock.Add(8 * time.Minute)
	r.Get("busy")
	clock = clock.Add(5 * time.Minute)

	assert.Equal(t, []string{"idle"}, r.Sweep())
	assert.Equal(t, []string{"idle"}, evicted)
	assert.Equal(t, 1, r.Len())

	r.WithLimits(Limits{})
	clock = clock.Add(time.Hour)
	assert.Empty(t, r.Sweep())
	assert.Equal(t, 1, r.Len())
}
