package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/scmdash/scm-backend/internal/faults"
	"github.com/scmdash/scm-backend/internal/kvstore"
	"github.com/scmdash/scm-backend/internal/models"
	"github.com/scmdash/scm-backend/internal/store"
)

type ResourceServiceTestSuite struct {
	suite.Suite
	ctx  context.Context
	kv   *kvstore.Memory
	deps Deps
	svc  *Suite
}

func (s *ResourceServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.kv = kvstore.NewMemory()
	s.deps = Deps{
		Injector: faults.NewInjector(faults.Instant()),
		Catalog:  NewProductCatalog(s.kv, store.DemoProducts()),
		Now:      func() time.Time { return time.Date(2025, 4, 10, 9, 0, 0, 0, time.UTC) },
		IDSeed:   7,
	}
	s.svc = NewSuite(store.NewSession("test", store.DemoSeed()), s.deps)
}

func (s *ResourceServiceTestSuite) TestListReturnsCopies() {
	items, err := s.svc.Inventory.List(s.ctx)
	s.Require().NoError(err)
	s.Len(items, 8)

	items[0].Quantity = -1
	again, err := s.svc.Inventory.List(s.ctx)
	s.Require().NoError(err)
	s.Equal(850, again[0].Quantity)
}

func (s *ResourceServiceTestSuite) TestCreateAssignsUniqueIDs() {
	seen := make(map[string]bool)
	for _, id := range s.svc.Customers.records.IDs() {
		seen[id] = true
	}

	for i := 0; i < 200; i++ {
		created, err := s.svc.Customers.Create(s.ctx, models.NewCustomer{Name: "Acme", Location: "Denver, CO"})
		s.Require().NoError(err)
		s.Regexp(`^CUS-\d{3}$`, created.ID)
		s.False(seen[created.ID], "duplicate id %s", created.ID)
		seen[created.ID] = true
	}
	s.Equal(203, s.svc.Customers.records.Len())
}

func (s *ResourceServiceTestSuite) TestIdenticalCreatesProduceDistinctRecords() {
	draft := models.NewCustomer{Name: "Acme", Location: "Denver, CO"}

	first, err := s.svc.Customers.Create(s.ctx, draft)
	s.Require().NoError(err)
	second, err := s.svc.Customers.Create(s.ctx, draft)
	s.Require().NoError(err)

	s.NotEqual(first.ID, second.ID)
	items, err := s.svc.Customers.List(s.ctx)
	s.Require().NoError(err)
	s.Len(items, 5)
}

func (s *ResourceServiceTestSuite) TestCreateRejectsInvalidPayload() {
	_, err := s.svc.Inventory.Create(s.ctx, models.NewInventoryItem{Name: "Bolts", Category: "Hardware", Location: "A", Quantity: -5})
	s.Require().Error(err)
	s.True(errors.Is(err, ErrInvalidPayload))
	s.Equal(8, s.svc.Inventory.records.Len())
}

func (s *ResourceServiceTestSuite) TestUpdateMissingIDIsNoOp() {
	before, err := s.svc.Suppliers.List(s.ctx)
	s.Require().NoError(err)

	updated, err := s.svc.Suppliers.Update(s.ctx, "SUP-999", models.SupplierPatch{Name: models.String("Ghost")})
	s.NoError(err)
	s.Nil(updated)

	after, err := s.svc.Suppliers.List(s.ctx)
	s.Require().NoError(err)
	s.Equal(before, after)
}

func (s *ResourceServiceTestSuite) TestDeleteIsIdempotent() {
	removed, err := s.svc.Shipments.Delete(s.ctx, "SHP002")
	s.Require().NoError(err)
	s.True(removed)

	removed, err = s.svc.Shipments.Delete(s.ctx, "SHP002")
	s.Require().NoError(err)
	s.False(removed)

	s.Equal(4, s.svc.Shipments.records.Len())
}

func (s *ResourceServiceTestSuite) TestInventoryStatusFollowsQuantity() {
	s.svc.Session.Inventory.Replace([]models.InventoryItem{
		{ID: "INV-001", Name: "Widget", Quantity: 5, ReorderPoint: 10},
	})

	item, err := s.svc.Inventory.Get(s.ctx, "INV-001")
	s.Require().NoError(err)
	s.Require().NotNil(item)
	s.Equal(models.StockStatusLow, item.Status())

	_, err = s.svc.Inventory.Update(s.ctx, "INV-001", models.InventoryPatch{Quantity: models.Int(20)})
	s.Require().NoError(err)

	item, err = s.svc.Inventory.Get(s.ctx, "INV-001")
	s.Require().NoError(err)
	s.Equal(models.StockStatusNormal, item.Status())
	s.Equal(s.deps.Now(), item.LastUpdated)
}

func (s *ResourceServiceTestSuite) TestProductStatusComputedOnWrite() {
	cases := map[int]models.ProductStatus{
		0:  models.ProductStatusOutOfStock,
		1:  models.ProductStatusLowStock,
		15: models.ProductStatusLowStock,
		16: models.ProductStatusInStock,
	}
	for stock, want := range cases {
		created, err := s.svc.Products.Create(s.ctx, models.NewProduct{Name: "Lamp", Category: "Lighting", Price: 10, Stock: stock})
		s.Require().NoError(err)
		s.Equal(want, created.Status, "stock %d", stock)
	}

	updated, err := s.svc.Products.Update(s.ctx, "PRD001", models.ProductPatch{Stock: models.Int(3)})
	s.Require().NoError(err)
	s.Require().NotNil(updated)
	s.Equal(models.ProductStatusLowStock, updated.Status)
	s.Equal("2025-04-10", updated.LastUpdated)
}

// Inventory status is derived on every read; product status is stored and
// only recomputed by a service write.
func (s *ResourceServiceTestSuite) TestDerivedStatusConsistency() {
	s.svc.Session.Inventory.Replace([]models.InventoryItem{
		{ID: "INV-001", Name: "Widget", Quantity: 50, ReorderPoint: 10},
	})
	s.svc.Session.Inventory.Modify("INV-001", func(item *models.InventoryItem) { item.Quantity = 4 })

	item, err := s.svc.Inventory.Get(s.ctx, "INV-001")
	s.Require().NoError(err)
	s.Require().NotNil(item)
	s.Equal(models.StockStatusLow, item.Status())

	products, err := s.deps.Catalog.Load(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal("PRD001", products[0].ID)
	s.Require().Equal(models.ProductStatusInStock, products[0].Status)
	products[0].Stock = 0
	s.Require().NoError(s.kv.Set(s.ctx, ProductsKey, products))

	stale, err := s.svc.Products.Get(s.ctx, "PRD001")
	s.Require().NoError(err)
	s.Require().NotNil(stale)
	s.Equal(0, stale.Stock)
	s.Equal(models.ProductStatusInStock, stale.Status)

	updated, err := s.svc.Products.Update(s.ctx, "PRD001", models.ProductPatch{Price: models.Float64(199.99)})
	s.Require().NoError(err)
	s.Require().NotNil(updated)
	s.Equal(models.ProductStatusOutOfStock, updated.Status)
}

func (s *ResourceServiceTestSuite) TestProductIDsAreSequential() {
	created, err := s.svc.Products.Create(s.ctx, models.NewProduct{Name: "Lamp", Category: "Lighting", Stock: 20})
	s.Require().NoError(err)
	s.Equal("PRD006", created.ID)

	_, err = s.svc.Products.Delete(s.ctx, "PRD002")
	s.Require().NoError(err)

	created, err = s.svc.Products.Create(s.ctx, models.NewProduct{Name: "Desk Mat", Category: "Furniture", Stock: 20})
	s.Require().NoError(err)
	s.Equal("PRD007", created.ID)
}

func (s *ResourceServiceTestSuite) TestProductCatalogueIsPersisted() {
	_, err := s.svc.Products.Create(s.ctx, models.NewProduct{Name: "Lamp", Category: "Lighting", Stock: 20})
	s.Require().NoError(err)

	var stored []models.Product
	s.Require().NoError(s.kv.Get(s.ctx, ProductsKey, &stored))
	s.Len(stored, 6)

	// A second session sharing the catalogue sees the new product.
	other := NewSuite(store.NewSession("other", store.DemoSeed()), s.deps)
	products, err := other.Products.List(s.ctx)
	s.Require().NoError(err)
	s.Len(products, 6)

	// Other resources stay per session.
	_, err = s.svc.Customers.Create(s.ctx, models.NewCustomer{Name: "Acme", Location: "Denver"})
	s.Require().NoError(err)
	customers, err := other.Customers.List(s.ctx)
	s.Require().NoError(err)
	s.Len(customers, 3)
}

func (s *ResourceServiceTestSuite) TestProductCategories() {
	categories, err := s.svc.Products.Categories(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"Furniture", "Electronics", "Stationery"}, categories)
}

func (s *ResourceServiceTestSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.svc.Suppliers.List(ctx)
	s.True(errors.Is(err, context.Canceled))
}

func (s *ResourceServiceTestSuite) TestInjectedFailure() {
	s.deps.Injector.SetProfile(&faults.Profile{Default: faults.Rule{FailureRate: 1}})

	_, err := s.svc.Shipments.Create(s.ctx, models.NewShipment{Origin: "A", Destination: "B", Carrier: "C", Mode: models.ShipmentModeAir})
	s.Require().Error(err)
	s.True(errors.Is(err, faults.ErrInjectedFailure))
	s.Equal(5, s.svc.Shipments.records.Len())
}

func (s *ResourceServiceTestSuite) TestInjectedNotFoundResolvesEmpty() {
	s.deps.Injector.SetProfile(&faults.Profile{Default: faults.Rule{NotFoundRate: 1}})

	updated, err := s.svc.Inventory.Update(s.ctx, "INV-001", models.InventoryPatch{Quantity: models.Int(1)})
	s.NoError(err)
	s.Nil(updated)

	removed, err := s.svc.Inventory.Delete(s.ctx, "INV-001")
	s.NoError(err)
	s.False(removed)

	items, err := s.svc.Inventory.List(s.ctx)
	s.Require().NoError(err)
	s.Len(items, 8)
}

func TestResourceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ResourceServiceTestSuite))
}

func TestRandomDigitsWidensWhenExhausted(t *testing.T) {
	gen := NewRandomDigits("X", 1, 3)
	taken := func(id string) bool { return len(id) == 2 }

	id := gen.Next(10, taken)
	assert.Len(t, id, 3)
}

func TestSequenceSkipsTaken(t *testing.T) {
	gen := Sequence{Prefix: "PRD", Width: 3}
	taken := func(id string) bool { return id == "PRD003" || id == "PRD004" }

	require.Equal(t, "PRD005", gen.Next(2, taken))
	require.Equal(t, "PRD001", gen.Next(0, taken))
}
