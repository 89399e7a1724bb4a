// internal/services/product_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/scmdash/scm-backend/internal/kvstore"
	"github.com/scmdash/scm-backend/internal/models"
	"github.com/scmdash/scm-backend/internal/store"
)

const ProductsKey = "products"

// ProductCatalog keeps the product list in the key/value store. Every
// product call reloads it and every mutation writes it back, so the
// catalogue survives restarts and is shared by all sessions, unlike the
// other resources.
type ProductCatalog struct {
	mu   sync.Mutex
	kv   kvstore.Store
	seed []models.Product
}

func NewProductCatalog(kv kvstore.Store, seed []models.Product) *ProductCatalog {
	if kv == nil {
		kv = kvstore.NewMemory()
	}
	return &ProductCatalog{kv: kv, seed: seed}
}

// Load returns the persisted catalogue, writing the seed first when nothing
// has been stored yet.
func (c *ProductCatalog) Load(ctx context.Context) ([]models.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

func (c *ProductCatalog) load(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := c.kv.Get(ctx, ProductsKey, &products)
	if errors.Is(err, kvstore.ErrNotFound) {
		if err := c.kv.Set(ctx, ProductsKey, c.seed); err != nil {
			return nil, fmt.Errorf("failed to seed product catalogue: %w", err)
		}
		return append([]models.Product(nil), c.seed...), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load product catalogue: %w", err)
	}
	return products, nil
}

func (c *ProductCatalog) bind(records *store.Collection[models.Product]) Guard {
	return &catalogGuard{catalog: c, records: records}
}

type catalogGuard struct {
	catalog *ProductCatalog
	records *store.Collection[models.Product]
}

func (g *catalogGuard) Do(ctx context.Context, fn func() (bool, error)) error {
	g.catalog.mu.Lock()
	defer g.catalog.mu.Unlock()

	products, err := g.catalog.load(ctx)
	if err != nil {
		return err
	}
	g.records.Replace(products)

	changed, err := fn()
	if err != nil || !changed {
		return err
	}

	if err := g.catalog.kv.Set(ctx, ProductsKey, g.records.Snapshot()); err != nil {
		logrus.WithError(err).Error("Failed to persist product catalogue")
		return fmt.Errorf("failed to persist product catalogue: %w", err)
	}
	return nil
}

type ProductService struct {
	*ResourceService[models.Product, models.NewProduct, models.ProductPatch]
}

func NewProductService(records *store.Collection[models.Product], deps Deps) *ProductService {
	catalog := deps.Catalog
	if catalog == nil {
		catalog = NewProductCatalog(nil, records.Snapshot())
	}
	return &ProductService{
		ResourceService: newResourceService[models.Product, models.NewProduct, models.ProductPatch](
			"products",
			records,
			deps,
			Sequence{Prefix: "PRD", Width: 3},
			resourceOptions[models.Product]{
				touch: touchProduct,
				guard: catalog.bind(records),
			},
		),
	}
}

// Categories lists the distinct product categories in catalogue order.
func (s *ProductService) Categories(ctx context.Context) ([]string, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, p := range products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	return categories, nil
}

func touchProduct(p *models.Product, now time.Time) {
	p.Status = models.ProductStatusFor(p.Stock)
	p.LastUpdated = now.Format("2006-01-02")
}
