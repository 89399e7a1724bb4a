// internal/services/suite.go
package services

import (
	"time"

	"github.com/scmdash/scm-backend/internal/faults"
	"github.com/scmdash/scm-backend/internal/models"
	"github.com/scmdash/scm-backend/internal/store"
)

type (
	InventoryService = ResourceService[models.InventoryItem, models.NewInventoryItem, models.InventoryPatch]
	CustomerService  = ResourceService[models.Customer, models.NewCustomer, models.CustomerPatch]
	SupplierService  = ResourceService[models.Supplier, models.NewSupplier, models.SupplierPatch]
	ShipmentService  = ResourceService[models.Shipment, models.NewShipment, models.ShipmentPatch]
)

// Deps are shared by the services of every session.
type Deps struct {
	Injector *faults.Injector
	Catalog  *ProductCatalog
	Now      func() time.Time
	// IDSeed seeds the random identifier generators; zero uses the clock.
	IDSeed int64
	Lang   string
}

func (d Deps) injector() *faults.Injector {
	if d.Injector == nil {
		return faults.NewInjector(faults.Instant())
	}
	return d.Injector
}

func (d Deps) clock() func() time.Time {
	if d.Now == nil {
		return time.Now
	}
	return d.Now
}

// Suite bundles the mock services bound to one session.
type Suite struct {
	Session       *store.Session
	Inventory     *InventoryService
	Customers     *CustomerService
	Suppliers     *SupplierService
	Products      *ProductService
	Shipments     *ShipmentService
	Notifications *NotificationService
}

func NewSuite(session *store.Session, deps Deps) *Suite {
	return &Suite{
		Session: session,
		Inventory: newResourceService[models.InventoryItem, models.NewInventoryItem, models.InventoryPatch](
			"inventory", session.Inventory, deps,
			NewRandomDigits("INV-", 3, deps.IDSeed),
			resourceOptions[models.InventoryItem]{touch: touchInventory},
		),
		Customers: newResourceService[models.Customer, models.NewCustomer, models.CustomerPatch](
			"customers", session.Customers, deps,
			NewRandomDigits("CUS-", 3, deps.IDSeed),
			resourceOptions[models.Customer]{},
		),
		Suppliers: newResourceService[models.Supplier, models.NewSupplier, models.SupplierPatch](
			"suppliers", session.Suppliers, deps,
			NewRandomDigits("SUP-", 3, deps.IDSeed),
			resourceOptions[models.Supplier]{},
		),
		Products: NewProductService(session.Products, deps),
		Shipments: newResourceService[models.Shipment, models.NewShipment, models.ShipmentPatch](
			"shipments", session.Shipments, deps,
			NewRandomDigits("SHP", 3, deps.IDSeed),
			resourceOptions[models.Shipment]{},
		),
		Notifications: NewNotificationService(deps.Lang, DefaultFeedSize),
	}
}

func touchInventory(item *models.InventoryItem, now time.Time) {
	item.LastUpdated = now
}
