// internal/handlers/catalog.go
package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/scmdash/scm-backend/internal/hooks"
	"github.com/scmdash/scm-backend/internal/models"
	"github.com/scmdash/scm-backend/internal/utils"
)

type (
	InventoryHandler = ResourceHandler[models.InventoryItem, models.NewInventoryItem, models.InventoryPatch]
	CustomerHandler  = ResourceHandler[models.Customer, models.NewCustomer, models.CustomerPatch]
	SupplierHandler  = ResourceHandler[models.Supplier, models.NewSupplier, models.SupplierPatch]
	ProductHandler   = ResourceHandler[models.Product, models.NewProduct, models.ProductPatch]
	ShipmentHandler  = ResourceHandler[models.Shipment, models.NewShipment, models.ShipmentPatch]
)

// inventoryView carries the stock status derived from the current quantity.
type inventoryView struct {
	models.InventoryItem
	Status models.StockStatus `json:"status"`
	Value  float64            `json:"value"`
}

func NewInventoryHandler(manager *hooks.Manager) *InventoryHandler {
	return &InventoryHandler{
		resource: "inventory",
		manager:  manager,
		hook:     func(ws *hooks.Workspace) *hooks.InventoryResource { return ws.Inventory.InventoryResource },
		getter: func(ws *hooks.Workspace) func(context.Context, string) (*models.InventoryItem, error) {
			return ws.Services.Inventory.Get
		},
		list: utils.ListSpec[models.InventoryItem]{
			SearchText: func(i models.InventoryItem) []string { return []string{i.ID, i.Name, i.SKU, i.Supplier, i.Location} },
			Category:   func(i models.InventoryItem) string { return i.Category },
			SortFields: map[string]func(a, b models.InventoryItem) bool{
				"name":     func(a, b models.InventoryItem) bool { return a.Name < b.Name },
				"quantity": func(a, b models.InventoryItem) bool { return a.Quantity < b.Quantity },
				"value":    func(a, b models.InventoryItem) bool { return a.Value() < b.Value() },
				"location": func(a, b models.InventoryItem) bool { return a.Location < b.Location },
			},
		},
		present: func(i models.InventoryItem) interface{} {
			return inventoryView{InventoryItem: i, Status: i.Status(), Value: i.Value()}
		},
	}
}

func NewCustomerHandler(manager *hooks.Manager) *CustomerHandler {
	return &CustomerHandler{
		resource: "customers",
		manager:  manager,
		hook:     func(ws *hooks.Workspace) *hooks.CustomerResource { return ws.Customers.CustomerResource },
		getter: func(ws *hooks.Workspace) func(context.Context, string) (*models.Customer, error) {
			return ws.Services.Customers.Get
		},
		list: utils.ListSpec[models.Customer]{
			SearchText: func(c models.Customer) []string {
				return []string{c.ID, c.Name, c.Location, c.Contact.Name, c.Contact.Email}
			},
			Category: func(c models.Customer) string { return c.Location },
			SortFields: map[string]func(a, b models.Customer) bool{
				"name":     func(a, b models.Customer) bool { return a.Name < b.Name },
				"location": func(a, b models.Customer) bool { return a.Location < b.Location },
			},
		},
	}
}

func NewSupplierHandler(manager *hooks.Manager) *SupplierHandler {
	return &SupplierHandler{
		resource: "suppliers",
		manager:  manager,
		hook:     func(ws *hooks.Workspace) *hooks.SupplierResource { return ws.Suppliers.SupplierResource },
		getter: func(ws *hooks.Workspace) func(context.Context, string) (*models.Supplier, error) {
			return ws.Services.Suppliers.Get
		},
		list: utils.ListSpec[models.Supplier]{
			SearchText: func(s models.Supplier) []string {
				return []string{s.ID, s.Name, s.Contact, s.Email, s.Location}
			},
			SortFields: map[string]func(a, b models.Supplier) bool{
				"name":        func(a, b models.Supplier) bool { return a.Name < b.Name },
				"reliability": func(a, b models.Supplier) bool { return a.ReliabilityScore < b.ReliabilityScore },
				"lead_time":   func(a, b models.Supplier) bool { return a.LeadTimeDays < b.LeadTimeDays },
			},
		},
	}
}

func NewProductHandler(manager *hooks.Manager) *ProductHandler {
	return &ProductHandler{
		resource: "products",
		manager:  manager,
		hook:     func(ws *hooks.Workspace) *hooks.ProductResource { return ws.Products.ProductResource },
		getter: func(ws *hooks.Workspace) func(context.Context, string) (*models.Product, error) {
			return ws.Services.Products.Get
		},
		list: utils.ListSpec[models.Product]{
			SearchText: func(p models.Product) []string { return []string{p.ID, p.Name, p.SKU, p.Supplier} },
			Category:   func(p models.Product) string { return p.Category },
			SortFields: map[string]func(a, b models.Product) bool{
				"name":  func(a, b models.Product) bool { return a.Name < b.Name },
				"price": func(a, b models.Product) bool { return a.Price < b.Price },
				"stock": func(a, b models.Product) bool { return a.Stock < b.Stock },
			},
		},
	}
}

func NewShipmentHandler(manager *hooks.Manager) *ShipmentHandler {
	return &ShipmentHandler{
		resource: "shipments",
		manager:  manager,
		hook:     func(ws *hooks.Workspace) *hooks.ShipmentResource { return ws.Shipments.ShipmentResource },
		getter: func(ws *hooks.Workspace) func(context.Context, string) (*models.Shipment, error) {
			return ws.Services.Shipments.Get
		},
		list: utils.ListSpec[models.Shipment]{
			SearchText: func(s models.Shipment) []string {
				return []string{s.ID, s.Origin, s.Destination, s.Carrier}
			},
			Category: func(s models.Shipment) string { return string(s.Status) },
			SortFields: map[string]func(a, b models.Shipment) bool{
				"progress": func(a, b models.Shipment) bool { return a.Progress < b.Progress },
				"cost":     func(a, b models.Shipment) bool { return a.Cost < b.Cost },
				"eta":      func(a, b models.Shipment) bool { return a.ETA < b.ETA },
			},
		},
	}
}

// SummaryHandler serves the dashboard cards computed from each hook.
type SummaryHandler struct {
	manager *hooks.Manager
}

func NewSummaryHandler(manager *hooks.Manager) *SummaryHandler {
	return &SummaryHandler{manager: manager}
}

func (h *SummaryHandler) workspace(c *gin.Context) *hooks.Workspace {
	return h.manager.Workspace(c.Request.Context(), utils.GetSessionIDFromContext(c))
}

// GET /inventory/summary
func (h *SummaryHandler) Inventory(c *gin.Context) {
	ws := h.workspace(c)
	if err := ws.Inventory.Refetch(c.Request.Context()); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, ws.Inventory.Summary())
}

// GET /products/summary
func (h *SummaryHandler) Products(c *gin.Context) {
	ws := h.workspace(c)
	if err := ws.Products.Refetch(c.Request.Context()); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, ws.Products.Summary())
}

// GET /products/categories
func (h *SummaryHandler) ProductCategories(c *gin.Context) {
	categories, err := h.workspace(c).Services.Products.Categories(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, categories)
}

// GET /suppliers/summary
func (h *SummaryHandler) Suppliers(c *gin.Context) {
	ws := h.workspace(c)
	if err := ws.Suppliers.Refetch(c.Request.Context()); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, ws.Suppliers.Summary())
}

// GET /customers/summary
func (h *SummaryHandler) Customers(c *gin.Context) {
	ws := h.workspace(c)
	if err := ws.Customers.Refetch(c.Request.Context()); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, ws.Customers.Summary())
}

// GET /shipments/summary
func (h *SummaryHandler) Shipments(c *gin.Context) {
	ws := h.workspace(c)
	if err := ws.Shipments.Refetch(c.Request.Context()); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, ws.Shipments.Summary())
}
