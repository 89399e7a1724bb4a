// internal/hooks/aggregates.go
package hooks

import (
	"github.com/scmdash/scm-backend/internal/models"
	"github.com/scmdash/scm-backend/internal/services"
)

type (
	InventoryResource = ResourceHook[models.InventoryItem, models.NewInventoryItem, models.InventoryPatch]
	CustomerResource  = ResourceHook[models.Customer, models.NewCustomer, models.CustomerPatch]
	SupplierResource  = ResourceHook[models.Supplier, models.NewSupplier, models.SupplierPatch]
	ProductResource   = ResourceHook[models.Product, models.NewProduct, models.ProductPatch]
	ShipmentResource  = ResourceHook[models.Shipment, models.NewShipment, models.ShipmentPatch]
)

// Inventory

type InventoryHook struct {
	*InventoryResource
}

type InventorySummary struct {
	TotalItems        int            `json:"total_items"`
	LowStockCount     int            `json:"low_stock_count"`
	OutOfStockCount   int            `json:"out_of_stock_count"`
	TotalValue        float64        `json:"total_value"`
	CategoryBreakdown map[string]int `json:"category_breakdown"`
}

// SummarizeInventory classifies every item from its current quantity, so the
// result changes as soon as an update lands.
func SummarizeInventory(items []models.InventoryItem) InventorySummary {
	summary := InventorySummary{
		TotalItems:        len(items),
		CategoryBreakdown: make(map[string]int),
	}
	for _, item := range items {
		switch item.Status() {
		case models.StockStatusLow:
			summary.LowStockCount++
		case models.StockStatusOutOfStock:
			summary.OutOfStockCount++
		}
		summary.TotalValue += item.Value()
		summary.CategoryBreakdown[item.Category]++
	}
	return summary
}

func (h *InventoryHook) Summary() InventorySummary {
	return SummarizeInventory(h.Items())
}

func (h *InventoryHook) LowStockCount() int   { return h.Summary().LowStockCount }
func (h *InventoryHook) OutOfStockCount() int { return h.Summary().OutOfStockCount }
func (h *InventoryHook) TotalValue() float64  { return h.Summary().TotalValue }

// Classify reports the stock status of id as currently held by the hook.
func (h *InventoryHook) Classify(id string) (models.StockStatus, bool) {
	for _, item := range h.Items() {
		if item.ID == id {
			return item.Status(), true
		}
	}
	return "", false
}

// Products

type ProductHook struct {
	*ProductResource
}

type ProductSummary struct {
	TotalProducts int                          `json:"total_products"`
	Categories    []string                     `json:"categories"`
	ByStatus      map[models.ProductStatus]int `json:"by_status"`
	CatalogValue  float64                      `json:"catalog_value"`
}

func SummarizeProducts(items []models.Product) ProductSummary {
	summary := ProductSummary{
		TotalProducts: len(items),
		Categories:    make([]string, 0),
		ByStatus:      make(map[models.ProductStatus]int),
	}
	seen := make(map[string]bool)
	for _, p := range items {
		summary.ByStatus[p.Status]++
		summary.CatalogValue += p.Price * float64(p.Stock)
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			summary.Categories = append(summary.Categories, p.Category)
		}
	}
	return summary
}

func (h *ProductHook) Summary() ProductSummary {
	return SummarizeProducts(h.Items())
}

func (h *ProductHook) Categories() []string {
	return h.Summary().Categories
}

// Suppliers

type SupplierHook struct {
	*SupplierResource
}

type SupplierSummary struct {
	TotalSuppliers     int     `json:"total_suppliers"`
	AverageReliability float64 `json:"average_reliability"`
	AverageLeadTime    float64 `json:"average_lead_time"`
}

func SummarizeSuppliers(items []models.Supplier) SupplierSummary {
	summary := SupplierSummary{TotalSuppliers: len(items)}
	if len(items) == 0 {
		return summary
	}
	var reliability float64
	var lead int
	for _, s := range items {
		reliability += s.ReliabilityScore
		lead += s.LeadTimeDays
	}
	summary.AverageReliability = reliability / float64(len(items))
	summary.AverageLeadTime = float64(lead) / float64(len(items))
	return summary
}

func (h *SupplierHook) Summary() SupplierSummary {
	return SummarizeSuppliers(h.Items())
}

// Customers

type CustomerHook struct {
	*CustomerResource
}

type CustomerSummary struct {
	TotalCustomers  int            `json:"total_customers"`
	CountByLocation map[string]int `json:"count_by_location"`
}

func SummarizeCustomers(items []models.Customer) CustomerSummary {
	summary := CustomerSummary{
		TotalCustomers:  len(items),
		CountByLocation: make(map[string]int),
	}
	for _, c := range items {
		summary.CountByLocation[c.Location]++
	}
	return summary
}

func (h *CustomerHook) Summary() CustomerSummary {
	return SummarizeCustomers(h.Items())
}

// Shipments

type ShipmentHook struct {
	*ShipmentResource
}

type ShipmentSummary struct {
	TotalShipments  int                           `json:"total_shipments"`
	ByStatus        map[models.ShipmentStatus]int `json:"by_status"`
	AverageProgress float64                       `json:"average_progress"`
	TotalCost       float64                       `json:"total_cost"`
}

// SummarizeShipments reads status and progress independently; a delivered
// shipment contributes whatever progress it reports.
func SummarizeShipments(items []models.Shipment) ShipmentSummary {
	summary := ShipmentSummary{
		TotalShipments: len(items),
		ByStatus:       make(map[models.ShipmentStatus]int),
	}
	progress := 0
	for _, s := range items {
		summary.ByStatus[s.Status]++
		summary.TotalCost += s.Cost
		progress += s.Progress
	}
	if len(items) > 0 {
		summary.AverageProgress = float64(progress) / float64(len(items))
	}
	return summary
}

func (h *ShipmentHook) Summary() ShipmentSummary {
	return SummarizeShipments(h.Items())
}

func newInventoryHook(suite *services.Suite, opts Options) *InventoryHook {
	return &InventoryHook{NewResourceHook[models.InventoryItem, models.NewInventoryItem, models.InventoryPatch](suite.Inventory, suite.Notifications, opts)}
}

func newCustomerHook(suite *services.Suite, opts Options) *CustomerHook {
	return &CustomerHook{NewResourceHook[models.Customer, models.NewCustomer, models.CustomerPatch](suite.Customers, suite.Notifications, opts)}
}

func newSupplierHook(suite *services.Suite, opts Options) *SupplierHook {
	return &SupplierHook{NewResourceHook[models.Supplier, models.NewSupplier, models.SupplierPatch](suite.Suppliers, suite.Notifications, opts)}
}

func newProductHook(suite *services.Suite, opts Options) *ProductHook {
	return &ProductHook{NewResourceHook[models.Product, models.NewProduct, models.ProductPatch](suite.Products, suite.Notifications, opts)}
}

func newShipmentHook(suite *services.Suite, opts Options) *ShipmentHook {
	return &ShipmentHook{NewResourceHook[models.Shipment, models.NewShipment, models.ShipmentPatch](suite.Shipments, suite.Notifications, opts)}
}
