// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"
	KeyWarning = "warning"

	// Validation
	KeyValidationInvalid = "validation.invalid"
	KeyInternalError     = "internal.error"

	// Inventory
	KeyInventoryCreated      = "inventory.created"
	KeyInventoryCreatedTitle = "inventory.created.title"
	KeyInventoryUpdated      = "inventory.updated"
	KeyInventoryUpdatedTitle = "inventory.updated.title"
	KeyInventoryDeleted      = "inventory.deleted"
	KeyInventoryDeletedTitle = "inventory.deleted.title"
	KeyInventoryFailed       = "inventory.failed"
	KeyInventoryNotFound     = "inventory.not_found"

	// Customers
	KeyCustomersCreated      = "customers.created"
	KeyCustomersCreatedTitle = "customers.created.title"
	KeyCustomersUpdated      = "customers.updated"
	KeyCustomersUpdatedTitle = "customers.updated.title"
	KeyCustomersDeleted      = "customers.deleted"
	KeyCustomersDeletedTitle = "customers.deleted.title"
	KeyCustomersFailed       = "customers.failed"
	KeyCustomersNotFound     = "customers.not_found"

	// Suppliers
	KeySuppliersCreated      = "suppliers.created"
	KeySuppliersCreatedTitle = "suppliers.created.title"
	KeySuppliersUpdated      = "suppliers.updated"
	KeySuppliersUpdatedTitle = "suppliers.updated.title"
	KeySuppliersDeleted      = "suppliers.deleted"
	KeySuppliersDeletedTitle = "suppliers.deleted.title"
	KeySuppliersFailed       = "suppliers.failed"
	KeySuppliersNotFound     = "suppliers.not_found"

	// Products
	KeyProductsCreated      = "products.created"
	KeyProductsCreatedTitle = "products.created.title"
	KeyProductsUpdated      = "products.updated"
	KeyProductsUpdatedTitle = "products.updated.title"
	KeyProductsDeleted      = "products.deleted"
	KeyProductsDeletedTitle = "products.deleted.title"
	KeyProductsFailed       = "products.failed"
	KeyProductsNotFound     = "products.not_found"

	// Shipments
	KeyShipmentsCreated      = "shipments.created"
	KeyShipmentsCreatedTitle = "shipments.created.title"
	KeyShipmentsUpdated      = "shipments.updated"
	KeyShipmentsUpdatedTitle = "shipments.updated.title"
	KeyShipmentsDeleted      = "shipments.deleted"
	KeyShipmentsDeletedTitle = "shipments.deleted.title"
	KeyShipmentsFailed       = "shipments.failed"
	KeyShipmentsNotFound     = "shipments.not_found"

	// Orders
	KeyOrderStatusUpdated = "orders.status_updated"
	KeyOrderNoteAdded     = "orders.note_added"
	KeyOrdersExported     = "orders.exported"
	KeyOrdersNotFound     = "orders.not_found"

	// Insights
	KeyInsightsConfigured    = "insights.configured"
	KeyInsightsNotConfigured = "insights.not_configured"
	KeyInsightsFallback      = "insights.fallback"
)
