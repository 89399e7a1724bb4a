// internal/store/seed.go
package store

import (
	"time"

	"github.com/scmdash/scm-backend/internal/models"
)

func mustTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

// DemoSeed returns the dashboard's demo data set.
func DemoSeed() Seed {
	return Seed{
		Inventory: demoInventory(),
		Customers: demoCustomers(),
		Suppliers: demoSuppliers(),
		Products:  DemoProducts(),
		Orders:    demoOrders(),
		Shipments: demoShipments(),
	}
}

func demoInventory() []models.InventoryItem {
	return []models.InventoryItem{
		{ID: "INV-001", Name: "Microprocessors A12", SKU: "MP-A12-001", Category: "Electronics", Location: "Warehouse A, Bay 12", Quantity: 850, UnitCost: 115, ReorderPoint: 200, LeadTimeDays: 14, Supplier: "NanoChip Technologies", LastUpdated: mustTime("2023-10-30T14:30:00Z")},
		{ID: "INV-002", Name: "Display Modules 5.5\"", SKU: "DM-55-002", Category: "Components", Location: "Warehouse B, Bay 05", Quantity: 120, UnitCost: 65, ReorderPoint: 150, LeadTimeDays: 21, Supplier: "VisualTech Displays", LastUpdated: mustTime("2023-10-29T10:15:00Z")},
		{ID: "INV-003", Name: "Battery Cells 3000mAh", SKU: "BC-3K-003", Category: "Power", Location: "Warehouse A, Bay 18", Quantity: 25, UnitCost: 22, ReorderPoint: 100, LeadTimeDays: 10, Supplier: "PowerCell Industries", LastUpdated: mustTime("2023-10-30T16:45:00Z")},
		{ID: "INV-004", Name: "Aluminum Casings Type C", SKU: "AC-C-004", Category: "Materials", Location: "Warehouse C, Bay 03", Quantity: 450, UnitCost: 18, ReorderPoint: 150, LeadTimeDays: 30, Supplier: "MetalWorks Manufacturing", LastUpdated: mustTime("2023-10-28T09:20:00Z")},
		{ID: "INV-005", Name: "Circuit Boards V2", SKU: "CB-V2-005", Category: "Electronics", Location: "Warehouse A, Bay 14", Quantity: 320, UnitCost: 42, ReorderPoint: 100, LeadTimeDays: 14, Supplier: "NanoChip Technologies", LastUpdated: mustTime("2023-10-27T11:10:00Z")},
		{ID: "INV-006", Name: "Touch Sensors T10", SKU: "TS-T10-006", Category: "Components", Location: "Warehouse B, Bay 09", Quantity: 210, UnitCost: 12, ReorderPoint: 80, LeadTimeDays: 21, Supplier: "VisualTech Displays", LastUpdated: mustTime("2023-10-30T15:30:00Z")},
		{ID: "INV-007", Name: "Charging Modules 20W", SKU: "CM-20W-007", Category: "Power", Location: "Warehouse A, Bay 22", Quantity: 180, UnitCost: 8, ReorderPoint: 60, LeadTimeDays: 10, Supplier: "PowerCell Industries", LastUpdated: mustTime("2023-10-29T14:50:00Z")},
		{ID: "INV-008", Name: "Glass Panels Premium", SKU: "GP-P-008", Category: "Materials", Location: "Warehouse C, Bay 07", Quantity: 95, UnitCost: 35, ReorderPoint: 50, LeadTimeDays: 28, Supplier: "VisualTech Displays", LastUpdated: mustTime("2023-10-28T12:40:00Z")},
	}
}

func demoCustomers() []models.Customer {
	return []models.Customer{
		{
			ID:       "CUS-001",
			Name:     "TechCorp Solutions",
			Location: "San Francisco, CA",
			Contact:  models.CustomerContact{Name: "John Smith", Email: "john.smith@techcorp.com", Phone: "555-123-4567"},
			Notes:    "Premium enterprise client",
		},
		{
			ID:       "CUS-002",
			Name:     "Global Industries",
			Location: "Chicago, IL",
			Contact:  models.CustomerContact{Name: "Emma Johnson", Email: "emma.johnson@globalind.com", Phone: "555-222-3333"},
		},
		{
			ID:       "CUS-003",
			Name:     "Innovate Manufacturing",
			Location: "Austin, TX",
			Contact:  models.CustomerContact{Name: "Michael Brown", Email: "michael.brown@innovatemfg.com", Phone: "555-444-5555"},
			Notes:    "Regular bulk orders",
		},
	}
}

func demoSuppliers() []models.Supplier {
	return []models.Supplier{
		{ID: "SUP-001", Name: "NanoChip Technologies", Contact: "David Chen", Email: "david.chen@nanochip.com", Phone: "+1-415-555-0123", Location: "San Jose, CA", LeadTimeDays: 14, ReliabilityScore: 0.92, PaymentTerms: "Net 30", ProductCategories: []string{"Microprocessors", "Circuit Boards", "Memory Modules"}},
		{ID: "SUP-002", Name: "VisualTech Displays", Contact: "Sarah Kim", Email: "sarah.kim@visualtech.com", Phone: "+82-2-555-0199", Location: "Seoul, South Korea", LeadTimeDays: 21, ReliabilityScore: 0.88, PaymentTerms: "Net 45", ProductCategories: []string{"Display Modules", "Touch Sensors", "Glass Panels"}},
		{ID: "SUP-003", Name: "PowerCell Industries", Contact: "Michael Wong", Email: "m.wong@powercell.com", Phone: "+1-650-555-0177", Location: "Palo Alto, CA", LeadTimeDays: 10, ReliabilityScore: 0.94, PaymentTerms: "Net 30", ProductCategories: []string{"Battery Cells", "Charging Modules", "Power Management Units"}},
		{ID: "SUP-004", Name: "MetalWorks Manufacturing", Contact: "Carlos Rodriguez", Email: "c.rodriguez@metalworks.com", Phone: "+52-55-555-0144", Location: "Monterrey, Mexico", LeadTimeDays: 30, ReliabilityScore: 0.87, PaymentTerms: "Net 60", ProductCategories: []string{"Aluminum Casings", "Metal Frames", "Cooling Elements"}},
	}
}

// DemoProducts is exported because the product catalogue is also written to
// the persistent store the first time it is loaded.
func DemoProducts() []models.Product {
	return []models.Product{
		{ID: "PRD001", Name: "Ergonomic Office Chair", Category: "Furniture", Price: 249.99, Stock: 45, Status: models.ProductStatusInStock, Description: "Adjustable height and lumbar support for optimal comfort during long work hours.", SKU: "FURN-CHAIR-001", Supplier: "OfficePro Supplies", LastUpdated: "2025-03-28"},
		{ID: "PRD002", Name: "Standing Desk - Oak Finish", Category: "Furniture", Price: 399.99, Stock: 12, Status: models.ProductStatusLowStock, Description: "Motorized standing desk with memory height presets and cable management.", SKU: "FURN-DESK-002", Supplier: "ErgoDirect", LastUpdated: "2025-03-25"},
		{ID: "PRD003", Name: "Wireless Keyboard", Category: "Electronics", Price: 89.99, Stock: 68, Status: models.ProductStatusInStock, Description: "Bluetooth wireless keyboard with multi-device connectivity and backlit keys.", SKU: "ELEC-KB-003", Supplier: "TechAccessories Inc.", LastUpdated: "2025-04-01"},
		{ID: "PRD004", Name: "27-inch 4K Monitor", Category: "Electronics", Price: 349.99, Stock: 0, Status: models.ProductStatusOutOfStock, Description: "Ultra-sharp 4K resolution monitor with wide color gamut and eye comfort technology.", SKU: "ELEC-MON-004", Supplier: "VisualTech", LastUpdated: "2025-03-15"},
		{ID: "PRD005", Name: "Leather Notebook", Category: "Stationery", Price: 24.99, Stock: 124, Status: models.ProductStatusInStock, Description: "Premium leather-bound notebook with acid-free paper and bookmark ribbon.", SKU: "STAT-NB-005", Supplier: "PaperWorks Co.", LastUpdated: "2025-04-03"},
	}
}

func demoOrders() []models.Order {
	return []models.Order{
		{
			ID:       "ORD-001628",
			Customer: models.OrderCustomer{ID: "CUS-001", Name: "Apple Inc.", Location: "Cupertino, CA"},
			Products: []models.OrderLine{
				{ID: "INV-001", Name: "Microprocessors A12", Quantity: 200, Price: 125},
				{ID: "INV-002", Name: "Display Modules 5.5\"", Quantity: 150, Price: 75},
			},
			Status:            models.OrderStatusShipped,
			Priority:          "high",
			Total:             34840,
			CreatedAt:         mustTime("2023-11-01T09:00:00Z"),
			UpdatedAt:         mustTime("2023-11-01T14:30:00Z"),
			EstimatedDelivery: mustTime("2023-11-10T00:00:00Z"),
		},
		{
			ID:       "ORD-001627",
			Customer: models.OrderCustomer{ID: "CUS-002", Name: "Tesla Motors", Location: "Fremont, CA"},
			Products: []models.OrderLine{
				{ID: "INV-003", Name: "Battery Cells 3000mAh", Quantity: 500, Price: 24},
				{ID: "INV-007", Name: "Charging Modules 20W", Quantity: 50, Price: 11},
			},
			Status:            models.OrderStatusProcessing,
			Priority:          "medium",
			Total:             12350,
			CreatedAt:         mustTime("2023-10-31T15:20:00Z"),
			UpdatedAt:         mustTime("2023-10-31T16:45:00Z"),
			EstimatedDelivery: mustTime("2023-11-08T00:00:00Z"),
		},
		{
			ID:       "ORD-001626",
			Customer: models.OrderCustomer{ID: "CUS-003", Name: "Samsung Electronics", Location: "Seoul, SK"},
			Products: []models.OrderLine{
				{ID: "INV-001", Name: "Microprocessors A12", Quantity: 150, Price: 125},
				{ID: "INV-005", Name: "Circuit Boards V2", Quantity: 200, Price: 45},
				{ID: "INV-006", Name: "Touch Sensors T10", Quantity: 300, Price: 15},
			},
			Status:            models.OrderStatusDelivered,
			Priority:          "low",
			Total:             28654,
			CreatedAt:         mustTime("2023-10-30T10:15:00Z"),
			UpdatedAt:         mustTime("2023-11-01T09:30:00Z"),
			EstimatedDelivery: mustTime("2023-11-02T00:00:00Z"),
		},
		{
			ID:       "ORD-001625",
			Customer: models.OrderCustomer{ID: "CUS-004", Name: "Microsoft Corp", Location: "Redmond, WA"},
			Products: []models.OrderLine{
				{ID: "INV-002", Name: "Display Modules 5.5\"", Quantity: 100, Price: 75},
				{ID: "INV-005", Name: "Circuit Boards V2", Quantity: 150, Price: 45},
				{ID: "INV-008", Name: "Glass Panels Premium", Quantity: 80, Price: 40},
			},
			Status:            models.OrderStatusPending,
			Priority:          "medium",
			Total:             18290,
			CreatedAt:         mustTime("2023-10-29T14:50:00Z"),
			UpdatedAt:         mustTime("2023-10-29T14:50:00Z"),
			EstimatedDelivery: mustTime("2023-11-15T00:00:00Z"),
		},
	}
}

func demoShipments() []models.Shipment {
	return []models.Shipment{
		{ID: "SHP001", Origin: "Chicago, IL", Destination: "New York, NY", Carrier: "FastFreight Inc.", Mode: models.ShipmentModeTruck, Status: models.ShipmentStatusInTransit, Progress: 65, Cost: 2450, Priority: models.ShipmentPriorityHigh, DepartureDate: "2023-09-15", ETA: "2023-09-18"},
		{ID: "SHP002", Origin: "Los Angeles, CA", Destination: "Seattle, WA", Carrier: "Pacific Shipping", Mode: models.ShipmentModeShip, Status: models.ShipmentStatusInTransit, Progress: 40, Cost: 5800, Priority: models.ShipmentPriorityMedium, DepartureDate: "2023-09-10", ETA: "2023-09-20"},
		{ID: "SHP003", Origin: "Dallas, TX", Destination: "Miami, FL", Carrier: "AeroFreight", Mode: models.ShipmentModeAir, Status: models.ShipmentStatusScheduled, Progress: 0, Cost: 7200, Priority: models.ShipmentPriorityHigh, DepartureDate: "2023-09-17", ETA: "2023-09-18"},
		{ID: "SHP004", Origin: "Boston, MA", Destination: "Washington, DC", Carrier: "RailExpress", Mode: models.ShipmentModeRail, Status: models.ShipmentStatusDelivered, Progress: 100, Cost: 1900, Priority: models.ShipmentPriorityLow, DepartureDate: "2023-09-12", ETA: "2023-09-14"},
		{ID: "SHP005", Origin: "Denver, CO", Destination: "Phoenix, AZ", Carrier: "FastFreight Inc.", Mode: models.ShipmentModeTruck, Status: models.ShipmentStatusInTransit, Progress: 25, Cost: 2100, Priority: models.ShipmentPriorityMedium, DepartureDate: "2023-09-16", ETA: "2023-09-19"},
	}
}
