// internal/hooks/messages.go
package hooks

import "github.com/scmdash/scm-backend/internal/i18n"

const (
	actionAdd    = "add"
	actionUpdate = "update"
	actionDelete = "delete"
)

// Messages are the catalogue keys a hook announces its mutations with.
type Messages struct {
	CreatedTitle string
	Created      string
	UpdatedTitle string
	Updated      string
	DeletedTitle string
	Deleted      string
	Failed       string
	NotFound     string
}

var resourceMessages = map[string]Messages{
	"inventory": {
		CreatedTitle: i18n.KeyInventoryCreatedTitle, Created: i18n.KeyInventoryCreated,
		UpdatedTitle: i18n.KeyInventoryUpdatedTitle, Updated: i18n.KeyInventoryUpdated,
		DeletedTitle: i18n.KeyInventoryDeletedTitle, Deleted: i18n.KeyInventoryDeleted,
		Failed: i18n.KeyInventoryFailed, NotFound: i18n.KeyInventoryNotFound,
	},
	"customers": {
		CreatedTitle: i18n.KeyCustomersCreatedTitle, Created: i18n.KeyCustomersCreated,
		UpdatedTitle: i18n.KeyCustomersUpdatedTitle, Updated: i18n.KeyCustomersUpdated,
		DeletedTitle: i18n.KeyCustomersDeletedTitle, Deleted: i18n.KeyCustomersDeleted,
		Failed: i18n.KeyCustomersFailed, NotFound: i18n.KeyCustomersNotFound,
	},
	"suppliers": {
		CreatedTitle: i18n.KeySuppliersCreatedTitle, Created: i18n.KeySuppliersCreated,
		UpdatedTitle: i18n.KeySuppliersUpdatedTitle, Updated: i18n.KeySuppliersUpdated,
		DeletedTitle: i18n.KeySuppliersDeletedTitle, Deleted: i18n.KeySuppliersDeleted,
		Failed: i18n.KeySuppliersFailed, NotFound: i18n.KeySuppliersNotFound,
	},
	"products": {
		CreatedTitle: i18n.KeyProductsCreatedTitle, Created: i18n.KeyProductsCreated,
		UpdatedTitle: i18n.KeyProductsUpdatedTitle, Updated: i18n.KeyProductsUpdated,
		DeletedTitle: i18n.KeyProductsDeletedTitle, Deleted: i18n.KeyProductsDeleted,
		Failed: i18n.KeyProductsFailed, NotFound: i18n.KeyProductsNotFound,
	},
	"shipments": {
		CreatedTitle: i18n.KeyShipmentsCreatedTitle, Created: i18n.KeyShipmentsCreated,
		UpdatedTitle: i18n.KeyShipmentsUpdatedTitle, Updated: i18n.KeyShipmentsUpdated,
		DeletedTitle: i18n.KeyShipmentsDeletedTitle, Deleted: i18n.KeyShipmentsDeleted,
		Failed: i18n.KeyShipmentsFailed, NotFound: i18n.KeyShipmentsNotFound,
	},
}

// messagesFor falls back to keys derived from the resource name.
func messagesFor(resource string) Messages {
	if m, ok := resourceMessages[resource]; ok {
		return m
	}
	return Messages{
		CreatedTitle: resource + ".created.title",
		Created:      resource + ".created",
		UpdatedTitle: resource + ".updated.title",
		Updated:      resource + ".updated",
		DeletedTitle: resource + ".deleted.title",
		Deleted:      resource + ".deleted",
		Failed:       resource + ".failed",
		NotFound:     resource + ".not_found",
	}
}

func NotFoundKey(resource string) string {
	return messagesFor(resource).NotFound
}

func FailedKey(resource string) string {
	return messagesFor(resource).Failed
}
