package domain

// Persisted document names.
const (
	OrdersFile    = "orders.json"
	MenuFile      = "menu.json"
	CustomersFile = "customers.json"
)

// BlobStore persists named JSON documents in a data directory. Read
// failures degrade to the empty default and write failures report false;
// both are logged at the adapter, never surfaced as errors.
type BlobStore interface {
	Load(name string, out any)
	Save(name string, v any) bool
}

// CatalogLookup resolves menu items by id.
type CatalogLookup interface {
	FindItem(itemID string) (*MenuItem, bool)
}

// CustomerLedger resolves customers and records placed orders in their
// history.
type CustomerLedger interface {
	FindCustomer(customerID string) (*Customer, bool)
	RecordOrder(customerID, orderID string)
}

// ChangeJournal records data-directory mutations for auditing.
// Implementations are best-effort; a failed record never fails the
// mutation it describes.
type ChangeJournal interface {
	Record(message string)
	Entries(limit int) ([]AuditEntry, error)
}
