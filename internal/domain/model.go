package domain

import (
	"encoding/json"
	"time"
)

// DateLayout is the timestamp format used in persisted order documents.
const DateLayout = "2006-01-02 15:04:05"

// Category classifies a menu item.
type Category string

const (
	CategoryFlavor    Category = "flavor"
	CategoryTopping   Category = "topping"
	CategoryContainer Category = "container"
)

// Categories enumerates all menu categories in display order.
var Categories = []Category{CategoryFlavor, CategoryTopping, CategoryContainer}

// MenuItem is a sellable catalog entry. Immutable once created.
type MenuItem struct {
	ItemID   string   `json:"item_id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Category Category `json:"category"`
}

// OrderLine is one (item id, quantity) pair in an order's cart.
// It has no identity of its own; it is owned by its parent order.
type OrderLine struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// UnmarshalJSON defaults the quantity to 1 when the persisted document
// omits the field.
func (l *OrderLine) UnmarshalJSON(data []byte) error {
	var doc struct {
		ItemID   string `json:"item_id"`
		Quantity *int   `json:"quantity"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	l.ItemID = doc.ItemID
	l.Quantity = 1
	if doc.Quantity != nil {
		l.Quantity = *doc.Quantity
	}
	return nil
}

// Order statuses. Status is an open string: UpdateStatus accepts values
// outside this set and persists them as-is.
const (
	StatusPending   = "pending"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusCompleted = "completed"
)

// Order is a customer's cart plus its lifecycle state. It references its
// customer and menu items by id only; all cross-entity data is resolved
// by lookup at use time, so later catalog or customer edits show up
// lazily.
type Order struct {
	OrderID     string      `json:"order_id"`
	CustomerID  string      `json:"customer_id"`
	OrderDate   string      `json:"order_date"`
	Items       []OrderLine `json:"items"`
	Status      string      `json:"status"`
	TotalAmount float64     `json:"total_amount"`
}

// NewOrder creates an empty pending order dated now.
func NewOrder(orderID, customerID string) *Order {
	return &Order{
		OrderID:    orderID,
		CustomerID: customerID,
		OrderDate:  time.Now().Format(DateLayout),
		Items:      []OrderLine{},
		Status:     StatusPending,
	}
}

// AddItem appends a line item. The item id is not checked against the
// catalog here; unknown ids simply contribute nothing at total time.
func (o *Order) AddItem(itemID string, quantity int) {
	o.Items = append(o.Items, OrderLine{ItemID: itemID, Quantity: quantity})
}

// ComputeTotal walks the line items in insertion order, pricing each one
// via the catalog. Lines whose item id does not resolve are skipped.
// The computed total is stored on the order and returned.
func (o *Order) ComputeTotal(catalog CatalogLookup) float64 {
	total := 0.0
	for _, line := range o.Items {
		if item, ok := catalog.FindItem(line.ItemID); ok {
			total += item.Price * float64(line.Quantity)
		}
	}
	o.TotalAmount = total
	return total
}

// Customer is a registry entry with an append-only order history.
type Customer struct {
	CustomerID   string   `json:"customer_id"`
	Name         string   `json:"name"`
	OrderHistory []string `json:"order_history"`
}

// AddOrderToHistory appends an order id to the customer's history.
func (c *Customer) AddOrderToHistory(orderID string) {
	c.OrderHistory = append(c.OrderHistory, orderID)
}

// DetailLine is one resolved, priced line of an order details view.
type DetailLine struct {
	ItemID    string  `json:"item_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

// OrderDetails is the presentation view of an order: the customer name
// resolved from the ledger (empty when the customer is unknown) and only
// the lines whose item id resolved in the catalog.
type OrderDetails struct {
	Order        *Order       `json:"order"`
	CustomerName string       `json:"customer_name,omitempty"`
	Lines        []DetailLine `json:"lines"`
}

// AuditEntry is one change-journal record.
type AuditEntry struct {
	Hash    string    `json:"hash"`
	Message string    `json:"message"`
	When    time.Time `json:"when"`
}
