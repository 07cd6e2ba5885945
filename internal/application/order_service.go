package application

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/scoopctl/scoopctl/internal/domain"
)

// OrderService orchestrates the order workflow: draft creation, placement
// against the catalog and customer ledger, status updates, and full-file
// persistence of the order collection.
//
// Orders live in an insertion-ordered slice with an id index. Every
// mutating operation rewrites the whole collection; there is no
// incremental persistence.
type OrderService struct {
	store    domain.BlobStore
	catalog  domain.CatalogLookup
	ledger   domain.CustomerLedger
	journal  domain.ChangeJournal
	idScheme domain.IDScheme
	orders   []*domain.Order
	byID     map[string]*domain.Order
}

// OrderOption configures an OrderService.
type OrderOption func(*OrderService)

// WithIDScheme selects the order id generation scheme.
func WithIDScheme(scheme domain.IDScheme) OrderOption {
	return func(s *OrderService) {
		if scheme != "" {
			s.idScheme = scheme
		}
	}
}

// WithJournal records order mutations in a change journal.
func WithJournal(journal domain.ChangeJournal) OrderOption {
	return func(s *OrderService) { s.journal = journal }
}

// NewOrderService loads all known orders from the blob store.
func NewOrderService(
	store domain.BlobStore,
	catalog domain.CatalogLookup,
	ledger domain.CustomerLedger,
	opts ...OrderOption,
) *OrderService {
	s := &OrderService{
		store:    store,
		catalog:  catalog,
		ledger:   ledger,
		idScheme: domain.IDSchemeRandom,
		byID:     make(map[string]*domain.Order),
	}
	for _, opt := range opts {
		opt(s)
	}
	store.Load(domain.OrdersFile, &s.orders)
	for _, o := range s.orders {
		s.byID[o.OrderID] = o
	}
	return s
}

// generateOrderID produces a new order identifier. The default scheme is
// "ORD" plus four random decimal digits with no collision check against
// existing orders; the uuid scheme trades the short format for
// uniqueness.
func (s *OrderService) generateOrderID() string {
	if s.idScheme == domain.IDSchemeUUID {
		return "ORD-" + uuid.NewString()
	}
	return fmt.Sprintf("ORD%d", 1000+rand.IntN(9000))
}

// CreateOrder allocates a pending order with an empty cart and appends
// it to the in-memory collection. The draft is not persisted until
// PlaceOrder; a crash before placement loses it.
func (s *OrderService) CreateOrder(customerID string) *domain.Order {
	order := domain.NewOrder(s.generateOrderID(), customerID)
	s.orders = append(s.orders, order)
	s.byID[order.OrderID] = order
	return order
}

// PlaceOrder finalizes an order: computes its total from the catalog,
// records the order id in the customer's history (the ledger persists
// itself), then persists the full order collection. Returns false when
// the order write fails; the ledger mutation is not rolled back in that
// case.
func (s *OrderService) PlaceOrder(order *domain.Order) bool {
	order.ComputeTotal(s.catalog)
	s.ledger.RecordOrder(order.CustomerID, order.OrderID)
	if !s.store.Save(domain.OrdersFile, s.orders) {
		return false
	}
	if s.journal != nil {
		s.journal.Record("order: place " + order.OrderID)
	}
	return true
}

// FindOrder resolves an order by id.
func (s *OrderService) FindOrder(orderID string) (*domain.Order, bool) {
	order, ok := s.byID[orderID]
	return order, ok
}

// Orders returns all known orders in insertion order.
func (s *OrderService) Orders() []*domain.Order {
	return s.orders
}

// UpdateStatus sets an order's status and persists the collection. Any
// status string is accepted; there is no transition enforcement. Returns
// false for an unknown order id or a failed write.
func (s *OrderService) UpdateStatus(orderID, status string) bool {
	order, ok := s.byID[orderID]
	if !ok {
		return false
	}
	order.Status = status
	if !s.store.Save(domain.OrdersFile, s.orders) {
		return false
	}
	if s.journal != nil {
		s.journal.Record("order: " + orderID + " -> " + status)
	}
	return true
}

// OrderDetails builds the presentation view of an order: the customer
// name resolved from the ledger (left empty when the customer is
// unknown) and only the cart lines that resolve in the catalog.
func (s *OrderService) OrderDetails(orderID string) (*domain.OrderDetails, bool) {
	order, ok := s.byID[orderID]
	if !ok {
		return nil, false
	}

	details := &domain.OrderDetails{Order: order}
	if customer, ok := s.ledger.FindCustomer(order.CustomerID); ok {
		details.CustomerName = customer.Name
	}
	for _, line := range order.Items {
		item, ok := s.catalog.FindItem(line.ItemID)
		if !ok {
			continue
		}
		details.Lines = append(details.Lines, domain.DetailLine{
			ItemID:    line.ItemID,
			Name:      item.Name,
			Quantity:  line.Quantity,
			LineTotal: item.Price * float64(line.Quantity),
		})
	}
	return details, true
}
