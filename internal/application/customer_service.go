package application

import (
	"github.com/scoopctl/scoopctl/internal/domain"
)

// CustomerService owns the customer registry and its append-only order
// histories.
type CustomerService struct {
	store     domain.BlobStore
	journal   domain.ChangeJournal
	customers []*domain.Customer
	byID      map[string]*domain.Customer
}

// NewCustomerService loads the registry from the blob store.
func NewCustomerService(store domain.BlobStore, journal domain.ChangeJournal) *CustomerService {
	s := &CustomerService{
		store:   store,
		journal: journal,
		byID:    make(map[string]*domain.Customer),
	}
	store.Load(domain.CustomersFile, &s.customers)
	for _, c := range s.customers {
		s.byID[c.CustomerID] = c
	}
	return s
}

// AddCustomer registers a new customer and persists the registry.
func (s *CustomerService) AddCustomer(customerID, name string) *domain.Customer {
	customer := &domain.Customer{CustomerID: customerID, Name: name}
	s.customers = append(s.customers, customer)
	s.byID[customer.CustomerID] = customer
	s.store.Save(domain.CustomersFile, s.customers)
	if s.journal != nil {
		s.journal.Record("customer: add " + customerID)
	}
	return customer
}

// FindCustomer resolves a customer by id.
func (s *CustomerService) FindCustomer(customerID string) (*domain.Customer, bool) {
	customer, ok := s.byID[customerID]
	return customer, ok
}

// RecordOrder appends an order id to the customer's history and persists
// the registry. Unknown customers are a no-op.
func (s *CustomerService) RecordOrder(customerID, orderID string) {
	customer, ok := s.byID[customerID]
	if !ok {
		return
	}
	customer.AddOrderToHistory(orderID)
	s.store.Save(domain.CustomersFile, s.customers)
}

// Customers returns all customers in insertion order.
func (s *CustomerService) Customers() []*domain.Customer {
	return s.customers
}
