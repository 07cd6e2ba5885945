package application

import (
	"github.com/scoopctl/scoopctl/internal/domain"
)

// MenuService owns the menu catalog: an insertion-ordered collection of
// menu items with an id index, loaded eagerly and rewritten in full on
// every mutation.
type MenuService struct {
	store   domain.BlobStore
	journal domain.ChangeJournal
	items   []*domain.MenuItem
	byID    map[string]*domain.MenuItem
}

// NewMenuService loads the catalog from the blob store.
func NewMenuService(store domain.BlobStore, journal domain.ChangeJournal) *MenuService {
	s := &MenuService{
		store:   store,
		journal: journal,
		byID:    make(map[string]*domain.MenuItem),
	}
	store.Load(domain.MenuFile, &s.items)
	for _, item := range s.items {
		s.byID[item.ItemID] = item
	}
	return s
}

// AddItem appends a new catalog entry and persists the menu.
func (s *MenuService) AddItem(itemID, name string, price float64, category domain.Category) bool {
	item := &domain.MenuItem{ItemID: itemID, Name: name, Price: price, Category: category}
	s.items = append(s.items, item)
	s.byID[item.ItemID] = item
	if !s.store.Save(domain.MenuFile, s.items) {
		return false
	}
	if s.journal != nil {
		s.journal.Record("menu: add " + itemID + " " + name)
	}
	return true
}

// FindItem resolves a menu item by id.
func (s *MenuService) FindItem(itemID string) (*domain.MenuItem, bool) {
	item, ok := s.byID[itemID]
	return item, ok
}

// Items returns all menu items in insertion order.
func (s *MenuService) Items() []*domain.MenuItem {
	return s.items
}

// ItemsByCategory returns the items of one category in insertion order.
func (s *MenuService) ItemsByCategory(category domain.Category) []*domain.MenuItem {
	var out []*domain.MenuItem
	for _, item := range s.items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// sampleMenu is the bootstrap catalog for a fresh shop.
var sampleMenu = []*domain.MenuItem{
	{ItemID: "F01", Name: "Vanilla", Price: 200, Category: domain.CategoryFlavor},
	{ItemID: "F02", Name: "Chocolate", Price: 200, Category: domain.CategoryFlavor},
	{ItemID: "F03", Name: "Strawberry", Price: 300, Category: domain.CategoryFlavor},
	{ItemID: "T01", Name: "Sprinkles", Price: 60, Category: domain.CategoryTopping},
	{ItemID: "T02", Name: "Hot Fudge", Price: 75, Category: domain.CategoryTopping},
	{ItemID: "C01", Name: "Regular Cone", Price: 100, Category: domain.CategoryContainer},
	{ItemID: "C02", Name: "Waffle Cone", Price: 200, Category: domain.CategoryContainer},
	{ItemID: "C03", Name: "Cup", Price: 50, Category: domain.CategoryContainer},
}

// Seed loads the sample menu into an empty catalog. A catalog that
// already has items is left alone.
func (s *MenuService) Seed() bool {
	if len(s.items) > 0 {
		return true
	}
	for _, item := range sampleMenu {
		s.items = append(s.items, item)
		s.byID[item.ItemID] = item
	}
	if !s.store.Save(domain.MenuFile, s.items) {
		return false
	}
	if s.journal != nil {
		s.journal.Record("menu: seed sample catalog")
	}
	return true
}
