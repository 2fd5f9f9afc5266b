// Package store implements the in-memory farm store: name-deduplicated
// articles and farmers, append-only schedules, and a per-article inventory
// ledger. All operations are total; there are no error conditions and no
// deletions. A store is owned by a single intake run and is not locked.
package store

import (
	"github.com/fieldworks/farmgate/pkg/types"
)

// FarmStore owns the collections an intake run records into.
type FarmStore struct {
	articles     []*types.Article
	articleIndex map[string]*types.Article

	farmers     []*types.Farmer
	farmerIndex map[string]*types.Farmer

	schedules []types.Schedule

	inventory map[*types.Article]*types.InventoryItem
}

// New creates an empty FarmStore.
func New() *FarmStore {
	return &FarmStore{
		articleIndex: make(map[string]*types.Article),
		farmerIndex:  make(map[string]*types.Farmer),
		inventory:    make(map[*types.Article]*types.InventoryItem),
	}
}

// AddArticle returns the article with the given name, creating and appending
// it if no article with that name exists yet. Repeated calls with the same
// name return the identical pointer.
func (s *FarmStore) AddArticle(name string) *types.Article {
	if existing, ok := s.articleIndex[name]; ok {
		return existing
	}
	a := &types.Article{Name: name}
	s.articles = append(s.articles, a)
	s.articleIndex[name] = a
	return a
}

// AddFarmer returns the farmer with the given name, creating and appending it
// if absent. Same dedup rule as AddArticle.
func (s *FarmStore) AddFarmer(name string) *types.Farmer {
	if existing, ok := s.farmerIndex[name]; ok {
		return existing
	}
	f := &types.Farmer{Name: name}
	s.farmers = append(s.farmers, f)
	s.farmerIndex[name] = f
	return f
}

// AddSchedule appends a schedule entry. Duplicate (article, date) pairs are
// allowed.
func (s *FarmStore) AddSchedule(article *types.Article, date string) {
	s.schedules = append(s.schedules, types.Schedule{Article: article, Date: date})
}

// AddStock adjusts the inventory for an article by delta, creating a
// zero-quantity entry first if the article has none. Delta may be negative
// and the resulting quantity has no floor.
func (s *FarmStore) AddStock(article *types.Article, delta int) {
	item, ok := s.inventory[article]
	if !ok {
		item = &types.InventoryItem{Article: article}
		s.inventory[article] = item
	}
	item.Add(delta)
}

// Articles returns the articles in insertion order.
func (s *FarmStore) Articles() []*types.Article {
	out := make([]*types.Article, len(s.articles))
	copy(out, s.articles)
	return out
}

// Farmers returns the farmers in insertion order.
func (s *FarmStore) Farmers() []*types.Farmer {
	out := make([]*types.Farmer, len(s.farmers))
	copy(out, s.farmers)
	return out
}

// Schedules returns the schedules in append order.
func (s *FarmStore) Schedules() []types.Schedule {
	out := make([]types.Schedule, len(s.schedules))
	copy(out, s.schedules)
	return out
}

// Inventory returns one entry per stocked article, ordered by article
// insertion so reports are deterministic. The returned items are copies.
func (s *FarmStore) Inventory() []types.InventoryItem {
	out := make([]types.InventoryItem, 0, len(s.inventory))
	for _, a := range s.articles {
		if item, ok := s.inventory[a]; ok {
			out = append(out, *item)
		}
	}
	return out
}

// Quantity reports the stocked quantity for an article and whether the
// article has an inventory entry at all.
func (s *FarmStore) Quantity(article *types.Article) (int, bool) {
	item, ok := s.inventory[article]
	if !ok {
		return 0, false
	}
	return item.Quantity, true
}

// Empty reports whether the store holds no records of any kind.
func (s *FarmStore) Empty() bool {
	return len(s.articles) == 0 && len(s.farmers) == 0 &&
		len(s.schedules) == 0 && len(s.inventory) == 0
}
