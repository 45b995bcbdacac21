package repository

import (
	"auction-backend/internal/auctionerrors"
	model "auction-backend/internal/models"
	"fmt"
	"sync"
)

// AuctionDB defines the record store interface for the auction system.
// Bid listings are returned in insertion order; an in-place amount update
// never changes a bid's position.
type AuctionDB interface {
	CreateItem(item model.AuctionItem) error
	GetItem(itemID string) (model.AuctionItem, error)
	ListItems() ([]model.AuctionItem, error)
	ListItemsByOwner(ownerID string) ([]model.AuctionItem, error)
	SaveItem(item model.AuctionItem) error
	DeleteItem(itemID string) error

	CreateBid(bid model.Bid) error
	GetBidForUser(itemID, userID string) (model.Bid, error)
	GetBidsByItem(itemID string) ([]model.Bid, error)
	GetBidsByUser(userID string) ([]model.Bid, error)
	SaveBid(bid model.Bid) error
	DeleteBidsByItem(itemID string) error

	CreateUser(user model.User) error
	GetUser(userID string) (model.User, error)
	GetUserByEmail(email string) (model.User, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB.
// It is the default store when no database is configured and the backing
// store for integration and performance tests.
type MemoryRepo struct {
	mu           sync.RWMutex
	items        map[string]model.AuctionItem
	itemOrder    []string                // itemIDs in creation order
	bids         map[string][]model.Bid  // key: itemID -> bids in insertion order
	users        map[string]model.User   // key: userID
	usersByEmail map[string]string       // key: email -> userID
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		items:        make(map[string]model.AuctionItem),
		bids:         make(map[string][]model.Bid),
		users:        make(map[string]model.User),
		usersByEmail: make(map[string]string),
	}
}

// CreateItem adds a new auction item to the repository
func (r *MemoryRepo) CreateItem(item model.AuctionItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ItemID]; !ok {
		r.itemOrder = append(r.itemOrder, item.ItemID)
	}
	r.items[item.ItemID] = item
	return nil
}

// GetItem returns the auction item with the given ID
func (r *MemoryRepo) GetItem(itemID string) (model.AuctionItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[itemID]
	if !ok {
		return model.AuctionItem{}, fmt.Errorf("get item %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	return item, nil
}

// ListItems returns all auction items in creation order
func (r *MemoryRepo) ListItems() ([]model.AuctionItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]model.AuctionItem, 0, len(r.itemOrder))
	for _, id := range r.itemOrder {
		if item, ok := r.items[id]; ok {
			items = append(items, item)
		}
	}
	return items, nil
}

// ListItemsByOwner returns all auction items created by the given user
func (r *MemoryRepo) ListItemsByOwner(ownerID string) ([]model.AuctionItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var items []model.AuctionItem
	for _, id := range r.itemOrder {
		if item, ok := r.items[id]; ok && item.CreatedBy == ownerID {
			items = append(items, item)
		}
	}
	return items, nil
}

// SaveItem persists an updated auction item
func (r *MemoryRepo) SaveItem(item model.AuctionItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ItemID]; !ok {
		return fmt.Errorf("save item %s: %w", item.ItemID, auctionerrors.ErrItemNotFound)
	}
	r.items[item.ItemID] = item
	return nil
}

// DeleteItem removes an auction item. Bids are removed separately via
// DeleteBidsByItem; the store does not cascade.
func (r *MemoryRepo) DeleteItem(itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[itemID]; !ok {
		return fmt.Errorf("delete item %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	delete(r.items, itemID)
	for i, id := range r.itemOrder {
		if id == itemID {
			r.itemOrder = append(r.itemOrder[:i], r.itemOrder[i+1:]...)
			break
		}
	}
	return nil
}

// CreateBid appends a new bid for an item
func (r *MemoryRepo) CreateBid(bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.bids[bid.AuctionItemID] {
		if b.UserID == bid.UserID {
			return fmt.Errorf("create bid for item %s: bid by user %s already exists", bid.AuctionItemID, bid.UserID)
		}
	}
	r.bids[bid.AuctionItemID] = append(r.bids[bid.AuctionItemID], bid)
	return nil
}

// GetBidForUser returns the single bid a user holds on an item
func (r *MemoryRepo) GetBidForUser(itemID, userID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.bids[itemID] {
		if b.UserID == userID {
			return b, nil
		}
	}
	return model.Bid{}, fmt.Errorf("get bid for item %s by user %s: %w", itemID, userID, auctionerrors.ErrBidNotFound)
}

// GetBidsByItem returns all bids for an item in insertion order
func (r *MemoryRepo) GetBidsByItem(itemID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]model.Bid(nil), r.bids[itemID]...), nil
}

// GetBidsByUser returns all bids placed by a user across items
func (r *MemoryRepo) GetBidsByUser(userID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Bid
	for _, itemID := range r.itemOrder {
		for _, b := range r.bids[itemID] {
			if b.UserID == userID {
				out = append(out, b)
			}
		}
	}
	// bids on items that have since been deleted
	for itemID, bids := range r.bids {
		if _, ok := r.items[itemID]; ok {
			continue
		}
		for _, b := range bids {
			if b.UserID == userID {
				out = append(out, b)
			}
		}
	}
	return out, nil
}

// SaveBid updates an existing bid in place, preserving its position
func (r *MemoryRepo) SaveBid(bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	bids := r.bids[bid.AuctionItemID]
	for i, b := range bids {
		if b.BidID == bid.BidID {
			bids[i] = bid
			return nil
		}
	}
	return fmt.Errorf("save bid %s: %w", bid.BidID, auctionerrors.ErrBidNotFound)
}

// DeleteBidsByItem removes every bid referencing the given item
func (r *MemoryRepo) DeleteBidsByItem(itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.bids, itemID)
	return nil
}

// CreateUser adds a new user to the repository
func (r *MemoryRepo) CreateUser(user model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.usersByEmail[user.Email]; ok {
		return fmt.Errorf("create user %s: %w", user.Email, auctionerrors.ErrUserExists)
	}
	r.users[user.UserID] = user
	r.usersByEmail[user.Email] = user.UserID
	return nil
}

// GetUser returns the user with the given ID
func (r *MemoryRepo) GetUser(userID string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	return user, nil
}

// GetUserByEmail returns the user registered under the given email
func (r *MemoryRepo) GetUserByEmail(email string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userID, ok := r.usersByEmail[email]
	if !ok {
		return model.User{}, fmt.Errorf("get user by email %s: %w", email, auctionerrors.ErrUserNotFound)
	}
	return r.users[userID], nil
}
