package repository

import (
	"auction-backend/internal/auctionerrors"
	model "auction-backend/internal/models"
	"errors"
	"fmt"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// GormRepo is a GORM-backed implementation of AuctionDB.
type GormRepo struct {
	db *gorm.DB
}

// Compile-time check that GormRepo satisfies AuctionDB.
var _ AuctionDB = (*GormRepo)(nil)

// NewGormRepo creates a repository on top of an open gorm.DB connection.
func NewGormRepo(db *gorm.DB) *GormRepo {
	return &GormRepo{db: db}
}

// OpenMySQL opens a MySQL connection and migrates the auction schema.
func OpenMySQL(dsn string) (*gorm.DB, error) {
	// TranslateError turns driver duplicate-key errors into gorm.ErrDuplicatedKey.
	db, err := gorm.Open(gmysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the tables backing the auction schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.User{}, &model.AuctionItem{}, &model.Bid{}); err != nil {
		return fmt.Errorf("migrate auction schema: %w", err)
	}
	return nil
}

// CreateItem inserts a new auction item
func (r *GormRepo) CreateItem(item model.AuctionItem) error {
	if err := r.db.Create(&item).Error; err != nil {
		return fmt.Errorf("create item %s: %w", item.ItemID, err)
	}
	return nil
}

// GetItem returns the auction item with the given ID
func (r *GormRepo) GetItem(itemID string) (model.AuctionItem, error) {
	var item model.AuctionItem
	if err := r.db.Where("item_id = ?", itemID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.AuctionItem{}, fmt.Errorf("get item %s: %w", itemID, auctionerrors.ErrItemNotFound)
		}
		return model.AuctionItem{}, fmt.Errorf("get item %s: %w", itemID, err)
	}
	return item, nil
}

// ListItems returns all auction items in creation order
func (r *GormRepo) ListItems() ([]model.AuctionItem, error) {
	var items []model.AuctionItem
	if err := r.db.Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// ListItemsByOwner returns all auction items created by the given user
func (r *GormRepo) ListItemsByOwner(ownerID string) ([]model.AuctionItem, error) {
	var items []model.AuctionItem
	if err := r.db.Where("created_by = ?", ownerID).Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list items for owner %s: %w", ownerID, err)
	}
	return items, nil
}

// SaveItem persists an updated auction item
func (r *GormRepo) SaveItem(item model.AuctionItem) error {
	if err := r.db.Save(&item).Error; err != nil {
		return fmt.Errorf("save item %s: %w", item.ItemID, err)
	}
	return nil
}

// DeleteItem removes an auction item
func (r *GormRepo) DeleteItem(itemID string) error {
	res := r.db.Where("item_id = ?", itemID).Delete(&model.AuctionItem{})
	if res.Error != nil {
		return fmt.Errorf("delete item %s: %w", itemID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete item %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	return nil
}

// CreateBid inserts a new bid
func (r *GormRepo) CreateBid(bid model.Bid) error {
	if err := r.db.Create(&bid).Error; err != nil {
		return fmt.Errorf("create bid for item %s: %w", bid.AuctionItemID, err)
	}
	return nil
}

// GetBidForUser returns the single bid a user holds on an item
func (r *GormRepo) GetBidForUser(itemID, userID string) (model.Bid, error) {
	var bid model.Bid
	err := r.db.Where("auction_item_id = ? AND user_id = ?", itemID, userID).First(&bid).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Bid{}, fmt.Errorf("get bid for item %s by user %s: %w", itemID, userID, auctionerrors.ErrBidNotFound)
		}
		return model.Bid{}, fmt.Errorf("get bid for item %s by user %s: %w", itemID, userID, err)
	}
	return bid, nil
}

// GetBidsByItem returns all bids for an item, oldest first. In-place amount
// updates keep created_at, so this matches insertion order.
func (r *GormRepo) GetBidsByItem(itemID string) ([]model.Bid, error) {
	var bids []model.Bid
	if err := r.db.Where("auction_item_id = ?", itemID).Order("created_at ASC").Find(&bids).Error; err != nil {
		return nil, fmt.Errorf("get bids for item %s: %w", itemID, err)
	}
	return bids, nil
}

// GetBidsByUser returns all bids placed by a user
func (r *GormRepo) GetBidsByUser(userID string) ([]model.Bid, error) {
	var bids []model.Bid
	if err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&bids).Error; err != nil {
		return nil, fmt.Errorf("get bids for user %s: %w", userID, err)
	}
	return bids, nil
}

// SaveBid updates an existing bid in place
func (r *GormRepo) SaveBid(bid model.Bid) error {
	res := r.db.Model(&model.Bid{}).Where("bid_id = ?", bid.BidID).
		Updates(map[string]any{"bid_amount": bid.BidAmount, "updated_at": bid.UpdatedAt})
	if res.Error != nil {
		return fmt.Errorf("save bid %s: %w", bid.BidID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("save bid %s: %w", bid.BidID, auctionerrors.ErrBidNotFound)
	}
	return nil
}

// DeleteBidsByItem removes every bid referencing the given item
func (r *GormRepo) DeleteBidsByItem(itemID string) error {
	if err := r.db.Where("auction_item_id = ?", itemID).Delete(&model.Bid{}).Error; err != nil {
		return fmt.Errorf("delete bids for item %s: %w", itemID, err)
	}
	return nil
}

// CreateUser inserts a new user. A duplicate email maps to ErrUserExists.
func (r *GormRepo) CreateUser(user model.User) error {
	if err := r.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("create user %s: %w", user.Email, auctionerrors.ErrUserExists)
		}
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}
	return nil
}

// GetUser returns the user with the given ID
func (r *GormRepo) GetUser(userID string) (model.User, error) {
	var user model.User
	if err := r.db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.User{}, fmt.Errorf("get user %s: %w", userID, auctionerrors.ErrUserNotFound)
		}
		return model.User{}, fmt.Errorf("get user %s: %w", userID, err)
	}
	return user, nil
}

// GetUserByEmail returns the user registered under the given email
func (r *GormRepo) GetUserByEmail(email string) (model.User, error) {
	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.User{}, fmt.Errorf("get user by email %s: %w", email, auctionerrors.ErrUserNotFound)
		}
		return model.User{}, fmt.Errorf("get user by email %s: %w", email, err)
	}
	return user, nil
}
