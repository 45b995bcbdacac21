package models

import "time"

// User represents a registered participant in the auction system.
// Password holds the bcrypt hash and is never serialized.
type User struct {
	UserID    string    `gorm:"primaryKey;size:36" json:"user_id"`
	Username  string    `gorm:"size:50;not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuctionItem represents a listing with a floor price and a closing time.
// The item is open while the current time precedes EndDate.
type AuctionItem struct {
	ItemID      string    `gorm:"primaryKey;size:36" json:"item_id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	StartingBid float64   `gorm:"not null" json:"starting_bid"`
	EndDate     time.Time `gorm:"index" json:"end_date"`
	CreatedBy   string    `gorm:"index;size:36" json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Bid is a bidder's current best offer for one item.
// At most one Bid exists per (AuctionItemID, UserID) pair; BidAmount only
// ever increases for that pair.
type Bid struct {
	BidID         string    `gorm:"primaryKey;size:36" json:"bid_id"`
	AuctionItemID string    `gorm:"size:36;index;uniqueIndex:idx_item_user" json:"auction_item_id"`
	UserID        string    `gorm:"size:36;uniqueIndex:idx_item_user" json:"user_id"`
	BidAmount     float64   `gorm:"not null" json:"bid_amount"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ItemSummary is the reduced auction item view attached to bid listings.
type ItemSummary struct {
	ItemID      string    `json:"item_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EndDate     time.Time `json:"end_date"`
}

// BidWithBidder is a bid annotated with the bidder's username.
// Bidder is nil when the user record could not be resolved.
type BidWithBidder struct {
	Bid
	Bidder *string `json:"bidder"`
}

// BidWithItem is a bid annotated with a summary of its auction item.
// AuctionItem is nil when the item has since been deleted.
type BidWithItem struct {
	Bid
	AuctionItem *ItemSummary `json:"auction_item"`
}

// WonAuction summarizes a closed auction won by a user.
type WonAuction struct {
	AuctionID   string    `json:"auction_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	WinningBid  float64   `json:"winning_bid"`
	EndDate     time.Time `json:"end_date"`
}
