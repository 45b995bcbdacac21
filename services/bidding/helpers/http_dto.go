package helpers

// Request/Response DTOs
type PlaceBidRequest struct {
	AuctionItemID string  `json:"auction_item_id" binding:"required"`
	BidAmount     float64 `json:"bid_amount" binding:"required,gt=0"`
}

type BidResponse struct {
	BidID         string  `json:"bid_id"`
	AuctionItemID string  `json:"auction_item_id"`
	UserID        string  `json:"user_id"`
	BidAmount     float64 `json:"bid_amount"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}
