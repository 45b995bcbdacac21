package helpers

// Request/Response DTOs
type CreateAuctionRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	StartingBid float64 `json:"starting_bid" binding:"required,gt=0"`
	EndDate     string  `json:"end_date" binding:"required"`
}

// UpdateAuctionRequest carries an intentionally partial payload: omitted or
// zero-valued fields leave the stored item unchanged.
type UpdateAuctionRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	StartingBid float64 `json:"starting_bid"`
	EndDate     string  `json:"end_date"`
}

type AuctionResponse struct {
	ItemID      string  `json:"item_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	StartingBid float64 `json:"starting_bid"`
	EndDate     string  `json:"end_date"`
	CreatedBy   string  `json:"created_by"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type WinnerResponse struct {
	Winner     any     `json:"winner"`
	WinningBid float64 `json:"winning_bid,omitempty"`
}
