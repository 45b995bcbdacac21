package bidding

import (
	"auction-backend/internal/auctionerrors"
	auction "auction-backend/internal/auctionService"
	"auction-backend/internal/models"
	"auction-backend/internal/repository"
	"auction-backend/utils"
	"errors"
	"fmt"
	"time"
)

// WinnerStatus describes the outcome of a winner resolution.
type WinnerStatus int

const (
	// AuctionStillOpen means the item's end date has not passed yet.
	AuctionStillOpen WinnerStatus = iota
	// AuctionNoBids means the item closed without receiving any bids.
	AuctionNoBids
	// AuctionWon means a winning bid and its bidder were resolved.
	AuctionWon
)

// WinnerResult is the outcome of DetermineWinner. Winner and WinningBid are
// only meaningful when Status is AuctionWon.
type WinnerResult struct {
	Status     WinnerStatus
	Winner     models.User
	WinningBid models.Bid
}

// BiddingService owns bid records and the rules governing them.
type BiddingService struct {
	repo repository.AuctionDB
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(repo repository.AuctionDB) *BiddingService {
	return &BiddingService{
		repo: repo,
	}
}

// PlaceBid validates and records a user's bid for an item. A user holds at
// most one bid per item; a later submission must strictly exceed the stored
// amount and replaces it in place. The returned bool reports whether a new
// bid record was created.
//
// Only the caller's own prior bid is checked, not the current leading bid.
// A bid at or above the starting price is accepted even if another bidder
// is already higher.
func (s *BiddingService) PlaceBid(itemID, userID string, amount float64) (models.Bid, bool, error) {
	if itemID == "" || userID == "" {
		return models.Bid{}, false, fmt.Errorf("service: %w - missing itemID or userID", auctionerrors.ErrValidation)
	}
	if amount <= 0 {
		return models.Bid{}, false, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrValidation)
	}

	item, err := s.repo.GetItem(itemID)
	if err != nil {
		return models.Bid{}, false, fmt.Errorf("service: failed to load item %s: %w", itemID, err)
	}
	if amount < item.StartingBid {
		return models.Bid{}, false, fmt.Errorf("service: %w - bid amount must be greater than or equal to the starting bid %.2f", auctionerrors.ErrValidation, item.StartingBid)
	}

	existing, err := s.repo.GetBidForUser(itemID, userID)
	switch {
	case err == nil:
		if amount <= existing.BidAmount {
			return models.Bid{}, false, fmt.Errorf("service: %w - current bid is %.2f", auctionerrors.ErrBidTooLow, existing.BidAmount)
		}
		existing.BidAmount = amount
		existing.UpdatedAt = time.Now().UTC()
		if err := s.repo.SaveBid(existing); err != nil {
			return models.Bid{}, false, fmt.Errorf("service: failed to update bid for item %s by user %s: %w", itemID, userID, err)
		}
		return existing, false, nil

	case errors.Is(err, auctionerrors.ErrBidNotFound):
		now := time.Now().UTC()
		bid := models.Bid{
			BidID:         utils.GenerateID(),
			AuctionItemID: itemID,
			UserID:        userID,
			BidAmount:     amount,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := s.repo.CreateBid(bid); err != nil {
			return models.Bid{}, false, fmt.Errorf("service: failed to record bid for item %s by user %s: %w", itemID, userID, err)
		}
		return bid, true, nil

	default:
		return models.Bid{}, false, fmt.Errorf("service: failed to look up bid for item %s by user %s: %w", itemID, userID, err)
	}
}

// GetHistory returns all bids for an item, each annotated with the bidder's
// username. An unresolvable bidder degrades that entry to a nil annotation
// instead of failing the whole listing.
func (s *BiddingService) GetHistory(itemID string) ([]models.BidWithBidder, error) {
	if itemID == "" {
		return nil, fmt.Errorf("service: %w - empty item ID", auctionerrors.ErrValidation)
	}

	bids, err := s.repo.GetBidsByItem(itemID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for item %s: %w", itemID, err)
	}

	history := make([]models.BidWithBidder, 0, len(bids))
	for _, b := range bids {
		entry := models.BidWithBidder{Bid: b}
		if user, err := s.repo.GetUser(b.UserID); err == nil {
			username := user.Username
			entry.Bidder = &username
		} else {
			utils.Warn("service: could not resolve bidder", map[string]any{"bid_id": b.BidID, "user_id": b.UserID, "error": err.Error()})
		}
		history = append(history, entry)
	}
	return history, nil
}

// GetBidsByUser returns all bids placed by a user, each annotated with a
// summary of its auction item. A deleted item degrades that entry to a nil
// annotation instead of failing the whole listing.
func (s *BiddingService) GetBidsByUser(userID string) ([]models.BidWithItem, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrValidation)
	}

	bids, err := s.repo.GetBidsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for user %s: %w", userID, err)
	}

	out := make([]models.BidWithItem, 0, len(bids))
	for _, b := range bids {
		entry := models.BidWithItem{Bid: b}
		if item, err := s.repo.GetItem(b.AuctionItemID); err == nil {
			entry.AuctionItem = &models.ItemSummary{
				ItemID:      item.ItemID,
				Title:       item.Title,
				Description: item.Description,
				EndDate:     item.EndDate,
			}
		}
		out = append(out, entry)
	}
	return out, nil
}

// DetermineWinner resolves the winner of an item at the given time. While
// the item is still open it returns AuctionStillOpen; a closed item without
// bids returns AuctionNoBids. Both are normal results, not errors. A winning
// bid whose user record has vanished is an error.
func (s *BiddingService) DetermineWinner(itemID string, now time.Time) (WinnerResult, error) {
	if itemID == "" {
		return WinnerResult{}, fmt.Errorf("service: %w - empty item ID", auctionerrors.ErrValidation)
	}

	item, err := s.repo.GetItem(itemID)
	if err != nil {
		return WinnerResult{}, fmt.Errorf("service: failed to load item %s: %w", itemID, err)
	}
	if auction.IsOpen(item, now) {
		return WinnerResult{Status: AuctionStillOpen}, nil
	}

	bids, err := s.repo.GetBidsByItem(itemID)
	if err != nil {
		return WinnerResult{}, fmt.Errorf("service: failed to get bids for item %s: %w", itemID, err)
	}
	if len(bids) == 0 {
		return WinnerResult{Status: AuctionNoBids}, nil
	}

	winning := winningBid(bids)
	winner, err := s.repo.GetUser(winning.UserID)
	if err != nil {
		return WinnerResult{}, fmt.Errorf("service: winner not found for item %s: %w", itemID, err)
	}

	return WinnerResult{Status: AuctionWon, Winner: winner, WinningBid: winning}, nil
}

// WonAuctionsForUser returns a summary for every closed auction the user
// has won. Open items and items that no longer exist are skipped.
func (s *BiddingService) WonAuctionsForUser(userID string) ([]models.WonAuction, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrValidation)
	}

	userBids, err := s.repo.GetBidsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for user %s: %w", userID, err)
	}

	now := time.Now().UTC()
	seen := make(map[string]bool)
	won := make([]models.WonAuction, 0)

	for _, ub := range userBids {
		if seen[ub.AuctionItemID] {
			continue
		}
		seen[ub.AuctionItemID] = true

		item, err := s.repo.GetItem(ub.AuctionItemID)
		if err != nil {
			if errors.Is(err, auctionerrors.ErrItemNotFound) {
				continue
			}
			return nil, fmt.Errorf("service: failed to load item %s: %w", ub.AuctionItemID, err)
		}
		if auction.IsOpen(item, now) {
			continue
		}

		bids, err := s.repo.GetBidsByItem(item.ItemID)
		if err != nil {
			return nil, fmt.Errorf("service: failed to get bids for item %s: %w", item.ItemID, err)
		}
		if len(bids) == 0 {
			continue
		}

		winning := winningBid(bids)
		if winning.UserID != userID {
			continue
		}

		won = append(won, models.WonAuction{
			AuctionID:   item.ItemID,
			Title:       item.Title,
			Description: item.Description,
			WinningBid:  winning.BidAmount,
			EndDate:     item.EndDate,
		})
	}
	return won, nil
}

// winningBid picks the highest bid scanning left to right. Only a strictly
// greater amount replaces the running maximum, so the earliest-placed bid
// wins ties.
func winningBid(bids []models.Bid) models.Bid {
	winning := bids[0]
	for _, b := range bids[1:] {
		if b.BidAmount > winning.BidAmount {
			winning = b
		}
	}
	return winning
}
