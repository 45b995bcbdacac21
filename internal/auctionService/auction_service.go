package auction

import (
	"auction-backend/internal/auctionerrors"
	"auction-backend/internal/models"
	"auction-backend/internal/repository"
	"auction-backend/utils"
	"fmt"
	"time"
)

// AuctionService owns auction item records and their lifecycle.
type AuctionService struct {
	repo repository.AuctionDB
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(repo repository.AuctionDB) *AuctionService {
	return &AuctionService{
		repo: repo,
	}
}

// UpdateItemInput carries the optional fields of a partial update.
// Zero values leave the stored field unchanged.
type UpdateItemInput struct {
	Title       string
	Description string
	StartingBid float64
	EndDate     string
}

// IsOpen reports whether an item is still accepting bids at the given time.
func IsOpen(item models.AuctionItem, now time.Time) bool {
	return now.Before(item.EndDate)
}

// CreateItem validates and persists a new auction item owned by ownerID.
// endDate must be an RFC 3339 timestamp.
func (s *AuctionService) CreateItem(title, description string, startingBid float64, endDate, ownerID string) (models.AuctionItem, error) {
	if title == "" || description == "" || endDate == "" || ownerID == "" {
		return models.AuctionItem{}, fmt.Errorf("service: %w - all fields are required", auctionerrors.ErrValidation)
	}
	if startingBid <= 0 {
		return models.AuctionItem{}, fmt.Errorf("service: %w - starting bid must be a positive number", auctionerrors.ErrValidation)
	}

	end, err := time.Parse(time.RFC3339, endDate)
	if err != nil {
		return models.AuctionItem{}, fmt.Errorf("service: %w - invalid end date format", auctionerrors.ErrValidation)
	}

	now := time.Now().UTC()
	item := models.AuctionItem{
		ItemID:      utils.GenerateID(),
		Title:       title,
		Description: description,
		StartingBid: startingBid,
		EndDate:     end,
		CreatedBy:   ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.CreateItem(item); err != nil {
		return models.AuctionItem{}, fmt.Errorf("service: failed to create item: %w", err)
	}
	return item, nil
}

// GetItem returns a single auction item by ID
func (s *AuctionService) GetItem(itemID string) (models.AuctionItem, error) {
	if itemID == "" {
		return models.AuctionItem{}, fmt.Errorf("service: %w - empty item ID", auctionerrors.ErrValidation)
	}

	item, err := s.repo.GetItem(itemID)
	if err != nil {
		return models.AuctionItem{}, fmt.Errorf("service: failed to get item %s: %w", itemID, err)
	}
	return item, nil
}

// ListItems returns every auction item
func (s *AuctionService) ListItems() ([]models.AuctionItem, error) {
	items, err := s.repo.ListItems()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list items: %w", err)
	}
	return items, nil
}

// ListItemsByOwner returns the auction items created by a user
func (s *AuctionService) ListItemsByOwner(ownerID string) ([]models.AuctionItem, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("service: %w - empty owner ID", auctionerrors.ErrValidation)
	}

	items, err := s.repo.ListItemsByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list items for owner %s: %w", ownerID, err)
	}
	return items, nil
}

// UpdateItem applies a partial update to an item owned by callerID. Only
// the non-zero fields of input are applied; UpdatedAt is always refreshed.
func (s *AuctionService) UpdateItem(itemID, callerID string, input UpdateItemInput) (models.AuctionItem, error) {
	item, err := s.repo.GetItem(itemID)
	if err != nil {
		return models.AuctionItem{}, fmt.Errorf("service: failed to update item %s: %w", itemID, err)
	}
	if item.CreatedBy != callerID {
		return models.AuctionItem{}, fmt.Errorf("service: update item %s: %w", itemID, auctionerrors.ErrForbidden)
	}

	if input.Title != "" {
		item.Title = input.Title
	}
	if input.Description != "" {
		item.Description = input.Description
	}
	if input.StartingBid != 0 {
		if input.StartingBid < 0 {
			return models.AuctionItem{}, fmt.Errorf("service: %w - starting bid must be a positive number", auctionerrors.ErrValidation)
		}
		item.StartingBid = input.StartingBid
	}
	if input.EndDate != "" {
		end, err := time.Parse(time.RFC3339, input.EndDate)
		if err != nil {
			return models.AuctionItem{}, fmt.Errorf("service: %w - invalid end date format", auctionerrors.ErrValidation)
		}
		item.EndDate = end
	}
	item.UpdatedAt = time.Now().UTC()

	if err := s.repo.SaveItem(item); err != nil {
		return models.AuctionItem{}, fmt.Errorf("service: failed to save item %s: %w", itemID, err)
	}
	return item, nil
}

// DeleteItem removes an item owned by callerID together with all its bids.
// Bids go first; the store enforces no foreign keys.
func (s *AuctionService) DeleteItem(itemID, callerID string) error {
	item, err := s.repo.GetItem(itemID)
	if err != nil {
		return fmt.Errorf("service: failed to delete item %s: %w", itemID, err)
	}
	if item.CreatedBy != callerID {
		return fmt.Errorf("service: delete item %s: %w", itemID, auctionerrors.ErrForbidden)
	}

	if err := s.repo.DeleteBidsByItem(itemID); err != nil {
		return fmt.Errorf("service: failed to delete bids for item %s: %w", itemID, err)
	}
	if err := s.repo.DeleteItem(itemID); err != nil {
		return fmt.Errorf("service: failed to delete item %s: %w", itemID, err)
	}
	return nil
}
