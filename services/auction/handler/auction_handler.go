package handler

import (
	"fmt"
	"net/http"
	"time"

	auction "auction-backend/internal/auctionService"
	bidding "auction-backend/internal/biddingService"
	model "auction-backend/internal/models"
	"auction-backend/services/auction/helpers"
	"auction-backend/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	CreateItem(title, description string, startingBid float64, endDate, ownerID string) (model.AuctionItem, error)
	GetItem(itemID string) (model.AuctionItem, error)
	ListItems() ([]model.AuctionItem, error)
	ListItemsByOwner(ownerID string) ([]model.AuctionItem, error)
	UpdateItem(itemID, callerID string, input auction.UpdateItemInput) (model.AuctionItem, error)
	DeleteItem(itemID, callerID string) error
}

type WinnerResolverInterface interface {
	DetermineWinner(itemID string, now time.Time) (bidding.WinnerResult, error)
	WonAuctionsForUser(userID string) ([]model.WonAuction, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
	bids    WinnerResolverInterface
}

func NewAuctionHandler(service AuctionServiceInterface, bids WinnerResolverInterface) *AuctionHandler {
	return &AuctionHandler{service: service, bids: bids}
}

// callerID returns the authenticated user ID set by the auth middleware
func callerID(c *gin.Context) string {
	return c.GetString("userID")
}

// CreateAuctionHandler handles POST /api/auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	ownerID := callerID(c)
	item, err := h.service.CreateItem(req.Title, req.Description, req.StartingBid, req.EndDate, ownerID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateAuctionHandler: failed to create auction", map[string]any{
			"owner_id": ownerID,
			"error":    err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToAuctionResponse(item), "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"item_id":  item.ItemID,
		"owner_id": ownerID,
	})
}

// ListAuctionsHandler handles GET /api/auctions
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	items, err := h.service.ListItems()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListAuctionsHandler: error listing auctions", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToAuctionResponses(items), "auctions retrieved successfully")
}

// GetAuctionHandler handles GET /api/auctions/:id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	itemID := c.Param("id")
	item, err := h.service.GetItem(itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionHandler: error retrieving auction", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToAuctionResponse(item), "auction retrieved successfully")
}

// ListOwnAuctionsHandler handles GET /api/auctions/user/listings
func (h *AuctionHandler) ListOwnAuctionsHandler(c *gin.Context) {
	ownerID := callerID(c)
	items, err := h.service.ListItemsByOwner(ownerID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListOwnAuctionsHandler: error listing auctions", map[string]any{"owner_id": ownerID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToAuctionResponses(items), "auctions retrieved successfully")
}

// UpdateAuctionHandler handles PUT /api/auctions/:id
func (h *AuctionHandler) UpdateAuctionHandler(c *gin.Context) {
	itemID := c.Param("id")

	var req helpers.UpdateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateAuctionHandler", err)
		return
	}

	caller := callerID(c)
	item, err := h.service.UpdateItem(itemID, caller, auction.UpdateItemInput{
		Title:       req.Title,
		Description: req.Description,
		StartingBid: req.StartingBid,
		EndDate:     req.EndDate,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdateAuctionHandler: error updating auction", map[string]any{"item_id": itemID, "caller_id": caller, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToAuctionResponse(item), "auction updated successfully")
	helpers.LogSuccess("UpdateAuctionHandler", "auction updated successfully", map[string]any{
		"item_id":   itemID,
		"caller_id": caller,
	})
}

// DeleteAuctionHandler handles DELETE /api/auctions/:id
func (h *AuctionHandler) DeleteAuctionHandler(c *gin.Context) {
	itemID := c.Param("id")
	caller := callerID(c)

	if err := h.service.DeleteItem(itemID, caller); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("DeleteAuctionHandler: error deleting auction", map[string]any{"item_id": itemID, "caller_id": caller, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "auction item removed")
	helpers.LogSuccess("DeleteAuctionHandler", "auction item removed", map[string]any{
		"item_id":   itemID,
		"caller_id": caller,
	})
}

// GetAuctionWinnerHandler handles GET /api/auctions/:id/winner
func (h *AuctionHandler) GetAuctionWinnerHandler(c *gin.Context) {
	itemID := c.Param("id")
	result, err := h.bids.DetermineWinner(itemID, time.Now().UTC())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionWinnerHandler: error determining winner", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	switch result.Status {
	case bidding.AuctionStillOpen:
		// not an error state, but the auction cannot be resolved yet
		utils.JSONResponse(c, http.StatusBadRequest, helpers.WinnerResponse{Winner: ""}, "auction has not ended yet")
	case bidding.AuctionNoBids:
		utils.JSONResponse(c, http.StatusOK, helpers.WinnerResponse{Winner: ""}, "no bids found")
	default:
		resp := helpers.WinnerResponse{
			Winner: gin.H{
				"user_id":  result.Winner.UserID,
				"username": result.Winner.Username,
			},
			WinningBid: result.WinningBid.BidAmount,
		}
		utils.JSONResponse(c, http.StatusOK, resp, "winner retrieved successfully")
		helpers.LogSuccess("GetAuctionWinnerHandler", "winner retrieved successfully", map[string]any{
			"item_id":   itemID,
			"winner_id": result.Winner.UserID,
			"amount":    result.WinningBid.BidAmount,
		})
	}
}

// ListWonAuctionsHandler handles GET /api/auctions/user/won
func (h *AuctionHandler) ListWonAuctionsHandler(c *gin.Context) {
	userID := callerID(c)
	won, err := h.bids.WonAuctionsForUser(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListWonAuctionsHandler: error listing won auctions", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	if won == nil {
		won = []model.WonAuction{}
	}

	utils.JSONResponse(c, http.StatusOK, won, "won auctions retrieved successfully")
}
