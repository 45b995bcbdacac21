package handler

import (
	"fmt"
	"net/http"

	model "auction-backend/internal/models"
	"auction-backend/services/bidding/helpers"
	"auction-backend/utils"

	"github.com/gin-gonic/gin"
)

type BiddingServiceInterface interface {
	PlaceBid(itemID, userID string, amount float64) (model.Bid, bool, error)
	GetHistory(itemID string) ([]model.BidWithBidder, error)
	GetBidsByUser(userID string) ([]model.BidWithItem, error)
}

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

// callerID returns the authenticated user ID set by the auth middleware
func callerID(c *gin.Context) string {
	return c.GetString("userID")
}

// PlaceBidHandler handles POST /api/bids
func (h *BiddingHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	userID := callerID(c)
	bid, created, err := h.service.PlaceBid(req.AuctionItemID, userID, req.BidAmount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler": "PlaceBidHandler",
			"item_id": req.AuctionItemID,
			"user_id": userID,
			"error":   err.Error(),
		})
		return
	}

	status := http.StatusOK
	message := "bid raised successfully"
	if created {
		status = http.StatusCreated
		message = "bid recorded successfully"
	}

	utils.JSONResponse(c, status, helpers.ToBidResponse(bid), message)
	helpers.LogSuccess("PlaceBidHandler", message, map[string]any{
		"bid_id":  bid.BidID,
		"item_id": bid.AuctionItemID,
		"user_id": userID,
		"amount":  bid.BidAmount,
	})
}

// GetBidHistoryHandler handles GET /api/bids/:item_id
func (h *BiddingHandler) GetBidHistoryHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	history, err := h.service.GetHistory(itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidHistoryHandler: error retrieving bids", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	if history == nil {
		history = []model.BidWithBidder{}
	}

	utils.JSONResponse(c, http.StatusOK, history, "bid history retrieved successfully")
	helpers.LogSuccess("GetBidHistoryHandler", "bid history retrieved successfully", map[string]any{
		"item_id": itemID,
		"count":   len(history),
	})
}

// GetOwnBidsHandler handles GET /api/bids/user/history
func (h *BiddingHandler) GetOwnBidsHandler(c *gin.Context) {
	userID := callerID(c)
	bids, err := h.service.GetBidsByUser(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetOwnBidsHandler: error retrieving bids", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	if bids == nil {
		bids = []model.BidWithItem{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("GetOwnBidsHandler", "bids retrieved successfully", map[string]any{
		"user_id": userID,
		"count":   len(bids),
	})
}
