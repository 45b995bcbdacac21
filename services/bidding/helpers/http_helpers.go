package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"auction-backend/internal/auctionerrors"
	model "auction-backend/internal/models"
	"auction-backend/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrItemNotFound):
		return http.StatusNotFound, "auction item not found"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "new bid must be higher than the current bid"
	case errors.Is(err, auctionerrors.ErrValidation):
		return http.StatusBadRequest, "invalid bid details"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// ToBidResponse converts a bid record into its transport representation
func ToBidResponse(bid model.Bid) BidResponse {
	return BidResponse{
		BidID:         bid.BidID,
		AuctionItemID: bid.AuctionItemID,
		UserID:        bid.UserID,
		BidAmount:     bid.BidAmount,
		CreatedAt:     bid.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     bid.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
