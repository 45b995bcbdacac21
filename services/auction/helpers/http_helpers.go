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
	case errors.Is(err, auctionerrors.ErrUserNotFound):
		return http.StatusNotFound, "winner not found"
	case errors.Is(err, auctionerrors.ErrForbidden):
		return http.StatusForbidden, "unauthorized action"
	case errors.Is(err, auctionerrors.ErrValidation):
		return http.StatusBadRequest, "invalid auction details"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// ToAuctionResponse converts an auction item into its transport representation
func ToAuctionResponse(item model.AuctionItem) AuctionResponse {
	return AuctionResponse{
		ItemID:      item.ItemID,
		Title:       item.Title,
		Description: item.Description,
		StartingBid: item.StartingBid,
		EndDate:     item.EndDate.UTC().Format(time.RFC3339),
		CreatedBy:   item.CreatedBy,
		CreatedAt:   item.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   item.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// ToAuctionResponses converts a list of auction items
func ToAuctionResponses(items []model.AuctionItem) []AuctionResponse {
	out := make([]AuctionResponse, 0, len(items))
	for _, item := range items {
		out = append(out, ToAuctionResponse(item))
	}
	return out
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
