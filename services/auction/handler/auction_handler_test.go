package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auction-backend/internal/auctionerrors"
	auction "auction-backend/internal/auctionService"
	bidding "auction-backend/internal/biddingService"
	model "auction-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

// injectUser stands in for the auth middleware in handler tests.
func injectUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

func setupRouter(service AuctionServiceInterface, bids WinnerResolverInterface, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewAuctionHandler(service, bids)

	auctions := router.Group("/api/auctions")
	{
		auctions.GET("", h.ListAuctionsHandler)
		auctions.GET("/:id", h.GetAuctionHandler)
		auctions.GET("/:id/winner", h.GetAuctionWinnerHandler)
		auctions.POST("", injectUser(userID), h.CreateAuctionHandler)
		auctions.PUT("/:id", injectUser(userID), h.UpdateAuctionHandler)
		auctions.DELETE("/:id", injectUser(userID), h.DeleteAuctionHandler)
		auctions.GET("/user/listings", injectUser(userID), h.ListOwnAuctionsHandler)
		auctions.GET("/user/won", injectUser(userID), h.ListWonAuctionsHandler)
	}
	return router
}

func TestCreateAuctionHandler(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockService := NewMockAuctionServiceInterface(ctrl)
	mockBids := NewMockWinnerResolverInterface(ctrl)
	router := setupRouter(mockService, mockBids, "owner1")

	endDate := "2026-09-01T12:00:00Z"

	testCases := []struct {
		name           string
		payload        string
		mockSetup      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "valid_auction",
			payload: `{"title":"Vintage Clock","description":"A 1950s wall clock","starting_bid":50,"end_date":"` + endDate + `"}`,
			mockSetup: func() {
				mockService.EXPECT().
					CreateItem("Vintage Clock", "A 1950s wall clock", 50.0, endDate, "owner1").
					Return(model.AuctionItem{ItemID: "item1", Title: "Vintage Clock", StartingBid: 50, CreatedBy: "owner1"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   "auction created successfully",
		},
		{
			name:           "missing_title",
			payload:        `{"description":"A 1950s wall clock","starting_bid":50,"end_date":"` + endDate + `"}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "invalid request payload",
		},
		{
			name:           "non_positive_starting_bid",
			payload:        `{"title":"Vintage Clock","description":"A 1950s wall clock","starting_bid":0,"end_date":"` + endDate + `"}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "invalid request payload",
		},
		{
			name:    "service_validation_failure",
			payload: `{"title":"Odd Date","description":"bad end date","starting_bid":50,"end_date":"soon"}`,
			mockSetup: func() {
				mockService.EXPECT().
					CreateItem("Odd Date", "bad end date", 50.0, "soon", "owner1").
					Return(model.AuctionItem{}, auctionerrors.ErrValidation)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/api/auctions", bytes.NewBufferString(tc.payload))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, tc.expectedStatus, rec.Code)
			if tc.expectedBody != "" {
				require.Contains(t, rec.Body.String(), tc.expectedBody)
			}
		})
	}
}

func TestGetAndListAuctionHandlers(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockService := NewMockAuctionServiceInterface(ctrl)
	mockBids := NewMockWinnerResolverInterface(ctrl)
	router := setupRouter(mockService, mockBids, "owner1")

	t.Run("get_existing_auction", func(t *testing.T) {
		mockService.EXPECT().GetItem("item1").
			Return(model.AuctionItem{ItemID: "item1", Title: "Vintage Clock"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/auctions/item1", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Vintage Clock")
	})

	t.Run("get_missing_auction", func(t *testing.T) {
		mockService.EXPECT().GetItem("item404").
			Return(model.AuctionItem{}, auctionerrors.ErrItemNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/auctions/item404", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), "auction item not found")
	})

	t.Run("list_auctions", func(t *testing.T) {
		mockService.EXPECT().ListItems().Return([]model.AuctionItem{
			{ItemID: "item1", Title: "Vintage Clock"},
			{ItemID: "item2", Title: "Oil Painting"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/auctions", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Vintage Clock")
		require.Contains(t, rec.Body.String(), "Oil Painting")
	})

	t.Run("list_own_auctions", func(t *testing.T) {
		mockService.EXPECT().ListItemsByOwner("owner1").Return([]model.AuctionItem{
			{ItemID: "item1", Title: "Vintage Clock", CreatedBy: "owner1"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/auctions/user/listings", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Vintage Clock")
	})
}

func TestUpdateAuctionHandler(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockService := NewMockAuctionServiceInterface(ctrl)
	mockBids := NewMockWinnerResolverInterface(ctrl)
	router := setupRouter(mockService, mockBids, "owner1")

	t.Run("partial_update", func(t *testing.T) {
		mockService.EXPECT().
			UpdateItem("item1", "owner1", auction.UpdateItemInput{Title: "Vintage Wall Clock"}).
			Return(model.AuctionItem{ItemID: "item1", Title: "Vintage Wall Clock"}, nil)

		req := httptest.NewRequest(http.MethodPut, "/api/auctions/item1", bytes.NewBufferString(`{"title":"Vintage Wall Clock"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "auction updated successfully")
	})

	t.Run("not_owner", func(t *testing.T) {
		mockService.EXPECT().
			UpdateItem("item2", "owner1", gomock.Any()).
			Return(model.AuctionItem{}, auctionerrors.ErrForbidden)

		req := httptest.NewRequest(http.MethodPut, "/api/auctions/item2", bytes.NewBufferString(`{"title":"Hijacked"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestDeleteAuctionHandler(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockService := NewMockAuctionServiceInterface(ctrl)
	mockBids := NewMockWinnerResolverInterface(ctrl)
	router := setupRouter(mockService, mockBids, "owner1")

	t.Run("owner_deletes", func(t *testing.T) {
		mockService.EXPECT().DeleteItem("item1", "owner1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/auctions/item1", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "auction item removed")
	})

	t.Run("not_owner", func(t *testing.T) {
		mockService.EXPECT().DeleteItem("item2", "owner1").Return(auctionerrors.ErrForbidden)

		req := httptest.NewRequest(http.MethodDelete, "/api/auctions/item2", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestGetAuctionWinnerHandler(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockService := NewMockAuctionServiceInterface(ctrl)
	mockBids := NewMockWinnerResolverInterface(ctrl)
	router := setupRouter(mockService, mockBids, "owner1")

	t.Run("still_open", func(t *testing.T) {
		mockBids.EXPECT().DetermineWinner("item1", gomock.Any()).
			Return(bidding.WinnerResult{Status: bidding.AuctionStillOpen}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/auctions/item1/winner", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "auction has not ended yet")
	})

	t.Run("no_bids", func(t *testing.T) {
		mockBids.EXPECT().DetermineWinner("item2", gomock.Any()).
			Return(bidding.WinnerResult{Status: bidding.AuctionNoBids}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/auctions/item2/winner", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "no bids found")
	})

	t.Run("winner_resolved", func(t *testing.T) {
		mockBids.EXPECT().DetermineWinner("item3", gomock.Any()).
			Return(bidding.WinnerResult{
				Status:     bidding.AuctionWon,
				Winner:     model.User{UserID: "user2", Username: "bob"},
				WinningBid: model.Bid{BidID: "bid2", BidAmount: 250},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/auctions/item3/winner", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "winner retrieved successfully")
		require.Contains(t, rec.Body.String(), `"username":"bob"`)
		require.Contains(t, rec.Body.String(), `"winning_bid":250`)
	})

	t.Run("winner_user_missing", func(t *testing.T) {
		mockBids.EXPECT().DetermineWinner("item4", gomock.Any()).
			Return(bidding.WinnerResult{}, auctionerrors.ErrUserNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/auctions/item4/winner", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestListWonAuctionsHandler(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockService := NewMockAuctionServiceInterface(ctrl)
	mockBids := NewMockWinnerResolverInterface(ctrl)
	router := setupRouter(mockService, mockBids, "user1")

	t.Run("won_auctions", func(t *testing.T) {
		mockBids.EXPECT().WonAuctionsForUser("user1").Return([]model.WonAuction{
			{AuctionID: "item1", Title: "Vintage Clock", WinningBid: 250, EndDate: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/auctions/user/won", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Vintage Clock")
	})

	t.Run("no_wins_is_empty_array", func(t *testing.T) {
		mockBids.EXPECT().WonAuctionsForUser("user1").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/auctions/user/won", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"data":[]`)
	})
}
