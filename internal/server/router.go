package server

import (
	auction "auction-backend/internal/auctionService"
	bidding "auction-backend/internal/biddingService"
	user "auction-backend/internal/userService"
	auctionhandler "auction-backend/services/auction/handler"
	biddinghandler "auction-backend/services/bidding/handler"
	userhandler "auction-backend/services/user/handler"
	"auction-backend/utils"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionService *auction.AuctionService, biddingService *bidding.BiddingService, userService *user.UserService, tokens *utils.JWTManager) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := auctionhandler.NewAuctionHandler(auctionService, biddingService)
	biddingHandler := biddinghandler.NewBiddingHandler(biddingService)
	userHandler := userhandler.NewUserHandler(userService)

	authed := AuthRequired(tokens)

	users := router.Group("/api/users")
	{
		users.POST("/register", userHandler.RegisterHandler)
		users.POST("/login", userHandler.LoginHandler)
		users.POST("/logout", userHandler.LogoutHandler)
		users.GET("/profile", authed, userHandler.ProfileHandler)
	}

	auctions := router.Group("/api/auctions")
	{
		auctions.GET("", auctionHandler.ListAuctionsHandler)
		auctions.GET("/:id", auctionHandler.GetAuctionHandler)
		auctions.GET("/:id/winner", auctionHandler.GetAuctionWinnerHandler)
		auctions.POST("", authed, auctionHandler.CreateAuctionHandler)
		auctions.PUT("/:id", authed, auctionHandler.UpdateAuctionHandler)
		auctions.DELETE("/:id", authed, auctionHandler.DeleteAuctionHandler)
		auctions.GET("/user/listings", authed, auctionHandler.ListOwnAuctionsHandler)
		auctions.GET("/user/won", authed, auctionHandler.ListWonAuctionsHandler)
	}

	bids := router.Group("/api/bids")
	{
		bids.POST("", authed, biddingHandler.PlaceBidHandler)
		bids.GET("/:item_id", biddingHandler.GetBidHistoryHandler)
		bids.GET("/user/history", authed, biddingHandler.GetOwnBidsHandler)
	}

	return router
}
