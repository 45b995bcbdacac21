package main

import (
	"fmt"

	"auction-backend/config"
	auction "auction-backend/internal/auctionService"
	bidding "auction-backend/internal/biddingService"
	"auction-backend/internal/repository"
	"auction-backend/internal/server"
	user "auction-backend/internal/userService"
	"auction-backend/utils"
)

func main() {
	cfg := config.LoadConfig()

	repo := openStore(cfg)

	tokens := utils.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)

	auctionSvc := auction.NewAuctionService(repo)
	biddingSvc := bidding.NewBiddingService(repo)
	userSvc := user.NewUserService(repo, tokens)

	router := server.SetupRouter(auctionSvc, biddingSvc, userSvc, tokens)

	addr := fmt.Sprintf(":%s", cfg.Port)
	utils.Info("starting auction server", map[string]any{"addr": addr})
	if err := router.Run(addr); err != nil {
		utils.Fatal("failed to start server", map[string]any{"error": err.Error()})
	}
}

// openStore selects the record store: MySQL when a DSN is configured,
// otherwise the in-memory store.
func openStore(cfg *config.Config) repository.AuctionDB {
	if cfg.DatabaseDSN == "" {
		utils.Info("no DB_DSN configured, using in-memory store", nil)
		return repository.NewMemoryRepo()
	}

	db, err := repository.OpenMySQL(cfg.DatabaseDSN)
	if err != nil {
		utils.Fatal("failed to open database", map[string]any{"error": err.Error()})
	}
	utils.Info("connected to database", nil)
	return repository.NewGormRepo(db)
}
