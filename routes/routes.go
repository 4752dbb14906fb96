package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lottohq/lotto-backend/controllers"
)

// Controllers bundles every handler group the router mounts.
type Controllers struct {
	Players       *controllers.PlayerController
	Games         *controllers.GameController
	Boards        *controllers.BoardController
	Transactions  *controllers.TransactionController
	WinningBoards *controllers.WinningBoardController
}

func SetupRoutes(r *gin.Engine, ctl Controllers) {
	api := r.Group("/api")

	// ----------------------
	// Player routes
	// ----------------------
	api.POST("/players", ctl.Players.Register)
	api.GET("/players", ctl.Players.List)
	api.GET("/players/:id", ctl.Players.Get)
	api.PATCH("/players/:id/active", ctl.Players.SetActive)
	api.GET("/players/:id/boards", ctl.Boards.ListByPlayer)

	// ----------------------
	// Game routes
	// ----------------------
	api.POST("/games", ctl.Games.Create)
	api.GET("/games", ctl.Games.List)
	api.GET("/games/:id", ctl.Games.Get)
	api.POST("/games/:id/winning-numbers", ctl.Games.PublishNumbers)
	api.GET("/games/:id/boards", ctl.Boards.ListByGame)
	api.POST("/games/:id/compute-winningboards", ctl.WinningBoards.ComputeForGame)

	// ----------------------
	// Board routes
	// ----------------------
	api.POST("/boards", ctl.Boards.Purchase)
	api.GET("/boards/:id", ctl.Boards.Get)
	api.GET("/boards/:id/games", ctl.Boards.ActiveGames)
	api.POST("/boards/:id/check", ctl.WinningBoards.CheckBoard)

	// ----------------------
	// Transaction routes
	// ----------------------
	api.POST("/transactions", ctl.Transactions.Create)
	api.GET("/transactions", ctl.Transactions.List)
	api.GET("/transactions/by-number/:reqId", ctl.Transactions.GetByNumber)
	api.PATCH("/transactions/:id/status", ctl.Transactions.UpdateStatus)

	// ----------------------
	// Winning board routes
	// ----------------------
	api.GET("/winningboards", ctl.WinningBoards.List)
	api.GET("/winningboards/:id", ctl.WinningBoards.Get)
}
