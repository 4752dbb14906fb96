package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/lottohq/lotto-backend/config"
	"github.com/lottohq/lotto-backend/controllers"
	"github.com/lottohq/lotto-backend/engine"
	"github.com/lottohq/lotto-backend/routes"
	"github.com/lottohq/lotto-backend/services"
	"github.com/lottohq/lotto-backend/store"
)

// setupRouter initializes Gin routes and middleware
func setupRouter(ctl routes.Controllers, hub *services.Hub) *gin.Engine {
	r := gin.New()

	// Middleware
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup REST routes
	routes.SetupRoutes(r, ctl)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now()})
	})

	// WebSocket event stream
	r.GET("/ws/events", hub.HandleWS)

	return r
}

func main() {
	// Load env variables
	cfg := config.Load()

	// Connect to database
	db := config.SetupDatabase(cfg.DatabaseURL)

	// Engine wiring: the store backs all three engine capabilities
	st := store.New(db)
	eng := engine.New(st, st, st)

	hub := services.NewHub()
	boardSvc := services.NewBoardService(db)
	txSvc := services.NewTransactionService(db)

	router := setupRouter(routes.Controllers{
		Players:       controllers.NewPlayerController(db),
		Games:         controllers.NewGameController(db, hub),
		Boards:        controllers.NewBoardController(db, boardSvc, eng),
		Transactions:  controllers.NewTransactionController(txSvc),
		WinningBoards: controllers.NewWinningBoardController(db, st, eng, hub),
	}, hub)

	log.Printf("🚀 Lotto backend server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("[FATAL] Failed to start server: %v", err)
	}
}
