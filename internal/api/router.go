package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mfsociety12/Dokal-test-gest/internal/api/handler"
	"github.com/mfsociety12/Dokal-test-gest/internal/api/middleware"
	"github.com/mfsociety12/Dokal-test-gest/internal/config"
)

// setupRouter configures middleware and API routes. CorrelationID runs first
// so the request logger and every response carry the ID.
func setupRouter(
	logger *slog.Logger,
	cfg *config.ServerConfig,
	r *gin.Engine,
	clientHandler *handler.ClientHandler,
	accountHandler *handler.AccountHandler,
	transactionHandler *handler.TransactionHandler,
) {
	r.Use(middleware.CorrelationID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(cors.New(corsConfig(cfg)))

	v1 := r.Group("/api/v1")
	{
		clients := v1.Group("/clients")
		{
			clients.POST("", clientHandler.Create)
			clients.GET("", clientHandler.List)
			clients.GET("/:id", clientHandler.GetByID)
			clients.PUT("/:id", clientHandler.Update)
			clients.DELETE("/:id", clientHandler.Deactivate)
			clients.GET("/:id/accounts", accountHandler.ListByClient)
		}

		accounts := v1.Group("/accounts")
		{
			accounts.POST("", accountHandler.Open)
			accounts.GET("/:id", accountHandler.GetByID)
			accounts.POST("/:id/close", accountHandler.Close)
			accounts.GET("/:id/transactions", transactionHandler.HistoryByAccount)
		}

		transactions := v1.Group("/transactions")
		{
			transactions.POST("/deposit", transactionHandler.Deposit)
			transactions.POST("/withdrawal", transactionHandler.Withdraw)
			transactions.POST("/transfer", transactionHandler.Transfer)
			transactions.GET("/:id", transactionHandler.GetByID)
		}
	}

	// Health check endpoint for monitoring
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC()})
	})
}

func corsConfig(cfg *config.ServerConfig) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, middleware.CorrelationIDHeader)
	corsCfg.ExposeHeaders = append(corsCfg.ExposeHeaders, middleware.CorrelationIDHeader)

	if len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSOrigins
	}
	return corsCfg
}
