package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/santpatricihotel-commits/TicketIA/internal/auth"
	"github.com/santpatricihotel-commits/TicketIA/internal/export"
	"github.com/santpatricihotel-commits/TicketIA/internal/middleware"
	"github.com/santpatricihotel-commits/TicketIA/internal/receipt"
	"github.com/santpatricihotel-commits/TicketIA/internal/scan"
)

type Handlers struct {
	Auth     *auth.Handler
	Receipts *receipt.Handler
	Scans    *scan.Handler
	Exports  *export.Handler
}

// New builds the full route table. Everything except /auth and /health
// sits behind the JWT middleware.
func New(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
	}

	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware())
	{
		receipts := protected.Group("/receipts")
		{
			receipts.POST("", h.Receipts.Create)
			receipts.GET("", h.Receipts.List)
			receipts.GET("/:id", h.Receipts.Get)
			receipts.PUT("/:id", h.Receipts.Update)
			receipts.DELETE("/:id", h.Receipts.Delete)
			receipts.PATCH("/:id/paid", h.Receipts.TogglePaid)
		}

		protected.GET("/stats", h.Receipts.Stats)

		scans := protected.Group("/scan")
		{
			scans.POST("", h.Scans.Upload)
			scans.GET("", h.Scans.List)
			scans.GET("/:id", h.Scans.Get)
		}

		exports := protected.Group("/export")
		{
			exports.GET("/csv", h.Exports.CSV)
			exports.GET("/xlsx", h.Exports.XLSX)
			exports.GET("/report", h.Exports.Report)
		}
	}

	return r
}
