package routes

import (
	"net/http"

	"rids_ngo/internal/adapter/http/handlers"
	"rids_ngo/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathDonations = "/donations"
	PathExport    = "/export"
	PathAuth      = "/auth"
)

func addDonationRoutes(rg *gin.RouterGroup, donationHandler *handlers.DonationHandler, exportHandler *handlers.ExportHandler, authHandler *handlers.AuthHandler) {
	donations := rg.Group(PathDonations)
	{
		// Public donor-facing lifecycle.
		donations.POST("/create-order", donationHandler.CreateOrder)
		donations.POST("/verify-payment", donationHandler.VerifyPayment)
		donations.POST("/webhook", donationHandler.Webhook)

		// Admin surface.
		donations.GET("", middleware.RequireAdmin(), donationHandler.List)
		donations.GET("/stats", middleware.RequireAdmin(), donationHandler.Stats)
		donations.PUT("/:id/status", middleware.RequireAdmin(), donationHandler.UpdateStatus)
	}

	export := rg.Group(PathExport, middleware.RequireAdmin())
	{
		export.GET("/donations", exportHandler.ExportDonations)
	}

	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", authHandler.Login)
	}
}

func addHealthRoutes(rg *gin.RouterGroup) {
	health := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	}
	rg.GET("/", health)
	rg.GET("/health", health)
}
