package routes

import (
	"context"
	"log"
	"os"

	_ "rids_ngo/docs" // swag-generated registration
	"rids_ngo/internal/adapter/http/handlers"
	"rids_ngo/internal/adapter/persistence/repository"
	"rids_ngo/internal/infrastructure/database"
	"rids_ngo/internal/infrastructure/notifications"
	"rids_ngo/internal/infrastructure/payments"
	"rids_ngo/internal/usecase"
	"rids_ngo/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// Run wires the dependency graph and starts the server.
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb, err := database.New(context.Background())
	if err != nil {
		log.Fatalf("failed to create dynamodb client: %v", err)
	}

	donationRepo := repository.NewDonationDynamoRepository(ddb)

	// Absent credentials leave the gateway nil: order creation answers 503,
	// the rest of the API stays up.
	var gateway interfaces.IPaymentGateway
	rzpGateway, err := payments.NewRazorpayGateway(
		os.Getenv("RAZORPAY_KEY_ID"),
		os.Getenv("RAZORPAY_KEY_SECRET"),
		os.Getenv("RAZORPAY_WEBHOOK_SECRET"),
	)
	if err != nil {
		log.Printf("Razorpay gateway not configured: %v", err)
	} else {
		gateway = rzpGateway
	}

	notifier := notifications.NewEmailNotifierFromEnv()

	donationUseCase := usecase.NewDonationUseCase(donationRepo, gateway, notifier)

	donationHandler := handlers.NewDonationHandler(donationUseCase)
	exportHandler := handlers.NewExportHandler(donationUseCase)
	authHandler := handlers.NewAuthHandler()

	api := router.Group("/api")
	addHealthRoutes(api)
	addDonationRoutes(api, donationHandler, exportHandler, authHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
