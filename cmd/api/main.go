package main

import (
	_ "rids_ngo/docs"
	"rids_ngo/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           RIDS NGO Donation API
// @version         1.0
// @description     Donation lifecycle service (Razorpay orders, verification, webhooks) backed by DynamoDB.

// @contact.name   RIDS
// @contact.email  contact@rids.org

// @host localhost:8080

// @BasePath  /api

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
