package main

import (
	"fmt"
	"log"
	"os"

	"laundrypos-backend/config"
	"laundrypos-backend/models"
	"laundrypos-backend/routes"
	"laundrypos-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.ServiceCategory{},
		&models.Service{},
		&models.Transaction{},
		&models.TransactionItem{},
		&models.PaymentRecord{},
		&models.ReceiptLog{},
	)

	config.SeedCatalog()
}

func main() {
	cleanup := services.NewCleanupService(config.DB)
	cleanup.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
