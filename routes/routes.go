package routes

import (
	"os"
	"strings"

	"laundrypos-backend/config"
	"laundrypos-backend/controllers"
	"laundrypos-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Catalog: service categories
		categories := api.Group("/service-categories")
		{
			categories.POST("", controllers.CreateCategory)
			categories.GET("", controllers.GetCategories)
			categories.GET("/active", controllers.GetActiveCategories)
			categories.GET("/type/:type", controllers.GetCategoriesByType)
			categories.GET("/:id", controllers.GetCategory)
			categories.PUT("/:id", controllers.UpdateCategory)
			categories.DELETE("/:id", controllers.DeleteCategory)
		}

		// Catalog: services
		services := api.Group("/services")
		{
			services.POST("", controllers.CreateService)
			services.GET("", controllers.GetServices)
			services.GET("/available", controllers.GetAvailableServices)
			services.GET("/category/:categoryId", controllers.GetServicesByCategory)
			services.GET("/:id", controllers.GetService)
			services.PUT("/:id", controllers.UpdateService)
			services.DELETE("/:id", controllers.DeleteService)
		}

		// Transaction lifecycle
		transactions := api.Group("/transactions")
		{
			transactions.POST("", controllers.CreateTransaction)
			transactions.GET("", controllers.GetTransactions)
			transactions.GET("/date-range", controllers.GetTransactionsByDateRange)
			transactions.GET("/status/:status", controllers.GetTransactionsByStatus)
			transactions.GET("/transaction-id/:transactionId", controllers.GetTransactionByNumber)
			transactions.GET("/:id", controllers.GetTransaction)
			transactions.PUT("/:id", controllers.UpdateTransaction)
			transactions.DELETE("/:id", controllers.DeleteTransaction)
			transactions.POST("/:id/complete", controllers.CompleteTransaction)
			transactions.POST("/:id/cancel", controllers.CancelTransaction)
			transactions.POST("/:id/refund", controllers.RefundTransaction)
		}

		// Payment records (append-only)
		payments := api.Group("/payment-records")
		{
			payments.POST("", controllers.CreatePaymentRecord)
			payments.GET("", controllers.GetPaymentRecords)
			payments.GET("/date-range", controllers.GetPaymentRecordsByDateRange)
			payments.GET("/status/:status", controllers.GetPaymentRecordsByStatus)
			payments.GET("/transaction/:transactionId", controllers.GetPaymentRecordsByTransaction)
			payments.GET("/:id", controllers.GetPaymentRecord)
			payments.PUT("/:id", controllers.UpdatePaymentRecord)
			payments.DELETE("/:id", controllers.DeletePaymentRecord)
		}

		// Reports
		reportController := controllers.ReportController{}
		reports := api.Group("/reports")
		{
			reports.GET("/daily-sales", reportController.GetDailySales)
			reports.GET("/monthly-sales", reportController.GetMonthlySales)
			reports.GET("/transaction-count", reportController.GetTransactionCount)
			reports.GET("/search", reportController.SearchTransactions)
		}

		// Dashboard
		api.GET("/dashboard", controllers.GetDashboardOverview)
	}

	return r
}
