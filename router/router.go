package router

import (
	"github.com/crpmlabs/crpm-app/controllers"
	"github.com/crpmlabs/crpm-app/middlewares"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	// Registered before any route so it joins every handler chain
	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	r.Use(middlewares.RequestID())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	customerCtrl := controllers.NewCustomerController(db)
	productCtrl := controllers.NewProductController(db)
	purchaseCtrl := controllers.NewPurchaseController(db)
	reportCtrl := controllers.NewReportController(db)
	receiptCtrl := controllers.NewReceiptController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Live dashboard events
	r.GET("/dashboard/ws", controllers.DashboardEventsHandler)

	// Reads
	r.GET("/customers", customerCtrl.GetCustomers)
	r.GET("/customers/all", customerCtrl.GetAllCustomers)
	r.GET("/products", productCtrl.GetProducts)
	r.GET("/reports/revenue", reportCtrl.GetRevenueByDate)
	r.GET("/reports/revenue/chart", reportCtrl.GetRevenueChart)
	r.GET("/purchases/:purchase_id/receipt", receiptCtrl.GetPurchaseReceipt)

	// Writes get the stricter per-IP limiter
	writes := r.Group("/")
	writes.Use(middlewares.NewStrictRateLimiter())
	{
		writes.POST("/customers", customerCtrl.CreateCustomer)
		writes.PATCH("/customers/:customer_id/status", customerCtrl.UpdateCustomerStatus)
		writes.POST("/products", productCtrl.CreateProduct)
		writes.POST("/purchases", purchaseCtrl.CreatePurchase)
	}

	return r
}
