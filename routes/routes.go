package routes

import (
	"garagepro-backend/config"
	"garagepro-backend/controllers"
	"garagepro-backend/middleware"
	"garagepro-backend/repository"
	"garagepro-backend/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRouter wires the store and logger into services, services into
// controllers, and controllers into the route table.
func SetupRouter(cfg config.Config, store repository.Store, log *zap.Logger) *gin.Engine {
	bookings := services.NewBookingManager(store, log)
	ledger := services.NewRepairLedger(store, log)
	vehicles := services.NewVehicleRegistry(store, log)
	catalog := services.NewCatalogService(store, log)
	customers := services.NewCustomerService(store, log)
	reviews := services.NewReviewService(store, log)
	reports := services.NewReportService(store, cfg.LowStockThreshold)

	authController := controllers.NewAuthController(customers, cfg.JWTSecret, cfg.TokenTTLHours)
	bookingController := controllers.NewBookingController(bookings)
	repairItemController := controllers.NewRepairItemController(ledger, bookings)
	vehicleController := controllers.NewVehicleController(vehicles)
	partController := controllers.NewPartController(catalog)
	catalogController := controllers.NewCatalogController(catalog)
	customerController := controllers.NewCustomerController(customers)
	reviewController := controllers.NewReviewController(reviews)
	reportController := controllers.NewReportController(reports, vehicles)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
	}))

	auth := r.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)

		auth.Use(middleware.Auth(cfg.JWTSecret))
		auth.GET("/me", authController.Me)
	}

	api := r.Group("/api")
	api.Use(middleware.Auth(cfg.JWTSecret))
	{
		bookingRoutes := api.Group("/bookings")
		{
			bookingRoutes.POST("", bookingController.Create)
			bookingRoutes.GET("", middleware.AdminOnly(), bookingController.ListAll)
			bookingRoutes.GET("/mine", bookingController.ListMine)
			bookingRoutes.GET("/:id", bookingController.Get)
			bookingRoutes.PUT("/:id", bookingController.Update)
		}

		repairItems := api.Group("/repair-items")
		{
			repairItems.POST("", middleware.AdminOnly(), repairItemController.Add)
			repairItems.GET("/:booking_id", repairItemController.ListByBooking)
			repairItems.DELETE("/:booking_id/:part_id", middleware.AdminOnly(), repairItemController.Delete)
		}

		vehicleRoutes := api.Group("/vehicles")
		{
			vehicleRoutes.POST("", vehicleController.Create)
			vehicleRoutes.GET("", middleware.AdminOnly(), vehicleController.ListAll)
			vehicleRoutes.GET("/mine", vehicleController.ListMine)
			vehicleRoutes.GET("/:id", vehicleController.Get)
			vehicleRoutes.PUT("/:id", vehicleController.Update)
			vehicleRoutes.DELETE("/:id", vehicleController.Delete)
		}

		parts := api.Group("/parts")
		{
			parts.GET("", partController.List)
			parts.GET("/:id", partController.Get)
			parts.POST("", middleware.AdminOnly(), partController.Create)
			parts.PUT("/:id", middleware.AdminOnly(), partController.Update)
			parts.DELETE("/:id", middleware.AdminOnly(), partController.Delete)
		}

		brands := api.Group("/brands")
		{
			brands.GET("", catalogController.ListBrands)
			brands.GET("/:id", catalogController.GetBrand)
			brands.POST("", middleware.AdminOnly(), catalogController.CreateBrand)
			brands.PUT("/:id", middleware.AdminOnly(), catalogController.UpdateBrand)
			brands.DELETE("/:id", middleware.AdminOnly(), catalogController.DeleteBrand)
		}

		types := api.Group("/types")
		{
			types.GET("", catalogController.ListTypes)
			types.GET("/:id", catalogController.GetType)
			types.POST("", middleware.AdminOnly(), catalogController.CreateType)
			types.PUT("/:id", middleware.AdminOnly(), catalogController.UpdateType)
			types.DELETE("/:id", middleware.AdminOnly(), catalogController.DeleteType)
		}

		customerRoutes := api.Group("/customers")
		{
			customerRoutes.GET("", middleware.AdminOnly(), customerController.List)
			customerRoutes.GET("/:id", customerController.Get)
			customerRoutes.PUT("/:id", customerController.Update)
			customerRoutes.DELETE("/:id", middleware.AdminOnly(), customerController.Delete)
			customerRoutes.PUT("/:id/ban", middleware.AdminOnly(), customerController.Ban)
			customerRoutes.PUT("/:id/unban", middleware.AdminOnly(), customerController.Unban)
		}

		profile := api.Group("/profile")
		{
			profile.PUT("", customerController.UpdateProfile)
			profile.PUT("/password", customerController.ChangePassword)
		}

		reviewRoutes := api.Group("/reviews")
		{
			reviewRoutes.POST("", reviewController.Create)
			reviewRoutes.GET("", reviewController.List)
			reviewRoutes.GET("/booking/:booking_id", reviewController.GetByBooking)
		}

		api.GET("/dashboard", middleware.AdminOnly(), reportController.Dashboard)
		reportRoutes := api.Group("/reports", middleware.AdminOnly())
		{
			reportRoutes.GET("/vehicles-by-brand", reportController.VehiclesByBrand)
			reportRoutes.GET("/vehicles-by-type", reportController.VehiclesByType)
		}
	}

	return r
}
