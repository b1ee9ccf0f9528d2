package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"mechshop-backend/config"
	"mechshop-backend/controllers"
	"mechshop-backend/services"
	"mechshop-backend/store"
	"mechshop-backend/utils"
)

func SetupRouter(s store.Store) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	inventoryService := services.NewInventoryService(s)
	jobManager := services.NewJobManager(s, inventoryService)
	appointmentService := services.NewAppointmentService(s)
	reportService := services.NewReportService(s)

	authController := controllers.NewAuthController(s)
	userController := controllers.NewUserController(s)
	serviceController := controllers.NewServiceController(s)
	inventoryController := controllers.NewInventoryController(inventoryService)
	jobController := controllers.NewJobController(s, jobManager)
	appointmentController := controllers.NewAppointmentController(s, appointmentService)
	reportController := controllers.NewReportController(reportService)
	dashboardController := controllers.NewDashboardController(jobManager, inventoryService, appointmentService)

	auth := r.Group("/auth")
	{
		auth.POST("/login", authController.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", authController.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Catalog routes; mutations are admin-only
		catalog := api.Group("/services")
		{
			catalog.GET("", serviceController.GetServices)
			catalog.GET("/:id", serviceController.GetService)

			catalog.Use(utils.AdminOnly())
			catalog.POST("", serviceController.CreateService)
			catalog.PUT("/:id", serviceController.UpdateService)
			catalog.PUT("/:id/toggle", serviceController.ToggleService)
		}

		// Inventory routes
		inventory := api.Group("/inventory")
		{
			inventory.GET("", inventoryController.GetItems)
			inventory.GET("/low-stock", inventoryController.GetLowStockItems)
			inventory.GET("/:id", inventoryController.GetItem)
			inventory.POST("", inventoryController.CreateItem)
			inventory.PUT("/:id", inventoryController.UpdateItem)
			inventory.POST("/:id/restock", inventoryController.RestockItem)
		}

		// Job routes
		jobs := api.Group("/jobs")
		{
			jobs.POST("", jobController.CreateJob)
			jobs.GET("", jobController.GetJobs)
			jobs.GET("/:id", jobController.GetJob)
			jobs.PUT("/:id", jobController.UpdateJob)
			jobs.DELETE("/:id", jobController.DeleteJob)
		}

		// Appointment routes
		appointments := api.Group("/appointments")
		{
			appointments.POST("", appointmentController.CreateAppointment)
			appointments.GET("", appointmentController.GetAppointments)
			appointments.GET("/upcoming", appointmentController.GetUpcoming)
			appointments.GET("/:id", appointmentController.GetAppointment)
			appointments.PUT("/:id", appointmentController.UpdateAppointment)
			appointments.PUT("/:id/status", appointmentController.UpdateStatus)
			appointments.DELETE("/:id", appointmentController.DeleteAppointment)
		}

		// Staff management, admin-only
		users := api.Group("/users", utils.AdminOnly())
		{
			users.GET("", userController.GetUsers)
			users.POST("", userController.CreateUser)
			users.PUT("/:id/toggle", userController.ToggleUser)
		}

		// Reports, admin-only
		reports := api.Group("/reports", utils.AdminOnly())
		{
			reports.GET("/daily", reportController.GetDailySummary)
			reports.GET("/daily/export", reportController.ExportDailySummary)
		}

		// Dashboard routes
		api.GET("/dashboard", dashboardController.GetOverview)
	}

	return r
}
