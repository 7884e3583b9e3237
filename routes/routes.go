package routes

import (
	"os"
	"salon-admin/config"
	"salon-admin/controllers"
	"salon-admin/utils"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000"}
	if env := os.Getenv("ALLOWED_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	api := r.Group("/api")
	{
		// Auth endpoints the panel calls before it has a token
		api.POST("/users", controllers.Login)
		api.POST("/users/signUp", controllers.SignUp)

		// The customer-facing booking widget reads availability without a token
		api.GET("/availability", controllers.GetAvailability)

		authed := api.Group("")
		authed.Use(utils.AuthMiddleware())
		{
			authed.GET("/users/me", controllers.Me)

			services := authed.Group("/services")
			{
				services.POST("", controllers.CreateService)
				services.GET("", controllers.GetServices)
				services.GET("/:id", controllers.GetService)
				services.PUT("/:id", controllers.UpdateService)
				services.DELETE("/:id", controllers.DeleteService)
			}

			categories := authed.Group("/categories")
			{
				categories.POST("", controllers.CreateCategory)
				categories.GET("", controllers.GetCategories)
				categories.PUT("/:id", controllers.UpdateCategory)
				categories.DELETE("/:id", controllers.DeleteCategory)
			}

			bookings := authed.Group("/bookings")
			{
				bookings.GET("", controllers.GetBookings)
				bookings.POST("/manual", controllers.CreateManualBooking)
				bookings.PUT("/:id", controllers.UpdateBooking)
			}

			leaves := authed.Group("/leaves")
			{
				leaves.POST("/create", controllers.CreateHoliday)
				leaves.GET("", controllers.GetHolidays)
				leaves.DELETE("/:id", controllers.DeleteHoliday)
			}

			authed.GET("/dashboard", controllers.GetDashboardOverview)
		}
	}

	return r
}
