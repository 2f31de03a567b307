package routes

import (
	"salonflow-backend/config"
	"salonflow-backend/controllers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires the five action-dispatch endpoints. Each endpoint
// accepts GET and POST; the action parameter selects the operation.
func SetupRouter(api *controllers.API) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	grp := r.Group("/api")
	{
		grp.GET("/clients", api.Clients.Handle)
		grp.POST("/clients", api.Clients.Handle)

		grp.GET("/staff", api.Staff.Handle)
		grp.POST("/staff", api.Staff.Handle)

		grp.GET("/services", api.Services.Handle)
		grp.POST("/services", api.Services.Handle)

		grp.GET("/appointments", api.Appointments.Handle)
		grp.POST("/appointments", api.Appointments.Handle)

		grp.GET("/incomes", api.Incomes.Handle)
		grp.POST("/incomes", api.Incomes.Handle)
	}

	return r
}
