package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"salonflow-backend/config"
	"salonflow-backend/controllers"
	"salonflow-backend/routes"
	"salonflow-backend/services"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
}

func main() {
	stores, err := config.OpenStores(config.DataDir())
	if err != nil {
		log.Fatalf("Failed to open data directory: %v", err)
	}

	clientService := services.NewClientService(stores.Clients)
	staffService := services.NewStaffService(stores.Staff)
	catalogService := services.NewCatalogService(stores.Services)
	incomeService := services.NewIncomeService(stores.Incomes)

	var notifier services.Notifier = services.LogNotifier{}
	if os.Getenv("TWILIO_ACCOUNT_SID") != "" {
		notifier = services.NewTwilioNotifierFromEnv()
	}

	appointmentService := services.NewAppointmentService(
		stores.Appointments, clientService, staffService, catalogService, incomeService, notifier)

	reminders := services.NewReminderService(appointmentService, notifier, os.Getenv("REMINDER_CRON"))
	if err := reminders.Start(); err != nil {
		log.Printf("Failed to start reminder scheduler: %v", err)
	}

	api := &controllers.API{
		Clients:      &controllers.ClientController{Clients: clientService},
		Staff:        &controllers.StaffController{Staff: staffService},
		Services:     &controllers.ServiceController{Catalog: catalogService},
		Appointments: &controllers.AppointmentController{Appointments: appointmentService},
		Incomes:      &controllers.IncomeController{Incomes: incomeService, Appointments: appointmentService},
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter(api)
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
