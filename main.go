package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"mechshop-backend/config"
	"mechshop-backend/routes"
	"mechshop-backend/services"
	"mechshop-backend/store"
	"mechshop-backend/store/gormstore"
	"mechshop-backend/store/memstore"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	s, err := openStore()
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}

	if err := store.Seed(s); err != nil {
		log.Fatalf("Failed to seed store: %v", err)
	}

	inventoryService := services.NewInventoryService(s)
	appointmentService := services.NewAppointmentService(s)
	alertService := services.NewAlertService(s, inventoryService, appointmentService)
	alertService.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter(s)
	printRoutes(r)
	r.Run(":" + port)
}

// openStore prefers postgres; without DB_URL the in-memory store serves the
// demo fixture.
func openStore() (store.Store, error) {
	db, err := config.ConnectDB()
	if err != nil {
		return nil, err
	}
	if db == nil {
		log.Println("DB_URL not set, using in-memory store")
		return memstore.New(), nil
	}
	return gormstore.New(db)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
