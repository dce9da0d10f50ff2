package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/AnthonySaastify/Dr.Viva-v2/config"
	"github.com/AnthonySaastify/Dr.Viva-v2/drivestore"
	"github.com/AnthonySaastify/Dr.Viva-v2/middleware"
	"github.com/AnthonySaastify/Dr.Viva-v2/routes"
	"github.com/AnthonySaastify/Dr.Viva-v2/services"
	"github.com/AnthonySaastify/Dr.Viva-v2/sheetstore"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg := config.Load()

	// The Google clients are built lazily: a process started without
	// credentials still serves requests, and each remote call reports
	// the missing configuration instead of crashing at boot.
	sheetClient := sheetstore.NewClient(cfg)
	taskStore := sheetstore.NewStore(sheetClient)
	bootstrap := sheetstore.NewBootstrap(sheetClient)

	driveClient := drivestore.NewClient(cfg)

	taskService := services.NewTaskService(taskStore, bootstrap)
	services.TaskServiceInstance = taskService

	scheduleService := services.NewScheduleService()
	services.ScheduleServiceInstance = scheduleService

	exportService := services.NewExportService(driveClient)
	services.ExportServiceInstance = exportService

	router := gin.Default()
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	api := router.Group("/api/v1")
	routes.RegisterHealthRoutes(api, cfg)
	routes.RegisterTaskRoutes(api, taskService)
	routes.RegisterScheduleRoutes(api, scheduleService)
	routes.RegisterExportRoutes(api, exportService)
	routes.RegisterDriveRoutes(api, driveClient)
	routes.RegisterOAuthRoutes(api, cfg)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("Shutting down server...")
		os.Exit(0)
	}()

	log.Printf("API server is running on port %s", cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
