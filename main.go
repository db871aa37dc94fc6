package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"equipviz/adapters/backend"
	"equipviz/internal/config"
	"equipviz/internal/session"
	"equipviz/ui"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	gin.SetMode(appConfig.Server.GinMode)

	client := backend.NewClient(appConfig.Backend.BaseURL, appConfig.Backend.Timeout)
	log.Printf("Using analytics backend at %s", appConfig.Backend.BaseURL)

	sessions := session.NewManager(client, appConfig.Session)

	server := ui.NewServer()
	if err := server.Initialize(appConfig, sessions); err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	log.Printf("Starting EquipViz server on port %s", appConfig.Server.Port)
	log.Fatal(server.Start(":" + appConfig.Server.Port))
}
