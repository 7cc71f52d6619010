package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/jvk36/cafes-with-wifi/config"
	"github.com/jvk36/cafes-with-wifi/webapp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	cfg := config.Load()

	// Set Gin mode
	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		log.Println("Running in debug mode")
	}

	api := webapp.NewClient(cfg.APIURL, 10*time.Second)
	server := webapp.NewServer(api)
	router := server.Router()

	// Start server
	log.Printf("Starting webapp on port %s (API at %s)", cfg.WebappPort, cfg.APIURL)
	if err := router.Run(":" + cfg.WebappPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
