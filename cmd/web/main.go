package main

import (
	"log"

	"github.com/joho/godotenv"

	"example.com/shop-go/internal/app"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	cfg := app.LoadConfig()

	router, cleanup, err := app.NewServer(cfg)
	if err != nil {
		log.Fatalf("init: %v", err)
	}
	defer cleanup()

	log.Printf("listening on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
