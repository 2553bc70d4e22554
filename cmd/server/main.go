package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/MoodyShoo/simple-calculator/internal/launcher"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to load .env: %v", err)
	}

	l := launcher.New()
	os.Exit(l.ServeWeb(context.Background()))
}
