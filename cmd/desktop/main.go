package main

import (
	"context"
	"flag"
	"log"
	"os"

	"fyne.io/fyne/v2/app"
	"github.com/joho/godotenv"

	"github.com/MoodyShoo/simple-calculator/internal/desktop"
	"github.com/MoodyShoo/simple-calculator/internal/launcher"
)

func main() {
	web := flag.Bool("web", false, "open the calculator in a browser instead of a native window")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to load .env: %v", err)
	}

	l := launcher.New()

	if *web || !l.ToolkitAvailable() {
		if !*web {
			log.Println("No display available for a native window, falling back to the browser version")
		}
		os.Exit(l.ServeWeb(context.Background()))
	}

	a := app.NewWithID("com.moodyshoo.simple-calculator")
	desktop.New(a, "Simple Calculator").ShowAndRun()
}
