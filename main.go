package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"

	"github.com/ejd6617/skybound/internal/app"
)

func main() {
	_ = godotenv.Load() // optional .env overrides for local runs

	application := app.New()    // Initialize the application
	wait := application.Start() // Start the application and wait for the termination signal
	<-wait                      // Wait for the application to receive a termination signal

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	application.Stop(ctx) // Stop the application gracefully
}
