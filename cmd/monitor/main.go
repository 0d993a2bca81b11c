package main

import (
	"log"

	"github.com/joho/godotenv"

	"posturecorrector/internal/app"
)

func main() {
	// .env is optional; env vars and defaults cover everything.
	_ = godotenv.Load()

	application, err := app.NewApp()
	if err != nil {
		log.Fatalf("Failed to start posture corrector: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Posture corrector stopped: %v", err)
	}
}
