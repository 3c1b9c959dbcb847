// Package main запускает relay-сервис gRPC-web.
package main

import (
	"log"
	"os"

	"github.com/avc/savings-relay/internal/app"
)

func main() {
	application, err := app.NewApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Printf("Application terminated with error: %v", err)
		os.Exit(1)
	}
}
