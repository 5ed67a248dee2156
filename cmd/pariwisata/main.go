package main

import (
	"log"

	"github.com/pariwisata-jepara/backend/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ pariwisata failed to start: %v", err)
	}
}
