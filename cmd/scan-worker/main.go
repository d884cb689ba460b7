package main

import (
	"context"
	"log"
	"os"
	"os/exec"
	"time"

	"github.com/joho/godotenv"

	"github.com/santpatricihotel-commits/TicketIA/internal/db"
	"github.com/santpatricihotel-commits/TicketIA/internal/scan"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: No .env file found, using environment variables")
	}

	log.Println("🧠 Scan worker starting...")

	if os.Getenv("DATABASE_URL") == "" {
		log.Fatal("DATABASE_URL is not set in .env")
	}
	mustHaveBinary("tesseract")

	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	service := scan.NewService(scan.NewPostgresRepository(pgDB))

	log.Println("✅ Scan worker initialized and running...")
	log.Println("Processing uploads every 2 seconds. Press Ctrl+C to stop.")

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		if err := service.ProcessOne(context.Background()); err != nil {
			log.Printf("⚠️  Scan error: %v", err)
		}
	}
}

// --------------------------------------------------
func mustHaveBinary(name string) {
	if _, err := exec.LookPath(name); err != nil {
		log.Fatalf("Required binary missing: %s", name)
	}
}
