package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/santpatricihotel-commits/TicketIA/internal/auth"
	"github.com/santpatricihotel-commits/TicketIA/internal/db"
	"github.com/santpatricihotel-commits/TicketIA/internal/export"
	"github.com/santpatricihotel-commits/TicketIA/internal/receipt"
	"github.com/santpatricihotel-commits/TicketIA/internal/router"
	"github.com/santpatricihotel-commits/TicketIA/internal/scan"
	"github.com/santpatricihotel-commits/TicketIA/internal/storage"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── SERVICES ─────────────────────────
	authService := auth.NewService(auth.NewPostgresUserRepository(pgDB))
	receiptService := receipt.NewService(receipt.NewPostgresRepository(pgDB))
	scanService := scan.NewService(scan.NewPostgresRepository(pgDB))

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.New(router.Handlers{
		Auth:     auth.NewHandler(authService),
		Receipts: receipt.NewHandler(receiptService),
		Scans:    scan.NewHandler(scanService, r2Client),
		Exports:  export.NewHandler(receiptService),
	})

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Println("🚀 API running at http://localhost:" + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
