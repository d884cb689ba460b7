package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	if err := initSchema(pool); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return pool
}

// initSchema creates or updates the database schema
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS
	// -------------------------------
	usersSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, usersSQL); err != nil {
		return err
	}

	// -------------------------------
	// RECEIPTS (confirmed invoices)
	// -------------------------------
	receiptsSQL := `
		CREATE TABLE IF NOT EXISTS receipts (
			id SERIAL PRIMARY KEY,
			user_id UUID NOT NULL,
			vendor VARCHAR(120) NOT NULL DEFAULT '',
			amount NUMERIC(12,2) NOT NULL DEFAULT 0,
			tax_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
			invoice_date DATE NOT NULL,
			category VARCHAR(30) NOT NULL DEFAULT 'other',
			description TEXT NOT NULL DEFAULT '',
			invoice_number VARCHAR(60) NOT NULL DEFAULT '',
			paid BOOLEAN NOT NULL DEFAULT FALSE,
			file_type VARCHAR(10) NOT NULL DEFAULT 'manual',
			image_url VARCHAR(500) NOT NULL DEFAULT '',
			ocr_text TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (user_id) REFERENCES users(id)
		)
	`
	if _, err := pool.Exec(ctx, receiptsSQL); err != nil {
		return err
	}

	// -------------------------------
	// SCAN JOBS (uploaded documents waiting for OCR + extraction)
	// -------------------------------
	scanJobsSQL := `
		CREATE TABLE IF NOT EXISTS scan_jobs (
			id SERIAL PRIMARY KEY,
			user_id UUID NOT NULL,
			image_url VARCHAR(500) NOT NULL,
			filename VARCHAR(255) NOT NULL DEFAULT '',
			file_type VARCHAR(10) NOT NULL DEFAULT 'jpg',
			status VARCHAR(30) NOT NULL DEFAULT 'UPLOADED',
			scan_error TEXT NULL,
			raw_text TEXT NOT NULL DEFAULT '',
			vendor VARCHAR(120) NOT NULL DEFAULT '',
			amount NUMERIC(12,2) NOT NULL DEFAULT 0,
			tax_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
			tax_assumed BOOLEAN NOT NULL DEFAULT FALSE,
			invoice_date VARCHAR(10) NOT NULL DEFAULT '',
			category VARCHAR(30) NOT NULL DEFAULT 'other',
			invoice_number VARCHAR(60) NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (user_id) REFERENCES users(id)
		)
	`
	if _, err := pool.Exec(ctx, scanJobsSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
