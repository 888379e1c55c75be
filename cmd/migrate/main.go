package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	if len(os.Args) < 2 {
		fmt.Println("Usage: go run ./cmd/migrate [drop|up|seed]")
		os.Exit(1)
	}

	command := os.Args[1]

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer conn.Close(ctx)

	switch command {
	case "drop":
		if err := dropTables(ctx, conn); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		fmt.Println("All tables dropped successfully")

	case "up":
		if err := createTables(ctx, conn); err != nil {
			log.Fatalf("Failed to create tables: %v", err)
		}
		fmt.Println("All tables created successfully")

	case "seed":
		if err := seedData(ctx, conn); err != nil {
			log.Fatalf("Failed to seed data: %v", err)
		}
		fmt.Println("Data seeded successfully")

	default:
		fmt.Printf("Unknown command: %s\n", command)
		fmt.Println("Usage: go run ./cmd/migrate [drop|up|seed]")
		os.Exit(1)
	}
}

func dropTables(ctx context.Context, conn *pgx.Conn) error {
	queries := []string{
		`DROP TABLE IF EXISTS registrants CASCADE`,
		`DROP TABLE IF EXISTS campaign_config CASCADE`,
	}

	for _, query := range queries {
		if _, err := conn.Exec(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
		fmt.Printf("  Dropped: %s\n", query)
	}

	return nil
}

func createTables(ctx context.Context, conn *pgx.Conn) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS registrants (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			cpf TEXT NOT NULL,
			phone TEXT NOT NULL,
			birth_date DATE NOT NULL,
			qr_token TEXT NOT NULL,
			used BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			used_at TIMESTAMPTZ,
			CONSTRAINT registrants_cpf_key UNIQUE (cpf),
			CONSTRAINT registrants_phone_key UNIQUE (phone),
			CONSTRAINT registrants_qr_token_key UNIQUE (qr_token)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_registrants_name ON registrants (name)`,
		`CREATE INDEX IF NOT EXISTS idx_registrants_created_at ON registrants (created_at DESC)`,
		`CREATE TABLE IF NOT EXISTS campaign_config (
			id UUID PRIMARY KEY,
			title TEXT NOT NULL,
			registrant_cap INTEGER NOT NULL,
			admin_password_hash TEXT NOT NULL,
			enrollment_deadline TIMESTAMPTZ,
			last_updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, query := range queries {
		if _, err := conn.Exec(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}

	return nil
}

func seedData(ctx context.Context, conn *pgx.Conn) error {
	// Development-only sample registrants with valid CPFs
	query := `
		INSERT INTO registrants (id, name, cpf, phone, birth_date, qr_token)
		VALUES
			(gen_random_uuid(), 'Maria Silva', '52998224725', '92999990001', '1990-05-10', md5('seed-1')),
			(gen_random_uuid(), 'João Souza', '11144477735', '92999990002', '1988-11-23', md5('seed-2')),
			(gen_random_uuid(), 'Ana Pereira', '12345678909', '92999990003', '2001-02-14', md5('seed-3'))
		ON CONFLICT (cpf) DO NOTHING
	`

	if _, err := conn.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to seed registrants: %w", err)
	}

	return nil
}
