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

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS
	// -------------------------------
	userTableSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'NUTRITIONIST',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, userTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// FOODS (shared catalog)
	// -------------------------------
	foodsSQL := `
		CREATE TABLE IF NOT EXISTS foods (
			id UUID PRIMARY KEY,
			name VARCHAR(255) UNIQUE NOT NULL,
			food_group VARCHAR(255) NOT NULL,
			unit VARCHAR(50) NOT NULL DEFAULT '',
			unit_price DOUBLE PRECISION NOT NULL DEFAULT 0,
			calories_per_100g DOUBLE PRECISION NOT NULL DEFAULT 0,
			protein_per_100g DOUBLE PRECISION NOT NULL DEFAULT 0,
			carbs_per_100g DOUBLE PRECISION NOT NULL DEFAULT 0,
			lipids_per_100g DOUBLE PRECISION NOT NULL DEFAULT 0,
			sugars_per_100g DOUBLE PRECISION NULL,
			portion_grams DOUBLE PRECISION NOT NULL DEFAULT 0,
			weekly_frequency DOUBLE PRECISION NOT NULL DEFAULT 0,
			monthly_quantity DOUBLE PRECISION NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, foodsSQL); err != nil {
		return err
	}

	// -------------------------------
	// PATIENTS
	// -------------------------------
	patientsSQL := `
		CREATE TABLE IF NOT EXISTS patients (
			id UUID PRIMARY KEY,
			owner_id UUID NOT NULL,
			full_name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL DEFAULT '',
			weight DOUBLE PRECISION NOT NULL DEFAULT 0,
			height DOUBLE PRECISION NOT NULL DEFAULT 0,
			target_protein DOUBLE PRECISION NOT NULL DEFAULT 0,
			target_calories DOUBLE PRECISION NOT NULL DEFAULT 0,
			diet_restrictions TEXT[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (owner_id) REFERENCES users(id)
		)
	`
	if _, err := db.Exec(ctx, patientsSQL); err != nil {
		return err
	}

	// -------------------------------
	// CREATIONS (saved diets and carts)
	// -------------------------------
	creationsSQL := `
		CREATE TABLE IF NOT EXISTS creations (
			id UUID PRIMARY KEY,
			owner_id UUID NOT NULL,
			name VARCHAR(255) NOT NULL,
			creation_type VARCHAR(20) NOT NULL,
			tags TEXT[] NOT NULL DEFAULT '{}',
			content JSONB NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (owner_id) REFERENCES users(id)
		)
	`
	if _, err := db.Exec(ctx, creationsSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
