package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"delivery-assignment-service/internal/adapters/repositories"
	"delivery-assignment-service/internal/config"
	"delivery-assignment-service/internal/platform/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	driversCSV := config.Get("SEED_DRIVERS", "data/seeds/drivers.csv")
	deliveriesCSV := config.Get("SEED_DELIVERIES", "data/seeds/deliveries.csv")
	if err := initAndSeed(db, driversCSV, deliveriesCSV); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(db *sql.DB, driversCSV, deliveriesCSV string) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(db); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding roster...")
	if err := repositories.SeedSQLFromCSV(context.Background(), db, driversCSV, deliveriesCSV); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")

	return nil
}
