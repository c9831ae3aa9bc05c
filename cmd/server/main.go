package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"delivery-assignment-service/internal/adapters/lock"
	"delivery-assignment-service/internal/adapters/repositories"
	"delivery-assignment-service/internal/api"
	"delivery-assignment-service/internal/config"
	"delivery-assignment-service/internal/platform/db"
	"delivery-assignment-service/internal/platform/metrics"
	"delivery-assignment-service/internal/ports"
	"delivery-assignment-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (SQLite or Postgres stores, Redis or
// local run lock) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	lockWait := time.Duration(config.GetInt("LOCK_WAIT_MS", 2000)) * time.Millisecond
	lockTTL := time.Duration(config.GetInt("LOCK_TTL_MS", 60000)) * time.Millisecond

	store, flavor, err := openStore()
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	if err := repositories.InitSchema(store); err != nil {
		log.Fatal(err)
	}

	// Optional roster import on startup for local runs.
	if err := seedRoster(store, flavor); err != nil {
		log.Fatal(err)
	}

	runLock, err := chooseLock(lockTTL)
	if err != nil {
		log.Fatal(err)
	}

	deps := services.RunDeps{
		Lock:     runLock,
		LockWait: lockWait,
	}
	var routes ports.RecordSource
	if flavor == "postgres" {
		deps.Drivers = repositories.NewSQLDriverSource(store)
		deps.Deliveries = repositories.NewSQLDeliverySource(store)
		deps.Routes = repositories.NewSQLRouteSink(store)
		routes = repositories.NewSQLRouteSource(store)
	} else {
		deps.Drivers = repositories.NewSqliteDriverSource(store)
		deps.Deliveries = repositories.NewSqliteDeliverySource(store)
		deps.Routes = repositories.NewSqliteRouteSink(store)
		routes = repositories.NewSqliteRouteSource(store)
	}

	metrics.Register()
	handler := api.NewRouter(deps, routes)

	// Browser dashboards trigger runs cross-origin.
	origins := strings.Split(config.Get("CORS_ORIGINS", "*"), ",")
	handler = handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{"GET", "POST"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(handler)

	log.Printf("Server listening addr=:%s store=%s", port, flavor)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openStore picks Postgres when DATABASE_URL is set, SQLite otherwise.
func openStore() (*sql.DB, string, error) {
	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		store, err := db.Open(databaseURL)
		if err != nil {
			return nil, "", err
		}
		return store, "postgres", nil
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	store, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, "", fmt.Errorf("openStore: open sqlite database %q: %w", dbPath, err)
	}
	if err := store.Ping(); err != nil {
		return nil, "", fmt.Errorf("openStore: verify sqlite connection to %q: %w", dbPath, err)
	}

	return store, "sqlite", nil
}

func seedRoster(store *sql.DB, flavor string) error {
	driversCSV := os.Getenv("SEED_DRIVERS")
	deliveriesCSV := os.Getenv("SEED_DELIVERIES")
	if strings.TrimSpace(driversCSV) == "" || strings.TrimSpace(deliveriesCSV) == "" {
		return nil
	}

	ctx := context.Background()
	if flavor == "postgres" {
		return repositories.SeedSQLFromCSV(ctx, store, driversCSV, deliveriesCSV)
	}
	return repositories.SeedSqliteFromCSV(ctx, store, driversCSV, deliveriesCSV)
}

// chooseLock uses Redis when REDIS_URL is set so multiple instances
// share one lock; otherwise a process-local lock is enough.
func chooseLock(ttl time.Duration) (ports.RunLock, error) {
	redisURL := os.Getenv("REDIS_URL")
	if strings.TrimSpace(redisURL) == "" {
		return lock.NewLocalRunLock(), nil
	}

	return lock.NewRedisRunLock(redisURL, "allocation:run-lock", ttl)
}
