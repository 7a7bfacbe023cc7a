package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
)

// DB is the road network database, used only when ROAD_SOURCE=postgres.
var DB *sql.DB

const dbRetryDelay = 5 * time.Second

// InitDBWithRetry attempts to connect to PostgreSQL with retries.
func InitDBWithRetry(maxRetries int) error {
	var err error
	for i := 0; i < maxRetries; i++ {
		err = InitDB()
		if err == nil {
			return nil
		}
		log.Printf("Failed to connect to PostgreSQL (attempt %d/%d): %v", i+1, maxRetries, err)
		time.Sleep(dbRetryDelay)
	}
	return fmt.Errorf("failed to connect to PostgreSQL after %d attempts: %v", maxRetries, err)
}

func InitDB() error {
	host := getEnvWithDefault("DB_HOST", "localhost")
	port := getEnvWithDefault("DB_PORT", "5432")
	user := getEnvWithDefault("DB_USER", "postgres")
	dbname := getEnvWithDefault("DB_NAME", "roadnet")
	sslmode := getEnvWithDefault("DB_SSL_MODE", "disable")

	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, os.Getenv("DB_PASSWORD"), dbname, sslmode)

	log.Printf("Connecting to PostgreSQL %s:%s/%s sslmode=%s", host, port, dbname, sslmode)

	var err error
	DB, err = sql.Open("postgres", connStr)
	if err != nil {
		return fmt.Errorf("error opening PostgreSQL database: %v", err)
	}

	DB.SetMaxOpenConns(25)
	DB.SetMaxIdleConns(5)
	DB.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = DB.PingContext(ctx); err != nil {
		return fmt.Errorf("error connecting to PostgreSQL database: %v", err)
	}

	var tableExists bool
	err = DB.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_name = 'road_nodes'
		)`).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("error checking road_nodes table: %v", err)
	}
	if !tableExists {
		return fmt.Errorf("road_nodes table does not exist in the database")
	}

	log.Printf("Successfully connected to PostgreSQL database: %s", dbname)
	return nil
}

// CheckPostgresHealth pings the road network database.
func CheckPostgresHealth() error {
	if DB == nil {
		return fmt.Errorf("database connection not initialized")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := DB.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL health check failed: %v", err)
	}
	return nil
}

// CloseDB releases the database connection on shutdown.
func CloseDB() {
	if DB != nil {
		if err := DB.Close(); err != nil {
			log.Printf("Error closing PostgreSQL connection: %v", err)
		}
	}
}
