package store

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	_ "github.com/lib/pq"
)

const retryDelay = 5 * time.Second

// Postgres is the durable store backend, used when DB_HOST is configured.
// Session state lives in a single key-value table.
type Postgres struct {
	db *sql.DB
}

// InitPostgresWithRetry attempts to connect to PostgreSQL with retries
func InitPostgresWithRetry(maxRetries int) (*Postgres, error) {
	var p *Postgres
	var err error
	for i := 0; i < maxRetries; i++ {
		p, err = initPostgres()
		if err == nil {
			return p, nil
		}
		log.Printf("Failed to connect to PostgreSQL (attempt %d/%d): %v", i+1, maxRetries, err)
		time.Sleep(retryDelay)
	}
	return nil, fmt.Errorf("failed to connect to PostgreSQL after %d attempts: %v", maxRetries, err)
}

func initPostgres() (*Postgres, error) {
	dbParams := map[string]string{
		"dbname":   os.Getenv("DB_NAME"),
		"user":     os.Getenv("DB_USER"),
		"password": os.Getenv("DB_PASSWORD"),
		"host":     os.Getenv("DB_HOST"),
		"port":     os.Getenv("DB_PORT"),
		"sslmode":  os.Getenv("DB_SSL_MODE"),
	}

	// Log current settings (excluding sensitive data)
	log.Printf("DB Host: %s", dbParams["host"])
	log.Printf("DB Port: %s", dbParams["port"])
	log.Printf("DB Name: %s", dbParams["dbname"])
	log.Printf("DB User: %s", dbParams["user"])

	// Use default values if environment variables are not set
	if dbParams["dbname"] == "" {
		dbParams["dbname"] = "krishisetu"
	}
	if dbParams["user"] == "" {
		dbParams["user"] = "postgres"
	}
	if dbParams["host"] == "" {
		dbParams["host"] = "localhost"
	}
	if dbParams["port"] == "" {
		dbParams["port"] = "5432"
	}
	if dbParams["sslmode"] == "" {
		// Managed providers require SSL
		if strings.Contains(dbParams["host"], "aivencloud.com") {
			dbParams["sslmode"] = "require"
		} else {
			dbParams["sslmode"] = "disable"
		}
	}

	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		dbParams["host"], dbParams["port"], dbParams["user"],
		dbParams["password"], dbParams["dbname"], dbParams["sslmode"])

	log.Printf("Connecting to PostgreSQL with sslmode=%s", dbParams["sslmode"])

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("error opening PostgreSQL database: %v", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Verify connection with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error connecting to PostgreSQL database: %v", err)
	}

	log.Printf("Successfully connected to PostgreSQL database: %s", dbParams["dbname"])

	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS session_store (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating session_store table: %v", err)
	}

	log.Printf("Verified session_store table exists")
	return &Postgres{db: db}, nil
}

func (p *Postgres) Get(key string) (string, bool, error) {
	var value string
	err := p.db.QueryRow(`SELECT value FROM session_store WHERE key = $1`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("error reading key %q: %v", key, err)
	}
	return value, true, nil
}

func (p *Postgres) Set(key, value string) error {
	_, err := p.db.Exec(`
		INSERT INTO session_store (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value)
	if err != nil {
		return fmt.Errorf("error writing key %q: %v", key, err)
	}
	return nil
}

func (p *Postgres) Delete(key string) error {
	if _, err := p.db.Exec(`DELETE FROM session_store WHERE key = $1`, key); err != nil {
		return fmt.Errorf("error deleting key %q: %v", key, err)
	}
	return nil
}

func (p *Postgres) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := p.db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL health check failed: %v", err)
	}
	return nil
}

func (p *Postgres) Backend() string {
	return "postgres"
}

// Close releases the underlying connection pool.
func (p *Postgres) Close() {
	if p.db != nil {
		if err := p.db.Close(); err != nil {
			log.Printf("Error closing PostgreSQL connection: %v", err)
		}
	}
}
