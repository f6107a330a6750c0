package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"
)

const (
	defaultMaxRetries = 10
	pingTimeout       = 3 * time.Second
	retryDelay        = 2 * time.Second
)

type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string

	// MaxRetries bounds connection attempts; zero means the default.
	MaxRetries int
}

func (c Config) dsn() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.DBName)
}

// NewPostgresDB opens the pool and waits for the database to accept
// pings, retrying while it starts up.
func NewPostgresDB(cfg Config) (*sql.DB, error) {
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	db, err := sql.Open("postgres", cfg.dsn())
	if err != nil {
		return nil, err
	}

	for i := 1; i <= maxRetries; i++ {
		log.Printf("Connecting to database %s (attempt %d/%d)...", cfg.DBName, i, maxRetries)

		ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
		err = db.PingContext(ctx)
		cancel()

		if err == nil {
			log.Println("Database connected successfully!")
			return db, nil
		}

		if i < maxRetries {
			log.Printf("Database not ready yet: %v. Retrying in %s...", err, retryDelay)
			time.Sleep(retryDelay)
		}
	}

	db.Close()
	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}
