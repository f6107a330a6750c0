package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/railstack/railseat/internal/adapter/handler"
	"github.com/railstack/railseat/internal/adapter/repository/postgres"
	"github.com/railstack/railseat/internal/core/services"
	"github.com/railstack/railseat/internal/platform/database"
)

func loadEnv(filepath string) {
	file, err := os.Open(filepath)

	if err != nil {
		log.Println("No .env file found, using OS environment.")
		return
	}

	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) == 2 {
			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])

			os.Setenv(key, value)
		}
	}

	if err := scanner.Err(); err != nil {
		log.Printf("Failed to read .env file: %v\n", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	loadEnv(".env")

	dbConfig := database.Config{
		Host:     envOr("DB_HOST", "localhost"),
		Port:     envOr("DB_PORT", "5432"),
		User:     envOr("DB_USER", "postgres"),
		Password: os.Getenv("DB_PASSWORD"),
		DBName:   envOr("DB_NAME", "railseat"),
	}

	db, err := database.NewPostgresDB(dbConfig)

	if err != nil {
		log.Fatalf("Failed to connect to db after retries: %v", err)
	}

	redisHost := envOr("REDIS_HOST", "localhost")
	redisPort := envOr("REDIS_PORT", "6379")

	log.Printf("Connecting to Redis at %s:%s...", redisHost, redisPort)

	redisClient := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", redisHost, redisPort),
		DB:   0,
	})

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	log.Println("Redis connected successfully!")

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)
	defer db.Close()

	trainRepo := postgres.NewTrainRepository(db)
	seatRepo := postgres.NewSeatRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)

	locks := services.NewTrainLocks()

	allocationService := services.NewAllocationService(trainRepo, seatRepo, bookingRepo, redisClient, locks)
	inventoryService := services.NewInventoryService(trainRepo, seatRepo, redisClient, locks)

	bookingHandler := handler.NewBookingHandler(allocationService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)

	mux := http.NewServeMux()

	mux.HandleFunc("POST /bookings", bookingHandler.CreateBooking)
	mux.HandleFunc("GET /bookings/{id}", bookingHandler.GetBooking)
	mux.HandleFunc("GET /trains/{id}/seats", bookingHandler.GetSeats)
	mux.HandleFunc("POST /trains/{id}/seats", inventoryHandler.GenerateSeats)
	mux.HandleFunc("PUT /trains/{id}/seats", inventoryHandler.ResizeSeats)

	server := &http.Server{
		Addr:         ":8080",
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Println("Server starting on port :8080")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
