package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // .env loading for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/ristoranti/ristoranti-backend/internal/config"
	"github.com/ristoranti/ristoranti-backend/internal/database"
	"github.com/ristoranti/ristoranti-backend/internal/handler"
	"github.com/ristoranti/ristoranti-backend/internal/middleware"
	"github.com/ristoranti/ristoranti-backend/internal/queue"
	"github.com/ristoranti/ristoranti-backend/internal/repository"
	"github.com/ristoranti/ristoranti-backend/internal/router"
)

func main() {
	_ = godotenv.Load() // best effort; real deployments set env directly

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional: a nil client disables caching and rate limiting.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; response cache and rate limiting disabled")
	}
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	rateMW := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	// Background consumer writing reservation events to logs/reservations.log.
	go func() {
		if err := queue.StartReservationConsumer(); err != nil {
			log.Printf("reservation consumer stopped: %v", err)
		}
	}()

	restaurants := repository.NewRestaurantRepo(db)
	reservations := repository.NewReservationRepo(db)
	turns := repository.NewTurnRepo(db)
	customers := repository.NewCustomerRepo(db)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, customers), cfg.JWTSecret)
	router.RegisterRestaurants(e, handler.NewRestaurantHandler(restaurants), cfg.JWTSecret, rateMW, cacheMW)
	router.RegisterBooking(e, handler.NewBookingHandler(restaurants, reservations, turns), cfg.JWTSecret, rateMW)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
