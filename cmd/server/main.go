package main // Entry point package

import (
	"context" // background context for the sweep loop
	"log"     // Logging library

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/chefgpt/backend/internal/config"     // Internal config loader
	"github.com/chefgpt/backend/internal/database"   // MySQL connection helper
	"github.com/chefgpt/backend/internal/handler"    // HTTP handlers
	"github.com/chefgpt/backend/internal/hub"        // WebSocket notification hub
	"github.com/chefgpt/backend/internal/middleware" // response cache middleware
	"github.com/chefgpt/backend/internal/queue"      // reminder.due consumer
	"github.com/chefgpt/backend/internal/reminder"   // reminder clock, service and sweeper
	"github.com/chefgpt/backend/internal/repository" // DB repositories
	"github.com/chefgpt/backend/internal/router"     // Internal router setup
	queue_publisher "github.com/chefgpt/backend/internal/service"
)

func main() {
	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional: a nil client disables the response cache.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; response cache disabled")
	}

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	recipes := repository.NewRecipeRepo(db)
	ratings := repository.NewRatingRepo(db)
	inventory := repository.NewInventoryRepo(db)
	reminders := repository.NewReminderRepo(db)

	remSvc := reminder.NewService(reminders, cfg.ReminderInterval)
	notifyHub := hub.New(cfg.JWTSecret)

	// The due sweep pushes to live connections and leaves an audit
	// trail on the broker; the consumer turns that trail into a log.
	sweeper := reminder.NewSweeper(reminders, cfg.SweepInterval, notifyHub, queue_publisher.ReminderSink{})
	go sweeper.Run(context.Background())
	go func() {
		if err := queue.StartReminderConsumer(); err != nil {
			log.Printf("reminder-consumer stopped: %v", err)
		}
	}()

	invHandler := handler.NewInventoryHandler(inventory)

	e := echo.New() // Create Echo instance
	router.RegisterRoutes(e)
	router.RegisterAuth(e,
		handler.NewAuthHandler(cfg, users, tokens, remSvc),
		handler.NewReminderHandler(remSvc),
		invHandler,
		cfg.JWTSecret)
	router.RegisterPublic(e,
		handler.NewRecipeHandler(cfg, recipes, ratings),
		invHandler,
		middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	router.RegisterWS(e, handler.NewWSHandler(notifyHub))

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
