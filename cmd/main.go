package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vinaythakkar13/yatra-backend/config"
	"github.com/vinaythakkar13/yatra-backend/database"
	"github.com/vinaythakkar13/yatra-backend/internal/auditlog"
	"github.com/vinaythakkar13/yatra-backend/internal/hotel"
	"github.com/vinaythakkar13/yatra-backend/internal/notification"
	"github.com/vinaythakkar13/yatra-backend/internal/pilgrim"
	"github.com/vinaythakkar13/yatra-backend/internal/registration"
	"github.com/vinaythakkar13/yatra-backend/internal/yatra"
	"github.com/vinaythakkar13/yatra-backend/logger"
	"github.com/vinaythakkar13/yatra-backend/middleware"
	"github.com/vinaythakkar13/yatra-backend/routes"
	"github.com/vinaythakkar13/yatra-backend/utils"
)

// @title Yatra Backend API
// @version 1.0
// @description Room inventory, room assignment and registration lifecycle for yatra lodging.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func main() {
	cfg := config.Load()
	logger.SetLevel(cfg.LogLevel)
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db := database.Connect(cfg)

	// Auto-migrate models
	if err := database.Migrate(db,
		&yatra.Yatra{},
		&hotel.Hotel{},
		&hotel.Room{},
		&pilgrim.Person{},
		&registration.Registration{},
		&registration.PersonDetail{},
		&auditlog.RegistrationLog{},
	); err != nil {
		logger.Fatal("Database migration failed", err)
	}

	// Init Redis
	if err := utils.InitRedis(cfg); err != nil {
		logger.Warningf("Redis unavailable, continuing without live updates: %v", err)
	}

	// Init Kafka
	utils.InitializeKafka(cfg)
	defer utils.CloseKafka()
	if utils.KafkaWriter != nil && utils.RedisEnabled() {
		notification.StartKafkaConsumer(ctx, utils.NewKafkaReader(cfg), notification.NewRedisBroadcaster(utils.RedisClient))
	}

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())

	routes.Setup(router, cfg, routes.Deps{
		DB:       db,
		Redis:    utils.RedisClient,
		Notifier: notification.NewPublisher(),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Success("Server running on port " + cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", err)
	}
	if utils.RedisClient != nil {
		_ = utils.RedisClient.Close()
	}
}
