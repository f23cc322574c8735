package main

import (
	"newsroom/internal/app"
	"newsroom/pkg/cache"
	"newsroom/pkg/config"
	"newsroom/pkg/database"
	"newsroom/pkg/logger"
	"newsroom/pkg/queue"
	"newsroom/pkg/s3"
)

// @title           Newsroom API
// @version         1.0
// @description     Role-based news publishing platform: journalists submit, editors approve, readers subscribe.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.JWTSecret == "your-secret-key-change-in-production" || cfg.JWTSecret == "" {
		panic("JWT_SECRET must be set in environment variables")
	}

	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	// Migrations are handled by goose - see cmd/migrate/main.go

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Warn("Redis unavailable, feed cache and rate limiting disabled: %v", err)
		redisClient = nil
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Warn("RabbitMQ unavailable, subscription events disabled: %v", err)
		queueClient = nil
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Warn("S3 unavailable, cover uploads disabled: %v", err)
		s3Client = nil
	}

	app.Run(cfg, log, db, s3Client, queueClient, redisClient)
}
