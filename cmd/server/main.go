package main

import (
	"flow-social/internal/app"
	"flow-social/pkg/cache"
	"flow-social/pkg/config"
	"flow-social/pkg/database"
	"flow-social/pkg/logger"
	"flow-social/pkg/queue"
	"flow-social/pkg/s3"
)

// @title           Flow Social API
// @version         1.0
// @description     Social feed service with wallet identity and on-chain vote recording

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

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
		log.Error("Failed to connect to redis: %v", err)
		panic(err)
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		panic(err)
	}

	// RabbitMQ carries advisory notification events. The service stays up
	// without it.
	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Warn("Failed to connect to RabbitMQ, notification events disabled: %v", err)
		queueClient = nil
	}

	app.Run(cfg, log, db, s3Client, queueClient, redisClient)
}
