package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flow-social/internal/chain"
	socialHTTP "flow-social/internal/controller/http"
	"flow-social/internal/repo/persistent"
	"flow-social/internal/usecase"
	"flow-social/pkg/config"
	"flow-social/pkg/jwt"
	"flow-social/pkg/logger"
	"flow-social/pkg/middleware"
	"flow-social/pkg/queue"
	"flow-social/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "flow-social/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, queueClient *queue.Client, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)
	submitter := chain.NewSubmitter(cfg, log)

	// Repositories
	store := persistent.NewSocialRepository(db)

	// Use cases
	postUseCase := usecase.NewPostUseCase(store, redisClient, queueClient, log, cfg.PostRequireContent)
	voteUseCase := usecase.NewVoteUseCase(store, redisClient, queueClient, log)
	commentUseCase := usecase.NewCommentUseCase(store, redisClient, queueClient, log)

	// HTTP handlers
	postHandler := socialHTTP.NewPostHandler(postUseCase, log)
	voteHandler := socialHTTP.NewVoteHandler(voteUseCase, submitter, cfg.VoteAmountFlow, log)
	commentHandler := socialHTTP.NewCommentHandler(commentUseCase, log)
	authHandler := socialHTTP.NewAuthHandler(jwtService, log)
	mediaHandler := socialHTTP.NewMediaHandler(s3Client, log)

	// Setup router
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))

	{
		api.GET("/posts", postHandler.ListPosts)
		api.POST("/posts", postHandler.CreatePost)
		api.GET("/posts/:id", postHandler.GetPost)
		api.GET("/posts/user/:address", postHandler.GetUserPosts)
		api.POST("/posts/:id/vote", voteHandler.VotePost)
		api.GET("/posts/:id/comments", commentHandler.ListComments)
		api.POST("/posts/:id/comments", commentHandler.CreateComment)
		api.DELETE("/comments/:id", commentHandler.DeleteComment)
		api.POST("/auth/session", authHandler.CreateSession)
	}

	authenticated := api.Group("")
	authenticated.Use(middleware.AuthMiddleware(jwtService))
	{
		authenticated.GET("/auth/me", authHandler.Me)
		authenticated.POST("/media", mediaHandler.Upload)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		log.Info("Flow Social service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down Flow Social service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	if queueClient != nil {
		queueClient.Close()
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Flow Social service exited")
}
