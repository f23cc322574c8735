package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	newsroomHTTP "newsroom/internal/controller/http"
	"newsroom/internal/repo/persistent"
	"newsroom/internal/usecase"
	"newsroom/pkg/config"
	"newsroom/pkg/jwt"
	"newsroom/pkg/logger"
	"newsroom/pkg/mailer"
	"newsroom/pkg/middleware"
	"newsroom/pkg/queue"
	"newsroom/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Run wires the repositories, use cases and handlers, starts the HTTP
// server and the queue consumer, then blocks until a shutdown signal.
// redisClient, queueClient and s3Client may be nil; the features backed by
// them degrade instead of failing.
func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, queueClient *queue.Client, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Initialize repositories
	userRepo := persistent.NewUserRepository(db)
	publisherRepo := persistent.NewPublisherRepository(db)
	articleRepo := persistent.NewArticleRepository(db)
	subscriptionRepo := persistent.NewSubscriptionRepository(db)
	newsletterRepo := persistent.NewNewsletterRepository(db)
	notificationRepo := persistent.NewNotificationRepository(db)

	// Initialize use cases
	mailSender := mailer.NewSMTPSender(cfg)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo, subscriptionRepo, userRepo, publisherRepo, mailSender, log)
	authUseCase := usecase.NewAuthUseCase(userRepo, jwtService, log)
	publisherUseCase := usecase.NewPublisherUseCase(publisherRepo, log)
	var covers usecase.CoverStorage
	if s3Client != nil {
		covers = s3Client
	}
	articleUseCase := usecase.NewArticleUseCase(articleRepo, publisherRepo, notificationUseCase, covers, log)
	subscriptionUseCase := usecase.NewSubscriptionUseCase(subscriptionRepo, userRepo, publisherRepo, queueClient, log)
	newsletterUseCase := usecase.NewNewsletterUseCase(newsletterRepo, publisherRepo, notificationUseCase, log)
	feedUseCase := usecase.NewFeedUseCase(articleRepo, publisherRepo, subscriptionRepo, notificationRepo, redisClient, log)

	// Initialize HTTP handlers
	authHandler := newsroomHTTP.NewAuthHandler(authUseCase, log)
	publisherHandler := newsroomHTTP.NewPublisherHandler(publisherUseCase, log)
	articleHandler := newsroomHTTP.NewArticleHandler(articleUseCase, log)
	subscriptionHandler := newsroomHTTP.NewSubscriptionHandler(subscriptionUseCase, log)
	newsletterHandler := newsroomHTTP.NewNewsletterHandler(newsletterUseCase, log)
	notificationHandler := newsroomHTTP.NewNotificationHandler(notificationUseCase, log)
	feedHandler := newsroomHTTP.NewFeedHandler(feedUseCase, log)

	// Subscription events arrive over RabbitMQ and turn into notifications
	// for the followed journalist.
	if queueClient != nil {
		go func() {
			if err := queueClient.ConsumeSubscriptionEvents(notificationUseCase.HandleSubscriptionEvent); err != nil {
				log.Error("Subscription consumer stopped: %v", err)
			}
		}()
	}

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	public := r.Group("/api/v1")
	{
		public.POST("/auth/register", authHandler.Register)
		public.POST("/auth/login", authHandler.Login)
	}

	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(jwtService))
	api.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))

	{
		api.GET("/auth/me", authHandler.Me)

		api.GET("/dashboard", feedHandler.Dashboard)

		api.POST("/articles", articleHandler.CreateArticle)
		api.GET("/articles/:id", articleHandler.GetArticle)
		api.PUT("/articles/:id", articleHandler.UpdateArticle)
		api.DELETE("/articles/:id", articleHandler.DeleteArticle)
		api.POST("/articles/:id/approve", articleHandler.ApproveArticle)
		api.POST("/articles/:id/cover", articleHandler.UploadCover)

		api.POST("/publishers", publisherHandler.CreatePublisher)
		api.GET("/publishers", publisherHandler.ListPublishers)

		api.POST("/subscriptions", subscriptionHandler.Subscribe)
		api.DELETE("/subscriptions", subscriptionHandler.Unsubscribe)
		api.GET("/subscriptions", subscriptionHandler.ListSubscriptions)

		api.POST("/newsletters", newsletterHandler.CreateNewsletter)
		api.GET("/newsletters/:id", newsletterHandler.GetNewsletter)
		api.POST("/newsletters/:id/approve", newsletterHandler.ApproveNewsletter)

		api.GET("/notifications", notificationHandler.ListNotifications)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Newsroom starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down newsroom...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Close RabbitMQ connection
	if queueClient != nil {
		queueClient.Close()
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Newsroom exited")
}
