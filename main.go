package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"seminarhall/config"
	"seminarhall/cron"
	"seminarhall/database"
	hallRepoPkg "seminarhall/database/repository/hall"
	notificationRepoPkg "seminarhall/database/repository/notification"
	seminarRepoPkg "seminarhall/database/repository/seminar"
	userRepoPkg "seminarhall/database/repository/user"
	"seminarhall/handlers"
	"seminarhall/routes"
	"seminarhall/services/hall"
	"seminarhall/services/notification"
	"seminarhall/services/seminar"
	"seminarhall/services/user"
	"seminarhall/utils"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	handlers.RegisterValidators()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// Repositories.
	semRepo := seminarRepoPkg.NewMongoSeminarRepo()
	hRepo := hallRepoPkg.NewMongoHallRepo()
	uRepo := userRepoPkg.NewMongoUserRepo()
	notifRepo := notificationRepoPkg.NewMongoNotificationRepo()

	// Reminder queue producer.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer asynqClient.Close()

	// Services.
	seminarService := &seminar.DefaultSeminarService{
		Repo:        semRepo,
		HallRepo:    hRepo,
		AsynqClient: asynqClient,
	}
	hallService := &hall.DefaultHallService{Repo: hRepo}
	userService := &user.DefaultUserService{Repo: uRepo}
	notificationService := &notification.DefaultNotificationService{Repo: notifRepo}

	// Reminder queue consumer.
	cron.InitReminderWorker(notificationService)

	handlerBundle := handlers.NewHandlerBundle(seminarService, hallService, userService, notificationService)
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
