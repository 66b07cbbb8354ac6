package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"ridebook/config"
	"ridebook/handlers"
	"ridebook/middleware"
	"ridebook/routes"
	"ridebook/services/booking"
	"ridebook/services/notification"
	"ridebook/store"
	"ridebook/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestID())
	router.Use(gin.Logger())

	// The booking store lives for the process lifetime; all records are lost
	// on restart.
	bookingStore := store.NewMemoryBookingStore()
	defer bookingStore.Clear()

	mailer := notification.NewSMTPMailer(
		config.AppConfig.SMTPHost,
		config.AppConfig.SMTPPort,
		config.AppConfig.MailUser,
		config.AppConfig.MailAppPassword,
		config.AppConfig.MailFrom,
		logger,
	)

	bookingService := &booking.DefaultBookingService{
		Store:       bookingStore,
		Mailer:      mailer,
		AdminEmail:  config.AppConfig.AdminEmail,
		BaseURL:     config.AppConfig.BaseURL,
		SendTimeout: time.Duration(config.AppConfig.SendTimeoutSeconds) * time.Second,
		Logger:      logger,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	routes.RegisterRoutes(router, bookingHandler)

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
