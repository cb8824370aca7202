// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	firebase "firebase.google.com/go/v4"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ChinmayIngle26/College-hub-sub000/internal/config"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/database"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/i18n"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/logging"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/router"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/services"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	flush := logging.Setup(cfg)
	defer flush()

	ctx := context.Background()

	var fbApp *firebase.App
	if cfg.Store.Backend == "firestore" || cfg.Auth.Provider == "firebase" {
		fbApp, err = database.NewFirebaseApp(ctx, cfg.Firebase)
		if err != nil {
			logrus.WithError(err).Fatal("Failed to initialize firebase")
		}
	}

	// Initialize the data store
	st, err := store.Open(ctx, cfg, fbApp)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize data store")
	}
	defer st.Close()

	if err := store.Migrate(st); err != nil {
		logrus.WithError(err).Fatal("Failed to run migrations")
	}

	// Initialize i18n
	if err := i18n.Initialize(cfg.I18n.DefaultLocale); err != nil {
		logrus.WithError(err).Fatal("Failed to initialize i18n")
	}

	deps, err := buildDependencies(ctx, cfg, st, fbApp)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize services")
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := router.Initialize(cfg, deps)
	defer r.Close()

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      r.Engine,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logrus.WithField("addr", srv.Addr).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	// Create a deadline for shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Server forced to shutdown")
	}

	// let background parent notifications finish
	deps.LeaveService.WaitForNotifications()

	logrus.Info("Server exited")
}

func buildDependencies(ctx context.Context, cfg *config.Config, st store.Store, fbApp *firebase.App) (router.Dependencies, error) {
	generator, err := services.NewEmailDraftGenerator(ctx, cfg.LLM)
	if err != nil {
		return router.Dependencies{}, err
	}
	archive, err := services.NewStorageService(cfg.AWS)
	if err != nil {
		return router.Dependencies{}, err
	}

	notifier := services.NewNotificationService(
		services.NewEmailComposer(generator),
		services.NewMailer(cfg.Email),
		archive,
	)

	deps := router.Dependencies{
		StudentService: services.NewStudentService(st),
		LeaveService: services.NewLeaveService(st, notifier,
			services.WithAsyncNotification(cfg.Notification.Async)),
	}

	switch cfg.Auth.Provider {
	case "firebase":
		authClient, err := fbApp.Auth(ctx)
		if err != nil {
			return router.Dependencies{}, fmt.Errorf("failed to initialize firebase auth: %w", err)
		}
		deps.Verifier = services.NewFirebaseVerifier(authClient)
	default:
		deps.AuthService = services.NewAuthService(st, cfg)
		deps.Verifier = services.JWTVerifier{}
	}

	return deps, nil
}
