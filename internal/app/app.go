package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"tutorlux_backend/database"
	"tutorlux_backend/internal/auth"
	"tutorlux_backend/internal/config"
	"tutorlux_backend/internal/email"
	"tutorlux_backend/internal/handlers"
	"tutorlux_backend/internal/logger"
	"tutorlux_backend/internal/metrics"
	"tutorlux_backend/internal/middleware"
	"tutorlux_backend/internal/repositories"
	"tutorlux_backend/internal/routes"
	"tutorlux_backend/internal/services"
	"tutorlux_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

const emailProviderLog = "log"

// Dependencies are the outside resources the router is built on.
type Dependencies struct {
	UserRepo      repositories.UserRepository
	TutorRepo     repositories.TutorRepository
	DB            handlers.Pinger
	EmailProvider email.Provider
}

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration", "error", err)
	}

	mongo := database.NewMongo(database.Options{
		URI:                    cfg.Database.URI,
		Name:                   cfg.Database.Name,
		ServerSelectionTimeout: cfg.Database.ServerSelectionTimeout,
		ConnectTimeout:         cfg.Database.ConnectTimeout,
		MinPoolSize:            cfg.Database.MinPoolSize,
		MaxPoolSize:            cfg.Database.MaxPoolSize,
	})

	indexCtx, cancel := context.WithTimeout(context.Background(), cfg.Database.ConnectTimeout)
	if err := database.EnsureIndexes(indexCtx, mongo); err != nil {
		// The handle reconnects on the next request; indexes are retried at next start.
		logger.Error("Index bootstrap failed", "error", err)
	}
	cancel()

	provider, err := newEmailProvider(cfg)
	if err != nil {
		logger.Fatal("Failed to configure email", "error", err)
	}
	if err := provider.Validate(); err != nil {
		logger.Warn("Email provider not ready, outbound email will fail", "provider", cfg.Email.Provider, "error", err)
	}

	ginRouter, err := SetupRouter(cfg, Dependencies{
		UserRepo:      repositories.NewUserRepository(mongo),
		TutorRepo:     repositories.NewTutorRepository(mongo),
		DB:            mongo,
		EmailProvider: provider,
	})
	if err != nil {
		logger.Fatal("Failed to build router", "error", err)
	}

	srv := &http.Server{
		Addr:              cfg.Address(),
		Handler:           ginRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info(fmt.Sprintf("🚀 Server starting on %s", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP shutdown error", "error", err)
	}
	if err := mongo.Close(shutdownCtx); err != nil {
		logger.Error("Mongo disconnect error", "error", err)
	}
}

// SetupRouter wires services, handlers and routes onto a new engine.
func SetupRouter(cfg *config.Config, deps Dependencies) (*gin.Engine, error) {
	serviceContainer, issuer, err := initializeServices(cfg, deps)
	if err != nil {
		return nil, err
	}

	appHandlers := initializeHandlers(serviceContainer, deps.DB)

	ginRouter := initializeGinRouter(cfg)

	routes.RegisterRoutes(ginRouter, appHandlers, middleware.AuthMiddleware(issuer))

	return ginRouter, nil
}

func initializeServices(cfg *config.Config, deps Dependencies) (*services.ServiceContainer, *auth.TokenIssuer, error) {
	issuer, err := auth.NewTokenIssuer(cfg.JWT.Secret, cfg.TokenTTL())
	if err != nil {
		return nil, nil, err
	}

	composer := email.NewComposer(cfg.Email.FromEmail, cfg.Email.FromName)
	emailService := services.NewEmailService(
		deps.EmailProvider,
		composer,
		time.Duration(cfg.Email.SendTimeoutSecs)*time.Second,
	)

	return &services.ServiceContainer{
		AuthService:  services.NewAuthService(deps.UserRepo, issuer, emailService),
		UserService:  services.NewUserService(deps.UserRepo),
		TutorService: services.NewTutorService(deps.TutorRepo, emailService),
		EmailService: emailService,
	}, issuer, nil
}

func initializeHandlers(services *services.ServiceContainer, db handlers.Pinger) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:   handlers.NewAuthHandler(baseHandler, services.AuthService),
		UserHandler:   handlers.NewUserHandler(baseHandler, services.UserService),
		TutorHandler:  handlers.NewTutorHandler(baseHandler, services.TutorService),
		HealthHandler: handlers.NewHealthHandler(db),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(metrics.Middleware())
	return router
}

func newEmailProvider(cfg *config.Config) (email.Provider, error) {
	if strings.EqualFold(cfg.Email.Provider, emailProviderLog) {
		return &MockEmailProvider{}, nil
	}
	return email.NewProvider(email.Config{
		Provider:         cfg.Email.Provider,
		MailjetAPIKey:    cfg.Email.MailjetAPIKey,
		MailjetSecretKey: cfg.Email.MailjetSecret,
		MailjetBaseURL:   cfg.Email.MailjetBaseURL,
		SMTPHost:         cfg.Email.SMTPHost,
		SMTPPort:         cfg.Email.SMTPPort,
		SMTPUsername:     cfg.Email.SMTPUsername,
		SMTPPassword:     cfg.Email.SMTPPassword,
		FromEmail:        cfg.Email.FromEmail,
		FromName:         cfg.Email.FromName,
		Timeout:          time.Duration(cfg.Email.SendTimeoutSecs) * time.Second,
	})
}
