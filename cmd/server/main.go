package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MasterEda92/UserService/adapters/event"
	httpAdapter "github.com/MasterEda92/UserService/adapters/http"
	"github.com/MasterEda92/UserService/adapters/persistence"
	userUC "github.com/MasterEda92/UserService/internal/application/usecase/user"
	"github.com/MasterEda92/UserService/internal/config"
	"github.com/MasterEda92/UserService/internal/domain/user"
	"github.com/MasterEda92/UserService/pkg/auth"
	"github.com/MasterEda92/UserService/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	if err := persistence.Migrate(cfg.DB.MigrationsURL, cfg.DB.DSN); err != nil {
		appLogger.Fatal("Cannot apply migrations", err)
	}

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Postgres", err)
	}
	defer dbPool.Close()

	var publisher user.EventPublisher = event.NoopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaPublisher, err := event.NewKafkaUserEventPublisher(cfg)
		if err != nil {
			appLogger.Fatal("Cannot init Kafka producer", err)
		}
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	} else {
		appLogger.Warn("No Kafka brokers configured, user events are disabled")
	}

	userRepo := persistence.NewPostgresUserRepo(dbPool)
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	userService := userUC.NewService(userRepo, jwtSvc, publisher, appLogger, cfg.Auth.BcryptCost)
	userHandler := httpAdapter.NewUserHandler(userService, appLogger)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(httpAdapter.RequestID())
	router.Use(httpAdapter.ErrorMiddleware(appLogger))

	httpAdapter.RegisterRoutes(router, userHandler, httpAdapter.AuthMiddleware(jwtSvc))

	appLogger.Info("Server running", zap.String("port", cfg.App.Port))
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("Cannot run server", err)
	}
}
