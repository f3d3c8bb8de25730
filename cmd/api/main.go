package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/meetpulse-team/meetpulse/internal/adapter/handler"
	"github.com/meetpulse-team/meetpulse/internal/adapter/repository"
	"github.com/meetpulse-team/meetpulse/internal/infrastructure/cache"
	"github.com/meetpulse-team/meetpulse/internal/infrastructure/database"
	httpmw "github.com/meetpulse-team/meetpulse/internal/infrastructure/http/middleware"
	"github.com/meetpulse-team/meetpulse/internal/usecase/access"
	"github.com/meetpulse-team/meetpulse/internal/usecase/analytics"
	"github.com/meetpulse-team/meetpulse/internal/usecase/auth"
	meetinguse "github.com/meetpulse-team/meetpulse/internal/usecase/meeting"
	"github.com/meetpulse-team/meetpulse/pkg/config"
	"github.com/meetpulse-team/meetpulse/pkg/jwt"
	pkgvalidator "github.com/meetpulse-team/meetpulse/pkg/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.HideBanner = true

	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	logger.Info("connecting to database")
	bootstrapDB, err := database.NewPostgresDB(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.CloseDB(bootstrapDB)

	logger.Info("applying migrations", zap.String("dir", cfg.Database.MigrationsDir))
	if err := database.Migrate(bootstrapDB, cfg.Database.MigrationsDir, logger); err != nil {
		logger.Fatal("failed to apply migrations", zap.Error(err))
	}

	roleConns, err := database.NewRoleConns(cfg, logger)
	if err != nil {
		logger.Fatal("failed to open role connections", zap.Error(err))
	}
	defer roleConns.Close()

	var store cache.Store
	redisStore, err := cache.NewRedisStore(cfg)
	if err != nil {
		logger.Warn("redis unavailable, using in-memory cache", zap.Error(err))
		store = cache.NewMemoryStore()
	} else {
		defer redisStore.Close()
		store = redisStore
	}

	jwtManager := jwt.NewManager(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	employeeRepo := repository.NewEmployeeRepository(roleConns)
	meetingRepo := repository.NewMeetingRepository(roleConns)
	transcriptRepo := repository.NewTranscriptRepository(roleConns)
	sentimentRepo := repository.NewSentimentRepository(roleConns)
	skillsRepo := repository.NewSkillsRepository(roleConns)
	recommendationRepo := repository.NewRecommendationRepository(roleConns)

	authService := auth.NewService(employeeRepo, jwtManager, logger)
	meetingService := meetinguse.NewService(meetingRepo, transcriptRepo, store, logger)
	analyticsService := analytics.NewService(sentimentRepo, skillsRepo, recommendationRepo, store, logger)
	accessService := access.NewService(bootstrapDB, logger)
	if err := accessService.Check(context.Background()); err != nil {
		logger.Warn("grant matrix deviates from expected", zap.Error(err))
	}

	authMiddleware := httpmw.NewAuthMiddleware(jwtManager)
	router := handler.NewRouter(
		cfg,
		authMiddleware,
		handler.NewAuth(authService),
		handler.NewMeeting(meetingService),
		handler.NewAnalytics(analyticsService),
		handler.NewEmployee(employeeRepo),
		handler.NewAccess(accessService),
	)
	router.Setup(e)

	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		logger.Info("starting server", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Server.Environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
