package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/healing-center/counseling-api/api/swagger"
	"github.com/healing-center/counseling-api/internal/handler"
	"github.com/healing-center/counseling-api/internal/middleware"
	"github.com/healing-center/counseling-api/internal/repository"
	"github.com/healing-center/counseling-api/internal/service"
	"github.com/healing-center/counseling-api/pkg/cache"
	"github.com/healing-center/counseling-api/pkg/config"
	"github.com/healing-center/counseling-api/pkg/database"
	"github.com/healing-center/counseling-api/pkg/logger"
	corsmiddleware "github.com/healing-center/counseling-api/pkg/middleware/cors"
	reqidmiddleware "github.com/healing-center/counseling-api/pkg/middleware/requestid"
)

// @title Counseling Center API
// @version 1.0.0
// @description Booking, counselor roster, reviews and notices for the counseling center
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("database connection failed", "error", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		logr.Sugar().Fatalw("database migration failed", "error", err)
	}

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Fatalw("redis connection failed", "error", err)
	}
	metricsSvc := service.NewMetricsService()
	cacheRepo := repository.NewCacheRepository(redisClient, logr, metricsSvc)
	defer cacheRepo.Close()

	consultationRepo := repository.NewConsultationRepository(db)
	counselorRepo := repository.NewCounselorRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	noticeRepo := repository.NewNoticeRepository(db)
	userRepo := repository.NewUserRepository(db)

	validate := validator.New()

	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		AccessTokenSecret:  cfg.JWT.Secret,
		AccessTokenExpiry:  cfg.JWT.Expiration,
		RefreshTokenExpiry: cfg.JWT.RefreshExpiration,
		Issuer:             cfg.JWT.Issuer,
	})
	consultationSvc := service.NewConsultationService(consultationRepo, validate, logr)
	counselorSvc := service.NewCounselorService(counselorRepo, cacheRepo, cfg.Cache.CounselorTTL, validate, logr)
	reviewSvc := service.NewReviewService(reviewRepo, counselorRepo, cacheRepo, validate, logr)
	noticeSvc := service.NewNoticeService(noticeRepo, cacheRepo, cfg.Cache.NoticeTTL, validate, logr)
	exportSvc := service.NewExportService(consultationRepo, reviewRepo, logr, nil, nil)

	authHandler := handler.NewAuthHandler(authSvc)
	consultationHandler := handler.NewConsultationHandler(consultationSvc)
	counselorHandler := handler.NewCounselorHandler(counselorSvc)
	reviewHandler := handler.NewReviewHandler(reviewSvc)
	noticeHandler := handler.NewNoticeHandler(noticeSvc)
	exportHandler := handler.NewExportHandler(exportSvc)
	healthHandler := handler.NewHealthHandler(db)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", healthHandler.Check)
	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/refresh", authHandler.Refresh)

		session := api.Group("/auth", middleware.JWT(authSvc))
		{
			session.POST("/logout", authHandler.Logout)
			session.POST("/change-password", authHandler.ChangePassword)
			session.GET("/me", authHandler.Me)
		}

		api.GET("/consultations", consultationHandler.List)
		api.GET("/consultations/:id", consultationHandler.Get)
		api.POST("/consultations", consultationHandler.Create)
		api.POST("/consultations/:id/cancel", consultationHandler.Cancel)

		api.GET("/counselors", counselorHandler.ListPublic)
		api.GET("/counselors/:id", counselorHandler.Get)

		api.GET("/reviews", reviewHandler.ListPublic)
		api.POST("/reviews", reviewHandler.Create)
		api.GET("/reviews/:id", reviewHandler.Get)

		api.GET("/notices", noticeHandler.ListPublic)
		api.GET("/notices/:id", noticeHandler.Get)
	}

	admin := api.Group("/admin", middleware.JWT(authSvc), middleware.AdminOnly())
	{
		admin.GET("/consultations", consultationHandler.List)
		admin.GET("/consultations/:id", consultationHandler.Get)
		admin.PUT("/consultations/:id", consultationHandler.Update)
		admin.PATCH("/consultations/:id/status", consultationHandler.UpdateStatus)
		admin.DELETE("/consultations/:id", consultationHandler.Delete)

		admin.GET("/counselors", counselorHandler.ListAdmin)
		admin.POST("/counselors", counselorHandler.Create)
		admin.PUT("/counselors/:id", counselorHandler.Update)
		admin.PATCH("/counselors/:id/toggle", counselorHandler.ToggleActive)
		admin.DELETE("/counselors/:id", counselorHandler.Delete)

		admin.GET("/reviews", reviewHandler.ListAdmin)
		admin.PUT("/reviews/:id", reviewHandler.Update)
		admin.PATCH("/reviews/:id/approve", reviewHandler.Approve)
		admin.DELETE("/reviews/:id", reviewHandler.Delete)

		admin.GET("/notices", noticeHandler.ListAdmin)
		admin.POST("/notices", noticeHandler.Create)
		admin.PUT("/notices/:id", noticeHandler.Update)
		admin.DELETE("/notices/:id", noticeHandler.Delete)

		admin.GET("/exports/consultations", exportHandler.Consultations)
		admin.GET("/exports/reviews", exportHandler.Reviews)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Errorw("server shutdown failed", "error", err)
		return
	}

	logr.Sugar().Infow("server stopped")
}
