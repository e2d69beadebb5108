package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/bazarhub/admin-api/api/swagger"
	"github.com/bazarhub/admin-api/internal/handler"
	"github.com/bazarhub/admin-api/internal/middleware"
	"github.com/bazarhub/admin-api/internal/repository"
	"github.com/bazarhub/admin-api/internal/service"
	"github.com/bazarhub/admin-api/pkg/cache"
	"github.com/bazarhub/admin-api/pkg/config"
	"github.com/bazarhub/admin-api/pkg/database"
	"github.com/bazarhub/admin-api/pkg/logger"
	corsmiddleware "github.com/bazarhub/admin-api/pkg/middleware/cors"
	reqidmiddleware "github.com/bazarhub/admin-api/pkg/middleware/requestid"
)

// @title BazarHub Admin API
// @version 0.1.0
// @description Privileged marketplace administration console backend
// @BasePath /
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
		logr.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer db.Close()

	// Redis only hardens replay detection; the audit trail stays the durable
	// record, so a missing cache is not fatal.
	rdb, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Warn("redis unavailable, idempotency reservations disabled", zap.Error(err))
		rdb = nil
	} else {
		defer rdb.Close()
	}

	validate := validator.New()

	staffRepo := repository.NewStaffRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	disputeRepo := repository.NewDisputeRepository(db)
	payoutRepo := repository.NewPayoutRepository(db)
	appealRepo := repository.NewAppealRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	verificationRepo := repository.NewVerificationRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	gate := service.NewGateService(staffRepo, logr)
	ledger := service.NewIdempotencyService(auditRepo, rdb, cfg.Idempotency.Retention, logr)

	authService := service.NewAuthService(staffRepo, auditRepo, validate, logr, service.AuthConfig{
		TokenSecret: cfg.JWT.Secret,
		TokenExpiry: cfg.JWT.Expiration,
		Issuer:      cfg.JWT.Issuer,
	})

	metrics := service.NewMetricsService()

	svc := handler.Services{
		Auth: authService,
		Transitions: service.NewTransitionService(
			gate, orderRepo, disputeRepo, payoutRepo, appealRepo, accountRepo,
			auditRepo, ledger, validate, logr).WithMetrics(metrics),
		Moderation: service.NewModerationService(gate, accountRepo, verificationRepo, auditRepo, validate, logr),
		Staff:      service.NewStaffService(gate, staffRepo, auditRepo, validate, logr),
		Settings:   service.NewSettingsService(gate, settingsRepo, auditRepo, validate, logr),
		Support:    service.NewSupportService(gate, ticketRepo, auditRepo, logr),
		Export:     service.NewExportService(gate, auditRepo, cfg.Exports.MaxRows, logr),
		Metrics:    metrics,
		AuditRepo:  auditRepo,
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(svc.Metrics))

	handler.RegisterRoutes(r, svc)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
