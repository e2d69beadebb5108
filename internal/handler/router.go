package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/bazarhub/admin-api/internal/middleware"
	"github.com/bazarhub/admin-api/internal/models"
	"github.com/bazarhub/admin-api/internal/repository"
	"github.com/bazarhub/admin-api/internal/service"
)

// Services bundles the wired service layer for route registration.
type Services struct {
	Auth        *service.AuthService
	Transitions *service.TransitionService
	Moderation  *service.ModerationService
	Staff       *service.StaffService
	Settings    *service.SettingsService
	Support     *service.SupportService
	Export      *service.ExportService
	Metrics     *service.MetricsService
	AuditRepo   *repository.AuditRepository
}

// RegisterRoutes mounts all API routes on the engine. Route-level RBAC is a
// coarse filter on the token role; every service re-checks the caller against
// the staff directory before acting.
func RegisterRoutes(r *gin.Engine, svc Services) {
	metricsHandler := NewMetricsHandler(svc.Metrics)
	r.GET("/health", metricsHandler.Health)
	r.GET("/metrics", metricsHandler.Prometheus)

	v1 := r.Group("/api/v1")

	authHandler := NewAuthHandler(svc.Auth)
	v1.POST("/auth/login", authHandler.Login)

	authed := v1.Group("")
	authed.Use(middleware.JWT(svc.Auth))

	orderHandler := NewOrderHandler(svc.Transitions)
	authed.POST("/orders/force-status",
		middleware.RequireOperation(models.OpOrderForceStatus), orderHandler.ForceStatus)

	disputeHandler := NewDisputeHandler(svc.Transitions)
	authed.POST("/disputes/verdict",
		middleware.RequireOperation(models.OpDisputeVerdict), disputeHandler.Verdict)

	payoutHandler := NewPayoutHandler(svc.Transitions)
	authed.POST("/payouts/decision",
		middleware.RequireOperation(models.OpPayoutDecision), payoutHandler.Decide)

	appealHandler := NewAppealHandler(svc.Transitions)
	authed.POST("/appeals/decision",
		middleware.RequireOperation(models.OpAppealDecision), appealHandler.Decide)

	moderationHandler := NewModerationHandler(svc.Moderation)
	authed.POST("/users/account-status",
		middleware.RequireOperation(models.OpAccountStatus), moderationHandler.AccountStatus)
	authed.POST("/verifications/decision",
		middleware.RequireOperation(models.OpVerificationDecision), moderationHandler.Verification)

	staffHandler := NewStaffHandler(svc.Staff)
	authed.POST("/staff/status",
		middleware.RequireOperation(models.OpStaffStatus), staffHandler.SetStatus)
	authed.POST("/staff/invite",
		middleware.RequireOperation(models.OpStaffInvite), staffHandler.Invite)
	authed.GET("/staff/sessions",
		middleware.RequireOperation(models.OpStaffSessions), staffHandler.Sessions)

	settingsHandler := NewSettingsHandler(svc.Settings)
	authed.GET("/settings",
		middleware.RequireOperation(models.OpSettingsChange), settingsHandler.Get)
	authed.PUT("/settings",
		middleware.RequireOperation(models.OpSettingsChange), settingsHandler.Update)

	supportHandler := NewSupportHandler(svc.Support)
	authed.POST("/support/resolve",
		middleware.RequireOperation(models.OpSupportTicketResolve), supportHandler.Resolve)

	auditHandler := NewAuditHandler(svc.Export)
	authed.GET("/audit/export",
		middleware.RequireOperation(models.OpAuditExport),
		middleware.AuditDownload(svc.AuditRepo), auditHandler.Export)
}
