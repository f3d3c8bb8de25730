package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meetpulse-team/meetpulse/internal/domain/entities"
	httpmw "github.com/meetpulse-team/meetpulse/internal/infrastructure/http/middleware"
	"github.com/meetpulse-team/meetpulse/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg              *config.Config
	authMiddleware   *httpmw.AuthMiddleware
	authHandler      *Auth
	meetingHandler   *Meeting
	analyticsHandler *Analytics
	employeeHandler  *Employee
	accessHandler    *Access
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	authMiddleware *httpmw.AuthMiddleware,
	authHandler *Auth,
	meetingHandler *Meeting,
	analyticsHandler *Analytics,
	employeeHandler *Employee,
	accessHandler *Access,
) *Router {
	return &Router{
		cfg:              cfg,
		authMiddleware:   authMiddleware,
		authHandler:      authHandler,
		meetingHandler:   meetingHandler,
		analyticsHandler: analyticsHandler,
		employeeHandler:  employeeHandler,
		accessHandler:    accessHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)

	v1 := e.Group("/v1")

	auth := v1.Group("/auth")
	auth.POST("/login", rt.authHandler.Login)
	auth.POST("/refresh", rt.authHandler.RefreshToken)

	authed := v1.Group("", rt.authMiddleware.Authenticate)

	meetings := authed.Group("/meetings")
	meetings.GET("", rt.meetingHandler.List)
	meetings.POST("", rt.meetingHandler.Create)
	meetings.GET("/:id", rt.meetingHandler.Get)
	meetings.DELETE("/:id", rt.meetingHandler.Delete,
		rt.authMiddleware.RequireRole(entities.AccessRoleManager, entities.AccessRoleSudo))

	meetings.GET("/:id/transcripts", rt.meetingHandler.ListTranscripts)
	meetings.POST("/:id/transcripts", rt.meetingHandler.AddTranscript)

	meetings.GET("/:id/sentiments", rt.analyticsHandler.ListSentiments)
	meetings.PUT("/:id/sentiments", rt.analyticsHandler.RecordSentiment)

	meetings.GET("/:id/skills", rt.analyticsHandler.ListSkills)
	meetings.POST("/:id/skills", rt.analyticsHandler.RecordSkills)

	meetings.GET("/:id/skill-recommendations", rt.analyticsHandler.ListSkillRecommendations)
	meetings.POST("/:id/skill-recommendations", rt.analyticsHandler.RecommendSkill)

	meetings.GET("/:id/task-recommendations", rt.analyticsHandler.ListTaskRecommendations)
	meetings.POST("/:id/task-recommendations", rt.analyticsHandler.RecommendTask)

	meetings.GET("/:id/overview", rt.analyticsHandler.Overview)

	authed.POST("/transcripts/:id/processed", rt.meetingHandler.MarkTranscriptProcessed,
		rt.authMiddleware.RequireRole(entities.AccessRoleManager, entities.AccessRoleSudo))

	authed.PATCH("/task-recommendations/:id/status", rt.analyticsHandler.UpdateTaskStatus,
		rt.authMiddleware.RequireRole(entities.AccessRoleManager, entities.AccessRoleSudo))

	employees := authed.Group("/employees")
	employees.GET("", rt.employeeHandler.List)
	employees.GET("/:name", rt.employeeHandler.Get)
	employees.POST("", rt.employeeHandler.Create,
		rt.authMiddleware.RequireRole(entities.AccessRoleHR, entities.AccessRoleSudo))

	accessGroup := authed.Group("/access",
		rt.authMiddleware.RequireRole(entities.AccessRoleSudo))
	accessGroup.GET("/grants", rt.accessHandler.Grants)
	accessGroup.GET("/grants/verify", rt.accessHandler.Verify)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
