package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/jarvis-assistant/assistant/internal/adapter/dto/common"
	"github.com/jarvis-assistant/assistant/pkg/config"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheck pings one backing dependency
type HealthCheck func(ctx context.Context) error

// Handlers groups the HTTP handlers served under /v1
type Handlers struct {
	Auth     *Auth
	Flow     *Flow
	Contact  *Contact
	Meeting  *Meeting
	Email    *Email
	Settings *Settings
	System   *System
}

// Router holds all handlers
type Router struct {
	cfg      *config.Config
	handlers Handlers
	authMW   echo.MiddlewareFunc
	metrics  http.Handler
	checks   map[string]HealthCheck
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, handlers Handlers, authMW echo.MiddlewareFunc, metrics http.Handler, checks map[string]HealthCheck) *Router {
	return &Router{
		cfg:      cfg,
		handlers: handlers,
		authMW:   authMW,
		metrics:  metrics,
		checks:   checks,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)
	if rt.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(rt.metrics))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/v1")

	rt.setupAuthRoutes(v1)

	protected := v1.Group("", rt.authMW)
	rt.setupFlowRoutes(protected)
	rt.setupMeetingRoutes(protected)
	rt.setupContactRoutes(protected)
	rt.setupEmailRoutes(protected)
	rt.setupSettingsRoutes(protected)
	rt.setupSystemRoutes(protected)
}

// setupAuthRoutes configures authentication routes
func (rt *Router) setupAuthRoutes(g *echo.Group) {
	authGroup := g.Group("/auth")

	authGroup.POST("/register", rt.handlers.Auth.Register)
	authGroup.POST("/login", rt.handlers.Auth.Login)
	authGroup.GET("/me", rt.handlers.Auth.Me, rt.authMW)
}

// setupFlowRoutes configures the meeting flow wizard
func (rt *Router) setupFlowRoutes(g *echo.Group) {
	flowGroup := g.Group("/meetings/flow")

	flowGroup.POST("/start", rt.handlers.Flow.Start)
	flowGroup.POST("/add-email", rt.handlers.Flow.AddEmail)
	flowGroup.POST("/add-note", rt.handlers.Flow.AddNote)
	flowGroup.POST("/end", rt.handlers.Flow.EndNotes)
	flowGroup.POST("/confirm-summary", rt.handlers.Flow.ConfirmSummary)
	flowGroup.POST("/reopen-notes", rt.handlers.Flow.ReopenNotes)
	flowGroup.POST("/send-emails", rt.handlers.Flow.SendEmails)
	flowGroup.GET("/status", rt.handlers.Flow.Status)
}

// setupMeetingRoutes configures meeting history routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetingGroup := g.Group("/meetings")

	meetingGroup.GET("", rt.handlers.Meeting.List)
	meetingGroup.GET("/:id", rt.handlers.Meeting.Get)
	meetingGroup.GET("/:id/minutes-url", rt.handlers.Meeting.MinutesURL)
}

func (rt *Router) setupContactRoutes(g *echo.Group) {
	g.POST("/contacts", rt.handlers.Contact.Create)
	g.GET("/contacts", rt.handlers.Contact.List)
}

func (rt *Router) setupEmailRoutes(g *echo.Group) {
	g.GET("/emails", rt.handlers.Email.List)
	g.POST("/emails/send", rt.handlers.Email.Send)
	g.POST("/emails/draft", rt.handlers.Email.Draft)
}

func (rt *Router) setupSettingsRoutes(g *echo.Group) {
	g.GET("/settings", rt.handlers.Settings.Get)
	g.PUT("/settings", rt.handlers.Settings.Update)
}

func (rt *Router) setupSystemRoutes(g *echo.Group) {
	g.GET("/system/status", rt.handlers.System.Status)
}

// healthCheck returns health status of the service and its dependencies
func (rt *Router) healthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	resp := common.HealthResponse{
		Status:      "ok",
		Environment: rt.cfg.Server.Environment,
		Checks:      make(map[string]string, len(rt.checks)),
	}
	status := http.StatusOK
	for name, check := range rt.checks {
		if err := check(ctx); err != nil {
			resp.Checks[name] = err.Error()
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "ok"
	}

	return c.JSON(status, resp)
}
