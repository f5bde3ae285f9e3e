package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints (no auth required)
	s.echo.GET("/health", s.handleHealth)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Slack routes (verified with the signing secret)
	s.echo.POST("/slack/commands", echo.WrapHandler(http.HandlerFunc(s.slack.HandleSlashCommand)))
	s.echo.POST("/slack/events", echo.WrapHandler(http.HandlerFunc(s.slack.HandleEvents)))

	// Duty API
	s.echo.POST("/verification", s.api.HandleVerification)
	s.echo.POST("/initialize", s.api.HandleInitialize, s.api.RequireAdmin)
	s.echo.POST("/duty", s.api.HandleCurrent)
	s.echo.POST("/duty/advance", s.api.HandleAdvance, s.api.RequireAdmin)
	s.echo.POST("/duty/restart", s.api.HandleRestart, s.api.RequireAdmin)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
