package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// slackHandler serves the Slack-signed endpoints.
type slackHandler interface {
	HandleSlashCommand(w http.ResponseWriter, r *http.Request)
	HandleEvents(w http.ResponseWriter, r *http.Request)
}

// apiHandler serves the admin HTTP API.
type apiHandler interface {
	RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc
	HandleVerification(c echo.Context) error
	HandleInitialize(c echo.Context) error
	HandleCurrent(c echo.Context) error
	HandleAdvance(c echo.Context) error
	HandleRestart(c echo.Context) error
}

type Server struct {
	echo  *echo.Echo
	port  string
	slack slackHandler
	api   apiHandler
}

func NewServer(port string, slack slackHandler, api apiHandler) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	srv := &Server{
		echo:  e,
		port:  port,
		slack: slack,
		api:   api,
	}

	// Register routes
	srv.registerRoutes()

	return srv
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.port)
	return s.echo.Start(fmt.Sprintf(":%s", s.port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
