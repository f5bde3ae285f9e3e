package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type fakeSlackHandler struct {
	commands int
	events   int
}

func (f *fakeSlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	f.commands++
	w.WriteHeader(http.StatusOK)
}

func (f *fakeSlackHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	f.events++
	w.WriteHeader(http.StatusOK)
}

type fakeAPIHandler struct {
	called []string
}

func (f *fakeAPIHandler) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get("X-Admin-ID") != "U_ADMIN" {
			return c.NoContent(http.StatusForbidden)
		}
		return next(c)
	}
}

func (f *fakeAPIHandler) record(name string) echo.HandlerFunc {
	return func(c echo.Context) error {
		f.called = append(f.called, name)
		return c.NoContent(http.StatusOK)
	}
}

func (f *fakeAPIHandler) HandleVerification(c echo.Context) error { return f.record("verification")(c) }
func (f *fakeAPIHandler) HandleInitialize(c echo.Context) error   { return f.record("initialize")(c) }
func (f *fakeAPIHandler) HandleCurrent(c echo.Context) error      { return f.record("current")(c) }
func (f *fakeAPIHandler) HandleAdvance(c echo.Context) error      { return f.record("advance")(c) }
func (f *fakeAPIHandler) HandleRestart(c echo.Context) error      { return f.record("restart")(c) }

func TestServer_Routes(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		admin      bool
		wantStatus int
		wantCall   string
	}{
		{name: "health", method: http.MethodGet, path: "/health", wantStatus: http.StatusOK},
		{name: "metrics", method: http.MethodGet, path: "/metrics", wantStatus: http.StatusOK},
		{name: "verification", method: http.MethodPost, path: "/verification", wantStatus: http.StatusOK, wantCall: "verification"},
		{name: "current", method: http.MethodPost, path: "/duty", wantStatus: http.StatusOK, wantCall: "current"},
		{name: "advance as admin", method: http.MethodPost, path: "/duty/advance", admin: true, wantStatus: http.StatusOK, wantCall: "advance"},
		{name: "advance without admin", method: http.MethodPost, path: "/duty/advance", wantStatus: http.StatusForbidden},
		{name: "restart as admin", method: http.MethodPost, path: "/duty/restart", admin: true, wantStatus: http.StatusOK, wantCall: "restart"},
		{name: "initialize without admin", method: http.MethodPost, path: "/initialize", wantStatus: http.StatusForbidden},
		{name: "unknown route", method: http.MethodGet, path: "/nope", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPIHandler{}
			srv := NewServer("0", &fakeSlackHandler{}, api)

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader("{}"))
			if tt.admin {
				req.Header.Set("X-Admin-ID", "U_ADMIN")
			}
			rec := httptest.NewRecorder()

			srv.Handler().ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCall != "" {
				assert.Equal(t, []string{tt.wantCall}, api.called)
			} else {
				assert.Empty(t, api.called)
			}
		})
	}
}

func TestServer_SlackRoutes(t *testing.T) {
	slack := &fakeSlackHandler{}
	srv := NewServer("0", slack, &fakeAPIHandler{})

	for _, path := range []string{"/slack/commands", "/slack/events"} {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, strings.NewReader("")))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Equal(t, 1, slack.commands)
	assert.Equal(t, 1, slack.events)
}
