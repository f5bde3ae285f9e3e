package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/diegoclair/slack-duty-bot/internal/domain"
	"github.com/diegoclair/slack-duty-bot/internal/domain/contract"
	"github.com/diegoclair/slack-duty-bot/internal/domain/entity"
	"github.com/diegoclair/slack-duty-bot/internal/roster"
	"github.com/labstack/echo/v4"
)

// AdminHeader carries the caller's Slack user id on mutating API calls.
const AdminHeader = "X-Admin-ID"

// APIHandler exposes the rotation over plain HTTP for cron jobs and scripts.
type APIHandler struct {
	dutyService   contract.DutyService
	rosterService contract.RosterService
	notifier      contract.Notifier
	adminID       string
	rosterPath    string
}

func NewAPI(dutyService contract.DutyService, rosterService contract.RosterService, notifier contract.Notifier, adminID, rosterPath string) *APIHandler {
	return &APIHandler{
		dutyService:   dutyService,
		rosterService: rosterService,
		notifier:      notifier,
		adminID:       adminID,
		rosterPath:    rosterPath,
	}
}

type pairResponse struct {
	Members []memberResponse `json:"members"`
	Text    string           `json:"text"`
}

type memberResponse struct {
	SlackUserID string `json:"slack_user_id"`
	Name        string `json:"name"`
	Kana        string `json:"kana,omitempty"`
	Grade       string `json:"grade"`
}

// RequireAdmin rejects requests whose admin header does not match the
// configured admin id.
func (h *APIHandler) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if h.adminID == "" || c.Request().Header.Get(AdminHeader) != h.adminID {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Forbidden"})
		}
		return next(c)
	}
}

// HandleVerification answers the Slack URL verification handshake.
func (h *APIHandler) HandleVerification(c echo.Context) error {
	var payload map[string]any
	if err := json.NewDecoder(c.Request().Body).Decode(&payload); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{
			"msg":       "Cannot handle requested data.",
			"requested": nil,
		})
	}

	_, hasToken := payload["token"].(string)
	challenge, hasChallenge := payload["challenge"].(string)
	_, hasType := payload["type"].(string)
	if !hasToken || !hasChallenge || !hasType {
		return c.JSON(http.StatusInternalServerError, map[string]any{
			"msg":       "Cannot handle requested data.",
			"requested": payload,
		})
	}

	return c.JSON(http.StatusOK, map[string]string{"challenge": challenge})
}

func (h *APIHandler) HandleInitialize(c echo.Context) error {
	members, err := roster.Load(h.rosterPath)
	if err != nil {
		slog.Error("Failed to read roster file", "path", h.rosterPath, "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	created, err := h.rosterService.LoadRoster(c.Request().Context(), members)
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"status":  "ok",
		"members": len(members),
		"created": created,
	})
}

func (h *APIHandler) HandleCurrent(c echo.Context) error {
	pair, err := h.dutyService.Current(c.Request().Context())
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, newPairResponse(pair, domain.FormatPair(pair)))
}

// HandleAdvance moves the rotation forward. With ?notify=true the new pair is
// also posted to the announcement channel.
func (h *APIHandler) HandleAdvance(c echo.Context) error {
	pair, err := h.dutyService.Advance(c.Request().Context())
	if err != nil {
		return h.errorResponse(c, err)
	}
	h.maybeAnnounce(c, pair)
	return c.JSON(http.StatusOK, newPairResponse(pair, domain.FormatNextPair(pair)))
}

func (h *APIHandler) HandleRestart(c echo.Context) error {
	pair, err := h.dutyService.Restart(c.Request().Context())
	if err != nil {
		return h.errorResponse(c, err)
	}
	h.maybeAnnounce(c, pair)
	return c.JSON(http.StatusOK, newPairResponse(pair, domain.FormatNextPair(pair)))
}

func (h *APIHandler) maybeAnnounce(c echo.Context, pair entity.Pair) {
	if c.QueryParam("notify") != "true" {
		return
	}
	if err := h.notifier.AnnouncePair(pair); err != nil {
		slog.Error("Failed to announce duty pair", "error", err)
	}
}

func (h *APIHandler) errorResponse(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNoCurrentAssignment), errors.Is(err, domain.ErrNoEligiblePair):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrMemberNotFound):
		status = http.StatusNotFound
	}

	if status >= http.StatusInternalServerError {
		slog.Error("API request failed", "path", c.Path(), "error", err)
	}

	return c.JSON(status, map[string]string{
		"error": err.Error(),
		"text":  domain.FallbackMessage,
	})
}

func newPairResponse(pair entity.Pair, text string) pairResponse {
	members := make([]memberResponse, 0, 2)
	for _, m := range pair.Members() {
		members = append(members, memberResponse{
			SlackUserID: m.SlackUserID,
			Name:        m.Name,
			Kana:        m.Kana,
			Grade:       m.Grade,
		})
	}
	return pairResponse{Members: members, Text: text}
}
