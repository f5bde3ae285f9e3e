package test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/slack-duty-bot/internal/handlers"
	"github.com/diegoclair/slack-duty-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	SigningSecret = "test-signing-secret"
	AdminID       = "U_ADMIN"
	BotUserID     = "U_BOT"
)

type ServiceMocks struct {
	DutyServiceMock   *mocks.MockDutyService
	RosterServiceMock *mocks.MockRosterService
	NotifierMock      *mocks.MockNotifier
	SlackClientMock   *mocks.MockSlackClient
}

func newServiceMocks(ctrl *gomock.Controller) ServiceMocks {
	return ServiceMocks{
		DutyServiceMock:   mocks.NewMockDutyService(ctrl),
		RosterServiceMock: mocks.NewMockRosterService(ctrl),
		NotifierMock:      mocks.NewMockNotifier(ctrl),
		SlackClientMock:   mocks.NewMockSlackClient(ctrl),
	}
}

func GetHandlerTest(t *testing.T, rosterPath string) (m ServiceMocks, handler *handlers.SlackHandler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = newServiceMocks(ctrl)

	handler = handlers.New(m.SlackClientMock, m.DutyServiceMock, m.RosterServiceMock, handlers.Config{
		SigningSecret:     SigningSecret,
		AdminSlackID:      AdminID,
		BotUserID:         BotUserID,
		RosterPath:        rosterPath,
		DutyKeywords:      []string{"duty", "cleaning"},
		CompletedKeywords: []string{"done", "finished"},
	})

	return
}

func GetAPIHandlerTest(t *testing.T, rosterPath string) (m ServiceMocks, handler *handlers.APIHandler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = newServiceMocks(ctrl)

	handler = handlers.NewAPI(m.DutyServiceMock, m.RosterServiceMock, m.NotifierMock, AdminID, rosterPath)

	return
}

// CreateSlackRequest creates a properly signed Slack slash command request
func CreateSlackRequest(t *testing.T, text, userID, signingSecret string) *http.Request {
	t.Helper()

	// Create form data matching Slack's slash command format
	form := url.Values{
		"token":        {"test-token"},
		"team_id":      {"T123456789"},
		"team_domain":  {"test-team"},
		"channel_id":   {"C123456789"},
		"channel_name": {"cleaning"},
		"user_id":      {userID},
		"user_name":    {"test-user"},
		"command":      {"/duty"},
		"text":         {text},
		"response_url": {"https://hooks.slack.com/commands/test"},
		"trigger_id":   {"test-trigger-id"},
	}

	req := newSignedRequest(t, "/slack/commands", form.Encode(), signingSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// CreateEventRequest creates a properly signed Events API request
func CreateEventRequest(t *testing.T, body, signingSecret string) *http.Request {
	t.Helper()

	req := newSignedRequest(t, "/slack/events", body, signingSecret)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// MessageEventBody wraps a message event in an event_callback envelope.
func MessageEventBody(eventType, userID, text, channelID, ts string) string {
	return fmt.Sprintf(`{
		"token": "test-token",
		"team_id": "T123456789",
		"api_app_id": "A123456789",
		"type": "event_callback",
		"event_id": "Ev123456789",
		"event_time": 1700000000,
		"event": {
			"type": %q,
			"user": %q,
			"text": %q,
			"channel": %q,
			"ts": %q,
			"event_ts": %q
		}
	}`, eventType, userID, text, channelID, ts, ts)
}

func newSignedRequest(t *testing.T, path, body, signingSecret string) *http.Request {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
	require.NoError(t, err)

	// Generate Slack signature
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)

	sig := generateSlackSignature(signingSecret, timestamp, body)
	req.Header.Set("X-Slack-Signature", sig)

	return req
}

func generateSlackSignature(signingSecret, timestamp, body string) string {
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, body)
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	signature := hex.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("v0=%s", signature)
}

func CreateTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
