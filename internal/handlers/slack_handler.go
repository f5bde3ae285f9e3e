package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/diegoclair/slack-duty-bot/internal/domain"
	"github.com/diegoclair/slack-duty-bot/internal/domain/contract"
	"github.com/diegoclair/slack-duty-bot/internal/domain/entity"
	"github.com/diegoclair/slack-duty-bot/internal/metrics"
	"github.com/diegoclair/slack-duty-bot/internal/roster"
	slackcmd "github.com/diegoclair/slack-duty-bot/internal/slack"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
)

// Config holds the settings used by the Slack handlers.
type Config struct {
	SigningSecret string
	AdminSlackID  string
	BotUserID     string
	RosterPath    string

	DutyKeywords      []string
	CompletedKeywords []string
}

type SlackHandler struct {
	slackClient   contract.SlackClient
	dutyService   contract.DutyService
	rosterService contract.RosterService
	cfg           Config
}

func New(slackClient contract.SlackClient, dutyService contract.DutyService, rosterService contract.RosterService, cfg Config) *SlackHandler {
	return &SlackHandler{
		slackClient:   slackClient,
		dutyService:   dutyService,
		rosterService: rosterService,
		cfg:           cfg,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	if _, err := h.verifyRequest(r); err != nil {
		slog.Warn("Rejected slash command", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Parse our command
	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	// Handle command
	response := h.handleCommand(r.Context(), cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

const (
	slackRetryHeader       = "X-Slack-Retry-Num"
	slackRetryReasonHeader = "X-Slack-Retry-Reason"
)

// HandleEvents serves the Slack Events API: URL verification plus message
// and app_mention callbacks.
func (h *SlackHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	body, err := h.verifyRequest(r)
	if err != nil {
		slog.Warn("Rejected Slack event", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	// Slack redelivers events it considers unacknowledged. The first delivery
	// already counted the mention and replied.
	if retry := r.Header.Get(slackRetryHeader); retry != "" {
		slog.Debug("Skipping Slack event retry", "retry", retry, "reason", r.Header.Get(slackRetryReasonHeader))
		w.WriteHeader(http.StatusOK)
		return
	}

	event, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	switch event.Type {
	case slackevents.URLVerification:
		var challenge slackevents.ChallengeResponse
		if err := json.Unmarshal(body, &challenge); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte(challenge.Challenge))
		return

	case slackevents.CallbackEvent:
		metrics.SlackEventsTotal.WithLabelValues(event.InnerEvent.Type).Inc()

		switch ev := event.InnerEvent.Data.(type) {
		case *slackevents.AppMentionEvent:
			if ev.BotID != "" {
				break
			}
			h.handleMessage(r.Context(), incomingMessage{
				user:     ev.User,
				text:     ev.Text,
				channel:  ev.Channel,
				ts:       ev.TimeStamp,
				threadTS: ev.ThreadTimeStamp,
			}, true)
		case *slackevents.MessageEvent:
			if ev.BotID != "" || ev.SubType != "" || h.mentionsBot(ev.Text) {
				break
			}
			h.handleMessage(r.Context(), incomingMessage{
				user:     ev.User,
				text:     ev.Text,
				channel:  ev.Channel,
				ts:       ev.TimeStamp,
				threadTS: ev.ThreadTimeStamp,
			}, false)
		}
	}

	w.WriteHeader(http.StatusOK)
}

// verifyRequest checks the Slack signature and leaves the body readable.
func (h *SlackHandler) verifyRequest(r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.cfg.SigningSecret)
	if err != nil {
		return nil, err
	}

	if _, err := verifier.Write(body); err != nil {
		return nil, err
	}

	if err := verifier.Ensure(); err != nil {
		return nil, err
	}

	return body, nil
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	metrics.SlackCommandsTotal.WithLabelValues(string(cmd.Type)).Inc()

	if err := h.dutyService.RecordMention(ctx, slashCmd.UserID); err != nil {
		slog.Warn("Failed to record mention", "slack_user_id", slashCmd.UserID, "error", err)
	}

	if cmd.RequiresAdmin() && !h.isAdmin(slashCmd.UserID) {
		return h.createErrorResponse("Only the duty admin can use this command")
	}

	switch cmd.Type {
	case slackcmd.CmdWho:
		return h.handleWho(ctx)
	case slackcmd.CmdNext:
		return h.handleNext(ctx)
	case slackcmd.CmdRestart:
		return h.handleRestart(ctx)
	case slackcmd.CmdAdd:
		return h.handleAddMember(ctx, cmd)
	case slackcmd.CmdRemove:
		return h.handleRemoveMember(ctx, cmd)
	case slackcmd.CmdList:
		return h.handleListMembers(ctx)
	case slackcmd.CmdStats:
		return h.handleStats(ctx, cmd)
	case slackcmd.CmdInit:
		return h.handleInit(ctx)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleWho(ctx context.Context) *slack.Msg {
	pair, err := h.dutyService.Current(ctx)
	if err != nil {
		return h.dutyErrorResponse(err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         domain.FormatPair(pair),
	}
}

func (h *SlackHandler) handleNext(ctx context.Context) *slack.Msg {
	pair, err := h.dutyService.Advance(ctx)
	if errors.Is(err, domain.ErrNoCurrentAssignment) {
		pair, err = h.dutyService.Restart(ctx)
	}
	if err != nil {
		return h.dutyErrorResponse(err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         domain.FormatNextPair(pair),
	}
}

func (h *SlackHandler) handleRestart(ctx context.Context) *slack.Msg {
	pair, err := h.dutyService.Restart(ctx)
	if err != nil {
		return h.dutyErrorResponse(err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         "🔄 New rotation loop started!\n" + domain.FormatNextPair(pair),
	}
}

func (h *SlackHandler) handleAddMember(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) < 2 {
		return h.createErrorResponse("Please mention the user and their grade: `/duty add @user GRADE [name] [kana]`")
	}

	member := entity.Member{
		SlackUserID: slackcmd.ExtractUserID(cmd.Args[0]),
		Grade:       cmd.Args[1],
	}
	if len(cmd.Args) > 2 {
		member.Name = cmd.Args[2]
	}
	if len(cmd.Args) > 3 {
		member.Kana = cmd.Args[3]
	}

	added, err := h.rosterService.AddMember(ctx, member)
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Error adding member: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ <@%s> (%s) has been added to the cleaning duty rotation!", added.SlackUserID, added.Grade),
	}
}

func (h *SlackHandler) handleRemoveMember(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Please mention the user: `/duty remove @user`")
	}

	userID := slackcmd.ExtractUserID(cmd.Args[0])
	if err := h.rosterService.RemoveMember(ctx, userID); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Error removing member: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ <@%s> has been removed from the cleaning duty rotation.", userID),
	}
}

func (h *SlackHandler) handleListMembers(ctx context.Context) *slack.Msg {
	states, err := h.rosterService.ListMembers(ctx)
	if err != nil {
		return h.createErrorResponse("Error listing members")
	}

	if len(states) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No members in the rotation. Use `/duty add @user GRADE` to add someone.",
		}
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         domain.FormatRoster(states),
	}
}

func (h *SlackHandler) handleStats(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	var userID string
	if len(cmd.Args) > 0 {
		userID = slackcmd.ExtractUserID(cmd.Args[0])
	}

	stats, err := h.rosterService.GetStats(ctx, userID)
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Error loading stats: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         domain.FormatStats(stats),
	}
}

func (h *SlackHandler) handleInit(ctx context.Context) *slack.Msg {
	members, err := roster.Load(h.cfg.RosterPath)
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Error reading roster: %v", err))
	}

	created, err := h.rosterService.LoadRoster(ctx, members)
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Error loading roster: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("✅ Roster loaded: %d members, %d new.", len(members), created),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

type incomingMessage struct {
	user     string
	text     string
	channel  string
	ts       string
	threadTS string
}

// handleMessage acknowledges members reporting their duty as done and
// answers duty questions. It never advances the rotation.
func (h *SlackHandler) handleMessage(ctx context.Context, msg incomingMessage, mentioned bool) {
	if msg.user == "" {
		return
	}

	if err := h.dutyService.RecordMention(ctx, msg.user); err != nil {
		slog.Warn("Failed to record mention", "slack_user_id", msg.user, "error", err)
	}

	text := strings.ToLower(msg.text)
	asksDuty := mentioned || containsAny(text, h.cfg.DutyKeywords)
	reportsDone := containsAny(text, h.cfg.CompletedKeywords)
	if !asksDuty && !reportsDone {
		return
	}

	pair, err := h.dutyService.Current(ctx)
	if reportsDone && err == nil && pair.Contains(msg.user) {
		h.acknowledgeCompleted(msg)
		return
	}
	if !asksDuty {
		return
	}

	reply := domain.FallbackMessage
	if err == nil {
		reply = domain.FormatPair(pair)
	} else {
		slog.Warn("Could not determine current duty pair", "error", err)
	}

	h.reply(msg, reply)
}

func (h *SlackHandler) acknowledgeCompleted(msg incomingMessage) {
	ref := slack.NewRefToMessage(msg.channel, msg.ts)
	if err := h.slackClient.AddReaction(domain.CompletedReaction, ref); err != nil {
		slog.Error("Failed to add reaction", "channel", msg.channel, "error", err)
	}

	h.reply(msg, domain.FormatCompleted(msg.user))
}

func (h *SlackHandler) reply(msg incomingMessage, text string) {
	threadTS := msg.threadTS
	if threadTS == "" {
		threadTS = msg.ts
	}

	_, _, err := h.slackClient.PostMessage(
		msg.channel,
		slack.MsgOptionText(text, false),
		slack.MsgOptionTS(threadTS),
	)
	metrics.NotificationsTotal.WithLabelValues("reply", metrics.Status(err)).Inc()
	if err != nil {
		slog.Error("Failed to reply to message", "channel", msg.channel, "error", err)
	}
}

func (h *SlackHandler) isAdmin(userID string) bool {
	return h.cfg.AdminSlackID != "" && userID == h.cfg.AdminSlackID
}

func (h *SlackHandler) mentionsBot(text string) bool {
	return h.cfg.BotUserID != "" && strings.Contains(text, "<@"+h.cfg.BotUserID+">")
}

func (h *SlackHandler) dutyErrorResponse(err error) *slack.Msg {
	switch {
	case errors.Is(err, domain.ErrNoCurrentAssignment):
		return h.createErrorResponse(domain.FallbackMessage + " Nobody is on duty yet, an admin can run `/duty restart`.")
	case errors.Is(err, domain.ErrNoEligiblePair):
		return h.createErrorResponse(domain.FallbackMessage + " The roster needs at least two members.")
	case errors.Is(err, domain.ErrStoreUnavailable):
		slog.Error("Duty store unavailable", "error", err)
		return h.createErrorResponse("The duty rotation is unavailable right now, please try again later.")
	default:
		slog.Error("Duty operation failed", "error", err)
		return h.createErrorResponse(domain.FallbackMessage)
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword != "" && strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
