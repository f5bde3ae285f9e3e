package domain

import (
	"fmt"
	"strings"

	"github.com/diegoclair/slack-duty-bot/internal/domain/entity"
)

// FallbackMessage is shown when the duty pair cannot be determined.
const FallbackMessage = "🤷 I couldn't figure out who is on cleaning duty right now."

// FormatPair renders the duty pair with names and mention handles.
func FormatPair(pair entity.Pair) string {
	return fmt.Sprintf("🧹 Cleaning duty: %s and %s", formatMember(pair.First), formatMember(pair.Second))
}

// FormatNextPair is used when a new pair has just been selected.
func FormatNextPair(pair entity.Pair) string {
	return fmt.Sprintf("🧹 *Next cleaning duty:* %s and %s", formatMember(pair.First), formatMember(pair.Second))
}

// FormatCompleted thanks a member who reported the duty as done.
func FormatCompleted(slackUserID string) string {
	return fmt.Sprintf("✨ Thanks <@%s>! Cleaning duty marked as done.", slackUserID)
}

// FormatFailure is sent to the admin when an announcement could not be made.
func FormatFailure(operation string, err error) string {
	return fmt.Sprintf("⚠️ Cleaning duty %s failed: %v", operation, err)
}

// FormatRoster lists members with their rotation flags.
func FormatRoster(states []entity.RotationState) string {
	var b strings.Builder
	b.WriteString("*Cleaning duty roster:*\n")
	for i, s := range states {
		marker := ""
		switch {
		case s.OnDuty:
			marker = " 🧹 on duty"
		case s.DoneInLoop:
			marker = " ✔️ done this loop"
		}
		fmt.Fprintf(&b, "%d. %s (%s)%s\n", i+1, s.Member.Name, s.Member.Grade, marker)
	}
	return b.String()
}

// FormatStats renders the duty and mention counters.
func FormatStats(stats []entity.MemberStats) string {
	var b strings.Builder
	b.WriteString("*Cleaning duty stats:*\n")
	for _, s := range stats {
		fmt.Fprintf(&b, "• %s: served %d times, mentioned the bot %d times\n", s.Name, s.ServedCount, s.MentionCount)
	}
	return b.String()
}

func formatMember(m entity.Member) string {
	return fmt.Sprintf("%s (<@%s>)", m.Name, m.SlackUserID)
}
