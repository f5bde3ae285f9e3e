package entity

import "time"

// Member is a person in the cleaning duty roster.
type Member struct {
	ID          int64
	SlackUserID string
	Name        string
	Kana        string
	Grade       string
	CreatedAt   time.Time
}

// RotationState is the rotation progress of a single member.
type RotationState struct {
	Member     Member
	OnDuty     bool
	DoneInLoop bool
}

// MemberStats holds the counters kept next to the rotation state.
type MemberStats struct {
	MemberID     int64
	SlackUserID  string
	Name         string
	ServedCount  int
	MentionCount int
}
