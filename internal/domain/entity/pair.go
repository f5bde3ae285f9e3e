package entity

// Pair is the two members currently holding the cleaning duty.
type Pair struct {
	First  Member
	Second Member
}

func (p Pair) Members() []Member {
	return []Member{p.First, p.Second}
}

func (p Pair) IDs() []int64 {
	return []int64{p.First.ID, p.Second.ID}
}

// Contains reports whether the Slack user is part of the pair.
func (p Pair) Contains(slackUserID string) bool {
	return p.First.SlackUserID == slackUserID || p.Second.SlackUserID == slackUserID
}
