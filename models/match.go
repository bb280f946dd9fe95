package models

import "time"

// Match journal actions.
const (
	ActionStart  = "start"
	ActionCatch  = "catch"
	ActionCheese = "cheese"
	ActionLeave  = "leave"
	ActionEnd    = "end"
)

// MatchSummary is the row kept per finished match.
type MatchSummary struct {
	ID         string    `json:"id"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	PlayerIDs  []string  `json:"player_ids"`
	Winner     string    `json:"winner"`
}

// MatchEvent is one journal entry. TargetID is the caught mouse for catches.
type MatchEvent struct {
	PlayerID  string `json:"playerId" bson:"playerId"`
	TargetID  string `json:"targetId,omitempty" bson:"targetId,omitempty"`
	Action    string `json:"action" bson:"action"`
	Timestamp int64  `json:"timestamp" bson:"timestamp"`
}

// MatchRecord is a finished match with its whole journal.
type MatchRecord struct {
	ID         string       `json:"id" bson:"_id"`
	StartedAt  time.Time    `json:"started_at" bson:"startedAt"`
	FinishedAt time.Time    `json:"finished_at" bson:"finishedAt"`
	PlayerIDs  []string     `json:"player_ids" bson:"playerIds"`
	Winner     string       `json:"winner" bson:"winner"`
	Events     []MatchEvent `json:"events" bson:"events"`
}

func (r MatchRecord) Summary() MatchSummary {
	return MatchSummary{
		ID:         r.ID,
		StartedAt:  r.StartedAt,
		FinishedAt: r.FinishedAt,
		PlayerIDs:  r.PlayerIDs,
		Winner:     r.Winner,
	}
}
