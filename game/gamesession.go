package game

import (
	"time"

	"github.com/mapleleafu/cheesechase/models"
)

// serverActor is the journal actor for events the server causes itself.
const serverActor = "server"

// gameSession is the journal of the running match.
type gameSession struct {
	id        string
	startedAt time.Time
	playerIDs []string
	events    []models.MatchEvent
}

func newGameSession(id string, startedAt time.Time, players []*Player) *gameSession {
	ids := make([]string, 0, len(players))
	for _, p := range players {
		ids = append(ids, p.ID)
	}
	return &gameSession{id: id, startedAt: startedAt, playerIDs: ids}
}

func (s *gameSession) add(action, playerID, targetID string, ts int64) {
	s.events = append(s.events, models.MatchEvent{
		PlayerID:  playerID,
		TargetID:  targetID,
		Action:    action,
		Timestamp: ts,
	})
}

func (s *gameSession) finish(w Winner, at time.Time) models.MatchRecord {
	s.add(models.ActionEnd, serverActor, "", at.UnixMilli())
	return models.MatchRecord{
		ID:         s.id,
		StartedAt:  s.startedAt.UTC(),
		FinishedAt: at.UTC(),
		PlayerIDs:  s.playerIDs,
		Winner:     string(w),
		Events:     s.events,
	}
}

// journal appends to the running match's journal, if there is one.
func (e *Engine) journal(action, playerID, targetID string, ts int64) {
	if e.session == nil {
		return
	}
	e.session.add(action, playerID, targetID, ts)
}

func (e *Engine) finishSession(w Winner) {
	if e.session == nil {
		return
	}
	rec := e.session.finish(w, e.now())
	e.session = nil
	e.recorder.Record(rec)
}
